// Package cachekey derives stable cache keys from normalized requests. Two
// requests that are the same logical request, however differently spelled,
// hash to the same key; requests differing only in ignored parameters hash
// identically as well.
package cachekey

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sort"

	"github.com/JakeFAU/request-normalizer/requestnorm"
	"github.com/JakeFAU/request-normalizer/urlnorm"
)

// Builder hashes normalized requests under a fixed policy.
type Builder struct {
	policy urlnorm.Policy
}

// New returns a key builder for the given policy.
func New(policy urlnorm.Policy) *Builder {
	return &Builder{policy: policy}
}

// URLKey returns the hex SHA-256 digest of the normalized URL.
func (b *Builder) URLKey(rawURL string) string {
	sum := sha256.Sum256([]byte(urlnorm.NormalizeURL(rawURL, b.policy)))
	return hex.EncodeToString(sum[:])
}

// RequestKey returns the hex SHA-256 digest of the full normalized request.
// The serialization is the normalized URL, the headers as "name: value"
// lines ordered by name, a blank line, and the normalized body; each part is
// newline-delimited so distinct requests cannot collide by concatenation.
func (b *Builder) RequestKey(rawURL string, headers map[string]string, body []byte) string {
	nurl, nheaders, nbody := requestnorm.NormalizeRequest(rawURL, headers, body, b.policy)

	h := sha256.New()
	writeLine(h, []byte(nurl))
	names := make([]string, 0, len(nheaders))
	for name := range nheaders {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeLine(h, []byte(name+": "+nheaders[name]))
	}
	writeLine(h, nil)
	h.Write(nbody)
	return hex.EncodeToString(h.Sum(nil))
}

func writeLine(h hash.Hash, line []byte) {
	h.Write(line)
	h.Write([]byte{'\n'})
}
