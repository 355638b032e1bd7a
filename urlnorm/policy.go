package urlnorm

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Defaults applied by DefaultPolicy.
const (
	DefaultCharset = "utf-8"
	DefaultScheme  = "https"
)

// Policy bundles the configuration for a normalization run. It is passed
// explicitly into every call and never read from global state, so distinct
// policies can be used concurrently.
type Policy struct {
	// Charset is the IANA name of the target text encoding. Empty means
	// UTF-8.
	Charset string
	// DefaultScheme is prefixed onto inputs that lack a scheme.
	DefaultScheme string
	// IgnoredParameters lists query keys, header names, and body fields
	// excluded from the normalized form.
	IgnoredParameters []string
	// RedactIgnored replaces ignored values with a sentinel instead of
	// dropping the key, so presence of an ignored parameter does not by
	// itself change the result.
	RedactIgnored bool
	// SortParameters orders query and form parameters lexicographically.
	SortParameters bool
}

// DefaultPolicy returns the standard policy: UTF-8, https, no ignored
// parameters, removal rather than redaction, sorted parameters.
func DefaultPolicy() Policy {
	return Policy{
		Charset:        DefaultCharset,
		DefaultScheme:  DefaultScheme,
		SortParameters: true,
	}
}

// Fingerprint returns a stable identifier for the policy, suitable for
// memoization keys alongside the input string.
func (p Policy) Fingerprint() string {
	var b strings.Builder
	b.WriteString(p.Charset)
	b.WriteByte(0x1f)
	b.WriteString(p.DefaultScheme)
	b.WriteByte(0x1f)
	for _, name := range p.IgnoredParameters {
		b.WriteString(name)
		b.WriteByte(0x1e)
	}
	b.WriteByte(0x1f)
	if p.RedactIgnored {
		b.WriteByte('r')
	}
	if p.SortParameters {
		b.WriteByte('s')
	}
	return b.String()
}

// encoding resolves the policy charset to a transformer, or nil when the
// target is UTF-8 (no transformation needed).
func (p Policy) encoding() encoding.Encoding {
	return encodingFor(p.Charset)
}

func encodingFor(name string) encoding.Encoding {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "utf-8" || name == "utf8" {
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil
	}
	return enc
}

// ValidCharset reports whether name resolves to a known text encoding.
func ValidCharset(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "utf-8" || name == "utf8" {
		return true
	}
	enc, err := ianaindex.IANA.Encoding(name)
	return err == nil && enc != nil
}
