// Package requestnorm extends URL normalization to whole HTTP request
// representations: the request URL, its headers, and its body are each
// reduced to a canonical form under a shared ignored-parameters policy, so
// two requests that differ only in volatile parameters (auth tokens,
// timestamps) produce identical output. The package performs no I/O and
// never fails on malformed input.
package requestnorm

import (
	"sort"
	"strings"

	"github.com/JakeFAU/request-normalizer/internal/params"
	"github.com/JakeFAU/request-normalizer/urlnorm"
)

// NormalizeRequest normalizes the three parts of a request independently and
// returns them in order: canonical URL, filtered headers, canonical body.
// The same ignored-parameter set applies to the URL query, the header names,
// and structured body fields, which is what makes the output usable as a
// cache key that must ignore volatile parameters without ignoring
// everything.
func NormalizeRequest(rawURL string, headers map[string]string, body []byte, p urlnorm.Policy) (string, map[string]string, []byte) {
	return urlnorm.NormalizeURL(rawURL, p),
		NormalizeHeaders(headers, p),
		NormalizeBody(body, headers, p)
}

// NormalizeHeaders filters ignored header names (removing or redacting per
// policy) and canonicalizes multi-value headers: a value containing commas
// is treated as a set, not an ordered list, so it is lowercased, split,
// trimmed, sorted, and rejoined with ", ". Absent headers yield an empty
// map. Map iteration order is unspecified in Go; consumers that need sorted
// header bytes serialize the result ordered by name (see cachekey).
func NormalizeHeaders(headers map[string]string, p urlnorm.Policy) map[string]string {
	normalized := make(map[string]string, len(headers))
	if len(headers) == 0 {
		return normalized
	}
	ignored := params.NewSet(p.IgnoredParameters)
	for name, value := range headers {
		if ignored.Has(name) {
			if p.RedactIgnored {
				normalized[name] = params.Redacted
			}
			continue
		}
		if strings.Contains(value, ",") {
			value = canonicalValueSet(value)
		}
		normalized[name] = value
	}
	return normalized
}

func canonicalValueSet(value string) string {
	parts := strings.Split(strings.ToLower(value), ",")
	values := make([]string, 0, len(parts))
	for _, v := range parts {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}
