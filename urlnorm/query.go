package urlnorm

import (
	"sort"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/JakeFAU/request-normalizer/internal/params"
)

// NormalizeQuery canonicalizes an &-delimited query (or form-encoded body):
// every key and value is independently requoted, ignored keys are removed or
// redacted per policy, and the surviving entries are sorted as whole
// "key=value" strings when sorting is enabled. Form decoding rules apply to
// key=value tokens ("+" means space, entries with an empty value are
// dropped); tokens without "=" are kept as bare keys.
func NormalizeQuery(query string, p Policy) string {
	return normalizeQuery(query, p, p.encoding())
}

func normalizeQuery(query string, p Policy, enc encoding.Encoding) string {
	ignored := params.NewSet(p.IgnoredParameters)

	var pairs []params.Pair
	var bareKeys []string
	for _, token := range strings.Split(query, "&") {
		if token == "" {
			continue
		}
		key, value, found := strings.Cut(token, "=")
		if !found {
			bareKeys = append(bareKeys, requote(token, SafeReserved, enc))
			continue
		}
		if value == "" {
			continue
		}
		pairs = append(pairs, params.Pair{
			Key:   requote(formDecode(key), SafeReserved, enc),
			Value: requote(formDecode(value), SafeReserved, enc),
		})
	}

	entries := make([]string, 0, len(pairs)+len(bareKeys))
	for _, pair := range params.FilterPairs(pairs, ignored, p.RedactIgnored) {
		entries = append(entries, pair.Key+"="+pair.Value)
	}
	entries = append(entries, params.FilterValues(bareKeys, ignored, p.RedactIgnored)...)

	if p.SortParameters {
		sort.Strings(entries)
	}
	return strings.Join(entries, "&")
}

// formDecode applies the application/x-www-form-urlencoded plus-as-space
// rule before requoting re-resolves the percent escapes.
func formDecode(s string) string {
	return strings.ReplaceAll(s, "+", " ")
}
