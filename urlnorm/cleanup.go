package urlnorm

import (
	"regexp"
	"strings"
)

var utmSourcePattern = regexp.MustCompile(`utm_source=[^&]+&?`)

// ProvideScheme prefixes raw with defaultScheme when it lacks one, the way a
// browser silently completes "site.com/path". Inputs that already carry a
// scheme marker in their first seven characters, absolute file paths, the
// "-" sentinel, and empty input pass through unchanged. Protocol-relative
// input ("//host") keeps its slashes and only gains "scheme:".
func ProvideScheme(raw, defaultScheme string) string {
	head := raw
	if len(head) > 7 {
		head = head[:7]
	}
	hasScheme := strings.Contains(head, ":")
	isProtocolRelative := strings.HasPrefix(raw, "//")
	isFilePath := raw == "-" || (strings.HasPrefix(raw, "/") && !isProtocolRelative)

	switch {
	case raw == "" || hasScheme || isFilePath:
		return raw
	case isProtocolRelative:
		return defaultScheme + ":" + raw
	default:
		return defaultScheme + "://" + raw
	}
}

// GenericCleanup strips tracking and crawler artifacts before decomposition:
// AJAX-crawl shebang fragments become _escaped_fragment_ queries, utm_source
// parameters are removed, and trailing "&", "?", and spaces are trimmed. The
// shebang rewrite must happen before Split because it moves text from the
// fragment into the query.
func GenericCleanup(raw string) string {
	raw = strings.ReplaceAll(raw, "#!", "?_escaped_fragment_=")
	raw = utmSourcePattern.ReplaceAllString(raw, "")
	return strings.TrimRight(raw, "&? ")
}
