package urlnorm

import "strings"

// NormalizeURL reduces a raw URL to its canonical form under the given
// policy. Empty input is returned unchanged. The pipeline is: trim
// surrounding whitespace, provide a scheme, apply generic cleanup, split
// into components, normalize each component independently, and reassemble.
// The result is idempotent: normalizing it again yields the same string.
func NormalizeURL(raw string, p Policy) string {
	if raw == "" {
		return raw
	}
	enc := p.encoding()

	cleaned := strings.TrimSpace(raw)
	cleaned = ProvideScheme(cleaned, p.DefaultScheme)
	cleaned = GenericCleanup(cleaned)

	u := Split(cleaned)
	u.Scheme = strings.ToLower(u.Scheme)
	u.Userinfo = NormalizeUserinfo(u.Userinfo)
	u.Host = NormalizeHost(u.Host)
	u.Query = normalizeQuery(u.Query, p, enc)
	u.Fragment = requote(u.Fragment, SafeFragment, enc)
	u.Port = NormalizePort(u.Port, u.Scheme)
	u.Path = normalizePath(u.Path, u.Scheme, enc)

	return u.String()
}
