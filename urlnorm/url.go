package urlnorm

import "strings"

// URL holds the seven components of a split URL. Userinfo keeps its trailing
// "@" and Port is a bare digit string; absent components are empty strings.
type URL struct {
	Scheme   string
	Userinfo string
	Host     string
	Port     string
	Path     string
	Query    string
	Fragment string
}

// Split breaks a raw URL string into its components. It trims surrounding
// whitespace and never fails: anything it cannot attribute to a component
// ends up in Path. String is the exact inverse for any value String itself
// can produce.
func Split(raw string) URL {
	var u URL
	rest := strings.TrimSpace(raw)

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		u.Fragment = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		u.Query = rest[i+1:]
		rest = rest[:i]
	}
	if i := schemeEnd(rest); i > 0 {
		u.Scheme = rest[:i]
		rest = rest[i+1:]
	}
	if strings.HasPrefix(rest, "//") {
		authority := rest[2:]
		if i := strings.IndexByte(authority, '/'); i >= 0 {
			rest = authority[i:]
			authority = authority[:i]
		} else {
			rest = ""
		}
		u.Userinfo, u.Host, u.Port = splitAuthority(authority)
	}
	u.Path = rest
	return u
}

// String reassembles the URL into a single string, adding "//" before a
// non-empty authority and the ":", "?", "#" markers only when the
// corresponding component is present.
func (u URL) String() string {
	var b strings.Builder
	if u.Scheme != "" {
		b.WriteString(u.Scheme)
		b.WriteByte(':')
	}
	authority := u.Userinfo + u.Host
	if u.Port != "" {
		authority += ":" + u.Port
	}
	if authority != "" || strings.HasPrefix(u.Path, "//") {
		b.WriteString("//")
		b.WriteString(authority)
	}
	b.WriteString(u.Path)
	if u.Query != "" {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}
	return b.String()
}

// schemeEnd returns the index of the ":" terminating a syntactically valid
// scheme, or -1 when the string does not start with one.
func schemeEnd(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ':':
			if i == 0 {
				return -1
			}
			return i
		case isAlpha(c):
		case (isDigit(c) || c == '+' || c == '-' || c == '.') && i > 0:
		default:
			return -1
		}
	}
	return -1
}

// splitAuthority scans an authority string into userinfo (through the first
// "@"), host (up to the first ":") and port (everything after it). It
// tolerates authorities with no "@" and no ":".
func splitAuthority(authority string) (userinfo, host, port string) {
	rest := authority
	if i := strings.IndexByte(rest, '@'); i >= 0 {
		userinfo = rest[:i+1]
		rest = rest[i+1:]
	}
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		return userinfo, rest[:i], rest[i+1:]
	}
	return userinfo, rest, ""
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
