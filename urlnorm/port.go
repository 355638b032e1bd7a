package urlnorm

import "strconv"

// defaultPorts maps a scheme to the port it implies, used both to elide
// redundant explicit ports and by callers that want the reverse lookup.
var defaultPorts = map[string]string{
	"ftp":    "21",
	"gopher": "70",
	"http":   "80",
	"https":  "443",
	"news":   "119",
	"nntp":   "119",
	"snews":  "563",
	"snntp":  "563",
	"telnet": "23",
	"ws":     "80",
	"wss":    "443",
}

// DefaultPort returns the default port for a scheme, or "" when the scheme
// has none registered.
func DefaultPort(scheme string) string {
	return defaultPorts[scheme]
}

// NormalizePort strips leading zeros from a digit-string port and elides it
// entirely when it matches the scheme's default. Non-numeric ports and ports
// of schemes without a known default are returned unchanged.
func NormalizePort(port, scheme string) string {
	if !allDigits(port) {
		return port
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return port
	}
	port = strconv.Itoa(n)
	if defaultPorts[scheme] == port {
		return ""
	}
	return port
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
