package urlnorm

import (
	"strings"

	"golang.org/x/text/encoding"
)

// Schemes whose paths follow generic hierarchical semantics. Anything else
// (mailto, urn, tel, ...) keeps its path byte-for-byte.
var hierarchicalSchemes = map[string]bool{
	"":      true,
	"http":  true,
	"https": true,
	"ftp":   true,
	"file":  true,
}

// NormalizePath canonicalizes the percent-encoding of a hierarchical path
// and resolves its dot-segments. The walk keeps a single leading slash,
// collapses duplicate slashes, resolves "." and "..", and drops a non-final
// segment containing a literal dot (hidden-segment rule carried over from
// the historic pipeline). A trailing "", "." or ".." preserves the trailing
// slash. For non-hierarchical schemes the path is returned unchanged, and an
// empty result becomes "/" whenever a scheme is present.
func NormalizePath(path, scheme string) string {
	return normalizePath(path, scheme, nil)
}

func normalizePath(path, scheme string, enc encoding.Encoding) string {
	if !hierarchicalSchemes[scheme] {
		return path
	}
	path = requote(path, SafeReserved, enc)

	parts := strings.Split(path, "/")
	output := make([]string, 0, len(parts))
	last := len(parts) - 1
	for idx, part := range parts {
		switch {
		case part == "":
			if len(output) == 0 {
				output = append(output, part)
			}
		case part == ".":
		case part == "..":
			if len(output) > 1 {
				output = output[:len(output)-1]
			}
		case idx < last && strings.Contains(part, "."):
		default:
			output = append(output, part)
		}
	}
	switch parts[last] {
	case "", ".", "..":
		output = append(output, "")
	}
	path = strings.Join(output, "/")

	if path == "" && scheme != "" {
		return "/"
	}
	return path
}
