package urlnorm

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/unicode/norm"
)

// Safe sets used by the component normalizers. Characters listed here are
// left unescaped on top of the always-safe ASCII alphanumerics and "_.-~".
const (
	// SafeReserved keeps RFC 3986 reserved characters literal, matching
	// browser treatment of paths and query components.
	SafeReserved = "~:/?#[]@!$&'()*+,;="
	// SafeFragment escapes everything but "~" in fragments.
	SafeFragment = "~"
)

// Requote canonicalizes the percent-encoding of value: it percent-decodes,
// applies Unicode NFC, encodes to the charset named by the policy, and
// percent-encodes again with uppercase hex, leaving safe characters
// unescaped. Two different encodings of the same underlying text therefore
// collapse into one canonical form. Bytes that cannot be decoded are replaced
// with U+FFFD rather than reported as errors, and invalid escapes ("%zz")
// survive as literal text.
func Requote(value, safe, charset string) string {
	return requote(value, safe, encodingFor(charset))
}

func requote(value, safe string, enc encoding.Encoding) string {
	decoded := percentDecode(value)
	composed := norm.NFC.String(decoded)
	return percentEncode(encodeCharset(composed, enc), safe)
}

// percentDecode resolves %XX escapes and re-interprets the resulting bytes as
// UTF-8, substituting U+FFFD for each undecodable byte. Malformed escapes are
// kept literally.
func percentDecode(s string) string {
	raw := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			raw = append(raw, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 3
			continue
		}
		raw = append(raw, s[i])
		i++
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
			i++
			continue
		}
		b.Write(raw[i : i+size])
		i += size
	}
	return b.String()
}

// percentEncode escapes every byte outside the always-safe set and the
// caller-supplied safe characters, using uppercase hex digits.
func percentEncode(raw []byte, safe string) string {
	const hexDigits = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		if alwaysSafe(c) || (c < utf8.RuneSelf && strings.IndexByte(safe, c) >= 0) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xf])
	}
	return b.String()
}

// EncodeCharset converts UTF-8 bytes to the encoding named by charset,
// substituting replacement bytes for anything the target cannot represent.
// UTF-8 (or an unknown charset) is a pass-through.
func EncodeCharset(b []byte, charset string) []byte {
	enc := encodingFor(charset)
	if enc == nil {
		return b
	}
	return encodeCharset(string(b), enc)
}

// encodeCharset converts s to the target encoding, substituting the
// encoding's replacement byte for unsupported runes. A nil encoding means
// UTF-8 and returns the bytes unchanged.
func encodeCharset(s string, enc encoding.Encoding) []byte {
	if enc == nil {
		return []byte(s)
	}
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}

func alwaysSafe(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_' || c == '.' || c == '-' || c == '~'
}

func isHex(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}
