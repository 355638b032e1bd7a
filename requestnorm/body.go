package requestnorm

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/JakeFAU/request-normalizer/internal/params"
	"github.com/JakeFAU/request-normalizer/urlnorm"
)

// NormalizeBody canonicalizes a request body according to its Content-Type
// header (matched case-insensitively, media-type parameters ignored):
// JSON bodies are recursively filtered and sorted, form-encoded bodies go
// through the query normalizer, and everything else passes through
// unchanged. Malformed content is never an error; it is simply returned
// as-is. An empty body normalizes to nil.
func NormalizeBody(body []byte, headers map[string]string, p urlnorm.Policy) []byte {
	if len(body) == 0 {
		return nil
	}
	switch contentType(headers) {
	case "application/json":
		return urlnorm.EncodeCharset(normalizeJSONBody(body, p), p.Charset)
	case "application/x-www-form-urlencoded":
		return urlnorm.EncodeCharset([]byte(urlnorm.NormalizeQuery(string(body), p)), p.Charset)
	default:
		return body
	}
}

// normalizeJSONBody parses, filters, sorts, and re-serializes a JSON body.
// Object keys come out sorted (with ignored keys removed or redacted at
// every depth), arrays are sorted by the canonical encoding of their
// elements, and string elements matching an ignored name are filtered like
// bare query keys. Anything that is not a complete JSON document, or whose
// root is a scalar, is returned unchanged: "not valid JSON" means "nothing
// to normalize", not a failure.
func normalizeJSONBody(body []byte, p urlnorm.Policy) []byte {
	if len(body) <= 2 {
		return body
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return body
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return body
	}

	switch root.(type) {
	case map[string]any, []any:
	default:
		return body
	}

	ignored := params.NewSet(p.IgnoredParameters)
	out, err := json.Marshal(filterJSON(root, ignored, p.RedactIgnored))
	if err != nil {
		return body
	}
	return out
}

func filterJSON(value any, ignored params.Set, redact bool) any {
	switch v := value.(type) {
	case map[string]any:
		for key, elem := range v {
			if ignored.Has(key) {
				if redact {
					v[key] = params.Redacted
				} else {
					delete(v, key)
				}
				continue
			}
			v[key] = filterJSON(elem, ignored, redact)
		}
		return v
	case []any:
		out := make([]any, 0, len(v))
		for _, elem := range v {
			if s, ok := elem.(string); ok && ignored.Has(s) {
				if redact {
					out = append(out, params.Redacted)
				}
				continue
			}
			out = append(out, filterJSON(elem, ignored, redact))
		}
		sort.Slice(out, func(i, j int) bool {
			return canonicalJSON(out[i]) < canonicalJSON(out[j])
		})
		return out
	default:
		return value
	}
}

// canonicalJSON gives a total order over heterogeneous array elements.
// encoding/json emits object keys sorted, so equal values always compare
// equal.
func canonicalJSON(value any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(encoded)
}

// contentType extracts the lowercased media type from the Content-Type
// header, tolerating any casing of the header name and discarding
// parameters such as charset.
func contentType(headers map[string]string) string {
	for name, value := range headers {
		if strings.EqualFold(name, "Content-Type") {
			mediaType, _, _ := strings.Cut(value, ";")
			return strings.ToLower(strings.TrimSpace(mediaType))
		}
	}
	return ""
}
