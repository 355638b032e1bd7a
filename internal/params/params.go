// Package params implements the ignored-parameter policy shared by the URL
// query, header, and body normalizers. Filtering behaves identically across
// all three surfaces: an ignored name is either removed outright or replaced
// with the Redacted sentinel, so the same policy yields the same cache-key
// equivalence everywhere.
package params

// Redacted substitutes for ignored values when redaction is enabled, keeping
// the key present so that adding or removing an ignored parameter does not
// change the normalized form.
const Redacted = "REDACTED"

// Pair is a key/value parameter in original order.
type Pair struct {
	Key   string
	Value string
}

// Set is an ignored-name lookup set.
type Set map[string]struct{}

// NewSet builds a Set from a name list. A nil or empty list yields an empty
// set that ignores nothing.
func NewSet(names []string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether name is ignored.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// FilterPairs applies the ignore policy to key/value pairs, preserving the
// order of the survivors.
func FilterPairs(pairs []Pair, ignored Set, redact bool) []Pair {
	if len(ignored) == 0 {
		return pairs
	}
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if ignored.Has(p.Key) {
			if redact {
				out = append(out, Pair{Key: p.Key, Value: Redacted})
			}
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterValues applies the ignore policy to bare values (key-only query
// tokens, list elements).
func FilterValues(values []string, ignored Set, redact bool) []string {
	if len(ignored) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if ignored.Has(v) {
			if redact {
				out = append(out, Redacted)
			}
			continue
		}
		out = append(out, v)
	}
	return out
}
