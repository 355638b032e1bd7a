package urlnorm

import "testing"

func TestRequote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		safe  string
		want  string
	}{
		{"empty", "", SafeFragment, ""},
		{"plain", "fragment", SafeFragment, "fragment"},
		{"unicode", "пример", SafeFragment, "%D0%BF%D1%80%D0%B8%D0%BC%D0%B5%D1%80"},
		{"bang escaped with tilde safe set", "!fragment", SafeFragment, "%21fragment"},
		{"tilde kept", "~fragment", SafeFragment, "~fragment"},
		{"uppercase hex", "%5c", SafeReserved, "%5C"},
		{"nfc composition", "C%CC%A7", SafeReserved, "%C3%87"},
		{"tilde decoded", "%7Ejane", SafeReserved, "~jane"},
		{"undecodable byte replaced", "%C7", SafeReserved, "%EF%BF%BD"},
		{"invalid escape kept literal", "%zz", SafeReserved, "%25zz"},
		{"reserved kept with reserved safe set", "a/b?c=d", SafeReserved, "a/b?c=d"},
		{"space escaped", "a b", SafeReserved, "a%20b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Requote(tc.value, tc.safe, DefaultCharset); got != tc.want {
				t.Fatalf("Requote(%q) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestRequoteIdempotent(t *testing.T) {
	t.Parallel()

	values := []string{"%5c", "C%CC%A7", "%zz", "пример", "a b", "%C7", "~jane"}
	for _, value := range values {
		once := Requote(value, SafeReserved, DefaultCharset)
		twice := Requote(once, SafeReserved, DefaultCharset)
		if once != twice {
			t.Fatalf("Requote not idempotent for %q: %q != %q", value, once, twice)
		}
	}
}

func TestValidCharset(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "utf-8", "UTF-8", "utf8", "iso-8859-1"} {
		if !ValidCharset(name) {
			t.Fatalf("expected %q to be a valid charset", name)
		}
	}
	if ValidCharset("no-such-charset") {
		t.Fatal("expected bogus charset to be rejected")
	}
}
