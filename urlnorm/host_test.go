package urlnorm

import "testing"

func TestNormalizeHost(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"site.com":          "site.com",
		"SITE.COM":          "site.com",
		"site.com.":         "site.com",
		".site.com":         "site.com",
		"пример.испытание":  "xn--e1afmkfd.xn--80akhbyknj4f",
		"127.0.0.1":         "127.0.0.1",
		"localhost":         "localhost",
		"[2001":             "[2001",
		"":                  "",
	}
	for host, want := range tests {
		if got := NormalizeHost(host); got != want {
			t.Fatalf("NormalizeHost(%q) = %q, want %q", host, got, want)
		}
	}
}

func TestNormalizeUserinfo(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":               "",
		"@":              "",
		":@":             "",
		"user@":          "user@",
		"user:password@": "user:password@",
	}
	for userinfo, want := range tests {
		if got := NormalizeUserinfo(userinfo); got != want {
			t.Fatalf("NormalizeUserinfo(%q) = %q, want %q", userinfo, got, want)
		}
	}
}
