package urlnorm

import (
	"strings"

	"golang.org/x/net/idna"
)

// UTS-46 mapping with transitional processing, matching what registrars and
// browsers applied to lookup before IDNA2008 non-transitional became the
// default.
var idnaProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(true),
	idna.StrictDomainName(false),
)

// NormalizeHost lowercases the host, trims surrounding dots, and converts
// internationalized domain names to their ASCII (punycode) form. Strings
// without a dot are not domain-shaped (IPv4 literals, bare hostnames) and
// skip IDNA entirely. Hosts the IDNA profile rejects are returned as-is
// rather than failing the whole normalization.
func NormalizeHost(host string) string {
	host = strings.Trim(strings.ToLower(host), ".")
	if !strings.Contains(host, ".") {
		return host
	}
	ascii, err := idnaProfile.ToASCII(host)
	if err != nil {
		return host
	}
	return ascii
}

// NormalizeUserinfo drops meaningless empty credentials ("@" or ":@") and
// leaves everything else untouched, including its case.
func NormalizeUserinfo(userinfo string) string {
	if userinfo == "@" || userinfo == ":@" {
		return ""
	}
	return userinfo
}
