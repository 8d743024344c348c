package valueobject

import "strings"

// forbiddenEmailDomains lists domains that can never be used to register.
// Comparison is case-insensitive; entries are kept lower-case.
var forbiddenEmailDomains = []string{
	"autanasoft.com",
	"airdashboard.net",
}

// forbiddenUserNames lists reserved words that may not appear anywhere inside
// a user name. Matching is case-insensitive substring containment.
var forbiddenUserNames = []string{
	"abuse",
	"admin",
	"administrator",
	"airmt",
	"anonymous",
	"api",
	"autana",
	"autanasoft",
	"contact",
	"demo",
	"ftp",
	"guest",
	"help",
	"hostmaster",
	"info",
	"mail",
	"moderator",
	"no-reply",
	"noreply",
	"null",
	"postmaster",
	"root",
	"security",
	"smtp",
	"soft",
	"software",
	"superuser",
	"support",
	"sysadmin",
	"system",
	"test",
	"undefined",
	"webmaster",
	"www",
}

func isForbiddenDomain(domain string) bool {
	for _, d := range forbiddenEmailDomains {
		if d == domain {
			return true
		}
	}
	return false
}

// forbiddenNameIn returns the first reserved word contained in the
// lower-cased name, if any.
func forbiddenNameIn(lowered string) (string, bool) {
	for _, n := range forbiddenUserNames {
		if strings.Contains(lowered, n) {
			return n, true
		}
	}
	return "", false
}

// ForbiddenUserNames exposes a copy of the reserved-name list for tests and
// documentation tooling.
func ForbiddenUserNames() []string {
	out := make([]string, len(forbiddenUserNames))
	copy(out, forbiddenUserNames)
	return out
}

// ForbiddenEmailDomains exposes a copy of the blacklisted domain list.
func ForbiddenEmailDomains() []string {
	out := make([]string, len(forbiddenEmailDomains))
	copy(out, forbiddenEmailDomains)
	return out
}
