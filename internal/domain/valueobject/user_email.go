package valueobject

import (
	"regexp"
	"strings"

	"github.com/autanasoft/accounts-api/internal/domain/errs"
)

const emailMaxLength = 64

// RFC 5322-ish address check, close to the WHATWG HTML5 pattern but
// requiring at least one dot in the domain part.
var emailRegexp = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`,
)

// UserEmail wraps a validated, normalized (trimmed, lower-cased) email address.
type UserEmail struct {
	value string
}

// NewUserEmail validates raw and returns the normalized email. Format rules
// run first, in order, short-circuiting on the first violation; the forbidden
// domain business rule runs last and carries the offending email and domain.
func NewUserEmail(raw string) (UserEmail, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return UserEmail{}, errs.NewUserCreation("Email is required")
	}
	if len(trimmed) > emailMaxLength {
		return UserEmail{}, errs.NewUserCreation("Email must be at most 64 characters long")
	}
	if !emailRegexp.MatchString(trimmed) {
		return UserEmail{}, errs.NewUserCreation("Email must be a valid email address")
	}

	normalized := strings.ToLower(trimmed)
	domain := extractDomain(normalized)
	if isForbiddenDomain(domain) {
		return UserEmail{}, errs.NewForbiddenEmailDomain(trimmed, domain)
	}

	return UserEmail{value: normalized}, nil
}

func extractDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

// Value returns the normalized email address.
func (e UserEmail) Value() string { return e.value }

// Equals compares two emails by normalized value.
func (e UserEmail) Equals(other UserEmail) bool { return e.value == other.value }

func (e UserEmail) String() string { return e.value }
