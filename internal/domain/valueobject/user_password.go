package valueobject

import (
	"strings"

	"github.com/autanasoft/accounts-api/internal/domain/errs"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 64

	passwordSpecialSet = "@$!%*?&"
)

const passwordComplexityMessage = "Password must include at least one uppercase letter, " +
	"one lowercase letter, one digit, and one special character (@$!%*?&)"

// UserPassword wraps a validated plaintext password. It never hashes; callers
// must hash the value before persisting and must never log it.
type UserPassword struct {
	value string
}

// NewUserPassword validates raw against the complexity policy and returns the
// trimmed plaintext. Rules run in order and short-circuit on the first
// violation.
func NewUserPassword(raw string) (UserPassword, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return UserPassword{}, errs.NewUserCreation("Password is required")
	}
	if len(trimmed) < passwordMinLength {
		return UserPassword{}, errs.NewUserCreation("Password must be at least 8 characters long")
	}
	if len(trimmed) > passwordMaxLength {
		return UserPassword{}, errs.NewUserCreation("Password must be at most 64 characters long")
	}
	if !meetsComplexity(trimmed) {
		return UserPassword{}, errs.NewUserCreation(passwordComplexityMessage)
	}

	return UserPassword{value: trimmed}, nil
}

// meetsComplexity requires one of each character class and rejects any
// character outside [A-Za-z0-9@$!%*?&].
func meetsComplexity(s string) bool {
	var lower, upper, digit, special bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.IndexByte(passwordSpecialSet, c) >= 0:
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

// IsValidPassword reports whether raw passes validation without surfacing the
// rule that failed.
func IsValidPassword(raw string) bool {
	_, err := NewUserPassword(raw)
	return err == nil
}

// Value returns the trimmed plaintext password.
func (p UserPassword) Value() string { return p.value }
