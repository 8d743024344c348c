package valueobject

import (
	"strings"

	"github.com/autanasoft/accounts-api/internal/domain/errs"
)

const (
	userNameMinLength = 3
	userNameMaxLength = 20
)

// UserName wraps a validated user name. The stored value keeps its original
// case; lower-casing is applied only for the reserved-word comparison.
type UserName struct {
	value string
}

// NewUserName validates raw and returns the trimmed user name. Format rules
// run in order and short-circuit on the first violation, then the value is
// scanned for reserved words by case-insensitive substring containment.
func NewUserName(raw string) (UserName, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return UserName{}, errs.NewUserCreation("UserName is required")
	}
	if len(trimmed) < userNameMinLength || len(trimmed) > userNameMaxLength {
		return UserName{}, errs.NewUserCreation("UserName must be between 3 and 20 characters long")
	}
	if !isASCIILetter(trimmed[0]) {
		return UserName{}, errs.NewUserCreation("UserName must start with a letter")
	}
	for i := 0; i < len(trimmed); i++ {
		if !isUserNameChar(trimmed[i]) {
			return UserName{}, errs.NewUserCreation("UserName can only contain letters, digits, '.', '_' and '-'")
		}
	}

	if _, hit := forbiddenNameIn(strings.ToLower(trimmed)); hit {
		return UserName{}, errs.NewForbiddenUserName(trimmed)
	}

	return UserName{value: trimmed}, nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isUserNameChar(c byte) bool {
	return isASCIILetter(c) || (c >= '0' && c <= '9') || c == '.' || c == '_' || c == '-'
}

// Value returns the trimmed user name with its original casing.
func (n UserName) Value() string { return n.value }

// Equals compares two user names case-insensitively.
func (n UserName) Equals(other UserName) bool {
	return strings.EqualFold(n.value, other.value)
}

func (n UserName) String() string { return n.value }
