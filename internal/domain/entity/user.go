package entity

import (
	"time"
)

// UserStatus enumerates the lifecycle states of an account.
type UserStatus string

const (
	StatusRegistered UserStatus = "REGISTERED"
	StatusActive     UserStatus = "ACTIVE"
	StatusSuspended  UserStatus = "SUSPENDED"
	StatusBanned     UserStatus = "BANNED"
)

// UserRole enumerates the roles an account can hold. The role is stored
// but not enforced here; authorization lives outside this service.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
	RoleGuest UserRole = "GUEST"
)

// ValidStatus reports whether s is one of the enumerated statuses.
func ValidStatus(s UserStatus) bool {
	switch s {
	case StatusRegistered, StatusActive, StatusSuspended, StatusBanned:
		return true
	}
	return false
}

// ValidRole reports whether r is one of the enumerated roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// User is the aggregate root for the user domain.
// Password always holds a bcrypt hash; plaintext never reaches this struct.
type User struct {
	ID        string
	Email     string
	UserName  string
	Password  string
	Status    UserStatus
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}
