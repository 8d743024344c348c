package repository

import (
	"context"

	"github.com/autanasoft/accounts-api/internal/domain/entity"
)

// CreateUserData carries the normalized, already-hashed data for a new user.
// Status and Role are optional; persistence applies the documented defaults
// (REGISTERED / USER) when they are empty.
type CreateUserData struct {
	Email    string
	UserName string
	Password string // bcrypt hash, never plaintext
	Status   entity.UserStatus
	Role     entity.UserRole
}

// UpdateUserData carries a partial update; nil fields are left untouched.
type UpdateUserData struct {
	Email    *string
	UserName *string
	Password *string // bcrypt hash, never plaintext
	Status   *entity.UserStatus
	Role     *entity.UserRole
}

// IsEmpty reports whether no field was supplied.
func (d UpdateUserData) IsEmpty() bool {
	return d.Email == nil && d.UserName == nil && d.Password == nil && d.Status == nil && d.Role == nil
}

// UserRepository is the persistence port for the user aggregate.
//
// Implementations translate their raw errors into the domain taxonomy before
// returning; callers never see driver-specific error types. Lookups return
// (nil, nil) when no user matches, and FindByEmail matches case-insensitively.
type UserRepository interface {
	Create(ctx context.Context, data CreateUserData) (*entity.User, error)
	Update(ctx context.Context, id string, data UpdateUserData) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
}
