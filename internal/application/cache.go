package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autanasoft/accounts-api/internal/domain/entity"
)

// cachedUser is the Redis representation of a user. The password hash is
// deliberately not cached; reads served from cache carry an empty Password.
type cachedUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	UserName  string    `json:"user_name"`
	Status    string    `json:"status"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func cacheKey(id string) string { return "user:id:" + id }

// cacheGet returns the cached user or nil. Any Redis failure reads as a miss.
func (s *Service) cacheGet(ctx context.Context, id string) *entity.User {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil && s.Logger != nil {
			s.Logger.WithError(err).Debug("user cache read failed")
		}
		return nil
	}
	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil
	}
	return &entity.User{
		ID:        cu.ID,
		Email:     cu.Email,
		UserName:  cu.UserName,
		Status:    entity.UserStatus(cu.Status),
		Role:      entity.UserRole(cu.Role),
		CreatedAt: cu.CreatedAt,
		UpdatedAt: cu.UpdatedAt,
	}
}

func (s *Service) cacheSet(ctx context.Context, u *entity.User) {
	if s.Cache == nil || u == nil {
		return
	}
	b, err := json.Marshal(cachedUser{
		ID:        u.ID,
		Email:     u.Email,
		UserName:  u.UserName,
		Status:    string(u.Status),
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	})
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(u.ID), b, s.CacheTTL).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Debug("user cache write failed")
	}
}

func (s *Service) cacheInvalidate(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, cacheKey(id)).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Debug("user cache invalidation failed")
	}
}
