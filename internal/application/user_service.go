package application

import (
	"context"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/autanasoft/accounts-api/internal/domain/entity"
	"github.com/autanasoft/accounts-api/internal/domain/errs"
	repo "github.com/autanasoft/accounts-api/internal/domain/repository"
	"github.com/autanasoft/accounts-api/internal/domain/valueobject"
	"github.com/autanasoft/accounts-api/pkg/helpers"
)

// Hasher is the password hashing capability consumed by the use cases.
// *helpers.PasswordHasher is the production implementation.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hash string) bool
}

// Service orchestrates the user use cases: value-object validation, password
// hashing and repository calls. It holds no per-request state.
type Service struct {
	Repo         repo.UserRepository
	Hasher       Hasher
	Logger       *logrus.Logger
	Events       *helpers.RabbitPublisher // user lifecycle events, optional
	Emails       *helpers.RabbitPublisher // welcome email jobs, optional
	ES           *elasticsearch.Client    // best-effort search index, optional
	ESUsersIndex string
	Cache        *redis.Client // best-effort read cache, optional
	CacheTTL     time.Duration
}

func NewService(r repo.UserRepository, hasher Hasher, logger *logrus.Logger,
	events, emails *helpers.RabbitPublisher, es *elasticsearch.Client, esUsersIndex string) *Service {
	return &Service{
		Repo:         r,
		Hasher:       hasher,
		Logger:       logger,
		Events:       events,
		Emails:       emails,
		ES:           es,
		ESUsersIndex: esUsersIndex,
	}
}

// WithCache enables the Redis read cache for FindUserByID. A zero ttl
// defaults to five minutes.
func (s *Service) WithCache(rdb *redis.Client, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	s.Cache = rdb
	s.CacheTTL = ttl
	return s
}

// CreateUserInput is the command for CreateUser. Status and Role are optional
// and default to REGISTERED / USER.
type CreateUserInput struct {
	UserName string
	Email    string
	Password string
	Status   entity.UserStatus
	Role     entity.UserRole
}

// UpdateUserInput is the partial update for UpdateUser; nil means "leave as is".
type UpdateUserInput struct {
	UserName *string
	Email    *string
	Password *string
	Status   *entity.UserStatus
	Role     *entity.UserRole
}

// CreateUser validates the command through the domain value objects, hashes
// the password and persists the new user. No side effect happens before the
// whole command validated.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	log := helpers.UseCase(s.Logger, "CreateUser")

	userName, err := valueobject.NewUserName(in.UserName)
	if err != nil {
		log.WithError(err).Debug("user name rejected")
		return nil, err
	}
	email, err := valueobject.NewUserEmail(in.Email)
	if err != nil {
		log.WithError(err).Debug("email rejected")
		return nil, err
	}
	password, err := valueobject.NewUserPassword(in.Password)
	if err != nil {
		// Never log the password itself, valid or not.
		log.Debug("password rejected")
		return nil, err
	}
	if in.Status != "" && !entity.ValidStatus(in.Status) {
		return nil, errs.NewUserCreation("Status must be one of REGISTERED, ACTIVE, SUSPENDED, BANNED")
	}
	if in.Role != "" && !entity.ValidRole(in.Role) {
		return nil, errs.NewUserCreation("Role must be one of ADMIN, USER, GUEST")
	}

	hashed, err := s.Hasher.Hash(password.Value())
	if err != nil {
		log.WithError(err).Error("password hashing failed")
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Repo.Create(ctx, repo.CreateUserData{
		Email:    email.Value(),
		UserName: userName.Value(),
		Password: hashed,
		Status:   in.Status,
		Role:     in.Role,
	})
	if err != nil {
		return nil, err
	}

	log.WithField("user_id", user.ID).Info("user created")
	s.cacheSet(ctx, user)
	s.afterWrite(ctx, user, eventUserCreated)
	s.sendWelcomeEmail(ctx, user)
	return user, nil
}

// UpdateUser applies a partial update. The target must exist before any field
// is validated; supplied fields pass through the same value objects as
// creation and the password is re-hashed.
func (s *Service) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*entity.User, error) {
	log := helpers.UseCase(s.Logger, "UpdateUser").WithField("user_id", id)

	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		log.Warn("update target not found")
		return nil, errs.NewUserNotFound(fmt.Sprintf("User with ID %s not found", id)).WithExtension("id", id)
	}

	var data repo.UpdateUserData
	if in.UserName != nil {
		userName, err := valueobject.NewUserName(*in.UserName)
		if err != nil {
			return nil, err
		}
		v := userName.Value()
		data.UserName = &v
	}
	if in.Email != nil {
		email, err := valueobject.NewUserEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		v := email.Value()
		data.Email = &v
	}
	if in.Password != nil {
		password, err := valueobject.NewUserPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		hashed, err := s.Hasher.Hash(password.Value())
		if err != nil {
			log.WithError(err).Error("password hashing failed")
			return nil, fmt.Errorf("hash password: %w", err)
		}
		data.Password = &hashed
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, errs.NewUserCreation("Status must be one of REGISTERED, ACTIVE, SUSPENDED, BANNED")
		}
		data.Status = in.Status
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, errs.NewUserCreation("Role must be one of ADMIN, USER, GUEST")
		}
		data.Role = in.Role
	}

	user, err := s.Repo.Update(ctx, id, data)
	if err != nil {
		return nil, err
	}

	log.Info("user updated")
	s.cacheInvalidate(ctx, id)
	s.afterWrite(ctx, user, eventUserUpdated)
	return user, nil
}

// FindUserByID returns the user for id or USER_NOT_FOUND. Hits are served
// from the Redis cache when one is configured.
func (s *Service) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	if cached := s.cacheGet(ctx, id); cached != nil {
		return cached, nil
	}
	user, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		helpers.UseCase(s.Logger, "FindUserById").WithField("user_id", id).Warn("user not found")
		return nil, errs.NewUserNotFound(fmt.Sprintf("User not found with ID: %s", id)).WithExtension("id", id)
	}
	s.cacheSet(ctx, user)
	return user, nil
}

// FindUserByEmail returns the user for email or USER_NOT_FOUND. The lookup is
// case-insensitive at the persistence layer.
func (s *Service) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		helpers.UseCase(s.Logger, "FindUserByEmail").WithField("email", email).Warn("user not found")
		return nil, errs.NewUserNotFound(fmt.Sprintf("User not found with email: %s", email)).WithExtension("email", email)
	}
	return user, nil
}

// FindAllUsers returns every user.
func (s *Service) FindAllUsers(ctx context.Context) ([]*entity.User, error) {
	return s.Repo.FindAll(ctx)
}
