package router

import (
	userapp "github.com/autanasoft/accounts-api/internal/application"
	"github.com/autanasoft/accounts-api/internal/container"
	repouser "github.com/autanasoft/accounts-api/internal/domain/repository"
	pginfra "github.com/autanasoft/accounts-api/internal/infrastructure/postgres"
	handlers "github.com/autanasoft/accounts-api/internal/interface/http"
	"github.com/autanasoft/accounts-api/internal/router/modules"
	"github.com/autanasoft/accounts-api/pkg/helpers"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	repo := pginfra.NewUserRepository(container.GetPGPool(), logger)

	service := userapp.NewService(
		repo,
		helpers.NewPasswordHasher(cfg.BcryptCost),
		logger,
		container.GetEventsPub(),
		container.GetEmailsPub(),
		container.GetES(),
		cfg.ESUsersIndex,
	).WithCache(container.GetRedis(), cfg.UserCacheTTL)

	handler := handlers.NewUserHandler(service, logger)

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler))
}
