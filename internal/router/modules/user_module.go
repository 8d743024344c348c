package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/autanasoft/accounts-api/internal/container"
	handlers "github.com/autanasoft/accounts-api/internal/interface/http"
	"github.com/autanasoft/accounts-api/internal/interface/middleware"
)

// UserModule wires the user HTTP handlers into routes.
// Writes: POST /api/users, PUT /api/users/:id
// Reads:  GET /api/users, GET /api/users/:id, GET /api/users/by-email,
//         GET /api/users/search
// All routes are registered under the given RouterGroup (usually /api).

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	rdb := container.GetRedis()

	writeLimiter := middleware.RateLimit(rdb, cfg.RateLimitWriteMax, cfg.RateLimitWindowDur, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	readLimiter := middleware.RateLimit(rdb, cfg.RateLimitReadMax, cfg.RateLimitWindowDur, middleware.KeyByIP(), middleware.AllowPrivateIP())

	users := rg.Group("/users")
	{
		users.POST("", writeLimiter, m.Handler.Create)
		users.PUT("/:id", writeLimiter, m.Handler.Update)

		users.GET("", readLimiter, m.Handler.List)
		users.GET("/search", readLimiter, m.Handler.Search)
		users.GET("/by-email", readLimiter, m.Handler.FindByEmail)
		users.GET("/:id", readLimiter, m.Handler.FindByID)
	}
}
