package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	userapp "github.com/autanasoft/accounts-api/internal/application"
	"github.com/autanasoft/accounts-api/internal/domain/entity"
	"github.com/autanasoft/accounts-api/pkg/response"
	"github.com/autanasoft/accounts-api/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Status   string `json:"status" binding:"omitempty,oneof=REGISTERED ACTIVE SUSPENDED BANNED"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN USER GUEST"`
}

type updateUserRequest struct {
	UserName *string `json:"userName"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Status   *string `json:"status" binding:"omitempty,oneof=REGISTERED ACTIVE SUSPENDED BANNED"`
	Role     *string `json:"role" binding:"omitempty,oneof=ADMIN USER GUEST"`
}

// userResponse is the public view of a user; the password hash never leaves
// the service.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	UserName  string    `json:"userName"`
	Status    string    `json:"status"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		UserName:  u.UserName,
		Status:    string(u.Status),
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	user, err := h.Svc.CreateUser(c.Request.Context(), userapp.CreateUserInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Status:   entity.UserStatus(req.Status),
		Role:     entity.UserRole(req.Role),
	})
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserResponse(user), "user created", nil)
}

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"id": "must be a valid UUID"})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := userapp.UpdateUserInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Status != nil {
		s := entity.UserStatus(*req.Status)
		in.Status = &s
	}
	if req.Role != nil {
		r := entity.UserRole(*req.Role)
		in.Role = &r
	}

	user, err := h.Svc.UpdateUser(c.Request.Context(), id, in)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(user), "user updated", nil)
}

func (h *UserHandler) FindByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"id": "must be a valid UUID"})
		return
	}
	user, err := h.Svc.FindUserByID(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(user), "ok", nil)
}

func (h *UserHandler) FindByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"email": "is required"})
		return
	}
	user, err := h.Svc.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(user), "ok", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.FindAllUsers(c.Request.Context())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	response.Success(c, http.StatusOK, out, "ok", map[string]any{"count": len(out)})
}

func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"q": "is required"})
		return
	}
	size := 10
	if s := c.Query("size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			size = n
		}
	}
	hits, err := h.Svc.SearchUsers(c.Request.Context(), q, size)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "ok", map[string]any{"count": len(hits)})
}
