package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/autanasoft/accounts-api/internal/domain/entity"
	"github.com/autanasoft/accounts-api/pkg/mailer"
)

const (
	eventUserCreated = "user.created"
	eventUserUpdated = "user.updated"
)

// UserEvent is the JSON payload published to the lifecycle queue for
// downstream consumers. It never carries the password hash.
type UserEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	UserName  string    `json:"user_name"`
	Status    string    `json:"status"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

// afterWrite runs the best-effort side channels of a successful write:
// lifecycle event publishing and search indexing. Failures are logged and
// swallowed; they never fail the use case.
func (s *Service) afterWrite(ctx context.Context, u *entity.User, eventType string) {
	if err := s.Events.PublishJSON(ctx, UserEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    u.ID,
		Email:     u.Email,
		UserName:  u.UserName,
		Status:    string(u.Status),
		Role:      string(u.Role),
		Timestamp: time.Now().UTC(),
	}); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("event publish failed")
	}

	_ = s.indexUser(ctx, u)
}

// sendWelcomeEmail queues the registration notification for the email worker.
func (s *Service) sendWelcomeEmail(ctx context.Context, u *entity.User) {
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"UserName": u.UserName},
	}
	if err := s.Emails.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
	}
}
