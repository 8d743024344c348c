package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autanasoft/accounts-api/internal/domain/errs"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// ErrorBody is the error payload carried in APIResponse.Error. Extensions
// always contains "code" and "status" plus whatever context the domain error
// attached (offending value, id, domain and so on).
type ErrorBody struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions"`
}

// Success writes the envelope to the response and returns it.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	}
	ctx.JSON(status, resp)
	return resp
}

// Error writes the envelope to the response and returns it.
func Error[T any](ctx *gin.Context, status int, message string, err interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     err,
	}
	ctx.JSON(status, resp)
	return resp
}

// DomainError writes a domain error using its own HTTP status and wire shape.
// Errors that are not domain errors become an opaque 500 so internals never
// leak to clients.
func DomainError(ctx *gin.Context, err error) {
	de, ok := errs.As(err)
	if !ok {
		body := ErrorBody{
			Message: "Internal server error",
			Extensions: map[string]any{
				"code":   errs.CodeForStatus(http.StatusInternalServerError),
				"status": http.StatusInternalServerError,
			},
		}
		Error[any](ctx, http.StatusInternalServerError, body.Message, body)
		return
	}

	ext := map[string]any{
		"code":   de.Code,
		"status": de.Status,
	}
	for k, v := range de.Extensions {
		ext[k] = v
	}
	Error[any](ctx, de.Status, de.Message, ErrorBody{Message: de.Message, Extensions: ext})
}
