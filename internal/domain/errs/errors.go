package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable error codes surfaced in the API error envelope.
// Clients branch on these, so they are part of the wire contract.
const (
	CodeBadUserInput         = "BAD_USER_INPUT"
	CodeForbiddenUserName    = "FORBIDDEN_USERNAME"
	CodeForbiddenEmailDomain = "FORBIDDEN_EMAIL_DOMAIN"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeUserUpdateFailed     = "USER_UPDATE_FAILED"
	CodeConflict             = "CONFLICT"
	CodeNotFound             = "NOT_FOUND"
	CodeDatabase             = "DATA_BASE_SERVER_ERROR"
	CodeExternalService      = "EXTERNAL_SERVICE_ERROR"
)

// DomainError is a typed failure carrying a stable code, an HTTP-equivalent
// status and optional structured context. It is raised at the point of
// detection and propagates unchanged to the API boundary.
type DomainError struct {
	Code       string
	Status     int
	Message    string
	Extensions map[string]any
	cause      error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.cause }

// WithExtension attaches a context field and returns the same error for chaining.
func (e *DomainError) WithExtension(key string, value any) *DomainError {
	if e.Extensions == nil {
		e.Extensions = map[string]any{}
	}
	e.Extensions[key] = value
	return e
}

// As unwraps err into a *DomainError when possible.
func As(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// NewUserCreation reports a value-object format rule violation.
func NewUserCreation(message string) *DomainError {
	return &DomainError{Code: CodeBadUserInput, Status: http.StatusBadRequest, Message: message}
}

// NewForbiddenUserName reports a user name matching the reserved-name list.
// The original, non-normalized value is carried in the extensions.
func NewForbiddenUserName(userName string) *DomainError {
	return &DomainError{
		Code:       CodeForbiddenUserName,
		Status:     http.StatusForbidden,
		Message:    fmt.Sprintf("The user name '%s' is not allowed", userName),
		Extensions: map[string]any{"userName": userName},
	}
}

// NewForbiddenEmailDomain reports an email whose domain is blacklisted.
func NewForbiddenEmailDomain(email, domain string) *DomainError {
	return &DomainError{
		Code:       CodeForbiddenEmailDomain,
		Status:     http.StatusForbidden,
		Message:    fmt.Sprintf("The email domain '%s' is not allowed", domain),
		Extensions: map[string]any{"email": email, "domain": domain},
	}
}

// NewUserNotFound reports a lookup miss for a concrete user.
func NewUserNotFound(message string) *DomainError {
	if message == "" {
		message = "User not found"
	}
	return &DomainError{Code: CodeUserNotFound, Status: http.StatusNotFound, Message: message}
}

// NewUserUpdateFailed reports a persistence layer that signalled an
// unsuccessful update without raising.
func NewUserUpdateFailed(message string) *DomainError {
	if message == "" {
		message = "User update failed"
	}
	return &DomainError{Code: CodeUserUpdateFailed, Status: http.StatusInternalServerError, Message: message}
}

// NewConflict reports a unique-constraint violation.
func NewConflict(message string, cause error) *DomainError {
	return &DomainError{Code: CodeConflict, Status: http.StatusConflict, Message: message, cause: cause}
}

// NewNotFound reports a generic entity-not-found condition from persistence.
func NewNotFound(message string, cause error) *DomainError {
	return &DomainError{Code: CodeNotFound, Status: http.StatusNotFound, Message: message, cause: cause}
}

// NewDatabase reports any other persistence-layer failure.
func NewDatabase(message string, cause error) *DomainError {
	return &DomainError{Code: CodeDatabase, Status: http.StatusInternalServerError, Message: message, cause: cause}
}

// NewExternalService reports a downstream dependency failure.
func NewExternalService(message string, cause error) *DomainError {
	return &DomainError{Code: CodeExternalService, Status: http.StatusBadGateway, Message: message, cause: cause}
}

// CodeForStatus maps an HTTP status to the closest generic code. Used as a
// fallback when a non-domain error reaches the API boundary.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeBadUserInput
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusBadGateway:
		return CodeExternalService
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
