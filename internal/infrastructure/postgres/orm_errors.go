package postgres

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/autanasoft/accounts-api/internal/domain/errs"
)

// Messages customizes the human-readable text per error class for one call
// site. Zero-valued fields fall back to the defaults.
type Messages struct {
	UniqueConstraint string
	NotFound         string
	ForeignKey       string
	Validation       string
	Connection       string
	Unknown          string
}

var defaultMessages = Messages{
	UniqueConstraint: "duplicate key value violates unique constraint",
	NotFound:         "Resource not found",
	ForeignKey:       "Invalid reference in data",
	Validation:       "Invalid data provided",
	Connection:       "Database unavailable",
	Unknown:          "An unexpected error occurred",
}

func (m Messages) withDefaults() Messages {
	if m.UniqueConstraint == "" {
		m.UniqueConstraint = defaultMessages.UniqueConstraint
	}
	if m.NotFound == "" {
		m.NotFound = defaultMessages.NotFound
	}
	if m.ForeignKey == "" {
		m.ForeignKey = defaultMessages.ForeignKey
	}
	if m.Validation == "" {
		m.Validation = defaultMessages.Validation
	}
	if m.Connection == "" {
		m.Connection = defaultMessages.Connection
	}
	if m.Unknown == "" {
		m.Unknown = defaultMessages.Unknown
	}
	return m
}

// SQLSTATE codes and classes this adapter cares about.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
	codeQueryCanceled       = "57014"
	codeAdminShutdown       = "57P01"
	codeTooManyConnections  = "53300"

	classDataException       = "22"
	classConnectionException = "08"
)

// TranslateError maps a raw pgx/PostgreSQL error onto the domain error
// taxonomy. It always yields a *errs.DomainError; use cases never see
// driver-specific error types. Infrastructure failures are logged here,
// mandatory per the error handling policy; expected misses are logged at
// debug only.
func TranslateError(logger *logrus.Logger, err error, msgs Messages) *errs.DomainError {
	m := msgs.withDefaults()

	if errors.Is(err, pgx.ErrNoRows) {
		if logger != nil {
			logger.WithError(err).Debug("record not found")
		}
		return errs.NewNotFound(m.NotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return translatePgError(logger, pgErr, m)
	}

	if isConnectionFailure(err) {
		if logger != nil {
			logger.WithError(err).Error("database connection failure")
		}
		return errs.NewDatabase(m.Connection, err)
	}

	if logger != nil {
		logger.WithError(err).Error("unclassified database error")
	}
	return errs.NewDatabase(m.Unknown, err)
}

func translatePgError(logger *logrus.Logger, pgErr *pgconn.PgError, m Messages) *errs.DomainError {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if logger != nil {
		entry = logger.WithFields(logrus.Fields{
			"sqlstate":   pgErr.Code,
			"constraint": pgErr.ConstraintName,
			"table":      pgErr.TableName,
		})
	}

	switch {
	case pgErr.Code == codeUniqueViolation:
		entry.WithError(pgErr).Warn("unique constraint violation")
		return errs.NewConflict(m.UniqueConstraint, pgErr)
	case pgErr.Code == codeForeignKeyViolation:
		entry.WithError(pgErr).Warn("foreign key violation")
		return errs.NewDatabase(m.ForeignKey, pgErr)
	case pgErr.Code == codeNotNullViolation,
		pgErr.Code == codeCheckViolation,
		sqlstateClass(pgErr) == classDataException:
		entry.WithError(pgErr).Error("data validation rejected by database")
		return errs.NewDatabase(m.Validation, pgErr)
	case sqlstateClass(pgErr) == classConnectionException,
		pgErr.Code == codeQueryCanceled,
		pgErr.Code == codeAdminShutdown,
		pgErr.Code == codeTooManyConnections:
		entry.WithError(pgErr).Error("database connection failure")
		return errs.NewDatabase(m.Connection, pgErr)
	default:
		entry.WithError(pgErr).Error("unexpected database error")
		return errs.NewDatabase(m.Unknown, pgErr)
	}
}

// sqlstateClass returns the two-character SQLSTATE class.
func sqlstateClass(pgErr *pgconn.PgError) string {
	if len(pgErr.Code) < 2 {
		return ""
	}
	return pgErr.Code[:2]
}

func isConnectionFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
