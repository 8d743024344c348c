package postgres

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autanasoft/accounts-api/internal/domain/errs"
)

func silentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestTranslateErrorNoRows(t *testing.T) {
	de := TranslateError(silentLogger(), pgx.ErrNoRows, Messages{})
	assert.Equal(t, errs.CodeNotFound, de.Code)
	assert.Equal(t, "Resource not found", de.Message)
	assert.Equal(t, 404, de.Status)
}

func TestTranslateErrorSQLStates(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    string
		message string
	}{
		{"unique violation", "23505", errs.CodeConflict, "duplicate key value violates unique constraint"},
		{"foreign key violation", "23503", errs.CodeDatabase, "Invalid reference in data"},
		{"not null violation", "23502", errs.CodeDatabase, "Invalid data provided"},
		{"check violation", "23514", errs.CodeDatabase, "Invalid data provided"},
		{"invalid text representation", "22P02", errs.CodeDatabase, "Invalid data provided"},
		{"connection does not exist", "08003", errs.CodeDatabase, "Database unavailable"},
		{"query canceled", "57014", errs.CodeDatabase, "Database unavailable"},
		{"admin shutdown", "57P01", errs.CodeDatabase, "Database unavailable"},
		{"too many connections", "53300", errs.CodeDatabase, "Database unavailable"},
		{"syntax error", "42601", errs.CodeDatabase, "An unexpected error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tt.code, Message: "raw driver detail"}
			de := TranslateError(silentLogger(), pgErr, Messages{})
			assert.Equal(t, tt.want, de.Code)
			assert.Equal(t, tt.message, de.Message)
			// Original cause stays reachable for logs, never in the message.
			require.ErrorIs(t, de, pgErr)
			assert.NotEqual(t, "raw driver detail", de.Message)
		})
	}
}

func TestTranslateErrorCustomMessages(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	de := TranslateError(silentLogger(), pgErr, Messages{
		UniqueConstraint: "User with email 'a@b.com' or user name 'abc' already exists",
	})
	assert.Equal(t, errs.CodeConflict, de.Code)
	assert.Equal(t, 409, de.Status)
	assert.Contains(t, de.Message, "already exists")
}

func TestTranslateErrorConnectionFailures(t *testing.T) {
	for name, err := range map[string]error{
		"deadline": context.DeadlineExceeded,
		"net":      &net.OpError{Op: "dial", Err: errors.New("connection refused")},
	} {
		t.Run(name, func(t *testing.T) {
			de := TranslateError(silentLogger(), err, Messages{})
			assert.Equal(t, errs.CodeDatabase, de.Code)
			assert.Equal(t, "Database unavailable", de.Message)
		})
	}
}

func TestTranslateErrorUnknown(t *testing.T) {
	de := TranslateError(silentLogger(), errors.New("weird driver state"), Messages{})
	assert.Equal(t, errs.CodeDatabase, de.Code)
	assert.Equal(t, "An unexpected error occurred", de.Message)
	assert.Equal(t, 500, de.Status)
}
