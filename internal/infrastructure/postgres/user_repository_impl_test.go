package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autanasoft/accounts-api/internal/domain/entity"
	"github.com/autanasoft/accounts-api/internal/domain/errs"
	"github.com/autanasoft/accounts-api/internal/domain/repository"
)

var userCols = []string{"id", "email", "user_name", "password", "status", "role", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *UserRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock, silentLogger())
}

func sampleRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(userCols).AddRow(
		"123e4567-e89b-12d3-a456-426614174000",
		"valid@example.com",
		"validuser",
		"$2a$12$hash",
		entity.StatusRegistered,
		entity.RoleUser,
		now,
		now,
	)
}

func TestCreateAppliesDefaults(t *testing.T) {
	mock, repo := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("valid@example.com", "validuser", "$2a$12$hash",
			entity.StatusRegistered, entity.RoleUser).
		WillReturnRows(sampleRow(now))

	u, err := repo.Create(context.Background(), repository.CreateUserData{
		Email:    "valid@example.com",
		UserName: "validuser",
		Password: "$2a$12$hash",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRegistered, u.Status)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.NotEmpty(t, u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicateBecomesConflict(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("valid@example.com", "validuser", "$2a$12$hash",
			entity.StatusRegistered, entity.RoleUser).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_lower_key"})

	_, err := repo.Create(context.Background(), repository.CreateUserData{
		Email:    "valid@example.com",
		UserName: "validuser",
		Password: "$2a$12$hash",
	})
	require.Error(t, err)
	de, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.CodeConflict, de.Code)
	assert.Equal(t, 409, de.Status)
	assert.Contains(t, de.Message, "already exists")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDMissReturnsNil(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("unknown-id").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.FindByID(context.Background(), "unknown-id")
	require.NoError(t, err)
	assert.Nil(t, u)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailIsCaseInsensitive(t *testing.T) {
	mock, repo := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("Valid@Example.com").
		WillReturnRows(sampleRow(now))

	u, err := repo.FindByEmail(context.Background(), "Valid@Example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "valid@example.com", u.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOnlySuppliedFields(t *testing.T) {
	mock, repo := newMockRepo(t)
	now := time.Now()
	newName := "renamed"

	mock.ExpectQuery(`UPDATE users SET user_name = \$1, updated_at = now\(\) WHERE id = \$2`).
		WithArgs(newName, "123e4567-e89b-12d3-a456-426614174000").
		WillReturnRows(sampleRow(now))

	_, err := repo.Update(context.Background(), "123e4567-e89b-12d3-a456-426614174000",
		repository.UpdateUserData{UserName: &newName})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmptyPatchReadsInstead(t *testing.T) {
	mock, repo := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("123e4567-e89b-12d3-a456-426614174000").
		WillReturnRows(sampleRow(now))

	u, err := repo.Update(context.Background(), "123e4567-e89b-12d3-a456-426614174000",
		repository.UpdateUserData{})
	require.NoError(t, err)
	assert.Equal(t, "validuser", u.UserName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVanishedRowFails(t *testing.T) {
	mock, repo := newMockRepo(t)
	newName := "renamed"

	mock.ExpectQuery("UPDATE users SET").
		WithArgs(newName, "gone-id").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), "gone-id",
		repository.UpdateUserData{UserName: &newName})
	require.Error(t, err)
	de, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.CodeUserUpdateFailed, de.Code)
	assert.Contains(t, de.Message, "gone-id")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAll(t *testing.T) {
	mock, repo := newMockRepo(t)
	now := time.Now()

	rows := pgxmock.NewRows(userCols).
		AddRow("id-1", "a@example.com", "alice", "$2a$12$h1", entity.StatusActive, entity.RoleUser, now, now).
		AddRow("id-2", "b@example.com", "bob", "$2a$12$h2", entity.StatusRegistered, entity.RoleAdmin, now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(rows)

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].UserName)
	assert.Equal(t, entity.RoleAdmin, users[1].Role)
	require.NoError(t, mock.ExpectationsWereMet())
}
