package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/autanasoft/accounts-api/internal/domain/entity"
	"github.com/autanasoft/accounts-api/internal/domain/errs"
	"github.com/autanasoft/accounts-api/internal/domain/repository"
)

// DB is the pgx surface the repository needs. *pgxpool.Pool satisfies it, as
// does a pgxmock pool in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const userColumns = "id, email, user_name, password, status, role, created_at, updated_at"

// UserRepository is the PostgreSQL adapter for the user persistence port.
// All raw pgx errors leave this type translated into the domain taxonomy.
type UserRepository struct {
	db     DB
	logger *logrus.Logger
}

func NewUserRepository(db DB, logger *logrus.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, data repository.CreateUserData) (*entity.User, error) {
	if data.Status == "" {
		data.Status = entity.StatusRegistered
	}
	if data.Role == "" {
		data.Role = entity.RoleUser
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO users (email, user_name, password, status, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns+`
	`, data.Email, data.UserName, data.Password, data.Status, data.Role)

	u, err := scanUser(row)
	if err != nil {
		return nil, TranslateError(r.logger, err, Messages{
			UniqueConstraint: fmt.Sprintf("User with email '%s' or user name '%s' already exists", data.Email, data.UserName),
		})
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, data repository.UpdateUserData) (*entity.User, error) {
	// An empty patch is a read, not a write; updated_at stays untouched.
	if data.IsEmpty() {
		u, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, errs.NewUserUpdateFailed(fmt.Sprintf("User with ID %s could not be updated", id))
		}
		return u, nil
	}

	set := make([]string, 0, 6)
	args := make([]any, 0, 6)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if data.Email != nil {
		add("email", *data.Email)
	}
	if data.UserName != nil {
		add("user_name", *data.UserName)
	}
	if data.Password != nil {
		add("password", *data.Password)
	}
	if data.Status != nil {
		add("status", *data.Status)
	}
	if data.Role != nil {
		add("role", *data.Role)
	}
	set = append(set, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), userColumns,
	)

	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		// The caller verified existence just before, so an empty result here
		// means the row vanished mid-flight rather than an ordinary miss.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewUserUpdateFailed(fmt.Sprintf("User with ID %s could not be updated", id))
		}
		var email, userName string
		if data.Email != nil {
			email = *data.Email
		}
		if data.UserName != nil {
			userName = *data.UserName
		}
		return nil, TranslateError(r.logger, err, Messages{
			UniqueConstraint: fmt.Sprintf("User with email '%s' or user name '%s' already exists", email, userName),
		})
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, TranslateError(r.logger, err, Messages{})
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE lower(email) = lower($1)
	`, email)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, TranslateError(r.logger, err, Messages{})
	}
	return u, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, TranslateError(r.logger, err, Messages{})
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		u := &entity.User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.UserName, &u.Password, &u.Status, &u.Role,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, TranslateError(r.logger, err, Messages{})
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, TranslateError(r.logger, err, Messages{})
	}
	return users, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.UserName, &u.Password, &u.Status, &u.Role,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
