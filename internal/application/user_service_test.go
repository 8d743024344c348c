package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/autanasoft/accounts-api/internal/domain/entity"
	"github.com/autanasoft/accounts-api/internal/domain/errs"
	repo "github.com/autanasoft/accounts-api/internal/domain/repository"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, data repo.CreateUserData) (*entity.User, error) {
	args := m.Called(ctx, data)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id string, data repo.UpdateUserData) (*entity.User, error) {
	args := m.Called(ctx, id, data)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if u, ok := args.Get(0).([]*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// stubHasher makes the hash deterministic so tests can assert the plaintext
// never reaches the repository.
type stubHasher struct{}

func (stubHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (stubHasher) Compare(plain, hash string) bool   { return "hashed:"+plain == hash }

func newTestService(r repo.UserRepository) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(r, stubHasher{}, logger, nil, nil, nil, "users")
}

func sampleUser() *entity.User {
	now := time.Now()
	return &entity.User{
		ID:        "7f0c2c44-9a6c-4f8f-9f05-0c5a5ef0a001",
		Email:     "jane.doe@example.com",
		UserName:  "jane_doe",
		Password:  "hashed:Str0ng@Pass",
		Status:    entity.StatusRegistered,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateUserNormalizesAndHashes(t *testing.T) {
	r := new(mockUserRepo)
	svc := newTestService(r)

	r.On("Create", mock.Anything, repo.CreateUserData{
		Email:    "jane.doe@example.com",
		UserName: "jane_doe",
		Password: "hashed:Str0ng@Pass",
	}).Return(sampleUser(), nil).Once()

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		UserName: "  jane_doe  ",
		Email:    "  Jane.Doe@Example.COM ",
		Password: "Str0ng@Pass",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.NotEqual(t, "Str0ng@Pass", user.Password)
	r.AssertExpectations(t)
}

func TestCreateUserForbiddenUserNameSkipsRepo(t *testing.T) {
	r := new(mockUserRepo)
	svc := newTestService(r)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		UserName: "site_admin",
		Email:    "someone@example.com",
		Password: "Str0ng@Pass",
	})
	require.Error(t, err)
	de, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.CodeForbiddenUserName, de.Code)
	assert.Equal(t, 403, de.Status)
	assert.Equal(t, "site_admin", de.Extensions["userName"])
	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUserForbiddenEmailDomainSkipsRepo(t *testing.T) {
	r := new(mockUserRepo)
	svc := newTestService(r)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		UserName: "jane_doe",
		Email:    "jane@autanasoft.com",
		Password: "Str0ng@Pass",
	})
	require.Error(t, err)
	de, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.CodeForbiddenEmailDomain, de.Code)
	assert.Equal(t, "autanasoft.com", de.Extensions["domain"])
	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUserValidationOrder(t *testing.T) {
	r := new(mockUserRepo)
	svc := newTestService(r)

	// Everything is invalid; the user name rule fires first.
	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		UserName: "",
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)
	assert.Equal(t, "UserName is required", err.Error())
}

func TestCreateUserRejectsUnknownEnums(t *testing.T) {
	r := new(mockUserRepo)
	svc := newTestService(r)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		UserName: "jane_doe",
		Email:    "jane@example.com",
		Password: "Str0ng@Pass",
		Status:   entity.UserStatus("FROZEN"),
	})
	require.Error(t, err)
	de, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.CodeBadUserInput, de.Code)

	_, err = svc.CreateUser(context.Background(), CreateUserInput{
		UserName: "jane_doe",
		Email:    "jane@example.com",
		Password: "Str0ng@Pass",
		Role:     entity.UserRole("OWNER"),
	})
	require.Error(t, err)
	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateUserNotFound(t *testing.T) {
	r := new(mockUserRepo)
	svc := newTestService(r)

	id := "b4f2a6de-98d6-4f3e-8eb0-000000000000"
	r.On("FindByID", mock.Anything, id).Return(nil, nil).Once()

	name := "new_name"
	_, err := svc.UpdateUser(context.Background(), id, UpdateUserInput{UserName: &name})
	require.Error(t, err)
	de, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.CodeUserNotFound, de.Code)
	assert.Equal(t, 404, de.Status)
	assert.Equal(t, id, de.Extensions["id"])
	r.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUserOnlySuppliedFields(t *testing.T) {
	r := new(mockUserRepo)
	svc := newTestService(r)

	existing := sampleUser()
	r.On("FindByID", mock.Anything, existing.ID).Return(existing, nil).Once()

	r.On("Update", mock.Anything, existing.ID, mock.MatchedBy(func(data repo.UpdateUserData) bool {
		return data.UserName != nil && *data.UserName == "renamed" &&
			data.Email == nil && data.Password == nil &&
			data.Status == nil && data.Role == nil
	})).Return(existing, nil).Once()

	name := " renamed "
	_, err := svc.UpdateUser(context.Background(), existing.ID, UpdateUserInput{UserName: &name})
	require.NoError(t, err)
	r.AssertExpectations(t)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	r := new(mockUserRepo)
	svc := newTestService(r)

	existing := sampleUser()
	r.On("FindByID", mock.Anything, existing.ID).Return(existing, nil).Once()
	r.On("Update", mock.Anything, existing.ID, mock.MatchedBy(func(data repo.UpdateUserData) bool {
		return data.Password != nil && *data.Password == "hashed:N3w@Secret"
	})).Return(existing, nil).Once()

	pw := "N3w@Secret"
	_, err := svc.UpdateUser(context.Background(), existing.ID, UpdateUserInput{Password: &pw})
	require.NoError(t, err)
	r.AssertExpectations(t)
}

func TestUpdateUserRejectsInvalidField(t *testing.T) {
	r := new(mockUserRepo)
	svc := newTestService(r)

	existing := sampleUser()
	r.On("FindByID", mock.Anything, existing.ID).Return(existing, nil).Once()

	bad := "x"
	_, err := svc.UpdateUser(context.Background(), existing.ID, UpdateUserInput{UserName: &bad})
	require.Error(t, err)
	assert.Equal(t, "UserName must be between 3 and 20 characters long", err.Error())
	r.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestFindUserByIDMissing(t *testing.T) {
	r := new(mockUserRepo)
	svc := newTestService(r)

	id := "2d1d7b8a-5f1c-4f6e-b0cd-111111111111"
	r.On("FindByID", mock.Anything, id).Return(nil, nil).Once()

	_, err := svc.FindUserByID(context.Background(), id)
	require.Error(t, err)
	de, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.CodeUserNotFound, de.Code)
	assert.Contains(t, de.Message, id)
}

func TestFindUserByEmailFound(t *testing.T) {
	r := new(mockUserRepo)
	svc := newTestService(r)

	want := sampleUser()
	r.On("FindByEmail", mock.Anything, "jane.doe@example.com").Return(want, nil).Once()

	got, err := svc.FindUserByEmail(context.Background(), "jane.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindAllUsersPassesThrough(t *testing.T) {
	r := new(mockUserRepo)
	svc := newTestService(r)

	want := []*entity.User{sampleUser()}
	r.On("FindAll", mock.Anything).Return(want, nil).Once()

	got, err := svc.FindAllUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
