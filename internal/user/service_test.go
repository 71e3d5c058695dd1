package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"luxestore-be/internal/auth"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewManager("test-secret")

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, tokens)

		repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)

		token, u, err := svc.Register(ctx, "shopper@example.com", "hunter2!", "Sam")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		require.NotNil(t, u)
		assert.NotEmpty(t, u.ID)
		assert.True(t, CheckPasswordHash("hunter2!", u.PasswordHash))

		claims, err := tokens.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, u.ID, claims.UserID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, tokens)

		repo.On("Create", ctx, mock.Anything).Return(ErrEmailExists)

		_, _, err := svc.Register(ctx, "taken@example.com", "pw", "")
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, tokens)

		repo.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

		_, _, err := svc.Register(ctx, "shopper@example.com", "pw", "")
		assert.ErrorIs(t, err, ErrFailedCreateUser)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewManager("test-secret")

	hash, err := HashPassword("hunter2!")
	require.NoError(t, err)
	stored := &User{ID: "u1", Email: "shopper@example.com", PasswordHash: hash, CreatedAt: time.Now()}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, tokens)

		repo.On("FindByEmail", ctx, "shopper@example.com").Return(stored, nil)

		token, u, err := svc.Login(ctx, "shopper@example.com", "hunter2!")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "u1", u.ID)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, tokens)

		repo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, ErrUserNotFound)

		_, _, err := svc.Login(ctx, "nobody@example.com", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, tokens)

		repo.On("FindByEmail", ctx, "shopper@example.com").Return(stored, nil)

		_, _, err := svc.Login(ctx, "shopper@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
