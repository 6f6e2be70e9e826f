package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func testUser(t *testing.T, id uint, email string, role user.Role) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, email, "hashed:secret123", role, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestRegisterCreatesUserAndIssuesTokens(t *testing.T) {
	var savedEmail string
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			savedEmail = u.Email()
			return u.SetID(7)
		},
	}
	uc := NewRegisterUseCase(repo, &mockHasher{}, &mockIssuer{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "Alice@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", savedEmail)
	assert.Equal(t, uint(7), result.User.ID)
	assert.Equal(t, "user", result.User.Role)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
}

func TestRegisterDuplicateEmailReturnsConflict(t *testing.T) {
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			return errors.NewConflictError("Email already registered")
		},
	}
	uc := NewRegisterUseCase(repo, &mockHasher{}, &mockIssuer{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "taken@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	// Conflicts surface as HTTP 400.
	assert.Equal(t, 400, errors.GetAppError(err).Code)
}

func TestRegisterValidation(t *testing.T) {
	uc := NewRegisterUseCase(&mockUserRepository{}, &mockHasher{}, &mockIssuer{}, logger.NewLogger())

	tests := []struct {
		name string
		cmd  RegisterCommand
	}{
		{"missing email", RegisterCommand{Password: "secret123"}},
		{"invalid email", RegisterCommand{Email: "nope", Password: "secret123"}},
		{"short password", RegisterCommand{Email: "a@b.com", Password: "short"}},
		{"bad role", RegisterCommand{Email: "a@b.com", Password: "secret123", Role: "owner"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestRegisterDefaultsRoleToUser(t *testing.T) {
	var savedRole user.Role
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			savedRole = u.Role()
			return u.SetID(1)
		},
	}
	uc := NewRegisterUseCase(repo, &mockHasher{}, &mockIssuer{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "a@b.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, savedRole)
}

func TestRegisterHonorsExplicitRole(t *testing.T) {
	var savedRole user.Role
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			savedRole = u.Role()
			return u.SetID(1)
		},
	}
	uc := NewRegisterUseCase(repo, &mockHasher{}, &mockIssuer{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "s@b.com",
		Password: "secret123",
		Role:     "support",
	})

	require.NoError(t, err)
	assert.Equal(t, user.RoleSupport, savedRole)
	assert.Equal(t, "support", result.User.Role)
}
