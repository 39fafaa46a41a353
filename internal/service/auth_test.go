package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gitpichardo/self-starter/internal/service"
)

func newAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	emails := service.NewEmailService("", "noreply@example.com", "http://localhost:8090", "Self-Starter", true)
	return service.NewAuthService(newTestStore(t).Users(), emails, "test-secret", false, time.Hour)
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	auth := newAuthService(t)

	user, err := auth.Register("Ada", "ada@example.com", "correct-horse-battery")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "ada@example.com", user.Email)
	require.NotNil(t, user.Name)
	require.Equal(t, "Ada", *user.Name)
	require.True(t, user.HasPassword())
	require.NotEqual(t, "correct-horse-battery", *user.PasswordHash)

	got, err := auth.Login("ada@example.com", "correct-horse-battery")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = auth.Login("ada@example.com", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = auth.Login("nobody@example.com", "correct-horse-battery")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthServiceRegisterRejectsDuplicateEmail(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Register("Ada", "ada@example.com", "correct-horse-battery")
	require.NoError(t, err)

	_, err = auth.Register("Imposter", "ada@example.com", "another-fine-phrase")
	require.ErrorIs(t, err, service.ErrEmailAlreadyExists)
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Register("", "ada@example.com", "correct-horse-battery")
	require.Error(t, err)

	_, err = auth.Register("Ada", "not-an-email", "correct-horse-battery")
	require.Error(t, err)

	_, err = auth.Register("Ada", "ada@example.com", "short")
	require.Error(t, err)

	_, err = auth.Register("Ada", "ada@example.com", "password123")
	require.Error(t, err)
}

func TestAuthServiceJWTRoundTrip(t *testing.T) {
	auth := newAuthService(t)

	user, err := auth.Register("Ada", "ada@example.com", "correct-horse-battery")
	require.NoError(t, err)

	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := auth.VerifyJWT(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims["user_id"])
	require.Equal(t, user.Email, claims["email"])

	_, err = auth.VerifyJWT(token + "tampered")
	require.Error(t, err)
}
