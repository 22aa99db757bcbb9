package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/scanventory/scanventory-backend/internal/config"
	"github.com/scanventory/scanventory-backend/internal/dto"
	"github.com/scanventory/scanventory-backend/internal/testutil"
)

func newAuthService(users *testutil.MemoryUserStore) *AuthService {
	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 168 * time.Hour,
	}
	return NewAuthService(users, cfg)
}

func TestRegisterIssuesSignedToken(t *testing.T) {
	users := testutil.NewMemoryUserStore()
	svc := newAuthService(users)

	resp, err := svc.Register(&dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", resp.User.Email)
	require.Equal(t, "Alice", resp.User.Name)
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, resp.User.ID.String(), claims["sub"])

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	require.WithinDuration(t, time.Now().Add(168*time.Hour), exp, time.Minute)
}

func TestRegisterStoresOnlyHash(t *testing.T) {
	users := testutil.NewMemoryUserStore()
	svc := newAuthService(users)

	_, err := svc.Register(&dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})
	require.NoError(t, err)

	stored, err := users.FindByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "password123", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := testutil.NewMemoryUserStore()
	svc := newAuthService(users)

	_, err := svc.Register(&dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{
		Name: "Ally", Email: "alice@example.com", Password: "password456",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
	require.Len(t, users.Users, 1)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(testutil.NewMemoryUserStore())

	_, err := svc.Register(&dto.RegisterRequest{Email: "a@b.c", Password: "password123"})
	require.Error(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Name: "A", Email: "a@b.c", Password: "short"})
	require.Error(t, err)
}

func TestLoginDoesNotLeakUserExistence(t *testing.T) {
	users := testutil.NewMemoryUserStore()
	svc := newAuthService(users)

	_, err := svc.Register(&dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "nope-nope"})
	_, unknownEmail := svc.Login(&dto.LoginRequest{Email: "bob@example.com", Password: "password123"})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	// Same message either way, so callers cannot probe which accounts exist.
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginSuccess(t *testing.T) {
	users := testutil.NewMemoryUserStore()
	svc := newAuthService(users)

	reg, err := svc.Register(&dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	require.Equal(t, reg.User.ID, resp.User.ID)
	require.NotEmpty(t, resp.Token)
}
