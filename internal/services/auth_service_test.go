package services

import (
	"testing"
	"time"

	"github.com/spendwise-app/spendwise-api/internal/database"
	"github.com/spendwise-app/spendwise-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthTestDB(t *testing.T) (*repository.UserRepository, *AuthService, *TokenService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	tokenService := NewTokenService("test-secret", time.Hour)
	authService := NewAuthService(userRepo, tokenService)

	return userRepo, authService, tokenService
}

func TestAuthService_Register(t *testing.T) {
	userRepo, authService, tokenService := setupAuthTestDB(t)

	token, err := authService.Register("alice", "alice@example.com", "hunter22")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := userRepo.FindByUsername("alice")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user.Email)

	// Credential must be stored hashed, never verbatim
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))

	claims, err := tokenService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	_, authService, _ := setupAuthTestDB(t)

	_, err := authService.Register("alice", "alice@example.com", "hunter22")
	assert.NoError(t, err)

	_, err = authService.Register("alice", "other@example.com", "hunter22")
	assert.Equal(t, ErrUserExists, err)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	_, authService, _ := setupAuthTestDB(t)

	_, err := authService.Register("alice", "alice@example.com", "hunter22")
	assert.NoError(t, err)

	_, err = authService.Register("alice2", "alice@example.com", "hunter22")
	assert.Equal(t, ErrUserExists, err)
}

func TestAuthService_Login(t *testing.T) {
	_, authService, tokenService := setupAuthTestDB(t)

	_, err := authService.Register("bob", "bob@example.com", "correct-horse")
	assert.NoError(t, err)

	token, err := authService.Login("bob@example.com", "correct-horse")
	assert.NoError(t, err)

	claims, err := tokenService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotZero(t, claims.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	_, authService, _ := setupAuthTestDB(t)

	_, err := authService.Register("bob", "bob@example.com", "correct-horse")
	assert.NoError(t, err)

	_, err = authService.Login("bob@example.com", "battery-staple")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	_, authService, _ := setupAuthTestDB(t)

	_, err := authService.Login("nobody@example.com", "whatever")
	assert.Equal(t, ErrInvalidCredentials, err)
}
