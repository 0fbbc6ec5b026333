package services

import (
	"errors"

	"github.com/spendwise-app/spendwise-api/internal/models"
	"github.com/spendwise-app/spendwise-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	userRepo     *repository.UserRepository
	tokenService *TokenService
}

func NewAuthService(userRepo *repository.UserRepository, tokenService *TokenService) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Register creates an account and returns a signed token for it. Passwords
// are stored as bcrypt hashes, never verbatim.
func (s *AuthService) Register(username, email, password string) (string, error) {
	existing, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUserExists
	}

	existing, err = s.userRepo.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Username:          username,
		Email:             email,
		PasswordHash:      string(hash),
		Categories:        []models.Category{},
		RecurringExpenses: []models.RecurringExpense{},
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", err
	}

	return s.tokenService.GenerateToken(user.ID)
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokenService.GenerateToken(user.ID)
}
