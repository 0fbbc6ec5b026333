package services

import (
	"errors"

	"github.com/spendwise-app/spendwise-api/internal/models"
	"github.com/spendwise-app/spendwise-api/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// SettingsPatch updates a user's configuration. Each supplied field replaces
// the stored value wholesale; categories and recurring expenses are never
// merged element-wise.
type SettingsPatch struct {
	Categories        *[]models.Category
	RecurringExpenses *[]models.RecurringExpense
	Budget            *float64
}

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetByID(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateSettings(userID uint, patch SettingsPatch) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if patch.Categories != nil {
		user.Categories = *patch.Categories
	}
	if patch.RecurringExpenses != nil {
		user.RecurringExpenses = *patch.RecurringExpenses
	}
	if patch.Budget != nil {
		user.Budget = *patch.Budget
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}
