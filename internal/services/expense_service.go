package services

import (
	"errors"
	"time"

	"github.com/spendwise-app/spendwise-api/internal/models"
	"github.com/spendwise-app/spendwise-api/internal/repository"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrNotExpenseOwner = errors.New("not the expense owner")
)

// NewExpense carries the fields a caller may set when recording an expense.
type NewExpense struct {
	Type        string
	Amount      float64
	Description string
	Date        time.Time
	CategoryID  *int
}

// ExpensePatch is a partial update. Nil means "leave the field alone", so an
// explicit zero amount or empty description is distinguishable from absence.
type ExpensePatch struct {
	Type        *string
	Amount      *float64
	Description *string
	Date        *time.Time
	CategoryID  *int
}

type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
}

func NewExpenseService(expenseRepo *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// ListForUser returns the user's expenses, newest date first. A user with no
// expenses gets an empty slice, not an error.
func (s *ExpenseService) ListForUser(userID uint) ([]models.Expense, error) {
	return s.expenseRepo.FindByUserID(userID)
}

func (s *ExpenseService) Create(userID uint, input NewExpense) (*models.Expense, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := &models.Expense{
		UserID:      userID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        date,
		CategoryID:  input.CategoryID,
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// Update applies the patch to the expense after checking that it exists and
// that userID owns it. The owner is never reassigned.
func (s *ExpenseService) Update(id, userID uint, patch ExpensePatch) (*models.Expense, error) {
	expense, err := s.expenseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	if expense.UserID != userID {
		return nil, ErrNotExpenseOwner
	}

	if patch.Type != nil {
		expense.Type = *patch.Type
	}
	if patch.Amount != nil {
		expense.Amount = *patch.Amount
	}
	if patch.Description != nil {
		expense.Description = *patch.Description
	}
	if patch.Date != nil {
		expense.Date = *patch.Date
	}
	if patch.CategoryID != nil {
		expense.CategoryID = patch.CategoryID
	}

	if err := s.expenseRepo.Update(expense); err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *ExpenseService) Delete(id, userID uint) error {
	expense, err := s.expenseRepo.FindByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return ErrExpenseNotFound
	}
	if expense.UserID != userID {
		return ErrNotExpenseOwner
	}

	return s.expenseRepo.Delete(expense)
}
