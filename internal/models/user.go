package models

import (
	"gorm.io/gorm"
)

// Category is a user-defined expense label. IDs follow client convention
// and are not enforced unique.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// RecurringExpense is a stored template for a repeating expense. Nothing
// instantiates these automatically; LastAdded is bookkeeping for clients.
type RecurringExpense struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Frequency   string  `json:"frequency"`
	CategoryID  int     `json:"categoryId"`
	LastAdded   string  `json:"lastAdded"`
}

type User struct {
	gorm.Model
	Username          string             `gorm:"uniqueIndex;not null" json:"username"`
	Email             string             `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string             `gorm:"not null" json:"-"`
	Categories        []Category         `gorm:"serializer:json" json:"categories"`
	RecurringExpenses []RecurringExpense `gorm:"serializer:json" json:"recurringExpenses"`
	Budget            float64            `gorm:"not null;default:0" json:"budget"`
	Expenses          []Expense          `gorm:"foreignKey:UserID" json:"-"`
}
