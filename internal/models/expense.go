package models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model
	UserID      uint      `gorm:"not null;index" json:"user"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	Type        string    `gorm:"not null" json:"type"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	// CategoryID points at an entry in the owner's categories list by its
	// client-assigned id. Advisory only, dangling references are allowed.
	CategoryID *int `json:"categoryId"`
}
