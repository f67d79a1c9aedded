// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single categorized spending record.
type Expense struct {
	ID            uuid.UUID
	Name          string
	Amount        decimal.Decimal // Always >= 0
	CategoryID    string
	SubCategoryID *string // Optional, must belong to the category when set
	Date          time.Time
	Color         GradientColor
	Note          string
	CustomIcon    *string // Optional uploaded icon reference
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity with a fresh identifier.
func NewExpense(
	name string,
	amount decimal.Decimal,
	categoryID string,
	subCategoryID *string,
	date time.Time,
	color GradientColor,
	note string,
	customIcon *string,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:            uuid.New(),
		Name:          name,
		Amount:        amount,
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
		Date:          date,
		Color:         color,
		Note:          note,
		CustomIcon:    customIcon,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// InMonth reports whether the expense falls in the given calendar month and year.
func (e *Expense) InMonth(month time.Month, year int) bool {
	return e.Date.Month() == month && e.Date.Year() == year
}

// InYear reports whether the expense falls in the given calendar year.
func (e *Expense) InYear(year int) bool {
	return e.Date.Year() == year
}
