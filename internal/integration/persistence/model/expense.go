// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID    string          `gorm:"type:varchar(64);not null;index"`
	SubCategoryID *string         `gorm:"type:varchar(64)"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	Color         string          `gorm:"type:varchar(20);not null"`
	Note          string          `gorm:"type:text"`
	CustomIcon    *string         `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Expense{
		ID:            m.ID,
		Name:          m.Name,
		Amount:        m.Amount,
		CategoryID:    m.CategoryID,
		SubCategoryID: m.SubCategoryID,
		Date:          m.Date,
		Color:         entity.GradientColor(m.Color),
		Note:          m.Note,
		CustomIcon:    m.CustomIcon,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	var deletedAt gorm.DeletedAt
	if expense.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *expense.DeletedAt, Valid: true}
	}

	return &ExpenseModel{
		ID:            expense.ID,
		Name:          expense.Name,
		Amount:        expense.Amount,
		CategoryID:    expense.CategoryID,
		SubCategoryID: expense.SubCategoryID,
		Date:          expense.Date,
		Color:         string(expense.Color),
		Note:          expense.Note,
		CustomIcon:    expense.CustomIcon,
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
