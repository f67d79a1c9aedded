// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Icon        string          `gorm:"type:varchar(64)"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Color       string          `gorm:"type:varchar(20);not null"`
	CustomIcon  *string         `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Debt{
		ID:          m.ID,
		Name:        m.Name,
		Icon:        m.Icon,
		TotalAmount: m.TotalAmount,
		PaidAmount:  m.PaidAmount,
		Color:       entity.GradientColor(m.Color),
		CustomIcon:  m.CustomIcon,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	var deletedAt gorm.DeletedAt
	if debt.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *debt.DeletedAt, Valid: true}
	}

	return &DebtModel{
		ID:          debt.ID,
		Name:        debt.Name,
		Icon:        debt.Icon,
		TotalAmount: debt.TotalAmount,
		PaidAmount:  debt.PaidAmount,
		Color:       string(debt.Color),
		CustomIcon:  debt.CustomIcon,
		CreatedAt:   debt.CreatedAt,
		UpdatedAt:   debt.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
