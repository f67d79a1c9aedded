// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense record.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindAll retrieves all expenses, newest first.
	FindAll(ctx context.Context) ([]*entity.Expense, error)

	// Update replaces all fields of an existing expense except its ID.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
