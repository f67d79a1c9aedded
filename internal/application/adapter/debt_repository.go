// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// Create creates a new debt record.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByID retrieves a debt by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// FindAll retrieves all debts, oldest first.
	FindAll(ctx context.Context) ([]*entity.Debt, error)

	// Update replaces all fields of an existing debt except its ID.
	Update(ctx context.Context, debt *entity.Debt) error

	// Delete removes a debt (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
