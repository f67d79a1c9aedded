// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// DeleteDebtInput represents the input for debt removal.
type DeleteDebtInput struct {
	DebtID uuid.UUID
}

// DeleteDebtOutput represents the output of debt removal.
type DeleteDebtOutput struct {
	Debts []*entity.Debt
}

// DeleteDebtUseCase handles debt removal logic.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt removal.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) (*DeleteDebtOutput, error) {
	if _, err := uc.debtRepo.FindByID(ctx, input.DebtID); err != nil {
		return nil, err
	}

	if err := uc.debtRepo.Delete(ctx, input.DebtID); err != nil {
		return nil, fmt.Errorf("failed to delete debt: %w", err)
	}

	debts, err := uc.debtRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload debts: %w", err)
	}

	return &DeleteDebtOutput{
		Debts: debts,
	}, nil
}
