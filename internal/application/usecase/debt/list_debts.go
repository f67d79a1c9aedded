// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts []*entity.Debt
}

// ListDebtsUseCase handles listing debts.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute retrieves the debt snapshot.
func (uc *ListDebtsUseCase) Execute(ctx context.Context) (*ListDebtsOutput, error) {
	debts, err := uc.debtRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}

	return &ListDebtsOutput{
		Debts: debts,
	}, nil
}
