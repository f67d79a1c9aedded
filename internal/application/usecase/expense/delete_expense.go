// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// DeleteExpenseInput represents the input for expense removal.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
}

// DeleteExpenseOutput represents the output of expense removal.
type DeleteExpenseOutput struct {
	Expenses []*entity.Expense
}

// DeleteExpenseUseCase handles expense removal logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense removal.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	// Existence check keeps not-found distinguishable from a store failure.
	if _, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Delete(ctx, input.ExpenseID); err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload expenses: %w", err)
	}

	return &DeleteExpenseOutput{
		Expenses: expenses,
	}, nil
}
