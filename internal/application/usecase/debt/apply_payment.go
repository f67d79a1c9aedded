// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ApplyPaymentInput represents the input for a payment against a debt.
// A positive delta records a payment; a negative delta reverses one.
type ApplyPaymentInput struct {
	DebtID uuid.UUID
	Delta  decimal.Decimal
}

// ApplyPaymentOutput represents the output of a payment, with the reloaded
// debt snapshot.
type ApplyPaymentOutput struct {
	Debt  *entity.Debt
	Debts []*entity.Debt
}

// ApplyPaymentUseCase handles bounded payment mutations. A delta that would
// push the paid amount outside [0, total] is clamped to the boundary, never
// rejected.
type ApplyPaymentUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewApplyPaymentUseCase creates a new ApplyPaymentUseCase instance.
func NewApplyPaymentUseCase(debtRepo adapter.DebtRepository) *ApplyPaymentUseCase {
	return &ApplyPaymentUseCase{
		debtRepo: debtRepo,
	}
}

// Execute applies the clamped payment delta.
func (uc *ApplyPaymentUseCase) Execute(ctx context.Context, input ApplyPaymentInput) (*ApplyPaymentOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID)
	if err != nil {
		return nil, err
	}

	debt.ApplyPayment(input.Delta)

	if err := uc.debtRepo.Update(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	debts, err := uc.debtRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload debts: %w", err)
	}

	return &ApplyPaymentOutput{
		Debt:  debt,
		Debts: debts,
	}, nil
}
