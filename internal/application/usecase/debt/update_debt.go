// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateDebtInput represents the input for a full-record debt edit.
// Every field except the ID is replaced; the paid amount is re-clamped
// against the possibly changed total afterwards.
type UpdateDebtInput struct {
	DebtID      uuid.UUID
	Name        string
	Icon        string
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	Color       entity.GradientColor
	CustomIcon  *string
}

// UpdateDebtOutput represents the output of a debt edit.
type UpdateDebtOutput struct {
	Debt  *entity.Debt
	Debts []*entity.Debt
}

// UpdateDebtUseCase handles debt edit logic.
type UpdateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debtRepo adapter.DebtRepository) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt edit.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*UpdateDebtOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeMissingDebtName,
			"name is required",
			domainerror.ErrMissingDebtName,
		)
	}

	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidTotalAmount,
			"total amount must be greater than zero",
			domainerror.ErrInvalidTotalAmount,
		)
	}

	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID)
	if err != nil {
		return nil, err
	}

	debt.Name = input.Name
	debt.Icon = input.Icon
	debt.TotalAmount = input.TotalAmount
	debt.PaidAmount = input.PaidAmount
	debt.Color = input.Color
	debt.CustomIcon = input.CustomIcon
	debt.UpdatedAt = time.Now().UTC()

	// Out-of-range paid amounts are clamped, not rejected.
	debt.ClampPaidAmount()

	if err := uc.debtRepo.Update(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}

	debts, err := uc.debtRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload debts: %w", err)
	}

	return &UpdateDebtOutput{
		Debt:  debt,
		Debts: debts,
	}, nil
}
