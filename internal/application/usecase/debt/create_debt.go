// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	Name        string
	Icon        string
	TotalAmount decimal.Decimal
	Color       *entity.GradientColor // Optional, defaults to pink
	CustomIcon  *string
}

// CreateDebtOutput represents the output of debt creation, with the reloaded
// debt snapshot.
type CreateDebtOutput struct {
	Debt  *entity.Debt
	Debts []*entity.Debt
}

// CreateDebtUseCase handles debt creation logic.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt creation. New debts always start fully unpaid.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
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

	color := entity.DefaultColor
	if input.Color != nil {
		color = *input.Color
	}

	debt := entity.NewDebt(input.Name, input.Icon, input.TotalAmount, color, input.CustomIcon)

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	debts, err := uc.debtRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload debts: %w", err)
	}

	return &CreateDebtOutput{
		Debt:  debt,
		Debts: debts,
	}, nil
}
