// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GetPortfolioOutput represents aggregated payoff progress across all debts.
type GetPortfolioOutput struct {
	Debts           []*entity.Debt
	TotalDebt       decimal.Decimal
	TotalPaid       decimal.Decimal
	RemainingDebt   decimal.Decimal
	OverallProgress float64 // In [0, 100]; 0 when there is no debt
}

// GetPortfolioUseCase computes the aggregate debt portfolio view.
type GetPortfolioUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewGetPortfolioUseCase creates a new GetPortfolioUseCase instance.
func NewGetPortfolioUseCase(debtRepo adapter.DebtRepository) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{
		debtRepo: debtRepo,
	}
}

// Execute loads all debts and derives the portfolio totals.
func (uc *GetPortfolioUseCase) Execute(ctx context.Context) (*GetPortfolioOutput, error) {
	debts, err := uc.debtRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}

	totalDebt := decimal.Zero
	totalPaid := decimal.Zero
	for _, d := range debts {
		totalDebt = totalDebt.Add(d.TotalAmount)
		totalPaid = totalPaid.Add(d.PaidAmount)
	}

	var overall float64
	if !totalDebt.IsZero() {
		overall, _ = totalPaid.Mul(decimal.NewFromInt(100)).Div(totalDebt).Round(2).Float64()
	}

	return &GetPortfolioOutput{
		Debts:           debts,
		TotalDebt:       totalDebt,
		TotalPaid:       totalPaid,
		RemainingDebt:   totalDebt.Sub(totalPaid),
		OverallProgress: overall,
	}, nil
}
