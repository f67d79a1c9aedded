// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Incomes        []*entity.Income
	RegularTotal   decimal.Decimal
	IrregularTotal decimal.Decimal
}

// ListIncomesUseCase handles listing the income snapshot.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute retrieves the income snapshot with per-type totals.
func (uc *ListIncomesUseCase) Execute(ctx context.Context) (*ListIncomesOutput, error) {
	incomes, err := uc.incomeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	return &ListIncomesOutput{
		Incomes:        incomes,
		RegularTotal:   entity.RegularIncomeTotal(incomes),
		IrregularTotal: entity.IrregularIncomeTotal(incomes),
	}, nil
}
