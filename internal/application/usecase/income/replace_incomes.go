// Package income contains income-related use cases.
package income

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

// ReplaceIncomesInput represents the input for a wholesale income replace.
type ReplaceIncomesInput struct {
	Incomes []*entity.Income
}

// ReplaceIncomesOutput represents the output of an income replace.
type ReplaceIncomesOutput struct {
	Incomes        []*entity.Income
	RegularTotal   decimal.Decimal
	IrregularTotal decimal.Decimal
}

// ReplaceIncomesUseCase handles the bulk income snapshot replace used for
// creating, editing and removing incomes.
type ReplaceIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewReplaceIncomesUseCase creates a new ReplaceIncomesUseCase instance.
func NewReplaceIncomesUseCase(incomeRepo adapter.IncomeRepository) *ReplaceIncomesUseCase {
	return &ReplaceIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute validates and stores the new income snapshot. Incomes whose ID
// survives the replace keep their original creation timestamp.
func (uc *ReplaceIncomesUseCase) Execute(ctx context.Context, input ReplaceIncomesInput) (*ReplaceIncomesOutput, error) {
	for _, i := range input.Incomes {
		if i.Name == "" {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeMissingIncomeName,
				"income name is required",
				domainerror.ErrMissingIncomeName,
			)
		}
		if !i.Amount.IsPositive() {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeInvalidIncomeAmount,
				"income amount must be greater than zero",
				domainerror.ErrInvalidIncomeAmount,
			)
		}
		if !entity.IsValidIncomeType(i.Type) {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeInvalidIncomeType,
				"income type must be 'regular' or 'irregular'",
				domainerror.ErrInvalidIncomeType,
			)
		}
	}

	existing, err := uc.incomeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	createdAt := make(map[uuid.UUID]time.Time, len(existing))
	for _, i := range existing {
		createdAt[i.ID] = i.CreatedAt
	}
	for _, i := range input.Incomes {
		if t, ok := createdAt[i.ID]; ok {
			i.CreatedAt = t
		}
	}

	if err := uc.incomeRepo.Replace(ctx, input.Incomes); err != nil {
		return nil, fmt.Errorf("failed to replace incomes: %w", err)
	}

	incomes, err := uc.incomeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload incomes: %w", err)
	}

	return &ReplaceIncomesOutput{
		Incomes:        incomes,
		RegularTotal:   entity.RegularIncomeTotal(incomes),
		IrregularTotal: entity.IrregularIncomeTotal(incomes),
	}, nil
}
