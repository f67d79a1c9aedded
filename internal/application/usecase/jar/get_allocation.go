// Package jar contains budget jar-related use cases.
package jar

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// JarAllocation is a jar joined with its derived allocation figures.
type JarAllocation struct {
	Jar             *entity.Jar
	AllocatedAmount decimal.Decimal
	Progress        float64 // Toward TargetAmount; meaningful only when HasProgress
	HasProgress     bool
}

// GetAllocationOutput represents the full envelope-budgeting view: every jar
// with its slice of regular income, plus the allocation totals.
type GetAllocationOutput struct {
	Jars                 []JarAllocation
	RegularIncomeTotal   decimal.Decimal
	IrregularIncomeTotal decimal.Decimal
	TotalAllocated       float64
	RemainingAllocatable float64 // Negative when over-allocated (advisory)
}

// GetAllocationUseCase computes per-jar allocated amounts against the regular
// income total.
type GetAllocationUseCase struct {
	jarRepo    adapter.JarRepository
	incomeRepo adapter.IncomeRepository
}

// NewGetAllocationUseCase creates a new GetAllocationUseCase instance.
func NewGetAllocationUseCase(jarRepo adapter.JarRepository, incomeRepo adapter.IncomeRepository) *GetAllocationUseCase {
	return &GetAllocationUseCase{
		jarRepo:    jarRepo,
		incomeRepo: incomeRepo,
	}
}

// Execute loads jars and incomes and derives the allocation view.
func (uc *GetAllocationUseCase) Execute(ctx context.Context) (*GetAllocationOutput, error) {
	jars, err := uc.jarRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load jars: %w", err)
	}

	incomes, err := uc.incomeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	regular := entity.RegularIncomeTotal(incomes)

	allocations := make([]JarAllocation, 0, len(jars))
	for _, j := range jars {
		progress, hasProgress := j.Progress()
		allocations = append(allocations, JarAllocation{
			Jar:             j,
			AllocatedAmount: j.AllocatedAmount(regular),
			Progress:        progress,
			HasProgress:     hasProgress,
		})
	}

	return &GetAllocationOutput{
		Jars:                 allocations,
		RegularIncomeTotal:   regular,
		IrregularIncomeTotal: entity.IrregularIncomeTotal(incomes),
		TotalAllocated:       entity.TotalAllocatedPercentage(jars),
		RemainingAllocatable: entity.RemainingAllocatable(jars),
	}, nil
}
