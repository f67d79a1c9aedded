// Package summary contains the aggregation engine and summary use cases.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetMonthlySummaryInput represents the input for the monthly summary.
type GetMonthlySummaryInput struct {
	Month int // 1-12
	Year  int
}

// GetMonthlySummaryOutput represents the computed totals for a month.
type GetMonthlySummaryOutput struct {
	Month            int
	Year             int
	MonthlyTotal     decimal.Decimal
	YearlyTotal      decimal.Decimal
	YearlyProjection decimal.Decimal // MonthlyTotal extrapolated to 12 months
	ExpenseCount     int
}

// GetMonthlySummaryUseCase computes month and year totals over the current
// expense snapshot.
type GetMonthlySummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(expenseRepo adapter.ExpenseRepository) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute loads the expense snapshot and derives the summary totals.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	month := time.Month(input.Month)
	monthlyTotal := MonthlyTotal(expenses, month, input.Year)

	return &GetMonthlySummaryOutput{
		Month:            input.Month,
		Year:             input.Year,
		MonthlyTotal:     monthlyTotal,
		YearlyTotal:      YearlyTotal(expenses, input.Year),
		YearlyProjection: monthlyTotal.Mul(decimal.NewFromInt(12)),
		ExpenseCount:     len(FilterMonth(expenses, month, input.Year)),
	}, nil
}

// validatePeriod checks a calendar month/year selection.
func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	if year < 1 {
		return domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidYear,
			"year must be a positive calendar year",
			domainerror.ErrInvalidYear,
		)
	}
	return nil
}
