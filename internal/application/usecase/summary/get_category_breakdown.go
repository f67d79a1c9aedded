// Package summary contains the aggregation engine and summary use cases.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// BreakdownRange selects the time window for a category breakdown.
type BreakdownRange string

const (
	// RangeMonth restricts the breakdown to a single calendar month.
	RangeMonth BreakdownRange = "month"
	// RangeYear widens the breakdown to a full calendar year.
	RangeYear BreakdownRange = "year"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
type GetCategoryBreakdownInput struct {
	Month int // 1-12; ignored when Range is RangeYear
	Year  int
	Range BreakdownRange // Defaults to RangeMonth when empty
}

// BreakdownItem is a ranked category with presentation-ready derivations.
type BreakdownItem struct {
	CategoryID   string
	CategoryName string
	CategoryIcon string
	CategoryType entity.CategoryType
	Amount       decimal.Decimal
	Percentage   float64
	BubbleSize   float64
	Hero         bool // True only for the top-ranked category
}

// GetCategoryBreakdownOutput represents the ranked breakdown for a period.
type GetCategoryBreakdownOutput struct {
	Month      int
	Year       int
	Range      BreakdownRange
	Total      decimal.Decimal
	Categories []BreakdownItem
}

// GetCategoryBreakdownUseCase ranks spending by category for a period and
// derives the grid/bubble layout hints.
type GetCategoryBreakdownUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(expenseRepo adapter.ExpenseRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute loads the expense snapshot, groups and ranks it, and attaches
// catalog metadata plus layout sizing to each entry.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	rng := input.Range
	if rng == "" {
		rng = RangeMonth
	}
	if rng != RangeMonth && rng != RangeYear {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidRange,
			"range must be 'month' or 'year'",
			domainerror.ErrInvalidRange,
		)
	}
	if err := validatePeriod(monthOrJanuary(input, rng), input.Year); err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	var filtered []*entity.Expense
	var total decimal.Decimal
	if rng == RangeMonth {
		month := time.Month(input.Month)
		filtered = FilterMonth(expenses, month, input.Year)
		total = MonthlyTotal(expenses, month, input.Year)
	} else {
		filtered = FilterYear(expenses, input.Year)
		total = YearlyTotal(expenses, input.Year)
	}

	ranked := RankCategories(GroupByCategory(filtered), total)

	items := make([]BreakdownItem, 0, len(ranked))
	for i, r := range ranked {
		item := BreakdownItem{
			CategoryID: r.CategoryID,
			Amount:     r.Amount,
			Percentage: r.Percentage,
			BubbleSize: BubbleSize(r.Percentage),
			Hero:       i == 0,
		}
		if cat, ok := entity.CategoryByID(r.CategoryID); ok {
			item.CategoryName = cat.Name
			item.CategoryIcon = cat.Icon
			item.CategoryType = cat.Type
		}
		items = append(items, item)
	}

	return &GetCategoryBreakdownOutput{
		Month:      input.Month,
		Year:       input.Year,
		Range:      rng,
		Total:      total,
		Categories: items,
	}, nil
}

// monthOrJanuary substitutes a valid month for year-range requests, where the
// month field is not meaningful.
func monthOrJanuary(input GetCategoryBreakdownInput, rng BreakdownRange) int {
	if rng == RangeYear {
		return 1
	}
	return input.Month
}
