// Package summary contains the aggregation engine and summary use cases.
//
// The engine functions are pure: they operate on expense snapshots provided
// by the caller, have no side effects, and are deterministic for identical
// input.
package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryTotal is the summed amount for a single category, in the order the
// category was first encountered in the input.
type CategoryTotal struct {
	CategoryID string
	Amount     decimal.Decimal
}

// RankedCategory is a category total with its percentage share of the total.
type RankedCategory struct {
	CategoryID string
	Amount     decimal.Decimal
	Percentage float64
}

// MonthlyTotal sums the amounts of expenses dated in the given calendar month
// and year. An empty selection yields zero.
func MonthlyTotal(expenses []*entity.Expense, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.InMonth(month, year) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// YearlyTotal sums the amounts of expenses dated in the given calendar year.
func YearlyTotal(expenses []*entity.Expense, year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.InYear(year) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// ByCategory groups the expenses of the given month by category, summing
// amounts. Iteration order of the result is unspecified; consumers that need
// an order use GroupByCategory instead.
func ByCategory(expenses []*entity.Expense, month time.Month, year int) map[string]decimal.Decimal {
	grouped := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if e.InMonth(month, year) {
			grouped[e.CategoryID] = grouped[e.CategoryID].Add(e.Amount)
		}
	}
	return grouped
}

// GroupByCategory groups expenses by category preserving first-encounter
// order. That order is the documented tie-break for equal-amount categories
// in RankCategories.
func GroupByCategory(expenses []*entity.Expense) []CategoryTotal {
	index := make(map[string]int)
	var groups []CategoryTotal
	for _, e := range expenses {
		if i, ok := index[e.CategoryID]; ok {
			groups[i].Amount = groups[i].Amount.Add(e.Amount)
			continue
		}
		index[e.CategoryID] = len(groups)
		groups = append(groups, CategoryTotal{CategoryID: e.CategoryID, Amount: e.Amount})
	}
	return groups
}

// FilterMonth returns the expenses dated in the given calendar month and year.
func FilterMonth(expenses []*entity.Expense, month time.Month, year int) []*entity.Expense {
	var filtered []*entity.Expense
	for _, e := range expenses {
		if e.InMonth(month, year) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// FilterYear returns the expenses dated in the given calendar year.
func FilterYear(expenses []*entity.Expense, year int) []*entity.Expense {
	var filtered []*entity.Expense
	for _, e := range expenses {
		if e.InYear(year) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// RankCategories orders category totals non-increasing by amount, computing
// each percentage share of total. When total is zero every percentage is
// zero; the division is never performed. The sort is stable, so equal
// amounts keep their first-encounter order.
func RankCategories(groups []CategoryTotal, total decimal.Decimal) []RankedCategory {
	ranked := make([]RankedCategory, 0, len(groups))
	for _, g := range groups {
		var percentage float64
		if !total.IsZero() {
			percentage, _ = g.Amount.Mul(decimal.NewFromInt(100)).Div(total).Round(2).Float64()
		}
		ranked = append(ranked, RankedCategory{
			CategoryID: g.CategoryID,
			Amount:     g.Amount,
			Percentage: percentage,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})

	return ranked
}
