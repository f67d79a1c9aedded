// Package summary contains the aggregation engine and summary use cases.
package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func makeExpense(name string, amount float64, categoryID string, date time.Time) *entity.Expense {
	return entity.NewExpense(name, decimal.NewFromFloat(amount), categoryID, nil, date, entity.ColorPink, "", nil)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyTotal(t *testing.T) {
	expenses := []*entity.Expense{
		makeExpense("Groceries", 500, "food", date(2025, time.January, 5)),
		makeExpense("Restaurant", 300, "food", date(2025, time.January, 20)),
		makeExpense("Bus pass", 200, "transport", date(2025, time.January, 12)),
		makeExpense("February rent", 8000, "housing", date(2025, time.February, 1)),
		makeExpense("Old groceries", 450, "food", date(2024, time.January, 5)),
	}

	if got := MonthlyTotal(expenses, time.January, 2025); got.String() != "1000" {
		t.Errorf("expected monthly total 1000, got %s", got.String())
	}

	if got := MonthlyTotal(nil, time.January, 2025); !got.IsZero() {
		t.Errorf("expected zero total for no expenses, got %s", got.String())
	}
}

func TestYearlyTotal(t *testing.T) {
	expenses := []*entity.Expense{
		makeExpense("Groceries", 500, "food", date(2025, time.January, 5)),
		makeExpense("Rent", 8000, "housing", date(2025, time.June, 1)),
		makeExpense("Old groceries", 450, "food", date(2024, time.December, 31)),
	}

	if got := YearlyTotal(expenses, 2025); got.String() != "8500" {
		t.Errorf("expected yearly total 8500, got %s", got.String())
	}
}

func TestByCategory(t *testing.T) {
	expenses := []*entity.Expense{
		makeExpense("Groceries", 500, "food", date(2025, time.January, 5)),
		makeExpense("Restaurant", 300, "food", date(2025, time.January, 20)),
		makeExpense("Bus pass", 200, "transport", date(2025, time.January, 12)),
		makeExpense("February lunch", 150, "food", date(2025, time.February, 3)),
	}

	grouped := ByCategory(expenses, time.January, 2025)

	if len(grouped) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(grouped))
	}
	if grouped["food"].String() != "800" {
		t.Errorf("expected food total 800, got %s", grouped["food"].String())
	}
	if grouped["transport"].String() != "200" {
		t.Errorf("expected transport total 200, got %s", grouped["transport"].String())
	}
}

func TestGroupByCategory_PreservesFirstEncounterOrder(t *testing.T) {
	expenses := []*entity.Expense{
		makeExpense("Bus pass", 200, "transport", date(2025, time.January, 3)),
		makeExpense("Groceries", 500, "food", date(2025, time.January, 5)),
		makeExpense("Taxi", 100, "transport", date(2025, time.January, 8)),
	}

	groups := GroupByCategory(expenses)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].CategoryID != "transport" || groups[0].Amount.String() != "300" {
		t.Errorf("expected transport=300 first, got %s=%s", groups[0].CategoryID, groups[0].Amount.String())
	}
	if groups[1].CategoryID != "food" || groups[1].Amount.String() != "500" {
		t.Errorf("expected food=500 second, got %s=%s", groups[1].CategoryID, groups[1].Amount.String())
	}
}

func TestRankCategories(t *testing.T) {
	t.Run("orders non-increasing with percentage shares", func(t *testing.T) {
		expenses := []*entity.Expense{
			makeExpense("Groceries", 500, "food", date(2025, time.January, 5)),
			makeExpense("Restaurant", 300, "food", date(2025, time.January, 20)),
			makeExpense("Bus pass", 200, "transport", date(2025, time.January, 12)),
		}
		total := MonthlyTotal(expenses, time.January, 2025)

		ranked := RankCategories(GroupByCategory(expenses), total)

		if len(ranked) != 2 {
			t.Fatalf("expected 2 ranked categories, got %d", len(ranked))
		}
		if ranked[0].CategoryID != "food" {
			t.Errorf("expected food ranked first, got %s", ranked[0].CategoryID)
		}
		if ranked[0].Percentage != 80 {
			t.Errorf("expected food at 80%%, got %v", ranked[0].Percentage)
		}
		if ranked[1].CategoryID != "transport" {
			t.Errorf("expected transport ranked second, got %s", ranked[1].CategoryID)
		}
		if ranked[1].Percentage != 20 {
			t.Errorf("expected transport at 20%%, got %v", ranked[1].Percentage)
		}
	})

	t.Run("zero total yields zero percentages", func(t *testing.T) {
		groups := []CategoryTotal{
			{CategoryID: "food", Amount: decimal.Zero},
		}

		ranked := RankCategories(groups, decimal.Zero)

		if len(ranked) != 1 {
			t.Fatalf("expected 1 ranked category, got %d", len(ranked))
		}
		if ranked[0].Percentage != 0 {
			t.Errorf("expected 0%% on zero total, got %v", ranked[0].Percentage)
		}
	})

	t.Run("equal amounts keep first-encounter order", func(t *testing.T) {
		expenses := []*entity.Expense{
			makeExpense("Vet", 250, "pets", date(2025, time.March, 2)),
			makeExpense("Cinema", 250, "entertainment", date(2025, time.March, 9)),
			makeExpense("Gym", 250, "health", date(2025, time.March, 15)),
		}
		total := MonthlyTotal(expenses, time.March, 2025)

		ranked := RankCategories(GroupByCategory(expenses), total)

		want := []string{"pets", "entertainment", "health"}
		for i, id := range want {
			if ranked[i].CategoryID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, ranked[i].CategoryID)
			}
		}
	})
}

func TestFilterMonth(t *testing.T) {
	expenses := []*entity.Expense{
		makeExpense("Groceries", 500, "food", date(2025, time.January, 5)),
		makeExpense("Rent", 8000, "housing", date(2025, time.February, 1)),
	}

	filtered := FilterMonth(expenses, time.January, 2025)
	if len(filtered) != 1 || filtered[0].Name != "Groceries" {
		t.Errorf("expected only January expenses, got %d", len(filtered))
	}

	if got := FilterYear(expenses, 2025); len(got) != 2 {
		t.Errorf("expected 2 expenses in 2025, got %d", len(got))
	}
}
