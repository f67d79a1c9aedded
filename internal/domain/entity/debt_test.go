// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDebt_ApplyPayment(t *testing.T) {
	tests := []struct {
		name         string
		total        float64
		paid         float64
		delta        float64
		expectedPaid string
	}{
		{"records a payment", 1000, 0, 250, "250"},
		{"accumulates payments", 1000, 250, 250, "500"},
		{"clamps overpayment to total", 1000, 900, 500, "1000"},
		{"reverses a payment", 1000, 500, -200, "300"},
		{"clamps reversal below zero", 1000, 100, -500, "0"},
		{"exact payoff", 1000, 600, 400, "1000"},
		{"zero delta is a no-op on the amount", 1000, 300, 0, "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDebt("Car loan", "🚗", decimal.NewFromFloat(tt.total), ColorBlue, nil)
			d.PaidAmount = decimal.NewFromFloat(tt.paid)

			d.ApplyPayment(decimal.NewFromFloat(tt.delta))

			if d.PaidAmount.String() != tt.expectedPaid {
				t.Errorf("expected paid amount %s, got %s", tt.expectedPaid, d.PaidAmount.String())
			}
			if d.PaidAmount.IsNegative() {
				t.Error("paid amount must never be negative")
			}
			if d.PaidAmount.GreaterThan(d.TotalAmount) {
				t.Error("paid amount must never exceed total amount")
			}
		})
	}
}

func TestDebt_ClampPaidAmount(t *testing.T) {
	t.Run("re-clamps after total shrinks below paid", func(t *testing.T) {
		d := NewDebt("Loan", "💳", decimal.NewFromInt(1000), ColorPink, nil)
		d.PaidAmount = decimal.NewFromInt(800)

		d.TotalAmount = decimal.NewFromInt(500)
		d.ClampPaidAmount()

		if d.PaidAmount.String() != "500" {
			t.Errorf("expected paid amount 500, got %s", d.PaidAmount.String())
		}
	})

	t.Run("leaves a valid paid amount untouched", func(t *testing.T) {
		d := NewDebt("Loan", "💳", decimal.NewFromInt(1000), ColorPink, nil)
		d.PaidAmount = decimal.NewFromInt(300)

		d.ClampPaidAmount()

		if d.PaidAmount.String() != "300" {
			t.Errorf("expected paid amount 300, got %s", d.PaidAmount.String())
		}
	})
}

func TestDebt_ProgressPercent(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		paid     float64
		expected float64
	}{
		{"no progress", 1000, 0, 0},
		{"half paid", 1000, 500, 50},
		{"fully paid", 1000, 1000, 100},
		{"rounds to two decimals", 3000, 1000, 33.33},
		{"zero total yields zero, not NaN", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDebt("Loan", "💳", decimal.NewFromFloat(tt.total), ColorGreen, nil)
			d.PaidAmount = decimal.NewFromFloat(tt.paid)

			got := d.ProgressPercent()
			if got != tt.expected {
				t.Errorf("expected progress %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDebt_Remaining(t *testing.T) {
	d := NewDebt("Loan", "💳", decimal.NewFromInt(1200), ColorOrange, nil)
	d.PaidAmount = decimal.NewFromInt(450)

	if got := d.Remaining().String(); got != "750" {
		t.Errorf("expected remaining 750, got %s", got)
	}
}

func TestClampDecimal(t *testing.T) {
	lo := decimal.Zero
	hi := decimal.NewFromInt(100)

	tests := []struct {
		name     string
		value    int64
		expected string
	}{
		{"below range", -5, "0"},
		{"at lower bound", 0, "0"},
		{"inside range", 42, "42"},
		{"at upper bound", 100, "100"},
		{"above range", 150, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampDecimal(decimal.NewFromInt(tt.value), lo, hi)
			if got.String() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got.String())
			}
		})
	}
}
