// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Debt represents an outstanding debt with payoff tracking.
//
// The invariant 0 <= PaidAmount <= TotalAmount is enforced by clamping on
// every payment mutation, never by rejecting out-of-range input.
type Debt struct {
	ID          uuid.UUID
	Name        string
	Icon        string
	TotalAmount decimal.Decimal // Always > 0
	PaidAmount  decimal.Decimal // Always in [0, TotalAmount]
	Color       GradientColor
	CustomIcon  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewDebt creates a new Debt entity. PaidAmount starts at zero.
func NewDebt(name, icon string, totalAmount decimal.Decimal, color GradientColor, customIcon *string) *Debt {
	now := time.Now().UTC()

	return &Debt{
		ID:          uuid.New(),
		Name:        name,
		Icon:        icon,
		TotalAmount: totalAmount,
		PaidAmount:  decimal.Zero,
		Color:       color,
		CustomIcon:  customIcon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Remaining returns the balance still owed.
func (d *Debt) Remaining() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount)
}

// ProgressPercent returns the payoff progress as a percentage in [0, 100].
// A zero TotalAmount yields 0 rather than propagating a division error.
func (d *Debt) ProgressPercent() float64 {
	if d.TotalAmount.IsZero() {
		return 0
	}
	pct, _ := d.PaidAmount.Mul(decimal.NewFromInt(100)).Div(d.TotalAmount).Round(2).Float64()
	return pct
}

// ApplyPayment moves PaidAmount by delta, clamped into [0, TotalAmount].
// A positive delta records a payment; a negative delta reverses one.
// This is the only mutation point for PaidAmount outside a full-record edit.
func (d *Debt) ApplyPayment(delta decimal.Decimal) {
	paid := d.PaidAmount.Add(delta)
	d.PaidAmount = ClampDecimal(paid, decimal.Zero, d.TotalAmount)
	d.UpdatedAt = time.Now().UTC()
}

// ClampPaidAmount re-applies the payoff invariant after a full-record edit,
// where TotalAmount may have changed underneath PaidAmount.
func (d *Debt) ClampPaidAmount() {
	d.PaidAmount = ClampDecimal(d.PaidAmount, decimal.Zero, d.TotalAmount)
}

// ClampDecimal constrains v to the closed interval [lo, hi].
func ClampDecimal(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
