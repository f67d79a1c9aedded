// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Jar represents a percentage-based budget envelope applied to regular income.
type Jar struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Percentage    float64 // In [0, 100]
	Emoji         string
	Color         GradientColor
	CurrentAmount decimal.Decimal  // Always >= 0
	TargetAmount  *decimal.Decimal // Optional; absence disables progress tracking
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewJar creates a new Jar entity with a fresh identifier and zero balance.
func NewJar(name, description string, percentage float64, emoji string, color GradientColor, targetAmount *decimal.Decimal) *Jar {
	now := time.Now().UTC()

	return &Jar{
		ID:            uuid.New(),
		Name:          name,
		Description:   description,
		Percentage:    percentage,
		Emoji:         emoji,
		Color:         color,
		CurrentAmount: decimal.Zero,
		TargetAmount:  targetAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AllocatedAmount returns the share of the regular income total this jar
// receives: regularIncomeTotal * percentage / 100.
func (j *Jar) AllocatedAmount(regularIncomeTotal decimal.Decimal) decimal.Decimal {
	return regularIncomeTotal.
		Mul(decimal.NewFromFloat(j.Percentage)).
		Div(decimal.NewFromInt(100))
}

// Progress returns the saving progress toward the target as a percentage.
// The second return value is false when the jar has no usable target, in
// which case progress is not displayed at all.
func (j *Jar) Progress() (float64, bool) {
	if j.TargetAmount == nil || j.TargetAmount.IsZero() {
		return 0, false
	}
	pct, _ := j.CurrentAmount.Mul(decimal.NewFromInt(100)).Div(*j.TargetAmount).Round(2).Float64()
	return pct, true
}

// TotalAllocatedPercentage sums the percentage shares of all jars.
func TotalAllocatedPercentage(jars []*Jar) float64 {
	var total float64
	for _, j := range jars {
		total += j.Percentage
	}
	return total
}

// RemainingAllocatable returns the unallocated slack below 100%. The result
// may be negative when jars are over-allocated; over-allocation is an
// advisory condition, not an error.
func RemainingAllocatable(jars []*Jar) float64 {
	return 100 - TotalAllocatedPercentage(jars)
}

// DefaultJarPreset produces the six canonical envelope jars with fresh
// identifiers and zero balances. Percentages sum to exactly 100.
//
// Callers replace the existing jar set wholesale with the result; the
// surrounding workflow gates invocation on an empty jar list.
func DefaultJarPreset() []*Jar {
	return []*Jar{
		NewJar("Necessities", "Everyday essentials such as food, transport and phone bills", 55, "🏠", ColorPink, nil),
		NewJar("Financial Freedom", "Investments and future income streams", 10, "💰", ColorYellow, nil),
		NewJar("Education", "Courses, books and anything that builds skills", 10, "📚", ColorBlue, nil),
		NewJar("Play", "Guilt-free spending on fun, food and travel", 10, "🎉", ColorPurple, nil),
		NewJar("Emergency Savings", "Reserved for emergencies and long-term goals", 10, "🏦", ColorGreen, nil),
		NewJar("Giving", "Sharing with and supporting others", 5, "❤️", ColorMint, nil),
	}
}
