// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeType classifies income as recurring or one-off.
type IncomeType string

const (
	// IncomeTypeRegular marks recurring income, the base for jar allocation.
	IncomeTypeRegular IncomeType = "regular"
	// IncomeTypeIrregular marks one-off income, tracked but never allocated.
	IncomeTypeIrregular IncomeType = "irregular"
)

// IsValidIncomeType reports whether the given type is known.
func IsValidIncomeType(t IncomeType) bool {
	return t == IncomeTypeRegular || t == IncomeTypeIrregular
}

// Income represents a single income record.
type Income struct {
	ID        uuid.UUID
	Name      string
	Amount    decimal.Decimal // Always > 0
	Type      IncomeType
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewIncome creates a new Income entity with a fresh identifier.
func NewIncome(name string, amount decimal.Decimal, incomeType IncomeType, date time.Time) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:        uuid.New(),
		Name:      name,
		Amount:    amount,
		Type:      incomeType,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RegularIncomeTotal sums the amounts of all regular incomes. Jar percentages
// are applied against this base.
func RegularIncomeTotal(incomes []*Income) decimal.Decimal {
	total := decimal.Zero
	for _, i := range incomes {
		if i.Type == IncomeTypeRegular {
			total = total.Add(i.Amount)
		}
	}
	return total
}

// IrregularIncomeTotal sums the amounts of all irregular incomes.
func IrregularIncomeTotal(incomes []*Income) decimal.Decimal {
	total := decimal.Zero
	for _, i := range incomes {
		if i.Type == IncomeTypeIrregular {
			total = total.Add(i.Amount)
		}
	}
	return total
}
