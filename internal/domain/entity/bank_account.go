// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankAccount groups a set of jars under a single account.
//
// Balance reconciliation against jar balances is intentionally not
// implemented; the entity is stored and listed as provided.
type BankAccount struct {
	ID        uuid.UUID
	Name      string
	JarIDs    []uuid.UUID
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBankAccount creates a new BankAccount entity with a fresh identifier.
func NewBankAccount(name string, jarIDs []uuid.UUID, balance decimal.Decimal) *BankAccount {
	now := time.Now().UTC()

	return &BankAccount{
		ID:        uuid.New(),
		Name:      name,
		JarIDs:    jarIDs,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
