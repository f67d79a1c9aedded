// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// JarRepository defines the interface for jar collection persistence.
// Jars are stored as a single snapshot with bulk replace semantics.
type JarRepository interface {
	// List retrieves the current jar snapshot in stored order.
	List(ctx context.Context) ([]*entity.Jar, error)

	// Replace overwrites the jar snapshot wholesale.
	Replace(ctx context.Context, jars []*entity.Jar) error
}

// IncomeRepository defines the interface for income collection persistence.
// Incomes are stored as a single snapshot with bulk replace semantics.
type IncomeRepository interface {
	// List retrieves the current income snapshot in stored order.
	List(ctx context.Context) ([]*entity.Income, error)

	// Replace overwrites the income snapshot wholesale.
	Replace(ctx context.Context, incomes []*entity.Income) error
}

// BankAccountRepository defines the interface for bank account persistence.
// Accounts are stored as a single snapshot with bulk replace semantics.
type BankAccountRepository interface {
	// List retrieves the current bank account snapshot in stored order.
	List(ctx context.Context) ([]*entity.BankAccount, error)

	// Replace overwrites the bank account snapshot wholesale.
	Replace(ctx context.Context, accounts []*entity.BankAccount) error
}
