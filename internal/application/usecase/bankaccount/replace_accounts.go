// Package bankaccount contains bank account-related use cases.
package bankaccount

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ReplaceAccountsInput represents the input for a wholesale account replace.
type ReplaceAccountsInput struct {
	Accounts []*entity.BankAccount
}

// ReplaceAccountsOutput represents the output of an account replace.
type ReplaceAccountsOutput struct {
	Accounts []*entity.BankAccount
}

// ReplaceAccountsUseCase handles the bulk bank account snapshot replace.
// Accounts are stored as provided; no reconciliation against jar balances
// takes place.
type ReplaceAccountsUseCase struct {
	accountRepo adapter.BankAccountRepository
}

// NewReplaceAccountsUseCase creates a new ReplaceAccountsUseCase instance.
func NewReplaceAccountsUseCase(accountRepo adapter.BankAccountRepository) *ReplaceAccountsUseCase {
	return &ReplaceAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute stores the new account snapshot. Accounts whose ID survives the
// replace keep their original creation timestamp.
func (uc *ReplaceAccountsUseCase) Execute(ctx context.Context, input ReplaceAccountsInput) (*ReplaceAccountsOutput, error) {
	existing, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bank accounts: %w", err)
	}

	createdAt := make(map[uuid.UUID]time.Time, len(existing))
	for _, a := range existing {
		createdAt[a.ID] = a.CreatedAt
	}
	for _, a := range input.Accounts {
		if t, ok := createdAt[a.ID]; ok {
			a.CreatedAt = t
		}
	}

	if err := uc.accountRepo.Replace(ctx, input.Accounts); err != nil {
		return nil, fmt.Errorf("failed to replace bank accounts: %w", err)
	}

	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload bank accounts: %w", err)
	}

	return &ReplaceAccountsOutput{
		Accounts: accounts,
	}, nil
}
