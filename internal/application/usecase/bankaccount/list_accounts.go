// Package bankaccount contains bank account-related use cases.
//
// Bank accounts group jars for display. Balance reconciliation against jar
// balances is intentionally unimplemented.
package bankaccount

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListAccountsOutput represents the output of listing bank accounts.
type ListAccountsOutput struct {
	Accounts []*entity.BankAccount
}

// ListAccountsUseCase handles listing the bank account snapshot.
type ListAccountsUseCase struct {
	accountRepo adapter.BankAccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.BankAccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute retrieves the bank account snapshot.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bank accounts: %w", err)
	}

	return &ListAccountsOutput{
		Accounts: accounts,
	}, nil
}
