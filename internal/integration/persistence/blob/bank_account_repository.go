package blob

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// BankAccountRepository persists the bank account collection as a single keyed blob.
type BankAccountRepository struct {
	store *Store
}

// NewBankAccountRepository creates a new blob-backed bank account repository.
func NewBankAccountRepository(store *Store) *BankAccountRepository {
	return &BankAccountRepository{
		store: store,
	}
}

// List retrieves the current bank account snapshot in stored order.
func (r *BankAccountRepository) List(ctx context.Context) ([]*entity.BankAccount, error) {
	var records []bankAccountRecord
	if err := r.store.load(ctx, KeyBankAccounts, &records); err != nil {
		return nil, err
	}

	accounts := make([]*entity.BankAccount, 0, len(records))
	for _, record := range records {
		account, err := record.toEntity()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// Replace overwrites the bank account snapshot wholesale.
func (r *BankAccountRepository) Replace(ctx context.Context, accounts []*entity.BankAccount) error {
	records := make([]bankAccountRecord, len(accounts))
	for i, account := range accounts {
		records[i] = bankAccountFromEntity(account)
	}
	return r.store.store(ctx, KeyBankAccounts, records)
}
