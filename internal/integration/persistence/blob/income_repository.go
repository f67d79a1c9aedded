package blob

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// IncomeRepository persists the income collection as a single keyed blob.
type IncomeRepository struct {
	store *Store
}

// NewIncomeRepository creates a new blob-backed income repository.
func NewIncomeRepository(store *Store) *IncomeRepository {
	return &IncomeRepository{
		store: store,
	}
}

// List retrieves the current income snapshot in stored order.
func (r *IncomeRepository) List(ctx context.Context) ([]*entity.Income, error) {
	var records []incomeRecord
	if err := r.store.load(ctx, KeyIncomes, &records); err != nil {
		return nil, err
	}

	incomes := make([]*entity.Income, 0, len(records))
	for _, record := range records {
		income, err := record.toEntity()
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}
	return incomes, nil
}

// Replace overwrites the income snapshot wholesale.
func (r *IncomeRepository) Replace(ctx context.Context, incomes []*entity.Income) error {
	records := make([]incomeRecord, len(incomes))
	for i, income := range incomes {
		records[i] = incomeFromEntity(income)
	}
	return r.store.store(ctx, KeyIncomes, records)
}
