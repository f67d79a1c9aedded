package income

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeIncomeRepo struct {
	incomes []*entity.Income
}

func (r *fakeIncomeRepo) List(_ context.Context) ([]*entity.Income, error) {
	return r.incomes, nil
}

func (r *fakeIncomeRepo) Replace(_ context.Context, incomes []*entity.Income) error {
	r.incomes = incomes
	return nil
}

func TestReplaceIncomesUseCase_Execute(t *testing.T) {
	t.Run("splits totals by income type", func(t *testing.T) {
		repo := &fakeIncomeRepo{}
		uc := NewReplaceIncomesUseCase(repo)

		output, err := uc.Execute(context.Background(), ReplaceIncomesInput{
			Incomes: []*entity.Income{
				entity.NewIncome("Salary", decimal.NewFromInt(4000), entity.IncomeTypeRegular, time.Now()),
				entity.NewIncome("Bonus", decimal.NewFromInt(1000), entity.IncomeTypeIrregular, time.Now()),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.RegularTotal.Equal(decimal.NewFromInt(4000)) {
			t.Errorf("expected regular total 4000, got %s", output.RegularTotal)
		}
		if !output.IrregularTotal.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected irregular total 1000, got %s", output.IrregularTotal)
		}
	})

	t.Run("preserves creation timestamp for surviving income IDs", func(t *testing.T) {
		original := entity.NewIncome("Salary", decimal.NewFromInt(4000), entity.IncomeTypeRegular, time.Now())
		original.CreatedAt = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
		repo := &fakeIncomeRepo{incomes: []*entity.Income{original}}
		uc := NewReplaceIncomesUseCase(repo)

		edited := entity.NewIncome("Salary", decimal.NewFromInt(4500), entity.IncomeTypeRegular, time.Now())
		edited.ID = original.ID

		output, err := uc.Execute(context.Background(), ReplaceIncomesInput{
			Incomes: []*entity.Income{edited},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Incomes[0].CreatedAt.Equal(original.CreatedAt) {
			t.Errorf("surviving income should keep CreatedAt %s, got %s", original.CreatedAt, output.Incomes[0].CreatedAt)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		repo := &fakeIncomeRepo{}
		uc := NewReplaceIncomesUseCase(repo)

		_, err := uc.Execute(context.Background(), ReplaceIncomesInput{
			Incomes: []*entity.Income{
				entity.NewIncome("Nothing", decimal.Zero, entity.IncomeTypeRegular, time.Now()),
			},
		})

		var incomeErr *domainerror.IncomeError
		if !errors.As(err, &incomeErr) {
			t.Fatalf("expected IncomeError, got %T", err)
		}
		if incomeErr.Code != domainerror.ErrCodeInvalidIncomeAmount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidIncomeAmount, incomeErr.Code)
		}
	})
}
