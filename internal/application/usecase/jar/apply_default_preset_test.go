package jar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeJarRepo struct {
	jars []*entity.Jar
}

func (r *fakeJarRepo) List(_ context.Context) ([]*entity.Jar, error) {
	return r.jars, nil
}

func (r *fakeJarRepo) Replace(_ context.Context, jars []*entity.Jar) error {
	r.jars = jars
	return nil
}

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

func TestApplyDefaultPresetUseCase_Execute(t *testing.T) {
	t.Run("seeds the preset into an empty collection", func(t *testing.T) {
		repo := &fakeJarRepo{}
		uc := NewApplyDefaultPresetUseCase(repo)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Jars) != 6 {
			t.Fatalf("expected 6 preset jars, got %d", len(output.Jars))
		}
		if output.TotalAllocated != 100 {
			t.Errorf("expected preset to allocate 100%%, got %v", output.TotalAllocated)
		}
		if output.RemainingAllocatable != 0 {
			t.Errorf("expected nothing left to allocate, got %v", output.RemainingAllocatable)
		}
		if len(repo.jars) != 6 {
			t.Errorf("expected preset to be stored, found %d jars", len(repo.jars))
		}
	})

	t.Run("refuses to overwrite existing jars", func(t *testing.T) {
		existing := entity.NewJar("Essentials", "", 70, "🏠", entity.DefaultColor, nil)
		repo := &fakeJarRepo{jars: []*entity.Jar{existing}}
		uc := NewApplyDefaultPresetUseCase(repo)

		_, err := uc.Execute(context.Background())
		if err == nil {
			t.Fatal("expected error, got nil")
		}

		var jarErr *domainerror.JarError
		if !errors.As(err, &jarErr) {
			t.Fatalf("expected JarError, got %T", err)
		}
		if jarErr.Code != domainerror.ErrCodeJarsNotEmpty {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeJarsNotEmpty, jarErr.Code)
		}
		if len(repo.jars) != 1 {
			t.Errorf("existing jars should be untouched, found %d", len(repo.jars))
		}
	})
}

func TestGetAllocationUseCase_Execute(t *testing.T) {
	t.Run("prices jars against regular income only", func(t *testing.T) {
		target := decimal.NewFromInt(5000)
		jarRepo := &fakeJarRepo{jars: []*entity.Jar{
			entity.NewJar("Necessities", "", 55, "🏠", entity.ColorPink, nil),
			entity.NewJar("Savings", "", 10, "💰", entity.ColorYellow, &target),
		}}
		incomeRepo := &fakeIncomeRepo{incomes: []*entity.Income{
			entity.NewIncome("Salary", decimal.NewFromInt(4000), entity.IncomeTypeRegular, time.Now()),
			entity.NewIncome("Bonus", decimal.NewFromInt(1000), entity.IncomeTypeIrregular, time.Now()),
		}}
		uc := NewGetAllocationUseCase(jarRepo, incomeRepo)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.RegularIncomeTotal.Equal(decimal.NewFromInt(4000)) {
			t.Errorf("expected regular total 4000, got %s", output.RegularIncomeTotal)
		}
		if !output.IrregularIncomeTotal.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected irregular total 1000, got %s", output.IrregularIncomeTotal)
		}
		if !output.Jars[0].AllocatedAmount.Equal(decimal.NewFromInt(2200)) {
			t.Errorf("expected 55%% of 4000 = 2200, got %s", output.Jars[0].AllocatedAmount)
		}
		if output.Jars[0].HasProgress {
			t.Error("jar without target should not report progress")
		}
		if !output.Jars[1].HasProgress {
			t.Error("jar with target should report progress")
		}
		if output.TotalAllocated != 65 {
			t.Errorf("expected 65%% allocated, got %v", output.TotalAllocated)
		}
		if output.RemainingAllocatable != 35 {
			t.Errorf("expected 35%% remaining, got %v", output.RemainingAllocatable)
		}
	})

	t.Run("empty incomes allocate zero", func(t *testing.T) {
		jarRepo := &fakeJarRepo{jars: entity.DefaultJarPreset()}
		uc := NewGetAllocationUseCase(jarRepo, &fakeIncomeRepo{})

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, allocation := range output.Jars {
			if !allocation.AllocatedAmount.IsZero() {
				t.Errorf("jar %s: expected zero allocation, got %s", allocation.Jar.Name, allocation.AllocatedAmount)
			}
		}
	})
}
