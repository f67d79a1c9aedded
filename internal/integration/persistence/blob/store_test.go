package blob

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStore(client)
}

func TestJarRepository_EmptySnapshot(t *testing.T) {
	repo := NewJarRepository(newTestStore(t))

	jars, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(jars) != 0 {
		t.Errorf("expected empty snapshot for missing key, got %d jars", len(jars))
	}
}

func TestJarRepository_ReplaceAndList(t *testing.T) {
	repo := NewJarRepository(newTestStore(t))
	ctx := context.Background()

	preset := entity.DefaultJarPreset()
	if err := repo.Replace(ctx, preset); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	jars, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(jars) != len(preset) {
		t.Fatalf("expected %d jars, got %d", len(preset), len(jars))
	}
	for i := range preset {
		if jars[i].ID != preset[i].ID {
			t.Errorf("position %d: expected id %s, got %s", i, preset[i].ID, jars[i].ID)
		}
		if jars[i].Name != preset[i].Name {
			t.Errorf("position %d: expected name %s, got %s", i, preset[i].Name, jars[i].Name)
		}
	}
}

func TestJarRepository_ReplaceIsWholesale(t *testing.T) {
	repo := NewJarRepository(newTestStore(t))
	ctx := context.Background()

	if err := repo.Replace(ctx, entity.DefaultJarPreset()); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	single := []*entity.Jar{entity.NewJar("Only jar", "", 100, "🫙", entity.ColorPink, nil)}
	if err := repo.Replace(ctx, single); err != nil {
		t.Fatalf("second Replace failed: %v", err)
	}

	jars, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(jars) != 1 || jars[0].Name != "Only jar" {
		t.Errorf("expected wholesale replacement with 1 jar, got %d", len(jars))
	}
}

func TestIncomeRepository_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewIncomeRepository(store)
	ctx := context.Background()

	incomes := []*entity.Income{
		entity.NewIncome("Salary", decimal.NewFromInt(30000), entity.IncomeTypeRegular, mustDate(t, "2025-04-01")),
		entity.NewIncome("Freelance gig", decimal.NewFromInt(5000), entity.IncomeTypeIrregular, mustDate(t, "2025-04-15")),
	}

	if err := repo.Replace(ctx, incomes); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	loaded, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 incomes, got %d", len(loaded))
	}
	if loaded[0].Type != entity.IncomeTypeRegular || loaded[1].Type != entity.IncomeTypeIrregular {
		t.Error("income types must survive the round-trip")
	}
	if !loaded[0].Amount.Equal(decimal.NewFromInt(30000)) {
		t.Errorf("expected amount 30000, got %s", loaded[0].Amount)
	}

	// Collections are independent keys; incomes must not leak into jars.
	jars, err := NewJarRepository(store).List(ctx)
	if err != nil {
		t.Fatalf("jar List failed: %v", err)
	}
	if len(jars) != 0 {
		t.Errorf("expected jar collection untouched, got %d entries", len(jars))
	}
}

func TestBankAccountRepository_RoundTrip(t *testing.T) {
	repo := NewBankAccountRepository(newTestStore(t))
	ctx := context.Background()

	account := entity.NewBankAccount("Main account", nil, decimal.NewFromInt(42000))

	if err := repo.Replace(ctx, []*entity.BankAccount{account}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	loaded, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 account, got %d", len(loaded))
	}
	if loaded[0].ID != account.ID || !loaded[0].Balance.Equal(account.Balance) {
		t.Error("account round-trip mismatch")
	}
}

func mustDate(t *testing.T, value string) (parsed time.Time) {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return parsed
}
