// Package jar contains budget jar-related use cases.
package jar

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ApplyDefaultPresetOutput represents the output of seeding the six
// canonical jars.
type ApplyDefaultPresetOutput struct {
	Jars                 []*entity.Jar
	TotalAllocated       float64
	RemainingAllocatable float64
}

// ApplyDefaultPresetUseCase seeds the canonical six-jar preset. The preset
// replaces the stored snapshot wholesale, so the use case refuses to run
// over a non-empty jar list; the pure preset itself carries no such guard.
type ApplyDefaultPresetUseCase struct {
	jarRepo adapter.JarRepository
}

// NewApplyDefaultPresetUseCase creates a new ApplyDefaultPresetUseCase instance.
func NewApplyDefaultPresetUseCase(jarRepo adapter.JarRepository) *ApplyDefaultPresetUseCase {
	return &ApplyDefaultPresetUseCase{
		jarRepo: jarRepo,
	}
}

// Execute seeds the preset when no jars exist yet.
func (uc *ApplyDefaultPresetUseCase) Execute(ctx context.Context) (*ApplyDefaultPresetOutput, error) {
	existing, err := uc.jarRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load jars: %w", err)
	}

	if len(existing) > 0 {
		return nil, domainerror.NewJarError(
			domainerror.ErrCodeJarsNotEmpty,
			"default preset can only be applied to an empty jar list",
			domainerror.ErrJarsNotEmpty,
		)
	}

	preset := entity.DefaultJarPreset()

	if err := uc.jarRepo.Replace(ctx, preset); err != nil {
		return nil, fmt.Errorf("failed to store preset jars: %w", err)
	}

	jars, err := uc.jarRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload jars: %w", err)
	}

	return &ApplyDefaultPresetOutput{
		Jars:                 jars,
		TotalAllocated:       entity.TotalAllocatedPercentage(jars),
		RemainingAllocatable: entity.RemainingAllocatable(jars),
	}, nil
}
