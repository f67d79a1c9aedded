// Package jar contains budget jar-related use cases.
package jar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ReplaceJarsInput represents the input for a wholesale jar snapshot replace.
type ReplaceJarsInput struct {
	Jars []*entity.Jar
}

// ReplaceJarsOutput represents the output of a jar replace. Over-allocation
// beyond 100% is surfaced through RemainingAllocatable going negative; it is
// an advisory, never a rejection.
type ReplaceJarsOutput struct {
	Jars                 []*entity.Jar
	TotalAllocated       float64
	RemainingAllocatable float64
}

// ReplaceJarsUseCase handles the bulk jar snapshot replace used for creating,
// editing and removing jars.
type ReplaceJarsUseCase struct {
	jarRepo adapter.JarRepository
}

// NewReplaceJarsUseCase creates a new ReplaceJarsUseCase instance.
func NewReplaceJarsUseCase(jarRepo adapter.JarRepository) *ReplaceJarsUseCase {
	return &ReplaceJarsUseCase{
		jarRepo: jarRepo,
	}
}

// Execute validates and stores the new jar snapshot. Jars whose ID survives
// the replace keep their original creation timestamp.
func (uc *ReplaceJarsUseCase) Execute(ctx context.Context, input ReplaceJarsInput) (*ReplaceJarsOutput, error) {
	for _, j := range input.Jars {
		if err := validateJar(j); err != nil {
			return nil, err
		}
	}

	existing, err := uc.jarRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load jars: %w", err)
	}

	createdAt := make(map[uuid.UUID]time.Time, len(existing))
	for _, j := range existing {
		createdAt[j.ID] = j.CreatedAt
	}
	for _, j := range input.Jars {
		if t, ok := createdAt[j.ID]; ok {
			j.CreatedAt = t
		}
	}

	if err := uc.jarRepo.Replace(ctx, input.Jars); err != nil {
		return nil, fmt.Errorf("failed to replace jars: %w", err)
	}

	jars, err := uc.jarRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload jars: %w", err)
	}

	return &ReplaceJarsOutput{
		Jars:                 jars,
		TotalAllocated:       entity.TotalAllocatedPercentage(jars),
		RemainingAllocatable: entity.RemainingAllocatable(jars),
	}, nil
}

// validateJar checks the user-supplied fields of a single jar.
func validateJar(j *entity.Jar) error {
	if j.Name == "" {
		return domainerror.NewJarError(
			domainerror.ErrCodeMissingJarName,
			"jar name is required",
			domainerror.ErrMissingJarName,
		)
	}

	if j.Percentage < 0 || j.Percentage > 100 {
		return domainerror.NewJarError(
			domainerror.ErrCodeInvalidJarPercentage,
			"jar percentage must be between 0 and 100",
			domainerror.ErrInvalidJarPercentage,
		)
	}

	if j.CurrentAmount.IsNegative() {
		return domainerror.NewJarError(
			domainerror.ErrCodeNegativeJarAmount,
			"jar current amount must not be negative",
			domainerror.ErrNegativeJarAmount,
		)
	}

	if j.TargetAmount != nil && !j.TargetAmount.IsPositive() {
		return domainerror.NewJarError(
			domainerror.ErrCodeInvalidJarTarget,
			"jar target amount must be greater than zero",
			domainerror.ErrInvalidJarTarget,
		)
	}

	if !entity.IsValidColor(j.Color) {
		return domainerror.NewJarError(
			domainerror.ErrCodeInvalidJarColor,
			"jar color is not a known gradient",
			domainerror.ErrInvalidJarColor,
		)
	}

	return nil
}
