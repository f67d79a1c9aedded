// Package jar contains budget jar-related use cases.
package jar

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListJarsOutput represents the output of listing jars.
type ListJarsOutput struct {
	Jars                 []*entity.Jar
	TotalAllocated       float64
	RemainingAllocatable float64
}

// ListJarsUseCase handles listing the jar snapshot.
type ListJarsUseCase struct {
	jarRepo adapter.JarRepository
}

// NewListJarsUseCase creates a new ListJarsUseCase instance.
func NewListJarsUseCase(jarRepo adapter.JarRepository) *ListJarsUseCase {
	return &ListJarsUseCase{
		jarRepo: jarRepo,
	}
}

// Execute retrieves the jar snapshot with allocation totals.
func (uc *ListJarsUseCase) Execute(ctx context.Context) (*ListJarsOutput, error) {
	jars, err := uc.jarRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load jars: %w", err)
	}

	return &ListJarsOutput{
		Jars:                 jars,
		TotalAllocated:       entity.TotalAllocatedPercentage(jars),
		RemainingAllocatable: entity.RemainingAllocatable(jars),
	}, nil
}
