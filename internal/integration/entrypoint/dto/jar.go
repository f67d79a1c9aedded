// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/jar"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// JarItemRequest represents one jar inside a snapshot replace. An absent ID
// marks a newly created jar.
type JarItemRequest struct {
	ID            string   `json:"id,omitempty" binding:"omitempty,uuid"`
	Name          string   `json:"name" binding:"required,min=1,max=255"`
	Description   string   `json:"description,omitempty" binding:"omitempty,max=1000"`
	Percentage    float64  `json:"percentage" binding:"gte=0,lte=100"`
	Emoji         string   `json:"emoji,omitempty"`
	Color         string   `json:"color,omitempty"`
	CurrentAmount float64  `json:"current_amount" binding:"gte=0"`
	TargetAmount  *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
}

// ReplaceJarsRequest represents the request body for a snapshot replace.
type ReplaceJarsRequest struct {
	Jars []JarItemRequest `json:"jars" binding:"required"`
}

// JarResponse represents a single jar in API responses.
type JarResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Percentage    float64   `json:"percentage"`
	Emoji         string    `json:"emoji"`
	Color         string    `json:"color"`
	CurrentAmount string    `json:"current_amount"`
	TargetAmount  *string   `json:"target_amount,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// JarListResponse represents the jar snapshot with allocation totals.
type JarListResponse struct {
	Jars                 []JarResponse `json:"jars"`
	TotalAllocated       float64       `json:"total_allocated"`
	RemainingAllocatable float64       `json:"remaining_allocatable"`
}

// JarAllocationResponse represents a jar with its derived allocation figures.
type JarAllocationResponse struct {
	Jar             JarResponse `json:"jar"`
	AllocatedAmount string      `json:"allocated_amount"`
	Progress        *float64    `json:"progress,omitempty"`
}

// AllocationResponse represents the full envelope-budgeting view.
type AllocationResponse struct {
	Jars                 []JarAllocationResponse `json:"jars"`
	RegularIncomeTotal   string                  `json:"regular_income_total"`
	IrregularIncomeTotal string                  `json:"irregular_income_total"`
	TotalAllocated       float64                 `json:"total_allocated"`
	RemainingAllocatable float64                 `json:"remaining_allocatable"`
}

// ToJarEntities converts snapshot replace items to domain entities. Items
// without an ID get a fresh one; supplied IDs are preserved so existing jars
// keep their identity across replaces.
func ToJarEntities(items []JarItemRequest) ([]*entity.Jar, error) {
	now := time.Now().UTC()

	jars := make([]*entity.Jar, len(items))
	for i, item := range items {
		id := uuid.New()
		if item.ID != "" {
			parsed, err := uuid.Parse(item.ID)
			if err != nil {
				return nil, fmt.Errorf("invalid jar id %q: %w", item.ID, err)
			}
			id = parsed
		}

		color := entity.DefaultColor
		if item.Color != "" {
			color = entity.GradientColor(item.Color)
		}

		var target *decimal.Decimal
		if item.TargetAmount != nil {
			t := decimal.NewFromFloat(*item.TargetAmount)
			target = &t
		}

		jars[i] = &entity.Jar{
			ID:            id,
			Name:          item.Name,
			Description:   item.Description,
			Percentage:    item.Percentage,
			Emoji:         item.Emoji,
			Color:         color,
			CurrentAmount: decimal.NewFromFloat(item.CurrentAmount),
			TargetAmount:  target,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}
	return jars, nil
}

// ToJarResponse converts a domain Jar entity to its response DTO.
func ToJarResponse(j *entity.Jar) JarResponse {
	response := JarResponse{
		ID:            j.ID.String(),
		Name:          j.Name,
		Description:   j.Description,
		Percentage:    j.Percentage,
		Emoji:         j.Emoji,
		Color:         string(j.Color),
		CurrentAmount: j.CurrentAmount.String(),
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}

	if j.TargetAmount != nil {
		target := j.TargetAmount.String()
		response.TargetAmount = &target
	}

	return response
}

// ToJarListResponse converts a jar snapshot with totals to its response DTO.
func ToJarListResponse(jars []*entity.Jar, totalAllocated, remaining float64) JarListResponse {
	responses := make([]JarResponse, len(jars))
	for i, j := range jars {
		responses[i] = ToJarResponse(j)
	}
	return JarListResponse{
		Jars:                 responses,
		TotalAllocated:       totalAllocated,
		RemainingAllocatable: remaining,
	}
}

// ToAllocationResponse converts the allocation output to its response DTO.
func ToAllocationResponse(output *jar.GetAllocationOutput) AllocationResponse {
	allocations := make([]JarAllocationResponse, len(output.Jars))
	for i, a := range output.Jars {
		item := JarAllocationResponse{
			Jar:             ToJarResponse(a.Jar),
			AllocatedAmount: a.AllocatedAmount.String(),
		}
		if a.HasProgress {
			progress := a.Progress
			item.Progress = &progress
		}
		allocations[i] = item
	}

	return AllocationResponse{
		Jars:                 allocations,
		RegularIncomeTotal:   output.RegularIncomeTotal.String(),
		IrregularIncomeTotal: output.IrregularIncomeTotal.String(),
		TotalAllocated:       output.TotalAllocated,
		RemainingAllocatable: output.RemainingAllocatable,
	}
}
