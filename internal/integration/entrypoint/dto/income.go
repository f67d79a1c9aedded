// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// IncomeItemRequest represents one income inside a snapshot replace. An
// absent ID marks a newly created income.
type IncomeItemRequest struct {
	ID     string  `json:"id,omitempty" binding:"omitempty,uuid"`
	Name   string  `json:"name" binding:"required,min=1,max=255"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Type   string  `json:"type" binding:"required,oneof=regular irregular"`
	Date   string  `json:"date" binding:"required"`
}

// ReplaceIncomesRequest represents the request body for a snapshot replace.
type ReplaceIncomesRequest struct {
	Incomes []IncomeItemRequest `json:"incomes" binding:"required"`
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    string    `json:"amount"`
	Type      string    `json:"type"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IncomeListResponse represents the income snapshot with totals.
type IncomeListResponse struct {
	Incomes        []IncomeResponse `json:"incomes"`
	RegularTotal   string           `json:"regular_total"`
	IrregularTotal string           `json:"irregular_total"`
}

// ToIncomeEntities converts snapshot replace items to domain entities.
func ToIncomeEntities(items []IncomeItemRequest) ([]*entity.Income, error) {
	now := time.Now().UTC()

	incomes := make([]*entity.Income, len(items))
	for i, item := range items {
		id := uuid.New()
		if item.ID != "" {
			parsed, err := uuid.Parse(item.ID)
			if err != nil {
				return nil, fmt.Errorf("invalid income id %q: %w", item.ID, err)
			}
			id = parsed
		}

		date, err := time.Parse("2006-01-02", item.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid income date %q: %w", item.Date, err)
		}

		incomes[i] = &entity.Income{
			ID:        id,
			Name:      item.Name,
			Amount:    decimal.NewFromFloat(item.Amount),
			Type:      entity.IncomeType(item.Type),
			Date:      date,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return incomes, nil
}

// ToIncomeResponse converts a domain Income entity to its response DTO.
func ToIncomeResponse(i *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:        i.ID.String(),
		Name:      i.Name,
		Amount:    i.Amount.String(),
		Type:      string(i.Type),
		Date:      i.Date.Format("2006-01-02"),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// ToIncomeListResponse converts an income snapshot with totals to its
// response DTO.
func ToIncomeListResponse(incomes []*entity.Income, regular, irregular decimal.Decimal) IncomeListResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i, income := range incomes {
		responses[i] = ToIncomeResponse(income)
	}
	return IncomeListResponse{
		Incomes:        responses,
		RegularTotal:   regular.String(),
		IrregularTotal: irregular.String(),
	}
}
