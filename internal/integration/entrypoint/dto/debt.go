// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/debt"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateDebtRequest represents the request body for debt creation.
type CreateDebtRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Icon        string  `json:"icon,omitempty"`
	TotalAmount float64 `json:"total_amount" binding:"required,gt=0"`
	Color       *string `json:"color,omitempty"`
	CustomIcon  *string `json:"custom_icon,omitempty"`
}

// UpdateDebtRequest represents the request body for a full debt edit.
type UpdateDebtRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Icon        string  `json:"icon,omitempty"`
	TotalAmount float64 `json:"total_amount" binding:"required,gt=0"`
	PaidAmount  float64 `json:"paid_amount" binding:"gte=0"`
	Color       string  `json:"color" binding:"required"`
	CustomIcon  *string `json:"custom_icon,omitempty"`
}

// ApplyPaymentRequest represents the request body for recording a payment.
// A negative delta reverses a previous payment.
type ApplyPaymentRequest struct {
	Delta float64 `json:"delta" binding:"required"`
}

// DebtResponse represents a single debt in API responses.
type DebtResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Icon            string    `json:"icon"`
	TotalAmount     string    `json:"total_amount"`
	PaidAmount      string    `json:"paid_amount"`
	RemainingAmount string    `json:"remaining_amount"`
	Progress        float64   `json:"progress"`
	Color           string    `json:"color"`
	CustomIcon      *string   `json:"custom_icon,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DebtListResponse represents the full debt snapshot in API responses.
type DebtListResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// DebtMutationResponse represents the response of a write, carrying the
// affected debt plus the reloaded snapshot.
type DebtMutationResponse struct {
	Debt  DebtResponse   `json:"debt"`
	Debts []DebtResponse `json:"debts"`
}

// DebtPortfolioResponse represents aggregated payoff progress.
type DebtPortfolioResponse struct {
	Debts           []DebtResponse `json:"debts"`
	TotalDebt       string         `json:"total_debt"`
	TotalPaid       string         `json:"total_paid"`
	RemainingDebt   string         `json:"remaining_debt"`
	OverallProgress float64        `json:"overall_progress"`
}

// ToDebtResponse converts a domain Debt entity to its response DTO.
func ToDebtResponse(d *entity.Debt) DebtResponse {
	return DebtResponse{
		ID:              d.ID.String(),
		Name:            d.Name,
		Icon:            d.Icon,
		TotalAmount:     d.TotalAmount.String(),
		PaidAmount:      d.PaidAmount.String(),
		RemainingAmount: d.Remaining().String(),
		Progress:        d.ProgressPercent(),
		Color:           string(d.Color),
		CustomIcon:      d.CustomIcon,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ToDebtListResponse converts a debt snapshot to its response DTO.
func ToDebtListResponse(debts []*entity.Debt) DebtListResponse {
	responses := make([]DebtResponse, len(debts))
	for i, d := range debts {
		responses[i] = ToDebtResponse(d)
	}
	return DebtListResponse{Debts: responses}
}

// ToDebtMutationResponse converts a write result to its response DTO.
func ToDebtMutationResponse(d *entity.Debt, debts []*entity.Debt) DebtMutationResponse {
	responses := make([]DebtResponse, len(debts))
	for i, item := range debts {
		responses[i] = ToDebtResponse(item)
	}
	return DebtMutationResponse{
		Debt:  ToDebtResponse(d),
		Debts: responses,
	}
}

// ToDebtPortfolioResponse converts the portfolio output to its response DTO.
func ToDebtPortfolioResponse(output *debt.GetPortfolioOutput) DebtPortfolioResponse {
	responses := make([]DebtResponse, len(output.Debts))
	for i, d := range output.Debts {
		responses[i] = ToDebtResponse(d)
	}
	return DebtPortfolioResponse{
		Debts:           responses,
		TotalDebt:       output.TotalDebt.String(),
		TotalPaid:       output.TotalPaid.String(),
		RemainingDebt:   output.RemainingDebt.String(),
		OverallProgress: output.OverallProgress,
	}
}
