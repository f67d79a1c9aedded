// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	CategoryID    string  `json:"category_id" binding:"required"`
	SubCategoryID *string `json:"sub_category_id,omitempty"`
	Date          *string `json:"date,omitempty"`
	Color         *string `json:"color,omitempty"`
	Note          string  `json:"note,omitempty" binding:"omitempty,max=1000"`
	CustomIcon    *string `json:"custom_icon,omitempty"`
}

// UpdateExpenseRequest represents the request body for a full expense edit.
type UpdateExpenseRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	CategoryID    string  `json:"category_id" binding:"required"`
	SubCategoryID *string `json:"sub_category_id,omitempty"`
	Date          string  `json:"date" binding:"required"`
	Color         string  `json:"color" binding:"required"`
	Note          string  `json:"note,omitempty" binding:"omitempty,max=1000"`
	CustomIcon    *string `json:"custom_icon,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Amount        string    `json:"amount"`
	CategoryID    string    `json:"category_id"`
	SubCategoryID *string   `json:"sub_category_id,omitempty"`
	Date          string    `json:"date"`
	Color         string    `json:"color"`
	Note          string    `json:"note"`
	CustomIcon    *string   `json:"custom_icon,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the full expense snapshot in API responses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ExpenseMutationResponse represents the response of a write, carrying the
// affected expense plus the reloaded snapshot.
type ExpenseMutationResponse struct {
	Expense  ExpenseResponse   `json:"expense"`
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to its response DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID.String(),
		Name:          e.Name,
		Amount:        e.Amount.String(),
		CategoryID:    e.CategoryID,
		SubCategoryID: e.SubCategoryID,
		Date:          e.Date.Format("2006-01-02"),
		Color:         string(e.Color),
		Note:          e.Note,
		CustomIcon:    e.CustomIcon,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToExpenseListResponse converts an expense snapshot to its response DTO.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: responses}
}

// ToExpenseMutationResponse converts a write result to its response DTO.
func ToExpenseMutationResponse(expense *entity.Expense, expenses []*entity.Expense) ExpenseMutationResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return ExpenseMutationResponse{
		Expense:  ToExpenseResponse(expense),
		Expenses: responses,
	}
}
