// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/summary"
)

// MonthlySummaryResponse represents the computed totals for a month.
type MonthlySummaryResponse struct {
	Month            int    `json:"month"`
	Year             int    `json:"year"`
	MonthlyTotal     string `json:"monthly_total"`
	YearlyTotal      string `json:"yearly_total"`
	YearlyProjection string `json:"yearly_projection"`
	ExpenseCount     int    `json:"expense_count"`
}

// BreakdownItemResponse represents a ranked category with layout hints.
type BreakdownItemResponse struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	CategoryIcon string  `json:"category_icon"`
	CategoryType string  `json:"category_type"`
	Amount       string  `json:"amount"`
	Percentage   float64 `json:"percentage"`
	BubbleSize   float64 `json:"bubble_size"`
	Hero         bool    `json:"hero"`
}

// CategoryBreakdownResponse represents the ranked breakdown for a period.
type CategoryBreakdownResponse struct {
	Month      int                     `json:"month"`
	Year       int                     `json:"year"`
	Range      string                  `json:"range"`
	Total      string                  `json:"total"`
	Categories []BreakdownItemResponse `json:"categories"`
}

// ToMonthlySummaryResponse converts the summary output to its response DTO.
func ToMonthlySummaryResponse(output *summary.GetMonthlySummaryOutput) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:            output.Month,
		Year:             output.Year,
		MonthlyTotal:     output.MonthlyTotal.String(),
		YearlyTotal:      output.YearlyTotal.String(),
		YearlyProjection: output.YearlyProjection.String(),
		ExpenseCount:     output.ExpenseCount,
	}
}

// ToCategoryBreakdownResponse converts the breakdown output to its response DTO.
func ToCategoryBreakdownResponse(output *summary.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	items := make([]BreakdownItemResponse, len(output.Categories))
	for i, c := range output.Categories {
		items[i] = BreakdownItemResponse{
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			CategoryIcon: c.CategoryIcon,
			CategoryType: string(c.CategoryType),
			Amount:       c.Amount.String(),
			Percentage:   c.Percentage,
			BubbleSize:   c.BubbleSize,
			Hero:         c.Hero,
		}
	}

	return CategoryBreakdownResponse{
		Month:      output.Month,
		Year:       output.Year,
		Range:      string(output.Range),
		Total:      output.Total.String(),
		Categories: items,
	}
}
