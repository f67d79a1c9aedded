// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Name          string
	Amount        decimal.Decimal
	CategoryID    string
	SubCategoryID *string
	Date          *time.Time            // Optional, defaults to now
	Color         *entity.GradientColor // Optional, defaults to pink
	Note          string
	CustomIcon    *string
}

// CreateExpenseOutput represents the output of expense creation. Expenses
// carries the reloaded snapshot after the write, so callers replace their
// state instead of patching it.
type CreateExpenseOutput struct {
	Expense  *entity.Expense
	Expenses []*entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateExpenseFields(input.Name, input.Amount, input.CategoryID, input.SubCategoryID, input.Color); err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	color := entity.DefaultColor
	if input.Color != nil {
		color = *input.Color
	}

	expense := entity.NewExpense(
		input.Name,
		input.Amount,
		input.CategoryID,
		input.SubCategoryID,
		date,
		color,
		input.Note,
		input.CustomIcon,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	// Full collection reload after the acknowledged write.
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload expenses: %w", err)
	}

	return &CreateExpenseOutput{
		Expense:  expense,
		Expenses: expenses,
	}, nil
}

// validateExpenseFields checks the user-supplied expense fields shared by the
// create and update operations.
func validateExpenseFields(name string, amount decimal.Decimal, categoryID string, subCategoryID *string, color *entity.GradientColor) error {
	if name == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseName,
			"name is required",
			domainerror.ErrMissingExpenseName,
		)
	}

	if amount.IsNegative() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNegativeExpenseAmount,
			"amount must not be negative",
			domainerror.ErrNegativeExpenseAmount,
		)
	}

	if _, ok := entity.CategoryByID(categoryID); !ok {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeUnknownCategory,
			"category is not in the catalog",
			domainerror.ErrUnknownCategory,
		)
	}

	if subCategoryID != nil {
		if _, ok := entity.SubCategoryOf(categoryID, *subCategoryID); !ok {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeUnknownSubCategory,
				"subcategory does not belong to category",
				domainerror.ErrUnknownSubCategory,
			)
		}
	}

	if color != nil && !entity.IsValidColor(*color) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidColorTag,
			"color tag is not a known gradient",
			domainerror.ErrInvalidColorTag,
		)
	}

	return nil
}
