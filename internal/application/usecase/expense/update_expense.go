// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UpdateExpenseInput represents the input for a full-record expense edit.
// Every field except the ID is replaced.
type UpdateExpenseInput struct {
	ExpenseID     uuid.UUID
	Name          string
	Amount        decimal.Decimal
	CategoryID    string
	SubCategoryID *string
	Date          time.Time
	Color         entity.GradientColor
	Note          string
	CustomIcon    *string
}

// UpdateExpenseOutput represents the output of an expense edit.
type UpdateExpenseOutput struct {
	Expense  *entity.Expense
	Expenses []*entity.Expense
}

// UpdateExpenseUseCase handles expense edit logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense edit.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if err := validateExpenseFields(input.Name, input.Amount, input.CategoryID, input.SubCategoryID, &input.Color); err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, err
	}

	expense.Name = input.Name
	expense.Amount = input.Amount
	expense.CategoryID = input.CategoryID
	expense.SubCategoryID = input.SubCategoryID
	expense.Date = input.Date
	expense.Color = input.Color
	expense.Note = input.Note
	expense.CustomIcon = input.CustomIcon
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload expenses: %w", err)
	}

	return &UpdateExpenseOutput{
		Expense:  expense,
		Expenses: expenses,
	}, nil
}
