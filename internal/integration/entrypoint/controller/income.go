// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/income"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	listUseCase    *income.ListIncomesUseCase
	replaceUseCase *income.ReplaceIncomesUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomesUseCase,
	replaceUseCase *income.ReplaceIncomesUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:    listUseCase,
		replaceUseCase: replaceUseCase,
	}
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve incomes",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Incomes, output.RegularTotal, output.IrregularTotal))
}

// Replace handles PUT /incomes requests, replacing the snapshot wholesale.
func (c *IncomeController) Replace(ctx *gin.Context) {
	var req dto.ReplaceIncomesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	incomes, err := dto.ToIncomeEntities(req.Incomes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.replaceUseCase.Execute(ctx.Request.Context(), income.ReplaceIncomesInput{
		Incomes: incomes,
	})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Incomes, output.RegularTotal, output.IrregularTotal))
}

// handleIncomeError maps domain errors to HTTP status codes.
func (c *IncomeController) handleIncomeError(ctx *gin.Context, err error) {
	var incomeErr *domainerror.IncomeError
	if errors.As(err, &incomeErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: incomeErr.Message,
			Code:  string(incomeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to process incomes",
	})
}
