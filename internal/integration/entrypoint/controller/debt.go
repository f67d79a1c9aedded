// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/debt"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// DebtController handles debt endpoints.
type DebtController struct {
	listUseCase      *debt.ListDebtsUseCase
	createUseCase    *debt.CreateDebtUseCase
	updateUseCase    *debt.UpdateDebtUseCase
	deleteUseCase    *debt.DeleteDebtUseCase
	paymentUseCase   *debt.ApplyPaymentUseCase
	portfolioUseCase *debt.GetPortfolioUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	createUseCase *debt.CreateDebtUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	paymentUseCase *debt.ApplyPaymentUseCase,
	portfolioUseCase *debt.GetPortfolioUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		paymentUseCase:   paymentUseCase,
		portfolioUseCase: portfolioUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve debts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output.Debts))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDebtFields),
		})
		return
	}

	input := debt.CreateDebtInput{
		Name:        req.Name,
		Icon:        req.Icon,
		TotalAmount: decimal.NewFromFloat(req.TotalAmount),
		CustomIcon:  req.CustomIcon,
	}

	if req.Color != nil {
		color := entity.GradientColor(*req.Color)
		input.Color = &color
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtMutationResponse(output.Debt, output.Debts))
}

// Update handles PATCH /debts/:id requests. The edit is a full field
// replace; the paid amount is re-clamped against the new total.
func (c *DebtController) Update(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	var req dto.UpdateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDebtFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), debt.UpdateDebtInput{
		DebtID:      debtID,
		Name:        req.Name,
		Icon:        req.Icon,
		TotalAmount: decimal.NewFromFloat(req.TotalAmount),
		PaidAmount:  decimal.NewFromFloat(req.PaidAmount),
		Color:       entity.GradientColor(req.Color),
		CustomIcon:  req.CustomIcon,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtMutationResponse(output.Debt, output.Debts))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{
		DebtID: debtID,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output.Debts))
}

// ApplyPayment handles POST /debts/:id/payments requests.
func (c *DebtController) ApplyPayment(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	var req dto.ApplyPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.paymentUseCase.Execute(ctx.Request.Context(), debt.ApplyPaymentInput{
		DebtID: debtID,
		Delta:  decimal.NewFromFloat(req.Delta),
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtMutationResponse(output.Debt, output.Debts))
}

// GetPortfolio handles GET /debts/portfolio requests.
func (c *DebtController) GetPortfolio(ctx *gin.Context) {
	output, err := c.portfolioUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute debt portfolio",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtPortfolioResponse(output))
}

// handleDebtError maps domain errors to HTTP status codes.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		status := http.StatusBadRequest
		if debtErr.Code == domainerror.ErrCodeDebtNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrDebtNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Debt not found",
			Code:  string(domainerror.ErrCodeDebtNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to process debt",
	})
}
