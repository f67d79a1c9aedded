// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/summary"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles the aggregated summary endpoints.
type SummaryController struct {
	monthlyUseCase   *summary.GetMonthlySummaryUseCase
	breakdownUseCase *summary.GetCategoryBreakdownUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	monthlyUseCase *summary.GetMonthlySummaryUseCase,
	breakdownUseCase *summary.GetCategoryBreakdownUseCase,
) *SummaryController {
	return &SummaryController{
		monthlyUseCase:   monthlyUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// GetMonthly handles GET /summary/monthly requests. Month and year default
// to the current calendar period when omitted.
func (c *SummaryController) GetMonthly(ctx *gin.Context) {
	month, year, err := periodParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), summary.GetMonthlySummaryInput{
		Month: month,
		Year:  year,
	})
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// GetBreakdown handles GET /summary/breakdown requests.
func (c *SummaryController) GetBreakdown(ctx *gin.Context) {
	month, year, err := periodParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), summary.GetCategoryBreakdownInput{
		Month: month,
		Year:  year,
		Range: summary.BreakdownRange(ctx.Query("range")),
	})
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// periodParams reads the month and year query parameters, defaulting to the
// current calendar period.
func periodParams(ctx *gin.Context) (month, year int, err error) {
	now := time.Now().UTC()
	month = int(now.Month())
	year = now.Year()

	if raw := ctx.Query("month"); raw != "" {
		month, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("month must be a number")
		}
	}

	if raw := ctx.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("year must be a number")
		}
	}

	return month, year, nil
}

// handleSummaryError maps domain errors to HTTP status codes.
func (c *SummaryController) handleSummaryError(ctx *gin.Context, err error) {
	var summaryErr *domainerror.SummaryError
	if errors.As(err, &summaryErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: summaryErr.Message,
			Code:  string(summaryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to compute summary",
	})
}
