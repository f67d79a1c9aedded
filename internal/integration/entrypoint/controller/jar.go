// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/jar"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// JarController handles budget jar endpoints.
type JarController struct {
	listUseCase       *jar.ListJarsUseCase
	replaceUseCase    *jar.ReplaceJarsUseCase
	presetUseCase     *jar.ApplyDefaultPresetUseCase
	allocationUseCase *jar.GetAllocationUseCase
}

// NewJarController creates a new jar controller instance.
func NewJarController(
	listUseCase *jar.ListJarsUseCase,
	replaceUseCase *jar.ReplaceJarsUseCase,
	presetUseCase *jar.ApplyDefaultPresetUseCase,
	allocationUseCase *jar.GetAllocationUseCase,
) *JarController {
	return &JarController{
		listUseCase:       listUseCase,
		replaceUseCase:    replaceUseCase,
		presetUseCase:     presetUseCase,
		allocationUseCase: allocationUseCase,
	}
}

// List handles GET /jars requests.
func (c *JarController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve jars",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToJarListResponse(output.Jars, output.TotalAllocated, output.RemainingAllocatable))
}

// Replace handles PUT /jars requests, replacing the snapshot wholesale.
func (c *JarController) Replace(ctx *gin.Context) {
	var req dto.ReplaceJarsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingJarFields),
		})
		return
	}

	jars, err := dto.ToJarEntities(req.Jars)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeMissingJarFields),
		})
		return
	}

	output, err := c.replaceUseCase.Execute(ctx.Request.Context(), jar.ReplaceJarsInput{
		Jars: jars,
	})
	if err != nil {
		c.handleJarError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToJarListResponse(output.Jars, output.TotalAllocated, output.RemainingAllocatable))
}

// ApplyPreset handles POST /jars/preset requests.
func (c *JarController) ApplyPreset(ctx *gin.Context) {
	output, err := c.presetUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleJarError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToJarListResponse(output.Jars, output.TotalAllocated, output.RemainingAllocatable))
}

// GetAllocation handles GET /jars/allocation requests.
func (c *JarController) GetAllocation(ctx *gin.Context) {
	output, err := c.allocationUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute jar allocation",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAllocationResponse(output))
}

// handleJarError maps domain errors to HTTP status codes.
func (c *JarController) handleJarError(ctx *gin.Context, err error) {
	var jarErr *domainerror.JarError
	if errors.As(err, &jarErr) {
		status := http.StatusBadRequest
		if jarErr.Code == domainerror.ErrCodeJarsNotEmpty {
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: jarErr.Message,
			Code:  string(jarErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to process jars",
	})
}
