// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/session"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// SessionController handles the single-owner session endpoint.
type SessionController struct {
	createUseCase *session.CreateSessionUseCase
}

// NewSessionController creates a new session controller instance.
func NewSessionController(createUseCase *session.CreateSessionUseCase) *SessionController {
	return &SessionController{
		createUseCase: createUseCase,
	}
}

// Create handles POST /session requests.
func (c *SessionController) Create(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(session.CreateSessionInput{
		AccessKey: req.AccessKey,
	})
	if err != nil {
		var sessionErr *domainerror.SessionError
		if errors.As(err, &sessionErr) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: sessionErr.Message,
				Code:  string(sessionErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to open session",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateSessionResponse{
		Token: output.Token,
	})
}
