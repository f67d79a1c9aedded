// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/bankaccount"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// BankAccountController handles bank account endpoints.
type BankAccountController struct {
	listUseCase    *bankaccount.ListAccountsUseCase
	replaceUseCase *bankaccount.ReplaceAccountsUseCase
}

// NewBankAccountController creates a new bank account controller instance.
func NewBankAccountController(
	listUseCase *bankaccount.ListAccountsUseCase,
	replaceUseCase *bankaccount.ReplaceAccountsUseCase,
) *BankAccountController {
	return &BankAccountController{
		listUseCase:    listUseCase,
		replaceUseCase: replaceUseCase,
	}
}

// List handles GET /bank-accounts requests.
func (c *BankAccountController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve bank accounts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankAccountListResponse(output.Accounts))
}

// Replace handles PUT /bank-accounts requests, replacing the snapshot
// wholesale.
func (c *BankAccountController) Replace(ctx *gin.Context) {
	var req dto.ReplaceBankAccountsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	accounts, err := dto.ToBankAccountEntities(req.Accounts)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.replaceUseCase.Execute(ctx.Request.Context(), bankaccount.ReplaceAccountsInput{
		Accounts: accounts,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to replace bank accounts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankAccountListResponse(output.Accounts))
}
