// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// BankAccountItemRequest represents one account inside a snapshot replace.
// An absent ID marks a newly created account.
type BankAccountItemRequest struct {
	ID      string   `json:"id,omitempty" binding:"omitempty,uuid"`
	Name    string   `json:"name" binding:"required,min=1,max=255"`
	JarIDs  []string `json:"jar_ids" binding:"omitempty,dive,uuid"`
	Balance float64  `json:"balance" binding:"gte=0"`
}

// ReplaceBankAccountsRequest represents the request body for a snapshot replace.
type ReplaceBankAccountsRequest struct {
	Accounts []BankAccountItemRequest `json:"accounts" binding:"required"`
}

// BankAccountResponse represents a single bank account in API responses.
type BankAccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	JarIDs    []string  `json:"jar_ids"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BankAccountListResponse represents the bank account snapshot.
type BankAccountListResponse struct {
	Accounts []BankAccountResponse `json:"accounts"`
}

// ToBankAccountEntities converts snapshot replace items to domain entities.
func ToBankAccountEntities(items []BankAccountItemRequest) ([]*entity.BankAccount, error) {
	now := time.Now().UTC()

	accounts := make([]*entity.BankAccount, len(items))
	for i, item := range items {
		id := uuid.New()
		if item.ID != "" {
			parsed, err := uuid.Parse(item.ID)
			if err != nil {
				return nil, fmt.Errorf("invalid bank account id %q: %w", item.ID, err)
			}
			id = parsed
		}

		jarIDs := make([]uuid.UUID, len(item.JarIDs))
		for j, raw := range item.JarIDs {
			jarID, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid jar id %q: %w", raw, err)
			}
			jarIDs[j] = jarID
		}

		accounts[i] = &entity.BankAccount{
			ID:        id,
			Name:      item.Name,
			JarIDs:    jarIDs,
			Balance:   decimal.NewFromFloat(item.Balance),
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return accounts, nil
}

// ToBankAccountResponse converts a domain BankAccount entity to its response DTO.
func ToBankAccountResponse(a *entity.BankAccount) BankAccountResponse {
	jarIDs := make([]string, len(a.JarIDs))
	for i, id := range a.JarIDs {
		jarIDs[i] = id.String()
	}

	return BankAccountResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		JarIDs:    jarIDs,
		Balance:   a.Balance.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToBankAccountListResponse converts an account snapshot to its response DTO.
func ToBankAccountListResponse(accounts []*entity.BankAccount) BankAccountListResponse {
	responses := make([]BankAccountResponse, len(accounts))
	for i, a := range accounts {
		responses[i] = ToBankAccountResponse(a)
	}
	return BankAccountListResponse{Accounts: responses}
}
