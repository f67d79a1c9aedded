// Package blob persists snapshot collections as keyed JSON-array blobs.
package blob

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// Blob records are the wire shape of the stored collections: snake_case
// field names, ISO-8601 timestamps. The mapping to domain entities is
// explicit and total, so nothing is reshaped inline elsewhere.

// jarRecord is the stored form of entity.Jar.
type jarRecord struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Percentage    float64          `json:"percentage"`
	Emoji         string           `json:"emoji"`
	Color         string           `json:"color"`
	CurrentAmount decimal.Decimal  `json:"current_amount"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// jarFromEntity converts a domain Jar to its stored record.
func jarFromEntity(j *entity.Jar) jarRecord {
	return jarRecord{
		ID:            j.ID.String(),
		Name:          j.Name,
		Description:   j.Description,
		Percentage:    j.Percentage,
		Emoji:         j.Emoji,
		Color:         string(j.Color),
		CurrentAmount: j.CurrentAmount,
		TargetAmount:  j.TargetAmount,
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

// toEntity converts a stored jar record back to the domain entity.
func (r jarRecord) toEntity() (*entity.Jar, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid jar id %q: %w", r.ID, err)
	}

	return &entity.Jar{
		ID:            id,
		Name:          r.Name,
		Description:   r.Description,
		Percentage:    r.Percentage,
		Emoji:         r.Emoji,
		Color:         entity.GradientColor(r.Color),
		CurrentAmount: r.CurrentAmount,
		TargetAmount:  r.TargetAmount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}

// incomeRecord is the stored form of entity.Income.
type incomeRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// incomeFromEntity converts a domain Income to its stored record.
func incomeFromEntity(i *entity.Income) incomeRecord {
	return incomeRecord{
		ID:        i.ID.String(),
		Name:      i.Name,
		Amount:    i.Amount,
		Type:      string(i.Type),
		Date:      i.Date,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// toEntity converts a stored income record back to the domain entity.
func (r incomeRecord) toEntity() (*entity.Income, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid income id %q: %w", r.ID, err)
	}

	return &entity.Income{
		ID:        id,
		Name:      r.Name,
		Amount:    r.Amount,
		Type:      entity.IncomeType(r.Type),
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// bankAccountRecord is the stored form of entity.BankAccount.
type bankAccountRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	JarIDs    []string        `json:"jar_ids"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// bankAccountFromEntity converts a domain BankAccount to its stored record.
func bankAccountFromEntity(a *entity.BankAccount) bankAccountRecord {
	jarIDs := make([]string, len(a.JarIDs))
	for i, id := range a.JarIDs {
		jarIDs[i] = id.String()
	}

	return bankAccountRecord{
		ID:        a.ID.String(),
		Name:      a.Name,
		JarIDs:    jarIDs,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// toEntity converts a stored bank account record back to the domain entity.
func (r bankAccountRecord) toEntity() (*entity.BankAccount, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid bank account id %q: %w", r.ID, err)
	}

	jarIDs := make([]uuid.UUID, len(r.JarIDs))
	for i, raw := range r.JarIDs {
		jarID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid jar id %q in bank account: %w", raw, err)
		}
		jarIDs[i] = jarID
	}

	return &entity.BankAccount{
		ID:        id,
		Name:      r.Name,
		JarIDs:    jarIDs,
		Balance:   r.Balance,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}
