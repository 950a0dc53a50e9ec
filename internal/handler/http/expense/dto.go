// Package expense exposes the expense REST resource at /api/expenses.
package expense

import (
	"time"

	"github.com/shopspring/decimal"

	"crud-starter/internal/domain/entity"
)

// DTO carries Amount as a decimal so it serializes as an exact JSON number
// string, e.g. "4.50".
type DTO struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	IncurredAt  time.Time       `json:"incurred_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toDTO(e *entity.Expense) any {
	return DTO{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		IncurredAt:  e.IncurredAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
