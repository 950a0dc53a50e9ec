package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single spend record for the budgeting example.
// Amount is a decimal, never a float: money must round-trip exactly.
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Category    string
	IncurredAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	maxDescriptionLength = 500
	maxCategoryLength    = 100
)

// Validate checks the Expense's field constraints.
// Amounts must be strictly positive; refunds are modeled as deletes, not negatives.
func (e *Expense) Validate() error {
	if err := RequireString("description", e.Description, maxDescriptionLength); err != nil {
		return err
	}
	if err := MaxLength("category", e.Category, maxCategoryLength); err != nil {
		return err
	}
	if !e.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "must be positive"}
	}
	if e.IncurredAt.IsZero() {
		return &ValidationError{Field: "incurred_at", Message: "is required"}
	}
	return nil
}
