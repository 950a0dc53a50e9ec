// Package expense implements the expense tracking use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"crud-starter/internal/domain/entity"
	"crud-starter/internal/repository"
)

// CreateInput represents the input for recording a new expense.
// Amount arrives as a JSON string ("4.50") so it never touches float64.
type CreateInput struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	IncurredAt  time.Time       `json:"incurred_at"`
}

// UpdateInput represents the input for replacing an existing expense.
type UpdateInput struct {
	ID          *int64          `json:"id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	IncurredAt  time.Time       `json:"incurred_at"`
}

// BodyID returns the id carried in the request body, if any.
func (in UpdateInput) BodyID() (int64, bool) {
	if in.ID == nil {
		return 0, false
	}
	return *in.ID, true
}

// Service provides expense use cases.
type Service struct {
	Repo repository.ExpenseRepository
}

// List returns all expenses.
func (s *Service) List(ctx context.Context) ([]*entity.Expense, error) {
	expenses, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Get returns the expense with the given id.
// Returns entity.ErrNotFound if it does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Expense, error) {
	expense, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get expense %d: %w", id, err)
	}
	return expense, nil
}

// Create validates the input and persists a new expense.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Expense, error) {
	expense := &entity.Expense{
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		IncurredAt:  in.IncurredAt,
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return expense, nil
}

// Update replaces the stored expense with the input.
// Returns entity.ErrNotFound or entity.ErrConflict as appropriate.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) error {
	expense, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("update expense %d: %w", id, err)
	}

	expense.Description = in.Description
	expense.Amount = in.Amount
	expense.Category = in.Category
	expense.IncurredAt = in.IncurredAt

	if err := expense.Validate(); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, expense); err != nil {
		return fmt.Errorf("update expense %d: %w", id, err)
	}
	return nil
}

// Delete removes the expense with the given id.
// Returns entity.ErrNotFound if it does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	return nil
}
