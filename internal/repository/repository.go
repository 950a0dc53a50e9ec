// Package repository defines the persistence contracts consumed by the
// usecase layer. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"crud-starter/internal/domain/entity"
)

// CrudRepository is the generic persistence contract shared by every entity.
// Each operation maps to exactly one SQL statement (plus the existence probe
// Update needs to tell a missing row from a stale one).
//
// Get returns entity.ErrNotFound for missing rows.
// Update returns entity.ErrNotFound when the row does not exist and
// entity.ErrConflict when the row exists but its updated_at no longer matches
// the caller's copy (the update lost an optimistic concurrency race).
// Delete returns entity.ErrNotFound when nothing was removed.
type CrudRepository[E any] interface {
	Get(ctx context.Context, id int64) (*E, error)
	List(ctx context.Context) ([]*E, error)
	Create(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id int64) error
}

// TaskRepository persists entity.Task records.
type TaskRepository = CrudRepository[entity.Task]

// ExpenseRepository persists entity.Expense records.
type ExpenseRepository = CrudRepository[entity.Expense]
