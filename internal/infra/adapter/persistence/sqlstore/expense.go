package sqlstore

import (
	"database/sql"
	"time"

	"crud-starter/internal/domain/entity"
	"crud-starter/internal/repository"
)

// ExpenseSchema binds entity.Expense to the expenses table.
// Amount round-trips through shopspring/decimal's sql.Scanner/driver.Valuer,
// so it maps onto NUMERIC (postgres) and TEXT (sqlite) without float drift.
var ExpenseSchema = Schema[entity.Expense]{
	Table:   "expenses",
	Columns: []string{"description", "amount", "category", "incurred_at"},
	Values: func(e *entity.Expense) []any {
		return []any{e.Description, e.Amount, e.Category, e.IncurredAt}
	},
	Scan: func(s Scanner) (*entity.Expense, error) {
		var e entity.Expense
		if err := s.Scan(
			&e.ID, &e.Description, &e.Amount, &e.Category, &e.IncurredAt,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		return &e, nil
	},
	ID:    func(e *entity.Expense) int64 { return e.ID },
	SetID: func(e *entity.Expense, id int64) { e.ID = id },
	StampNew: func(e *entity.Expense, now time.Time) {
		e.CreatedAt = now
		e.UpdatedAt = now
	},
	StampUpdate: func(e *entity.Expense, now time.Time) time.Time {
		prev := e.UpdatedAt
		e.UpdatedAt = now
		return prev
	},
}

// NewExpenseStore returns the expense repository backed by the given database.
func NewExpenseStore(db *sql.DB, d Dialect) repository.ExpenseRepository {
	return New(db, ExpenseSchema, d)
}
