package db

import (
	"database/sql"

	"crud-starter/internal/infra/adapter/persistence/sqlstore"
)

// MigrateUp creates the schema if it does not exist. The template deliberately
// uses idempotent CREATE statements instead of versioned migrations: a cloned
// starter app begins life at schema v1 and grows its own migration story.
func MigrateUp(database *sql.DB, d sqlstore.Dialect) error {
	statements := postgresSchema
	if d.Name == sqlstore.SQLite.Name {
		statements = sqliteSchema
	}
	for _, stmt := range statements {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
    id         BIGSERIAL PRIMARY KEY,
    title      TEXT NOT NULL,
    notes      TEXT NOT NULL DEFAULT '',
    done       BOOLEAN NOT NULL DEFAULT FALSE,
    due_date   TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS expenses (
    id          BIGSERIAL PRIMARY KEY,
    description TEXT NOT NULL,
    amount      NUMERIC(12, 2) NOT NULL,
    category    TEXT NOT NULL DEFAULT '',
    incurred_at TIMESTAMPTZ NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	// List views filter open tasks and group spending by category.
	`CREATE INDEX IF NOT EXISTS idx_tasks_done ON tasks(done)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_incurred_at ON expenses(incurred_at DESC)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL,
    notes      TEXT NOT NULL DEFAULT '',
    done       BOOLEAN NOT NULL DEFAULT FALSE,
    due_date   TIMESTAMP,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS expenses (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL,
    amount      TEXT NOT NULL,
    category    TEXT NOT NULL DEFAULT '',
    incurred_at TIMESTAMP NOT NULL,
    created_at  TIMESTAMP NOT NULL,
    updated_at  TIMESTAMP NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_done ON tasks(done)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_incurred_at ON expenses(incurred_at DESC)`,
}
