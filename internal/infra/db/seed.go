package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"crud-starter/internal/domain/entity"
	"crud-starter/internal/infra/adapter/persistence/sqlstore"
)

//go:embed seeds/seeds.yaml
var seedYAML []byte

type seedFile struct {
	Tasks []struct {
		Title string `yaml:"title"`
		Notes string `yaml:"notes"`
		Done  bool   `yaml:"done"`
	} `yaml:"tasks"`
	Expenses []struct {
		Description string    `yaml:"description"`
		Amount      string    `yaml:"amount"`
		Category    string    `yaml:"category"`
		IncurredAt  time.Time `yaml:"incurred_at"`
	} `yaml:"expenses"`
}

// Seed loads the embedded demo records into empty tables. Non-empty tables are
// left alone so re-deploys never duplicate data.
func Seed(ctx context.Context, database *sql.DB, d sqlstore.Dialect, logger *slog.Logger) error {
	var seeds seedFile
	if err := yaml.Unmarshal(seedYAML, &seeds); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	if empty, err := tableEmpty(ctx, database, "tasks"); err != nil {
		return err
	} else if empty {
		tasks := sqlstore.NewTaskStore(database, d)
		for _, s := range seeds.Tasks {
			task := &entity.Task{Title: s.Title, Notes: s.Notes, Done: s.Done}
			if err := tasks.Create(ctx, task); err != nil {
				return fmt.Errorf("seed task %q: %w", s.Title, err)
			}
		}
		logger.Info("seeded demo tasks", slog.Int("count", len(seeds.Tasks)))
	}

	if empty, err := tableEmpty(ctx, database, "expenses"); err != nil {
		return err
	} else if empty {
		expenses := sqlstore.NewExpenseStore(database, d)
		for _, s := range seeds.Expenses {
			amount, err := decimal.NewFromString(s.Amount)
			if err != nil {
				return fmt.Errorf("seed expense %q: bad amount %q: %w", s.Description, s.Amount, err)
			}
			expense := &entity.Expense{
				Description: s.Description,
				Amount:      amount,
				Category:    s.Category,
				IncurredAt:  s.IncurredAt,
			}
			if err := expenses.Create(ctx, expense); err != nil {
				return fmt.Errorf("seed expense %q: %w", s.Description, err)
			}
		}
		logger.Info("seeded demo expenses", slog.Int("count", len(seeds.Expenses)))
	}

	return nil
}

func tableEmpty(ctx context.Context, database *sql.DB, table string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM " + table
	if err := database.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return count == 0, nil
}
