// Package db opens the database, creates the schema on startup, and loads
// optional seed data. Postgres is for deployments; sqlite keeps the template
// runnable with zero external services.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"crud-starter/internal/infra/adapter/persistence/sqlstore"
)

// Config holds database connection settings.
type Config struct {
	Driver          string // "postgres" or "sqlite"
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConfig returns connection pool defaults suitable for a small app.
func DefaultConfig() Config {
	return Config{
		Driver:          "sqlite",
		DSN:             "file:app.db?_pragma=foreign_keys(1)",
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// Open creates and configures a database connection pool and verifies it with
// a ping. The returned Dialect is what the sqlstore needs for this driver.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, sqlstore.Dialect, error) {
	dialect, driverName, err := resolveDriver(cfg.Driver)
	if err != nil {
		return nil, sqlstore.Dialect{}, err
	}

	database, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, sqlstore.Dialect{}, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	database.SetMaxOpenConns(cfg.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MaxIdleConns)
	database.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	database.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	logger.Info("database connection pool configured",
		slog.String("driver", cfg.Driver),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := database.PingContext(pingCtx); err != nil {
		_ = database.Close()
		return nil, sqlstore.Dialect{}, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}

	logger.Info("database connection established")
	return database, dialect, nil
}

func resolveDriver(driver string) (sqlstore.Dialect, string, error) {
	switch driver {
	case "postgres":
		return sqlstore.Postgres, "pgx", nil
	case "sqlite":
		return sqlstore.SQLite, "sqlite", nil
	default:
		return sqlstore.Dialect{}, "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
