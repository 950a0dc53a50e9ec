package db

import (
	"io"
	"log/slog"
	"testing"

	"crud-starter/internal/infra/adapter/persistence/sqlstore"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveDriver(t *testing.T) {
	tests := []struct {
		driver      string
		wantDialect string
		wantDriver  string
		wantErr     bool
	}{
		{driver: "postgres", wantDialect: sqlstore.Postgres.Name, wantDriver: "pgx"},
		{driver: "sqlite", wantDialect: sqlstore.SQLite.Name, wantDriver: "sqlite"},
		{driver: "mysql", wantErr: true},
		{driver: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			dialect, driverName, err := resolveDriver(tt.driver)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveDriver(%q) err=%v, wantErr=%v", tt.driver, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if dialect.Name != tt.wantDialect || driverName != tt.wantDriver {
				t.Errorf("resolveDriver(%q) = (%s, %s), want (%s, %s)",
					tt.driver, dialect.Name, driverName, tt.wantDialect, tt.wantDriver)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Driver != "sqlite" {
		t.Errorf("Driver = %q, want sqlite", cfg.Driver)
	}
	if cfg.MaxOpenConns <= 0 || cfg.MaxIdleConns <= 0 {
		t.Errorf("pool sizes must be positive: %+v", cfg)
	}
}
