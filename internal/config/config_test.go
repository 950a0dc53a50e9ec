package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("ADMIN_USER", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "a-long-and-unguessable-pass")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.SeedDemoData {
		t.Error("SeedDemoData should default to false")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://app:pw@localhost:5432/app")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	want := []string{"https://app.example.com", "https://staging.example.com"}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != want[0] || cfg.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if !cfg.SeedDemoData {
		t.Error("SeedDemoData = false")
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		wantMsg string
	}{
		{
			name: "missing JWT secret",
			setup: func(t *testing.T) {
				t.Setenv("ADMIN_USER", "admin@example.com")
				t.Setenv("ADMIN_PASSWORD", "a-long-and-unguessable-pass")
			},
			wantMsg: "JWT_SECRET",
		},
		{
			name: "missing admin credentials",
			setup: func(t *testing.T) {
				t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
			},
			wantMsg: "ADMIN_USER",
		},
		{
			name: "unknown driver",
			setup: func(t *testing.T) {
				setRequired(t)
				t.Setenv("DB_DRIVER", "oracle")
			},
			wantMsg: "DB_DRIVER",
		},
		{
			name: "postgres without DSN",
			setup: func(t *testing.T) {
				setRequired(t)
				t.Setenv("DB_DRIVER", "postgres")
			},
			wantMsg: "DATABASE_URL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}
