// Package config loads runtime configuration from environment variables,
// optionally seeded from a .env file. Every setting has a development-safe
// default except the credential material, which must be provided explicitly.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings for the API server.
type Config struct {
	// HTTPAddr is the listen address, e.g. ":8080".
	HTTPAddr string

	// DBDriver selects the database backend: "sqlite" or "postgres".
	DBDriver string
	// DatabaseURL is the driver DSN. Empty means the sqlite default.
	DatabaseURL string
	// MaxOpenConns / MaxIdleConns bound the connection pool.
	MaxOpenConns int
	MaxIdleConns int

	// CORSOrigins is the comma-separated browser origin whitelist.
	CORSOrigins []string

	// JWTSecret signs bearer tokens. Required, min 32 characters.
	JWTSecret string
	// AdminUser / AdminPassword are the credential pair accepted by
	// POST /auth/token. Required.
	AdminUser     string
	AdminPassword string
	// TokenTTL bounds issued token lifetime.
	TokenTTL time.Duration

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// RequestTimeout caps handler execution time.
	RequestTimeout time.Duration
	// MaxBodyBytes caps request body size.
	MaxBodyBytes int64

	// SeedDemoData inserts example rows into empty tables at startup.
	SeedDemoData bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is read first when present; real environment variables win.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Missing .env is fine; the environment alone may be complete.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok &&
			!strings.Contains(err.Error(), "no such file") {
			return nil, fmt.Errorf("config: read .env: %w", err)
		}
	}

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("TOKEN_TTL", "1h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("SEED_DEMO_DATA", false)

	cfg := &Config{
		HTTPAddr:       v.GetString("HTTP_ADDR"),
		DBDriver:       v.GetString("DB_DRIVER"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		MaxOpenConns:   v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:   v.GetInt("DB_MAX_IDLE_CONNS"),
		CORSOrigins:    splitOrigins(v.GetString("CORS_ORIGINS")),
		JWTSecret:      v.GetString("JWT_SECRET"),
		AdminUser:      v.GetString("ADMIN_USER"),
		AdminPassword:  v.GetString("ADMIN_PASSWORD"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		MaxBodyBytes:   v.GetInt64("MAX_BODY_BYTES"),
		SeedDemoData:   v.GetBool("SEED_DEMO_DATA"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("config: DATABASE_URL is required for the postgres driver")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	if c.AdminUser == "" || c.AdminPassword == "" {
		return fmt.Errorf("config: ADMIN_USER and ADMIN_PASSWORD are required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: REQUEST_TIMEOUT must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: MAX_BODY_BYTES must be positive")
	}
	return nil
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
