package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"crud-starter/internal/config"
	"crud-starter/internal/handler/http/auth"
	hexpense "crud-starter/internal/handler/http/expense"
	"crud-starter/internal/handler/http/middleware"
	"crud-starter/internal/handler/http/requestid"
	htask "crud-starter/internal/handler/http/task"
	"crud-starter/internal/infra/adapter/persistence/sqlstore"
	"crud-starter/internal/infra/db"
	"crud-starter/internal/observability/logging"
	"crud-starter/internal/observability/metrics"
	"crud-starter/internal/observability/tracing"
	expUC "crud-starter/internal/usecase/expense"
	taskUC "crud-starter/internal/usecase/task"

	hhttp "crud-starter/internal/handler/http"

	_ "crud-starter/docs" // swagger docs
)

// @title           CRUD Starter API
// @version         1.0
// @description     REST API template with generic CRUD resources, optimistic
// @description     concurrency and bearer-token auth.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer token, supplied as "Bearer {token}".

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg.LogLevel)
	version := getVersion()

	shutdownTracing := tracing.Init("crud-starter", version)

	database, dialect := initDatabase(logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	authn, err := auth.New(auth.Config{
		Secret:        cfg.JWTSecret,
		AdminUser:     cfg.AdminUser,
		AdminPassword: cfg.AdminPassword,
		TokenTTL:      cfg.TokenTTL,
	}, logger)
	if err != nil {
		logger.Error("auth configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}

	handler, authLimiter := setupServer(logger, cfg, database, dialect, authn, version)

	runServer(logger, cfg, handler, database, authLimiter, shutdownTracing, version)
}

// initLogger builds the JSON logger and installs it as the slog default.
func initLogger(level string) *slog.Logger {
	logger := logging.NewLogger(logging.ParseLevel(level))
	slog.SetDefault(logger)
	return logger
}

func getVersion() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// initDatabase opens the pool, creates the schema and loads seed data.
func initDatabase(logger *slog.Logger, cfg *config.Config) (*sql.DB, sqlstore.Dialect) {
	dbCfg := db.DefaultConfig()
	dbCfg.Driver = cfg.DBDriver
	if cfg.DatabaseURL != "" {
		dbCfg.DSN = cfg.DatabaseURL
	}
	dbCfg.MaxOpenConns = cfg.MaxOpenConns
	dbCfg.MaxIdleConns = cfg.MaxIdleConns

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, dialect, err := db.Open(ctx, dbCfg, logger)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database, dialect); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.SeedDemoData {
		if err := db.Seed(ctx, database, dialect, logger); err != nil {
			logger.Error("failed to seed database", slog.Any("error", err))
			os.Exit(1)
		}
	}
	return database, dialect
}

// setupServer wires stores, services and routes, and returns the handler with
// the middleware chain applied.
func setupServer(
	logger *slog.Logger,
	cfg *config.Config,
	database *sql.DB,
	dialect sqlstore.Dialect,
	authn *auth.Auth,
	version string,
) (http.Handler, *middleware.RateLimiter) {
	taskSvc := &taskUC.Service{Repo: sqlstore.NewTaskStore(database, dialect)}
	expSvc := &expUC.Service{Repo: sqlstore.NewExpenseStore(database, dialect)}

	// Credential checks are cheap to call and expensive to abuse: 5 attempts
	// per minute per IP.
	authLimiter := middleware.NewRateLimiter(5.0/60.0, 5)

	mux := http.NewServeMux()

	mux.Handle("POST   /auth/token", authLimiter.Middleware(authn.TokenHandler()))

	mux.Handle("GET    /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET    /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET    /live", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())
	mux.Handle("GET    /swagger/", httpSwagger.WrapHandler)

	htask.Register(mux, taskSvc, authn.Authz)
	hexpense.Register(mux, expSvc, authn.Authz)

	return applyMiddleware(logger, cfg, mux), authLimiter
}

// applyMiddleware wraps the mux. Order, outermost first:
// CORS → request ID → tracing → recovery → logging → body limit → timeout → metrics.
func applyMiddleware(logger *slog.Logger, cfg *config.Config, handler http.Handler) http.Handler {
	corsCfg := middleware.DefaultCORSConfig(cfg.CORSOrigins)
	logger.Info("CORS enabled", slog.Any("allowed_origins", corsCfg.AllowedOrigins))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(cfg.RequestTimeout)(chain)
	chain = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsCfg)(chain)
	return chain
}

// runServer starts the HTTP server, the background maintenance goroutines,
// and blocks until SIGINT/SIGTERM triggers a graceful shutdown.
func runServer(
	logger *slog.Logger,
	cfg *config.Config,
	handler http.Handler,
	database *sql.DB,
	authLimiter *middleware.RateLimiter,
	shutdownTracing func(context.Context) error,
	version string,
) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go limiterCleanupLoop(ctx, authLimiter)
	go poolStatsLoop(ctx, database)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris guard
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

// limiterCleanupLoop bounds rate limiter memory by dropping idle client
// buckets.
func limiterCleanupLoop(ctx context.Context, limiter *middleware.RateLimiter) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Cleanup(15 * time.Minute)
		}
	}
}

// poolStatsLoop publishes connection pool gauges.
func poolStatsLoop(ctx context.Context, database *sql.DB) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.UpdateDBPoolStats(database.Stats())
		}
	}
}
