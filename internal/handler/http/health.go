// Package http holds the HTTP handler layer: cross-cutting middleware, health
// endpoints and metrics. Resource handlers live in subpackages.
package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"crud-starter/internal/handler/http/respond"
)

// HealthHandler reports overall service health, including database
// connectivity. Used by monitoring.
type HealthHandler struct {
	DB      *sql.DB
	Version string
}

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", Version: h.Version, Database: "ok"}
	code := http.StatusOK
	if err := h.DB.PingContext(ctx); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		code = http.StatusServiceUnavailable
	}
	respond.JSON(w, code, resp)
}

// ReadyHandler reports whether the service can accept traffic.
// Kubernetes-style readiness: fails while the database is unreachable.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// LiveHandler reports process liveness. It always succeeds while the process
// can serve requests at all.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
