// Package middleware holds HTTP middleware with configuration: CORS for the
// browser frontend and rate limiting for abuse-prone endpoints.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds the CORS policy for the API. The frontend origin list
// comes from configuration; everything else has sensible defaults.
type CORSConfig struct {
	// AllowedOrigins is the whitelist of permitted origins,
	// e.g. ["http://localhost:5173"]. An empty list disables CORS headers.
	AllowedOrigins []string

	// AllowedMethods defaults to the full CRUD verb set.
	AllowedMethods []string

	// AllowedHeaders defaults to Content-Type, Authorization and X-Request-ID.
	AllowedHeaders []string

	// AllowCredentials must be true for Bearer-token requests from browsers.
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds. Default 86400.
	MaxAge int
}

// DefaultCORSConfig returns the policy used when only origins are configured.
func DefaultCORSConfig(origins []string) CORSConfig {
	return CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
}

// CORS returns middleware enforcing the given policy. Preflight OPTIONS
// requests from allowed origins are answered directly with 204; disallowed
// origins get no CORS headers, which makes the browser block the response.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowed[strings.TrimSuffix(o, "/")] = true
	}
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}

				if r.Method == http.MethodOptions {
					w.Header().Set("Access-Control-Allow-Methods", methods)
					w.Header().Set("Access-Control-Allow-Headers", headers)
					w.Header().Set("Access-Control-Max-Age", maxAge)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
