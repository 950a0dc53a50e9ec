package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crud-starter/internal/handler/http/requestid"
	"crud-starter/internal/handler/http/respond"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenHandler authenticates the credential pair in the request body and
// returns a signed bearer token. Failed attempts are logged with the request
// id but never with the submitted credentials.
func (a *Auth) TokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := a.logger.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		if !a.validateCredentials(req.Username, req.Password) {
			logger.Warn("authentication failed", slog.String("reason", "invalid_credentials"))
			w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
			respond.SafeError(w, http.StatusUnauthorized, errors.New("invalid credentials"))
			return
		}

		expires := time.Now().Add(a.ttl)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": req.Username,
			"iat": time.Now().Unix(),
			"exp": expires.Unix(),
		})
		signed, err := token.SignedString(a.secret)
		if err != nil {
			logger.Error("token signing failed", slog.Any("error", err))
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		logger.Info("token issued", slog.String("user", req.Username))
		respond.JSON(w, http.StatusOK, tokenResponse{Token: signed, ExpiresAt: expires})
	}
}
