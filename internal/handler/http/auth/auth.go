// Package auth issues and validates the bearer tokens protecting mutating
// API verbs. A single admin credential pair is configured at startup; tokens
// are HS256 JWTs with a bounded lifetime.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	// minSecretLength guards against brute-forceable HS256 keys.
	minSecretLength = 32

	// minPasswordLength is the minimum admin password length.
	minPasswordLength = 12

	defaultTokenTTL = time.Hour
)

// weakPasswords lists passwords rejected outright, including as prefixes.
var weakPasswords = []string{
	"admin",
	"password",
	"123456",
	"secret",
	"qwerty",
	"letmein",
	"welcome",
	"changeme",
	"default",
	"root",
}

// Config carries the credential material for the auth subsystem.
type Config struct {
	// Secret signs tokens. Must be at least 32 bytes.
	Secret string

	// AdminUser and AdminPassword are the only accepted credential pair.
	AdminUser     string
	AdminPassword string

	// TokenTTL bounds token lifetime. Zero means one hour.
	TokenTTL time.Duration
}

// Auth validates credentials and signs/verifies tokens.
type Auth struct {
	secret    []byte
	adminUser string
	adminPass string
	ttl       time.Duration
	logger    *slog.Logger
}

// New validates cfg and returns an Auth. Weak secrets and credentials fail
// startup rather than ship an insecure deployment.
func New(cfg Config, logger *slog.Logger) (*Auth, error) {
	if len(cfg.Secret) < minSecretLength {
		return nil, fmt.Errorf("auth: JWT secret must be at least %d characters", minSecretLength)
	}
	if cfg.AdminUser == "" {
		return nil, errors.New("auth: admin username must not be empty")
	}
	if err := checkPassword(cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Auth{
		secret:    []byte(cfg.Secret),
		adminUser: cfg.AdminUser,
		adminPass: cfg.AdminPassword,
		ttl:       ttl,
		logger:    logger,
	}, nil
}

func checkPassword(pass string) error {
	if pass == "" {
		return errors.New("admin password must not be empty")
	}
	if len(pass) < minPasswordLength {
		return fmt.Errorf("admin password must be at least %d characters", minPasswordLength)
	}
	lower := strings.ToLower(pass)
	for _, weak := range weakPasswords {
		if strings.HasPrefix(lower, weak) {
			return errors.New("admin password must not be based on a common weak password")
		}
	}
	return nil
}

// validateCredentials compares both fields in constant time so an attacker
// cannot learn which of the two was wrong.
func (a *Auth) validateCredentials(user, pass string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(a.adminUser)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(a.adminPass)) == 1
	return userMatch && passMatch
}
