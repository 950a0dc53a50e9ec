package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func protected(t *testing.T, a *Auth) http.Handler {
	t.Helper()
	return a.Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(UserFromContext(r.Context())))
	}))
}

func bearerFor(t *testing.T, a *Auth) string {
	t.Helper()
	rr := issueToken(t, a,
		`{"username":"admin@example.com","password":"a-long-and-unguessable-pass"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("token issue failed: %d", rr.Code)
	}
	var resp tokenResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return "Bearer " + resp.Token
}

func TestAuthz_ValidTokenPassesUserThrough(t *testing.T) {
	a, err := New(testConfig(), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	h := protected(t, a)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
	req.Header.Set("Authorization", bearerFor(t, a))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if rr.Body.String() != "admin@example.com" {
		t.Errorf("context user = %q", rr.Body.String())
	}
}

func TestAuthz_MissingTokenGets401(t *testing.T) {
	a, err := New(testConfig(), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	h := protected(t, a)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/tasks", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rr.Code)
	}
	if got := rr.Header().Get("WWW-Authenticate"); !strings.HasPrefix(got, "Bearer") {
		t.Errorf("WWW-Authenticate = %q", got)
	}
}

func TestAuthz_WrongSecretRejected(t *testing.T) {
	a, err := New(testConfig(), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	h := protected(t, a)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte("another-secret-of-sufficient-len"))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rr.Code)
	}
}

func TestAuthz_ExpiredTokenRejected(t *testing.T) {
	a, err := New(testConfig(), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	h := protected(t, a)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin@example.com",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte(testConfig().Secret))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rr.Code)
	}
}

func TestAuthz_NoneAlgorithmRejected(t *testing.T) {
	a, err := New(testConfig(), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	h := protected(t, a)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "admin@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rr.Code)
	}
}
