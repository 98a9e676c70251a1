package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, username, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestAuthBearerToken(t *testing.T) {
	e := echo.New()
	token := signToken(t, testSecret, "alice", "user", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Auth(testSecret)(okHandler)(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Get("username"); got != "alice" {
		t.Errorf("username = %v, want alice", got)
	}
	if got := c.Get("role"); got != "user" {
		t.Errorf("role = %v, want user", got)
	}
}

func TestAuthSessionCookie(t *testing.T) {
	e := echo.New()
	token := signToken(t, testSecret, "bob", "admin", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(NewSessionCookie(token, time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Auth(testSecret)(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Get("role"); got != "admin" {
		t.Errorf("role = %v, want admin", got)
	}
}

func TestAuthMissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Auth(testSecret)(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}

func TestAuthRejectsBadSignature(t *testing.T) {
	e := echo.New()
	token := signToken(t, "other-secret", "mallory", "admin", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Auth(testSecret)(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	e := echo.New()
	token := signToken(t, testSecret, "carol", "user", time.Now().Add(-time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Auth(testSecret)(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}

func TestAuthRejectsMissingRoleClaim(t *testing.T) {
	e := echo.New()
	claims := jwt.MapClaims{"username": "dave", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mwErr := Auth(testSecret)(okHandler)(c)
	he, ok := mwErr.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", mwErr)
	}
}
