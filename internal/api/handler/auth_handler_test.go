package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/morice333/workstation-queue-dashboard/internal/api/middleware"
	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
)

type stubAuthService struct {
	user     *domain.User
	token    string
	loginErr error
	regErr   error
}

func (s *stubAuthService) Register(_ context.Context, username, password, role string) (*domain.User, error) {
	if s.regErr != nil {
		return nil, s.regErr
	}
	return &domain.User{ID: "u-1", Username: username, Role: role}, nil
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.token, s.user, nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubAuthService{
		token: "signed-token",
		user:  &domain.User{ID: "u-1", Username: "alice", Role: domain.RoleAdmin},
	}
	h := NewAuthHandler(svc, time.Hour)

	body := `{"username":"alice","password":"pw1234"}`
	c, rec := newTestContext(e, http.MethodPost, "/auth/login", body, echo.MIMEApplicationJSON)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var sessionCookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil {
		t.Fatal("session cookie not set")
	}
	if sessionCookie.Value != "signed-token" {
		t.Errorf("cookie value = %q, want signed-token", sessionCookie.Value)
	}
	if !sessionCookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Errorf("token = %q", resp.Token)
	}
	if resp.User == nil || resp.User.Role != domain.RoleAdmin {
		t.Errorf("user = %+v", resp.User)
	}
}

func TestLoginFailurePropagates(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, time.Hour)

	body := `{"username":"alice","password":"wrong"}`
	c, rec := newTestContext(e, http.MethodPost, "/auth/login", body, echo.MIMEApplicationJSON)

	err := h.Login(c)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			t.Error("session cookie set on failed login")
		}
	}
}

func TestRegister(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	body := `{"username":"bob","password":"pw1234","role":"user"}`
	c, rec := newTestContext(e, http.MethodPost, "/auth/register", body, echo.MIMEApplicationJSON)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	body := `{"username":"bob","password":"pw"}`
	c, rec := newTestContext(e, http.MethodPost, "/auth/register", body, echo.MIMEApplicationJSON)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, rec := newTestContext(e, http.MethodGet, "/logout", "", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	var sessionCookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil {
		t.Fatal("clearing cookie not set")
	}
	if sessionCookie.Value != "" || sessionCookie.MaxAge != -1 {
		t.Errorf("cookie = %+v, want cleared", sessionCookie)
	}
}
