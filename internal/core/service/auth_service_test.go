package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
)

// stubUserRepo is an in-memory UserRepository for auth tests.
type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (s *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := s.users[u.Username]; ok {
		return nil, domain.ErrUserExists
	}
	cp := *u
	cp.ID = "u-" + u.Username
	s.users[u.Username] = &cp
	out := cp
	return &out, nil
}

const testSecret = "test-secret"

func TestRegisterHashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 0)

	user, err := svc.Register(context.Background(), "alice", "hunter2", domain.RoleUser)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "hunter2" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDefaultsInvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 0)

	user, err := svc.Register(context.Background(), "bob", "pw1234", "superuser")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("role = %q, want %q", user.Role, domain.RoleUser)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 0)

	if _, err := svc.Register(context.Background(), "carol", "pw1234", domain.RoleUser); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(context.Background(), "carol", "other", domain.RoleUser)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("err = %v, want ErrUserExists", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 0)

	if _, err := svc.Register(context.Background(), "dave", "pw1234", domain.RoleAdmin); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "dave", "pw1234")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "dave" || user.Role != domain.RoleAdmin {
		t.Errorf("user = %+v", user)
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims type %T", parsed.Claims)
	}
	if claims["username"] != "dave" || claims["role"] != domain.RoleAdmin {
		t.Errorf("claims = %v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 0)

	if _, err := svc.Register(context.Background(), "erin", "pw1234", domain.RoleUser); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "erin", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, 0)

	_, _, err := svc.Login(context.Background(), "nobody", "pw1234")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
