package ports

import (
	"context"

	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
)

// AuthService defines registration and login. Login returns a signed JWT
// establishing the session alongside the authenticated user.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
