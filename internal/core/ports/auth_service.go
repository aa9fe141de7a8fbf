package ports

import (
	"context"

	"github.com/quickshop/storefront-api/internal/core/domain"
)

// AuthService issues and validates identity tokens. The rest of the system
// treats tokens as opaque strings and user ids as authentic once verified.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenVerifier is the narrow contract consumed by the auth middleware:
// a valid token yields the authenticated user id.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}
