// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// TokenClaims represents the claims contained in an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.UserRole
	ExpiresAt time.Time
}

// TokenService defines the interface for access token operations.
// Tokens are issued by the identity provider; this service validates them.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// IssueAccessToken signs a token for the given user. Used by operator
	// tooling and tests that stand in for the identity provider.
	IssueAccessToken(ctx context.Context, user entity.CurrentUser, ttl time.Duration) (string, error)
}
