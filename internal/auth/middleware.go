package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mytask-service/internal/repository"
	apperrors "github.com/spec-kit/mytask-service/pkg/util"
)

const identityKey = "auth_identity"

// AuthMiddleware validates the access token cookie and loads the identity.
type AuthMiddleware struct {
	tokens      *TokenManager
	revocations repository.RevocationRepository
	cookieName  string
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, revocations repository.RevocationRepository, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, revocations: revocations, cookieName: cookieName}
}

// Handle enforces authentication for protected routes. Rejection happens
// before any user or task store access.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	raw := c.Cookies(m.cookieName)
	if raw == "" {
		return apperrors.NewUnauthorized("missing access token")
	}

	identity, err := m.tokens.Parse(raw)
	if err != nil {
		return apperrors.NewUnauthorized("invalid access token")
	}

	if m.revocations != nil && identity.TokenID != "" {
		// Fail closed: an unreachable revocation set must not admit
		// a possibly revoked credential.
		revoked, err := m.revocations.IsRevoked(c.Context(), identity.TokenID)
		if err != nil || revoked {
			return apperrors.NewUnauthorized("invalid access token")
		}
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
