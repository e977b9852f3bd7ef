package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/mytask-service/internal/api/dto"
	"github.com/spec-kit/mytask-service/internal/auth"
	"github.com/spec-kit/mytask-service/internal/repository"
	apperrors "github.com/spec-kit/mytask-service/pkg/util"
)

// AuthHandler issues and invalidates access token credentials.
type AuthHandler struct {
	tokens      *auth.TokenManager
	revocations repository.RevocationRepository
	cookies     *auth.CookieWriter
	logger      *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(tokens *auth.TokenManager, revocations repository.RevocationRepository, cookies *auth.CookieWriter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, revocations: revocations, cookies: cookies, logger: logger}
}

// IssueToken handles POST /auth/access-token. The identity payload is
// taken from the body as supplied; it is not checked against the user
// store at issuance time.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid identity payload")
	}

	issued, err := h.tokens.Issue(payload)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	h.logger.Info("access token issued", zap.String("token_id", issued.ID))
	h.cookies.Set(c, issued.Value, issued.ExpiresAt)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Logout handles GET /logout. The client cookie is cleared and, when the
// request still carries a verifiable credential, its id joins the
// revocation set for the remainder of its lifetime.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if raw := c.Cookies(h.cookies.Name()); raw != "" {
		if identity, err := h.tokens.Parse(raw); err == nil && identity.TokenID != "" {
			ttl := time.Until(identity.ExpiresAt)
			if err := h.revocations.Revoke(c.Context(), identity.TokenID, ttl); err != nil {
				return storageFailure(c, err)
			}
			h.logger.Info("access token revoked", zap.String("token_id", identity.TokenID))
		}
	}

	h.cookies.Clear(c)
	return c.JSON(dto.SuccessResponse{Success: true})
}
