package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mytask-service/internal/api/dto"
	"github.com/spec-kit/mytask-service/internal/auth"
	"github.com/spec-kit/mytask-service/internal/domain"
	"github.com/spec-kit/mytask-service/internal/repository"
	apperrors "github.com/spec-kit/mytask-service/pkg/util"
)

// UsersHandler exposes profile record endpoints. Both endpoints are
// identity-scoped: the path email must match the credential email.
type UsersHandler struct {
	users repository.UserRepository
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users repository.UserRepository) *UsersHandler {
	return &UsersHandler{users: users}
}

// UpsertProfile handles PUT /create-or-update-user/:email.
//
// An email that already has a record gets the sentinel response and the
// stored record stays exactly as it was; only first writes insert.
func (h *UsersHandler) UpsertProfile(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := requireOwner(c, email); err != nil {
		return err
	}

	payload := domain.Document{}
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.NewValidationError("invalid profile payload")
	}

	existing, err := h.users.FindByEmail(c.Context(), email)
	if err != nil {
		return storageFailure(c, err)
	}
	if existing != nil {
		return c.JSON(dto.AlreadyExistsResponse{Message: "user already exists"})
	}

	result, err := h.users.Upsert(c.Context(), email, payload)
	if err != nil {
		return storageFailure(c, err)
	}
	return c.JSON(updateResult(result))
}

// GetProfile handles GET /get-user-data/:email. An absent record yields
// an empty body, not an error.
func (h *UsersHandler) GetProfile(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := requireOwner(c, email); err != nil {
		return err
	}

	profile, err := h.users.FindByEmail(c.Context(), email)
	if err != nil {
		return storageFailure(c, err)
	}
	return c.JSON(profile)
}

// requireOwner enforces the per-endpoint identity match on top of the
// auth gate: the credential email must equal the requested email.
func requireOwner(c *fiber.Ctx, email string) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing access token")
	}
	if identity.Email == "" || identity.Email != email {
		return apperrors.NewForbidden("access token does not match requested identity")
	}
	return nil
}
