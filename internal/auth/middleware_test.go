package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/mytask-service/pkg/util"
)

type fakeRevocations struct {
	revoked map[string]bool
	err     error
}

func newFakeRevocations() *fakeRevocations {
	return &fakeRevocations{revoked: map[string]bool{}}
}

func (f *fakeRevocations) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	f.revoked[tokenID] = true
	return nil
}

func (f *fakeRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], f.err
}

func newMiddlewareTestApp(mw *AuthMiddleware) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.JSON(fiber.Map{"email": identity.Email})
	})
	return app
}

func protectedRequest(cookie string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: cookie})
	}
	return req
}

func TestMiddlewareRejectsMissingCookie(t *testing.T) {
	tm := NewTokenManager("test-secret", 10*24*time.Hour)
	app := newMiddlewareTestApp(NewAuthMiddleware(tm, newFakeRevocations(), "accessToken"))

	resp, err := app.Test(protectedRequest(""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsInvalidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 10*24*time.Hour)
	app := newMiddlewareTestApp(NewAuthMiddleware(tm, newFakeRevocations(), "accessToken"))

	resp, err := app.Test(protectedRequest("garbage"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 10*24*time.Hour)
	app := newMiddlewareTestApp(NewAuthMiddleware(tm, newFakeRevocations(), "accessToken"))

	issued, err := tm.Issue(map[string]any{"email": "alice@example.com"})
	require.NoError(t, err)

	resp, err := app.Test(protectedRequest(issued.Value))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsRevokedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 10*24*time.Hour)
	revocations := newFakeRevocations()
	app := newMiddlewareTestApp(NewAuthMiddleware(tm, revocations, "accessToken"))

	issued, err := tm.Issue(map[string]any{"email": "alice@example.com"})
	require.NoError(t, err)
	require.NoError(t, revocations.Revoke(context.Background(), issued.ID, time.Hour))

	resp, err := app.Test(protectedRequest(issued.Value))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareFailsClosedOnRevocationError(t *testing.T) {
	tm := NewTokenManager("test-secret", 10*24*time.Hour)
	revocations := newFakeRevocations()
	revocations.err = context.DeadlineExceeded
	app := newMiddlewareTestApp(NewAuthMiddleware(tm, revocations, "accessToken"))

	issued, err := tm.Issue(map[string]any{"email": "alice@example.com"})
	require.NoError(t, err)

	resp, err := app.Test(protectedRequest(issued.Value))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
