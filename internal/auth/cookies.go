package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieWriter applies the deployment cookie policy for the credential.
// Production requires Secure and cross-site None; development keeps the
// relaxed Strict mode so plain-http frontends can log in.
type CookieWriter struct {
	name       string
	production bool
}

// NewCookieWriter constructs a writer for the named credential cookie.
func NewCookieWriter(name string, production bool) *CookieWriter {
	return &CookieWriter{name: name, production: production}
}

// Set attaches the credential cookie to the response.
func (w *CookieWriter) Set(c *fiber.Ctx, value string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     w.name,
		Value:    value,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   w.production,
		SameSite: w.sameSite(),
	})
}

// Clear instructs the client to drop the credential cookie.
func (w *CookieWriter) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     w.name,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   w.production,
		SameSite: w.sameSite(),
	})
}

// Name returns the credential cookie name.
func (w *CookieWriter) Name() string {
	return w.name
}

func (w *CookieWriter) sameSite() string {
	if w.production {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteStrictMode
}
