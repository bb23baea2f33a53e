package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/blog/api/http/presenter"
)

// CookieName is the session cookie carrying the access token for browser
// clients. The Authorization header takes precedence over it.
const CookieName = "accessToken"

type localsKey struct{}

var userIDKey = localsKey{}

// UserID returns the authenticated user id attached by the guard, or false
// when the request did not pass through it.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userIDKey).(uuid.UUID)
	return id, ok
}

// NewGuard returns a Fiber middleware that gates protected routes. It
// extracts a bearer token from the Authorization header, falling back to the
// session cookie, verifies it, and attaches the user id for downstream
// handlers. Unauthenticated requests are rejected with 401 before any
// handler logic runs.
func NewGuard(issuer *Issuer, p *presenter.Presenter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			return p.Error(c, http.StatusUnauthorized, "missing access token")
		}
		userID, err := issuer.Verify(tokenStr)
		if err != nil {
			return p.Error(c, http.StatusUnauthorized, "invalid or expired token")
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies(CookieName)
}
