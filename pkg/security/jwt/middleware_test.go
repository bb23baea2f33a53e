package jwt

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/blog/api/http/presenter"
)

func newGuardedApp(t *testing.T, issuer *Issuer) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", NewGuard(issuer, presenter.New(false)), func(c *fiber.Ctx) error {
		userID, ok := UserID(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(userID.String())
	})
	return app
}

func TestGuard_MissingToken(t *testing.T) {
	t.Parallel()

	app := newGuardedApp(t, NewIssuer("secret", "blog-test"))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuard_InvalidToken(t *testing.T) {
	t.Parallel()

	app := newGuardedApp(t, NewIssuer("secret", "blog-test"))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuard_ExpiredToken(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret", "blog-test")
	expired := &Issuer{secret: []byte("secret"), issuer: "blog-test", ttl: -time.Minute}
	token, err := expired.Issue(uuid.New())
	require.NoError(t, err)

	app := newGuardedApp(t, issuer)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuard_ValidHeader(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret", "blog-test")
	userID := uuid.New()
	token, err := issuer.Issue(userID)
	require.NoError(t, err)

	app := newGuardedApp(t, issuer)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), string(body))
}

func TestGuard_CookieFallback(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret", "blog-test")
	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	app := newGuardedApp(t, issuer)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuard_HeaderTakesPrecedenceOverCookie(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret", "blog-test")
	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	// A malformed header must not fall through to the valid cookie.
	app := newGuardedApp(t, issuer)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
