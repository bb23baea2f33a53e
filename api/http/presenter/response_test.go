package presenter_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/blog/api/http/presenter"
)

func fetch(t *testing.T, p *presenter.Presenter, handler func(*fiber.Ctx, *presenter.Presenter) error) (int, map[string]any) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return handler(c, p) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp.StatusCode, body
}

func TestError_MessageVisibleInDevelopment(t *testing.T) {
	t.Parallel()

	status, body := fetch(t, presenter.New(false), func(c *fiber.Ctx, p *presenter.Presenter) error {
		return p.Error(c, http.StatusForbidden, "you are not the owner")
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, presenter.CodeError, body["code"])
	assert.Equal(t, "you are not the owner", body["message"])
}

func TestError_MessageStrippedInProduction(t *testing.T) {
	t.Parallel()

	status, body := fetch(t, presenter.New(true), func(c *fiber.Ctx, p *presenter.Presenter) error {
		return p.Error(c, http.StatusInternalServerError, "pgx: connection refused")
	})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, presenter.CodeError, body["code"])
	_, present := body["message"]
	assert.False(t, present, "internals must not leak in production")
}

func TestOK_OmitsEmptyData(t *testing.T) {
	t.Parallel()

	status, body := fetch(t, presenter.New(false), func(c *fiber.Ctx, p *presenter.Presenter) error {
		return p.OK(c, http.StatusCreated, nil)
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, presenter.CodeOK, body["code"])
	_, present := body["data"]
	assert.False(t, present)
}
