package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/blog/api/http/presenter"
	"github.com/artem13815/blog/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc  health.ReadinessUseCase
	pres *presenter.Presenter
}

func NewHealthHandler(svc health.ReadinessUseCase, pres *presenter.Presenter) *HealthHandler {
	return &HealthHandler{svc: svc, pres: pres}
}

// Root responds to the bare health ping.
// @Summary Health ping
// @Tags    health
// @Success 200 {string} string
// @Router  / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("OK")
}

// Liveness: the process is up.
// @Summary Liveness probe
// @Tags    health
// @Success 200 {string} string
// @Router  /liveness [get]
func (h *HealthHandler) Liveness(c *fiber.Ctx) error {
	return c.SendString("Service is up")
}

// Readiness: the process is up and its dependencies answer.
// @Summary Readiness probe
// @Tags    health
// @Success 200 {string} string
// @Failure 503 {object} presenter.Envelope
// @Router  /readiness [get]
func (h *HealthHandler) Readiness(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return h.pres.Error(c, http.StatusServiceUnavailable, "service unavailable")
	}
	return c.SendString("Service is ready")
}
