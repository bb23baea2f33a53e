// Package presenter renders the response envelope shared by all endpoints:
// success bodies carry {"code":"ok"} plus optional data, failures carry
// {"code":"error"} plus a message. In production the message is stripped so
// internals never leak to clients.
package presenter

import "github.com/gofiber/fiber/v2"

const (
	CodeOK    = "ok"
	CodeError = "error"
)

type Envelope struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Presenter builds envelopes. Constructed once at startup with the
// environment mode; immutable afterwards.
type Presenter struct {
	production bool
}

func New(production bool) *Presenter {
	return &Presenter{production: production}
}

// OK sends a success envelope with optional payload.
func (p *Presenter) OK(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Envelope{Code: CodeOK, Data: data})
}

// Error sends a failure envelope. The message is dropped in production.
func (p *Presenter) Error(c *fiber.Ctx, status int, message string) error {
	if p.production {
		message = ""
	}
	return c.Status(status).JSON(Envelope{Code: CodeError, Message: message})
}

// NoContent sends an empty 204 response.
func (p *Presenter) NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
