package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/blog/api/http/handlers"
	"github.com/artem13815/blog/api/http/presenter"
)

// Register wires all HTTP routes onto the given Fiber app. Mutating routes
// sit behind the guard middleware; reads are public.
func Register(app *fiber.App, pres *presenter.Presenter, guard fiber.Handler,
	authH *handlers.AuthHandler, postH *handlers.PostHandler, commentH *handlers.CommentHandler, healthH *handlers.HealthHandler) {

	app.Get("/", healthH.Root)
	app.Get("/liveness", healthH.Liveness)
	app.Get("/readiness", healthH.Readiness)

	api := app.Group("/api")

	a := api.Group("/auth")
	a.Post("/register", authH.Register)
	a.Post("/login", authH.Login)

	p := api.Group("/posts")
	p.Get("/", postH.List)
	p.Post("/", guard, postH.Create)
	p.Get("/:post_id", postH.GetByID)
	p.Put("/:post_id", guard, postH.Update)
	p.Delete("/:post_id", guard, postH.Delete)

	cm := p.Group("/:post_id/comments")
	cm.Get("/", commentH.ListByPost)
	cm.Post("/", guard, commentH.Create)
	cm.Put("/:comment_id", guard, commentH.Update)
	cm.Delete("/:comment_id", guard, commentH.Delete)

	// Anything unmatched falls through to a 404 envelope.
	app.Use(func(c *fiber.Ctx) error {
		return pres.Error(c, http.StatusNotFound, "not found")
	})
}
