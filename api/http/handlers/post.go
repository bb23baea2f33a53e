package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/artem13815/blog/api/http/presenter"
	"github.com/artem13815/blog/pkg/post"
	"github.com/artem13815/blog/pkg/security/jwt"
)

type PostHandler struct {
	useCase post.UseCase
	pres    *presenter.Presenter
	log     zerolog.Logger
}

func NewPostHandler(useCase post.UseCase, pres *presenter.Presenter, log zerolog.Logger) *PostHandler {
	return &PostHandler{useCase: useCase, pres: pres, log: log}
}

type postRequest struct {
	Title   string `json:"title" validate:"required,min=1"`
	Content string `json:"content" validate:"required,min=1"`
}

type authorDTO struct {
	ID     string `json:"id"`
	Handle string `json:"handle,omitempty"`
}

type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    authorDTO `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toPostResponse(p post.Post) postResponse {
	return postResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Content:   p.Content,
		Author:    authorDTO{ID: p.AuthorID.String(), Handle: p.AuthorHandle},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// List returns all posts, newest first.
// @Summary List posts
// @Tags    posts
// @Produce json
// @Success 200 {object} presenter.Envelope{data=[]postResponse}
// @Router  /api/posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.useCase.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return h.pres.OK(c, http.StatusOK, out)
}

// GetByID returns a single post.
// @Summary Get a post
// @Tags    posts
// @Produce json
// @Param   post_id path string true "post id (UUID)"
// @Success 200 {object} presenter.Envelope{data=postResponse}
// @Failure 400 {object} presenter.Envelope
// @Failure 404 {object} presenter.Envelope
// @Router  /api/posts/{post_id} [get]
func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid post id")
	}
	p, err := h.useCase.GetByID(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return h.pres.OK(c, http.StatusOK, toPostResponse(p))
}

// Create creates a post owned by the authenticated user.
// @Summary Create a post
// @Tags    posts
// @Accept  json
// @Produce json
// @Param   input body postRequest true "post payload"
// @Security BearerAuth
// @Success 201 {object} presenter.Envelope{data=postResponse}
// @Failure 400 {object} presenter.Envelope
// @Failure 401 {object} presenter.Envelope
// @Router  /api/posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return h.pres.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "title and content are required")
	}
	p, err := h.useCase.Create(c.Context(), userID, req.Title, req.Content)
	if err != nil {
		return h.fail(c, err)
	}
	return h.pres.OK(c, http.StatusCreated, toPostResponse(p))
}

// Update rewrites a post's title and content. Only the owner may do this.
// @Summary Update a post
// @Tags    posts
// @Accept  json
// @Produce json
// @Param   post_id path string true "post id (UUID)"
// @Param   input body postRequest true "post payload"
// @Security BearerAuth
// @Success 200 {object} presenter.Envelope{data=postResponse}
// @Failure 400 {object} presenter.Envelope
// @Failure 401 {object} presenter.Envelope
// @Failure 403 {object} presenter.Envelope
// @Failure 404 {object} presenter.Envelope
// @Router  /api/posts/{post_id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return h.pres.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	id, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid post id")
	}
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "title and content are required")
	}
	p, err := h.useCase.Update(c.Context(), userID, id, req.Title, req.Content)
	if err != nil {
		return h.fail(c, err)
	}
	return h.pres.OK(c, http.StatusOK, toPostResponse(p))
}

// Delete removes a post. Only the owner may do this.
// @Summary Delete a post
// @Tags    posts
// @Param   post_id path string true "post id (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 400 {object} presenter.Envelope
// @Failure 401 {object} presenter.Envelope
// @Failure 403 {object} presenter.Envelope
// @Failure 404 {object} presenter.Envelope
// @Router  /api/posts/{post_id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return h.pres.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	id, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid post id")
	}
	if err := h.useCase.Delete(c.Context(), userID, id); err != nil {
		return h.fail(c, err)
	}
	return h.pres.NoContent(c)
}

func (h *PostHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, post.ErrNotFound):
		return h.pres.Error(c, http.StatusNotFound, "post not found")
	case errors.Is(err, post.ErrForbidden):
		return h.pres.Error(c, http.StatusForbidden, "you are not the owner of this post")
	default:
		h.log.Error().Err(err).Msg("post operation failed")
		return h.pres.Error(c, http.StatusInternalServerError, "internal error")
	}
}
