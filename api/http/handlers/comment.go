package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/artem13815/blog/api/http/presenter"
	"github.com/artem13815/blog/pkg/comment"
	"github.com/artem13815/blog/pkg/security/jwt"
)

type CommentHandler struct {
	useCase comment.UseCase
	pres    *presenter.Presenter
	log     zerolog.Logger
}

func NewCommentHandler(useCase comment.UseCase, pres *presenter.Presenter, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{useCase: useCase, pres: pres, log: log}
}

type commentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Content   string    `json:"content"`
	Author    authorDTO `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCommentResponse(cm comment.Comment) commentResponse {
	return commentResponse{
		ID:        cm.ID.String(),
		PostID:    cm.PostID.String(),
		Content:   cm.Content,
		Author:    authorDTO{ID: cm.AuthorID.String(), Handle: cm.AuthorHandle},
		CreatedAt: cm.CreatedAt,
		UpdatedAt: cm.UpdatedAt,
	}
}

// ListByPost returns live comments for a post, newest first.
// @Summary List comments of a post
// @Tags    comments
// @Produce json
// @Param   post_id path string true "post id (UUID)"
// @Success 200 {object} presenter.Envelope{data=[]commentResponse}
// @Failure 400 {object} presenter.Envelope
// @Router  /api/posts/{post_id}/comments [get]
func (h *CommentHandler) ListByPost(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid post id")
	}
	comments, err := h.useCase.ListByPost(c.Context(), postID)
	if err != nil {
		return h.fail(c, err)
	}
	out := make([]commentResponse, 0, len(comments))
	for _, cm := range comments {
		out = append(out, toCommentResponse(cm))
	}
	return h.pres.OK(c, http.StatusOK, out)
}

// Create adds a comment to a post.
// @Summary Create a comment
// @Tags    comments
// @Accept  json
// @Produce json
// @Param   post_id path string true "post id (UUID)"
// @Param   input body commentRequest true "comment payload"
// @Security BearerAuth
// @Success 201 {object} presenter.Envelope{data=commentResponse}
// @Failure 400 {object} presenter.Envelope
// @Failure 401 {object} presenter.Envelope
// @Router  /api/posts/{post_id}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return h.pres.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid post id")
	}
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "content is required")
	}
	cm, err := h.useCase.Create(c.Context(), postID, userID, req.Content)
	if err != nil {
		return h.fail(c, err)
	}
	return h.pres.OK(c, http.StatusCreated, toCommentResponse(cm))
}

// Update rewrites a comment's content. Only the owner may do this.
// @Summary Update a comment
// @Tags    comments
// @Accept  json
// @Produce json
// @Param   post_id path string true "post id (UUID)"
// @Param   comment_id path string true "comment id (UUID)"
// @Param   input body commentRequest true "comment payload"
// @Security BearerAuth
// @Success 200 {object} presenter.Envelope{data=commentResponse}
// @Failure 400 {object} presenter.Envelope
// @Failure 401 {object} presenter.Envelope
// @Failure 403 {object} presenter.Envelope
// @Failure 404 {object} presenter.Envelope
// @Router  /api/posts/{post_id}/comments/{comment_id} [put]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return h.pres.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid post id")
	}
	commentID, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid comment id")
	}
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "content is required")
	}
	cm, err := h.useCase.Update(c.Context(), userID, postID, commentID, req.Content)
	if err != nil {
		return h.fail(c, err)
	}
	return h.pres.OK(c, http.StatusOK, toCommentResponse(cm))
}

// Delete soft-deletes a comment. Only the owner may do this.
// @Summary Delete a comment
// @Tags    comments
// @Param   post_id path string true "post id (UUID)"
// @Param   comment_id path string true "comment id (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 400 {object} presenter.Envelope
// @Failure 401 {object} presenter.Envelope
// @Failure 403 {object} presenter.Envelope
// @Failure 404 {object} presenter.Envelope
// @Router  /api/posts/{post_id}/comments/{comment_id} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return h.pres.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid post id")
	}
	commentID, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid comment id")
	}
	if err := h.useCase.Delete(c.Context(), userID, postID, commentID); err != nil {
		return h.fail(c, err)
	}
	return h.pres.NoContent(c)
}

func (h *CommentHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, comment.ErrNotFound):
		return h.pres.Error(c, http.StatusNotFound, "comment not found")
	case errors.Is(err, comment.ErrForbidden):
		return h.pres.Error(c, http.StatusForbidden, "you are not the owner of this comment")
	default:
		h.log.Error().Err(err).Msg("comment operation failed")
		return h.pres.Error(c, http.StatusInternalServerError, "internal error")
	}
}
