package comment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Comment belongs to a post and is owned by the user who wrote it.
// Deleted comments are soft-deleted and excluded from listings.
type Comment struct {
	ID           uuid.UUID
	PostID       uuid.UUID
	AuthorID     uuid.UUID
	AuthorHandle string
	Content      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Repository is the persistence port for comments. Lookups are scoped to a
// post id so a comment cannot be addressed through the wrong post.
type Repository interface {
	Create(ctx context.Context, c Comment) error
	GetByID(ctx context.Context, postID, id uuid.UUID) (Comment, error)
	// ListByPost returns live comments for a post, newest first.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error)
	Update(ctx context.Context, c Comment) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedAt time.Time) error
}
