package post

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry owned by the user who created it.
type Post struct {
	ID           uuid.UUID
	AuthorID     uuid.UUID
	AuthorHandle string
	Title        string
	Content      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Repository is the persistence port for posts.
type Repository interface {
	Create(ctx context.Context, p Post) error
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	// List returns all posts, newest first, with the author handle joined in.
	List(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, p Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}
