package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/blog/pkg/comment"
)

// CommentRepository implements comment.Repository backed by PostgreSQL (pgx).
// Deletion is a soft delete: rows keep their data but carry deleted_at and
// are excluded from every query.
type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) (*CommentRepository, error) {
	repo := &CommentRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *CommentRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS comments (
			id UUID PRIMARY KEY,
			post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			author_id UUID NOT NULL REFERENCES users(id),
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			deleted_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS comments_post_id_idx ON comments (post_id);
	`)
	return err
}

func (r *CommentRepository) Create(ctx context.Context, c comment.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, post_id, author_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID, c.PostID, c.AuthorID, c.Content, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *CommentRepository) GetByID(ctx context.Context, postID, id uuid.UUID) (comment.Comment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT c.id, c.post_id, c.author_id, u.handle, c.content, c.created_at, c.updated_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1 AND c.post_id = $2 AND c.deleted_at IS NULL
	`, id, postID)
	c, err := scanComment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return comment.Comment{}, comment.ErrNotFound
		}
		return comment.Comment{}, err
	}
	return c, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]comment.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.post_id, c.author_id, u.handle, c.content, c.created_at, c.updated_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1 AND c.deleted_at IS NULL
		ORDER BY c.created_at DESC
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]comment.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Update(ctx context.Context, c comment.Comment) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE comments SET content = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL
	`, c.ID, c.Content, c.UpdatedAt)
	return err
}

func (r *CommentRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE comments SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL
	`, id, deletedAt)
	return err
}

func scanComment(row pgx.Row) (comment.Comment, error) {
	var c comment.Comment
	if err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.AuthorHandle, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return comment.Comment{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
