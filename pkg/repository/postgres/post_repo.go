package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/blog/pkg/post"
)

// PostRepository implements post.Repository backed by PostgreSQL (pgx).
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) (*PostRepository, error) {
	repo := &PostRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *PostRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS posts (
			id UUID PRIMARY KEY,
			author_id UUID NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS posts_created_at_idx ON posts (created_at DESC);
	`)
	return err
}

func (r *PostRepository) Create(ctx context.Context, p post.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, author_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.AuthorID, p.Title, p.Content, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (post.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.author_id, u.handle, p.title, p.content, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, id)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return post.Post{}, post.ErrNotFound
		}
		return post.Post{}, err
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context) ([]post.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.author_id, u.handle, p.title, p.content, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]post.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Update(ctx context.Context, p post.Post) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE posts SET title = $2, content = $3, updated_at = $4 WHERE id = $1
	`, p.ID, p.Title, p.Content, p.UpdatedAt)
	return err
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

func scanPost(row pgx.Row) (post.Post, error) {
	var p post.Post
	if err := row.Scan(&p.ID, &p.AuthorID, &p.AuthorHandle, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return post.Post{}, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
