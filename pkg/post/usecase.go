package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means the post does not exist.
	ErrNotFound = errors.New("post not found")
	// ErrForbidden means the post exists but the caller is not its owner.
	// Existence is checked before ownership, so a Forbidden result confirms
	// the post exists; that trade-off is deliberate.
	ErrForbidden = errors.New("not the post owner")
)

// UseCase encapsulates post CRUD with the ownership rule on mutations.
type UseCase interface {
	Create(ctx context.Context, authorID uuid.UUID, title, content string) (Post, error)
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	Update(ctx context.Context, callerID, id uuid.UUID, title, content string) (Post, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, authorID uuid.UUID, title, content string) (Post, error) {
	now := time.Now().UTC()
	p := Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]Post, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, callerID, id uuid.UUID, title, content string) (Post, error) {
	p, err := s.load(ctx, callerID, id)
	if err != nil {
		return Post{}, err
	}
	p.Title = title
	p.Content = content
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if _, err := s.load(ctx, callerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// load fetches the post and enforces ownership: a lookup miss is NotFound,
// a hit with a different owner is Forbidden.
func (s *service) load(ctx context.Context, callerID, id uuid.UUID) (Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Post{}, err
	}
	if p.AuthorID != callerID {
		return Post{}, ErrForbidden
	}
	return p, nil
}
