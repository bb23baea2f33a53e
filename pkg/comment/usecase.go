package comment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means no live comment with that id exists under the post.
	ErrNotFound = errors.New("comment not found")
	// ErrForbidden means the comment exists but the caller did not write it.
	ErrForbidden = errors.New("not the comment owner")
)

// UseCase encapsulates comment CRUD with the ownership rule on mutations.
type UseCase interface {
	Create(ctx context.Context, postID, authorID uuid.UUID, content string) (Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error)
	Update(ctx context.Context, callerID, postID, id uuid.UUID, content string) (Comment, error)
	Delete(ctx context.Context, callerID, postID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, postID, authorID uuid.UUID, content string) (Comment, error) {
	now := time.Now().UTC()
	c := Comment{
		ID:        uuid.New(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Comment{}, err
	}
	return c, nil
}

func (s *service) ListByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}

func (s *service) Update(ctx context.Context, callerID, postID, id uuid.UUID, content string) (Comment, error) {
	c, err := s.load(ctx, callerID, postID, id)
	if err != nil {
		return Comment{}, err
	}
	c.Content = content
	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, c); err != nil {
		return Comment{}, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, callerID, postID, id uuid.UUID) error {
	if _, err := s.load(ctx, callerID, postID, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id, time.Now().UTC())
}

// load fetches the comment and enforces ownership, existence first.
func (s *service) load(ctx context.Context, callerID, postID, id uuid.UUID) (Comment, error) {
	c, err := s.repo.GetByID(ctx, postID, id)
	if err != nil {
		return Comment{}, err
	}
	if c.AuthorID != callerID {
		return Comment{}, ErrForbidden
	}
	return c, nil
}
