package comment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommentRepo struct {
	comments map[uuid.UUID]Comment
	deleted  map[uuid.UUID]bool
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		comments: make(map[uuid.UUID]Comment),
		deleted:  make(map[uuid.UUID]bool),
	}
}

func (r *fakeCommentRepo) Create(_ context.Context, c Comment) error {
	r.comments[c.ID] = c
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, postID, id uuid.UUID) (Comment, error) {
	c, ok := r.comments[id]
	if !ok || c.PostID != postID || r.deleted[id] {
		return Comment{}, ErrNotFound
	}
	return c, nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID uuid.UUID) ([]Comment, error) {
	out := make([]Comment, 0)
	for id, c := range r.comments {
		if c.PostID == postID && !r.deleted[id] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, c Comment) error {
	r.comments[c.ID] = c
	return nil
}

func (r *fakeCommentRepo) SoftDelete(_ context.Context, id uuid.UUID, _ time.Time) error {
	r.deleted[id] = true
	return nil
}

func TestUpdate_ByOwner(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeCommentRepo())
	ctx := context.Background()
	postID := uuid.New()
	owner := uuid.New()

	created, err := svc.Create(ctx, postID, owner, "content")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, postID, created.ID, "content2")
	require.NoError(t, err)
	assert.Equal(t, "content2", updated.Content)
}

func TestUpdate_ByNonOwnerIsForbidden(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeCommentRepo())
	ctx := context.Background()
	postID := uuid.New()

	created, err := svc.Create(ctx, postID, uuid.New(), "content")
	require.NoError(t, err)

	_, err = svc.Update(ctx, uuid.New(), postID, created.ID, "x")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdate_WrongPostIsNotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeCommentRepo())
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, uuid.New(), owner, "content")
	require.NoError(t, err)

	// Addressing the comment through a different post misses.
	_, err = svc.Update(ctx, owner, uuid.New(), created.ID, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_SoftDeleteHidesComment(t *testing.T) {
	t.Parallel()

	repo := newFakeCommentRepo()
	svc := NewService(repo)
	ctx := context.Background()
	postID := uuid.New()
	owner := uuid.New()

	created, err := svc.Create(ctx, postID, owner, "content")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, postID, created.ID))

	comments, err := svc.ListByPost(ctx, postID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	// A second delete sees nothing.
	err = svc.Delete(ctx, owner, postID, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
