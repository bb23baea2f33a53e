package post

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostRepo struct {
	posts map[uuid.UUID]Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]Post)}
}

func (r *fakePostRepo) Create(_ context.Context, p Post) error {
	r.posts[p.ID] = p
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id uuid.UUID) (Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	return p, nil
}

func (r *fakePostRepo) List(_ context.Context) ([]Post, error) {
	out := make([]Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePostRepo) Update(_ context.Context, p Post) error {
	r.posts[p.ID] = p
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.posts, id)
	return nil
}

func TestUpdate_ByOwner(t *testing.T) {
	t.Parallel()

	repo := newFakePostRepo()
	svc := NewService(repo)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, "title", "content")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, created.ID, "title2", "content2")
	require.NoError(t, err)
	assert.Equal(t, "title2", updated.Title)
	assert.Equal(t, "content2", updated.Content)
	assert.Equal(t, owner, updated.AuthorID)
}

func TestUpdate_ByNonOwnerIsForbiddenNotNotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakePostRepo())
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	created, err := svc.Create(ctx, owner, "title", "content")
	require.NoError(t, err)

	_, err = svc.Update(ctx, stranger, created.ID, "x", "y")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDelete_MissingPostIsNotFoundForAnyCaller(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakePostRepo())
	ctx := context.Background()

	err := svc.Delete(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_ByNonOwner(t *testing.T) {
	t.Parallel()

	repo := newFakePostRepo()
	svc := NewService(repo)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, "title", "content")
	require.NoError(t, err)

	err = svc.Delete(ctx, uuid.New(), created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// Still there.
	_, err = svc.GetByID(ctx, created.ID)
	assert.NoError(t, err)
}
