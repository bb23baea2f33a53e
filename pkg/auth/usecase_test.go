package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/blog/pkg/security/jwt"
	"github.com/artem13815/blog/pkg/security/password"
)

type fakeUserRepo struct {
	users map[string]User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user User) error {
	if _, ok := r.users[user.Handle]; ok {
		return ErrUserAlreadyExists
	}
	r.users[user.Handle] = user
	return nil
}

func (r *fakeUserRepo) GetByHandle(_ context.Context, handle string) (User, error) {
	user, ok := r.users[handle]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID uuid.UUID) (string, error) {
	return "token-for-" + userID.String(), nil
}

func TestRegister_StoresSaltedHash(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewService(repo, fakeIssuer{})

	err := svc.Register(context.Background(), "alice", "pass1")
	require.NoError(t, err)

	user := repo.users["alice"]
	assert.NotEmpty(t, user.Salt)
	assert.NotEqual(t, "pass1", user.PasswordHash)
	assert.Equal(t, password.Hash("pass1", user.Salt), user.PasswordHash)
}

func TestRegister_PasswordContainingHandle(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeUserRepo(), fakeIssuer{})

	err := svc.Register(context.Background(), "alice", "xxalicexx")
	var ve ErrValidation
	assert.ErrorAs(t, err, &ve)
}

func TestRegister_DuplicateHandle(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeUserRepo(), fakeIssuer{})
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pass1"))
	err := svc.Register(ctx, "alice", "other9")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeUserRepo(), fakeIssuer{})
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "pass1"))

	session, err := svc.Login(ctx, "alice", "pass1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", session.TokenType)
	assert.Equal(t, jwt.TokenTTLSeconds, session.ExpiresIn)
	assert.NotEmpty(t, session.AccessToken)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeUserRepo(), fakeIssuer{})
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "pass1"))

	_, unknownHandle := svc.Login(ctx, "nobody", "pass1")
	_, wrongPassword := svc.Login(ctx, "alice", "wrong")

	assert.ErrorIs(t, unknownHandle, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.Equal(t, unknownHandle, wrongPassword)
}
