package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/blog/pkg/security/jwt"
	"github.com/artem13815/blog/pkg/security/password"
)

// UseCase describes registration and login behavior.
type UseCase interface {
	Register(ctx context.Context, handle, pass string) error
	Login(ctx context.Context, handle, pass string) (Session, error)
}

// Session is the credential material handed to a client after login.
type Session struct {
	TokenType   string
	ExpiresIn   int
	AccessToken string
}

// ErrValidation is a domain validation failure with a client-safe message.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type authService struct {
	repo   UserRepository
	tokens TokenIssuer
}

// NewService returns the default implementation of UseCase.
func NewService(repo UserRepository, tokens TokenIssuer) UseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, handle, pass string) error {
	// Structural rules (length, charset) are checked at the HTTP boundary;
	// the cross-field rule lives here with the rest of the domain logic.
	if strings.Contains(pass, handle) {
		return ErrValidation("password must not contain the handle")
	}

	// Fail fast on a taken handle; the unique index is the real guarantee.
	if _, err := s.repo.GetByHandle(ctx, handle); err == nil {
		return ErrUserAlreadyExists
	}

	salt, err := password.NewSalt()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := User{
		ID:           uuid.New(),
		Handle:       handle,
		PasswordHash: password.Hash(pass, salt),
		Salt:         salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.repo.Create(ctx, user)
}

func (s *authService) Login(ctx context.Context, handle, pass string) (Session, error) {
	user, err := s.repo.GetByHandle(ctx, handle)
	if err != nil {
		// Unknown handle and wrong password must be indistinguishable.
		return Session{}, ErrInvalidCredentials
	}
	if !password.Verify(pass, user.Salt, user.PasswordHash) {
		return Session{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{
		TokenType:   "Bearer",
		ExpiresIn:   jwt.TokenTTLSeconds,
		AccessToken: token,
	}, nil
}
