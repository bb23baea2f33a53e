// Command seed fills the database with demo users, posts, and comments.
// Intended for local development; it is safe to run more than once (existing
// handles are skipped).
package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/blog/pkg/auth"
	"github.com/artem13815/blog/pkg/comment"
	"github.com/artem13815/blog/pkg/config"
	"github.com/artem13815/blog/pkg/logger"
	"github.com/artem13815/blog/pkg/post"
	pgrepo "github.com/artem13815/blog/pkg/repository/postgres"
	"github.com/artem13815/blog/pkg/security/password"
	"github.com/artem13815/blog/pkg/storage/postgres"
)

type seedUser struct {
	handle   string
	password string
}

var seedUsers = []seedUser{
	{handle: "alice", password: "wonders99"},
	{handle: "bob", password: "builder42"},
	{handle: "carol", password: "singer77"},
}

func main() {
	log := logger.New("blog-seed")
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}
	pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect")
	}
	defer pool.Close()

	userRepo, err := pgrepo.NewUserRepository(pool)
	if err != nil {
		log.Fatal().Err(err).Msg("init user repo")
	}
	postRepo, err := pgrepo.NewPostRepository(pool)
	if err != nil {
		log.Fatal().Err(err).Msg("init post repo")
	}
	commentRepo, err := pgrepo.NewCommentRepository(pool)
	if err != nil {
		log.Fatal().Err(err).Msg("init comment repo")
	}

	ctx := context.Background()

	users := make(map[string]auth.User, len(seedUsers))
	for _, su := range seedUsers {
		u, err := ensureUser(ctx, userRepo, su)
		if err != nil {
			log.Fatal().Err(err).Str("handle", su.handle).Msg("seed user")
		}
		users[su.handle] = u
	}
	log.Info().Int("count", len(users)).Msg("users seeded")

	now := time.Now().UTC()
	posts := []post.Post{
		{
			ID:        uuid.New(),
			AuthorID:  users["alice"].ID,
			Title:     "Hello, world",
			Content:   "First post on the new blog.",
			CreatedAt: now.Add(-48 * time.Hour),
			UpdatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:        uuid.New(),
			AuthorID:  users["bob"].ID,
			Title:     "On building things",
			Content:   "Notes from a week of tinkering.",
			CreatedAt: now.Add(-24 * time.Hour),
			UpdatedAt: now.Add(-24 * time.Hour),
		},
	}
	for _, p := range posts {
		if err := postRepo.Create(ctx, p); err != nil {
			log.Fatal().Err(err).Str("title", p.Title).Msg("seed post")
		}
	}
	log.Info().Int("count", len(posts)).Msg("posts seeded")

	comments := []comment.Comment{
		{
			ID:        uuid.New(),
			PostID:    posts[0].ID,
			AuthorID:  users["bob"].ID,
			Content:   "Welcome aboard!",
			CreatedAt: now.Add(-40 * time.Hour),
			UpdatedAt: now.Add(-40 * time.Hour),
		},
		{
			ID:        uuid.New(),
			PostID:    posts[0].ID,
			AuthorID:  users["carol"].ID,
			Content:   "Looking forward to more.",
			CreatedAt: now.Add(-39 * time.Hour),
			UpdatedAt: now.Add(-39 * time.Hour),
		},
		{
			ID:        uuid.New(),
			PostID:    posts[1].ID,
			AuthorID:  users["alice"].ID,
			Content:   "What did you build?",
			CreatedAt: now.Add(-20 * time.Hour),
			UpdatedAt: now.Add(-20 * time.Hour),
		},
	}
	for _, cm := range comments {
		if err := commentRepo.Create(ctx, cm); err != nil {
			log.Fatal().Err(err).Msg("seed comment")
		}
	}
	log.Info().Int("count", len(comments)).Msg("comments seeded")
}

func ensureUser(ctx context.Context, repo auth.UserRepository, su seedUser) (auth.User, error) {
	if existing, err := repo.GetByHandle(ctx, su.handle); err == nil {
		return existing, nil
	} else if !errors.Is(err, auth.ErrNotFound) {
		return auth.User{}, err
	}

	salt, err := password.NewSalt()
	if err != nil {
		return auth.User{}, err
	}
	now := time.Now().UTC()
	u := auth.User{
		ID:           uuid.New(),
		Handle:       su.handle,
		PasswordHash: password.Hash(su.password, salt),
		Salt:         salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, u); err != nil {
		return auth.User{}, err
	}
	return u, nil
}
