package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered account. The password is
// never stored in plaintext; only the salted PBKDF2 digest and the salt used
// to produce it are persisted.
type User struct {
	ID           uuid.UUID
	Handle       string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
