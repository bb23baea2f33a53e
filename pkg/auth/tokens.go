package auth

import "github.com/google/uuid"

// TokenIssuer abstracts bearer-token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}
