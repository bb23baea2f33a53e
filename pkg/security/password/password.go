// Package password derives verifiable password digests using PBKDF2.
//
// Hashing is deterministic for a given (password, salt) pair so that
// verification can recompute the digest and compare; the per-user salt
// defeats precomputed lookup tables.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	iterations = 1000
	keyLength  = 64
	saltBytes  = 16 // 128 bits
)

// Hash derives a hex-encoded PBKDF2-SHA256 digest of password under salt.
// Same inputs always produce the same digest.
func Hash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)
	return hex.EncodeToString(key)
}

// NewSalt returns a fresh hex-encoded 128-bit salt from crypto/rand.
func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Verify recomputes the digest for password under salt and compares it
// against digest in constant time.
func Verify(password, salt, digest string) bool {
	computed := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
