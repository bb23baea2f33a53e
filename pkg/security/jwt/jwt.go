package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the fixed validity window of an access token. There is no
// refresh or revocation path; expiry is the only invalidation.
const TokenTTL = 24 * time.Hour

// TokenTTLSeconds is TokenTTL expressed in seconds, as reported to clients.
const TokenTTLSeconds = int(TokenTTL / time.Second)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, expired token, or wrong issuer.
var ErrInvalidToken = errors.New("invalid token")

// Issuer creates and verifies signed bearer tokens (HS256).
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewIssuer(secret, issuer string) *Issuer {
	return &Issuer{secret: []byte(secret), issuer: issuer, ttl: TokenTTL}
}

// Issue signs a token carrying userID as subject, expiring after TokenTTL.
func (i *Issuer) Issue(userID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    i.issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify parses and validates tokenStr and returns the embedded user id.
// Any failure is reported as ErrInvalidToken; callers don't get to
// distinguish a forged token from an expired one.
func (i *Issuer) Verify(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	if i.issuer != "" && claims.Issuer != i.issuer {
		return uuid.Nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}
