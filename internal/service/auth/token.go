package auth

import (
	"context"
	"time"
)

// TokenAuthority issues and verifies signed session credentials. Tokens
// are stateless and unrevocable: once issued, a token remains valid until
// its expiry regardless of account changes. Logout is purely client-side.
type TokenAuthority interface {
	// Issue creates a signed credential embedding the subject's account id.
	// Returns the token string or an error if signing fails.
	Issue(ctx context.Context, subjectID int64) (string, error)

	// Verify validates the credential's signature and expiry and extracts
	// its claims. Verification failure is a normal outcome reported via
	// the sentinel errors in this package (ErrMissingToken,
	// ErrInvalidToken, ErrExpiredToken); Verify never panics.
	Verify(ctx context.Context, credential string) (*Claims, error)
}

// Claims is the identity claim carried inside a verified credential.
type Claims struct {
	// SubjectID is the account id the token was issued for.
	SubjectID int64

	// IssuedAt and ExpiresAt bound the token's validity window.
	IssuedAt  time.Time
	ExpiresAt time.Time

	// ID is the unique token id (jti).
	ID string
}
