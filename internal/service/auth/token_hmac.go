package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pulsard/pulsard-api/internal/config"
	"github.com/pulsard/pulsard-api/internal/platform/logger"
)

// hmacTokenAuthority is an implementation of TokenAuthority using
// HMAC-SHA256 signing.
type hmacTokenAuthority struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
	clockSkew     time.Duration    // Allowed drift when validating time claims
}

// tokenClaims defines the structure of the JWT claims we use.
type tokenClaims struct {
	SubjectID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenAuthority implements the TokenAuthority interface
var _ TokenAuthority = (*hmacTokenAuthority)(nil)

// NewTokenAuthority creates a TokenAuthority using HMAC-SHA256 signing.
// The signing key comes from configuration and must be at least 32 bytes.
func NewTokenAuthority(cfg config.AuthConfig) (TokenAuthority, error) {
	if len(cfg.TokenSecret) < 32 {
		return nil, fmt.Errorf("token secret must be at least 32 characters")
	}

	return &hmacTokenAuthority{
		signingKey:    []byte(cfg.TokenSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      time.Now,
		clockSkew:     2 * time.Minute,
	}, nil
}

// Issue creates a signed credential for the subject.
func (a *hmacTokenAuthority) Issue(ctx context.Context, subjectID int64) (string, error) {
	log := logger.FromContext(ctx)
	now := a.timeFunc()

	claims := tokenClaims{
		SubjectID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(subjectID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenLifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.signingKey)
	if err != nil {
		log.Error("failed to sign credential",
			"error", err,
			"subject_id", subjectID,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign credential with HMAC-SHA256: %w", err)
	}

	return signed, nil
}

// Verify validates a credential and returns its claims. All failure modes
// collapse into the package's sentinel errors so callers can treat
// verification failure as a normal, reportable outcome.
func (a *hmacTokenAuthority) Verify(ctx context.Context, credential string) (*Claims, error) {
	log := logger.FromContext(ctx)

	if credential == "" {
		return nil, ErrMissingToken
	}

	now := a.timeFunc()
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(a.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		credential,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return a.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("credential verification failed: token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("credential verification failed: malformed token", "error", err)
			return nil, ErrInvalidToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("credential verification failed: invalid signature", "error", err)
			return nil, ErrInvalidToken
		default:
			log.Debug("credential verification failed",
				"error", err,
				"error_type", fmt.Sprintf("%T", err))
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		log.Debug("credential verification failed: invalid claims")
		return nil, ErrInvalidToken
	}

	// A token without an expiry parses cleanly but never satisfies the
	// fixed validity window this authority issues, so reject it.
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		log.Debug("credential verification failed: missing time claims")
		return nil, ErrInvalidToken
	}

	return &Claims{
		SubjectID: claims.SubjectID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
		ID:        claims.ID,
	}, nil
}
