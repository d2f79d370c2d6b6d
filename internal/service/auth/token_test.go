package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsard/pulsard-api/internal/config"
)

const testSecret = "test-signing-secret-0123456789abcdef"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		TokenSecret:          testSecret,
		TokenLifetimeMinutes: 7 * 24 * 60,
	}
}

func TestNewTokenAuthority_SecretTooShort(t *testing.T) {
	t.Parallel()

	_, err := NewTokenAuthority(config.AuthConfig{
		TokenSecret:          "short",
		TokenLifetimeMinutes: 60,
	})
	assert.Error(t, err)
}

func TestTokenAuthority_IssueAndVerify(t *testing.T) {
	t.Parallel()

	authority, err := NewTokenAuthority(testAuthConfig())
	require.NoError(t, err)

	ctx := context.Background()
	credential, err := authority.Issue(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, credential)

	claims, err := authority.Verify(ctx, credential)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.SubjectID)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestTokenAuthority_VerifyFailures(t *testing.T) {
	t.Parallel()

	authority, err := NewTokenAuthority(testAuthConfig())
	require.NoError(t, err)

	other, err := NewTokenAuthority(config.AuthConfig{
		TokenSecret:          "another-signing-secret-fedcba9876543210",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	ctx := context.Background()
	foreign, err := other.Issue(ctx, 7)
	require.NoError(t, err)

	tests := []struct {
		name       string
		credential string
		wantErr    error
	}{
		{
			name:       "empty credential",
			credential: "",
			wantErr:    ErrMissingToken,
		},
		{
			name:       "malformed credential",
			credential: "not.a.token",
			wantErr:    ErrInvalidToken,
		},
		{
			name:       "garbage credential",
			credential: "garbage",
			wantErr:    ErrInvalidToken,
		},
		{
			name:       "signature from different key",
			credential: foreign,
			wantErr:    ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			claims, err := authority.Verify(ctx, tt.credential)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenAuthority_ExpiredToken(t *testing.T) {
	t.Parallel()

	a := &hmacTokenAuthority{
		signingKey:    []byte(testSecret),
		tokenLifetime: time.Hour,
		timeFunc:      time.Now,
		clockSkew:     2 * time.Minute,
	}

	ctx := context.Background()
	credential, err := a.Issue(ctx, 9)
	require.NoError(t, err)

	// Move the authority's clock past the lifetime plus the allowed skew.
	// The signature is still correct; only the expiry has passed.
	a.timeFunc = func() time.Time { return time.Now().Add(time.Hour + 3*time.Minute) }

	claims, err := a.Verify(ctx, credential)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenAuthority_TokensAreUnique(t *testing.T) {
	t.Parallel()

	authority, err := NewTokenAuthority(testAuthConfig())
	require.NoError(t, err)

	ctx := context.Background()
	first, err := authority.Issue(ctx, 1)
	require.NoError(t, err)
	second, err := authority.Issue(ctx, 1)
	require.NoError(t, err)

	// Distinct jti per token even for the same subject.
	assert.NotEqual(t, first, second)
}
