package mocks

import (
	"context"

	"github.com/pulsard/pulsard-api/internal/service/auth"
)

// MockTokenAuthority implements auth.TokenAuthority for testing.
type MockTokenAuthority struct {
	// IssueFn allows test cases to mock the Issue behavior.
	IssueFn func(ctx context.Context, subjectID int64) (string, error)

	// VerifyFn allows test cases to mock the Verify behavior.
	VerifyFn func(ctx context.Context, credential string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token     string
	IssueErr  error
	Claims    *auth.Claims
	VerifyErr error
}

// Issue implements the auth.TokenAuthority interface.
func (m *MockTokenAuthority) Issue(ctx context.Context, subjectID int64) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, subjectID)
	}
	return m.Token, m.IssueErr
}

// Verify implements the auth.TokenAuthority interface.
func (m *MockTokenAuthority) Verify(ctx context.Context, credential string) (*auth.Claims, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, credential)
	}
	return m.Claims, m.VerifyErr
}
