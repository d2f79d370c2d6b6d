// Package identity resolves raw request credentials into an authenticated
// or anonymous identity.
package identity

import (
	"context"
	"log/slog"

	"github.com/pulsard/pulsard-api/internal/domain"
	"github.com/pulsard/pulsard-api/internal/service/auth"
	"github.com/pulsard/pulsard-api/internal/store"
)

// Resolver turns an opaque credential string into a domain.Identity by
// verifying it against the token authority and looking the subject up in
// the user store.
type Resolver struct {
	tokens auth.TokenAuthority
	users  store.UserStore
	logger *slog.Logger
}

// NewResolver creates a Resolver with the given dependencies.
func NewResolver(tokens auth.TokenAuthority, users store.UserStore, log *slog.Logger) *Resolver {
	return &Resolver{
		tokens: tokens,
		users:  users,
		logger: log.With("component", "identity_resolver"),
	}
}

// Resolve returns the identity behind rawCredential. Every failure mode
// resolves to anonymous: a missing or invalid credential, an expired
// token, or a subject whose account no longer exists. Resolution never
// surfaces an error to the request.
func (r *Resolver) Resolve(ctx context.Context, rawCredential string) domain.Identity {
	if rawCredential == "" {
		return domain.Anonymous()
	}

	claims, err := r.tokens.Verify(ctx, rawCredential)
	if err != nil {
		r.logger.Debug("credential did not verify, resolving anonymous", "error", err)
		return domain.Anonymous()
	}

	user, err := r.users.GetByID(ctx, claims.SubjectID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			r.logger.Error("user lookup failed during identity resolution",
				"error", err,
				"subject_id", claims.SubjectID)
		}
		// Account deleted after issuance, or lookup failed: either way the
		// request proceeds anonymously.
		return domain.Anonymous()
	}

	return domain.NewAuthenticated(user.ID, user.Username, rawCredential)
}
