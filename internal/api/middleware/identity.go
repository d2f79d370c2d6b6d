package middleware

import (
	"net/http"
	"strings"

	"github.com/pulsard/pulsard-api/internal/api/shared"
	"github.com/pulsard/pulsard-api/internal/domain"
	"github.com/pulsard/pulsard-api/internal/service/identity"
)

// TokenCookieName is the cookie deployments using cookie-carried
// credentials store the token under.
const TokenCookieName = "token"

// CredentialExtractor pulls the raw credential string out of a request.
// It returns "" when the request carries none. Deployments differ in
// where the credential travels (cookie vs Authorization header), so the
// extraction step is pluggable rather than fixed.
type CredentialExtractor func(r *http.Request) string

// FromCookie extracts the credential from the named cookie.
func FromCookie(name string) CredentialExtractor {
	return func(r *http.Request) string {
		cookie, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return cookie.Value
	}
}

// FromBearerHeader extracts the credential from an
// "Authorization: Bearer <token>" header.
func FromBearerHeader() CredentialExtractor {
	return func(r *http.Request) string {
		header := r.Header.Get("Authorization")
		if header == "" {
			return ""
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ""
		}
		return parts[1]
	}
}

// FirstOf tries each extractor in order and returns the first non-empty
// credential.
func FirstOf(extractors ...CredentialExtractor) CredentialExtractor {
	return func(r *http.Request) string {
		for _, extract := range extractors {
			if credential := extract(r); credential != "" {
				return credential
			}
		}
		return ""
	}
}

// IdentityMiddleware resolves each request's credential into an identity
// and stores it in the request context. Requests without a valid
// credential proceed as anonymous; this middleware never rejects.
type IdentityMiddleware struct {
	resolver *identity.Resolver
	extract  CredentialExtractor
}

// NewIdentityMiddleware creates an IdentityMiddleware using the given
// extraction strategy.
func NewIdentityMiddleware(resolver *identity.Resolver, extract CredentialExtractor) *IdentityMiddleware {
	return &IdentityMiddleware{
		resolver: resolver,
		extract:  extract,
	}
}

// Resolve attaches the resolved identity to the request context and
// passes the request on unconditionally.
func (m *IdentityMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := m.resolver.Resolve(r.Context(), m.extract(r))
		ctx := shared.WithIdentity(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the resolved identity from the request.
func GetIdentity(r *http.Request) domain.Identity {
	return shared.IdentityFrom(r.Context())
}
