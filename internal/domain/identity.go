package domain

// Identity is the outcome of resolving a request credential. It is a
// two-state variant: anonymous, or authenticated with the account's id,
// username, and the raw credential the request presented. Identities are
// built once per request and never mutated.
type Identity struct {
	id            int64
	username      string
	credential    string
	authenticated bool
}

// Anonymous returns the unauthenticated identity.
func Anonymous() Identity {
	return Identity{}
}

// NewAuthenticated returns an identity for a verified account.
func NewAuthenticated(id int64, username, credential string) Identity {
	return Identity{
		id:            id,
		username:      username,
		credential:    credential,
		authenticated: true,
	}
}

// Authenticated reports whether the identity belongs to a verified account.
func (i Identity) Authenticated() bool { return i.authenticated }

// ID returns the account id. Zero for anonymous identities.
func (i Identity) ID() int64 { return i.id }

// Username returns the account's username. Empty for anonymous identities.
func (i Identity) Username() string { return i.username }

// Credential returns the raw credential the request presented. Empty for
// anonymous identities.
func (i Identity) Credential() string { return i.credential }
