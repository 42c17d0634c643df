package auth

import (
	"golang.org/x/oauth2"
	goauth2 "google.golang.org/api/oauth2/v2"

	"github.com/urbanfix/urbanfix"
)

// A TokenIssuer mints a signed, time-bounded credential for the provided User.
type TokenIssuer interface {
	Issue(u urbanfix.User) (string, error)
}

// A TokenVerifier validates a credential presented by a client.
//
// Verification failure is a normal, expected outcome on every unauthenticated
// or stale request; implementations must return an error wrapping ErrNotValid
// rather than panic on untrusted input.
type TokenVerifier interface {
	Verify(credential string) (*SessionClaims, error)
}

// The AuthService composes issuing and verifying session tokens
// with fetching a Google account for OAuth sign-in.
type AuthService interface {
	TokenIssuer
	TokenVerifier
	FetchUser(token *oauth2.Token) (*goauth2.Userinfo, error)
}
