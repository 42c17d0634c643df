package middleware

import (
	"net/http"
	"strings"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/auth"
)

// A UserStorer retrieves the live User record for a username.
//
// An absent User returns an error wrapping urbanfix.ErrNotExist.
type UserStorer func(username string) (urbanfix.User, error)

// RequireRole constructs a Guard enforcing the bearer-token strategy:
// extract the credential from the "Authorization" header, verify it,
// then re-check the live User record before comparing roles.
//
// The live re-check is deliberate: the role claim embedded in the token
// is advisory only, since a role may have been changed or revoked after
// the token was issued.
//
// If tokens or storer is nil, the Guard denies everything.
func RequireRole(tokens auth.TokenVerifier, storer UserStorer, min urbanfix.Role) Guard {
	return func(r *http.Request) Verdict {
		if tokens == nil || storer == nil {
			return Deny(DenyNoCredential)
		}

		claims, err := tokens.Verify(bearerCredential(r.Header))
		if err != nil {
			return Deny(DenyNoCredential)
		}

		user, err := storer(claims.Username)
		if err != nil {
			return Deny(DenyNoCredential)
		}

		if !user.HasAccess() {
			return Deny(DenyNoCredential)
		}

		if !user.Role.Meets(min) {
			return Deny(DenyForbidden)
		}

		return Allow(&user)
	}
}

// RequireAuthed constructs a Guard requiring any valid, live identity,
// with no role floor beyond holding an account.
func RequireAuthed(tokens auth.TokenVerifier, storer UserStorer) Guard {
	return RequireRole(tokens, storer, urbanfix.RoleUser)
}

// bearerCredential pulls the token out of an "Authorization: Bearer <token>" header.
// Anything else returns "".
func bearerCredential(header http.Header) string {
	val := header.Get("Authorization")
	if !strings.HasPrefix(val, "Bearer ") {
		return ""
	}

	return strings.TrimPrefix(val, "Bearer ")
}
