package middleware

import (
	"net/http"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/session"
)

// SessionUser constructs a Guard enforcing the legacy cookie strategy:
// resolve the server-side session for the request's "sessionId" cookie,
// then re-check the live User record before comparing roles.
//
// SessionUser and RequireRole are interchangeable strategies for a policy;
// they are never blended on a single route.
//
// If store or storer is nil, the Guard denies everything.
func SessionUser(store session.SessionStorer, storer UserStorer, min urbanfix.Role) Guard {
	return func(r *http.Request) Verdict {
		if store == nil || storer == nil {
			return Deny(DenyNoCredential)
		}

		s, err := store.GetSession(r)
		if err != nil {
			return Deny(DenyNoCredential)
		}

		username, err := s.Username()
		if err != nil {
			return Deny(DenyNoCredential)
		}

		user, err := storer(username)
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
