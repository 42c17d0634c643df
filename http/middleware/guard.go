package middleware

import (
	"context"
	"net/http"

	"github.com/urbanfix/urbanfix"
)

// A DenyReason distinguishes why a Guard halted a request.
//
// The dispatcher picks the response status from it:
// DenyNoCredential renders 401, DenyForbidden renders 403.
type DenyReason int

const (
	DenyNone DenyReason = iota

	// DenyNoCredential covers a missing, malformed, expired
	// or otherwise unverifiable credential.
	DenyNoCredential

	// DenyForbidden covers a verified identity whose live role
	// does not satisfy the minimum the policy requires.
	DenyForbidden
)

// A Verdict is the tagged outcome of a Guard:
// either the request may continue, carrying the resolved User,
// or it halts with a DenyReason.
type Verdict struct {
	User   *urbanfix.User
	Reason DenyReason
}

// Allow signals the request may proceed, attaching the resolved User when one exists.
func Allow(u *urbanfix.User) Verdict { return Verdict{User: u} }

// Deny signals the request must halt for the given reason.
func Deny(reason DenyReason) Verdict { return Verdict{Reason: reason} }

// Allowed asserts whether the Verdict lets the request continue.
func (v Verdict) Allowed() bool { return v.Reason == DenyNone }

// A Guard decides whether a request may proceed past an authorization checkpoint.
//
// A Guard never writes a response and never panics on untrusted input;
// it only returns a Verdict for the runner to act on.
type Guard func(r *http.Request) Verdict

// RunGuards executes guards strictly in order, halting at the first deny.
//
// On each allow carrying a User, the User is attached to the request context
// under urbanfix.CurrentUserKey, so later guards and the handler observe
// the resolved identity. The possibly-cloned request returns alongside
// the final Verdict.
func RunGuards(r *http.Request, guards ...Guard) (*http.Request, Verdict) {
	for _, g := range guards {
		v := g(r)
		if !v.Allowed() {
			return r, v
		}

		if v.User != nil {
			ctx := context.WithValue(r.Context(), urbanfix.CurrentUserKey, *v.User)
			r = r.Clone(ctx)
		}
	}

	return r, Allow(nil)
}

// CurrentUser retrieves the User a Guard attached to the request context,
// if one did.
func CurrentUser(ctx context.Context) (urbanfix.User, bool) {
	u, ok := ctx.Value(urbanfix.CurrentUserKey).(urbanfix.User)
	return u, ok
}
