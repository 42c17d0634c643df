package middleware

import (
	"context"
	"net/http"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/session"
)

// InjectSession stores the session associated with the *http.Request in *http.Request.Context.
//
// If store is nil, NoopAdapter returns and this middleware does nothing.
func InjectSession(store session.SessionStorer) Adapter {
	if store == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, _ := store.GetSession(r)
			ctx := context.WithValue(r.Context(), urbanfix.SessionKey, s)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// SessionFromContext pulls the session InjectSession stored, if present.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	s, ok := ctx.Value(urbanfix.SessionKey).(session.Session)
	return s, ok
}
