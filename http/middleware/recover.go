package middleware

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/logger"
)

// RecoverPanic converts a panicking handler into a 500 response,
// so no request ever exits the dispatch pipeline without a terminating response.
//
// The panic is logged with the request attached; outside development
// it is additionally reported to Sentry.
func RecoverPanic(env urbanfix.Environment, ls logger.Logger) Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				if ls != nil {
					err := fmt.Errorf("%w: handler panic: %v", urbanfix.ErrUnexpected, rec)
					ls.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
				}

				if !env.IsDevelopment() {
					sentry.CurrentHub().Recover(rec)
				}

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			handler.ServeHTTP(w, r)
		})
	}
}
