package resp

import (
	"net/url"

	"github.com/urbanfix/urbanfix/logger"
)

// A ResponderOptFn is a functional option configuring a Responder when constructing a new one.
type ResponderOptFn func(*Responder)

// WithLogger sets the logger.Logger the Responder logs failure states with.
func WithLogger(l logger.Logger) ResponderOptFn {
	return func(d *Responder) {
		d.logger = l
	}
}

// WithRootUrl sets the fallback redirect destination.
func WithRootUrl(u string) ResponderOptFn {
	return func(d *Responder) {
		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			return
		}

		d.rootUrl = parsed
	}
}
