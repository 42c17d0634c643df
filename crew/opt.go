package crew

import (
	"context"
	"net/http"
	"net/url"

	"gorm.io/gorm"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/resp"
	"github.com/urbanfix/urbanfix/http/router"
	"github.com/urbanfix/urbanfix/http/session"
	"github.com/urbanfix/urbanfix/logger"
)

// An Option configures the *Crew under construction,
// returning an error if unable to.
type Option func(c *Crew) error

// WithContext exposes the provided context.Context to the urbanfix app.
func WithContext(ctx context.Context) Option {
	return func(c *Crew) error {
		c.ctx = ctx
		return nil
	}
}

// WithDB exposes the provided *gorm.DB to the urbanfix app.
//
// WithDB assumes a connection has already been established.
func WithDB(db *gorm.DB) Option {
	return func(c *Crew) error {
		c.db = db
		return nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// falling back to the ENVIRONMENT environment variable,
// and Development when both fail.
func WithEnv(envVar string) Option {
	return func(c *Crew) error {
		e := urbanfix.Environment(envVar)
		if err := e.Valid(); err == nil {
			c.env = e
			return nil
		}

		c.env = urbanfix.EnvVarOrEnv("ENVIRONMENT", urbanfix.Development)
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the urbanfix app.
func WithLogger(l logger.Logger) Option {
	return func(c *Crew) error {
		c.l = l
		return nil
	}
}

// WithResponder exposes the *resp.Responder to the urbanfix app.
func WithResponder(d *resp.Responder) Option {
	return func(c *Crew) error {
		c.Responder = d
		return nil
	}
}

// WithRouter exposes the *router.Router to the urbanfix app.
func WithRouter(ro *router.Router) Option {
	return func(c *Crew) error {
		c.Router = ro
		return nil
	}
}

// WithSessionStore exposes the session.SessionStorer to the urbanfix app.
func WithSessionStore(store session.SessionStorer) Option {
	return func(c *Crew) error {
		c.sessions = store
		return nil
	}
}

// WithServer exposes the *http.Server to the urbanfix app.
func WithServer(s *http.Server) Option {
	return func(c *Crew) error {
		c.srv = s
		return nil
	}
}

// WithURL sets the root URL the urbanfix app serves from.
func WithURL(u *url.URL) Option {
	return func(c *Crew) error {
		c.url = u
		return nil
	}
}
