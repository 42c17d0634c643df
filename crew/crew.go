package crew

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"gorm.io/gorm"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/resp"
	"github.com/urbanfix/urbanfix/http/router"
	"github.com/urbanfix/urbanfix/http/session"
	"github.com/urbanfix/urbanfix/logger"
)

// A Crew manages and exposes all components of an urbanfix app to one another.
type Crew struct {
	*resp.Responder
	*router.Router

	ctx      context.Context
	db       *gorm.DB
	env      urbanfix.Environment
	l        logger.Logger
	sessions session.SessionStorer
	srv      *http.Server
	url      *url.URL
}

// New constructs a Crew from the provided options.
// Default options run first, so options passed into New overwrite
// default configuration.
func New(opts ...Option) (*Crew, error) {
	c := new(Crew)
	for _, opt := range append(defaultOpts(), opts...) {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("%w: %s", urbanfix.ErrBadConfig, err)
		}
	}

	if c.srv == nil {
		c.srv = defaultServer(c.url.Port())
	}

	if c.Router == nil {
		c.Router = router.New(c.env, c.Responder, c.l)
	}
	c.srv.Handler = c.Router

	return c, nil
}

func (c *Crew) EmitDB() *gorm.DB                        { return c.db }
func (c *Crew) EmitEnv() urbanfix.Environment           { return c.env }
func (c *Crew) EmitLogger() logger.Logger               { return c.l }
func (c *Crew) EmitSessionStore() session.SessionStorer { return c.sessions }
func (c *Crew) EmitURL() *url.URL                       { return c.url }

// Embark begins the web server.
//
// These, and (*Crew).Shutdown, stop Embark:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (c *Crew) Embark() error {
	var cancel context.CancelFunc
	c.ctx, cancel = context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		s := <-ch
		c.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
		cancel()
	}()

	go func() {
		c.l.Info(fmt.Sprintf("running web server at %s", c.srv.Addr), nil)
		if err := c.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			c.l.Error(err.Error(), nil)
		}
	}()

	<-c.ctx.Done()
	return c.Shutdown()
}

// Shutdown drains in-flight requests and stops the web server.
func (c *Crew) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c.l.Info("shutting down web server", nil)
	err := c.srv.Shutdown(shutdownCtx)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	c.l.Info("web server shutdown successfully", nil)
	return nil
}
