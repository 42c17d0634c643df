package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
)

const defaultSessionDuration = 24 * time.Hour

// Service is an implementation of the AuthService interface defined in this package.
//
// Service is stateless once constructed and safe for concurrent use.
type Service struct {
	config *oauth2.Config
	key    []byte
	parser *jwt.Parser
	ttl    time.Duration
	now    func() time.Time
}

// A Config carries the values required to construct a Service.
//
// SigningKey must be set; a Service cannot be constructed without one,
// making key misconfiguration fatal at startup rather than per-request.
// GoogleClientID and GoogleClientSecret are only required
// when Google sign-in is exercised.
type Config struct {
	SigningKey         string
	SessionDuration    time.Duration
	GoogleClientID     string
	GoogleClientSecret string
}

func NewService(cfg Config) (*Service, error) {
	if cfg.SigningKey == "" {
		return nil, fmt.Errorf(`%w: signing key cannot be ""`, ErrNotValid)
	}

	ttl := cfg.SessionDuration
	if ttl == 0 {
		ttl = defaultSessionDuration
	}

	return &Service{
		config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Scopes:       []string{goauth2.UserinfoEmailScope},
			Endpoint:     google.Endpoint,
		},
		key:    []byte(cfg.SigningKey),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}
