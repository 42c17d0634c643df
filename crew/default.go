package crew

import (
	"net/http"
	"os"
	"time"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/resp"
	"github.com/urbanfix/urbanfix/logger"
	"github.com/urbanfix/urbanfix/postgres"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Database defaults
	dbHostEnvVar     = "DATABASE_HOST"
	defaultDBHost    = "localhost"
	dbNameEnvVar     = "DATABASE_NAME"
	dbPassEnvVar     = "DATABASE_PASSWORD"
	dbPortEnvVar     = "DATABASE_PORT"
	defaultDBPort    = "5432"
	dbSSLModeEnvVar  = "DATABASE_SSLMODE"
	defaultDBSSLMode = "prefer"
	dbURLEnvVar      = "DATABASE_URL"
	dbUserEnvVar     = "DATABASE_USER"

	// Web server defaults
	DefaultHost               = "localhost"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	DefaultServerReadTimeout  = 5 * time.Second
	DefaultServerIdleTimeout  = 120 * time.Second
	DefaultServerWriteTimeout = 5 * time.Second

	// Auth defaults
	SigningKeyEnvVar         = "SESSION_SIGNING_KEY"
	SessionAuthKeyEnvVar     = "SESSION_AUTH_KEY"
	SessionEncryptKeyEnvVar  = "SESSION_ENCRYPTION_KEY"
	GoogleClientIDEnvVar     = "GOOGLE_CLIENT_ID"
	GoogleClientSecretEnvVar = "GOOGLE_CLIENT_SECRET"

	// Test defaults
	dbTestHostEnvVar     = "DATABASE_TEST_HOST"
	defaultDBTestHost    = "localhost"
	dbTestNameEnvVar     = "DATABASE_TEST_NAME"
	dbTestPassEnvVar     = "DATABASE_TEST_PASSWORD"
	dbTestPortEnvVar     = "DATABASE_TEST_PORT"
	defaultDBTestPort    = "5432"
	dbTestURLEnvVar      = "DATABASE_TEST_URL"
	dbTestUserEnvVar     = "DATABASE_TEST_USER"
	dbTestSSLModeEnvVar  = "DATABASE_TEST_SSLMODE"
	defaultDBTestSSLMode = "prefer"
)

var defaultBaseURL = "http://" + DefaultHost + DefaultPort

// NewPostgresConfig constructs a *postgres.CxnConfig appropriate to the given environment.
// Confer the DATABASE env vars for usage.
func NewPostgresConfig(env urbanfix.Environment) *postgres.CxnConfig {
	if env.IsTesting() {
		return &postgres.CxnConfig{
			IsTestDB: true,
			URL:      os.Getenv(dbTestURLEnvVar),
			Host:     urbanfix.EnvVarOrString(dbTestHostEnvVar, defaultDBTestHost),
			Port:     urbanfix.EnvVarOrString(dbTestPortEnvVar, defaultDBTestPort),
			Name:     os.Getenv(dbTestNameEnvVar),
			User:     os.Getenv(dbTestUserEnvVar),
			Password: os.Getenv(dbTestPassEnvVar),
			SSLMode:  urbanfix.EnvVarOrString(dbTestSSLModeEnvVar, defaultDBTestSSLMode),
		}
	}

	return &postgres.CxnConfig{
		URL:      os.Getenv(dbURLEnvVar),
		Host:     urbanfix.EnvVarOrString(dbHostEnvVar, defaultDBHost),
		Port:     urbanfix.EnvVarOrString(dbPortEnvVar, defaultDBPort),
		Name:     os.Getenv(dbNameEnvVar),
		User:     os.Getenv(dbUserEnvVar),
		Password: os.Getenv(dbPassEnvVar),
		SSLMode:  urbanfix.EnvVarOrString(dbSSLModeEnvVar, defaultDBSSLMode),
	}
}

// defaultOpts is the baseline configuration every Crew starts from,
// read from the environment.
func defaultOpts() []Option {
	env := urbanfix.EnvVarOrEnv(environmentEnvVar, urbanfix.Development)
	l := logger.New(logger.WithEnv(env.String()))
	u := urbanfix.EnvVarOrURL(BaseURLEnvVar, defaultBaseURL)

	return []Option{
		WithEnv(env.String()),
		WithLogger(l),
		WithURL(u),
		WithResponder(resp.NewResponder(resp.WithLogger(l), resp.WithRootUrl(u.String()))),
	}
}

func defaultServer(port string) *http.Server {
	if port == "" {
		port = urbanfix.EnvVarOrString(portEnvVar, DefaultPort)
	}

	if port[0] != ':' {
		port = ":" + port
	}

	return &http.Server{
		Addr:         port,
		ReadTimeout:  DefaultServerReadTimeout,
		IdleTimeout:  DefaultServerIdleTimeout,
		WriteTimeout: DefaultServerWriteTimeout,
	}
}
