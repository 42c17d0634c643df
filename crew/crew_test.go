package crew_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/crew"
)

func TestNew(t *testing.T) {
	// Act
	c, err := crew.New(crew.WithEnv(urbanfix.Testing.String()))

	// Assert
	require.Nil(t, err)
	require.Equal(t, urbanfix.Testing, c.EmitEnv())
	require.NotNil(t, c.EmitLogger())
	require.NotNil(t, c.EmitURL())
	require.NotNil(t, c.Router)
	require.NotNil(t, c.Responder)
}

func TestNewOverwritesDefaults(t *testing.T) {
	// Arrange
	u, err := url.ParseRequestURI("https://urbanfix.example.com")
	require.Nil(t, err)

	srv := &http.Server{Addr: ":9999"}

	// Act
	c, err := crew.New(
		crew.WithEnv(urbanfix.Staging.String()),
		crew.WithURL(u),
		crew.WithServer(srv),
	)

	// Assert
	require.Nil(t, err)
	require.Equal(t, urbanfix.Staging, c.EmitEnv())
	require.Equal(t, u, c.EmitURL())
}

func TestNewBadEnvFallsBack(t *testing.T) {
	// Act
	c, err := crew.New(crew.WithEnv("NOT-AN-ENV"))

	// Assert
	require.Nil(t, err)
	require.Nil(t, c.EmitEnv().Valid())
}
