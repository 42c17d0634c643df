package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urbanfix/urbanfix/http/middleware"
	"github.com/urbanfix/urbanfix/http/session"
)

func TestInjectSession(t *testing.T) {
	// Arrange
	h := middleware.InjectSession(session.NewStub("dana"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := middleware.SessionFromContext(r.Context())
			require.True(t, ok)

			username, err := s.Username()
			require.Nil(t, err)
			require.Equal(t, "dana", username)
		}),
	)

	// Act
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestInjectSessionNilStore(t *testing.T) {
	// Arrange
	h := middleware.InjectSession(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := middleware.SessionFromContext(r.Context())
		require.False(t, ok)
	}))

	// Act
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
