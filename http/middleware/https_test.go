package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/middleware"
)

func TestForceHTTPS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	t.Run("Development-Passes", func(t *testing.T) {
		// Arrange
		h := middleware.ForceHTTPS(urbanfix.Development)(next)

		// Act
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://example.com/map", nil))

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Production-Redirects", func(t *testing.T) {
		// Arrange
		h := middleware.ForceHTTPS(urbanfix.Production)(next)

		// Act
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://example.com/map", nil))

		// Assert
		require.Equal(t, http.StatusPermanentRedirect, w.Code)
		require.Equal(t, "https://example.com/map", w.Header().Get("Location"))
	})

	t.Run("Forwarded-Proto-Passes", func(t *testing.T) {
		// Arrange
		h := middleware.ForceHTTPS(urbanfix.Production)(next)
		r := httptest.NewRequest(http.MethodGet, "http://example.com/map", nil)
		r.Header.Set("X-Forwarded-Proto", "https")

		// Act
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
	})
}
