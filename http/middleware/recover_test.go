package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/middleware"
)

func TestRecoverPanic(t *testing.T) {
	// Arrange
	h := middleware.RecoverPanic(urbanfix.Development, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("kaboom") }),
	)

	// Act
	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
