package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/urbanfix/urbanfix/http/middleware"
)

func TestVisitorFetch(t *testing.T) {
	t.Run("Serial", func(t *testing.T) {
		// Arrange
		vs := middleware.NewVisitors()

		// Act
		v1 := vs.Fetch("127.0.0.1")
		time.Sleep(1 * time.Millisecond)
		v2 := vs.Fetch("127.0.0.1")

		// Assert
		require.Equal(t, v1.Limiter, v2.Limiter)
		require.True(t, v1.LastSeen.Before(v2.LastSeen))
	})

	t.Run("Concurrent", func(t *testing.T) {
		// Arrange
		var wg sync.WaitGroup
		vs := middleware.NewVisitors()
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// Act
				require.NotPanics(t, func() { vs.Fetch("127.0.0.1") })
			}()
		}

		wg.Wait()
	})
}

func TestRateLimit(t *testing.T) {
	// Arrange
	h := middleware.RateLimit(middleware.NewVisitors())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }),
	)

	newReq := func() *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
		r.Header.Set("X-Forwarded-For", "1.1.1.1")
		return r
	}

	// Act: drain the burst allowance
	var tooMany bool
	for i := 0; i < 30; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, newReq())
		if w.Code == http.StatusTooManyRequests {
			tooMany = true
			break
		}
	}

	// Assert
	require.True(t, tooMany)

	// Act: a different address has its own bucket
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	r.Header.Set("X-Forwarded-For", "8.8.8.8")
	h.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
}
