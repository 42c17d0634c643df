package geo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urbanfix/urbanfix/geo"
)

func TestNominatimLocate(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reverse", r.URL.Path)
		require.NotEmpty(t, r.URL.Query().Get("lat"))
		require.Equal(t, "json", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"address":{"town":"Turda","county":"Cluj"}}`))
	}))
	defer srv.Close()

	l := geo.NewNominatimLocator(srv.URL)

	// Act
	place, err := l.Locate(context.Background(), 46.57, 23.78)

	// Assert
	require.Nil(t, err)
	require.Equal(t, geo.Place{Locality: "Turda", County: "Cluj"}, place)
}

func TestNominatimLocateUnresolved(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"address":{}}`))
	}))
	defer srv.Close()

	l := geo.NewNominatimLocator(srv.URL)

	// Act
	place, err := l.Locate(context.Background(), 0, 0)

	// Assert
	require.Nil(t, err)
	require.Equal(t, geo.Place{Locality: geo.UnknownPlace, County: geo.UnknownPlace}, place)
}

func TestNominatimLocateErrorStatus(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	l := geo.NewNominatimLocator(srv.URL)

	// Act
	_, err := l.Locate(context.Background(), 46.57, 23.78)

	// Assert
	require.NotNil(t, err)
}
