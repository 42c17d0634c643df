package router

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urbanfix/urbanfix"
)

func TestNewPattern(t *testing.T) {
	// Act + Assert
	for _, raw := range []string{"", "api/reports", "/api/:", "/api/:id/x/:id"} {
		_, err := NewPattern(raw)
		require.ErrorIs(t, err, urbanfix.ErrNotValid, raw)
	}

	p, err := NewPattern("/api/users/:id/role")
	require.Nil(t, err)
	require.Equal(t, "/api/users/:id/role", p.String())
}

func TestPatternMatch(t *testing.T) {
	tcs := []struct {
		name     string
		pattern  string
		path     string
		expected Params
		ok       bool
	}{
		{"literal", "/api/reports", "/api/reports", nil, true},
		{"trailing slash", "/api/reports", "/api/reports/", nil, true},
		{"literal mismatch", "/api/reports", "/api/users", nil, false},
		{"segment count differs", "/api/reports", "/api/reports/42", nil, false},
		{"capture binds", "/api/reports/:id", "/api/reports/42", Params{"id": "42"}, true},
		{"two captures", "/api/:resource/:id", "/api/reports/42", Params{"resource": "reports", "id": "42"}, true},
		{"capture rejects reserved literal", "/api/reports/:id", "/api/reports/count", nil, false},
		{"literal matches reserved literal", "/api/reports/count", "/api/reports/count", nil, true},
		{"capture mid-pattern", "/api/users/:id/role", "/api/users/42/role", Params{"id": "42"}, true},
		{"capture mid-pattern literal mismatch", "/api/users/:id/role", "/api/users/42/email", nil, false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			p, err := NewPattern(tc.pattern)
			require.Nil(t, err)

			// Act
			params, ok := p.Match(tc.path)

			// Assert
			require.Equal(t, tc.ok, ok)
			if tc.expected != nil {
				require.Equal(t, tc.expected, params)
			}
		})
	}
}
