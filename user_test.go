package urbanfix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urbanfix/urbanfix"
)

func TestUserHasAccess(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    urbanfix.User
		expected bool
	}{
		{"Zero-Value", urbanfix.User{}, false},
		{"Unvalidated", urbanfix.User{Role: urbanfix.RoleUser}, false},
		{"Bad-Role", urbanfix.User{Role: urbanfix.Role("overlord"), Validated: true}, false},
		{"Validated-User", urbanfix.User{Role: urbanfix.RoleUser, Validated: true}, true},
		{"Validated-Admin", urbanfix.User{Role: urbanfix.RoleAdmin, Validated: true}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.input.HasAccess())
		})
	}
}

func TestUserHomePath(t *testing.T) {
	// Arrange
	active := urbanfix.User{Role: urbanfix.RoleUser, Validated: true}
	inactive := urbanfix.User{Role: urbanfix.RoleUser}

	// Act + Assert
	require.Equal(t, "/dashboard", active.HomePath())
	require.Equal(t, "/login", inactive.HomePath())
}
