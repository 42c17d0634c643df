package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/http/middleware"
	"github.com/urbanfix/urbanfix/http/session"
)

func TestSessionUser(t *testing.T) {
	// Arrange
	admin := urbanfix.User{Username: "root", Role: urbanfix.RoleAdmin, Validated: true}
	citizen := urbanfix.User{Username: "dana", Role: urbanfix.RoleUser, Validated: true}
	pending := urbanfix.User{Username: "pending", Role: urbanfix.RoleUser, Validated: false}
	storer := testUserStorer(admin, citizen, pending)

	tcs := []struct {
		name   string
		store  session.SessionStorer
		reason middleware.DenyReason
	}{
		{"No-Registered-User", session.NewStub(""), middleware.DenyNoCredential},
		{"Unknown-User", session.NewStub("ghost"), middleware.DenyNoCredential},
		{"Unvalidated-User", session.NewStub("pending"), middleware.DenyNoCredential},
		{"Insufficient-Role", session.NewStub("dana"), middleware.DenyForbidden},
		{"Sufficient-Role", session.NewStub("root"), middleware.DenyNone},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			guard := middleware.SessionUser(tc.store, storer, urbanfix.RoleAdmin)
			r := httptest.NewRequest(http.MethodGet, "/admin", nil)

			// Act
			v := guard(r)

			// Assert
			require.Equal(t, tc.reason, v.Reason)
			if tc.reason == middleware.DenyNone {
				require.NotNil(t, v.User)
				require.Equal(t, admin.Username, v.User.Username)
			}
		})
	}
}

func TestSessionUserNilDeps(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	// Act + Assert
	v := middleware.SessionUser(nil, nil, urbanfix.RoleUser)(r)
	require.Equal(t, middleware.DenyNoCredential, v.Reason)
}
