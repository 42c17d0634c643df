package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/auth"
	"github.com/urbanfix/urbanfix/http/middleware"
)

const testSigningKey = "8e66d89372c1e23efcc2cea24e0d7d1c"

func testUserStorer(users ...urbanfix.User) middleware.UserStorer {
	return func(username string) (urbanfix.User, error) {
		for _, u := range users {
			if u.Username == username {
				return u, nil
			}
		}

		return urbanfix.User{}, fmt.Errorf("%w: user %q", urbanfix.ErrNotExist, username)
	}
}

func TestRequireRole(t *testing.T) {
	// Arrange
	svc, err := auth.NewService(auth.Config{SigningKey: testSigningKey})
	require.Nil(t, err)

	staleSvc, err := auth.NewService(auth.Config{SigningKey: testSigningKey, SessionDuration: -time.Minute})
	require.Nil(t, err)

	otherSvc, err := auth.NewService(auth.Config{SigningKey: "4d757374616e67"})
	require.Nil(t, err)

	admin := urbanfix.User{Username: "root", Role: urbanfix.RoleAdmin, Validated: true}
	officer := urbanfix.User{Username: "officer", Role: urbanfix.RoleAuthority, Validated: true}
	pending := urbanfix.User{Username: "pending", Role: urbanfix.RoleUser, Validated: false}
	ghost := urbanfix.User{Username: "ghost", Role: urbanfix.RoleUser, Validated: true}

	storer := testUserStorer(admin, officer, pending)

	issue := func(s *auth.Service, u urbanfix.User) string {
		credential, err := s.Issue(u)
		require.Nil(t, err)
		return credential
	}

	tcs := []struct {
		name   string
		header string
		reason middleware.DenyReason
	}{
		{"No-Header", "", middleware.DenyNoCredential},
		{"Not-Bearer", "Basic cm9vdDpodW50ZXIy", middleware.DenyNoCredential},
		{"Garbage-Token", "Bearer not.a.token", middleware.DenyNoCredential},
		{"Expired-Token", "Bearer " + issue(staleSvc, admin), middleware.DenyNoCredential},
		{"Wrong-Key", "Bearer " + issue(otherSvc, admin), middleware.DenyNoCredential},
		{"Unknown-User", "Bearer " + issue(svc, ghost), middleware.DenyNoCredential},
		{"Unvalidated-User", "Bearer " + issue(svc, pending), middleware.DenyNoCredential},
		{"Insufficient-Role", "Bearer " + issue(svc, officer), middleware.DenyForbidden},
		{"Sufficient-Role", "Bearer " + issue(svc, admin), middleware.DenyNone},
	}

	guard := middleware.RequireRole(svc, storer, urbanfix.RoleAdmin)
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

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

func TestRequireRoleNilDeps(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	// Act + Assert
	v := middleware.RequireRole(nil, nil, urbanfix.RoleUser)(r)
	require.Equal(t, middleware.DenyNoCredential, v.Reason)
}

func TestRequireAuthed(t *testing.T) {
	// Arrange
	svc, err := auth.NewService(auth.Config{SigningKey: testSigningKey})
	require.Nil(t, err)

	citizen := urbanfix.User{Username: "dana", Role: urbanfix.RoleUser, Validated: true}
	credential, err := svc.Issue(citizen)
	require.Nil(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	r.Header.Set("Authorization", "Bearer "+credential)

	// Act
	v := middleware.RequireAuthed(svc, testUserStorer(citizen))(r)

	// Assert
	require.True(t, v.Allowed())
	require.NotNil(t, v.User)
	require.Equal(t, citizen.Username, v.User.Username)
}
