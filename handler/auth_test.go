package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/auth"
	"github.com/urbanfix/urbanfix/handler"
	"github.com/urbanfix/urbanfix/http/session"
)

const signingKey = "6fb9977b3c7a5ccf0d5634de38b3e9e1"

func testTokens(t *testing.T) *auth.Service {
	t.Helper()

	svc, err := auth.NewService(auth.Config{SigningKey: signingKey})
	require.Nil(t, err)
	return svc
}

func TestAuthSignup(t *testing.T) {
	// Arrange
	d, p := testResponder(t)

	var created *urbanfix.User
	users := fnUserStore{create: func(u *urbanfix.User) error {
		u.ID = 7
		created = u
		return nil
	}}

	h := handler.NewAuthHandler(d, p, testTokens(t), nil, users, session.NewStub(""))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"username":"ana.pop","email":"ana@example.com","password":"hunter2hunter2"}`))

	// Act
	h.Signup(w, r)

	// Assert
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	require.Equal(t, urbanfix.RoleUser, created.Role)
	require.True(t, created.Validated)
	require.Nil(t, bcrypt.CompareHashAndPassword(created.Password, []byte("hunter2hunter2")))
	require.Contains(t, w.Body.String(), `"token"`)
	require.NotContains(t, w.Body.String(), "hunter2hunter2")
}

func TestAuthSignupValidates(t *testing.T) {
	// Arrange
	d, p := testResponder(t)
	h := handler.NewAuthHandler(d, p, testTokens(t), nil, fnUserStore{}, session.NewStub(""))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"username":"ana.pop","email":"not-an-email","password":"short"}`))

	// Act
	h.Signup(w, r)

	// Assert
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, w).Error.Code)
}

func TestAuthLogin(t *testing.T) {
	// Arrange
	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.Nil(t, err)

	ana := urbanfix.User{
		Username: "ana.pop", Email: "ana@example.com",
		Password: hashed, Role: urbanfix.RoleUser, Validated: true,
	}
	users := fnUserStore{findHandle: func(handle string) (urbanfix.User, error) {
		if handle == "ana.pop" || handle == "ana@example.com" {
			return ana, nil
		}
		return urbanfix.User{}, urbanfix.ErrNotExist
	}}

	d, p := testResponder(t)
	h := handler.NewAuthHandler(d, p, testTokens(t), nil, users, session.NewStub(""))

	tcs := []struct {
		name string
		body string
		code int
	}{
		{"by username", `{"handle":"ana.pop","password":"hunter2hunter2"}`, http.StatusOK},
		{"by email", `{"handle":"ana@example.com","password":"hunter2hunter2"}`, http.StatusOK},
		{"wrong password", `{"handle":"ana.pop","password":"nope-nope"}`, http.StatusUnauthorized},
		{"unknown handle", `{"handle":"ghost","password":"hunter2hunter2"}`, http.StatusUnauthorized},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(tc.body))

			// Act
			h.Login(w, r)

			// Assert
			require.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusOK {
				require.Contains(t, w.Body.String(), `"token"`)
				return
			}

			require.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, w).Error.Code)
		})
	}
}

func TestAuthLoginInactiveAccount(t *testing.T) {
	// Arrange
	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.Nil(t, err)

	users := fnUserStore{findHandle: func(string) (urbanfix.User, error) {
		return urbanfix.User{Username: "ana.pop", Password: hashed, Role: urbanfix.RoleUser, Validated: false}, nil
	}}

	d, p := testResponder(t)
	h := handler.NewAuthHandler(d, p, testTokens(t), nil, users, session.NewStub(""))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/sessions",
		strings.NewReader(`{"handle":"ana.pop","password":"hunter2hunter2"}`))

	// Act
	h.Login(w, r)

	// Assert
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthCookieLogin(t *testing.T) {
	// Arrange
	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.Nil(t, err)

	users := fnUserStore{findHandle: func(string) (urbanfix.User, error) {
		return urbanfix.User{Username: "ana.pop", Password: hashed, Role: urbanfix.RoleUser, Validated: true}, nil
	}}

	store := session.NewStub("")
	d, p := testResponder(t)
	h := handler.NewAuthHandler(d, p, testTokens(t), nil, users, store)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"handle":"ana.pop","password":"hunter2hunter2"}`))

	// Act
	h.CookieLogin(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)

	s, err := store.GetSession(r)
	require.Nil(t, err)
	username, err := s.Username()
	require.Nil(t, err)
	require.Equal(t, "ana.pop", username)
}

func TestAuthCookieLogout(t *testing.T) {
	// Arrange
	store := session.NewStub("ana.pop")
	d, p := testResponder(t)
	h := handler.NewAuthHandler(d, p, testTokens(t), nil, fnUserStore{}, store)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/logout", nil)

	// Act
	h.CookieLogout(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)

	s, err := store.GetSession(r)
	require.Nil(t, err)
	_, err = s.Username()
	require.ErrorIs(t, err, session.ErrNoUser)
}

func TestAuthCurrentUser(t *testing.T) {
	// Arrange
	d, p := testResponder(t)
	h := handler.NewAuthHandler(d, p, testTokens(t), nil, fnUserStore{}, session.NewStub(""))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)

	// Act: no guard ran, so no user in context
	h.CurrentUser(w, r)

	// Assert
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
