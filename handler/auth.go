package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	goauth2 "google.golang.org/api/oauth2/v2"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/auth"
	"github.com/urbanfix/urbanfix/http/middleware"
	"github.com/urbanfix/urbanfix/http/req"
	"github.com/urbanfix/urbanfix/http/resp"
	"github.com/urbanfix/urbanfix/http/session"
)

const oauthStateCookie = "oauthState"

// A GoogleAuthenticator runs the OAuth consent flow for Google sign-in.
type GoogleAuthenticator interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchUser(token *oauth2.Token) (*goauth2.Userinfo, error)
}

// An AuthHandler owns signup, login and identity endpoints.
//
// Bearer login mints a signed token the client presents on API calls;
// the cookie endpoints serve the legacy flow backed by server-side sessions.
type AuthHandler struct {
	d        *resp.Responder
	p        *req.Parser
	tokens   auth.TokenIssuer
	google   GoogleAuthenticator
	users    UserStorer
	sessions session.SessionStorer
}

func NewAuthHandler(
	d *resp.Responder,
	p *req.Parser,
	tokens auth.TokenIssuer,
	google GoogleAuthenticator,
	users UserStorer,
	sessions session.SessionStorer,
) *AuthHandler {
	return &AuthHandler{d: d, p: p, tokens: tokens, google: google, users: users, sessions: sessions}
}

type signupBody struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginBody struct {
	Handle   string `json:"handle" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionData struct {
	Token string        `json:"token,omitempty"`
	User  urbanfix.User `json:"user"`
}

// Signup registers a new account and immediately issues a session token.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body signupBody
	if err := h.p.ParseBody(r.Body, &body); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		respondErr(h.d, w, r, fmt.Errorf("%w: hashing password: %s", urbanfix.ErrUnexpected, err))
		return
	}

	user := urbanfix.User{
		Username:  body.Username,
		Email:     body.Email,
		Password:  hashed,
		Role:      urbanfix.RoleUser,
		Validated: true,
	}
	if err := h.users.Create(&user); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Code(http.StatusCreated), resp.Data(sessionData{Token: token, User: user}))
}

// Login authenticates credentials and issues a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	user, ok := h.checkCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(sessionData{Token: token, User: user}))
}

// CurrentUser returns the identity the route's guard resolved.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		h.d.Json(w, r,
			resp.Code(http.StatusUnauthorized),
			resp.ErrCode("NOT_AUTHENTICATED", "Not authenticated"),
		)
		return
	}

	h.d.Json(w, r, resp.Data(sessionData{User: user}))
}

// CookieLogin authenticates credentials and registers a server-side session
// behind the legacy "sessionId" cookie.
func (h *AuthHandler) CookieLogin(w http.ResponseWriter, r *http.Request) {
	user, ok := h.checkCredentials(w, r)
	if !ok {
		return
	}

	s, err := h.sessions.GetSession(r)
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	if err := s.RegisterUser(w, r, user.Username); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(sessionData{User: user}))
}

// CookieLogout tears down the server-side session.
func (h *AuthHandler) CookieLogout(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.GetSession(r)
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	if err := s.DeregisterUser(w, r); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	if err := s.Delete(w, r); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(nil))
}

// GoogleRedirect begins the Google OAuth consent flow.
func (h *AuthHandler) GoogleRedirect(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
	})

	h.d.Redirect(w, r, resp.Url(h.google.AuthCodeURL(state)))
}

// GoogleCallback completes the Google OAuth flow:
// the account's email is matched to a user record, a session is registered,
// and the browser lands on the user's home page.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		h.d.Json(w, r,
			resp.Code(http.StatusUnauthorized),
			resp.ErrCode(codeBadCredentials, "OAuth state mismatch"),
		)
		return
	}

	token, err := h.google.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		h.d.Json(w, r,
			resp.Code(http.StatusUnauthorized),
			resp.ErrCode(codeBadCredentials, "OAuth exchange failed"),
		)
		return
	}

	account, err := h.google.FetchUser(token)
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	user, err := h.users.FindByEmailOrUsername(account.Email)
	if errors.Is(err, urbanfix.ErrNotExist) {
		user = urbanfix.User{
			Username:  account.Email,
			Email:     account.Email,
			Password:  []byte{},
			Role:      urbanfix.RoleUser,
			Validated: true,
		}
		err = h.users.Create(&user)
	}
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	s, err := h.sessions.GetSession(r)
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	if err := s.RegisterUser(w, r, user.Username); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Redirect(w, r, resp.Url(user.HomePath()))
}

// checkCredentials parses a login body and verifies it against the user store.
// On failure it writes the refusal and reports false.
func (h *AuthHandler) checkCredentials(w http.ResponseWriter, r *http.Request) (urbanfix.User, bool) {
	var body loginBody
	if err := h.p.ParseBody(r.Body, &body); err != nil {
		respondErr(h.d, w, r, err)
		return urbanfix.User{}, false
	}

	user, err := h.users.FindByEmailOrUsername(body.Handle)
	if errors.Is(err, urbanfix.ErrNotExist) {
		// Same refusal as a bad password so handles can't be enumerated.
		h.d.Json(w, r,
			resp.Code(http.StatusUnauthorized),
			resp.ErrCode(codeBadCredentials, "Invalid credentials"),
		)
		return urbanfix.User{}, false
	}
	if err != nil {
		respondErr(h.d, w, r, err)
		return urbanfix.User{}, false
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(body.Password)); err != nil {
		h.d.Json(w, r,
			resp.Code(http.StatusUnauthorized),
			resp.ErrCode(codeBadCredentials, "Invalid credentials"),
		)
		return urbanfix.User{}, false
	}

	if !user.HasAccess() {
		h.d.Json(w, r,
			resp.Code(http.StatusForbidden),
			resp.ErrCode("FORBIDDEN", "Account is not active"),
		)
		return urbanfix.User{}, false
	}

	return user, true
}
