package session

import (
	"net/http"

	gorilla "github.com/gorilla/sessions"
)

// keys used internal to specific implementations of different interfaces.
const (
	sessionName    = "sessionId"           // used by Service
	userSessionKey = sessionName + "-user" // used by Session
)

// The Sessionable wraps methods for adding values to, deleting, and getting
// values from a session associated with an *http.Request and saving those
// to the session store.
type Sessionable interface {
	Delete(w http.ResponseWriter, r *http.Request) error
	Get(key string) any
	ResetExpiry(w http.ResponseWriter, r *http.Request) error
	Save(w http.ResponseWriter, r *http.Request) error
	Set(w http.ResponseWriter, r *http.Request, key string, val any) error
}

// The UserSessionable wraps methods for adding, removing, and retrieving
// the authenticated user's username from a session.
type UserSessionable interface {
	DeregisterUser(w http.ResponseWriter, r *http.Request) error
	RegisterUser(w http.ResponseWriter, r *http.Request, username string) error
	Username() (string, error)
}

// The UserSessionStorer composes session's major interfaces.
type UserSessionStorer interface {
	Sessionable
	UserSessionable
}

// A Session manages the server-side state behind a "sessionId" cookie.
//
// Its functionality is implemented by lightly wrapping a gorilla.Session.
type Session struct {
	s *gorilla.Session
}

// Delete removes a session by making the MaxAge negative.
func (s Session) Delete(w http.ResponseWriter, r *http.Request) error {
	s.s.Options.MaxAge = -1
	return s.Save(w, r)
}

// DeregisterUser removes the user from the session.
func (s Session) DeregisterUser(w http.ResponseWriter, r *http.Request) error {
	delete(s.s.Values, userSessionKey)
	return s.Save(w, r)
}

// Get retrieves a value from the session according to the key passed in.
func (s Session) Get(key string) any {
	return s.s.Values[key]
}

// RegisterUser stores the user's username in the session.
func (s Session) RegisterUser(w http.ResponseWriter, r *http.Request, username string) error {
	s.s.Values[userSessionKey] = username
	return s.Save(w, r)
}

// ResetExpiry resets the expiration of the session by saving it.
func (s Session) ResetExpiry(w http.ResponseWriter, r *http.Request) error {
	return s.Save(w, r)
}

// Save wraps gorilla.Session.Save, saving the session in the request.
func (s Session) Save(w http.ResponseWriter, r *http.Request) error { return s.s.Save(r, w) }

// Set stores a value according to the key passed in on the session.
func (s Session) Set(w http.ResponseWriter, r *http.Request, key string, val any) error {
	s.s.Values[key] = val
	return s.Save(w, r)
}

// Username gets the authenticated username out of the session.
// A username should be present in a session if the user successfully
// authenticated through the cookie login flow.
// If no username can be found, ErrNoUser is returned.
//
// If the value in the session is not a string, ErrNotValid is returned
// and represents a programming error.
func (s Session) Username() (string, error) {
	intfVal, ok := s.s.Values[userSessionKey]
	if !ok {
		return "", ErrNoUser
	}

	val, ok := intfVal.(string)
	if !ok {
		return "", ErrNotValid
	}

	return val, nil
}
