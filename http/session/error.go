package session

import "errors"

var (
	// ErrNoUser signals no user is registered in the session.
	ErrNoUser = errors.New("no user in session")

	// ErrNotValid signals a session value is not the expected type.
	ErrNotValid = errors.New("not valid")
)
