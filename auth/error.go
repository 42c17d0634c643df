package auth

import "github.com/urbanfix/urbanfix"

// Aliases for the root sentinels, so callers match token failures with
// the same errors.Is checks they use everywhere else.
var (
	ErrNotValid   = urbanfix.ErrNotValid
	ErrUnexpected = urbanfix.ErrUnexpected
)
