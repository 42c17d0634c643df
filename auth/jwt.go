package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/urbanfix/urbanfix"
)

// SessionClaims are the identity claims encoded into a session token.
//
// A verified SessionClaims is only trusted for the single request that
// produced it; guards re-check the live User record before relying on it.
type SessionClaims struct {
	Username string        `json:"username"`
	Role     urbanfix.Role `json:"role"`
	Email    string        `json:"email"`
	jwt.RegisteredClaims
}

// Issue produces an opaque, signed, time-bounded credential encoding
// the identity claims of the provided User.
func (s *Service) Issue(u urbanfix.User) (string, error) {
	now := s.now()
	claims := SessionClaims{
		Username: u.Username,
		Role:     u.Role,
		Email:    u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	credential, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnexpected, err)
	}

	return credential, nil
}

// Verify cryptographically validates the credential's signature and expiry,
// hydrating the SessionClaims it carries.
//
// A malformed credential, bad signature, elapsed expiry or disallowed signing
// algorithm all return an error wrapping ErrNotValid; none panic.
func (s *Service) Verify(credential string) (*SessionClaims, error) {
	if credential == "" {
		return nil, fmt.Errorf("%w: no credential set", ErrNotValid)
	}

	claims := new(SessionClaims)
	_, err := s.parser.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotValid, err)
	}

	return claims, nil
}
