package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/auth"
)

const testKey = "cd2bfe8d7c08e6c1f22be7ed3bf9c0de"

func testUser() urbanfix.User {
	return urbanfix.User{
		Username:  "amunteanu",
		Email:     "amunteanu@example.com",
		Role:      urbanfix.RoleAuthority,
		Validated: true,
	}
}

func TestNewService(t *testing.T) {
	// Act
	_, err := auth.NewService(auth.Config{})

	// Assert
	require.ErrorIs(t, err, auth.ErrNotValid)

	// Act
	svc, err := auth.NewService(auth.Config{SigningKey: testKey})

	// Assert
	require.Nil(t, err)
	require.NotNil(t, svc)
}

func TestServiceIssueVerifyRoundTrip(t *testing.T) {
	// Arrange
	svc, err := auth.NewService(auth.Config{SigningKey: testKey})
	require.Nil(t, err)

	// Act
	credential, err := svc.Issue(testUser())
	require.Nil(t, err)

	claims, err := svc.Verify(credential)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "amunteanu", claims.Username)
	require.Equal(t, urbanfix.RoleAuthority, claims.Role)
	require.Equal(t, "amunteanu@example.com", claims.Email)
	require.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestServiceVerifyExpired(t *testing.T) {
	// Arrange: a service whose tokens are already stale when minted
	svc, err := auth.NewService(auth.Config{
		SigningKey:      testKey,
		SessionDuration: -time.Minute,
	})
	require.Nil(t, err)

	credential, err := svc.Issue(testUser())
	require.Nil(t, err)

	// Act
	claims, err := svc.Verify(credential)

	// Assert
	require.ErrorIs(t, err, auth.ErrNotValid)
	require.Nil(t, claims)
}

func TestServiceVerifyUntrustedInput(t *testing.T) {
	// Arrange
	svc, err := auth.NewService(auth.Config{SigningKey: testKey})
	require.Nil(t, err)

	other, err := auth.NewService(auth.Config{SigningKey: "00000000000000000000000000000000"})
	require.Nil(t, err)

	badSignature, err := other.Issue(testUser())
	require.Nil(t, err)

	badAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testKey))
	require.Nil(t, err)

	for name, credential := range map[string]string{
		"empty":         "",
		"garbage":       "not-even-a-token",
		"bad signature": badSignature,
		"alg mismatch":  badAlg,
	} {
		t.Run(name, func(t *testing.T) {
			// Act
			claims, err := svc.Verify(credential)

			// Assert
			require.True(t, errors.Is(err, auth.ErrNotValid))
			require.Nil(t, claims)
		})
	}
}
