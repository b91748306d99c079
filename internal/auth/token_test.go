package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIdentity = Identity{
	UserID:    "65f1c0ffee0000000000abcd",
	Email:     "a@b.com",
	FirstName: "Jo",
	LastName:  "Lee",
}

func TestNewTokenIssuer_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenIssuer("", 0)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("super-secret", 0)
	require.NoError(t, err)

	tok, err := issuer.Issue(testIdentity)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, claims.Identity())
	assert.Equal(t, "Jo Lee", claims.FullName())
	assert.Nil(t, claims.ExpiresAt)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	right, _ := NewTokenIssuer("right-secret", 0)
	wrong, _ := NewTokenIssuer("wrong-secret", 0)

	tok, err := right.Issue(testIdentity)
	require.NoError(t, err)

	_, err = wrong.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer, _ := NewTokenIssuer("secret", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := issuer.Issue(testIdentity)
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	issuer, _ := NewTokenIssuer("k", 0)
	_, err := issuer.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	issuer, _ := NewTokenIssuer("k", 0)
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "forged"})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerify_RejectsOtherHMACAlgorithms(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("super-secret", 0)
	require.NoError(t, err)

	for _, method := range []jwt.SigningMethod{jwt.SigningMethodHS384, jwt.SigningMethodHS512} {
		t.Run(method.Alg(), func(t *testing.T) {
			claims := Claims{UserID: testIdentity.UserID, Email: testIdentity.Email}
			signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte("super-secret"))
			require.NoError(t, err)

			_, err = issuer.Verify(signed)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestVerify_RequiresUserID(t *testing.T) {
	t.Parallel()

	issuer, _ := NewTokenIssuer("k", 0)
	tok, err := issuer.Issue(Identity{Email: "x@y.z"})
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
