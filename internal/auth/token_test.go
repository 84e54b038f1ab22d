package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/casemark/lead-intake/internal/entity"
)

var testAdmin = entity.User{ID: "1", Email: "admin@example.com", Name: "Admin"}

func TestSignVerifyRoundTrip(t *testing.T) {
	secret := []byte("super-secret")

	token, err := SignToken(testAdmin, secret)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := VerifyToken(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, &testAdmin, user)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := SignToken(testAdmin, []byte("right-secret"))
	assert.NoError(t, err)

	user, err := VerifyToken(token, []byte("wrong-secret"))
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenExpired(t *testing.T) {
	secret := []byte("secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: testAdmin.ID,
		Email:  testAdmin.Email,
	})
	tokenString, err := expired.SignedString(secret)
	assert.NoError(t, err)

	user, err := VerifyToken(tokenString, secret)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenMalformed(t *testing.T) {
	user, err := VerifyToken("not.a.jwt", []byte("k"))
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsUnsignedAlg(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: testAdmin.ID,
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	user, err := VerifyToken(tokenString, []byte("secret"))
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenTamperedPayload(t *testing.T) {
	secret := []byte("secret")

	token, err := SignToken(testAdmin, secret)
	assert.NoError(t, err)

	// Flip one character in the payload segment.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	user, err := VerifyToken(string(tampered), secret)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
