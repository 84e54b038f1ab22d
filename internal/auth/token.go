package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/casemark/lead-intake/internal/entity"
)

// TokenLifetime is the fixed validity window of a session credential.
const TokenLifetime = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims embeds the registered claims plus the admin identity the credential
// asserts. The credential is self-contained: nothing is stored server-side.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

func SignToken(user entity.User, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})

	return token.SignedString(secret)
}

// VerifyToken returns the embedded identity for a well-signed, unexpired
// token. Malformed, tampered, mis-signed and expired tokens all come back as
// ErrInvalidToken; callers treat every failure as "no credential".
func VerifyToken(tokenString string, secret []byte) (*entity.User, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &entity.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
