package auth

import (
	"crypto/subtle"
	"os"

	"github.com/casemark/lead-intake/internal/entity"
)

// Authenticator gates the single static admin identity. The seeded default
// pair is a demo fixture; a real deployment overrides it via environment.
type Authenticator struct {
	admin    entity.User
	password string
	secret   []byte
}

func NewAuthenticator() *Authenticator {
	return &Authenticator{
		admin: entity.User{
			ID:    getenv("ADMIN_ID", "1"),
			Email: getenv("ADMIN_EMAIL", "admin@example.com"),
			Name:  getenv("ADMIN_NAME", "Admin"),
		},
		password: getenv("ADMIN_PASSWORD", "admin123"),
		secret:   []byte(getenv("JWT_SECRET", "default_secret_please_change")),
	}
}

// Login checks the presented pair against the admin identity and, on a match,
// issues a signed 24h credential. Comparison is constant-time.
func (a *Authenticator) Login(email, password string) (string, *entity.User, bool) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.admin.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	if !emailOK || !passOK {
		return "", nil, false
	}

	token, err := SignToken(a.admin, a.secret)
	if err != nil {
		return "", nil, false
	}

	user := a.admin
	return token, &user, true
}

// Verify resolves a presented token to the admin identity, or nil.
func (a *Authenticator) Verify(token string) *entity.User {
	user, err := VerifyToken(token, a.secret)
	if err != nil {
		return nil
	}
	return user
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
