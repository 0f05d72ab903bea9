package service

import (
	"errors"
	"time"

	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/service/i"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 24 * time.Hour

// ErrInvalidAdminKey is returned when the presented admin key does not
// match the configured hash.
var ErrInvalidAdminKey = errors.New("invalid admin key")

// AdminAuth authenticates the operator: the service is configured with a
// bcrypt hash of the admin key, and a matching key is exchanged for a JWT
// covering the protected routes.
type AdminAuth struct {
	keyHash   []byte
	tokenizer i.Tokenizer
}

// NewAdminAuth creates an AdminAuth from the configured key hash and a
// tokenizer.
func NewAdminAuth(keyHash string, tokenizer i.Tokenizer) (*AdminAuth, error) {
	if keyHash == "" {
		return nil, errors.New("admin auth: empty key hash")
	}
	if tokenizer == nil {
		return nil, errors.New("admin auth: nil tokenizer")
	}
	return &AdminAuth{
		keyHash:   []byte(keyHash),
		tokenizer: tokenizer,
	}, nil
}

// SignIn verifies the admin key against the stored hash and issues a token.
func (a *AdminAuth) SignIn(adminKey string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(a.keyHash, []byte(adminKey)); err != nil {
		return "", ErrInvalidAdminKey
	}

	return a.tokenizer.Generate(map[string]interface{}{
		"role": "admin",
	}, adminTokenTTL)
}
