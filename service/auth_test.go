package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeTokenizer struct {
	claims map[string]interface{}
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	f.claims = claims
	return "token-ok", nil
}

func (f *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

func TestNewAdminAuth(t *testing.T) {
	t.Run("rejects empty key hash", func(t *testing.T) {
		_, err := NewAdminAuth("", &fakeTokenizer{})
		assert.Error(t, err)
	})

	t.Run("rejects nil tokenizer", func(t *testing.T) {
		_, err := NewAdminAuth("some-hash", nil)
		assert.Error(t, err)
	})
}

func TestAdminSignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("sesame"), bcrypt.MinCost)
	assert.NoError(t, err)

	tokenizer := &fakeTokenizer{}
	auth, err := NewAdminAuth(string(hash), tokenizer)
	assert.NoError(t, err)

	t.Run("matching key yields a token", func(t *testing.T) {
		token, err := auth.SignIn("sesame")
		assert.NoError(t, err)
		assert.Equal(t, "token-ok", token)
		assert.Equal(t, "admin", tokenizer.claims["role"])
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		token, err := auth.SignIn("open sesame")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrInvalidAdminKey)
	})
}
