package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMintAndVerify(t *testing.T) {
	secret := []byte("test-secret")

	token, err := Mint(secret, "64f0c1e2a5b3d4e6f7a8b9c0")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := Verify(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, "64f0c1e2a5b3d4e6f7a8b9c0", claims.User.ID)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := Mint([]byte("right-secret"), "abc")
	assert.NoError(t, err)

	claims, err := Verify([]byte("wrong-secret"), token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyGarbage(t *testing.T) {
	claims, err := Verify([]byte("secret"), "not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenCarriesExpiry(t *testing.T) {
	secret := []byte("secret")
	token, err := Mint(secret, "abc")
	assert.NoError(t, err)

	claims, err := Verify(secret, token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, TokenTTL-time.Minute)
	assert.LessOrEqual(t, remaining, TokenTTL)
}
