package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashPassword("secret-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret-password", hash)

	_, err = service.HashPassword("")
	assert.Error(t, err)
}

func TestComparePassword(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashPassword("secret-password")
	assert.NoError(t, err)

	assert.True(t, service.ComparePassword(hash, "secret-password"))
	assert.False(t, service.ComparePassword(hash, "wrong-password"))
	assert.False(t, service.ComparePassword("not-a-hash", "secret-password"))
}
