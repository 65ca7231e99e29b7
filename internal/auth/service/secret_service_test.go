package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSecretService(t *testing.T) {
	service := NewSecretService()
	assert.NotNil(t, service)
	assert.IsType(t, &secretService{}, service)
}

func TestSecretService_HashSecret(t *testing.T) {
	service := NewSecretService()

	t.Run("Success_HashesSecretCorrectly", func(t *testing.T) {
		plainSecret := "correct-horse-battery-staple"
		hashedSecret, err := service.HashSecret(plainSecret)
		require.NoError(t, err)

		// Verify hash is not empty
		assert.NotEmpty(t, hashedSecret)

		// Verify hash is different from plain secret
		assert.NotEqual(t, plainSecret, hashedSecret)

		// Verify hash uses Argon2id
		assert.Contains(t, hashedSecret, "$argon2id$")
	})

	t.Run("Success_SameSecretProducesDifferentHashes", func(t *testing.T) {
		plainSecret := "same-secret"

		hash1, err := service.HashSecret(plainSecret)
		require.NoError(t, err)

		hash2, err := service.HashSecret(plainSecret)
		require.NoError(t, err)

		// Each hash uses a fresh salt
		assert.NotEqual(t, hash1, hash2)
	})
}

func TestSecretService_CompareSecret(t *testing.T) {
	service := NewSecretService()

	t.Run("Success_MatchingSecretReturnsTrue", func(t *testing.T) {
		plainSecret := "my-password-123"
		hashedSecret, err := service.HashSecret(plainSecret)
		require.NoError(t, err)

		assert.True(t, service.CompareSecret(plainSecret, hashedSecret))
	})

	t.Run("Failure_WrongSecretReturnsFalse", func(t *testing.T) {
		hashedSecret, err := service.HashSecret("my-password-123")
		require.NoError(t, err)

		assert.False(t, service.CompareSecret("not-my-password", hashedSecret))
	})

	t.Run("Failure_InvalidHashReturnsFalse", func(t *testing.T) {
		assert.False(t, service.CompareSecret("anything", "not-a-phc-hash"))
		assert.False(t, service.CompareSecret("anything", ""))
	})
}
