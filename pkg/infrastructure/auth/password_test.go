package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCompare(t *testing.T) {
	passwords := NewBcryptPasswordManager()

	hashed, err := passwords.Hash("customer123")
	require.NoError(t, err)
	assert.NotEqual(t, "customer123", hashed)

	assert.NoError(t, passwords.Compare(hashed, "customer123"))
	assert.Error(t, passwords.Compare(hashed, "wrong"))
}
