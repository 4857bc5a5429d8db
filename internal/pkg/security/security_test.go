package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPIN(t *testing.T) {
	hash, err := HashPIN("4321")
	require.NoError(t, err)
	assert.NotEqual(t, "4321", hash)

	assert.NoError(t, CheckPIN(hash, "4321"))
	assert.ErrorIs(t, CheckPIN(hash, "1234"), bcrypt.ErrMismatchedHashAndPassword)
	assert.Error(t, CheckPIN("not-a-hash", "4321"))
}

func TestHashPIN_Empty(t *testing.T) {
	_, err := HashPIN("  ")
	assert.ErrorIs(t, err, ErrEmptyPIN)
}

func TestValidateHash(t *testing.T) {
	hash, err := HashPIN("4321")
	require.NoError(t, err)
	assert.NoError(t, ValidateHash(hash))

	testCases := []struct {
		name string
		hash string
	}{
		{name: "plain text", hash: "4321"},
		{name: "truncated", hash: hash[:20]},
		{name: "wrong prefix", hash: "$9z$10$" + hash[7:]},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateHash(tc.hash), ErrMalformedHash)
		})
	}
}
