package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_SaltsIndependently(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("p1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("p1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same password must differ")
	assert.True(t, CheckPassword("p1", h1))
	assert.True(t, CheckPassword("p1", h2))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, CheckPassword("battery staple", h))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$corrupt"} {
		assert.False(t, CheckPassword("anything", hash))
	}
}
