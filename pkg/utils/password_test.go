package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("sekret123")
	require.NoError(t, err)
	assert.NotEqual(t, "sekret123", hash)

	assert.True(t, CheckPasswordHash("sekret123", hash))
	assert.False(t, CheckPasswordHash("wrongpass", hash))
	assert.False(t, CheckPasswordHash("sekret123", "not-a-hash"))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	first, err := HashPassword("sekret123")
	require.NoError(t, err)
	second, err := HashPassword("sekret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("sekret123", first))
	assert.True(t, CheckPasswordHash("sekret123", second))
}
