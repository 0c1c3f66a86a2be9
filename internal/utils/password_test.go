package utils_test

import (
	"testing"

	"github.com/finlearnhq/finlearn_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret-password", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
}

func TestCheckPasswordHash_EmptyHash(t *testing.T) {
	assert.False(t, utils.CheckPasswordHash("anything", ""))
}
