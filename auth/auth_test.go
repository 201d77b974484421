package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := CreateToken("user-abc")
	require.NoError(t, err)

	subject, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-abc", subject)
}

func TestVerifyToken_RejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	token, err := CreateToken("user-abc")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "other-secret")
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_RejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	_, err := VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestNewConfirmToken_Unique(t *testing.T) {
	assert.NotEqual(t, NewConfirmToken(), NewConfirmToken())
}
