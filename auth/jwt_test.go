package auth_test

import (
	"testing"

	"github.com/codearena/backend/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	key := []byte("test-key")
	token, err := auth.GenerateJWT("admin", "admin@example.com", uuid.New(),
		[]string{auth.ScopeAdmin}, key)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.HasScope(auth.ScopeAdmin))
	assert.False(t, claims.HasScope("other"))
}

func TestValidateJWTWrongKey(t *testing.T) {
	token, err := auth.GenerateJWT("admin", "admin@example.com", uuid.New(), nil, []byte("key-a"))
	require.NoError(t, err)

	_, err = auth.ValidateJWT(token, []byte("key-b"))
	assert.Error(t, err)
}

func TestNilClaimsHaveNoScope(t *testing.T) {
	var claims *auth.JwtClaims
	assert.False(t, claims.HasScope(auth.ScopeAdmin))
}
