package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitclub_backend/internal/config"
)

func init() {
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTLMinutes = 60
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-1", "Dana", "USER")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Dana", claims.Name)
	assert.Equal(t, "USER", claims.Role)
	assert.NotEmpty(t, claims.ID, "every token carries a unique id for revocation")
}

func TestParseToken_UniqueIDs(t *testing.T) {
	first, err := GenerateToken("user-1", "Dana", "USER")
	require.NoError(t, err)
	second, err := GenerateToken("user-1", "Dana", "USER")
	require.NoError(t, err)

	c1, err := ParseToken(first)
	require.NoError(t, err)
	c2, err := ParseToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", "Dana", "USER")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "different-secret"
	defer func() { config.AppConfig.JWT.Secret = "test-secret" }()

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
