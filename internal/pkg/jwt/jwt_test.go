package jwt

import (
	"testing"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_AccessTokenClaims(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")
	site := "Downtown"

	token, expiresAt, err := svc.GenerateAccessToken("u-1", "sup@example.com", user.RoleSupervisor, &site)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims["user_id"])
	assert.Equal(t, "supervisor", claims["role"])
	assert.Equal(t, "Downtown", claims["site_location"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_RefreshToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	token, _, err := svc.GenerateRefreshToken("u-2")
	require.NoError(t, err)

	userID, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-2", userID)

	// access tokens are not accepted as refresh tokens
	access, _, err := svc.GenerateAccessToken("u-2", "a@example.com", user.RoleAdmin, nil)
	require.NoError(t, err)
	_, err = svc.ParseRefreshToken(access)
	assert.Error(t, err)

	_, err = NewJWTService("other-secret", "1h", "24h").ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestJWTService_InvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "soon", "later")
	_, _, err := svc.GenerateAccessToken("u", "e@example.com", user.RoleAdmin, nil)
	assert.Error(t, err)
	_, _, err = svc.GenerateRefreshToken("u")
	assert.Error(t, err)
}

func TestJWTService_Revoke(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")
	assert.False(t, svc.IsTokenRevoked("abc"))
	svc.RevokeToken("abc")
	assert.True(t, svc.IsTokenRevoked("abc"))
}
