package authutils

import (
	"testing"
	"time"

	"broilink-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	require.NotEqual(t, "rahasia123", hash)
	require.True(t, CheckPassword(hash, "rahasia123"))
	require.False(t, CheckPassword(hash, "rahasia124"))
	require.False(t, CheckPassword("", "rahasia123"))
}

func TestGetToken(t *testing.T) {
	tokenString, expiresAt, err := GetToken("secret", time.Hour, "user-1", "Budi", "session-1", models.OwnerRole)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	require.Equal(t, "user-1", claims["sub"])
	require.Equal(t, "Owner", claims["role"])
	require.Equal(t, "session-1", claims["jti"])

	_, err = jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	require.Error(t, err)
}
