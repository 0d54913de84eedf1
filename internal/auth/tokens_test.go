package auth

import (
	"testing"
	"time"

	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Generate("admin@bucksportll.org", entities.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "admin@bucksportll.org", claims.Email)
	require.Equal(t, entities.RoleAdmin, claims.Role)
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Generate("admin@bucksportll.org", entities.RoleAdmin)
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.ErrorIs(t, err, entities.ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Generate("admin@bucksportll.org", entities.RoleAdmin)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Parse(token)
	require.ErrorIs(t, err, entities.ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := NewTokenManager("test-secret", time.Hour).Parse("not-a-token")
	require.ErrorIs(t, err, entities.ErrInvalidToken)
}
