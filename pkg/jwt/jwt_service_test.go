package jwt

import (
	"Meal-Planner/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateTokenUser("2c7f7a40-0d9e-4a53-9f0a-8f3a3c9d2e11", domain.RoleUser)
	require.NoError(t, err)

	userID, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "2c7f7a40-0d9e-4a53-9f0a-8f3a3c9d2e11", userID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestUserToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("one").GenerateTokenUser("u", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = NewJWTService("two").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestUserToken_Expired(t *testing.T) {
	svc := &jwtService{secretKey: "s", issuer: "test", ttl: -time.Minute}

	token, err := svc.GenerateTokenUser("u", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestStateToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	state, err := svc.GenerateStateToken("nonce-123", time.Minute)
	require.NoError(t, err)

	nonce, err := svc.ValidateStateToken(state)
	require.NoError(t, err)
	assert.Equal(t, "nonce-123", nonce)

	expired, err := svc.GenerateStateToken("nonce-123", -time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateStateToken(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	_, err = svc.ValidateStateToken("garbage")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
