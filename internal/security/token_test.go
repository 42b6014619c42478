package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"teamsync-backend/internal/domain"
	"teamsync-backend/internal/security"
)

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	signed, err := tokens.GenerateAccessToken(42, "alice@test.com", domain.RoleAdmin)
	assert.NoError(t, err)

	claims, err := tokens.ValidateToken(signed)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "alice@test.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, security.TokenTypeAccess, claims.Type)
	assert.Equal(t, "teamsync", claims.Issuer)
}

func TestTokenManager_RefreshTokenType(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	signed, err := tokens.GenerateRefreshToken(42, "alice@test.com", domain.RoleMember)
	assert.NoError(t, err)

	claims, err := tokens.ValidateToken(signed)
	assert.NoError(t, err)
	assert.Equal(t, security.TokenTypeRefresh, claims.Type)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	other := security.NewTokenManager("other-secret", time.Hour, 24*time.Hour)

	signed, err := tokens.GenerateAccessToken(42, "alice@test.com", domain.RoleAdmin)
	assert.NoError(t, err)

	_, err = other.ValidateToken(signed)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Millisecond, 24*time.Hour)

	signed, err := tokens.GenerateAccessToken(42, "alice@test.com", domain.RoleAdmin)
	assert.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	_, err = tokens.ValidateToken(signed)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	_, err := tokens.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
