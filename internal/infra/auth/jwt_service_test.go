package auth

import (
	"testing"
	"time"

	"maplehub/config"
	"maplehub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_RejectsRefreshTokenAsAccess(t *testing.T) {
	svc := newTestTokenService(t)

	_, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(refreshToken)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbageToken(t *testing.T) {
	svc := newTestTokenService(t)

	claims, err := svc.ValidateAccessToken("not.a.token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	svc := newTestTokenService(t)

	assert.Equal(t, 7*24*time.Hour, svc.GetRefreshTokenDuration())
}
