package auth

import (
	"testing"
	"time"

	"kennel/config"
	domainerrors "kennel/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	require.Error(t, err)
}

func TestNewJWTService_TTLFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTLMinutes: 45}}
	cfg.SecretKey.Access = "test-secret-key"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, svc.AccessTokenTTL())
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	svc := newTestJWTService(t)

	assert.Equal(t, 15*time.Minute, svc.AccessTokenTTL())
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Generate("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	expired := &jwtService{secret: "test-secret-key", accessTTL: -time.Minute}

	token, err := expired.Generate("alice@example.com")
	require.NoError(t, err)

	_, err = expired.Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)
	other := &jwtService{secret: "another-secret", accessTTL: time.Minute}

	token, err := other.Generate("alice@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc := newTestJWTService(t)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Validate(raw)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	}
}
