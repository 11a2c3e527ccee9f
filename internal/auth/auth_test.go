package auth

import (
	"context"
	"testing"
	"time"

	"github.com/deespora/backoffice/internal/config"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(password string) *config.Configuration {
	cfg := config.GetDefaultConfig()
	cfg.Auth.AdminEmail = "admin@example.com"
	cfg.Auth.AdminPassword = password
	cfg.Auth.TokenTTL = time.Hour
	return cfg
}

func TestNewEnvAuthRequiresCredentials(t *testing.T) {
	_, err := NewEnvAuth(config.GetDefaultConfig())
	require.Error(t, err)
	assert.Equal(t, "Set BACKOFFICE_AUTH_ADMIN_EMAIL and BACKOFFICE_AUTH_ADMIN_PASSWORD", ierr.DisplayMessage(err, ""))
}

func TestLoginAndValidate(t *testing.T) {
	provider, err := NewProvider(testConfig("s3cret"))
	require.NoError(t, err)
	ctx := context.Background()

	resp, err := provider.Login(ctx, "admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", resp.Email)
	assert.NotEmpty(t, resp.Token)

	claims, err := provider.ValidateToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Contains(t, claims.TokenID, "tok_")
	assert.WithinDuration(t, resp.ExpiresAt, claims.ExpiresAt, time.Second)
}

func TestLoginRejectsMismatch(t *testing.T) {
	provider, err := NewEnvAuth(testConfig("s3cret"))
	require.NoError(t, err)

	for _, creds := range [][2]string{
		{"admin@example.com", "wrong"},
		{"ADMIN@example.com", "s3cret"},
		{"admin@example.com", "s3cret "},
		{"", ""},
	} {
		_, err := provider.Login(context.Background(), creds[0], creds[1])
		assert.True(t, ierr.IsUnauthorized(err), "%v", creds)
		assert.Equal(t, "Invalid credentials", ierr.DisplayMessage(err, ""))
	}
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	provider, err := NewEnvAuth(testConfig(string(hash)))
	require.NoError(t, err)

	_, err = provider.Login(context.Background(), "admin@example.com", "s3cret")
	assert.NoError(t, err)
	_, err = provider.Login(context.Background(), "admin@example.com", string(hash))
	assert.Error(t, err)
}

func TestValidateTokenRejects(t *testing.T) {
	provider, err := NewEnvAuth(testConfig("s3cret"))
	require.NoError(t, err)
	ctx := context.Background()

	// expired
	provider.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := provider.Login(ctx, "admin@example.com", "s3cret")
	require.NoError(t, err)
	provider.now = time.Now
	_, err = provider.ValidateToken(ctx, old.Token)
	assert.True(t, ierr.IsUnauthorized(err))

	// signed with another key
	other, err := NewEnvAuth(testConfig("different"))
	require.NoError(t, err)
	foreign, err := other.Login(ctx, "admin@example.com", "different")
	require.NoError(t, err)
	_, err = provider.ValidateToken(ctx, foreign.Token)
	assert.True(t, ierr.IsUnauthorized(err))

	// unsigned
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "admin@example.com", Issuer: tokenIssuer}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = provider.ValidateToken(ctx, none)
	assert.True(t, ierr.IsUnauthorized(err))

	_, err = provider.ValidateToken(ctx, "garbage")
	assert.True(t, ierr.IsUnauthorized(err))
}

func TestLimiter(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Auth.RateLimit = 0.001
	cfg.Auth.RateBurst = 2
	l := NewLimiter(cfg)

	assert.True(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("2.2.2.2"))

	cfg.Auth.RateLimit = 0
	unlimited := NewLimiter(cfg)
	for i := 0; i < 20; i++ {
		assert.True(t, unlimited.Allow("1.1.1.1"))
	}
}
