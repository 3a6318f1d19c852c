package auth_test

import (
	"testing"
	"time"

	"pawbase-backend/internal/auth"
	apperrors "pawbase-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig(now func() time.Time) *auth.AuthConfig {
	return &auth.AuthConfig{
		JWTSecret: "test-signing-key-for-token-codec",
		TokenTTL:  time.Hour,
		Issuer:    "pawbase-backend",
		Now:       now,
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec, err := auth.NewTokenCodec(testAuthConfig(nil))
	require.NoError(t, err)

	subject := uuid.New()
	token, err := codec.Issue(subject)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subject, got)
}

func TestTokenCodec_InvalidConfig(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		cfg := testAuthConfig(nil)
		cfg.JWTSecret = ""
		_, err := auth.NewTokenCodec(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := testAuthConfig(nil)
		cfg.TokenTTL = 0
		_, err := auth.NewTokenCodec(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TTL must be positive")
	})
}

func TestTokenCodec_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	codec, err := auth.NewTokenCodec(testAuthConfig(func() time.Time { return clock }))
	require.NoError(t, err)

	subject := uuid.New()
	token, err := codec.Issue(subject)
	require.NoError(t, err)

	t.Run("valid just before expiry", func(t *testing.T) {
		clock = issuedAt.Add(time.Hour - time.Second)
		got, err := codec.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, subject, got)
	})

	t.Run("invalid at the exact expiry instant", func(t *testing.T) {
		clock = issuedAt.Add(time.Hour)
		_, err := codec.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("invalid after expiry", func(t *testing.T) {
		clock = issuedAt.Add(2 * time.Hour)
		_, err := codec.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestTokenCodec_VerifyRejections(t *testing.T) {
	codec, err := auth.NewTokenCodec(testAuthConfig(nil))
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		_, err := codec.Verify("not-a-jwt")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := codec.Verify("")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		otherCfg := testAuthConfig(nil)
		otherCfg.JWTSecret = "a-different-signing-key"
		other, err := auth.NewTokenCodec(otherCfg)
		require.NoError(t, err)

		token, err := other.Issue(uuid.New())
		require.NoError(t, err)

		_, err = codec.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("missing expiry claim", func(t *testing.T) {
		// Signed with the right key but no exp claim.
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject: uuid.New().String(),
		})
		token, err := raw.SignedString([]byte("test-signing-key-for-token-codec"))
		require.NoError(t, err)

		_, err = codec.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		token, err := raw.SignedString([]byte("test-signing-key-for-token-codec"))
		require.NoError(t, err)

		_, err = codec.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrMalformedSubject)
	})

	t.Run("unsigned token", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = codec.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestTokenCodec_IssueWithTTL(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	codec, err := auth.NewTokenCodec(testAuthConfig(func() time.Time { return clock }))
	require.NoError(t, err)

	token, err := codec.IssueWithTTL(uuid.New(), 5*time.Minute)
	require.NoError(t, err)

	clock = issuedAt.Add(4 * time.Minute)
	_, err = codec.Verify(token)
	assert.NoError(t, err)

	clock = issuedAt.Add(5 * time.Minute)
	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
