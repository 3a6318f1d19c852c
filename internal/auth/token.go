package auth

import (
	"fmt"
	"time"

	apperrors "pawbase-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenCodec issues and verifies the signed identity assertion. The token
// binds a subject id (`sub`) to an expiry instant (`exp`); it carries no
// tenant claim, so membership changes take effect on the next request.
type TokenCodec struct {
	config *AuthConfig
}

// Claims are the JWT claims carried by an access token
type Claims struct {
	jwt.RegisteredClaims
}

// NewTokenCodec creates a token codec from the given configuration
func NewTokenCodec(config *AuthConfig) (*TokenCodec, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &TokenCodec{config: config}, nil
}

// Issue signs a token for the subject, expiring after the configured TTL
func (c *TokenCodec) Issue(subject uuid.UUID) (string, error) {
	return c.IssueWithTTL(subject, c.config.TokenTTL)
}

// IssueWithTTL signs a token for the subject with an explicit lifetime
func (c *TokenCodec) IssueWithTTL(subject uuid.UUID, ttl time.Duration) (string, error) {
	now := c.config.clock()()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    c.config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.config.JWTSecret))
}

// Verify parses and validates a token and returns its subject. It returns
// ErrInvalidToken when the signature does not match, the payload cannot be
// parsed, or the token has expired (a token is rejected from the exact
// expiry instant onward), and ErrMalformedSubject when the sub claim is not
// a valid subject id.
func (c *TokenCodec) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(c.config.JWTSecret), nil
	}, jwt.WithTimeFunc(c.config.clock()), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, apperrors.ErrInvalidToken
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperrors.ErrMalformedSubject
	}

	return subject, nil
}
