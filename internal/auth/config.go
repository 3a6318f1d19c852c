package auth

import (
	"fmt"
	"time"

	"pawbase-backend/internal/config"
)

// AuthConfig carries the keyed security state for the token codec. It is
// injected at construction rather than read from globals so keys can rotate
// and tests can pin the clock.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Issuer    string

	// Now is the clock used for issuing and verifying tokens.
	// Defaults to time.Now.
	Now func() time.Time
}

// FromAppConfig builds an AuthConfig from the application configuration
func FromAppConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL(),
		Issuer:    cfg.TokenIssuer,
	}
}

// ValidateConfig checks that required fields are present
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}

func (c *AuthConfig) clock() func() time.Time {
	if c.Now != nil {
		return c.Now
	}
	return time.Now
}
