package auth

import (
	"errors"
	"fmt"
	"strings"

	"pawbase-backend/internal/database/models"
	apperrors "pawbase-backend/internal/errors"
	"pawbase-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Hasher hashes and verifies passwords using bcrypt. Callers must not log or
// persist plaintext passwords.
type Hasher struct {
	Cost int
}

// NewHasher returns a Hasher with the given bcrypt cost
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{Cost: cost}
}

// Hash produces a bcrypt hash of the password
func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare verifies a password against the stored hash
func (h *Hasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// AuthService owns token issuance (login) and per-request identity
// resolution. Identity is re-resolved on every request; there is no session
// cache.
type AuthService struct {
	codec    *TokenCodec
	hasher   *Hasher
	userRepo repository.UserRepositoryInterface
}

// LoginResponse is returned by the login endpoint
type LoginResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"3600"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, hasher *Hasher, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	codec, err := NewTokenCodec(config)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		codec:    codec,
		hasher:   hasher,
		userRepo: userRepo,
	}, nil
}

// Codec exposes the token codec for middleware wiring
func (s *AuthService) Codec() *TokenCodec {
	return s.codec
}

// Login verifies the credentials and issues a token for the user. Unknown
// email and wrong password fail with the same error so the endpoint cannot
// be used to probe which accounts exist.
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBadCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.ErrBadCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.codec.config.TokenTTL.Seconds()),
	}, nil
}

// ResolveUser loads the user for a verified token subject. Fails closed with
// ErrUnknownSubject when the subject no longer exists.
func (s *AuthService) ResolveUser(subject uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownSubject
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user, nil
}
