package auth_test

import (
	"testing"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/database/models"
	apperrors "pawbase-backend/internal/errors"
	"pawbase-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestHasher(t *testing.T) {
	hasher := auth.NewHasher(4) // min cost keeps the test fast

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, hasher.Compare(hash, "s3cret-password"))
	assert.Error(t, hasher.Compare(hash, "wrong-password"))
}

func TestAuthService_Login(t *testing.T) {
	hasher := auth.NewHasher(4)
	hash, err := hasher.Hash("correct-password")
	require.NoError(t, err)

	userID := uuid.New()
	user := &models.User{
		BaseModel:    models.BaseModel{ID: userID},
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         models.RoleOrgAdmin,
	}

	newService := func(t *testing.T) (*auth.AuthService, *mocks.MockUserRepositoryInterface) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
		service, err := auth.NewAuthService(testAuthConfig(nil), hasher, userRepo)
		require.NoError(t, err)
		return service, userRepo
	}

	t.Run("success issues verifiable token", func(t *testing.T) {
		service, userRepo := newService(t)
		userRepo.EXPECT().GetByEmail("admin@example.com").Return(user, nil)

		resp, err := service.Login("admin@example.com", "correct-password")
		require.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)

		subject, err := service.Codec().Verify(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, subject)
	})

	t.Run("email is trimmed and lowercased", func(t *testing.T) {
		service, userRepo := newService(t)
		userRepo.EXPECT().GetByEmail("admin@example.com").Return(user, nil)

		_, err := service.Login("  Admin@Example.COM ", "correct-password")
		assert.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		service, userRepo := newService(t)
		userRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login("nobody@example.com", "whatever")
		assert.ErrorIs(t, err, apperrors.ErrBadCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, userRepo := newService(t)
		userRepo.EXPECT().GetByEmail("admin@example.com").Return(user, nil)

		_, err := service.Login("admin@example.com", "wrong-password")
		assert.ErrorIs(t, err, apperrors.ErrBadCredentials)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		service, userRepo := newService(t)
		userRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
		userRepo.EXPECT().GetByEmail("admin@example.com").Return(user, nil)

		_, errUnknown := service.Login("nobody@example.com", "whatever")
		_, errWrong := service.Login("admin@example.com", "wrong-password")
		assert.Equal(t, errUnknown, errWrong)
	})
}

func TestAuthService_ResolveUser(t *testing.T) {
	hasher := auth.NewHasher(4)

	t.Run("returns the user for a known subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
		service, err := auth.NewAuthService(testAuthConfig(nil), hasher, userRepo)
		require.NoError(t, err)

		userID := uuid.New()
		userRepo.EXPECT().GetByID(userID).Return(&models.User{
			BaseModel: models.BaseModel{ID: userID},
			Email:     "staff@example.com",
			Role:      models.RoleStaff,
		}, nil)

		user, err := service.ResolveUser(userID)
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("deleted subject fails closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
		service, err := auth.NewAuthService(testAuthConfig(nil), hasher, userRepo)
		require.NoError(t, err)

		userID := uuid.New()
		userRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

		_, err = service.ResolveUser(userID)
		assert.ErrorIs(t, err, apperrors.ErrUnknownSubject)
	})
}
