package service_test

import (
	"testing"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/database/models"
	apperrors "pawbase-backend/internal/errors"
	"pawbase-backend/internal/mocks"
	"pawbase-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (*service.UserService, *mocks.MockUserRepositoryInterface, *auth.Hasher) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	hasher := auth.NewHasher(4)
	return service.NewUserService(repo, hasher, validator.New()), repo, hasher
}

func TestUserService_Signup(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		svc, repo, hasher := newUserService(t)

		repo.EXPECT().GetByEmail("adopter@example.com").Return(nil, gorm.ErrRecordNotFound)

		var created *models.User
		repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
			created = u
			return nil
		})

		resp, err := svc.Signup(&service.SignupRequest{
			Email:    "Adopter@Example.com",
			Password: "hunter2hunter2",
			FullName: "Sam Adopter",
			Role:     models.RoleAdopter,
		})
		require.NoError(t, err)
		assert.Equal(t, "adopter@example.com", resp.Email)
		assert.Equal(t, models.RoleAdopter, resp.Role)

		require.NotNil(t, created)
		assert.NotEqual(t, "hunter2hunter2", created.PasswordHash)
		assert.NoError(t, hasher.Compare(created.PasswordHash, "hunter2hunter2"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		repo.EXPECT().GetByEmail("taken@example.com").Return(&models.User{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Email:     "taken@example.com",
		}, nil)

		_, err := svc.Signup(&service.SignupRequest{
			Email:    "taken@example.com",
			Password: "hunter2hunter2",
			FullName: "Sam",
			Role:     models.RoleAdopter,
		})
		assert.ErrorIs(t, err, apperrors.ErrUserExists)
	})

	t.Run("invalid role rejected by validation", func(t *testing.T) {
		svc, _, _ := newUserService(t)

		_, err := svc.Signup(&service.SignupRequest{
			Email:    "user@example.com",
			Password: "hunter2hunter2",
			FullName: "Sam",
			Role:     "superuser",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("short password rejected", func(t *testing.T) {
		svc, _, _ := newUserService(t)

		_, err := svc.Signup(&service.SignupRequest{
			Email:    "user@example.com",
			Password: "short",
			FullName: "Sam",
			Role:     models.RoleAdopter,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("password change is rehashed", func(t *testing.T) {
		svc, repo, hasher := newUserService(t)
		userID := uuid.New()

		oldHash, err := hasher.Hash("old-password-123")
		require.NoError(t, err)

		user := &models.User{
			BaseModel:    models.BaseModel{ID: userID},
			Email:        "staff@example.com",
			PasswordHash: oldHash,
			Role:         models.RoleStaff,
		}
		repo.EXPECT().GetByID(userID).Return(user, nil)

		var updated *models.User
		repo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *models.User) error {
			updated = u
			return nil
		})

		_, err = svc.Update(userID, &service.UpdateUserRequest{Password: "new-password-123"})
		require.NoError(t, err)

		require.NotNil(t, updated)
		assert.NoError(t, hasher.Compare(updated.PasswordHash, "new-password-123"))
		assert.Error(t, hasher.Compare(updated.PasswordHash, "old-password-123"))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo, _ := newUserService(t)
		userID := uuid.New()

		repo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(userID, &service.UpdateUserRequest{FullName: "New Name"})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
