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

type staffFixture struct {
	svc         *service.StaffService
	staffRepo   *mocks.MockStaffMembershipRepositoryInterface
	userRepo    *mocks.MockUserRepositoryInterface
	shelterRepo *mocks.MockShelterRepositoryInterface
	animalRepo  *mocks.MockAnimalRepositoryInterface
	org         *models.Organization
	shelter     *models.Shelter
}

func newStaffFixture(t *testing.T) *staffFixture {
	ctrl := gomock.NewController(t)
	f := &staffFixture{
		staffRepo:   mocks.NewMockStaffMembershipRepositoryInterface(ctrl),
		userRepo:    mocks.NewMockUserRepositoryInterface(ctrl),
		shelterRepo: mocks.NewMockShelterRepositoryInterface(ctrl),
		animalRepo:  mocks.NewMockAnimalRepositoryInterface(ctrl),
	}
	scopes := auth.NewScopeResolver(f.shelterRepo, f.staffRepo, f.animalRepo)
	f.svc = service.NewStaffService(f.staffRepo, f.userRepo, scopes, validator.New())
	f.org = &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}}
	f.shelter = &models.Shelter{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: f.org.ID,
		Name:           "Central",
	}
	return f
}

func (f *staffFixture) scope() auth.ShelterIDSet {
	return auth.NewShelterIDSet([]uuid.UUID{f.shelter.ID})
}

func TestStaffService_Assign(t *testing.T) {
	t.Run("assigns a staff user to an in-scope shelter", func(t *testing.T) {
		f := newStaffFixture(t)
		staffUser := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleStaff}

		f.shelterRepo.EXPECT().GetByID(f.shelter.ID).Return(f.shelter, nil)
		f.userRepo.EXPECT().GetByID(staffUser.ID).Return(staffUser, nil)
		f.staffRepo.EXPECT().GetByUserAndShelter(staffUser.ID, f.shelter.ID).Return(nil, gorm.ErrRecordNotFound)
		f.staffRepo.EXPECT().Create(gomock.Any()).Return(nil)

		resp, err := f.svc.Assign(f.org, f.scope(), &service.AssignStaffRequest{
			UserID:    staffUser.ID,
			ShelterID: f.shelter.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, staffUser.ID, resp.UserID)
		assert.Equal(t, f.shelter.ID, resp.ShelterID)
	})

	t.Run("shelter is guarded before the user lookup", func(t *testing.T) {
		f := newStaffFixture(t)
		shelterID := uuid.New()

		// no user repo expectation: a failed shelter guard must short-circuit
		f.shelterRepo.EXPECT().GetByID(shelterID).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.Assign(f.org, f.scope(), &service.AssignStaffRequest{
			UserID:    uuid.New(),
			ShelterID: shelterID,
		})
		assert.ErrorIs(t, err, apperrors.ErrShelterNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newStaffFixture(t)
		userID := uuid.New()

		f.shelterRepo.EXPECT().GetByID(f.shelter.ID).Return(f.shelter, nil)
		f.userRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.Assign(f.org, f.scope(), &service.AssignStaffRequest{
			UserID:    userID,
			ShelterID: f.shelter.ID,
		})
		assert.ErrorIs(t, err, apperrors.ErrNotStaffUser)
	})

	t.Run("user with a non-staff role", func(t *testing.T) {
		f := newStaffFixture(t)
		adopter := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleAdopter}

		f.shelterRepo.EXPECT().GetByID(f.shelter.ID).Return(f.shelter, nil)
		f.userRepo.EXPECT().GetByID(adopter.ID).Return(adopter, nil)

		_, err := f.svc.Assign(f.org, f.scope(), &service.AssignStaffRequest{
			UserID:    adopter.ID,
			ShelterID: f.shelter.ID,
		})
		assert.ErrorIs(t, err, apperrors.ErrNotStaffUser)
	})

	t.Run("duplicate assignment", func(t *testing.T) {
		f := newStaffFixture(t)
		staffUser := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleStaff}

		f.shelterRepo.EXPECT().GetByID(f.shelter.ID).Return(f.shelter, nil)
		f.userRepo.EXPECT().GetByID(staffUser.ID).Return(staffUser, nil)
		f.staffRepo.EXPECT().GetByUserAndShelter(staffUser.ID, f.shelter.ID).Return(&models.StaffMembership{
			BaseModel: models.BaseModel{ID: uuid.New()},
			UserID:    staffUser.ID,
			ShelterID: f.shelter.ID,
		}, nil)

		_, err := f.svc.Assign(f.org, f.scope(), &service.AssignStaffRequest{
			UserID:    staffUser.ID,
			ShelterID: f.shelter.ID,
		})
		assert.ErrorIs(t, err, apperrors.ErrStaffExists)
	})
}

func TestStaffService_Delete(t *testing.T) {
	t.Run("membership outside scope", func(t *testing.T) {
		f := newStaffFixture(t)
		membership := &models.StaffMembership{
			BaseModel: models.BaseModel{ID: uuid.New()},
			UserID:    uuid.New(),
			ShelterID: uuid.New(),
		}

		f.staffRepo.EXPECT().GetByID(membership.ID).Return(membership, nil)

		err := f.svc.Delete(f.scope(), membership.ID)
		assert.ErrorIs(t, err, apperrors.ErrOutOfScope)
	})

	t.Run("missing membership", func(t *testing.T) {
		f := newStaffFixture(t)
		id := uuid.New()

		f.staffRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		err := f.svc.Delete(f.scope(), id)
		assert.ErrorIs(t, err, apperrors.ErrStaffNotFound)
	})
}
