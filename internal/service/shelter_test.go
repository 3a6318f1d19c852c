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

type shelterFixture struct {
	svc            *service.ShelterService
	shelterRepo    *mocks.MockShelterRepositoryInterface
	membershipRepo *mocks.MockStaffMembershipRepositoryInterface
	animalRepo     *mocks.MockAnimalRepositoryInterface
}

func newShelterFixture(t *testing.T) *shelterFixture {
	ctrl := gomock.NewController(t)
	f := &shelterFixture{
		shelterRepo:    mocks.NewMockShelterRepositoryInterface(ctrl),
		membershipRepo: mocks.NewMockStaffMembershipRepositoryInterface(ctrl),
		animalRepo:     mocks.NewMockAnimalRepositoryInterface(ctrl),
	}
	scopes := auth.NewScopeResolver(f.shelterRepo, f.membershipRepo, f.animalRepo)
	f.svc = service.NewShelterService(f.shelterRepo, scopes, validator.New())
	return f
}

func TestShelterService_Create(t *testing.T) {
	org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Happy Paws"}

	t.Run("pins shelter to caller's organization", func(t *testing.T) {
		f := newShelterFixture(t)

		f.shelterRepo.EXPECT().GetByNameInOrganization(org.ID, "Downtown").Return(nil, gorm.ErrRecordNotFound)

		var created *models.Shelter
		f.shelterRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(sh *models.Shelter) error {
			created = sh
			return nil
		})

		resp, err := f.svc.Create(org, &service.CreateShelterRequest{Name: "Downtown", City: "Haifa"})
		require.NoError(t, err)
		assert.Equal(t, "Downtown", resp.Name)

		require.NotNil(t, created)
		assert.Equal(t, org.ID, created.OrganizationID)
	})

	t.Run("duplicate name in organization", func(t *testing.T) {
		f := newShelterFixture(t)

		f.shelterRepo.EXPECT().GetByNameInOrganization(org.ID, "Downtown").Return(&models.Shelter{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: org.ID,
			Name:           "Downtown",
		}, nil)

		_, err := f.svc.Create(org, &service.CreateShelterRequest{Name: "Downtown", City: "Haifa"})
		assert.ErrorIs(t, err, apperrors.ErrShelterExists)
	})
}

func TestShelterService_List(t *testing.T) {
	t.Run("filters shelters outside the caller's scope", func(t *testing.T) {
		f := newShelterFixture(t)
		org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}}

		assigned := models.Shelter{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: org.ID, Name: "Assigned"}
		other := models.Shelter{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: org.ID, Name: "Other"}

		f.shelterRepo.EXPECT().GetByOrganizationID(org.ID).Return([]models.Shelter{assigned, other}, nil)

		scope := auth.NewShelterIDSet([]uuid.UUID{assigned.ID})
		resp, err := f.svc.List(org, scope)
		require.NoError(t, err)
		require.Len(t, resp.Shelters, 1)
		assert.Equal(t, assigned.ID, resp.Shelters[0].ID)
		assert.Equal(t, 1, resp.Total)
	})
}

func TestShelterService_GetByID(t *testing.T) {
	org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}}

	t.Run("missing shelter is not found", func(t *testing.T) {
		f := newShelterFixture(t)
		shelterID := uuid.New()

		f.shelterRepo.EXPECT().GetByID(shelterID).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.GetByID(org, auth.NewShelterIDSet(nil), shelterID)
		assert.ErrorIs(t, err, apperrors.ErrShelterNotFound)
	})

	t.Run("another tenant's shelter is reported as not found", func(t *testing.T) {
		f := newShelterFixture(t)
		foreign := &models.Shelter{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: uuid.New(),
		}

		f.shelterRepo.EXPECT().GetByID(foreign.ID).Return(foreign, nil)

		_, err := f.svc.GetByID(org, auth.NewShelterIDSet(nil), foreign.ID)
		assert.ErrorIs(t, err, apperrors.ErrShelterNotFound)
		assert.NotErrorIs(t, err, apperrors.ErrOutOfScope)
	})

	t.Run("same tenant outside scope is out of scope", func(t *testing.T) {
		f := newShelterFixture(t)
		shelter := &models.Shelter{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: org.ID,
		}

		f.shelterRepo.EXPECT().GetByID(shelter.ID).Return(shelter, nil)

		_, err := f.svc.GetByID(org, auth.NewShelterIDSet(nil), shelter.ID)
		assert.ErrorIs(t, err, apperrors.ErrOutOfScope)
	})
}
