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

type adoptionFixture struct {
	svc         *service.AdoptionRequestService
	requestRepo *mocks.MockAdoptionRequestRepositoryInterface
	animalRepo  *mocks.MockAnimalRepositoryInterface
	shelterRepo *mocks.MockShelterRepositoryInterface
	staffRepo   *mocks.MockStaffMembershipRepositoryInterface
	adopter     *models.User
	shelterID   uuid.UUID
}

func newAdoptionFixture(t *testing.T) *adoptionFixture {
	ctrl := gomock.NewController(t)
	f := &adoptionFixture{
		requestRepo: mocks.NewMockAdoptionRequestRepositoryInterface(ctrl),
		animalRepo:  mocks.NewMockAnimalRepositoryInterface(ctrl),
		shelterRepo: mocks.NewMockShelterRepositoryInterface(ctrl),
		staffRepo:   mocks.NewMockStaffMembershipRepositoryInterface(ctrl),
	}
	scopes := auth.NewScopeResolver(f.shelterRepo, f.staffRepo, f.animalRepo)
	f.svc = service.NewAdoptionRequestService(f.requestRepo, f.animalRepo, scopes, validator.New())
	f.adopter = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleAdopter}
	f.shelterID = uuid.New()
	return f
}

func (f *adoptionFixture) scope() auth.ShelterIDSet {
	return auth.NewShelterIDSet([]uuid.UUID{f.shelterID})
}

func (f *adoptionFixture) animal(status models.AdoptionStatus) *models.Animal {
	return &models.Animal{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ShelterID: f.shelterID,
		Name:      "Rex",
		Species:   "dog",
		Status:    status,
	}
}

func TestAdoptionRequestService_Submit(t *testing.T) {
	t.Run("files a request for an available animal", func(t *testing.T) {
		f := newAdoptionFixture(t)
		animal := f.animal(models.AdoptionStatusAvailable)

		f.animalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil)

		var created *models.AdoptionRequest
		f.requestRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.AdoptionRequest) error {
			created = r
			return nil
		})

		resp, err := f.svc.Submit(f.adopter, &service.SubmitAdoptionRequest{AnimalID: animal.ID})
		require.NoError(t, err)
		assert.Equal(t, models.RequestStatusSubmitted, resp.Status)

		require.NotNil(t, created)
		assert.Equal(t, f.adopter.ID, created.AdopterUserID)
	})

	t.Run("unknown animal", func(t *testing.T) {
		f := newAdoptionFixture(t)
		animalID := uuid.New()

		f.animalRepo.EXPECT().GetByID(animalID).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.Submit(f.adopter, &service.SubmitAdoptionRequest{AnimalID: animalID})
		assert.ErrorIs(t, err, apperrors.ErrAnimalNotFound)
	})

	t.Run("animal not available", func(t *testing.T) {
		f := newAdoptionFixture(t)
		animal := f.animal(models.AdoptionStatusAdopted)

		f.animalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil)

		_, err := f.svc.Submit(f.adopter, &service.SubmitAdoptionRequest{AnimalID: animal.ID})
		assert.ErrorIs(t, err, apperrors.ErrAnimalNotAvailable)
	})
}

func TestAdoptionRequestService_GetOwnByID(t *testing.T) {
	t.Run("another adopter's request is reported as not found", func(t *testing.T) {
		f := newAdoptionFixture(t)
		request := &models.AdoptionRequest{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			AnimalID:      uuid.New(),
			AdopterUserID: uuid.New(),
			Status:        models.RequestStatusSubmitted,
		}

		f.requestRepo.EXPECT().GetByID(request.ID).Return(request, nil)

		_, err := f.svc.GetOwnByID(f.adopter, request.ID)
		assert.ErrorIs(t, err, apperrors.ErrAdoptionRequestNotFound)
	})

	t.Run("own request", func(t *testing.T) {
		f := newAdoptionFixture(t)
		request := &models.AdoptionRequest{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			AnimalID:      uuid.New(),
			AdopterUserID: f.adopter.ID,
			Status:        models.RequestStatusSubmitted,
		}

		f.requestRepo.EXPECT().GetByID(request.ID).Return(request, nil)

		resp, err := f.svc.GetOwnByID(f.adopter, request.ID)
		require.NoError(t, err)
		assert.Equal(t, request.ID, resp.ID)
	})
}

func TestAdoptionRequestService_Decide(t *testing.T) {
	t.Run("approval marks the animal adopted", func(t *testing.T) {
		f := newAdoptionFixture(t)
		animal := f.animal(models.AdoptionStatusAvailable)
		request := &models.AdoptionRequest{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			AnimalID:      animal.ID,
			AdopterUserID: f.adopter.ID,
			Status:        models.RequestStatusSubmitted,
		}

		f.requestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
		f.animalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil).Times(2)

		var updatedAnimal *models.Animal
		f.animalRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *models.Animal) error {
			updatedAnimal = a
			return nil
		})
		f.requestRepo.EXPECT().Update(gomock.Any()).Return(nil)

		resp, err := f.svc.Decide(f.scope(), request.ID, &service.DecideAdoptionRequest{
			Status:     models.RequestStatusApproved,
			StaffNotes: "home visit passed",
		})
		require.NoError(t, err)
		assert.Equal(t, models.RequestStatusApproved, resp.Status)
		assert.Equal(t, "home visit passed", resp.StaffNotes)

		require.NotNil(t, updatedAnimal)
		assert.Equal(t, models.AdoptionStatusAdopted, updatedAnimal.Status)
	})

	t.Run("rejection leaves the animal untouched", func(t *testing.T) {
		f := newAdoptionFixture(t)
		animal := f.animal(models.AdoptionStatusAvailable)
		request := &models.AdoptionRequest{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			AnimalID:      animal.ID,
			AdopterUserID: f.adopter.ID,
			Status:        models.RequestStatusSubmitted,
		}

		f.requestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
		f.animalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil)
		f.requestRepo.EXPECT().Update(gomock.Any()).Return(nil)

		resp, err := f.svc.Decide(f.scope(), request.ID, &service.DecideAdoptionRequest{
			Status: models.RequestStatusRejected,
		})
		require.NoError(t, err)
		assert.Equal(t, models.RequestStatusRejected, resp.Status)
	})

	t.Run("already decided request", func(t *testing.T) {
		f := newAdoptionFixture(t)
		animal := f.animal(models.AdoptionStatusAdopted)
		request := &models.AdoptionRequest{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			AnimalID:      animal.ID,
			AdopterUserID: f.adopter.ID,
			Status:        models.RequestStatusApproved,
		}

		f.requestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
		f.animalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil)

		_, err := f.svc.Decide(f.scope(), request.ID, &service.DecideAdoptionRequest{
			Status: models.RequestStatusRejected,
		})
		assert.ErrorIs(t, err, apperrors.ErrRequestAlreadyDecided)
	})

	t.Run("request for an out-of-scope animal", func(t *testing.T) {
		f := newAdoptionFixture(t)
		foreign := &models.Animal{
			BaseModel: models.BaseModel{ID: uuid.New()},
			ShelterID: uuid.New(),
			Status:    models.AdoptionStatusAvailable,
		}
		request := &models.AdoptionRequest{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			AnimalID:      foreign.ID,
			AdopterUserID: f.adopter.ID,
			Status:        models.RequestStatusSubmitted,
		}

		f.requestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
		f.animalRepo.EXPECT().GetByID(foreign.ID).Return(foreign, nil)

		_, err := f.svc.Decide(f.scope(), request.ID, &service.DecideAdoptionRequest{
			Status: models.RequestStatusApproved,
		})
		assert.ErrorIs(t, err, apperrors.ErrOutOfScope)
	})
}
