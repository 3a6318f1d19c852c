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

type scopeResolverMocks struct {
	shelterRepo    *mocks.MockShelterRepositoryInterface
	membershipRepo *mocks.MockStaffMembershipRepositoryInterface
	animalRepo     *mocks.MockAnimalRepositoryInterface
}

func newScopeResolver(t *testing.T) (*auth.ScopeResolver, scopeResolverMocks) {
	ctrl := gomock.NewController(t)
	m := scopeResolverMocks{
		shelterRepo:    mocks.NewMockShelterRepositoryInterface(ctrl),
		membershipRepo: mocks.NewMockStaffMembershipRepositoryInterface(ctrl),
		animalRepo:     mocks.NewMockAnimalRepositoryInterface(ctrl),
	}
	return auth.NewScopeResolver(m.shelterRepo, m.membershipRepo, m.animalRepo), m
}

func TestShelterIDSet(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	set := auth.NewShelterIDSet([]uuid.UUID{a, b})

	assert.True(t, set.Contains(a))
	assert.True(t, set.Contains(b))
	assert.False(t, set.Contains(c))
	assert.ElementsMatch(t, []uuid.UUID{a, b}, set.IDs())
}

func TestScopeResolver_AccessibleShelterIDs(t *testing.T) {
	org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Happy Paws"}

	t.Run("org admin sees every shelter in the organization", func(t *testing.T) {
		resolver, m := newScopeResolver(t)
		admin := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleOrgAdmin}
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

		m.shelterRepo.EXPECT().GetIDsByOrganizationID(org.ID).Return(ids, nil)

		scope, err := resolver.AccessibleShelterIDs(admin, org)
		require.NoError(t, err)
		assert.ElementsMatch(t, ids, scope.IDs())
	})

	t.Run("admin of an org with no shelters gets an empty scope", func(t *testing.T) {
		resolver, m := newScopeResolver(t)
		admin := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleOrgAdmin}

		m.shelterRepo.EXPECT().GetIDsByOrganizationID(org.ID).Return([]uuid.UUID{}, nil)

		scope, err := resolver.AccessibleShelterIDs(admin, org)
		require.NoError(t, err)
		assert.Empty(t, scope.IDs())
	})

	t.Run("staff scope is the union of memberships", func(t *testing.T) {
		resolver, m := newScopeResolver(t)
		staff := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleStaff}
		s1, s2 := uuid.New(), uuid.New()

		m.membershipRepo.EXPECT().GetByUserID(staff.ID).Return([]models.StaffMembership{
			{UserID: staff.ID, ShelterID: s1},
			{UserID: staff.ID, ShelterID: s2},
		}, nil)

		scope, err := resolver.AccessibleShelterIDs(staff, org)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{s1, s2}, scope.IDs())
	})

	t.Run("unassigned staff is denied", func(t *testing.T) {
		resolver, m := newScopeResolver(t)
		staff := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleStaff}

		m.membershipRepo.EXPECT().GetByUserID(staff.ID).Return([]models.StaffMembership{}, nil)

		_, err := resolver.AccessibleShelterIDs(staff, org)
		assert.ErrorIs(t, err, apperrors.ErrNoMembership)
	})

	t.Run("adopter has no shelter scope", func(t *testing.T) {
		resolver, _ := newScopeResolver(t)
		adopter := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleAdopter}

		// No repository expectations: the role is rejected before any lookup.
		_, err := resolver.AccessibleShelterIDs(adopter, org)
		assert.ErrorIs(t, err, apperrors.ErrRoleForbidden)
	})
}

func TestScopeResolver_GuardShelter(t *testing.T) {
	org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}}

	t.Run("in scope", func(t *testing.T) {
		resolver, m := newScopeResolver(t)
		shelter := &models.Shelter{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: org.ID}
		scope := auth.NewShelterIDSet([]uuid.UUID{shelter.ID})

		m.shelterRepo.EXPECT().GetByID(shelter.ID).Return(shelter, nil)

		got, err := resolver.GuardShelter(org, scope, shelter.ID)
		require.NoError(t, err)
		assert.Equal(t, shelter.ID, got.ID)
	})

	t.Run("absent shelter is not found", func(t *testing.T) {
		resolver, m := newScopeResolver(t)
		shelterID := uuid.New()

		m.shelterRepo.EXPECT().GetByID(shelterID).Return(nil, gorm.ErrRecordNotFound)

		_, err := resolver.GuardShelter(org, auth.NewShelterIDSet(nil), shelterID)
		assert.ErrorIs(t, err, apperrors.ErrShelterNotFound)
	})

	t.Run("another tenant's shelter is reported as not found", func(t *testing.T) {
		resolver, m := newScopeResolver(t)
		foreign := &models.Shelter{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: uuid.New()}

		m.shelterRepo.EXPECT().GetByID(foreign.ID).Return(foreign, nil)

		_, err := resolver.GuardShelter(org, auth.NewShelterIDSet([]uuid.UUID{foreign.ID}), foreign.ID)
		assert.ErrorIs(t, err, apperrors.ErrShelterNotFound)
	})

	t.Run("same tenant but outside the caller's scope", func(t *testing.T) {
		resolver, m := newScopeResolver(t)
		shelter := &models.Shelter{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: org.ID}

		m.shelterRepo.EXPECT().GetByID(shelter.ID).Return(shelter, nil)

		// Staff assigned elsewhere in the same org.
		_, err := resolver.GuardShelter(org, auth.NewShelterIDSet([]uuid.UUID{uuid.New()}), shelter.ID)
		assert.ErrorIs(t, err, apperrors.ErrOutOfScope)
	})
}

func TestScopeResolver_GuardAnimal(t *testing.T) {
	t.Run("in scope", func(t *testing.T) {
		resolver, m := newScopeResolver(t)
		shelterID := uuid.New()
		animal := &models.Animal{BaseModel: models.BaseModel{ID: uuid.New()}, ShelterID: shelterID, Name: "Rex"}

		m.animalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil)

		got, err := resolver.GuardAnimal(auth.NewShelterIDSet([]uuid.UUID{shelterID}), animal.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rex", got.Name)
	})

	t.Run("absent animal is not found", func(t *testing.T) {
		resolver, m := newScopeResolver(t)
		animalID := uuid.New()

		m.animalRepo.EXPECT().GetByID(animalID).Return(nil, gorm.ErrRecordNotFound)

		_, err := resolver.GuardAnimal(auth.NewShelterIDSet(nil), animalID)
		assert.ErrorIs(t, err, apperrors.ErrAnimalNotFound)
	})

	t.Run("existing animal outside scope is denied, not hidden", func(t *testing.T) {
		resolver, m := newScopeResolver(t)
		animal := &models.Animal{BaseModel: models.BaseModel{ID: uuid.New()}, ShelterID: uuid.New()}

		m.animalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil)

		_, err := resolver.GuardAnimal(auth.NewShelterIDSet([]uuid.UUID{uuid.New()}), animal.ID)
		assert.ErrorIs(t, err, apperrors.ErrOutOfScope)
	})
}
