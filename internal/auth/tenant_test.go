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

type tenantResolverMocks struct {
	orgRepo        *mocks.MockOrganizationRepositoryInterface
	shelterRepo    *mocks.MockShelterRepositoryInterface
	membershipRepo *mocks.MockStaffMembershipRepositoryInterface
}

func newTenantResolver(t *testing.T) (*auth.TenantResolver, tenantResolverMocks) {
	ctrl := gomock.NewController(t)
	m := tenantResolverMocks{
		orgRepo:        mocks.NewMockOrganizationRepositoryInterface(ctrl),
		shelterRepo:    mocks.NewMockShelterRepositoryInterface(ctrl),
		membershipRepo: mocks.NewMockStaffMembershipRepositoryInterface(ctrl),
	}
	return auth.NewTenantResolver(m.orgRepo, m.shelterRepo, m.membershipRepo), m
}

func TestTenantResolver_AdminPath(t *testing.T) {
	resolver, m := newTenantResolver(t)

	admin := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleOrgAdmin}
	org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Happy Paws", AdminID: admin.ID}

	m.orgRepo.EXPECT().GetByAdminID(admin.ID).Return(org, nil)

	link, err := resolver.TenantOf(admin)
	require.NoError(t, err)
	assert.Equal(t, auth.LinkAdminOf, link.Kind)
	assert.Equal(t, org.ID, link.Organization.ID)
	assert.Nil(t, link.Shelter)
}

func TestTenantResolver_StaffPath(t *testing.T) {
	resolver, m := newTenantResolver(t)

	staff := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleStaff}
	org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Happy Paws"}
	shelter := &models.Shelter{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: org.ID, Name: "Downtown"}

	m.orgRepo.EXPECT().GetByAdminID(staff.ID).Return(nil, gorm.ErrRecordNotFound)
	m.membershipRepo.EXPECT().GetByUserID(staff.ID).Return([]models.StaffMembership{
		{UserID: staff.ID, ShelterID: shelter.ID},
	}, nil)
	m.shelterRepo.EXPECT().GetByID(shelter.ID).Return(shelter, nil)
	m.orgRepo.EXPECT().GetByID(org.ID).Return(org, nil)

	link, err := resolver.TenantOf(staff)
	require.NoError(t, err)
	assert.Equal(t, auth.LinkStaffOf, link.Kind)
	assert.Equal(t, org.ID, link.Organization.ID)
	require.NotNil(t, link.Shelter)
	assert.Equal(t, shelter.ID, link.Shelter.ID)
}

// An org admin who also holds staff memberships resolves through the admin
// path; membership lookups are never reached.
func TestTenantResolver_AdminPathWinsOverMembership(t *testing.T) {
	resolver, m := newTenantResolver(t)

	admin := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleOrgAdmin}
	org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, AdminID: admin.ID}

	m.orgRepo.EXPECT().GetByAdminID(admin.ID).Return(org, nil)
	// No membershipRepo expectations: resolution must not touch memberships.

	link, err := resolver.TenantOf(admin)
	require.NoError(t, err)
	assert.Equal(t, auth.LinkAdminOf, link.Kind)
}

func TestTenantResolver_NoTenant(t *testing.T) {
	t.Run("no admin link and no memberships", func(t *testing.T) {
		resolver, m := newTenantResolver(t)
		user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleStaff}

		m.orgRepo.EXPECT().GetByAdminID(user.ID).Return(nil, gorm.ErrRecordNotFound)
		m.membershipRepo.EXPECT().GetByUserID(user.ID).Return([]models.StaffMembership{}, nil)

		_, err := resolver.TenantOf(user)
		assert.ErrorIs(t, err, apperrors.ErrNoTenant)
	})

	t.Run("membership points at a deleted shelter", func(t *testing.T) {
		resolver, m := newTenantResolver(t)
		user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleStaff}
		shelterID := uuid.New()

		m.orgRepo.EXPECT().GetByAdminID(user.ID).Return(nil, gorm.ErrRecordNotFound)
		m.membershipRepo.EXPECT().GetByUserID(user.ID).Return([]models.StaffMembership{
			{UserID: user.ID, ShelterID: shelterID},
		}, nil)
		m.shelterRepo.EXPECT().GetByID(shelterID).Return(nil, gorm.ErrRecordNotFound)

		_, err := resolver.TenantOf(user)
		assert.ErrorIs(t, err, apperrors.ErrNoTenant)
	})
}
