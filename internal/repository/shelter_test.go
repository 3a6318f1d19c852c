//go:build integration
// +build integration

package repository

import (
	"testing"

	"pawbase-backend/internal/database/models"
	"pawbase-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ShelterRepositoryTestSuite tests the ShelterRepository
type ShelterRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShelterRepository
	factories     *testutils.FactorySet
}

func (suite *ShelterRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewShelterRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ShelterRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ShelterRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ShelterRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOrganization persists a minimal organization to satisfy the shelter
// foreign key.
func (suite *ShelterRepositoryTestSuite) createOrganization() *models.Organization {
	admin := suite.factories.User.CreateWithRole(models.RoleOrgAdmin)
	suite.NoError(suite.baseTestSuite.DB.Create(admin).Error)

	org := suite.factories.Organization.Create(admin.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)
	return org
}

func (suite *ShelterRepositoryTestSuite) TestCreate() {
	org := suite.createOrganization()
	shelter := suite.factories.Shelter.Create(org.ID)

	err := suite.repo.Create(shelter)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, shelter.ID)
	suite.NotZero(shelter.CreatedAt)
}

func (suite *ShelterRepositoryTestSuite) TestGetByID() {
	org := suite.createOrganization()
	shelter := suite.factories.Shelter.CreateWithName(org.ID, "North Branch")
	suite.NoError(suite.repo.Create(shelter))

	found, err := suite.repo.GetByID(shelter.ID)

	suite.NoError(err)
	suite.Equal("North Branch", found.Name)
	suite.Equal(org.ID, found.OrganizationID)
}

func (suite *ShelterRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetIDsByOrganizationID verifies the tenant's shelter set excludes other
// organizations.
func (suite *ShelterRepositoryTestSuite) TestGetIDsByOrganizationID() {
	org := suite.createOrganization()
	other := suite.createOrganization()

	s1 := suite.factories.Shelter.Create(org.ID)
	s2 := suite.factories.Shelter.Create(org.ID)
	foreign := suite.factories.Shelter.Create(other.ID)
	suite.NoError(suite.repo.Create(s1))
	suite.NoError(suite.repo.Create(s2))
	suite.NoError(suite.repo.Create(foreign))

	ids, err := suite.repo.GetIDsByOrganizationID(org.ID)

	suite.NoError(err)
	suite.Len(ids, 2)
	suite.ElementsMatch([]uuid.UUID{s1.ID, s2.ID}, ids)
}

func (suite *ShelterRepositoryTestSuite) TestGetIDsByOrganizationIDEmpty() {
	ids, err := suite.repo.GetIDsByOrganizationID(uuid.New())
	suite.NoError(err)
	suite.Empty(ids)
}

func (suite *ShelterRepositoryTestSuite) TestGetByNameInOrganization() {
	org := suite.createOrganization()
	other := suite.createOrganization()

	shelter := suite.factories.Shelter.CreateWithName(org.ID, "Downtown")
	suite.NoError(suite.repo.Create(shelter))

	found, err := suite.repo.GetByNameInOrganization(org.ID, "Downtown")
	suite.NoError(err)
	suite.Equal(shelter.ID, found.ID)

	// Same name is free in a different organization.
	_, err = suite.repo.GetByNameInOrganization(other.ID, "Downtown")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ShelterRepositoryTestSuite) TestUpdate() {
	org := suite.createOrganization()
	shelter := suite.factories.Shelter.Create(org.ID)
	suite.NoError(suite.repo.Create(shelter))

	shelter.City = "Tel Aviv"
	suite.NoError(suite.repo.Update(shelter))

	found, err := suite.repo.GetByID(shelter.ID)
	suite.NoError(err)
	suite.Equal("Tel Aviv", found.City)
}

func (suite *ShelterRepositoryTestSuite) TestDelete() {
	org := suite.createOrganization()
	shelter := suite.factories.Shelter.Create(org.ID)
	suite.NoError(suite.repo.Create(shelter))

	suite.NoError(suite.repo.Delete(shelter.ID))

	_, err := suite.repo.GetByID(shelter.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestShelterRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShelterRepositoryTestSuite))
}
