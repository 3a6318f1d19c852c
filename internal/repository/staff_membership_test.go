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

// StaffMembershipRepositoryTestSuite tests the StaffMembershipRepository
type StaffMembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *StaffMembershipRepository
	factories     *testutils.FactorySet

	org     *models.Organization
	shelter *models.Shelter
}

func (suite *StaffMembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewStaffMembershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *StaffMembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *StaffMembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	admin := suite.factories.User.CreateWithRole(models.RoleOrgAdmin)
	suite.NoError(suite.baseTestSuite.DB.Create(admin).Error)

	suite.org = suite.factories.Organization.Create(admin.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.org).Error)

	suite.shelter = suite.factories.Shelter.Create(suite.org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.shelter).Error)
}

func (suite *StaffMembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *StaffMembershipRepositoryTestSuite) createStaffUser() *models.User {
	staff := suite.factories.User.CreateWithRole(models.RoleStaff)
	suite.NoError(suite.baseTestSuite.DB.Create(staff).Error)
	return staff
}

func (suite *StaffMembershipRepositoryTestSuite) TestCreate() {
	staff := suite.createStaffUser()
	m := suite.factories.StaffMembership.Create(staff.ID, suite.shelter.ID)

	err := suite.repo.Create(m)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, m.ID)
}

// TestCreateDuplicatePair verifies the unique user+shelter index.
func (suite *StaffMembershipRepositoryTestSuite) TestCreateDuplicatePair() {
	staff := suite.createStaffUser()
	first := suite.factories.StaffMembership.Create(staff.ID, suite.shelter.ID)
	suite.NoError(suite.repo.Create(first))

	dup := suite.factories.StaffMembership.Create(staff.ID, suite.shelter.ID)
	err := suite.repo.Create(dup)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

func (suite *StaffMembershipRepositoryTestSuite) TestGetByUserAndShelter() {
	staff := suite.createStaffUser()
	m := suite.factories.StaffMembership.Create(staff.ID, suite.shelter.ID)
	suite.NoError(suite.repo.Create(m))

	found, err := suite.repo.GetByUserAndShelter(staff.ID, suite.shelter.ID)
	suite.NoError(err)
	suite.Equal(m.ID, found.ID)

	_, err = suite.repo.GetByUserAndShelter(staff.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByUserID verifies a staff user's shelter set spans all memberships.
func (suite *StaffMembershipRepositoryTestSuite) TestGetByUserID() {
	staff := suite.createStaffUser()
	second := suite.factories.Shelter.Create(suite.org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(second).Error)

	suite.NoError(suite.repo.Create(suite.factories.StaffMembership.Create(staff.ID, suite.shelter.ID)))
	suite.NoError(suite.repo.Create(suite.factories.StaffMembership.Create(staff.ID, second.ID)))

	memberships, err := suite.repo.GetByUserID(staff.ID)

	suite.NoError(err)
	suite.Len(memberships, 2)

	shelterIDs := []uuid.UUID{memberships[0].ShelterID, memberships[1].ShelterID}
	suite.ElementsMatch([]uuid.UUID{suite.shelter.ID, second.ID}, shelterIDs)
}

func (suite *StaffMembershipRepositoryTestSuite) TestGetByShelterIDs() {
	staff := suite.createStaffUser()
	other := suite.createStaffUser()
	suite.NoError(suite.repo.Create(suite.factories.StaffMembership.Create(staff.ID, suite.shelter.ID)))
	suite.NoError(suite.repo.Create(suite.factories.StaffMembership.Create(other.ID, suite.shelter.ID)))

	memberships, err := suite.repo.GetByShelterIDs([]uuid.UUID{suite.shelter.ID})
	suite.NoError(err)
	suite.Len(memberships, 2)

	empty, err := suite.repo.GetByShelterIDs(nil)
	suite.NoError(err)
	suite.Empty(empty)
}

func (suite *StaffMembershipRepositoryTestSuite) TestDelete() {
	staff := suite.createStaffUser()
	m := suite.factories.StaffMembership.Create(staff.ID, suite.shelter.ID)
	suite.NoError(suite.repo.Create(m))

	suite.NoError(suite.repo.Delete(m.ID))

	_, err := suite.repo.GetByID(m.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestStaffMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StaffMembershipRepositoryTestSuite))
}
