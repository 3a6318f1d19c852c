package handlers

import (
	"net/http"
	"testing"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/database/models"
	apperrors "pawbase-backend/internal/errors"
	"pawbase-backend/internal/mocks"
	"pawbase-backend/internal/service"
	"pawbase-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ShelterHandlerTestSuite defines the test suite for ShelterHandler. Scope
// resolution runs against repository mocks; token verification and tenant
// resolution are emulated by a middleware that seeds the request context
// the way RequireAuth and TenantContext do.
type ShelterHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockShelterService *mocks.MockShelterServiceInterface
	shelterRepo        *mocks.MockShelterRepositoryInterface
	membershipRepo     *mocks.MockStaffMembershipRepositoryInterface
	handler            *ShelterHandler
	httpSuite          *testutils.HTTPTestSuite

	admin *models.User
	org   *models.Organization
}

// SetupTest sets up the test suite
func (suite *ShelterHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShelterService = mocks.NewMockShelterServiceInterface(suite.ctrl)
	suite.shelterRepo = mocks.NewMockShelterRepositoryInterface(suite.ctrl)
	suite.membershipRepo = mocks.NewMockStaffMembershipRepositoryInterface(suite.ctrl)
	animalRepo := mocks.NewMockAnimalRepositoryInterface(suite.ctrl)

	scopes := auth.NewScopeResolver(suite.shelterRepo, suite.membershipRepo, animalRepo)
	// Authorize only touches the scope resolver; token and tenant stages
	// are replaced by the context-seeding middleware below.
	authz := auth.NewAuthorizer(nil, nil, scopes)

	suite.handler = NewShelterHandler(suite.mockShelterService, authz)

	suite.admin = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "admin@example.com",
		Role:      models.RoleOrgAdmin,
	}
	suite.org = &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Happy Paws",
		AdminID:   suite.admin.ID,
	}

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(suite.seedContext(suite.admin, suite.org))
	shelters := v1.Group("/shelters")
	{
		shelters.POST("", suite.handler.CreateShelter)
		shelters.GET("", suite.handler.ListShelters)
		shelters.GET("/:id", suite.handler.GetShelter)
		shelters.PUT("/:id", suite.handler.UpdateShelter)
		shelters.DELETE("/:id", suite.handler.DeleteShelter)
	}
}

// TearDownTest cleans up after each test
func (suite *ShelterHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// seedContext stores the resolved user and tenant link like the auth chain
func (suite *ShelterHandlerTestSuite) seedContext(user *models.User, org *models.Organization) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextUserKey, user)
		c.Set(auth.ContextTenantKey, &auth.TenantLink{
			Kind:         auth.LinkAdminOf,
			Organization: org,
		})
		c.Next()
	}
}

// expectAdminScope stubs the org shelter listing used for admin scope
func (suite *ShelterHandlerTestSuite) expectAdminScope(shelterIDs ...uuid.UUID) {
	suite.shelterRepo.EXPECT().
		GetIDsByOrganizationID(suite.org.ID).
		Return(shelterIDs, nil).
		Times(1)
}

// TestCreateShelter tests creating a shelter in the caller's organization
func (suite *ShelterHandlerTestSuite) TestCreateShelter() {
	suite.expectAdminScope()

	requestBody := map[string]interface{}{
		"name": "North Branch",
		"city": "Haifa",
	}

	expectedResponse := &service.ShelterResponse{
		ID:             uuid.New(),
		OrganizationID: suite.org.ID,
		Name:           "North Branch",
		City:           "Haifa",
	}

	suite.mockShelterService.EXPECT().
		Create(suite.org, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/shelters", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.ShelterResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), suite.org.ID, response.OrganizationID)
	assert.Equal(suite.T(), "North Branch", response.Name)
}

// TestCreateShelterDuplicate tests the conflict path
func (suite *ShelterHandlerTestSuite) TestCreateShelterDuplicate() {
	suite.expectAdminScope()

	suite.mockShelterService.EXPECT().
		Create(suite.org, gomock.Any()).
		Return(nil, apperrors.ErrShelterExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/shelters",
		map[string]interface{}{"name": "North Branch"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "shelter already exists")
}

// TestListShelters tests listing with the admin's full organization scope
func (suite *ShelterHandlerTestSuite) TestListShelters() {
	shelterID := uuid.New()
	suite.expectAdminScope(shelterID)

	expectedResponse := &service.ShelterListResponse{
		Shelters: []service.ShelterResponse{{ID: shelterID, OrganizationID: suite.org.ID}},
		Total:    1,
	}

	suite.mockShelterService.EXPECT().
		List(suite.org, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/shelters", nil)

	var response service.ShelterListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 1, response.Total)
}

// TestGetShelterNotFound maps a missing shelter to 404
func (suite *ShelterHandlerTestSuite) TestGetShelterNotFound() {
	suite.expectAdminScope()
	shelterID := uuid.New()

	suite.mockShelterService.EXPECT().
		GetByID(suite.org, gomock.Any(), shelterID).
		Return(nil, apperrors.ErrShelterNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/shelters/"+shelterID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "shelter not found")
}

// TestGetShelterOutOfScope maps a same-tenant scope miss to 403
func (suite *ShelterHandlerTestSuite) TestGetShelterOutOfScope() {
	suite.expectAdminScope()
	shelterID := uuid.New()

	suite.mockShelterService.EXPECT().
		GetByID(suite.org, gomock.Any(), shelterID).
		Return(nil, apperrors.ErrOutOfScope).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/shelters/"+shelterID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not in your shelter")
}

// TestGetShelterInvalidID tests UUID parsing
func (suite *ShelterHandlerTestSuite) TestGetShelterInvalidID() {
	suite.expectAdminScope()

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/shelters/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid shelter ID")
}

// TestStaffWithoutAssignment tests that an unassigned staff user gets 403
// before any shelter query runs
func (suite *ShelterHandlerTestSuite) TestStaffWithoutAssignment() {
	staff := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "staff@example.com",
		Role:      models.RoleStaff,
	}
	router := testutils.SetupHTTPTest()
	router.Router.GET("/api/v1/shelters",
		suite.seedContext(staff, suite.org), suite.handler.ListShelters)

	suite.membershipRepo.EXPECT().
		GetByUserID(staff.ID).
		Return([]models.StaffMembership{}, nil).
		Times(1)

	recorder := router.MakeRequest("GET", "/api/v1/shelters", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "no shelter assignment")
}

// TestDeleteShelter tests deleting a shelter
func (suite *ShelterHandlerTestSuite) TestDeleteShelter() {
	shelterID := uuid.New()
	suite.expectAdminScope(shelterID)

	suite.mockShelterService.EXPECT().
		Delete(suite.org, gomock.Any(), shelterID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/shelters/"+shelterID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestShelterHandlerTestSuite runs the test suite
func TestShelterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShelterHandlerTestSuite))
}
