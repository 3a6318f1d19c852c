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

// AdoptionRequestHandlerTestSuite defines the test suite for
// AdoptionRequestHandler. Adopter routes need only the resolved user;
// review routes run scope resolution against repository mocks.
type AdoptionRequestHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockService    *mocks.MockAdoptionRequestServiceInterface
	shelterRepo    *mocks.MockShelterRepositoryInterface
	membershipRepo *mocks.MockStaffMembershipRepositoryInterface
	handler        *AdoptionRequestHandler
	httpSuite      *testutils.HTTPTestSuite

	adopter *models.User
	admin   *models.User
	org     *models.Organization
}

// SetupTest sets up the test suite
func (suite *AdoptionRequestHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAdoptionRequestServiceInterface(suite.ctrl)
	suite.shelterRepo = mocks.NewMockShelterRepositoryInterface(suite.ctrl)
	suite.membershipRepo = mocks.NewMockStaffMembershipRepositoryInterface(suite.ctrl)
	animalRepo := mocks.NewMockAnimalRepositoryInterface(suite.ctrl)

	scopes := auth.NewScopeResolver(suite.shelterRepo, suite.membershipRepo, animalRepo)
	authz := auth.NewAuthorizer(nil, nil, scopes)

	suite.handler = NewAdoptionRequestHandler(suite.mockService, authz)

	suite.adopter = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "adopter@example.com",
		Role:      models.RoleAdopter,
	}
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
	requests := v1.Group("/adoption-requests")
	{
		// Adopter routes carry only the resolved user.
		requests.POST("", suite.seedUser(suite.adopter), suite.handler.SubmitAdoptionRequest)
		requests.GET("/mine", suite.seedUser(suite.adopter), suite.handler.ListOwnAdoptionRequests)
		requests.GET("/mine/:id", suite.seedUser(suite.adopter), suite.handler.GetOwnAdoptionRequest)

		// Review routes carry the tenant link as well.
		requests.GET("", suite.seedTenant(suite.admin), suite.handler.ListAdoptionRequests)
		requests.PUT("/:id/decision", suite.seedTenant(suite.admin), suite.handler.DecideAdoptionRequest)
	}
}

// TearDownTest cleans up after each test
func (suite *AdoptionRequestHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AdoptionRequestHandlerTestSuite) seedUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextUserKey, user)
		c.Next()
	}
}

func (suite *AdoptionRequestHandlerTestSuite) seedTenant(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextUserKey, user)
		c.Set(auth.ContextTenantKey, &auth.TenantLink{
			Kind:         auth.LinkAdminOf,
			Organization: suite.org,
		})
		c.Next()
	}
}

func (suite *AdoptionRequestHandlerTestSuite) expectAdminScope(shelterIDs ...uuid.UUID) {
	suite.shelterRepo.EXPECT().
		GetIDsByOrganizationID(suite.org.ID).
		Return(shelterIDs, nil).
		Times(1)
}

// TestSubmitAdoptionRequest tests an adopter filing a request
func (suite *AdoptionRequestHandlerTestSuite) TestSubmitAdoptionRequest() {
	animalID := uuid.New()
	requestBody := map[string]interface{}{"animal_id": animalID.String()}

	expectedResponse := &service.AdoptionRequestResponse{
		ID:            uuid.New(),
		AnimalID:      animalID,
		AdopterUserID: suite.adopter.ID,
		Status:        models.RequestStatusSubmitted,
	}

	suite.mockService.EXPECT().
		Submit(suite.adopter, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/adoption-requests", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.AdoptionRequestResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), suite.adopter.ID, response.AdopterUserID)
	assert.Equal(suite.T(), models.RequestStatusSubmitted, response.Status)
}

// TestSubmitAdoptionRequestUnavailable maps a non-available animal to 400
func (suite *AdoptionRequestHandlerTestSuite) TestSubmitAdoptionRequestUnavailable() {
	requestBody := map[string]interface{}{"animal_id": uuid.New().String()}

	suite.mockService.EXPECT().
		Submit(suite.adopter, gomock.Any()).
		Return(nil, apperrors.ErrAnimalNotAvailable).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/adoption-requests", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "not available for adoption")
}

// TestGetOwnAdoptionRequestForeign verifies another adopter's request reads
// as missing, not forbidden
func (suite *AdoptionRequestHandlerTestSuite) TestGetOwnAdoptionRequestForeign() {
	requestID := uuid.New()

	suite.mockService.EXPECT().
		GetOwnByID(suite.adopter, requestID).
		Return(nil, apperrors.ErrAdoptionRequestNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/adoption-requests/mine/"+requestID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "adoption request not found")
}

// TestListOwnAdoptionRequests tests the adopter's own listing
func (suite *AdoptionRequestHandlerTestSuite) TestListOwnAdoptionRequests() {
	expectedResponse := &service.AdoptionRequestListResponse{
		Requests: []service.AdoptionRequestResponse{
			{ID: uuid.New(), AdopterUserID: suite.adopter.ID},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockService.EXPECT().
		ListOwn(suite.adopter, 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/adoption-requests/mine", nil)

	var response service.AdoptionRequestListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestListAdoptionRequestsForScope tests the staff/admin review listing
func (suite *AdoptionRequestHandlerTestSuite) TestListAdoptionRequestsForScope() {
	shelterID := uuid.New()
	suite.expectAdminScope(shelterID)

	expectedResponse := &service.AdoptionRequestListResponse{
		Requests: []service.AdoptionRequestResponse{{ID: uuid.New()}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockService.EXPECT().
		ListForScope(gomock.Any(), 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/adoption-requests", nil)

	var response service.AdoptionRequestListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Requests, 1)
}

// TestDecideAdoptionRequest tests approving a request
func (suite *AdoptionRequestHandlerTestSuite) TestDecideAdoptionRequest() {
	suite.expectAdminScope(uuid.New())
	requestID := uuid.New()
	requestBody := map[string]interface{}{
		"status":      "Approved",
		"staff_notes": "home visit passed",
	}

	expectedResponse := &service.AdoptionRequestResponse{
		ID:         requestID,
		Status:     models.RequestStatusApproved,
		StaffNotes: "home visit passed",
	}

	suite.mockService.EXPECT().
		Decide(gomock.Any(), requestID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/adoption-requests/"+requestID.String()+"/decision", requestBody)

	var response service.AdoptionRequestResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), models.RequestStatusApproved, response.Status)
}

// TestDecideAdoptionRequestBadStatus rejects statuses outside the decision set
func (suite *AdoptionRequestHandlerTestSuite) TestDecideAdoptionRequestBadStatus() {
	suite.expectAdminScope(uuid.New())
	requestID := uuid.New()
	requestBody := map[string]interface{}{"status": "Submitted"}

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/adoption-requests/"+requestID.String()+"/decision", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Approved or Rejected")
}

// TestDecideAdoptionRequestAlreadyDecided maps a repeat decision to 400
func (suite *AdoptionRequestHandlerTestSuite) TestDecideAdoptionRequestAlreadyDecided() {
	suite.expectAdminScope(uuid.New())
	requestID := uuid.New()
	requestBody := map[string]interface{}{"status": "Rejected"}

	suite.mockService.EXPECT().
		Decide(gomock.Any(), requestID, gomock.Any()).
		Return(nil, apperrors.ErrRequestAlreadyDecided).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/adoption-requests/"+requestID.String()+"/decision", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "already been decided")
}

// TestAdoptionRequestHandlerTestSuite runs the test suite
func TestAdoptionRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AdoptionRequestHandlerTestSuite))
}
