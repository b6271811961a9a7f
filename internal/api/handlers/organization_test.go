package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"strategic-planning-backend/internal/database/models"
	apperrors "strategic-planning-backend/internal/errors"
	"strategic-planning-backend/internal/mocks"
	"strategic-planning-backend/internal/service"
	"strategic-planning-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	orgs := v1.Group("/organizations")
	{
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.GET("", suite.handler.ListOrganizations)
		orgs.GET("/:id", suite.handler.GetOrganization)
		orgs.GET("/:id/children", suite.handler.GetOrganizationChildren)
		orgs.PUT("/:id", suite.handler.UpdateOrganization)
		orgs.DELETE("/:id", suite.handler.DeleteOrganization)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationHandlerTestSuite) sampleResponse(id uuid.UUID) *service.OrganizationResponse {
	return &service.OrganizationResponse{
		ID:             id,
		Name:           "Ministry of Health",
		Type:           models.OrganizationTypeMinister,
		ParentName:     "N/A",
		CoreValues:     []string{"Integrity", "Excellence"},
		CoreValuesText: "Integrity\nExcellence",
		CreatedAt:      "2024-01-01T00:00:00Z",
		UpdatedAt:      "2024-01-01T00:00:00Z",
	}
}

// TestCreateOrganization tests creating an organization from core values text
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name":             "Ministry of Health",
		"type":             "MINISTER",
		"core_values_text": "  Integrity \nExcellence\n\n  ",
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateOrganizationRequest) (*service.OrganizationResponse, error) {
			assert.Equal(suite.T(), "Ministry of Health", req.Name)
			if assert.NotNil(suite.T(), req.CoreValuesText) {
				assert.Equal(suite.T(), "  Integrity \nExcellence\n\n  ", *req.CoreValuesText)
			}
			return suite.sampleResponse(orgID), nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), orgID, response.ID)
	assert.Equal(suite.T(), []string{"Integrity", "Excellence"}, response.CoreValues)
	assert.Equal(suite.T(), "N/A", response.ParentName)
}

// TestCreateOrganizationInvalidJSON tests a malformed body
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationInvalidJSON() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", "not-an-object")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestCreateOrganizationConflict tests a duplicate name
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationConflict() {
	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrOrganizationExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", map[string]interface{}{"name": "Dup", "type": "DESK"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "organization already exists")
}

// TestCreateOrganizationServiceError tests an unexpected service error
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationServiceError() {
	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any()).
		Return(nil, fmt.Errorf("service error")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", map[string]interface{}{"name": "Org", "type": "DESK"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to create organization")
}

// TestGetOrganization tests getting an organization by ID
func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		GetByID(orgID).
		Return(suite.sampleResponse(orgID), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String(), nil)

	var response service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Integrity\nExcellence", response.CoreValuesText)
}

// TestGetOrganizationInvalidID tests a malformed UUID
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/invalid-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

// TestGetOrganizationNotFound tests getting a missing organization
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		GetByID(orgID).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

// TestListOrganizations tests pagination parameters
func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	expected := &service.OrganizationListResponse{
		Organizations: []service.OrganizationResponse{*suite.sampleResponse(uuid.New())},
		Total:         1,
		Page:          2,
		PageSize:      10,
	}

	suite.mockOrganizationService.EXPECT().
		GetAll(2, 10).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations?page=2&page_size=10", nil)

	var response service.OrganizationListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Organizations, 1)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestListOrganizationsDefaults tests out of range pagination falling back to defaults
func (suite *OrganizationHandlerTestSuite) TestListOrganizationsDefaults() {
	suite.mockOrganizationService.EXPECT().
		GetAll(1, 20).
		Return(&service.OrganizationListResponse{Organizations: []service.OrganizationResponse{}, Page: 1, PageSize: 20}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations?page=-1&page_size=500", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetOrganizationChildren tests listing child organizations
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationChildren() {
	parentID := uuid.New()
	child := suite.sampleResponse(uuid.New())
	child.ParentID = &parentID
	child.ParentName = "Ministry of Health"

	suite.mockOrganizationService.EXPECT().
		GetChildren(parentID).
		Return([]service.OrganizationResponse{*child}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+parentID.String()+"/children", nil)

	var response []service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Ministry of Health", response[0].ParentName)
}

// TestUpdateOrganizationCycle tests rejecting a parent cycle
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganizationCycle() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Update(orgID, gomock.Any()).
		Return(nil, apperrors.ErrOrganizationCycle).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/"+orgID.String(), map[string]interface{}{
		"name":      "Ministry of Health",
		"type":      "MINISTER",
		"parent_id": orgID.String(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "own ancestor")
}

// TestUpdateOrganization tests a successful update
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganization() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Update(orgID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, req *service.UpdateOrganizationRequest) (*service.OrganizationResponse, error) {
			assert.Equal(suite.T(), []string{"Integrity", "Excellence"}, req.CoreValues)
			return suite.sampleResponse(id), nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/"+orgID.String(), map[string]interface{}{
		"name":        "Ministry of Health",
		"type":        "MINISTER",
		"core_values": []string{"Integrity", "Excellence"},
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteOrganization tests deleting an organization
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganization() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Delete(orgID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteOrganizationNotFound tests deleting a missing organization
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Delete(orgID).
		Return(apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+orgID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
