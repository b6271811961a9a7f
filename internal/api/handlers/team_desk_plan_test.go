package handlers

import (
	"context"
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

// TeamDeskPlanHandlerTestSuite defines the test suite for TeamDeskPlanHandler
type TeamDeskPlanHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockPlanService *mocks.MockTeamDeskPlanServiceInterface
	handler         *TeamDeskPlanHandler
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamDeskPlanHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlanService = mocks.NewMockTeamDeskPlanServiceInterface(suite.ctrl)
	suite.handler = NewTeamDeskPlanHandler(suite.mockPlanService)
	suite.httpSuite = testutils.SetupHTTPTest()

	plans := suite.httpSuite.Router.Group("/api/v1/team-desk-plans")
	{
		plans.POST("", suite.handler.CreateTeamDeskPlan)
		plans.GET("", suite.handler.ListTeamDeskPlans)
		plans.GET("/:id", suite.handler.GetTeamDeskPlan)
		plans.PUT("/:id/content", suite.handler.UpdateTeamDeskPlanContent)
		plans.POST("/:id/submit", suite.handler.SubmitTeamDeskPlan)
		plans.POST("/:id/reviews", suite.handler.AddReview)
		plans.GET("/:id/reviews", suite.handler.ListReviews)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamDeskPlanHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamDeskPlanHandlerTestSuite) TestCreateTeamDeskPlanWithoutRelations() {
	orgID := uuid.New()

	suite.mockPlanService.EXPECT().
		Create(gomock.Any(), &service.CreateTeamDeskPlanRequest{OrganizationID: orgID}).
		Return(&service.TeamDeskPlanResponse{
			ID:               uuid.New(),
			OrganizationID:   orgID,
			OrganizationName: "Policy Executive",
			TeamDeskName:     "N/A",
			LeoEoPlanName:    "N/A",
			Status:           models.TeamDeskPlanStatusDraft,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/team-desk-plans", map[string]interface{}{
		"organization_id": orgID.String(),
	})

	var response service.TeamDeskPlanResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "N/A", response.TeamDeskName)
	assert.Equal(suite.T(), "N/A", response.LeoEoPlanName)
	assert.Equal(suite.T(), 0, response.ReviewCount)
}

func (suite *TeamDeskPlanHandlerTestSuite) TestCreateTeamDeskPlanInvalidTeamDesk() {
	suite.mockPlanService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidTeamDesk).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/team-desk-plans", map[string]interface{}{
		"organization_id": uuid.New().String(),
		"team_desk_id":    uuid.New().String(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "TEAM_LEAD or DESK")
}

func (suite *TeamDeskPlanHandlerTestSuite) TestListTeamDeskPlansFilters() {
	orgID := uuid.New()
	deskID := uuid.New()

	suite.mockPlanService.EXPECT().
		List(&service.ListTeamDeskPlansRequest{
			OrganizationID: &orgID,
			TeamDeskID:     &deskID,
			Status:         models.TeamDeskPlanStatusSubmitted,
			Page:           1,
			PageSize:       20,
		}).
		Return(&service.TeamDeskPlanListResponse{Plans: []service.TeamDeskPlanResponse{}, Page: 1, PageSize: 20}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/team-desk-plans?organization_id=%s&team_desk_id=%s&status=submitted", orgID, deskID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *TeamDeskPlanHandlerTestSuite) TestListTeamDeskPlansInvalidFilter() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/team-desk-plans?team_desk_id=abc", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid team_desk_id")
}

func (suite *TeamDeskPlanHandlerTestSuite) TestListTeamDeskPlansInvalidStatus() {
	suite.mockPlanService.EXPECT().
		List(gomock.Any()).
		Return(nil, fmt.Errorf("%w: archived", apperrors.ErrInvalidStatus)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/team-desk-plans?status=archived", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid status")
}

func (suite *TeamDeskPlanHandlerTestSuite) TestUpdateContent() {
	planID := uuid.New()
	objectiveID := uuid.New()

	suite.mockPlanService.EXPECT().
		UpdateContent(gomock.Any(), planID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.UpdateTeamDeskPlanContentRequest) (*service.TeamDeskPlanResponse, error) {
			assert.Equal(suite.T(), []uuid.UUID{objectiveID}, req.ObjectiveIDs)
			assert.Empty(suite.T(), req.DetailActivityIDs)
			return &service.TeamDeskPlanResponse{
				ID: planID,
				Content: &service.TeamDeskPlanContent{
					Objectives: []service.ContentItem{{ID: objectiveID, Name: "Quality"}},
				},
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/team-desk-plans/"+planID.String()+"/content", map[string]interface{}{
		"objective_ids": []string{objectiveID.String()},
	})

	var response service.TeamDeskPlanResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	if assert.NotNil(suite.T(), response.Content) {
		assert.Equal(suite.T(), "Quality", response.Content.Objectives[0].Name)
	}
}

func (suite *TeamDeskPlanHandlerTestSuite) TestSubmitTeamDeskPlanTwice() {
	planID := uuid.New()

	suite.mockPlanService.EXPECT().
		Submit(gomock.Any(), planID).
		Return(nil, fmt.Errorf("%w: plan is submitted", apperrors.ErrInvalidStatusTransition)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/team-desk-plans/"+planID.String()+"/submit", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "invalid status transition")
}

func (suite *TeamDeskPlanHandlerTestSuite) TestAddReview() {
	planID := uuid.New()
	reviewerID := uuid.New()

	suite.mockPlanService.EXPECT().
		AddReview(gomock.Any(), planID, &service.AddReviewRequest{
			ReviewerID: &reviewerID,
			Status:     models.ReviewStatusApproved,
			Feedback:   "Looks good",
		}).
		Return(&service.ReviewResponse{
			ID:           uuid.New(),
			PlanID:       planID,
			PlanInfo:     "Planning Desk (Policy Executive)",
			ReviewerID:   &reviewerID,
			ReviewerName: "Almaz Kebede",
			Status:       models.ReviewStatusApproved,
			Feedback:     "Looks good",
			ReviewedAt:   "2024-09-01T08:00:00Z",
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/team-desk-plans/"+planID.String()+"/reviews", map[string]interface{}{
		"reviewer_id": reviewerID.String(),
		"status":      "approved",
		"feedback":    "Looks good",
	})

	var response service.ReviewResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "Almaz Kebede", response.ReviewerName)
	assert.Equal(suite.T(), "Planning Desk (Policy Executive)", response.PlanInfo)
}

func (suite *TeamDeskPlanHandlerTestSuite) TestAddReviewReviewerNotFound() {
	planID := uuid.New()

	suite.mockPlanService.EXPECT().
		AddReview(gomock.Any(), planID, gomock.Any()).
		Return(nil, apperrors.ErrReviewerNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/team-desk-plans/"+planID.String()+"/reviews", map[string]interface{}{
		"reviewer_id": uuid.New().String(),
		"status":      "rejected",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "reviewer not found")
}

func (suite *TeamDeskPlanHandlerTestSuite) TestListReviewsEmpty() {
	planID := uuid.New()

	suite.mockPlanService.EXPECT().
		ListReviews(planID).
		Return([]service.ReviewResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/team-desk-plans/"+planID.String()+"/reviews", nil)

	var response []service.ReviewResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.NotNil(suite.T(), response)
	assert.Empty(suite.T(), response)
}

func (suite *TeamDeskPlanHandlerTestSuite) TestGetTeamDeskPlanNotFound() {
	planID := uuid.New()

	suite.mockPlanService.EXPECT().
		GetByID(planID).
		Return(nil, apperrors.ErrTeamDeskPlanNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/team-desk-plans/"+planID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team/desk plan not found")
}

// TestTeamDeskPlanHandlerTestSuite runs the test suite
func TestTeamDeskPlanHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamDeskPlanHandlerTestSuite))
}
