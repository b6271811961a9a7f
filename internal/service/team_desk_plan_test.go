package service_test

import (
	"context"
	"errors"
	"testing"

	"strategic-planning-backend/internal/database/models"
	apperrors "strategic-planning-backend/internal/errors"
	"strategic-planning-backend/internal/mocks"
	"strategic-planning-backend/internal/repository"
	"strategic-planning-backend/internal/service"
	"strategic-planning-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamDeskPlanServiceTestSuite defines the test suite for TeamDeskPlanService
type TeamDeskPlanServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockPlans     *mocks.MockTeamDeskPlanRepositoryInterface
	mockReviews   *mocks.MockTeamDeskPlanReviewRepositoryInterface
	mockOrgs      *mocks.MockOrganizationRepositoryInterface
	mockLeoEo     *mocks.MockPlanRepositoryInterface
	mockMembers   *mocks.MockOrganizationUserRepositoryInterface
	mockObjective *mocks.MockStrategicObjectiveRepositoryInterface
	mockCatalog   *mocks.MockStrategyCatalogRepositoryInterface
	planService   *service.TeamDeskPlanService
	factories     *testutils.FactorySet
	ctx           context.Context

	executive *models.Organization
	desk      *models.Organization
}

// SetupTest sets up the test suite
func (suite *TeamDeskPlanServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlans = mocks.NewMockTeamDeskPlanRepositoryInterface(suite.ctrl)
	suite.mockReviews = mocks.NewMockTeamDeskPlanReviewRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockLeoEo = mocks.NewMockPlanRepositoryInterface(suite.ctrl)
	suite.mockMembers = mocks.NewMockOrganizationUserRepositoryInterface(suite.ctrl)
	suite.mockObjective = mocks.NewMockStrategicObjectiveRepositoryInterface(suite.ctrl)
	suite.mockCatalog = mocks.NewMockStrategyCatalogRepositoryInterface(suite.ctrl)
	suite.planService = service.NewTeamDeskPlanService(service.TeamDeskPlanRepositories{
		Plans:      suite.mockPlans,
		Reviews:    suite.mockReviews,
		Orgs:       suite.mockOrgs,
		LeoEoPlans: suite.mockLeoEo,
		Members:    suite.mockMembers,
		Objectives: suite.mockObjective,
		Catalog:    suite.mockCatalog,
	}, validator.New())
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()

	suite.executive = suite.factories.Organization.WithType("Policy Executive", models.OrganizationTypeExecutive, nil)
	suite.desk = suite.factories.Organization.WithType("Planning Desk", models.OrganizationTypeDesk, suite.executive)
}

// TearDownTest cleans up after each test
func (suite *TeamDeskPlanServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// plan returns a team/desk plan with its display relations loaded
func (suite *TeamDeskPlanServiceTestSuite) plan(status models.TeamDeskPlanStatus) *models.TeamDeskPlan {
	plan := suite.factories.Plan.TeamDesk(suite.executive, suite.desk, nil)
	plan.Status = status
	plan.Organization = suite.executive
	plan.TeamDesk = suite.desk
	return plan
}

// TestCreate tests creating a draft plan for a desk
func (suite *TeamDeskPlanServiceTestSuite) TestCreate() {
	leoEo := suite.factories.Plan.Create(suite.executive)
	leoEo.Organization = suite.executive

	suite.mockOrgs.EXPECT().GetByID(suite.executive.ID).Return(suite.executive, nil)
	suite.mockOrgs.EXPECT().GetByID(suite.desk.ID).Return(suite.desk, nil)
	suite.mockLeoEo.EXPECT().GetByID(leoEo.ID).Return(leoEo, nil)
	suite.mockPlans.EXPECT().Create(gomock.Any()).Return(nil)

	response, err := suite.planService.Create(suite.ctx, &service.CreateTeamDeskPlanRequest{
		OrganizationID: suite.executive.ID,
		TeamDeskID:     &suite.desk.ID,
		LeoEoPlanID:    &leoEo.ID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TeamDeskPlanStatusDraft, response.Status)
	assert.Equal(suite.T(), "Planning Desk", response.TeamDeskName)
	assert.Equal(suite.T(), "Policy Executive", response.OrganizationName)
	assert.Equal(suite.T(), "Policy Executive Plan", response.LeoEoPlanName)
	assert.Nil(suite.T(), response.SubmittedAt)
}

// TestCreateWithoutRelations tests that absent relations render as N/A
func (suite *TeamDeskPlanServiceTestSuite) TestCreateWithoutRelations() {
	suite.mockOrgs.EXPECT().GetByID(suite.executive.ID).Return(suite.executive, nil)
	suite.mockPlans.EXPECT().Create(gomock.Any()).Return(nil)

	response, err := suite.planService.Create(suite.ctx, &service.CreateTeamDeskPlanRequest{OrganizationID: suite.executive.ID})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "N/A", response.TeamDeskName)
	assert.Equal(suite.T(), "N/A", response.LeoEoPlanName)
}

// TestCreateTeamDeskWrongType tests that only teams and desks own team/desk plans
func (suite *TeamDeskPlanServiceTestSuite) TestCreateTeamDeskWrongType() {
	other := suite.factories.Organization.WithType("Another Executive", models.OrganizationTypeExecutive, nil)
	suite.mockOrgs.EXPECT().GetByID(suite.executive.ID).Return(suite.executive, nil)
	suite.mockOrgs.EXPECT().GetByID(other.ID).Return(other, nil)

	response, err := suite.planService.Create(suite.ctx, &service.CreateTeamDeskPlanRequest{
		OrganizationID: suite.executive.ID,
		TeamDeskID:     &other.ID,
	})

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrInvalidTeamDesk, err)
}

// TestCreateLeoEoPlanNotFound tests referencing a missing LEO/EO plan
func (suite *TeamDeskPlanServiceTestSuite) TestCreateLeoEoPlanNotFound() {
	missing := uuid.New()
	suite.mockOrgs.EXPECT().GetByID(suite.executive.ID).Return(suite.executive, nil)
	suite.mockLeoEo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.planService.Create(suite.ctx, &service.CreateTeamDeskPlanRequest{
		OrganizationID: suite.executive.ID,
		LeoEoPlanID:    &missing,
	})

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrPlanNotFound, err)
}

// TestList tests passing filters through to the repository
func (suite *TeamDeskPlanServiceTestSuite) TestList() {
	plans := []models.TeamDeskPlan{*suite.plan(models.TeamDeskPlanStatusSubmitted)}
	filter := repository.TeamDeskPlanFilter{TeamDeskID: &suite.desk.ID, Status: models.TeamDeskPlanStatusSubmitted}
	suite.mockPlans.EXPECT().GetAll(filter, 20, 0).Return(plans, int64(1), nil)

	response, err := suite.planService.List(&service.ListTeamDeskPlansRequest{
		TeamDeskID: &suite.desk.ID,
		Status:     models.TeamDeskPlanStatusSubmitted,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), response.Total)
	assert.Len(suite.T(), response.Plans, 1)
	assert.Nil(suite.T(), response.Plans[0].Content)
}

// TestListInvalidStatus tests rejecting an unknown status filter
func (suite *TeamDeskPlanServiceTestSuite) TestListInvalidStatus() {
	response, err := suite.planService.List(&service.ListTeamDeskPlansRequest{Status: "archived"})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrInvalidStatus))
}

// TestUpdateContent tests replacing every selection set
func (suite *TeamDeskPlanServiceTestSuite) TestUpdateContent() {
	plan := suite.plan(models.TeamDeskPlanStatusDraft)
	objective := suite.factories.Strategy.Objective("Health", 50)
	initiative := suite.factories.Strategy.Initiative("Immunization", objective)
	activity := suite.factories.Strategy.MainActivity("Campaign", initiative)

	suite.mockPlans.EXPECT().GetByID(plan.ID).Return(plan, nil)
	suite.mockObjective.EXPECT().GetByIDs([]uuid.UUID{objective.ID}).Return([]models.StrategicObjective{*objective}, nil)
	suite.mockCatalog.EXPECT().GetInitiativesByIDs([]uuid.UUID{initiative.ID}).Return([]models.StrategicInitiative{*initiative}, nil)
	suite.mockCatalog.EXPECT().GetMainActivitiesByIDs([]uuid.UUID{activity.ID}).Return([]models.MainActivity{*activity}, nil)
	suite.mockPlans.EXPECT().
		ReplaceContent(plan, gomock.Any()).
		DoAndReturn(func(plan *models.TeamDeskPlan, content repository.TeamDeskPlanContent) error {
			assert.Empty(suite.T(), content.PerformanceMeasures)
			assert.Empty(suite.T(), content.DetailActivities)
			plan.Objectives = content.Objectives
			plan.Initiatives = content.Initiatives
			plan.MainActivities = content.MainActivities
			return nil
		})

	response, err := suite.planService.UpdateContent(suite.ctx, plan.ID, &service.UpdateTeamDeskPlanContentRequest{
		ObjectiveIDs:    []uuid.UUID{objective.ID},
		InitiativeIDs:   []uuid.UUID{initiative.ID, initiative.ID},
		MainActivityIDs: []uuid.UUID{activity.ID},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []service.ContentItem{{ID: objective.ID, Name: "Health"}}, response.Content.Objectives)
	assert.Equal(suite.T(), "Immunization", response.Content.Initiatives[0].Name)
	assert.Empty(suite.T(), response.Content.DetailActivities)
}

// TestUpdateContentUnknownActivity tests that every id must exist
func (suite *TeamDeskPlanServiceTestSuite) TestUpdateContentUnknownActivity() {
	plan := suite.plan(models.TeamDeskPlanStatusDraft)
	suite.mockPlans.EXPECT().GetByID(plan.ID).Return(plan, nil)
	suite.mockCatalog.EXPECT().GetDetailActivitiesByIDs(gomock.Any()).Return([]models.DetailActivity{}, nil)

	response, err := suite.planService.UpdateContent(suite.ctx, plan.ID, &service.UpdateTeamDeskPlanContentRequest{
		DetailActivityIDs: []uuid.UUID{uuid.New()},
	})

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrDetailActivityNotFound, err)
}

// TestSubmit tests submitting a draft plan
func (suite *TeamDeskPlanServiceTestSuite) TestSubmit() {
	plan := suite.plan(models.TeamDeskPlanStatusDraft)
	suite.mockPlans.EXPECT().GetByID(plan.ID).Return(plan, nil)
	suite.mockPlans.EXPECT().Update(plan).Return(nil)

	response, err := suite.planService.Submit(suite.ctx, plan.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TeamDeskPlanStatusSubmitted, response.Status)
	assert.NotNil(suite.T(), response.SubmittedAt)
	assert.NotNil(suite.T(), plan.SubmittedAt)
}

// TestSubmitTwice tests that only drafts can be submitted
func (suite *TeamDeskPlanServiceTestSuite) TestSubmitTwice() {
	plan := suite.plan(models.TeamDeskPlanStatusSubmitted)
	suite.mockPlans.EXPECT().GetByID(plan.ID).Return(plan, nil)

	response, err := suite.planService.Submit(suite.ctx, plan.ID)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrInvalidStatusTransition))
}

// TestAddReview tests appending a review and marking the plan reviewed
func (suite *TeamDeskPlanServiceTestSuite) TestAddReview() {
	plan := suite.plan(models.TeamDeskPlanStatusSubmitted)
	user := suite.factories.User.WithName("almaz", "Almaz", "Kebede")
	reviewer := suite.factories.OrganizationUser.Create(user, suite.executive)
	reviewer.User = user

	suite.mockPlans.EXPECT().GetByID(plan.ID).Return(plan, nil)
	suite.mockMembers.EXPECT().GetByID(reviewer.ID).Return(reviewer, nil)
	suite.mockPlans.EXPECT().
		AddReview(plan, gomock.Any()).
		DoAndReturn(func(plan *models.TeamDeskPlan, review *models.TeamDeskPlanReview) error {
			assert.Equal(suite.T(), models.TeamDeskPlanStatusReviewed, plan.Status)
			assert.False(suite.T(), review.ReviewedAt.IsZero())
			review.ID = uuid.New()
			return nil
		})

	response, err := suite.planService.AddReview(suite.ctx, plan.ID, &service.AddReviewRequest{
		ReviewerID: &reviewer.ID,
		Status:     models.ReviewStatusRevisionRequested,
		Feedback:   "Add quarterly targets",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Almaz Kebede", response.ReviewerName)
	assert.Equal(suite.T(), "Planning Desk (Policy Executive)", response.PlanInfo)
	assert.Equal(suite.T(), models.ReviewStatusRevisionRequested, response.Status)
}

// TestAddReviewToReviewedPlan tests that a reviewed plan accepts further reviews
func (suite *TeamDeskPlanServiceTestSuite) TestAddReviewToReviewedPlan() {
	plan := suite.plan(models.TeamDeskPlanStatusReviewed)
	suite.mockPlans.EXPECT().GetByID(plan.ID).Return(plan, nil)
	suite.mockPlans.EXPECT().AddReview(plan, gomock.Any()).Return(nil)

	response, err := suite.planService.AddReview(suite.ctx, plan.ID, &service.AddReviewRequest{Status: models.ReviewStatusApproved})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "N/A", response.ReviewerName)
}

// TestAddReviewDraft tests that drafts cannot be reviewed
func (suite *TeamDeskPlanServiceTestSuite) TestAddReviewDraft() {
	plan := suite.plan(models.TeamDeskPlanStatusDraft)
	suite.mockPlans.EXPECT().GetByID(plan.ID).Return(plan, nil)

	response, err := suite.planService.AddReview(suite.ctx, plan.ID, &service.AddReviewRequest{Status: models.ReviewStatusApproved})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrInvalidStatusTransition))
}

// TestAddReviewInvalidStatus tests that the verdict must be a known status
func (suite *TeamDeskPlanServiceTestSuite) TestAddReviewInvalidStatus() {
	response, err := suite.planService.AddReview(suite.ctx, uuid.New(), &service.AddReviewRequest{Status: "maybe"})

	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestAddReviewReviewerNotFound tests referencing a missing reviewer
func (suite *TeamDeskPlanServiceTestSuite) TestAddReviewReviewerNotFound() {
	plan := suite.plan(models.TeamDeskPlanStatusSubmitted)
	missing := uuid.New()
	suite.mockPlans.EXPECT().GetByID(plan.ID).Return(plan, nil)
	suite.mockMembers.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.planService.AddReview(suite.ctx, plan.ID, &service.AddReviewRequest{
		ReviewerID: &missing,
		Status:     models.ReviewStatusApproved,
	})

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrReviewerNotFound, err)
}

// TestListReviewsEmpty tests that a plan without reviews yields an empty list
func (suite *TeamDeskPlanServiceTestSuite) TestListReviewsEmpty() {
	plan := suite.plan(models.TeamDeskPlanStatusSubmitted)
	suite.mockPlans.EXPECT().GetByID(plan.ID).Return(plan, nil)
	suite.mockReviews.EXPECT().GetByPlanID(plan.ID).Return([]models.TeamDeskPlanReview{}, nil)

	reviews, err := suite.planService.ListReviews(plan.ID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), reviews)
	assert.Empty(suite.T(), reviews)
}

// TestListReviews tests that reviews keep repository order and get plan labels
func (suite *TeamDeskPlanServiceTestSuite) TestListReviews() {
	plan := suite.plan(models.TeamDeskPlanStatusReviewed)
	first := suite.factories.Plan.Review(plan, nil, models.ReviewStatusApproved)
	second := suite.factories.Plan.Review(plan, nil, models.ReviewStatusRejected)
	suite.mockPlans.EXPECT().GetByID(plan.ID).Return(plan, nil)
	suite.mockReviews.EXPECT().GetByPlanID(plan.ID).Return([]models.TeamDeskPlanReview{*second, *first}, nil)

	reviews, err := suite.planService.ListReviews(plan.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), reviews, 2)
	assert.Equal(suite.T(), models.ReviewStatusRejected, reviews[0].Status)
	assert.Equal(suite.T(), "Planning Desk (Policy Executive)", reviews[1].PlanInfo)
}

// TestGetByIDNotFound tests retrieving a missing plan
func (suite *TeamDeskPlanServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockPlans.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.planService.GetByID(id)

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrTeamDeskPlanNotFound, err)
}

// TestTeamDeskPlanServiceTestSuite runs the test suite
func TestTeamDeskPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamDeskPlanServiceTestSuite))
}
