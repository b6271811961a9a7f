package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"strategic-planning-backend/internal/database/models"
	apperrors "strategic-planning-backend/internal/errors"
	"strategic-planning-backend/internal/mocks"
	"strategic-planning-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PlanServiceTestSuite defines the test suite for PlanService
type PlanServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockPlanRepo      *mocks.MockPlanRepositoryInterface
	mockOrgRepo       *mocks.MockOrganizationRepositoryInterface
	mockObjectiveRepo *mocks.MockStrategicObjectiveRepositoryInterface
	planService       *service.PlanService
	ctx               context.Context
}

// SetupTest sets up the test suite
func (suite *PlanServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlanRepo = mocks.NewMockPlanRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockObjectiveRepo = mocks.NewMockStrategicObjectiveRepositoryInterface(suite.ctrl)
	suite.planService = service.NewPlanService(suite.mockPlanRepo, suite.mockOrgRepo, suite.mockObjectiveRepo, validator.New())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *PlanServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func newObjective(title string, weight float64) models.StrategicObjective {
	return models.StrategicObjective{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     title,
		Weight:    weight,
	}
}

func (suite *PlanServiceTestSuite) planWith(objectives ...models.StrategicObjective) *models.Plan {
	return &models.Plan{
		BaseModel:          models.BaseModel{ID: uuid.New()},
		OrganizationID:     uuid.New(),
		PlannerName:        "Abebe",
		Type:               models.PlanTypeLeoEo,
		FiscalYear:         "2017",
		FromDate:           time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC),
		ToDate:             time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
		Status:             models.PlanStatusDraft,
		SelectedObjectives: objectives,
	}
}

func (suite *PlanServiceTestSuite) createRequest(orgID uuid.UUID) *service.CreatePlanRequest {
	return &service.CreatePlanRequest{
		OrganizationID: orgID,
		PlannerName:    "Abebe",
		FiscalYear:     "2017",
		FromDate:       time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC),
		ToDate:         time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
	}
}

// TestCreatePlan tests creating a draft plan with an initial objective selection
func (suite *PlanServiceTestSuite) TestCreatePlan() {
	org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Policy Executive"}
	health := newObjective("Health", 60)
	req := suite.createRequest(org.ID)
	req.SelectedObjectiveIDs = []uuid.UUID{health.ID, health.ID}

	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil)
	suite.mockObjectiveRepo.EXPECT().
		GetByIDs([]uuid.UUID{health.ID}).
		Return([]models.StrategicObjective{health}, nil)
	suite.mockPlanRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockPlanRepo.EXPECT().
		ReplaceSelectedObjectives(gomock.Any(), []models.StrategicObjective{health}).
		DoAndReturn(func(plan *models.Plan, objectives []models.StrategicObjective) error {
			plan.SelectedObjectives = objectives
			return nil
		})

	response, err := suite.planService.Create(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.PlanStatusDraft, response.Status)
	assert.Equal(suite.T(), models.PlanTypeLeoEo, response.Type)
	assert.Equal(suite.T(), "Policy Executive", response.OrganizationName)
	assert.Equal(suite.T(), "2024-07-08", response.FromDate)
	assert.Len(suite.T(), response.SelectedObjectives, 1)
	assert.Empty(suite.T(), response.SelectedObjectivesWeights)
}

// TestCreatePlanWithoutObjectives tests that no selection is written when none is requested
func (suite *PlanServiceTestSuite) TestCreatePlanWithoutObjectives() {
	org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Policy Executive"}

	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil)
	suite.mockPlanRepo.EXPECT().Create(gomock.Any()).Return(nil)

	response, err := suite.planService.Create(suite.ctx, suite.createRequest(org.ID))

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response.SelectedObjectives)
}

// TestCreatePlanInvalidTimeRange tests that to_date may not precede from_date
func (suite *PlanServiceTestSuite) TestCreatePlanInvalidTimeRange() {
	req := suite.createRequest(uuid.New())
	req.ToDate = req.FromDate.AddDate(0, 0, -1)

	response, err := suite.planService.Create(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrInvalidTimeRange, err)
}

// TestCreatePlanUnknownObjective tests selecting an objective that does not exist
func (suite *PlanServiceTestSuite) TestCreatePlanUnknownObjective() {
	org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Policy Executive"}
	req := suite.createRequest(org.ID)
	req.SelectedObjectiveIDs = []uuid.UUID{uuid.New()}

	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil)
	suite.mockObjectiveRepo.EXPECT().GetByIDs(gomock.Any()).Return([]models.StrategicObjective{}, nil)

	response, err := suite.planService.Create(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrStrategicObjectiveNotFound, err)
}

// TestCreatePlanValidationError tests that required fields are enforced
func (suite *PlanServiceTestSuite) TestCreatePlanValidationError() {
	req := suite.createRequest(uuid.New())
	req.PlannerName = ""

	response, err := suite.planService.Create(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestSelectObjectivesDropsDeselectedOverrides tests that overrides follow the selection
func (suite *PlanServiceTestSuite) TestSelectObjectivesDropsDeselectedOverrides() {
	health := newObjective("Health", 60)
	education := newObjective("Education", 40)
	plan := suite.planWith(health, education)
	plan.SetObjectiveWeights(models.ObjectiveWeights{
		health.ID.String():    70,
		education.ID.String(): 30,
	})

	suite.mockPlanRepo.EXPECT().GetByID(plan.ID).Return(plan, nil)
	suite.mockObjectiveRepo.EXPECT().GetByIDs([]uuid.UUID{health.ID}).Return([]models.StrategicObjective{health}, nil)
	suite.mockPlanRepo.EXPECT().
		ReplaceSelectedObjectives(plan, []models.StrategicObjective{health}).
		DoAndReturn(func(plan *models.Plan, objectives []models.StrategicObjective) error {
			plan.SelectedObjectives = objectives
			return nil
		})

	response, err := suite.planService.SelectObjectives(suite.ctx, plan.ID, &service.SelectObjectivesRequest{
		ObjectiveIDs: []uuid.UUID{health.ID},
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.SelectedObjectives, 1)
	assert.Equal(suite.T(), map[string]float64{health.ID.String(): 70}, response.SelectedObjectivesWeights)
}

// TestSelectObjectivesEmptyClearsSelection tests that an empty list clears selection and overrides
func (suite *PlanServiceTestSuite) TestSelectObjectivesEmptyClearsSelection() {
	health := newObjective("Health", 60)
	plan := suite.planWith(health)
	plan.SetObjectiveWeights(models.ObjectiveWeights{health.ID.String(): 70})

	suite.mockPlanRepo.EXPECT().GetByID(plan.ID).Return(plan, nil)
	suite.mockPlanRepo.EXPECT().
		ReplaceSelectedObjectives(plan, []models.StrategicObjective{}).
		DoAndReturn(func(plan *models.Plan, objectives []models.StrategicObjective) error {
			plan.SelectedObjectives = objectives
			return nil
		})

	response, err := suite.planService.SelectObjectives(suite.ctx, plan.ID, &service.SelectObjectivesRequest{})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response.SelectedObjectives)
	assert.Nil(suite.T(), plan.SelectedObjectivesWeights)
}

// TestSetObjectiveWeights tests storing overrides and computing effective weights
func (suite *PlanServiceTestSuite) TestSetObjectiveWeights() {
	health := newObjective("Health", 60)
	education := newObjective("Education", 40)
	plan := suite.planWith(health, education)

	suite.mockPlanRepo.EXPECT().GetByID(plan.ID).Return(plan, nil)
	suite.mockPlanRepo.EXPECT().Update(plan).Return(nil)

	response, err := suite.planService.SetObjectiveWeights(suite.ctx, plan.ID, &service.SetObjectiveWeightsRequest{
		Weights: map[string]float64{health.ID.String(): 75},
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Objectives, 2)
	// sorted by title
	assert.Equal(suite.T(), "Education", response.Objectives[0].Title)
	assert.Nil(suite.T(), response.Objectives[0].OverrideWeight)
	assert.Equal(suite.T(), 40.0, response.Objectives[0].EffectiveWeight)
	assert.Equal(suite.T(), 60.0, response.Objectives[1].DefaultWeight)
	assert.Equal(suite.T(), 75.0, *response.Objectives[1].OverrideWeight)
	assert.Equal(suite.T(), 115.0, response.EffectiveTotal)
}

// TestSetObjectiveWeightsNotSelected tests that overrides require a selected objective
func (suite *PlanServiceTestSuite) TestSetObjectiveWeightsNotSelected() {
	plan := suite.planWith(newObjective("Health", 60))
	suite.mockPlanRepo.EXPECT().GetByID(plan.ID).Return(plan, nil)

	response, err := suite.planService.SetObjectiveWeights(suite.ctx, plan.ID, &service.SetObjectiveWeightsRequest{
		Weights: map[string]float64{uuid.New().String(): 10},
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrObjectiveNotSelected))
}

// TestSetObjectiveWeightsNegative tests that negative weights are rejected
func (suite *PlanServiceTestSuite) TestSetObjectiveWeightsNegative() {
	health := newObjective("Health", 60)
	plan := suite.planWith(health)
	suite.mockPlanRepo.EXPECT().GetByID(plan.ID).Return(plan, nil)

	response, err := suite.planService.SetObjectiveWeights(suite.ctx, plan.ID, &service.SetObjectiveWeightsRequest{
		Weights: map[string]float64{health.ID.String(): -1},
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrInvalidWeight))
}

// TestSetObjectiveWeightsInvalidKey tests that keys must be objective ids
func (suite *PlanServiceTestSuite) TestSetObjectiveWeightsInvalidKey() {
	plan := suite.planWith(newObjective("Health", 60))
	suite.mockPlanRepo.EXPECT().GetByID(plan.ID).Return(plan, nil)

	response, err := suite.planService.SetObjectiveWeights(suite.ctx, plan.ID, &service.SetObjectiveWeightsRequest{
		Weights: map[string]float64{"health": 10},
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetObjectiveWeightsNoSelection tests a plan without selected objectives
func (suite *PlanServiceTestSuite) TestGetObjectiveWeightsNoSelection() {
	plan := suite.planWith()
	suite.mockPlanRepo.EXPECT().GetByID(plan.ID).Return(plan, nil)

	response, err := suite.planService.GetObjectiveWeights(plan.ID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response.Objectives)
	assert.Empty(suite.T(), response.Objectives)
	assert.Equal(suite.T(), 0.0, response.EffectiveTotal)
}

// TestSubmit tests submitting a draft plan
func (suite *PlanServiceTestSuite) TestSubmit() {
	plan := suite.planWith()
	suite.mockPlanRepo.EXPECT().GetByID(plan.ID).Return(plan, nil)
	suite.mockPlanRepo.EXPECT().Update(plan).Return(nil)

	response, err := suite.planService.Submit(suite.ctx, plan.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.PlanStatusSubmitted, response.Status)
	assert.NotNil(suite.T(), response.SubmittedAt)
}

// TestSubmitAlreadySubmitted tests that a submitted plan cannot be submitted again
func (suite *PlanServiceTestSuite) TestSubmitAlreadySubmitted() {
	plan := suite.planWith()
	plan.Status = models.PlanStatusSubmitted
	suite.mockPlanRepo.EXPECT().GetByID(plan.ID).Return(plan, nil)

	response, err := suite.planService.Submit(suite.ctx, plan.ID)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrInvalidStatusTransition))
}

// TestGetByIDNotFound tests retrieving a missing plan
func (suite *PlanServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockPlanRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.planService.GetByID(id)

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrPlanNotFound, err)
}

// TestPlanServiceTestSuite runs the test suite
func TestPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlanServiceTestSuite))
}
