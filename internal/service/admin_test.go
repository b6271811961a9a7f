package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"strategic-planning-backend/internal/admin"
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

// AdminServiceTestSuite runs the admin views against the default site with a mocked repository
type AdminServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockAdminRepositoryInterface
	site         *admin.Site
	adminService *service.AdminService
	ctx          context.Context
}

func (suite *AdminServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAdminRepositoryInterface(suite.ctrl)
	suite.site = admin.DefaultSite()
	suite.adminService = service.NewAdminService(suite.site, suite.mockRepo, validator.New())
	suite.ctx = context.Background()
}

func (suite *AdminServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AdminServiceTestSuite) entity(slug string) *admin.ModelAdmin {
	m, ok := suite.site.Get(slug)
	suite.Require().True(ok, slug)
	return m
}

// expectCreate assigns an id like the database hook does and returns the record on reload
func (suite *AdminServiceTestSuite) expectCreate(m *admin.ModelAdmin, captured *interface{}) {
	suite.mockRepo.EXPECT().
		Create(m, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *admin.ModelAdmin, record interface{}, _ map[string]interface{}) error {
			reflect.ValueOf(record).Elem().FieldByName("ID").Set(reflect.ValueOf(uuid.New()))
			*captured = record
			return nil
		})
	suite.mockRepo.EXPECT().
		Get(m, gomock.Any(), true).
		DoAndReturn(func(_ *admin.ModelAdmin, _ uuid.UUID, _ bool) (interface{}, error) {
			return *captured, nil
		})
}

func (suite *AdminServiceTestSuite) TestEntities() {
	entities := suite.adminService.Entities()

	assert.NotEmpty(suite.T(), entities)
	for i := 1; i < len(entities); i++ {
		assert.Less(suite.T(), entities[i-1].Slug, entities[i].Slug)
	}
}

func (suite *AdminServiceTestSuite) TestListUnknownEntity() {
	response, err := suite.adminService.List("widgets", admin.ListParams{})

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrAdminEntityNotFound, err)
}

func (suite *AdminServiceTestSuite) TestListRendersRows() {
	m := suite.entity("organizations")
	parent := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Ministry of Health"}
	list := &[]models.Organization{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Policy Executive", Type: models.OrganizationTypeExecutive, Parent: parent},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Ministry of Health", Type: models.OrganizationTypeMinister},
	}
	suite.mockRepo.EXPECT().
		List(m, admin.ListParams{Search: "health", Page: 1, PageSize: admin.DefaultPageSize}).
		Return(list, int64(2), nil)

	response, err := suite.adminService.List("organizations", admin.ListParams{Search: "health"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Equal(suite.T(), m.ListDisplay, response.Columns)
	assert.Equal(suite.T(), "Ministry of Health", response.Rows[0]["parent"])
	assert.Equal(suite.T(), "N/A", response.Rows[1]["parent"])
}

func (suite *AdminServiceTestSuite) TestListInvalidPage() {
	response, err := suite.adminService.List("organizations", admin.ListParams{Page: -1})

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrInvalidPaginationParams, err)
}

func (suite *AdminServiceTestSuite) TestListInvalidFilterPassesThrough() {
	m := suite.entity("organizations")
	filterErr := apperrors.NewValidationError("filter", "unknown filter")
	suite.mockRepo.EXPECT().List(m, gomock.Any()).Return(nil, int64(0), filterErr)

	response, err := suite.adminService.List("organizations", admin.ListParams{Filters: map[string]string{"colour": "red"}})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AdminServiceTestSuite) TestCreateOrganizationParsesCoreValues() {
	m := suite.entity("organizations")
	var captured interface{}
	suite.mockRepo.EXPECT().
		Exists("organizations", "name = ? AND id <> ?", "Planning Desk", uuid.Nil).
		Return(false, nil)
	suite.expectCreate(m, &captured)

	response, err := suite.adminService.Create(suite.ctx, "organizations", map[string]interface{}{
		"id":               uuid.New().String(),
		"name":             "Planning Desk",
		"type":             "DESK",
		"core_values_text": "Integrity\n\n Accountability \n",
	})

	assert.NoError(suite.T(), err)
	org := captured.(*models.Organization)
	assert.Equal(suite.T(), []string{"Integrity", "Accountability"}, []string(org.CoreValues))
	assert.Equal(suite.T(), org.ID, response.ID)
	assert.Equal(suite.T(), "Planning Desk", response.Row["name"])

	var coreValuesText interface{}
	for _, fs := range response.Fieldsets {
		for _, f := range fs.Fields {
			if f.Name == admin.CoreValuesField {
				coreValuesText = f.Value
			}
		}
	}
	assert.Equal(suite.T(), "Integrity\nAccountability", coreValuesText)
}

func (suite *AdminServiceTestSuite) TestCreateValidationFailure() {
	response, err := suite.adminService.Create(suite.ctx, "organizations", map[string]interface{}{
		"name": "Planning Desk",
		"type": "REGION",
	})

	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *AdminServiceTestSuite) TestCreateLocationInvalidRegion() {
	response, err := suite.adminService.Create(suite.ctx, "locations", map[string]interface{}{
		"name":   "Adama",
		"region": "Atlantis",
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AdminServiceTestSuite) TestCreateDuplicate() {
	m := suite.entity("locations")
	suite.mockRepo.EXPECT().Create(m, gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	response, err := suite.adminService.Create(suite.ctx, "locations", map[string]interface{}{
		"name":   "Adama",
		"region": "Oromia",
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrRecordExists))
}

func (suite *AdminServiceTestSuite) TestCreateWithSelections() {
	m := suite.entity("team-desk-plans")
	objectives := &[]models.StrategicObjective{{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "Health"}}
	objectiveID := (*objectives)[0].ID
	mm, _ := m.ManyToManyField("objectives")

	suite.mockRepo.EXPECT().
		LoadSelection(gomock.AssignableToTypeOf(mm), []uuid.UUID{objectiveID}).
		Return(objectives, int64(1), nil)
	var captured interface{}
	suite.mockRepo.EXPECT().
		Create(m, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *admin.ModelAdmin, record interface{}, selections map[string]interface{}) error {
			assert.Equal(suite.T(), objectives, selections["objectives"])
			plan := record.(*models.TeamDeskPlan)
			plan.ID = uuid.New()
			captured = plan
			return nil
		})
	suite.mockRepo.EXPECT().
		Get(m, gomock.Any(), true).
		DoAndReturn(func(_ *admin.ModelAdmin, _ uuid.UUID, _ bool) (interface{}, error) {
			return captured, nil
		})

	response, err := suite.adminService.Create(suite.ctx, "team-desk-plans", map[string]interface{}{
		"organization_id": uuid.New().String(),
		"status":          "draft",
		"objectives":      []interface{}{objectiveID.String(), objectiveID.String()},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "N/A", response.Row["team_desk"])
}

func (suite *AdminServiceTestSuite) TestCreateWithUnknownSelection() {
	suite.mockRepo.EXPECT().
		LoadSelection(gomock.Any(), gomock.Any()).
		Return(&[]models.StrategicObjective{}, int64(0), nil)

	response, err := suite.adminService.Create(suite.ctx, "team-desk-plans", map[string]interface{}{
		"organization_id": uuid.New().String(),
		"status":          "draft",
		"objectives":      []interface{}{uuid.New().String()},
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AdminServiceTestSuite) TestCreateInvalidStatusChoice() {
	response, err := suite.adminService.Create(suite.ctx, "team-desk-plans", map[string]interface{}{
		"organization_id": uuid.New().String(),
		"status":          "archived",
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AdminServiceTestSuite) TestUpdateKeepsOmittedFields() {
	m := suite.entity("locations")
	location := &models.Location{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Adama", Region: "Oromia"}

	suite.mockRepo.EXPECT().Get(m, location.ID, false).Return(location, nil)
	suite.mockRepo.EXPECT().Update(m, location, map[string]interface{}{}).Return(nil)
	suite.mockRepo.EXPECT().Get(m, location.ID, true).Return(location, nil)

	response, err := suite.adminService.Update(suite.ctx, "locations", location.ID, map[string]interface{}{
		"is_hardship_area": true,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Adama", location.Name)
	assert.True(suite.T(), location.IsHardshipArea)
	assert.Equal(suite.T(), location.ID, response.ID)
}

func (suite *AdminServiceTestSuite) TestUpdateNotFound() {
	m := suite.entity("locations")
	id := uuid.New()
	suite.mockRepo.EXPECT().Get(m, id, false).Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.adminService.Update(suite.ctx, "locations", id, map[string]interface{}{"name": "Adama"})

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrAdminRecordNotFound, err)
}

func (suite *AdminServiceTestSuite) TestDelete() {
	m := suite.entity("locations")
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(m, id).Return(nil)

	assert.NoError(suite.T(), suite.adminService.Delete(suite.ctx, "locations", id))

	suite.mockRepo.EXPECT().Delete(m, id).Return(gorm.ErrRecordNotFound)
	assert.Equal(suite.T(), apperrors.ErrAdminRecordNotFound, suite.adminService.Delete(suite.ctx, "locations", id))
}

func (suite *AdminServiceTestSuite) TestGetIncludesInlines() {
	m := suite.entity("strategic-initiatives")
	initiative := &models.StrategicInitiative{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Immunization"}
	measures := &[]models.PerformanceMeasure{{BaseModel: models.BaseModel{ID: uuid.New()}, InitiativeID: initiative.ID, Name: "Coverage"}}

	suite.mockRepo.EXPECT().Get(m, initiative.ID, true).Return(initiative, nil)
	suite.mockRepo.EXPECT().
		ListInline(suite.entity("performance-measures"), "initiative_id", initiative.ID).
		Return(measures, nil)
	suite.mockRepo.EXPECT().
		ListInline(suite.entity("main-activities"), "initiative_id", initiative.ID).
		Return(&[]models.MainActivity{}, nil)

	response, err := suite.adminService.Get("strategic-initiatives", initiative.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Inlines["performance_measures"], 1)
	assert.Empty(suite.T(), response.Inlines["main_activities"])
}

func (suite *AdminServiceTestSuite) TestCreateInlineForcesForeignKey() {
	parent := suite.entity("strategic-initiatives")
	child := suite.entity("main-activities")
	initiativeID := uuid.New()

	suite.mockRepo.EXPECT().Get(parent, initiativeID, false).Return(&models.StrategicInitiative{}, nil)
	var captured interface{}
	suite.expectCreate(child, &captured)

	_, err := suite.adminService.CreateInline(suite.ctx, "strategic-initiatives", initiativeID, "main_activities", map[string]interface{}{
		"initiative_id": uuid.New().String(),
		"name":          "Vaccination campaign",
		"weight":        10,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), initiativeID, captured.(*models.MainActivity).InitiativeID)
}

func (suite *AdminServiceTestSuite) TestCreateInlineUnknownInline() {
	_, err := suite.adminService.CreateInline(suite.ctx, "strategic-initiatives", uuid.New(), "budgets", nil)

	assert.Equal(suite.T(), apperrors.ErrInlineNotFound, err)
}

func (suite *AdminServiceTestSuite) TestCreateOrganizationDuplicateName() {
	suite.mockRepo.EXPECT().
		Exists("organizations", "name = ? AND id <> ?", "Ministry of Health", uuid.Nil).
		Return(true, nil)

	response, err := suite.adminService.Create(suite.ctx, "organizations", map[string]interface{}{
		"name": "Ministry of Health",
		"type": "MINISTER",
	})

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrOrganizationExists, err)
}

func (suite *AdminServiceTestSuite) TestUpdateOrganizationKeepsOwnName() {
	m := suite.entity("organizations")
	org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Ministry of Health", Type: models.OrganizationTypeMinister}

	suite.mockRepo.EXPECT().Get(m, org.ID, false).Return(org, nil)
	suite.mockRepo.EXPECT().
		Exists("organizations", "name = ? AND id <> ?", "Ministry of Health", org.ID).
		Return(false, nil)
	suite.mockRepo.EXPECT().Update(m, org, map[string]interface{}{}).Return(nil)
	suite.mockRepo.EXPECT().Get(m, org.ID, true).Return(org, nil)

	_, err := suite.adminService.Update(suite.ctx, "organizations", org.ID, map[string]interface{}{
		"vision": "Healthy citizens",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Healthy citizens", org.Vision)
}

func (suite *AdminServiceTestSuite) TestCreateTeamDeskPlanRejectsOtherOrganizationTypes() {
	executiveID := uuid.New()
	suite.mockRepo.EXPECT().
		Exists("organizations", "id = ? AND type IN ?", executiveID, []string{"TEAM_LEAD", "DESK"}).
		Return(false, nil)

	response, err := suite.adminService.Create(suite.ctx, "team-desk-plans", map[string]interface{}{
		"organization_id": uuid.New().String(),
		"team_desk_id":    executiveID.String(),
		"status":          "draft",
	})

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrInvalidTeamDesk, err)
}

func (suite *AdminServiceTestSuite) TestUpdatePlanSelectionDropsDeselectedWeights() {
	m := suite.entity("plans")
	kept := models.StrategicObjective{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "Service delivery"}
	dropped := uuid.New()
	plan := &models.Plan{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: uuid.New(),
		PlannerName:    "Abebe",
		Type:           models.PlanTypeLeoEo,
		FiscalYear:     "2017",
		FromDate:       time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC),
		ToDate:         time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
		Status:         models.PlanStatusDraft,
	}
	plan.SetObjectiveWeights(models.ObjectiveWeights{dropped.String(): 30, kept.ID.String(): 10})

	suite.mockRepo.EXPECT().Get(m, plan.ID, false).Return(plan, nil)
	suite.mockRepo.EXPECT().
		LoadSelection(gomock.Any(), []uuid.UUID{kept.ID}).
		Return(&[]models.StrategicObjective{kept}, int64(1), nil)
	suite.mockRepo.EXPECT().
		Update(m, plan, gomock.Any()).
		DoAndReturn(func(_ *admin.ModelAdmin, record interface{}, _ map[string]interface{}) error {
			assert.Equal(suite.T(), models.ObjectiveWeights{kept.ID.String(): 10}, record.(*models.Plan).ObjectiveWeights())
			return nil
		})
	suite.mockRepo.EXPECT().Get(m, plan.ID, true).Return(plan, nil)

	_, err := suite.adminService.Update(suite.ctx, "plans", plan.ID, map[string]interface{}{
		"selected_objectives": []interface{}{kept.ID.String()},
	})

	assert.NoError(suite.T(), err)
	assert.NotContains(suite.T(), plan.ObjectiveWeights(), dropped.String())

	// a body without the selection leaves the overrides alone
	suite.mockRepo.EXPECT().Get(m, plan.ID, false).Return(plan, nil)
	suite.mockRepo.EXPECT().Update(m, plan, map[string]interface{}{}).Return(nil)
	suite.mockRepo.EXPECT().Get(m, plan.ID, true).Return(plan, nil)

	_, err = suite.adminService.Update(suite.ctx, "plans", plan.ID, map[string]interface{}{
		"executive_name": "Lead Executive",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ObjectiveWeights{kept.ID.String(): 10}, plan.ObjectiveWeights())
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
