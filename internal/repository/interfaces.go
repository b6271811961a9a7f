package repository

import (
	"strategic-planning-backend/internal/admin"
	"strategic-planning-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	GetChildren(parentID uuid.UUID) ([]models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// OrganizationUserRepositoryInterface defines the interface for organization membership operations
type OrganizationUserRepositoryInterface interface {
	Create(member *models.OrganizationUser) error
	GetByID(id uuid.UUID) (*models.OrganizationUser, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.OrganizationUser, error)
}

// StrategicObjectiveRepositoryInterface defines the interface for strategic objective operations
type StrategicObjectiveRepositoryInterface interface {
	Create(objective *models.StrategicObjective) error
	GetByID(id uuid.UUID) (*models.StrategicObjective, error)
	GetByIDs(ids []uuid.UUID) ([]models.StrategicObjective, error)
	GetAll(limit, offset int) ([]models.StrategicObjective, int64, error)
	Update(objective *models.StrategicObjective) error
	Delete(id uuid.UUID) error
}

// StrategyCatalogRepositoryInterface looks up the strategy items a team/desk plan can select
type StrategyCatalogRepositoryInterface interface {
	GetInitiativesByIDs(ids []uuid.UUID) ([]models.StrategicInitiative, error)
	GetPerformanceMeasuresByIDs(ids []uuid.UUID) ([]models.PerformanceMeasure, error)
	GetMainActivitiesByIDs(ids []uuid.UUID) ([]models.MainActivity, error)
	GetDetailActivitiesByIDs(ids []uuid.UUID) ([]models.DetailActivity, error)
}

// PlanRepositoryInterface defines the interface for LEO/EO plan operations
type PlanRepositoryInterface interface {
	Create(plan *models.Plan) error
	GetByID(id uuid.UUID) (*models.Plan, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Plan, int64, error)
	Update(plan *models.Plan) error
	ReplaceSelectedObjectives(plan *models.Plan, objectives []models.StrategicObjective) error
}

// TeamDeskPlanFilter narrows a team/desk plan listing; zero values match everything
type TeamDeskPlanFilter struct {
	OrganizationID *uuid.UUID
	TeamDeskID     *uuid.UUID
	Status         models.TeamDeskPlanStatus
}

// TeamDeskPlanContent is the full set of strategy items a team/desk plan selects
type TeamDeskPlanContent struct {
	Objectives          []models.StrategicObjective
	Initiatives         []models.StrategicInitiative
	PerformanceMeasures []models.PerformanceMeasure
	MainActivities      []models.MainActivity
	DetailActivities    []models.DetailActivity
}

// TeamDeskPlanRepositoryInterface defines the interface for team/desk plan operations
type TeamDeskPlanRepositoryInterface interface {
	Create(plan *models.TeamDeskPlan) error
	GetByID(id uuid.UUID) (*models.TeamDeskPlan, error)
	GetAll(filter TeamDeskPlanFilter, limit, offset int) ([]models.TeamDeskPlan, int64, error)
	Update(plan *models.TeamDeskPlan) error
	ReplaceContent(plan *models.TeamDeskPlan, content TeamDeskPlanContent) error
	AddReview(plan *models.TeamDeskPlan, review *models.TeamDeskPlanReview) error
}

// TeamDeskPlanReviewRepositoryInterface defines the interface for reading plan reviews
type TeamDeskPlanReviewRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.TeamDeskPlanReview, error)
	GetByPlanID(planID uuid.UUID) ([]models.TeamDeskPlanReview, error)
}

// AdminRepositoryInterface runs admin list and edit operations for any registered entity
type AdminRepositoryInterface interface {
	List(entity *admin.ModelAdmin, params admin.ListParams) (interface{}, int64, error)
	Get(entity *admin.ModelAdmin, id uuid.UUID, preload bool) (interface{}, error)
	Create(entity *admin.ModelAdmin, record interface{}, selections map[string]interface{}) error
	Update(entity *admin.ModelAdmin, record interface{}, selections map[string]interface{}) error
	Delete(entity *admin.ModelAdmin, id uuid.UUID) error
	ListInline(child *admin.ModelAdmin, foreignKey string, parentID uuid.UUID) (interface{}, error)
	LoadSelection(mm admin.ManyToMany, ids []uuid.UUID) (interface{}, int64, error)
	Exists(table, query string, args ...interface{}) (bool, error)
}
