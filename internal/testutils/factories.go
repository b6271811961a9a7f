package testutils

import (
	"fmt"
	"time"

	"strategic-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test executive office with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel:  newBase(),
		Name:       "Test Executive Office",
		Type:       models.OrganizationTypeExecutive,
		Vision:     "A healthy population",
		Mission:    "Deliver quality services",
		CoreValues: datatypes.JSONSlice[string]{"Integrity", "Transparency"},
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithType creates an organization of the given type under parent
func (f *OrganizationFactory) WithType(name string, orgType models.OrganizationType, parent *models.Organization) *models.Organization {
	org := f.WithName(name)
	org.Type = orgType
	org.CoreValues = nil
	if parent != nil {
		org.ParentID = &parent.ID
	}
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique username
func (f *UserFactory) Create() *models.User {
	base := newBase()
	username := "user-" + base.ID.String()[:8]
	return &models.User{
		BaseModel: base,
		Username:  username,
		FirstName: "Abebe",
		LastName:  "Kebede",
		Email:     username + "@example.com",
	}
}

// WithName creates a user with the given names
func (f *UserFactory) WithName(username, first, last string) *models.User {
	user := f.Create()
	user.Username = username
	user.FirstName = first
	user.LastName = last
	user.Email = username + "@example.com"
	return user
}

// OrganizationUserFactory provides methods to create test memberships
type OrganizationUserFactory struct{}

// NewOrganizationUserFactory creates a new OrganizationUserFactory
func NewOrganizationUserFactory() *OrganizationUserFactory {
	return &OrganizationUserFactory{}
}

// Create binds user to org as an evaluator
func (f *OrganizationUserFactory) Create(user *models.User, org *models.Organization) *models.OrganizationUser {
	return &models.OrganizationUser{
		BaseModel:      newBase(),
		UserID:         user.ID,
		OrganizationID: org.ID,
		Role:           models.OrganizationRoleEvaluator,
	}
}

// StrategyFactory provides methods to create strategic objectives and their children
type StrategyFactory struct{}

// NewStrategyFactory creates a new StrategyFactory
func NewStrategyFactory() *StrategyFactory {
	return &StrategyFactory{}
}

// Objective creates a strategic objective
func (f *StrategyFactory) Objective(title string, weight float64) *models.StrategicObjective {
	return &models.StrategicObjective{
		BaseModel:   newBase(),
		Title:       title,
		Description: title + " description",
		Weight:      weight,
	}
}

// Initiative creates an initiative under objective
func (f *StrategyFactory) Initiative(name string, objective *models.StrategicObjective) *models.StrategicInitiative {
	initiative := &models.StrategicInitiative{
		BaseModel: newBase(),
		Name:      name,
		Weight:    10,
	}
	if objective != nil {
		initiative.StrategicObjectiveID = &objective.ID
	}
	return initiative
}

// PerformanceMeasure creates a measure under initiative
func (f *StrategyFactory) PerformanceMeasure(name string, initiative *models.StrategicInitiative) *models.PerformanceMeasure {
	return &models.PerformanceMeasure{
		BaseModel:    newBase(),
		InitiativeID: initiative.ID,
		Name:         name,
		Weight:       5,
		TargetSpec:   defaultTargets(),
	}
}

// MainActivity creates a main activity under initiative
func (f *StrategyFactory) MainActivity(name string, initiative *models.StrategicInitiative) *models.MainActivity {
	return &models.MainActivity{
		BaseModel:    newBase(),
		InitiativeID: initiative.ID,
		Name:         name,
		Weight:       5,
		TargetSpec:   defaultTargets(),
	}
}

// DetailActivity creates a detail activity under activity
func (f *StrategyFactory) DetailActivity(name string, activity *models.MainActivity) *models.DetailActivity {
	return &models.DetailActivity{
		BaseModel:      newBase(),
		MainActivityID: activity.ID,
		Name:           name,
		Weight:         2,
		TargetSpec:     defaultTargets(),
	}
}

func defaultTargets() models.TargetSpec {
	return models.TargetSpec{
		Baseline:         "0",
		TargetType:       models.TargetTypeCumulative,
		Q1Target:         10,
		Q2Target:         20,
		Q3Target:         30,
		Q4Target:         40,
		AnnualTarget:     100,
		SelectedQuarters: datatypes.JSONSlice[string]{"Q1", "Q2", "Q3", "Q4"},
	}
}

// PlanFactory provides methods to create test plans
type PlanFactory struct{}

// NewPlanFactory creates a new PlanFactory
func NewPlanFactory() *PlanFactory {
	return &PlanFactory{}
}

// Create creates a draft LEO/EO plan for org
func (f *PlanFactory) Create(org *models.Organization) *models.Plan {
	year := time.Now().Year()
	return &models.Plan{
		BaseModel:      newBase(),
		OrganizationID: org.ID,
		PlannerName:    "Test Planner",
		Type:           models.PlanTypeLeoEo,
		ExecutiveName:  "Test Executive",
		FiscalYear:     fmt.Sprintf("%d", year),
		FromDate:       time.Date(year, time.July, 8, 0, 0, 0, 0, time.UTC),
		ToDate:         time.Date(year+1, time.July, 7, 0, 0, 0, 0, time.UTC),
		Status:         models.PlanStatusDraft,
	}
}

// TeamDesk creates a draft team/desk plan of teamDesk under org
func (f *PlanFactory) TeamDesk(org, teamDesk *models.Organization, leoEoPlan *models.Plan) *models.TeamDeskPlan {
	plan := &models.TeamDeskPlan{
		BaseModel:      newBase(),
		OrganizationID: org.ID,
		Status:         models.TeamDeskPlanStatusDraft,
	}
	if teamDesk != nil {
		plan.TeamDeskID = &teamDesk.ID
	}
	if leoEoPlan != nil {
		plan.LeoEoPlanID = &leoEoPlan.ID
	}
	return plan
}

// Review creates a review of plan
func (f *PlanFactory) Review(plan *models.TeamDeskPlan, reviewer *models.OrganizationUser, status models.ReviewStatus) *models.TeamDeskPlanReview {
	review := &models.TeamDeskPlanReview{
		BaseModel: newBase(),
		PlanID:    plan.ID,
		Status:    status,
		Feedback:  "Looks " + string(status),
	}
	if reviewer != nil {
		review.ReviewerID = &reviewer.ID
	}
	return review
}

// LocationFactory provides methods to create costing locations
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a location in region
func (f *LocationFactory) Create(name, region string) *models.Location {
	return &models.Location{
		BaseModel: newBase(),
		Name:      name,
		Region:    region,
	}
}

// FactorySet provides all factories in one place
type FactorySet struct {
	Organization     *OrganizationFactory
	User             *UserFactory
	OrganizationUser *OrganizationUserFactory
	Strategy         *StrategyFactory
	Plan             *PlanFactory
	Location         *LocationFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:     NewOrganizationFactory(),
		User:             NewUserFactory(),
		OrganizationUser: NewOrganizationUserFactory(),
		Strategy:         NewStrategyFactory(),
		Plan:             NewPlanFactory(),
		Location:         NewLocationFactory(),
	}
}
