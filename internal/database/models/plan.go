package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ObjectiveWeights maps a strategic objective id to the weight a plan assigns to it
type ObjectiveWeights map[string]float64

// Plan is an executive level (LEO/EO) plan
type Plan struct {
	BaseModel
	OrganizationID       uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	PlannerName          string     `json:"planner_name" gorm:"size:255;not null" validate:"required,max=255"`
	Type                 PlanType   `json:"type" gorm:"type:varchar(20);not null;default:'LEO/EO'" validate:"required,oneof=LEO/EO DESK/TEAM"`
	ExecutiveName        string     `json:"executive_name" gorm:"size:255" validate:"max=255"`
	StrategicObjectiveID *uuid.UUID `json:"strategic_objective_id,omitempty" gorm:"type:uuid;index"`
	FiscalYear           string     `json:"fiscal_year" gorm:"size:10;not null" validate:"required,max=10"`
	FromDate             time.Time  `json:"from_date" gorm:"type:date;not null" validate:"required"`
	ToDate               time.Time  `json:"to_date" gorm:"type:date;not null" validate:"required"`
	Status               PlanStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT';index" validate:"required,oneof=DRAFT SUBMITTED APPROVED REJECTED"`
	SubmittedAt          *time.Time `json:"submitted_at,omitempty"`

	// SelectedObjectivesWeights overrides objective weights for this plan; nil when never set
	SelectedObjectivesWeights *datatypes.JSONType[ObjectiveWeights] `json:"selected_objectives_weights,omitempty" gorm:"type:jsonb"`

	// Relationships
	Organization       *Organization        `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	StrategicObjective *StrategicObjective  `json:"strategic_objective,omitempty" gorm:"foreignKey:StrategicObjectiveID;constraint:OnDelete:SET NULL"`
	SelectedObjectives []StrategicObjective `json:"selected_objectives,omitempty" gorm:"many2many:plan_selected_objectives;joinForeignKey:PlanID;joinReferences:StrategicObjectiveID"`
}

// TableName returns the table name for Plan
func (Plan) TableName() string {
	return "plans"
}

// ObjectiveWeights returns the weight overrides, never nil
func (p *Plan) ObjectiveWeights() ObjectiveWeights {
	if p.SelectedObjectivesWeights == nil {
		return ObjectiveWeights{}
	}
	weights := p.SelectedObjectivesWeights.Data()
	if weights == nil {
		return ObjectiveWeights{}
	}
	return weights
}

// SetObjectiveWeights stores the overrides; an empty map clears the column
func (p *Plan) SetObjectiveWeights(weights ObjectiveWeights) {
	if len(weights) == 0 {
		p.SelectedObjectivesWeights = nil
		return
	}
	value := datatypes.NewJSONType(weights)
	p.SelectedObjectivesWeights = &value
}

// RetainObjectiveWeights drops the overrides of objectives outside selected
func (p *Plan) RetainObjectiveWeights(selected []StrategicObjective) {
	keep := make(map[string]bool, len(selected))
	for _, objective := range selected {
		keep[objective.ID.String()] = true
	}
	kept := ObjectiveWeights{}
	for objectiveID, weight := range p.ObjectiveWeights() {
		if keep[objectiveID] {
			kept[objectiveID] = weight
		}
	}
	p.SetObjectiveWeights(kept)
}

// TeamDeskPlan is a plan drafted by a team or desk against a LEO/EO plan
type TeamDeskPlan struct {
	BaseModel
	OrganizationID uuid.UUID          `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamDeskID     *uuid.UUID         `json:"team_desk_id,omitempty" gorm:"type:uuid;index"`
	LeoEoPlanID    *uuid.UUID         `json:"leo_eo_plan_id,omitempty" gorm:"type:uuid;index"`
	Status         TeamDeskPlanStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index" validate:"required,oneof=draft submitted reviewed"`
	SubmittedAt    *time.Time         `json:"submitted_at,omitempty"`

	// Relationships
	Organization        *Organization         `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	TeamDesk            *Organization         `json:"team_desk,omitempty" gorm:"foreignKey:TeamDeskID;constraint:OnDelete:SET NULL"`
	LeoEoPlan           *Plan                 `json:"leo_eo_plan,omitempty" gorm:"foreignKey:LeoEoPlanID;constraint:OnDelete:SET NULL"`
	Objectives          []StrategicObjective  `json:"objectives,omitempty" gorm:"many2many:team_desk_plan_objectives;joinForeignKey:TeamDeskPlanID;joinReferences:StrategicObjectiveID"`
	Initiatives         []StrategicInitiative `json:"initiatives,omitempty" gorm:"many2many:team_desk_plan_initiatives;joinForeignKey:TeamDeskPlanID;joinReferences:StrategicInitiativeID"`
	PerformanceMeasures []PerformanceMeasure  `json:"performance_measures,omitempty" gorm:"many2many:team_desk_plan_performance_measures;joinForeignKey:TeamDeskPlanID;joinReferences:PerformanceMeasureID"`
	MainActivities      []MainActivity        `json:"main_activities,omitempty" gorm:"many2many:team_desk_plan_main_activities;joinForeignKey:TeamDeskPlanID;joinReferences:MainActivityID"`
	DetailActivities    []DetailActivity      `json:"detail_activities,omitempty" gorm:"many2many:team_desk_plan_detail_activities;joinForeignKey:TeamDeskPlanID;joinReferences:DetailActivityID"`
	Reviews             []TeamDeskPlanReview  `json:"reviews,omitempty" gorm:"foreignKey:PlanID"`
}

// TableName returns the table name for TeamDeskPlan
func (TeamDeskPlan) TableName() string {
	return "team_desk_plans"
}

// TeamDeskPlanReview is one reviewer's verdict on a TeamDeskPlan. Rows are only ever inserted.
type TeamDeskPlanReview struct {
	BaseModel
	PlanID     uuid.UUID    `json:"plan_id" gorm:"type:uuid;not null;index" validate:"required"`
	ReviewerID *uuid.UUID   `json:"reviewer_id,omitempty" gorm:"type:uuid;index"`
	Status     ReviewStatus `json:"status" gorm:"type:varchar(20);not null" validate:"required,oneof=approved rejected revision_requested"`
	Feedback   string       `json:"feedback" gorm:"type:text"`
	ReviewedAt time.Time    `json:"reviewed_at" gorm:"not null;index"`

	// Relationships
	Plan     *TeamDeskPlan     `json:"plan,omitempty" gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	Reviewer *OrganizationUser `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for TeamDeskPlanReview
func (TeamDeskPlanReview) TableName() string {
	return "team_desk_plan_reviews"
}

// BeforeCreate stamps reviewed_at when the caller left it unset
func (r *TeamDeskPlanReview) BeforeCreate(tx *gorm.DB) error {
	if r.ReviewedAt.IsZero() {
		r.ReviewedAt = time.Now()
	}
	return r.BaseModel.BeforeCreate(tx)
}
