package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TargetSpec carries the baseline, quarterly and annual targets and the reporting period
type TargetSpec struct {
	Baseline         string                      `json:"baseline" gorm:"column:baseline;size:255"`
	TargetType       TargetType                  `json:"target_type" gorm:"column:target_type;type:varchar(20);not null;default:'cumulative'" validate:"omitempty,oneof=cumulative increasing decreasing constant"`
	Q1Target         float64                     `json:"q1_target" gorm:"column:q1_target;type:numeric(12,2);default:0"`
	Q2Target         float64                     `json:"q2_target" gorm:"column:q2_target;type:numeric(12,2);default:0"`
	Q3Target         float64                     `json:"q3_target" gorm:"column:q3_target;type:numeric(12,2);default:0"`
	Q4Target         float64                     `json:"q4_target" gorm:"column:q4_target;type:numeric(12,2);default:0"`
	AnnualTarget     float64                     `json:"annual_target" gorm:"column:annual_target;type:numeric(12,2);default:0"`
	SelectedMonths   datatypes.JSONSlice[string] `json:"selected_months" gorm:"column:selected_months;type:jsonb"`
	SelectedQuarters datatypes.JSONSlice[string] `json:"selected_quarters" gorm:"column:selected_quarters;type:jsonb"`
}

// PerformanceMeasure is a measurable indicator of an initiative
type PerformanceMeasure struct {
	BaseModel
	InitiativeID   uuid.UUID  `json:"initiative_id" gorm:"type:uuid;not null;index" validate:"required"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Name           string     `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Weight         float64    `json:"weight" gorm:"type:numeric(5,2);not null;default:0" validate:"gte=0,lte=100"`
	TargetSpec

	// Relationships
	Initiative   *StrategicInitiative `json:"initiative,omitempty" gorm:"foreignKey:InitiativeID;constraint:OnDelete:CASCADE"`
	Organization *Organization        `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for PerformanceMeasure
func (PerformanceMeasure) TableName() string {
	return "performance_measures"
}

// MainActivity is an activity carried out under an initiative
type MainActivity struct {
	BaseModel
	InitiativeID   uuid.UUID  `json:"initiative_id" gorm:"type:uuid;not null;index" validate:"required"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Name           string     `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Weight         float64    `json:"weight" gorm:"type:numeric(5,2);not null;default:0" validate:"gte=0,lte=100"`
	TargetSpec

	// Relationships
	Initiative   *StrategicInitiative `json:"initiative,omitempty" gorm:"foreignKey:InitiativeID;constraint:OnDelete:CASCADE"`
	Organization *Organization        `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for MainActivity
func (MainActivity) TableName() string {
	return "main_activities"
}

// DetailActivity breaks a main activity down for a team or desk
type DetailActivity struct {
	BaseModel
	MainActivityID uuid.UUID  `json:"main_activity_id" gorm:"type:uuid;not null;index" validate:"required"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Name           string     `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Weight         float64    `json:"weight" gorm:"type:numeric(5,2);not null;default:0" validate:"gte=0,lte=100"`
	TargetSpec

	// Relationships
	MainActivity *MainActivity `json:"main_activity,omitempty" gorm:"foreignKey:MainActivityID;constraint:OnDelete:CASCADE"`
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for DetailActivity
func (DetailActivity) TableName() string {
	return "detail_activities"
}

// ActivityBudget holds the funding breakdown of one main activity
type ActivityBudget struct {
	BaseModel
	ActivityID               uuid.UUID             `json:"activity_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	BudgetCalculationType    BudgetCalculationType `json:"budget_calculation_type" gorm:"type:varchar(20);not null;default:'WITHOUT_TOOL'" validate:"required,oneof=WITH_TOOL WITHOUT_TOOL"`
	ActivityType             ActivityType          `json:"activity_type,omitempty" gorm:"type:varchar(20)" validate:"omitempty,oneof=Training Meeting Workshop Printing Supervision Procurement Other"`
	EstimatedCostWithTool    float64               `json:"estimated_cost_with_tool" gorm:"type:numeric(14,2);default:0" validate:"gte=0"`
	EstimatedCostWithoutTool float64               `json:"estimated_cost_without_tool" gorm:"type:numeric(14,2);default:0" validate:"gte=0"`
	GovernmentTreasury       float64               `json:"government_treasury" gorm:"type:numeric(14,2);default:0" validate:"gte=0"`
	SDGFunding               float64               `json:"sdg_funding" gorm:"column:sdg_funding;type:numeric(14,2);default:0" validate:"gte=0"`
	PartnersFunding          float64               `json:"partners_funding" gorm:"type:numeric(14,2);default:0" validate:"gte=0"`
	OtherFunding             float64               `json:"other_funding" gorm:"type:numeric(14,2);default:0" validate:"gte=0"`
	PartnersDetails          datatypes.JSON        `json:"partners_details,omitempty" gorm:"type:jsonb"`
	TrainingDetails          datatypes.JSON        `json:"training_details,omitempty" gorm:"type:jsonb"`

	// Relationships
	Activity *MainActivity `json:"activity,omitempty" gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ActivityBudget
func (ActivityBudget) TableName() string {
	return "activity_budgets"
}
