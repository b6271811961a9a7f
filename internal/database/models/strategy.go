package models

import (
	"github.com/google/uuid"
)

// StrategicObjective is a top-level strategic goal
type StrategicObjective struct {
	BaseModel
	Title       string  `json:"title" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description string  `json:"description" gorm:"type:text"`
	Weight      float64 `json:"weight" gorm:"type:numeric(5,2);not null;default:0" validate:"gte=0,lte=100"`
	IsDefault   bool    `json:"is_default" gorm:"default:false"`
}

// TableName returns the table name for StrategicObjective
func (StrategicObjective) TableName() string {
	return "strategic_objectives"
}

// InitiativeFeed is a catalogue entry initiatives can be created from
type InitiativeFeed struct {
	BaseModel
	Name                 string    `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description          string    `json:"description" gorm:"type:text"`
	StrategicObjectiveID uuid.UUID `json:"strategic_objective_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsActive             *bool     `json:"is_active,omitempty" gorm:"not null;default:true"`

	// Relationships
	StrategicObjective *StrategicObjective `json:"strategic_objective,omitempty" gorm:"foreignKey:StrategicObjectiveID;constraint:OnDelete:CASCADE"`
}

// Active reports whether the feed is offered; an unset flag means active
func (f *InitiativeFeed) Active() bool {
	return f.IsActive == nil || *f.IsActive
}

// TableName returns the table name for InitiativeFeed
func (InitiativeFeed) TableName() string {
	return "initiative_feeds"
}

// Program groups initiatives under an objective
type Program struct {
	BaseModel
	Name                 string    `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description          string    `json:"description" gorm:"type:text"`
	StrategicObjectiveID uuid.UUID `json:"strategic_objective_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsDefault            bool      `json:"is_default" gorm:"default:false"`

	// Relationships
	StrategicObjective *StrategicObjective `json:"strategic_objective,omitempty" gorm:"foreignKey:StrategicObjectiveID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Program
func (Program) TableName() string {
	return "programs"
}

// StrategicInitiative belongs to an objective and/or a program
type StrategicInitiative struct {
	BaseModel
	Name                 string     `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Weight               float64    `json:"weight" gorm:"type:numeric(5,2);not null;default:0" validate:"gte=0,lte=100"`
	StrategicObjectiveID *uuid.UUID `json:"strategic_objective_id,omitempty" gorm:"type:uuid;index"`
	ProgramID            *uuid.UUID `json:"program_id,omitempty" gorm:"type:uuid;index"`
	OrganizationID       *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	InitiativeFeedID     *uuid.UUID `json:"initiative_feed_id,omitempty" gorm:"type:uuid;index"`
	IsDefault            bool       `json:"is_default" gorm:"default:false"`

	// Relationships
	StrategicObjective *StrategicObjective `json:"strategic_objective,omitempty" gorm:"foreignKey:StrategicObjectiveID;constraint:OnDelete:CASCADE"`
	Program            *Program            `json:"program,omitempty" gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE"`
	Organization       *Organization       `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL"`
	InitiativeFeed     *InitiativeFeed     `json:"initiative_feed,omitempty" gorm:"foreignKey:InitiativeFeedID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for StrategicInitiative
func (StrategicInitiative) TableName() string {
	return "strategic_initiatives"
}
