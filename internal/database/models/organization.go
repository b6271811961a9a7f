package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Organization is a node of the organizational hierarchy (ministry, executive office, team, desk)
type Organization struct {
	BaseModel
	Name       string                      `json:"name" gorm:"not null;size:255;index" validate:"required,min=1,max=255"`
	Type       OrganizationType            `json:"type" gorm:"type:varchar(50);not null;default:'EXECUTIVE'" validate:"required,oneof=MINISTER STATE_MINISTER_PROGRAM STATE_MINISTER_OPERATION CHIEF_EXECUTIVE LEAD_EXECUTIVE EXECUTIVE TEAM_LEAD DESK"`
	ParentID   *uuid.UUID                  `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	Vision     string                      `json:"vision" gorm:"type:text"`
	Mission    string                      `json:"mission" gorm:"type:text"`
	CoreValues datatypes.JSONSlice[string] `json:"core_values" gorm:"type:jsonb"`

	// Relationships
	Parent *Organization `json:"parent,omitempty" gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// OrganizationUser binds a user to an organization with a role
type OrganizationUser struct {
	BaseModel
	UserID         uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_user" validate:"required"`
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_user;index" validate:"required"`
	Role           OrganizationRole `json:"role" gorm:"type:varchar(50);not null;default:'PLANNER'" validate:"required,oneof=ADMIN PLANNER EVALUATOR TEAM_DESK_PLANNER"`

	// Relationships
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OrganizationUser
func (OrganizationUser) TableName() string {
	return "organization_users"
}
