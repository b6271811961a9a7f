package models

import "strings"

// User is an account that can be attached to organizations as planner or reviewer
type User struct {
	BaseModel
	Username  string `json:"username" gorm:"uniqueIndex;not null;size:150" validate:"required,min=1,max=150"`
	FirstName string `json:"first_name" gorm:"size:150" validate:"max=150"`
	LastName  string `json:"last_name" gorm:"size:150" validate:"max=150"`
	Email     string `json:"email" gorm:"size:254" validate:"omitempty,email,max=254"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns "first last" with surrounding whitespace removed, or an empty string
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
