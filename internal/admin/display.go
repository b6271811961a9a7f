package admin

import (
	"fmt"

	"strategic-planning-backend/internal/database/models"
)

// NotAvailable is shown in place of a relation that is not set
const NotAvailable = "N/A"

// OrganizationLabel returns the organization's name
func OrganizationLabel(org *models.Organization) string {
	if org == nil {
		return NotAvailable
	}
	return org.Name
}

// TeamDeskName returns the name of the plan's team or desk
func TeamDeskName(plan *models.TeamDeskPlan) string {
	if plan == nil {
		return NotAvailable
	}
	return OrganizationLabel(plan.TeamDesk)
}

// OrganizationName returns the name of the organization owning the plan
func OrganizationName(plan *models.TeamDeskPlan) string {
	if plan == nil {
		return NotAvailable
	}
	return OrganizationLabel(plan.Organization)
}

// LeoEoPlanName labels the parent LEO/EO plan as "{organization} Plan"
func LeoEoPlanName(plan *models.TeamDeskPlan) string {
	if plan == nil || plan.LeoEoPlan == nil || plan.LeoEoPlan.Organization == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%s Plan", plan.LeoEoPlan.Organization.Name)
}

// PlanInfo labels a review's plan as "{team/desk} ({organization})"
func PlanInfo(review *models.TeamDeskPlanReview) string {
	if review == nil || review.Plan == nil || review.Plan.TeamDesk == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%s (%s)", review.Plan.TeamDesk.Name, OrganizationName(review.Plan))
}

// ReviewerName returns the reviewer's full name, falling back to the username
func ReviewerName(review *models.TeamDeskPlanReview) string {
	if review == nil || review.Reviewer == nil || review.Reviewer.User == nil {
		return NotAvailable
	}
	if name := review.Reviewer.User.FullName(); name != "" {
		return name
	}
	return review.Reviewer.User.Username
}

// UserName returns the user's username
func UserName(user *models.User) string {
	if user == nil {
		return NotAvailable
	}
	return user.Username
}

// LocationName returns the location's name
func LocationName(location *models.Location) string {
	if location == nil {
		return NotAvailable
	}
	return location.Name
}

// ObjectiveTitle returns the objective's title
func ObjectiveTitle(objective *models.StrategicObjective) string {
	if objective == nil {
		return NotAvailable
	}
	return objective.Title
}

// ProgramName returns the program's name
func ProgramName(program *models.Program) string {
	if program == nil {
		return NotAvailable
	}
	return program.Name
}

// InitiativeName returns the initiative's name
func InitiativeName(initiative *models.StrategicInitiative) string {
	if initiative == nil {
		return NotAvailable
	}
	return initiative.Name
}

// MainActivityName returns the main activity's name
func MainActivityName(activity *models.MainActivity) string {
	if activity == nil {
		return NotAvailable
	}
	return activity.Name
}

// TeamDeskPlanLabel labels a plan by its team/desk and organization
func TeamDeskPlanLabel(plan *models.TeamDeskPlan) string {
	if plan == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%s (%s)", TeamDeskName(plan), OrganizationName(plan))
}

// OrganizationUserLabel labels a membership as "{user} - {organization}"
func OrganizationUserLabel(member *models.OrganizationUser) string {
	if member == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%s - %s", UserName(member.User), OrganizationLabel(member.Organization))
}
