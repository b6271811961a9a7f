package models

// OrganizationType defines the level of an organization in the hierarchy
type OrganizationType string

const (
	OrganizationTypeMinister               OrganizationType = "MINISTER"
	OrganizationTypeStateMinisterProgram   OrganizationType = "STATE_MINISTER_PROGRAM"
	OrganizationTypeStateMinisterOperation OrganizationType = "STATE_MINISTER_OPERATION"
	OrganizationTypeChiefExecutive         OrganizationType = "CHIEF_EXECUTIVE"
	OrganizationTypeLeadExecutive          OrganizationType = "LEAD_EXECUTIVE"
	OrganizationTypeExecutive              OrganizationType = "EXECUTIVE"
	OrganizationTypeTeamLead               OrganizationType = "TEAM_LEAD"
	OrganizationTypeDesk                   OrganizationType = "DESK"
)

// IsValid checks if the OrganizationType is valid
func (t OrganizationType) IsValid() bool {
	switch t {
	case OrganizationTypeMinister, OrganizationTypeStateMinisterProgram, OrganizationTypeStateMinisterOperation,
		OrganizationTypeChiefExecutive, OrganizationTypeLeadExecutive, OrganizationTypeExecutive,
		OrganizationTypeTeamLead, OrganizationTypeDesk:
		return true
	}
	return false
}

// IsTeamDesk reports whether organizations of this type own team/desk plans
func (t OrganizationType) IsTeamDesk() bool {
	return t == OrganizationTypeTeamLead || t == OrganizationTypeDesk
}

// OrganizationRole is the role a user holds inside an organization
type OrganizationRole string

const (
	OrganizationRoleAdmin           OrganizationRole = "ADMIN"
	OrganizationRolePlanner         OrganizationRole = "PLANNER"
	OrganizationRoleEvaluator       OrganizationRole = "EVALUATOR"
	OrganizationRoleTeamDeskPlanner OrganizationRole = "TEAM_DESK_PLANNER"
)

// TargetType describes how quarterly targets relate to the annual target
type TargetType string

const (
	TargetTypeCumulative TargetType = "cumulative"
	TargetTypeIncreasing TargetType = "increasing"
	TargetTypeDecreasing TargetType = "decreasing"
	TargetTypeConstant   TargetType = "constant"
)

// PlanType distinguishes executive level plans from team/desk plans
type PlanType string

const (
	PlanTypeLeoEo    PlanType = "LEO/EO"
	PlanTypeDeskTeam PlanType = "DESK/TEAM"
)

// PlanStatus is the workflow status of an executive level Plan
type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "DRAFT"
	PlanStatusSubmitted PlanStatus = "SUBMITTED"
	PlanStatusApproved  PlanStatus = "APPROVED"
	PlanStatusRejected  PlanStatus = "REJECTED"
)

// TeamDeskPlanStatus is the workflow status of a TeamDeskPlan
type TeamDeskPlanStatus string

const (
	TeamDeskPlanStatusDraft     TeamDeskPlanStatus = "draft"
	TeamDeskPlanStatusSubmitted TeamDeskPlanStatus = "submitted"
	TeamDeskPlanStatusReviewed  TeamDeskPlanStatus = "reviewed"
)

// IsValid checks if the TeamDeskPlanStatus is valid
func (s TeamDeskPlanStatus) IsValid() bool {
	switch s {
	case TeamDeskPlanStatusDraft, TeamDeskPlanStatusSubmitted, TeamDeskPlanStatusReviewed:
		return true
	}
	return false
}

// ReviewStatus is a single reviewer's verdict on a TeamDeskPlan
type ReviewStatus string

const (
	ReviewStatusApproved          ReviewStatus = "approved"
	ReviewStatusRejected          ReviewStatus = "rejected"
	ReviewStatusRevisionRequested ReviewStatus = "revision_requested"
)

// IsValid checks if the ReviewStatus is valid
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusApproved, ReviewStatusRejected, ReviewStatusRevisionRequested:
		return true
	}
	return false
}

// BudgetCalculationType selects which estimated cost a budget is based on
type BudgetCalculationType string

const (
	BudgetCalculationWithTool    BudgetCalculationType = "WITH_TOOL"
	BudgetCalculationWithoutTool BudgetCalculationType = "WITHOUT_TOOL"
)

// ActivityType classifies activities for costing
type ActivityType string

const (
	ActivityTypeTraining    ActivityType = "Training"
	ActivityTypeMeeting     ActivityType = "Meeting"
	ActivityTypeWorkshop    ActivityType = "Workshop"
	ActivityTypePrinting    ActivityType = "Printing"
	ActivityTypeSupervision ActivityType = "Supervision"
	ActivityTypeProcurement ActivityType = "Procurement"
	ActivityTypeOther       ActivityType = "Other"
)

// TripType defines land transport trip kinds
type TripType string

const (
	TripTypeSingle TripType = "SINGLE"
	TripTypeRound  TripType = "ROUND"
)

// AccommodationServiceType defines accommodation services that are priced per location
type AccommodationServiceType string

const (
	AccommodationLunch           AccommodationServiceType = "LUNCH"
	AccommodationHallRefreshment AccommodationServiceType = "HALL_REFRESHMENT"
	AccommodationDinner          AccommodationServiceType = "DINNER"
	AccommodationBed             AccommodationServiceType = "BED"
	AccommodationFullBoard       AccommodationServiceType = "FULL_BOARD"
)

// Regions are the allowed values of Location.Region
var Regions = []string{
	"Addis Ababa",
	"Afar",
	"Amhara",
	"Benishangul-Gumuz",
	"Central Ethiopia",
	"Dire Dawa",
	"Gambela",
	"Harari",
	"Oromia",
	"Sidama",
	"Somali",
	"South Ethiopia",
	"South West Ethiopia",
	"Tigray",
}
