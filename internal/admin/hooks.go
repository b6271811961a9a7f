package admin

import (
	"fmt"

	"strategic-planning-backend/internal/database/models"
	apperrors "strategic-planning-backend/internal/errors"
)

// uniqueOrganizationName rejects a name already used by another organization
func uniqueOrganizationName(lookup Lookup, record interface{}, _ map[string]interface{}) error {
	org := record.(*models.Organization)
	taken, err := lookup.Exists("organizations", "name = ? AND id <> ?", org.Name, org.ID)
	if err != nil {
		return fmt.Errorf("failed to check organization name: %w", err)
	}
	if taken {
		return apperrors.ErrOrganizationExists
	}
	return nil
}

// teamDeskOrganization requires the plan's team/desk to be a TEAM_LEAD or DESK organization
func teamDeskOrganization(lookup Lookup, record interface{}, _ map[string]interface{}) error {
	plan := record.(*models.TeamDeskPlan)
	if plan.TeamDeskID == nil {
		return nil
	}
	ok, err := lookup.Exists("organizations", "id = ? AND type IN ?", *plan.TeamDeskID,
		[]string{string(models.OrganizationTypeTeamLead), string(models.OrganizationTypeDesk)})
	if err != nil {
		return fmt.Errorf("failed to check team/desk: %w", err)
	}
	if !ok {
		return apperrors.ErrInvalidTeamDesk
	}
	return nil
}

// retainSelectedWeights drops weight overrides of objectives left out of a new selection
func retainSelectedWeights(_ Lookup, record interface{}, selections map[string]interface{}) error {
	selected, ok := selections["selected_objectives"].(*[]models.StrategicObjective)
	if !ok {
		return nil
	}
	record.(*models.Plan).RetainObjectiveWeights(*selected)
	return nil
}
