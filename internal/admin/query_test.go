package admin

import (
	"testing"
	"time"

	"strategic-planning-backend/internal/database/models"
	apperrors "strategic-planning-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestListParams_Normalize(t *testing.T) {
	p := ListParams{}
	require.NoError(t, p.Normalize())
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	p = ListParams{Page: 3, PageSize: 500}
	require.NoError(t, p.Normalize())
	assert.Equal(t, MaxPageSize, p.PageSize)
	assert.Equal(t, 200, p.Offset())

	p = ListParams{Page: -1}
	assert.ErrorIs(t, p.Normalize(), apperrors.ErrInvalidPaginationParams)
}

func TestDateRangeStart(t *testing.T) {
	now := time.Date(2024, time.March, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		value    string
		expected time.Time
	}{
		{RangeToday, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{RangePast7Days, time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)},
		{RangeThisMonth, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{RangeThisYear, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := DateRangeStart(tt.value, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := DateRangeStart("last_decade", now)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFilter)
}

func TestFilterValue(t *testing.T) {
	v, err := FilterValue(Filter{Param: "is_default", Kind: FilterBool}, "true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = FilterValue(Filter{Param: "is_default", Kind: FilterBool}, "maybe")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFilter)

	id := uuid.New()
	v, err = FilterValue(Filter{Param: "organization", Kind: FilterRelated}, id.String())
	require.NoError(t, err)
	assert.Equal(t, id, v)

	_, err = FilterValue(Filter{Param: "organization", Kind: FilterRelated}, "not-an-id")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFilter)

	v, err = FilterValue(Filter{Param: "status", Kind: FilterExact}, "draft")
	require.NoError(t, err)
	assert.Equal(t, "draft", v)
}

func TestOrderClauses(t *testing.T) {
	site := DefaultSite()

	org, _ := site.Get("organizations")
	clauses, err := org.OrderClauses("")
	require.NoError(t, err)
	assert.Equal(t, []string{"organizations.type ASC", "organizations.name ASC"}, clauses)

	clauses, err = org.OrderClauses("-parent")
	require.NoError(t, err)
	assert.Equal(t, []string{"parent.name DESC"}, clauses)

	reviews, _ := site.Get("team-desk-plan-reviews")
	clauses, err = reviews.OrderClauses("")
	require.NoError(t, err)
	assert.Equal(t, []string{"team_desk_plan_reviews.reviewed_at DESC"}, clauses)

	objectives, _ := site.Get("strategic-objectives")
	clauses, err = objectives.OrderClauses("")
	require.NoError(t, err)
	assert.Equal(t, []string{"strategic_objectives.created_at DESC"}, clauses)

	users, _ := site.Get("users")
	_, err = users.OrderClauses("full_name")
	assert.True(t, apperrors.IsValidation(err))
	_, err = users.OrderClauses("nope")
	assert.True(t, apperrors.IsValidation(err))
}

func TestStripProtected(t *testing.T) {
	plans, _ := DefaultSite().Get("team-desk-plans")
	data := map[string]interface{}{
		"id":           "x",
		"created_at":   "y",
		"updated_at":   "z",
		"status":       "draft",
		"submitted_at": nil,
	}
	plans.StripProtected(data)
	assert.Equal(t, map[string]interface{}{"status": "draft", "submitted_at": nil}, data)
}

func TestCheckChoices(t *testing.T) {
	locations, _ := DefaultSite().Get("locations")

	assert.NoError(t, locations.CheckChoices(map[string]interface{}{"region": "Oromia"}))
	assert.NoError(t, locations.CheckChoices(map[string]interface{}{"name": "Adama"}))

	err := locations.CheckChoices(map[string]interface{}{"region": "Atlantis"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = locations.CheckChoices(map[string]interface{}{"region": 7})
	assert.True(t, apperrors.IsValidation(err))
}

func TestSplitManyToMany(t *testing.T) {
	plans, _ := DefaultSite().Get("team-desk-plans")
	a, b := uuid.New(), uuid.New()

	data := map[string]interface{}{
		"status":      "draft",
		"objectives":  []interface{}{a.String(), b.String()},
		"initiatives": nil,
	}
	sets, err := plans.SplitManyToMany(data)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, sets["objectives"])
	assert.Equal(t, []uuid.UUID{}, sets["initiatives"])
	assert.NotContains(t, sets, "main_activities")
	assert.Equal(t, map[string]interface{}{"status": "draft"}, data)

	_, err = plans.SplitManyToMany(map[string]interface{}{"objectives": []interface{}{"bad"}})
	assert.True(t, apperrors.IsValidation(err))

	_, err = plans.SplitManyToMany(map[string]interface{}{"objectives": "bad"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestDetail_Fieldsets(t *testing.T) {
	orgs, _ := DefaultSite().Get("organizations")
	parentID := uuid.New()
	org := &models.Organization{
		Name:       "Finance Desk",
		Type:       models.OrganizationTypeDesk,
		ParentID:   &parentID,
		Vision:     "v",
		Mission:    "m",
		CoreValues: datatypes.JSONSlice[string]{"Integrity", "Excellence"},
	}
	org.ID = uuid.New()

	detail, err := orgs.Detail(org)
	require.NoError(t, err)
	require.Len(t, detail, 2)

	assert.Equal(t, "", detail[0].Name)
	assert.Equal(t, "name", detail[0].Fields[0].Name)
	assert.Equal(t, "Finance Desk", detail[0].Fields[0].Value)
	assert.Equal(t, parentID.String(), detail[0].Fields[2].Value)

	assert.Equal(t, "Metadata", detail[1].Name)
	assert.True(t, detail[1].Collapsed)
	assert.Equal(t, CoreValuesField, detail[1].Fields[2].Name)
	assert.Equal(t, "Integrity\nExcellence", detail[1].Fields[2].Value)
}

func TestDetail_SelectionSetsAsIDs(t *testing.T) {
	plans, _ := DefaultSite().Get("team-desk-plans")
	objective := models.StrategicObjective{Title: "Quality"}
	objective.ID = uuid.New()
	plan := &models.TeamDeskPlan{Status: models.TeamDeskPlanStatusDraft, Objectives: []models.StrategicObjective{objective}}
	plan.ID = uuid.New()

	detail, err := plans.Detail(plan)
	require.NoError(t, err)

	content := detail[1]
	assert.Equal(t, "Content", content.Name)
	assert.Equal(t, []string{objective.ID.String()}, content.Fields[0].Value)
	assert.Equal(t, []string{}, content.Fields[1].Value)

	timestamps := detail[2]
	assert.True(t, timestamps.Fields[1].ReadOnly)
	assert.True(t, detail[0].Fields[0].RawID)
}

func TestDetail_DefaultFieldset(t *testing.T) {
	costs, _ := DefaultSite().Get("participant-costs")
	cost := &models.ParticipantCost{CostType: "FLASH_DISK", Price: 250}
	cost.ID = uuid.New()

	detail, err := costs.Detail(cost)
	require.NoError(t, err)
	require.Len(t, detail, 1)

	names := []string{}
	for _, f := range detail[0].Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"cost_type", "price"}, names)
}
