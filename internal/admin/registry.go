package admin

import (
	"time"

	"strategic-planning-backend/internal/database/models"
)

var targetFields = []string{"baseline", "target_type", "q1_target", "q2_target", "q3_target", "q4_target", "annual_target"}
var periodFields = []string{"selected_months", "selected_quarters"}

func timestamp(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func col(name, label, orderField string) Column {
	return Column{Name: name, Label: label, OrderField: orderField}
}

func appendFields(fields []string, more ...string) []string {
	out := make([]string, 0, len(fields)+len(more))
	out = append(out, fields...)
	return append(out, more...)
}

// DefaultSite registers every entity of the planning system
func DefaultSite() *Site {
	site := NewSite()
	for _, m := range []*ModelAdmin{
		userAdmin(),
		organizationAdmin(),
		organizationUserAdmin(),
		initiativeFeedAdmin(),
		strategicObjectiveAdmin(),
		programAdmin(),
		strategicInitiativeAdmin(),
		performanceMeasureAdmin(),
		mainActivityAdmin(),
		detailActivityAdmin(),
		activityBudgetAdmin(),
		activityCostingAssumptionAdmin(),
		locationAdmin(),
		landTransportAdmin(),
		airTransportAdmin(),
		perDiemAdmin(),
		accommodationAdmin(),
		participantCostAdmin(),
		sessionCostAdmin(),
		printingCostAdmin(),
		supervisorCostAdmin(),
		procurementItemAdmin(),
		planAdmin(),
		teamDeskPlanAdmin(),
		teamDeskPlanReviewAdmin(),
	} {
		site.Register(m)
	}
	return site
}

func userAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "users",
		VerboseName:       "user",
		VerboseNamePlural: "users",
		Table:             "users",
		ListDisplay: []Column{
			col("username", "Username", "users.username"),
			col("full_name", "Full name", ""),
			col("email", "Email", "users.email"),
			col("created_at", "Created", "users.created_at"),
		},
		SearchFields: []string{"users.username", "users.first_name", "users.last_name", "users.email"},
		Ordering:     []string{"users.username"},
	}, func(u *models.User) Row {
		return Row{
			"id":         u.ID,
			"username":   u.Username,
			"full_name":  u.FullName(),
			"email":      u.Email,
			"created_at": u.CreatedAt,
		}
	})
}

func organizationAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "organizations",
		VerboseName:       "organization",
		VerboseNamePlural: "organizations",
		Table:             "organizations",
		ListDisplay: []Column{
			col("name", "Name", "organizations.name"),
			col("type", "Type", "organizations.type"),
			col("parent", "Parent", "parent.name"),
			col("created_at", "Created", "organizations.created_at"),
			col("updated_at", "Updated", "organizations.updated_at"),
		},
		ListFilter: []Filter{
			{Param: "type", Column: "organizations.type", Kind: FilterExact},
		},
		SearchFields: []string{"organizations.name"},
		Ordering:     []string{"organizations.type", "organizations.name"},
		Joins:        []string{"LEFT JOIN organizations AS parent ON parent.id = organizations.parent_id"},
		Preload:      []string{"Parent"},
		Fieldsets: []Fieldset{
			{Fields: []string{"name", "type", "parent_id"}},
			{Name: "Metadata", Fields: []string{"vision", "mission", CoreValuesField}, Collapsed: true},
		},
		Form:       OrganizationForm{},
		BeforeSave: uniqueOrganizationName,
	}, func(o *models.Organization) Row {
		return Row{
			"id":         o.ID,
			"name":       o.Name,
			"type":       o.Type,
			"parent":     OrganizationLabel(o.Parent),
			"created_at": o.CreatedAt,
			"updated_at": o.UpdatedAt,
		}
	})
}

func organizationUserAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "organization-users",
		VerboseName:       "organization user",
		VerboseNamePlural: "organization users",
		Table:             "organization_users",
		ListDisplay: []Column{
			col("user", "User", "member_user.username"),
			col("organization", "Organization", "organization.name"),
			col("role", "Role", "organization_users.role"),
			col("created_at", "Created", "organization_users.created_at"),
		},
		ListFilter: []Filter{
			{Param: "role", Column: "organization_users.role", Kind: FilterExact},
			{Param: "organization", Column: "organization_users.organization_id", Kind: FilterRelated},
		},
		SearchFields: []string{"member_user.username", "member_user.email", "organization.name"},
		Ordering:     []string{"organization.name", "member_user.username"},
		Joins: []string{
			"LEFT JOIN users AS member_user ON member_user.id = organization_users.user_id",
			"LEFT JOIN organizations AS organization ON organization.id = organization_users.organization_id",
		},
		Preload:     []string{"User", "Organization"},
		RawIDFields: []string{"user_id", "organization_id"},
	}, func(m *models.OrganizationUser) Row {
		return Row{
			"id":           m.ID,
			"user":         UserName(m.User),
			"organization": OrganizationLabel(m.Organization),
			"role":         m.Role,
			"created_at":   m.CreatedAt,
		}
	})
}

func initiativeFeedAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "initiative-feeds",
		VerboseName:       "initiative feed",
		VerboseNamePlural: "initiative feeds",
		Table:             "initiative_feeds",
		ListDisplay: []Column{
			col("name", "Name", "initiative_feeds.name"),
			col("strategic_objective", "Strategic objective", "strategic_objective.title"),
			col("is_active", "Active", "initiative_feeds.is_active"),
			col("created_at", "Created", "initiative_feeds.created_at"),
			col("updated_at", "Updated", "initiative_feeds.updated_at"),
		},
		ListFilter: []Filter{
			{Param: "is_active", Column: "initiative_feeds.is_active", Kind: FilterBool},
			{Param: "strategic_objective", Column: "initiative_feeds.strategic_objective_id", Kind: FilterRelated},
		},
		SearchFields: []string{"initiative_feeds.name", "initiative_feeds.description", "strategic_objective.title"},
		Ordering:     []string{"initiative_feeds.name"},
		Joins:        []string{"LEFT JOIN strategic_objectives AS strategic_objective ON strategic_objective.id = initiative_feeds.strategic_objective_id"},
		Preload:      []string{"StrategicObjective"},
		Fieldsets: []Fieldset{
			{Fields: []string{"name", "description", "strategic_objective_id", "is_active"}},
		},
	}, func(f *models.InitiativeFeed) Row {
		return Row{
			"id":                  f.ID,
			"name":                f.Name,
			"strategic_objective": ObjectiveTitle(f.StrategicObjective),
			"is_active":           f.Active(),
			"created_at":          f.CreatedAt,
			"updated_at":          f.UpdatedAt,
		}
	})
}

func strategicObjectiveAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "strategic-objectives",
		VerboseName:       "strategic objective",
		VerboseNamePlural: "strategic objectives",
		Table:             "strategic_objectives",
		ListDisplay: []Column{
			col("title", "Title", "strategic_objectives.title"),
			col("weight", "Weight", "strategic_objectives.weight"),
			col("is_default", "Default", "strategic_objectives.is_default"),
			col("created_at", "Created", "strategic_objectives.created_at"),
			col("updated_at", "Updated", "strategic_objectives.updated_at"),
		},
		ListFilter: []Filter{
			{Param: "is_default", Column: "strategic_objectives.is_default", Kind: FilterBool},
		},
		SearchFields: []string{"strategic_objectives.title", "strategic_objectives.description"},
	}, func(o *models.StrategicObjective) Row {
		return Row{
			"id":         o.ID,
			"title":      o.Title,
			"weight":     o.Weight,
			"is_default": o.IsDefault,
			"created_at": o.CreatedAt,
			"updated_at": o.UpdatedAt,
		}
	})
}

func programAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "programs",
		VerboseName:       "program",
		VerboseNamePlural: "programs",
		Table:             "programs",
		ListDisplay: []Column{
			col("name", "Name", "programs.name"),
			col("strategic_objective", "Strategic objective", "strategic_objective.title"),
			col("is_default", "Default", "programs.is_default"),
			col("created_at", "Created", "programs.created_at"),
			col("updated_at", "Updated", "programs.updated_at"),
		},
		ListFilter: []Filter{
			{Param: "strategic_objective", Column: "programs.strategic_objective_id", Kind: FilterRelated},
			{Param: "is_default", Column: "programs.is_default", Kind: FilterBool},
		},
		SearchFields: []string{"programs.name", "programs.description"},
		Joins:        []string{"LEFT JOIN strategic_objectives AS strategic_objective ON strategic_objective.id = programs.strategic_objective_id"},
		Preload:      []string{"StrategicObjective"},
	}, func(p *models.Program) Row {
		return Row{
			"id":                  p.ID,
			"name":                p.Name,
			"strategic_objective": ObjectiveTitle(p.StrategicObjective),
			"is_default":          p.IsDefault,
			"created_at":          p.CreatedAt,
			"updated_at":          p.UpdatedAt,
		}
	})
}

func strategicInitiativeAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "strategic-initiatives",
		VerboseName:       "strategic initiative",
		VerboseNamePlural: "strategic initiatives",
		Table:             "strategic_initiatives",
		ListDisplay: []Column{
			col("name", "Name", "strategic_initiatives.name"),
			col("strategic_objective", "Strategic objective", "strategic_objective.title"),
			col("program", "Program", "program.name"),
			col("weight", "Weight", "strategic_initiatives.weight"),
			col("is_default", "Default", "strategic_initiatives.is_default"),
			col("created_at", "Created", "strategic_initiatives.created_at"),
			col("updated_at", "Updated", "strategic_initiatives.updated_at"),
		},
		ListFilter: []Filter{
			{Param: "strategic_objective", Column: "strategic_initiatives.strategic_objective_id", Kind: FilterRelated},
			{Param: "program", Column: "strategic_initiatives.program_id", Kind: FilterRelated},
			{Param: "is_default", Column: "strategic_initiatives.is_default", Kind: FilterBool},
		},
		SearchFields: []string{"strategic_initiatives.name"},
		Joins: []string{
			"LEFT JOIN strategic_objectives AS strategic_objective ON strategic_objective.id = strategic_initiatives.strategic_objective_id",
			"LEFT JOIN programs AS program ON program.id = strategic_initiatives.program_id",
		},
		Preload: []string{"StrategicObjective", "Program"},
		Inlines: []Inline{
			{
				Name:       "performance_measures",
				Entity:     "performance-measures",
				ForeignKey: "initiative_id",
				Fields:     []string{"name", "weight", "baseline", "q1_target", "q2_target", "q3_target", "q4_target", "annual_target"},
				Extra:      1,
			},
			{
				Name:       "main_activities",
				Entity:     "main-activities",
				ForeignKey: "initiative_id",
				Fields:     appendFields(appendFields([]string{"name", "weight"}, periodFields...), targetFields...),
				Extra:      1,
			},
		},
	}, func(i *models.StrategicInitiative) Row {
		return Row{
			"id":                  i.ID,
			"name":                i.Name,
			"strategic_objective": ObjectiveTitle(i.StrategicObjective),
			"program":             ProgramName(i.Program),
			"weight":              i.Weight,
			"is_default":          i.IsDefault,
			"created_at":          i.CreatedAt,
			"updated_at":          i.UpdatedAt,
		}
	})
}

func performanceMeasureAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "performance-measures",
		VerboseName:       "performance measure",
		VerboseNamePlural: "performance measures",
		Table:             "performance_measures",
		ListDisplay: []Column{
			col("name", "Name", "performance_measures.name"),
			col("initiative", "Initiative", "initiative.name"),
			col("weight", "Weight", "performance_measures.weight"),
			col("annual_target", "Annual target", "performance_measures.annual_target"),
			col("created_at", "Created", "performance_measures.created_at"),
			col("updated_at", "Updated", "performance_measures.updated_at"),
		},
		ListFilter: []Filter{
			{Param: "initiative", Column: "performance_measures.initiative_id", Kind: FilterRelated},
		},
		SearchFields: []string{"performance_measures.name"},
		Joins:        []string{"LEFT JOIN strategic_initiatives AS initiative ON initiative.id = performance_measures.initiative_id"},
		Preload:      []string{"Initiative"},
		Fieldsets: []Fieldset{
			{Fields: []string{"initiative_id", "name", "weight", "baseline"}},
			{Name: "Targets", Fields: []string{"target_type", "q1_target", "q2_target", "q3_target", "q4_target", "annual_target"}},
			{Name: "Period", Fields: periodFields, Collapsed: true},
		},
	}, func(m *models.PerformanceMeasure) Row {
		return Row{
			"id":            m.ID,
			"name":          m.Name,
			"initiative":    InitiativeName(m.Initiative),
			"weight":        m.Weight,
			"annual_target": m.AnnualTarget,
			"created_at":    m.CreatedAt,
			"updated_at":    m.UpdatedAt,
		}
	})
}

func mainActivityAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "main-activities",
		VerboseName:       "main activity",
		VerboseNamePlural: "main activities",
		Table:             "main_activities",
		ListDisplay: []Column{
			col("name", "Name", "main_activities.name"),
			col("initiative", "Initiative", "initiative.name"),
			col("weight", "Weight", "main_activities.weight"),
			col("created_at", "Created", "main_activities.created_at"),
			col("updated_at", "Updated", "main_activities.updated_at"),
		},
		ListFilter: []Filter{
			{Param: "initiative", Column: "main_activities.initiative_id", Kind: FilterRelated},
		},
		SearchFields: []string{"main_activities.name"},
		Joins:        []string{"LEFT JOIN strategic_initiatives AS initiative ON initiative.id = main_activities.initiative_id"},
		Preload:      []string{"Initiative"},
		Fieldsets: []Fieldset{
			{Fields: []string{"initiative_id", "name", "weight"}},
			{Name: "Period", Fields: periodFields},
			{Name: "Targets", Fields: targetFields},
		},
	}, func(a *models.MainActivity) Row {
		return Row{
			"id":         a.ID,
			"name":       a.Name,
			"initiative": InitiativeName(a.Initiative),
			"weight":     a.Weight,
			"created_at": a.CreatedAt,
			"updated_at": a.UpdatedAt,
		}
	})
}

func detailActivityAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "detail-activities",
		VerboseName:       "detail activity",
		VerboseNamePlural: "detail activities",
		Table:             "detail_activities",
		ListDisplay: []Column{
			col("name", "Name", "detail_activities.name"),
			col("main_activity", "Main activity", "main_activity.name"),
			col("weight", "Weight", "detail_activities.weight"),
			col("organization", "Organization", "organization.name"),
			col("created_at", "Created", "detail_activities.created_at"),
			col("updated_at", "Updated", "detail_activities.updated_at"),
		},
		ListFilter: []Filter{
			{Param: "target_type", Column: "detail_activities.target_type", Kind: FilterExact},
			{Param: "organization", Column: "detail_activities.organization_id", Kind: FilterRelated},
			{Param: "main_activity__initiative", Column: "main_activity.initiative_id", Kind: FilterRelated},
		},
		SearchFields: []string{"detail_activities.name", "main_activity.name"},
		Joins: []string{
			"LEFT JOIN main_activities AS main_activity ON main_activity.id = detail_activities.main_activity_id",
			"LEFT JOIN organizations AS organization ON organization.id = detail_activities.organization_id",
		},
		Preload: []string{"MainActivity", "Organization"},
		Fieldsets: []Fieldset{
			{Fields: []string{"main_activity_id", "name", "weight", "organization_id"}},
			{Name: "Period", Fields: periodFields},
			{Name: "Targets", Fields: targetFields},
		},
		RawIDFields:    []string{"main_activity_id", "organization_id"},
		ReadOnlyFields: []string{"created_at", "updated_at"},
	}, func(a *models.DetailActivity) Row {
		return Row{
			"id":            a.ID,
			"name":          a.Name,
			"main_activity": MainActivityName(a.MainActivity),
			"weight":        a.Weight,
			"organization":  OrganizationLabel(a.Organization),
			"created_at":    a.CreatedAt,
			"updated_at":    a.UpdatedAt,
		}
	})
}

func activityBudgetAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "activity-budgets",
		VerboseName:       "activity budget",
		VerboseNamePlural: "activity budgets",
		Table:             "activity_budgets",
		ListDisplay: []Column{
			col("activity", "Activity", "activity.name"),
			col("budget_calculation_type", "Calculation", "activity_budgets.budget_calculation_type"),
			col("activity_type", "Activity type", "activity_budgets.activity_type"),
			col("created_at", "Created", "activity_budgets.created_at"),
		},
		ListFilter: []Filter{
			{Param: "budget_calculation_type", Column: "activity_budgets.budget_calculation_type", Kind: FilterExact},
			{Param: "activity_type", Column: "activity_budgets.activity_type", Kind: FilterExact},
		},
		SearchFields: []string{"activity.name"},
		Joins:        []string{"LEFT JOIN main_activities AS activity ON activity.id = activity_budgets.activity_id"},
		Preload:      []string{"Activity"},
		Fieldsets: []Fieldset{
			{Fields: []string{"activity_id", "budget_calculation_type", "activity_type"}},
			{Name: "Costs", Fields: []string{
				"estimated_cost_with_tool",
				"estimated_cost_without_tool",
				"government_treasury",
				"sdg_funding",
				"partners_funding",
				"other_funding",
				"partners_details",
			}},
			{Name: "Training Details", Fields: []string{"training_details"}, Collapsed: true},
		},
	}, func(b *models.ActivityBudget) Row {
		return Row{
			"id":                      b.ID,
			"activity":                MainActivityName(b.Activity),
			"budget_calculation_type": b.BudgetCalculationType,
			"activity_type":           b.ActivityType,
			"created_at":              b.CreatedAt,
		}
	})
}

func activityCostingAssumptionAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "activity-costing-assumptions",
		VerboseName:       "activity costing assumption",
		VerboseNamePlural: "activity costing assumptions",
		Table:             "activity_costing_assumptions",
		ListDisplay: []Column{
			col("activity_type", "Activity type", "activity_costing_assumptions.activity_type"),
			col("location", "Location", "activity_costing_assumptions.location"),
			col("cost_type", "Cost type", "activity_costing_assumptions.cost_type"),
			col("amount", "Amount", "activity_costing_assumptions.amount"),
			col("created_at", "Created", "activity_costing_assumptions.created_at"),
		},
		ListFilter: []Filter{
			{Param: "activity_type", Column: "activity_costing_assumptions.activity_type", Kind: FilterExact},
			{Param: "location", Column: "activity_costing_assumptions.location", Kind: FilterExact},
			{Param: "cost_type", Column: "activity_costing_assumptions.cost_type", Kind: FilterExact},
		},
		SearchFields: []string{"activity_costing_assumptions.description"},
		Ordering: []string{
			"activity_costing_assumptions.activity_type",
			"activity_costing_assumptions.location",
			"activity_costing_assumptions.cost_type",
		},
	}, func(a *models.ActivityCostingAssumption) Row {
		return Row{
			"id":            a.ID,
			"activity_type": a.ActivityType,
			"location":      a.Location,
			"cost_type":     a.CostType,
			"amount":        a.Amount,
			"created_at":    a.CreatedAt,
		}
	})
}

func locationAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "locations",
		VerboseName:       "location",
		VerboseNamePlural: "locations",
		Table:             "locations",
		ListDisplay: []Column{
			col("name", "Name", "locations.name"),
			col("region", "Region", "locations.region"),
			col("is_hardship_area", "Hardship area", "locations.is_hardship_area"),
		},
		ListFilter: []Filter{
			{Param: "is_hardship_area", Column: "locations.is_hardship_area", Kind: FilterBool},
			{Param: "region", Column: "locations.region", Kind: FilterExact},
		},
		SearchFields: []string{"locations.name", "locations.region"},
		Ordering:     []string{"locations.region", "locations.name"},
		Fieldsets: []Fieldset{
			{Fields: []string{"name", "region", "is_hardship_area"}},
		},
		Choices: map[string][]string{"region": models.Regions},
	}, func(l *models.Location) Row {
		return Row{
			"id":               l.ID,
			"name":             l.Name,
			"region":           l.Region,
			"is_hardship_area": l.IsHardshipArea,
		}
	})
}

func routeJoins(table string) []string {
	return []string{
		"LEFT JOIN locations AS origin ON origin.id = " + table + ".origin_id",
		"LEFT JOIN locations AS destination ON destination.id = " + table + ".destination_id",
	}
}

func landTransportAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "land-transports",
		VerboseName:       "land transport",
		VerboseNamePlural: "land transports",
		Table:             "land_transports",
		ListDisplay: []Column{
			col("origin", "Origin", "origin.name"),
			col("destination", "Destination", "destination.name"),
			col("trip_type", "Trip type", "land_transports.trip_type"),
			col("price", "Price", "land_transports.price"),
		},
		ListFilter: []Filter{
			{Param: "trip_type", Column: "land_transports.trip_type", Kind: FilterExact},
			{Param: "origin__region", Column: "origin.region", Kind: FilterExact},
			{Param: "destination__region", Column: "destination.region", Kind: FilterExact},
		},
		SearchFields: []string{"origin.name", "destination.name"},
		Ordering:     []string{"origin.name", "destination.name"},
		Joins:        routeJoins("land_transports"),
		Preload:      []string{"Origin", "Destination"},
	}, func(t *models.LandTransport) Row {
		return Row{
			"id":          t.ID,
			"origin":      LocationName(t.Origin),
			"destination": LocationName(t.Destination),
			"trip_type":   t.TripType,
			"price":       t.Price,
		}
	})
}

func airTransportAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "air-transports",
		VerboseName:       "air transport",
		VerboseNamePlural: "air transports",
		Table:             "air_transports",
		ListDisplay: []Column{
			col("origin", "Origin", "origin.name"),
			col("destination", "Destination", "destination.name"),
			col("price", "Price", "air_transports.price"),
		},
		ListFilter: []Filter{
			{Param: "origin__region", Column: "origin.region", Kind: FilterExact},
			{Param: "destination__region", Column: "destination.region", Kind: FilterExact},
		},
		SearchFields: []string{"origin.name", "destination.name"},
		Ordering:     []string{"origin.name", "destination.name"},
		Joins:        routeJoins("air_transports"),
		Preload:      []string{"Origin", "Destination"},
	}, func(t *models.AirTransport) Row {
		return Row{
			"id":          t.ID,
			"origin":      LocationName(t.Origin),
			"destination": LocationName(t.Destination),
			"price":       t.Price,
		}
	})
}

func perDiemAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "per-diems",
		VerboseName:       "per diem",
		VerboseNamePlural: "per diems",
		Table:             "per_diems",
		ListDisplay: []Column{
			col("location", "Location", "location.name"),
			col("amount", "Amount", "per_diems.amount"),
			col("hardship_allowance_amount", "Hardship allowance", "per_diems.hardship_allowance_amount"),
		},
		ListFilter: []Filter{
			{Param: "location__region", Column: "location.region", Kind: FilterExact},
		},
		SearchFields: []string{"location.name"},
		Ordering:     []string{"location.name", "per_diems.amount"},
		Joins:        []string{"LEFT JOIN locations AS location ON location.id = per_diems.location_id"},
		Preload:      []string{"Location"},
	}, func(p *models.PerDiem) Row {
		return Row{
			"id":                        p.ID,
			"location":                  LocationName(p.Location),
			"amount":                    p.Amount,
			"hardship_allowance_amount": p.HardshipAllowanceAmount,
		}
	})
}

func accommodationAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "accommodations",
		VerboseName:       "accommodation",
		VerboseNamePlural: "accommodations",
		Table:             "accommodations",
		ListDisplay: []Column{
			col("location", "Location", "location.name"),
			col("service_type", "Service", "accommodations.service_type"),
			col("price", "Price", "accommodations.price"),
		},
		ListFilter: []Filter{
			{Param: "service_type", Column: "accommodations.service_type", Kind: FilterExact},
			{Param: "location__region", Column: "location.region", Kind: FilterExact},
		},
		SearchFields: []string{"location.name"},
		Ordering:     []string{"location.name", "accommodations.service_type"},
		Joins:        []string{"LEFT JOIN locations AS location ON location.id = accommodations.location_id"},
		Preload:      []string{"Location"},
	}, func(a *models.Accommodation) Row {
		return Row{
			"id":           a.ID,
			"location":     LocationName(a.Location),
			"service_type": a.ServiceType,
			"price":        a.Price,
		}
	})
}

func participantCostAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "participant-costs",
		VerboseName:       "participant cost",
		VerboseNamePlural: "participant costs",
		Table:             "participant_costs",
		ListDisplay: []Column{
			col("cost_type", "Cost type", "participant_costs.cost_type"),
			col("price", "Price", "participant_costs.price"),
		},
		ListFilter: []Filter{{Param: "cost_type", Column: "participant_costs.cost_type", Kind: FilterExact}},
		Ordering:   []string{"participant_costs.cost_type"},
	}, func(c *models.ParticipantCost) Row {
		return Row{"id": c.ID, "cost_type": c.CostType, "price": c.Price}
	})
}

func sessionCostAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "session-costs",
		VerboseName:       "session cost",
		VerboseNamePlural: "session costs",
		Table:             "session_costs",
		ListDisplay: []Column{
			col("cost_type", "Cost type", "session_costs.cost_type"),
			col("price", "Price", "session_costs.price"),
		},
		ListFilter: []Filter{{Param: "cost_type", Column: "session_costs.cost_type", Kind: FilterExact}},
		Ordering:   []string{"session_costs.cost_type"},
	}, func(c *models.SessionCost) Row {
		return Row{"id": c.ID, "cost_type": c.CostType, "price": c.Price}
	})
}

func printingCostAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "printing-costs",
		VerboseName:       "printing cost",
		VerboseNamePlural: "printing costs",
		Table:             "printing_costs",
		ListDisplay: []Column{
			col("document_type", "Document type", "printing_costs.document_type"),
			col("price_per_page", "Price per page", "printing_costs.price_per_page"),
		},
		ListFilter: []Filter{{Param: "document_type", Column: "printing_costs.document_type", Kind: FilterExact}},
		Ordering:   []string{"printing_costs.document_type"},
	}, func(c *models.PrintingCost) Row {
		return Row{"id": c.ID, "document_type": c.DocumentType, "price_per_page": c.PricePerPage}
	})
}

func supervisorCostAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "supervisor-costs",
		VerboseName:       "supervisor cost",
		VerboseNamePlural: "supervisor costs",
		Table:             "supervisor_costs",
		ListDisplay: []Column{
			col("cost_type", "Cost type", "supervisor_costs.cost_type"),
			col("amount", "Amount", "supervisor_costs.amount"),
		},
		ListFilter: []Filter{{Param: "cost_type", Column: "supervisor_costs.cost_type", Kind: FilterExact}},
		Ordering:   []string{"supervisor_costs.cost_type"},
	}, func(c *models.SupervisorCost) Row {
		return Row{"id": c.ID, "cost_type": c.CostType, "amount": c.Amount}
	})
}

func procurementItemAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "procurement-items",
		VerboseName:       "procurement item",
		VerboseNamePlural: "procurement items",
		Table:             "procurement_items",
		ListDisplay: []Column{
			col("name", "Name", "procurement_items.name"),
			col("category", "Category", "procurement_items.category"),
			col("unit", "Unit", "procurement_items.unit"),
			col("unit_price", "Unit price", "procurement_items.unit_price"),
		},
		ListFilter: []Filter{
			{Param: "category", Column: "procurement_items.category", Kind: FilterExact},
			{Param: "unit", Column: "procurement_items.unit", Kind: FilterExact},
		},
		SearchFields: []string{"procurement_items.name"},
		Ordering:     []string{"procurement_items.category", "procurement_items.name"},
		Fieldsets: []Fieldset{
			{Fields: []string{"category", "name", "unit", "unit_price"}},
		},
	}, func(i *models.ProcurementItem) Row {
		return Row{
			"id":         i.ID,
			"name":       i.Name,
			"category":   i.Category,
			"unit":       i.Unit,
			"unit_price": i.UnitPrice,
		}
	})
}

func planAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "plans",
		VerboseName:       "plan",
		VerboseNamePlural: "plans",
		Table:             "plans",
		ListDisplay: []Column{
			col("organization", "Organization", "organization.name"),
			col("planner_name", "Planner", "plans.planner_name"),
			col("type", "Type", "plans.type"),
			col("fiscal_year", "Fiscal year", "plans.fiscal_year"),
			col("status", "Status", "plans.status"),
			col("submitted_at", "Submitted", "plans.submitted_at"),
			col("created_at", "Created", "plans.created_at"),
		},
		ListFilter: []Filter{
			{Param: "status", Column: "plans.status", Kind: FilterExact},
			{Param: "type", Column: "plans.type", Kind: FilterExact},
			{Param: "organization", Column: "plans.organization_id", Kind: FilterRelated},
		},
		SearchFields: []string{"organization.name", "plans.planner_name", "plans.executive_name"},
		Joins:        []string{"LEFT JOIN organizations AS organization ON organization.id = plans.organization_id"},
		Preload:      []string{"Organization", "SelectedObjectives"},
		Fieldsets: []Fieldset{
			{Fields: []string{"organization_id", "planner_name", "type", "executive_name", "strategic_objective_id"}},
			{Name: "Period", Fields: []string{"fiscal_year", "from_date", "to_date"}},
			{Name: "Objectives", Fields: []string{"selected_objectives", "selected_objectives_weights"}},
			{Name: "Workflow", Fields: []string{"status", "submitted_at"}, Collapsed: true},
		},
		FilterHorizontal: []ManyToMany{
			Selection[models.StrategicObjective]("selected_objectives", "SelectedObjectives", "strategic-objectives"),
		},
		RawIDFields:    []string{"organization_id"},
		ReadOnlyFields: []string{"selected_objectives_weights", "submitted_at"},
		BeforeSave:     retainSelectedWeights,
	}, func(p *models.Plan) Row {
		return Row{
			"id":           p.ID,
			"organization": OrganizationLabel(p.Organization),
			"planner_name": p.PlannerName,
			"type":         p.Type,
			"fiscal_year":  p.FiscalYear,
			"status":       p.Status,
			"submitted_at": timestamp(p.SubmittedAt),
			"created_at":   p.CreatedAt,
		}
	})
}

func teamDeskPlanAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "team-desk-plans",
		VerboseName:       "team/desk plan",
		VerboseNamePlural: "team/desk plans",
		Table:             "team_desk_plans",
		ListDisplay: []Column{
			col("team_desk", "Team/Desk", "team_desk.name"),
			col("organization", "Organization", "organization.name"),
			col("status", "Status", "team_desk_plans.status"),
			col("leo_eo_plan", "LEO/EO Plan", "leo_eo_plan_organization.name"),
			col("submitted_at", "Submitted", "team_desk_plans.submitted_at"),
			col("created_at", "Created", "team_desk_plans.created_at"),
		},
		ListFilter: []Filter{
			{Param: "status", Column: "team_desk_plans.status", Kind: FilterExact},
			{Param: "organization", Column: "team_desk_plans.organization_id", Kind: FilterRelated},
			{Param: "team_desk", Column: "team_desk_plans.team_desk_id", Kind: FilterRelated},
		},
		SearchFields: []string{"team_desk.name", "organization.name", "leo_eo_plan_organization.name"},
		Joins: []string{
			"LEFT JOIN organizations AS organization ON organization.id = team_desk_plans.organization_id",
			"LEFT JOIN organizations AS team_desk ON team_desk.id = team_desk_plans.team_desk_id",
			"LEFT JOIN plans AS leo_eo_plan ON leo_eo_plan.id = team_desk_plans.leo_eo_plan_id",
			"LEFT JOIN organizations AS leo_eo_plan_organization ON leo_eo_plan_organization.id = leo_eo_plan.organization_id",
		},
		Preload: []string{
			"Organization", "TeamDesk", "LeoEoPlan.Organization",
			"Objectives", "Initiatives", "PerformanceMeasures", "MainActivities", "DetailActivities",
		},
		Fieldsets: []Fieldset{
			{Fields: []string{"organization_id", "team_desk_id", "leo_eo_plan_id", "status"}},
			{Name: "Content", Fields: []string{"objectives", "initiatives", "performance_measures", "main_activities", "detail_activities"}},
			{Name: "Timestamps", Fields: []string{"submitted_at", "created_at", "updated_at"}, Collapsed: true},
		},
		FilterHorizontal: []ManyToMany{
			Selection[models.StrategicObjective]("objectives", "Objectives", "strategic-objectives"),
			Selection[models.StrategicInitiative]("initiatives", "Initiatives", "strategic-initiatives"),
			Selection[models.PerformanceMeasure]("performance_measures", "PerformanceMeasures", "performance-measures"),
			Selection[models.MainActivity]("main_activities", "MainActivities", "main-activities"),
			Selection[models.DetailActivity]("detail_activities", "DetailActivities", "detail-activities"),
		},
		RawIDFields:    []string{"organization_id", "team_desk_id", "leo_eo_plan_id"},
		ReadOnlyFields: []string{"created_at", "updated_at"},
		BeforeSave:     teamDeskOrganization,
		Choices: map[string][]string{"status": {
			string(models.TeamDeskPlanStatusDraft),
			string(models.TeamDeskPlanStatusSubmitted),
			string(models.TeamDeskPlanStatusReviewed),
		}},
	}, func(p *models.TeamDeskPlan) Row {
		return Row{
			"id":           p.ID,
			"team_desk":    TeamDeskName(p),
			"organization": OrganizationName(p),
			"status":       p.Status,
			"leo_eo_plan":  LeoEoPlanName(p),
			"submitted_at": timestamp(p.SubmittedAt),
			"created_at":   p.CreatedAt,
		}
	})
}

func teamDeskPlanReviewAdmin() *ModelAdmin {
	return Entity(ModelAdmin{
		Slug:              "team-desk-plan-reviews",
		VerboseName:       "team/desk plan review",
		VerboseNamePlural: "team/desk plan reviews",
		Table:             "team_desk_plan_reviews",
		ListDisplay: []Column{
			col("plan", "Plan", "plan_team_desk.name"),
			col("reviewer", "Reviewer", "reviewer_user.username"),
			col("status", "Status", "team_desk_plan_reviews.status"),
			col("reviewed_at", "Reviewed", "team_desk_plan_reviews.reviewed_at"),
		},
		ListFilter: []Filter{
			{Param: "status", Column: "team_desk_plan_reviews.status", Kind: FilterExact},
			{Param: "reviewed_at", Column: "team_desk_plan_reviews.reviewed_at", Kind: FilterDate},
			{Param: "plan__organization", Column: "plan.organization_id", Kind: FilterRelated},
		},
		SearchFields: []string{"plan_team_desk.name", "reviewer_user.username", "plan_organization.name"},
		Ordering:     []string{"-team_desk_plan_reviews.reviewed_at"},
		Joins: []string{
			"LEFT JOIN team_desk_plans AS plan ON plan.id = team_desk_plan_reviews.plan_id",
			"LEFT JOIN organizations AS plan_team_desk ON plan_team_desk.id = plan.team_desk_id",
			"LEFT JOIN organizations AS plan_organization ON plan_organization.id = plan.organization_id",
			"LEFT JOIN organization_users AS reviewer ON reviewer.id = team_desk_plan_reviews.reviewer_id",
			"LEFT JOIN users AS reviewer_user ON reviewer_user.id = reviewer.user_id",
		},
		Preload: []string{"Plan.Organization", "Plan.TeamDesk", "Reviewer.User"},
		Fieldsets: []Fieldset{
			{Fields: []string{"plan_id", "reviewer_id", "status"}},
			{Name: "Review Content", Fields: []string{"feedback"}},
			{Name: "Timestamps", Fields: []string{"reviewed_at"}, Collapsed: true},
		},
		RawIDFields:    []string{"plan_id", "reviewer_id"},
		ReadOnlyFields: []string{"reviewed_at"},
	}, func(r *models.TeamDeskPlanReview) Row {
		return Row{
			"id":          r.ID,
			"plan":        PlanInfo(r),
			"reviewer":    ReviewerName(r),
			"status":      r.Status,
			"reviewed_at": r.ReviewedAt,
		}
	})
}
