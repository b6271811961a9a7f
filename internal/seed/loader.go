// Package seed loads reference data (organizations, users, strategic objectives, locations
// and unit costs) from YAML files. Loading is idempotent: records are matched on their
// natural key and only missing ones are created.
package seed

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"strategic-planning-backend/internal/database/models"
	apperrors "strategic-planning-backend/internal/errors"
	"strategic-planning-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Count is the outcome of loading one kind of record
type Count struct {
	Kind    string `json:"kind"`
	Created int    `json:"created"`
	Total   int    `json:"total"`
}

// Report lists the counts of every kind in load order
type Report struct {
	Counts []Count `json:"counts"`
}

// Created returns the number of records created across all kinds
func (r *Report) Created() int {
	created := 0
	for _, c := range r.Counts {
		created += c.Created
	}
	return created
}

// Loader writes seed data to the database
type Loader struct {
	db        *gorm.DB
	validator *validator.Validate
}

// NewLoader creates a new loader
func NewLoader(db *gorm.DB) *Loader {
	return &Loader{
		db:        db,
		validator: validator.New(),
	}
}

// Load reads every seed file under dir and applies it
func (l *Loader) Load(ctx context.Context, dir string) (*Report, error) {
	data, err := ReadDir(dir)
	if err != nil {
		return nil, err
	}
	return l.Apply(ctx, data)
}

// Apply writes data in one transaction; nothing is kept when any record fails
func (l *Loader) Apply(ctx context.Context, data *Data) (*Report, error) {
	report := &Report{}
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s := &session{
			tx:        tx,
			validator: l.validator,
			orgs:      make(map[string]*models.Organization),
			locations: make(map[string]*models.Location),
			report:    report,
		}
		steps := []func(*Data) error{
			s.loadOrganizations,
			s.loadUsers,
			s.loadObjectives,
			s.loadLocations,
			s.loadTransports,
			s.loadCosts,
		}
		for _, step := range steps {
			if err := step(data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx)
	for _, c := range report.Counts {
		log.WithFields(map[string]interface{}{
			"kind":    c.Kind,
			"created": c.Created,
			"total":   c.Total,
		}).Info("Reference data loaded")
	}
	return report, nil
}

type session struct {
	tx        *gorm.DB
	validator *validator.Validate
	orgs      map[string]*models.Organization
	locations map[string]*models.Location
	report    *Report
}

type tally struct {
	kind    string
	created int
	total   int
}

func (t *tally) add(created bool) {
	t.total++
	if created {
		t.created++
	}
}

func (s *session) done(t *tally) {
	if t.total == 0 {
		return
	}
	s.report.Counts = append(s.report.Counts, Count{Kind: t.kind, Created: t.created, Total: t.total})
}

// ensure loads the row matching query into record, or validates and creates record
func (s *session) ensure(record interface{}, query string, args ...interface{}) (bool, error) {
	err := s.tx.Where(query, args...).First(record).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := s.validator.Struct(record); err != nil {
		return false, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.tx.Create(record).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *session) organization(name string) (*models.Organization, error) {
	if org, ok := s.orgs[name]; ok {
		return org, nil
	}
	var org models.Organization
	if err := s.tx.Where("name = ?", name).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrOrganizationNotFound, name)
		}
		return nil, err
	}
	s.orgs[name] = &org
	return &org, nil
}

func (s *session) location(name string) (*models.Location, error) {
	if loc, ok := s.locations[name]; ok {
		return loc, nil
	}
	var loc models.Location
	if err := s.tx.Where("name = ?", name).First(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrLocationNotFound, name)
		}
		return nil, err
	}
	s.locations[name] = &loc
	return &loc, nil
}

func (s *session) loadOrganizations(data *Data) error {
	t := &tally{kind: "organizations"}
	for _, item := range data.Organizations.Organizations {
		org := &models.Organization{
			Name:       item.Name,
			Type:       models.OrganizationType(item.Type),
			Vision:     item.Vision,
			Mission:    item.Mission,
			CoreValues: item.CoreValues,
		}
		if item.Parent != "" {
			parent, err := s.organization(item.Parent)
			if err != nil {
				return fmt.Errorf("failed to resolve parent of organization %s: %w", item.Name, err)
			}
			org.ParentID = &parent.ID
		}
		created, err := s.ensure(org, "name = ?", item.Name)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", item.Name, err)
		}
		s.orgs[org.Name] = org
		t.add(created)
	}
	s.done(t)
	return nil
}

func (s *session) loadUsers(data *Data) error {
	users := &tally{kind: "users"}
	memberships := &tally{kind: "organization_users"}
	for _, item := range data.Users.Users {
		user := &models.User{
			Username:  item.Username,
			FirstName: item.FirstName,
			LastName:  item.LastName,
			Email:     item.Email,
		}
		created, err := s.ensure(user, "username = ?", item.Username)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", item.Username, err)
		}
		users.add(created)

		for _, m := range item.Memberships {
			org, err := s.organization(m.Organization)
			if err != nil {
				return fmt.Errorf("failed to resolve membership of user %s: %w", item.Username, err)
			}
			role := models.OrganizationRole(m.Role)
			if role == "" {
				role = models.OrganizationRolePlanner
			}
			membership := &models.OrganizationUser{
				UserID:         user.ID,
				OrganizationID: org.ID,
				Role:           role,
			}
			created, err := s.ensure(membership, "user_id = ? AND organization_id = ?", user.ID, org.ID)
			if err != nil {
				return fmt.Errorf("failed to add user %s to %s: %w", item.Username, m.Organization, err)
			}
			memberships.add(created)
		}
	}
	s.done(users)
	s.done(memberships)
	return nil
}

func (s *session) loadObjectives(data *Data) error {
	objectives := &tally{kind: "strategic_objectives"}
	programs := &tally{kind: "programs"}
	feeds := &tally{kind: "initiative_feeds"}
	for _, item := range data.Objectives.StrategicObjectives {
		objective := &models.StrategicObjective{
			Title:       item.Title,
			Description: item.Description,
			Weight:      item.Weight,
			IsDefault:   item.IsDefault,
		}
		created, err := s.ensure(objective, "title = ?", item.Title)
		if err != nil {
			return fmt.Errorf("failed to create strategic objective %s: %w", item.Title, err)
		}
		objectives.add(created)

		for _, p := range item.Programs {
			program := &models.Program{
				Name:                 p.Name,
				Description:          p.Description,
				StrategicObjectiveID: objective.ID,
				IsDefault:            p.IsDefault,
			}
			created, err := s.ensure(program, "name = ? AND strategic_objective_id = ?", p.Name, objective.ID)
			if err != nil {
				return fmt.Errorf("failed to create program %s: %w", p.Name, err)
			}
			programs.add(created)
		}

		for _, f := range item.InitiativeFeeds {
			feed := &models.InitiativeFeed{
				Name:                 f.Name,
				Description:          f.Description,
				StrategicObjectiveID: objective.ID,
				IsActive:             f.IsActive,
			}
			created, err := s.ensure(feed, "name = ? AND strategic_objective_id = ?", f.Name, objective.ID)
			if err != nil {
				return fmt.Errorf("failed to create initiative feed %s: %w", f.Name, err)
			}
			feeds.add(created)
		}
	}
	s.done(objectives)
	s.done(programs)
	s.done(feeds)
	return nil
}

func (s *session) loadLocations(data *Data) error {
	locations := &tally{kind: "locations"}
	perDiems := &tally{kind: "per_diems"}
	accommodations := &tally{kind: "accommodations"}
	for _, item := range data.Locations.Locations {
		if !slices.Contains(models.Regions, item.Region) {
			return fmt.Errorf("location %s: region %q: %w", item.Name, item.Region, apperrors.ErrInvalidChoice)
		}
		loc := &models.Location{
			Name:           item.Name,
			Region:         item.Region,
			IsHardshipArea: item.IsHardshipArea,
		}
		created, err := s.ensure(loc, "name = ?", item.Name)
		if err != nil {
			return fmt.Errorf("failed to create location %s: %w", item.Name, err)
		}
		s.locations[loc.Name] = loc
		locations.add(created)

		if item.PerDiem != nil {
			perDiem := &models.PerDiem{
				LocationID:              loc.ID,
				Amount:                  item.PerDiem.Amount,
				HardshipAllowanceAmount: item.PerDiem.HardshipAllowanceAmount,
			}
			created, err := s.ensure(perDiem, "location_id = ?", loc.ID)
			if err != nil {
				return fmt.Errorf("failed to create per diem for %s: %w", item.Name, err)
			}
			perDiems.add(created)
		}

		for _, a := range item.Accommodations {
			accommodation := &models.Accommodation{
				LocationID:  loc.ID,
				ServiceType: models.AccommodationServiceType(a.ServiceType),
				Price:       a.Price,
			}
			created, err := s.ensure(accommodation, "location_id = ? AND service_type = ?", loc.ID, a.ServiceType)
			if err != nil {
				return fmt.Errorf("failed to create %s accommodation for %s: %w", a.ServiceType, item.Name, err)
			}
			accommodations.add(created)
		}
	}
	s.done(locations)
	s.done(perDiems)
	s.done(accommodations)
	return nil
}

func (s *session) route(item TransportData) (uuid.UUID, uuid.UUID, error) {
	origin, err := s.location(item.Origin)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	destination, err := s.location(item.Destination)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return origin.ID, destination.ID, nil
}

func (s *session) loadTransports(data *Data) error {
	land := &tally{kind: "land_transports"}
	for _, item := range data.Locations.LandTransports {
		originID, destinationID, err := s.route(item)
		if err != nil {
			return fmt.Errorf("failed to resolve land transport %s-%s: %w", item.Origin, item.Destination, err)
		}
		tripType := models.TripType(item.TripType)
		if tripType == "" {
			tripType = models.TripTypeSingle
		}
		transport := &models.LandTransport{
			OriginID:      originID,
			DestinationID: destinationID,
			TripType:      tripType,
			Price:         item.Price,
		}
		created, err := s.ensure(transport, "origin_id = ? AND destination_id = ? AND trip_type = ?", originID, destinationID, tripType)
		if err != nil {
			return fmt.Errorf("failed to create land transport %s-%s: %w", item.Origin, item.Destination, err)
		}
		land.add(created)
	}
	s.done(land)

	air := &tally{kind: "air_transports"}
	for _, item := range data.Locations.AirTransports {
		originID, destinationID, err := s.route(item)
		if err != nil {
			return fmt.Errorf("failed to resolve air transport %s-%s: %w", item.Origin, item.Destination, err)
		}
		transport := &models.AirTransport{
			OriginID:      originID,
			DestinationID: destinationID,
			Price:         item.Price,
		}
		created, err := s.ensure(transport, "origin_id = ? AND destination_id = ?", originID, destinationID)
		if err != nil {
			return fmt.Errorf("failed to create air transport %s-%s: %w", item.Origin, item.Destination, err)
		}
		air.add(created)
	}
	s.done(air)
	return nil
}

func (s *session) loadCosts(data *Data) error {
	participant := &tally{kind: "participant_costs"}
	for _, item := range data.Costs.ParticipantCosts {
		created, err := s.ensure(&models.ParticipantCost{CostType: item.CostType, Price: item.Price}, "cost_type = ?", item.CostType)
		if err != nil {
			return fmt.Errorf("failed to create participant cost %s: %w", item.CostType, err)
		}
		participant.add(created)
	}
	s.done(participant)

	sessions := &tally{kind: "session_costs"}
	for _, item := range data.Costs.SessionCosts {
		created, err := s.ensure(&models.SessionCost{CostType: item.CostType, Price: item.Price}, "cost_type = ?", item.CostType)
		if err != nil {
			return fmt.Errorf("failed to create session cost %s: %w", item.CostType, err)
		}
		sessions.add(created)
	}
	s.done(sessions)

	printing := &tally{kind: "printing_costs"}
	for _, item := range data.Costs.PrintingCosts {
		cost := &models.PrintingCost{DocumentType: item.DocumentType, PricePerPage: item.PricePerPage}
		created, err := s.ensure(cost, "document_type = ?", item.DocumentType)
		if err != nil {
			return fmt.Errorf("failed to create printing cost %s: %w", item.DocumentType, err)
		}
		printing.add(created)
	}
	s.done(printing)

	supervisor := &tally{kind: "supervisor_costs"}
	for _, item := range data.Costs.SupervisorCosts {
		cost := &models.SupervisorCost{CostType: item.CostType, Amount: item.Amount}
		created, err := s.ensure(cost, "cost_type = ?", item.CostType)
		if err != nil {
			return fmt.Errorf("failed to create supervisor cost %s: %w", item.CostType, err)
		}
		supervisor.add(created)
	}
	s.done(supervisor)

	procurement := &tally{kind: "procurement_items"}
	for _, item := range data.Costs.ProcurementItems {
		record := &models.ProcurementItem{
			Category:  item.Category,
			Name:      item.Name,
			Unit:      item.Unit,
			UnitPrice: item.UnitPrice,
		}
		created, err := s.ensure(record, "category = ? AND name = ?", item.Category, item.Name)
		if err != nil {
			return fmt.Errorf("failed to create procurement item %s: %w", item.Name, err)
		}
		procurement.add(created)
	}
	s.done(procurement)

	assumptions := &tally{kind: "activity_costing_assumptions"}
	for _, item := range data.Costs.ActivityCostingAssumptions {
		record := &models.ActivityCostingAssumption{
			ActivityType: models.ActivityType(item.ActivityType),
			Location:     item.Location,
			CostType:     item.CostType,
			Amount:       item.Amount,
			Description:  item.Description,
		}
		created, err := s.ensure(record, "activity_type = ? AND location = ? AND cost_type = ?", item.ActivityType, item.Location, item.CostType)
		if err != nil {
			return fmt.Errorf("failed to create %s costing assumption %s: %w", item.ActivityType, item.CostType, err)
		}
		assumptions.add(created)
	}
	s.done(assumptions)
	return nil
}
