package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"strategic-planning-backend/internal/admin"
	"strategic-planning-backend/internal/database/models"
	apperrors "strategic-planning-backend/internal/errors"
	"strategic-planning-backend/internal/logger"
	"strategic-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// PlanService handles LEO/EO plans, their selected objectives and weight overrides
type PlanService struct {
	repo          repository.PlanRepositoryInterface
	orgRepo       repository.OrganizationRepositoryInterface
	objectiveRepo repository.StrategicObjectiveRepositoryInterface
	validator     *validator.Validate
}

// NewPlanService creates a new plan service
func NewPlanService(
	repo repository.PlanRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	objectiveRepo repository.StrategicObjectiveRepositoryInterface,
	validator *validator.Validate,
) *PlanService {
	return &PlanService{
		repo:          repo,
		orgRepo:       orgRepo,
		objectiveRepo: objectiveRepo,
		validator:     validator,
	}
}

// CreatePlanRequest represents the request to create a plan
type CreatePlanRequest struct {
	OrganizationID       uuid.UUID       `json:"organization_id" validate:"required"`
	PlannerName          string          `json:"planner_name" validate:"required,max=255"`
	Type                 models.PlanType `json:"type,omitempty" validate:"omitempty,oneof=LEO/EO DESK/TEAM"`
	ExecutiveName        string          `json:"executive_name,omitempty" validate:"max=255"`
	StrategicObjectiveID *uuid.UUID      `json:"strategic_objective_id,omitempty"`
	FiscalYear           string          `json:"fiscal_year" validate:"required,max=10"`
	FromDate             time.Time       `json:"from_date" validate:"required"`
	ToDate               time.Time       `json:"to_date" validate:"required"`
	SelectedObjectiveIDs []uuid.UUID     `json:"selected_objective_ids,omitempty"`
}

// SelectObjectivesRequest replaces a plan's selected objectives
type SelectObjectivesRequest struct {
	ObjectiveIDs []uuid.UUID `json:"objective_ids"`
}

// SetObjectiveWeightsRequest replaces a plan's weight overrides, keyed by objective id
type SetObjectiveWeightsRequest struct {
	Weights map[string]float64 `json:"weights"`
}

// ObjectiveSummary is a selected objective as shown on a plan
type ObjectiveSummary struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Weight float64   `json:"weight"`
}

// PlanResponse represents the response for plan operations
type PlanResponse struct {
	ID                        uuid.UUID          `json:"id"`
	OrganizationID            uuid.UUID          `json:"organization_id"`
	OrganizationName          string             `json:"organization_name"`
	PlannerName               string             `json:"planner_name"`
	Type                      models.PlanType    `json:"type"`
	ExecutiveName             string             `json:"executive_name"`
	StrategicObjectiveID      *uuid.UUID         `json:"strategic_objective_id,omitempty"`
	FiscalYear                string             `json:"fiscal_year"`
	FromDate                  string             `json:"from_date"`
	ToDate                    string             `json:"to_date"`
	Status                    models.PlanStatus  `json:"status"`
	SubmittedAt               *string            `json:"submitted_at,omitempty"`
	SelectedObjectives        []ObjectiveSummary `json:"selected_objectives"`
	SelectedObjectivesWeights map[string]float64 `json:"selected_objectives_weights"`
	CreatedAt                 string             `json:"created_at"`
	UpdatedAt                 string             `json:"updated_at"`
}

// PlanListResponse represents a paginated list of plans
type PlanListResponse struct {
	Plans    []PlanResponse `json:"plans"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ObjectiveWeight is the weight breakdown of one selected objective
type ObjectiveWeight struct {
	ObjectiveID     uuid.UUID `json:"objective_id"`
	Title           string    `json:"title"`
	DefaultWeight   float64   `json:"default_weight"`
	OverrideWeight  *float64  `json:"override_weight,omitempty"`
	EffectiveWeight float64   `json:"effective_weight"`
}

// ObjectiveWeightsResponse lists the effective weights of a plan's selected objectives.
// EffectiveTotal is informational; totals are not required to reach 100.
type ObjectiveWeightsResponse struct {
	PlanID         uuid.UUID         `json:"plan_id"`
	Objectives     []ObjectiveWeight `json:"objectives"`
	EffectiveTotal float64           `json:"effective_total"`
}

// Create creates a draft plan, optionally with an initial objective selection
func (s *PlanService) Create(ctx context.Context, req *CreatePlanRequest) (*PlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.ToDate.Before(req.FromDate) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	org, err := s.orgRepo.GetByID(req.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if req.StrategicObjectiveID != nil {
		if _, err := s.objectiveRepo.GetByID(*req.StrategicObjectiveID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrStrategicObjectiveNotFound
			}
			return nil, fmt.Errorf("failed to get strategic objective: %w", err)
		}
	}

	objectives, err := s.loadObjectives(req.SelectedObjectiveIDs)
	if err != nil {
		return nil, err
	}

	planType := req.Type
	if planType == "" {
		planType = models.PlanTypeLeoEo
	}
	plan := &models.Plan{
		OrganizationID:       req.OrganizationID,
		PlannerName:          req.PlannerName,
		Type:                 planType,
		ExecutiveName:        req.ExecutiveName,
		StrategicObjectiveID: req.StrategicObjectiveID,
		FiscalYear:           req.FiscalYear,
		FromDate:             req.FromDate,
		ToDate:               req.ToDate,
		Status:               models.PlanStatusDraft,
	}

	if err := s.repo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	if len(objectives) > 0 {
		if err := s.repo.ReplaceSelectedObjectives(plan, objectives); err != nil {
			return nil, fmt.Errorf("failed to select objectives: %w", err)
		}
	}
	plan.Organization = org

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"plan_id":         plan.ID,
		"organization_id": plan.OrganizationID,
		"objectives":      len(objectives),
	}).Info("plan created")

	return toPlanResponse(plan), nil
}

// GetByID retrieves a plan by ID
func (s *PlanService) GetByID(id uuid.UUID) (*PlanResponse, error) {
	plan, err := s.getPlan(id)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// GetByOrganization retrieves the plans of an organization with pagination
func (s *PlanService) GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*PlanListResponse, error) {
	page, pageSize, offset := normalizePage(page, pageSize)

	plans, total, err := s.repo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get plans: %w", err)
	}

	responses := make([]PlanResponse, len(plans))
	for i := range plans {
		responses[i] = *toPlanResponse(&plans[i])
	}
	return &PlanListResponse{Plans: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// SelectObjectives replaces the plan's selected objectives. Weight overrides of
// objectives that are no longer selected are dropped.
func (s *PlanService) SelectObjectives(ctx context.Context, id uuid.UUID, req *SelectObjectivesRequest) (*PlanResponse, error) {
	plan, err := s.getPlan(id)
	if err != nil {
		return nil, err
	}

	objectives, err := s.loadObjectives(req.ObjectiveIDs)
	if err != nil {
		return nil, err
	}

	plan.RetainObjectiveWeights(objectives)

	if err := s.repo.ReplaceSelectedObjectives(plan, objectives); err != nil {
		return nil, fmt.Errorf("failed to select objectives: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"plan_id":    plan.ID,
		"objectives": len(objectives),
	}).Info("plan objectives selected")

	return toPlanResponse(plan), nil
}

// SetObjectiveWeights replaces the plan's weight overrides. Every key must be a
// selected objective and every weight must be zero or greater.
func (s *PlanService) SetObjectiveWeights(ctx context.Context, id uuid.UUID, req *SetObjectiveWeightsRequest) (*ObjectiveWeightsResponse, error) {
	plan, err := s.getPlan(id)
	if err != nil {
		return nil, err
	}

	selected := make(map[uuid.UUID]bool, len(plan.SelectedObjectives))
	for _, objective := range plan.SelectedObjectives {
		selected[objective.ID] = true
	}

	weights := models.ObjectiveWeights{}
	for key, weight := range req.Weights {
		objectiveID, err := uuid.Parse(key)
		if err != nil {
			return nil, apperrors.NewValidationError("weights", fmt.Sprintf("invalid objective id %q", key))
		}
		if !selected[objectiveID] {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrObjectiveNotSelected, objectiveID)
		}
		if weight < 0 {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidWeight, objectiveID)
		}
		weights[objectiveID.String()] = weight
	}
	plan.SetObjectiveWeights(weights)

	if err := s.repo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to update objective weights: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"plan_id":   plan.ID,
		"overrides": len(weights),
	}).Info("plan objective weights updated")

	return toWeightsResponse(plan), nil
}

// GetObjectiveWeights returns the default, override and effective weight of every selected objective
func (s *PlanService) GetObjectiveWeights(id uuid.UUID) (*ObjectiveWeightsResponse, error) {
	plan, err := s.getPlan(id)
	if err != nil {
		return nil, err
	}
	return toWeightsResponse(plan), nil
}

// Submit moves a draft or rejected plan to SUBMITTED
func (s *PlanService) Submit(ctx context.Context, id uuid.UUID) (*PlanResponse, error) {
	plan, err := s.getPlan(id)
	if err != nil {
		return nil, err
	}
	if plan.Status != models.PlanStatusDraft && plan.Status != models.PlanStatusRejected {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidStatusTransition, plan.Status, models.PlanStatusSubmitted)
	}

	now := time.Now()
	plan.Status = models.PlanStatusSubmitted
	plan.SubmittedAt = &now
	if err := s.repo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to submit plan: %w", err)
	}

	logger.WithContext(ctx).WithField("plan_id", plan.ID).Info("plan submitted")
	return toPlanResponse(plan), nil
}

// loadObjectives fetches the objectives with the given ids; any unknown id is an error
func (s *PlanService) loadObjectives(ids []uuid.UUID) ([]models.StrategicObjective, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []models.StrategicObjective{}, nil
	}
	objectives, err := s.objectiveRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get strategic objectives: %w", err)
	}
	if len(objectives) != len(ids) {
		return nil, apperrors.ErrStrategicObjectiveNotFound
	}
	return objectives, nil
}

func (s *PlanService) getPlan(id uuid.UUID) (*models.Plan, error) {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return plan, nil
}

func toPlanResponse(plan *models.Plan) *PlanResponse {
	objectives := make([]ObjectiveSummary, len(plan.SelectedObjectives))
	for i, objective := range plan.SelectedObjectives {
		objectives[i] = ObjectiveSummary{ID: objective.ID, Title: objective.Title, Weight: objective.Weight}
	}
	return &PlanResponse{
		ID:                        plan.ID,
		OrganizationID:            plan.OrganizationID,
		OrganizationName:          admin.OrganizationLabel(plan.Organization),
		PlannerName:               plan.PlannerName,
		Type:                      plan.Type,
		ExecutiveName:             plan.ExecutiveName,
		StrategicObjectiveID:      plan.StrategicObjectiveID,
		FiscalYear:                plan.FiscalYear,
		FromDate:                  plan.FromDate.Format(dateLayout),
		ToDate:                    plan.ToDate.Format(dateLayout),
		Status:                    plan.Status,
		SubmittedAt:               formatOptionalTime(plan.SubmittedAt),
		SelectedObjectives:        objectives,
		SelectedObjectivesWeights: plan.ObjectiveWeights(),
		CreatedAt:                 formatTime(plan.CreatedAt),
		UpdatedAt:                 formatTime(plan.UpdatedAt),
	}
}

func toWeightsResponse(plan *models.Plan) *ObjectiveWeightsResponse {
	overrides := plan.ObjectiveWeights()
	response := &ObjectiveWeightsResponse{PlanID: plan.ID, Objectives: []ObjectiveWeight{}}
	for _, objective := range plan.SelectedObjectives {
		entry := ObjectiveWeight{
			ObjectiveID:     objective.ID,
			Title:           objective.Title,
			DefaultWeight:   objective.Weight,
			EffectiveWeight: objective.Weight,
		}
		if override, ok := overrides[objective.ID.String()]; ok {
			value := override
			entry.OverrideWeight = &value
			entry.EffectiveWeight = override
		}
		response.EffectiveTotal += entry.EffectiveWeight
		response.Objectives = append(response.Objectives, entry)
	}
	sort.SliceStable(response.Objectives, func(i, j int) bool {
		return response.Objectives[i].Title < response.Objectives[j].Title
	})
	return response
}
