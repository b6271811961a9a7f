package service

import (
	"context"
	"errors"
	"fmt"
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

// TeamDeskPlanService handles team/desk plans: drafting, content selection, submission and review
type TeamDeskPlanService struct {
	repo          repository.TeamDeskPlanRepositoryInterface
	reviewRepo    repository.TeamDeskPlanReviewRepositoryInterface
	orgRepo       repository.OrganizationRepositoryInterface
	planRepo      repository.PlanRepositoryInterface
	memberRepo    repository.OrganizationUserRepositoryInterface
	objectiveRepo repository.StrategicObjectiveRepositoryInterface
	catalog       repository.StrategyCatalogRepositoryInterface
	validator     *validator.Validate
}

// TeamDeskPlanRepositories groups the repositories the team/desk plan service reads from
type TeamDeskPlanRepositories struct {
	Plans      repository.TeamDeskPlanRepositoryInterface
	Reviews    repository.TeamDeskPlanReviewRepositoryInterface
	Orgs       repository.OrganizationRepositoryInterface
	LeoEoPlans repository.PlanRepositoryInterface
	Members    repository.OrganizationUserRepositoryInterface
	Objectives repository.StrategicObjectiveRepositoryInterface
	Catalog    repository.StrategyCatalogRepositoryInterface
}

// NewTeamDeskPlanService creates a new team/desk plan service
func NewTeamDeskPlanService(repos TeamDeskPlanRepositories, validator *validator.Validate) *TeamDeskPlanService {
	return &TeamDeskPlanService{
		repo:          repos.Plans,
		reviewRepo:    repos.Reviews,
		orgRepo:       repos.Orgs,
		planRepo:      repos.LeoEoPlans,
		memberRepo:    repos.Members,
		objectiveRepo: repos.Objectives,
		catalog:       repos.Catalog,
		validator:     validator,
	}
}

// CreateTeamDeskPlanRequest represents the request to create a team/desk plan
type CreateTeamDeskPlanRequest struct {
	OrganizationID uuid.UUID  `json:"organization_id" validate:"required"`
	TeamDeskID     *uuid.UUID `json:"team_desk_id,omitempty"`
	LeoEoPlanID    *uuid.UUID `json:"leo_eo_plan_id,omitempty"`
}

// ListTeamDeskPlansRequest holds the list filters; zero values match everything
type ListTeamDeskPlansRequest struct {
	OrganizationID *uuid.UUID
	TeamDeskID     *uuid.UUID
	Status         models.TeamDeskPlanStatus
	Page           int
	PageSize       int
}

// UpdateTeamDeskPlanContentRequest replaces every selection set of a plan
type UpdateTeamDeskPlanContentRequest struct {
	ObjectiveIDs          []uuid.UUID `json:"objective_ids"`
	InitiativeIDs         []uuid.UUID `json:"initiative_ids"`
	PerformanceMeasureIDs []uuid.UUID `json:"performance_measure_ids"`
	MainActivityIDs       []uuid.UUID `json:"main_activity_ids"`
	DetailActivityIDs     []uuid.UUID `json:"detail_activity_ids"`
}

// AddReviewRequest represents one reviewer's verdict
type AddReviewRequest struct {
	ReviewerID *uuid.UUID          `json:"reviewer_id,omitempty"`
	Status     models.ReviewStatus `json:"status" validate:"required,oneof=approved rejected revision_requested"`
	Feedback   string              `json:"feedback,omitempty"`
}

// ContentItem is one selected strategy item
type ContentItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TeamDeskPlanContent lists the strategy items a plan selects
type TeamDeskPlanContent struct {
	Objectives          []ContentItem `json:"objectives"`
	Initiatives         []ContentItem `json:"initiatives"`
	PerformanceMeasures []ContentItem `json:"performance_measures"`
	MainActivities      []ContentItem `json:"main_activities"`
	DetailActivities    []ContentItem `json:"detail_activities"`
}

// TeamDeskPlanResponse represents the response for team/desk plan operations.
// Name fields are "N/A" when the relation is absent.
type TeamDeskPlanResponse struct {
	ID               uuid.UUID                 `json:"id"`
	OrganizationID   uuid.UUID                 `json:"organization_id"`
	OrganizationName string                    `json:"organization_name"`
	TeamDeskID       *uuid.UUID                `json:"team_desk_id,omitempty"`
	TeamDeskName     string                    `json:"team_desk_name"`
	LeoEoPlanID      *uuid.UUID                `json:"leo_eo_plan_id,omitempty"`
	LeoEoPlanName    string                    `json:"leo_eo_plan_name"`
	Status           models.TeamDeskPlanStatus `json:"status"`
	SubmittedAt      *string                   `json:"submitted_at,omitempty"`
	Content          *TeamDeskPlanContent      `json:"content,omitempty"`
	ReviewCount      int                       `json:"review_count"`
	CreatedAt        string                    `json:"created_at"`
	UpdatedAt        string                    `json:"updated_at"`
}

// TeamDeskPlanListResponse represents a paginated list of team/desk plans
type TeamDeskPlanListResponse struct {
	Plans    []TeamDeskPlanResponse `json:"plans"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// ReviewResponse represents one review of a team/desk plan
type ReviewResponse struct {
	ID           uuid.UUID           `json:"id"`
	PlanID       uuid.UUID           `json:"plan_id"`
	PlanInfo     string              `json:"plan_info"`
	ReviewerID   *uuid.UUID          `json:"reviewer_id,omitempty"`
	ReviewerName string              `json:"reviewer_name"`
	Status       models.ReviewStatus `json:"status"`
	Feedback     string              `json:"feedback"`
	ReviewedAt   string              `json:"reviewed_at"`
}

// Create creates a draft team/desk plan
func (s *TeamDeskPlanService) Create(ctx context.Context, req *CreateTeamDeskPlanRequest) (*TeamDeskPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.getOrganization(req.OrganizationID)
	if err != nil {
		return nil, err
	}

	plan := &models.TeamDeskPlan{
		OrganizationID: req.OrganizationID,
		TeamDeskID:     req.TeamDeskID,
		LeoEoPlanID:    req.LeoEoPlanID,
		Status:         models.TeamDeskPlanStatusDraft,
		Organization:   org,
	}

	if req.TeamDeskID != nil {
		teamDesk, err := s.getOrganization(*req.TeamDeskID)
		if err != nil {
			return nil, err
		}
		if !teamDesk.Type.IsTeamDesk() {
			return nil, apperrors.ErrInvalidTeamDesk
		}
		plan.TeamDesk = teamDesk
	}

	if req.LeoEoPlanID != nil {
		leoEoPlan, err := s.planRepo.GetByID(*req.LeoEoPlanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPlanNotFound
			}
			return nil, fmt.Errorf("failed to get LEO/EO plan: %w", err)
		}
		plan.LeoEoPlan = leoEoPlan
	}

	if err := s.repo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create team/desk plan: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_desk_plan_id": plan.ID,
		"team_desk":         admin.TeamDeskName(plan),
	}).Info("team/desk plan created")

	return toTeamDeskPlanResponse(plan, true), nil
}

// GetByID retrieves a team/desk plan with its content
func (s *TeamDeskPlanService) GetByID(id uuid.UUID) (*TeamDeskPlanResponse, error) {
	plan, err := s.getPlan(id)
	if err != nil {
		return nil, err
	}
	return toTeamDeskPlanResponse(plan, true), nil
}

// List retrieves team/desk plans matching the request filters
func (s *TeamDeskPlanService) List(req *ListTeamDeskPlansRequest) (*TeamDeskPlanListResponse, error) {
	if req.Status != "" && !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidStatus, req.Status)
	}
	page, pageSize, offset := normalizePage(req.Page, req.PageSize)

	filter := repository.TeamDeskPlanFilter{
		OrganizationID: req.OrganizationID,
		TeamDeskID:     req.TeamDeskID,
		Status:         req.Status,
	}
	plans, total, err := s.repo.GetAll(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get team/desk plans: %w", err)
	}

	responses := make([]TeamDeskPlanResponse, len(plans))
	for i := range plans {
		responses[i] = *toTeamDeskPlanResponse(&plans[i], false)
	}
	return &TeamDeskPlanListResponse{Plans: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateContent replaces the plan's objectives, initiatives, measures and activities.
// Every id must exist.
func (s *TeamDeskPlanService) UpdateContent(ctx context.Context, id uuid.UUID, req *UpdateTeamDeskPlanContentRequest) (*TeamDeskPlanResponse, error) {
	plan, err := s.getPlan(id)
	if err != nil {
		return nil, err
	}

	var content repository.TeamDeskPlanContent
	if content.Objectives, err = loadAll(req.ObjectiveIDs, s.objectiveRepo.GetByIDs, apperrors.ErrStrategicObjectiveNotFound); err != nil {
		return nil, err
	}
	if content.Initiatives, err = loadAll(req.InitiativeIDs, s.catalog.GetInitiativesByIDs, apperrors.ErrStrategicInitiativeNotFound); err != nil {
		return nil, err
	}
	if content.PerformanceMeasures, err = loadAll(req.PerformanceMeasureIDs, s.catalog.GetPerformanceMeasuresByIDs, apperrors.ErrPerformanceMeasureNotFound); err != nil {
		return nil, err
	}
	if content.MainActivities, err = loadAll(req.MainActivityIDs, s.catalog.GetMainActivitiesByIDs, apperrors.ErrMainActivityNotFound); err != nil {
		return nil, err
	}
	if content.DetailActivities, err = loadAll(req.DetailActivityIDs, s.catalog.GetDetailActivitiesByIDs, apperrors.ErrDetailActivityNotFound); err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceContent(plan, content); err != nil {
		return nil, fmt.Errorf("failed to update team/desk plan content: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_desk_plan_id": plan.ID,
		"objectives":        len(content.Objectives),
		"initiatives":       len(content.Initiatives),
		"main_activities":   len(content.MainActivities),
	}).Info("team/desk plan content updated")

	return toTeamDeskPlanResponse(plan, true), nil
}

// loadAll fetches rows by id and fails with notFound when any id is unknown
func loadAll[T any](ids []uuid.UUID, fetch func([]uuid.UUID) ([]T, error), notFound error) ([]T, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []T{}, nil
	}
	items, err := fetch(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan content: %w", err)
	}
	if len(items) != len(ids) {
		return nil, notFound
	}
	return items, nil
}

// Submit moves a draft plan to submitted and stamps submitted_at
func (s *TeamDeskPlanService) Submit(ctx context.Context, id uuid.UUID) (*TeamDeskPlanResponse, error) {
	plan, err := s.getPlan(id)
	if err != nil {
		return nil, err
	}
	if plan.Status != models.TeamDeskPlanStatusDraft {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidStatusTransition, plan.Status, models.TeamDeskPlanStatusSubmitted)
	}

	now := time.Now()
	plan.Status = models.TeamDeskPlanStatusSubmitted
	plan.SubmittedAt = &now
	if err := s.repo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to submit team/desk plan: %w", err)
	}

	logger.WithContext(ctx).WithField("team_desk_plan_id", plan.ID).Info("team/desk plan submitted")
	return toTeamDeskPlanResponse(plan, true), nil
}

// AddReview appends a review and marks the plan reviewed. Draft plans cannot be reviewed;
// further reviews of an already reviewed plan are appended as new rows.
func (s *TeamDeskPlanService) AddReview(ctx context.Context, id uuid.UUID, req *AddReviewRequest) (*ReviewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	plan, err := s.getPlan(id)
	if err != nil {
		return nil, err
	}
	if plan.Status == models.TeamDeskPlanStatusDraft {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidStatusTransition, plan.Status, models.TeamDeskPlanStatusReviewed)
	}

	review := &models.TeamDeskPlanReview{
		PlanID:     plan.ID,
		ReviewerID: req.ReviewerID,
		Status:     req.Status,
		Feedback:   req.Feedback,
		ReviewedAt: time.Now(),
	}
	if req.ReviewerID != nil {
		reviewer, err := s.memberRepo.GetByID(*req.ReviewerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrReviewerNotFound
			}
			return nil, fmt.Errorf("failed to get reviewer: %w", err)
		}
		review.Reviewer = reviewer
	}

	plan.Status = models.TeamDeskPlanStatusReviewed
	if err := s.repo.AddReview(plan, review); err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}
	review.Plan = plan

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_desk_plan_id": plan.ID,
		"review_id":         review.ID,
		"verdict":           review.Status,
		"reviewer":          admin.ReviewerName(review),
	}).Info("team/desk plan reviewed")

	return toReviewResponse(review), nil
}

// ListReviews returns the plan's reviews, most recent first; a plan without reviews yields an empty list
func (s *TeamDeskPlanService) ListReviews(id uuid.UUID) ([]ReviewResponse, error) {
	plan, err := s.getPlan(id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.GetByPlanID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	responses := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		reviews[i].Plan = plan
		responses[i] = *toReviewResponse(&reviews[i])
	}
	return responses, nil
}

func (s *TeamDeskPlanService) getOrganization(id uuid.UUID) (*models.Organization, error) {
	org, err := s.orgRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

func (s *TeamDeskPlanService) getPlan(id uuid.UUID) (*models.TeamDeskPlan, error) {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamDeskPlanNotFound
		}
		return nil, fmt.Errorf("failed to get team/desk plan: %w", err)
	}
	return plan, nil
}

func toTeamDeskPlanResponse(plan *models.TeamDeskPlan, withContent bool) *TeamDeskPlanResponse {
	response := &TeamDeskPlanResponse{
		ID:               plan.ID,
		OrganizationID:   plan.OrganizationID,
		OrganizationName: admin.OrganizationName(plan),
		TeamDeskID:       plan.TeamDeskID,
		TeamDeskName:     admin.TeamDeskName(plan),
		LeoEoPlanID:      plan.LeoEoPlanID,
		LeoEoPlanName:    admin.LeoEoPlanName(plan),
		Status:           plan.Status,
		SubmittedAt:      formatOptionalTime(plan.SubmittedAt),
		ReviewCount:      len(plan.Reviews),
		CreatedAt:        formatTime(plan.CreatedAt),
		UpdatedAt:        formatTime(plan.UpdatedAt),
	}
	if withContent {
		content := &TeamDeskPlanContent{
			Objectives:          make([]ContentItem, 0, len(plan.Objectives)),
			Initiatives:         make([]ContentItem, 0, len(plan.Initiatives)),
			PerformanceMeasures: make([]ContentItem, 0, len(plan.PerformanceMeasures)),
			MainActivities:      make([]ContentItem, 0, len(plan.MainActivities)),
			DetailActivities:    make([]ContentItem, 0, len(plan.DetailActivities)),
		}
		for _, o := range plan.Objectives {
			content.Objectives = append(content.Objectives, ContentItem{ID: o.ID, Name: o.Title})
		}
		for _, i := range plan.Initiatives {
			content.Initiatives = append(content.Initiatives, ContentItem{ID: i.ID, Name: i.Name})
		}
		for _, m := range plan.PerformanceMeasures {
			content.PerformanceMeasures = append(content.PerformanceMeasures, ContentItem{ID: m.ID, Name: m.Name})
		}
		for _, a := range plan.MainActivities {
			content.MainActivities = append(content.MainActivities, ContentItem{ID: a.ID, Name: a.Name})
		}
		for _, d := range plan.DetailActivities {
			content.DetailActivities = append(content.DetailActivities, ContentItem{ID: d.ID, Name: d.Name})
		}
		response.Content = content
	}
	return response
}

func toReviewResponse(review *models.TeamDeskPlanReview) *ReviewResponse {
	return &ReviewResponse{
		ID:           review.ID,
		PlanID:       review.PlanID,
		PlanInfo:     admin.PlanInfo(review),
		ReviewerID:   review.ReviewerID,
		ReviewerName: admin.ReviewerName(review),
		Status:       review.Status,
		Feedback:     review.Feedback,
		ReviewedAt:   formatTime(review.ReviewedAt),
	}
}
