package service

import (
	"errors"
	"fmt"

	"strategic-planning-backend/internal/admin"
	"strategic-planning-backend/internal/database/models"
	apperrors "strategic-planning-backend/internal/errors"
	"strategic-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization.
// CoreValuesText, when present, takes precedence over CoreValues.
type CreateOrganizationRequest struct {
	Name           string                  `json:"name" validate:"required,min=1,max=255"`
	Type           models.OrganizationType `json:"type" validate:"required,oneof=MINISTER STATE_MINISTER_PROGRAM STATE_MINISTER_OPERATION CHIEF_EXECUTIVE LEAD_EXECUTIVE EXECUTIVE TEAM_LEAD DESK"`
	ParentID       *uuid.UUID              `json:"parent_id,omitempty"`
	Vision         string                  `json:"vision,omitempty"`
	Mission        string                  `json:"mission,omitempty"`
	CoreValues     []string                `json:"core_values,omitempty"`
	CoreValuesText *string                 `json:"core_values_text,omitempty"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name           string                  `json:"name" validate:"required,min=1,max=255"`
	Type           models.OrganizationType `json:"type" validate:"required,oneof=MINISTER STATE_MINISTER_PROGRAM STATE_MINISTER_OPERATION CHIEF_EXECUTIVE LEAD_EXECUTIVE EXECUTIVE TEAM_LEAD DESK"`
	ParentID       *uuid.UUID              `json:"parent_id,omitempty"`
	Vision         string                  `json:"vision,omitempty"`
	Mission        string                  `json:"mission,omitempty"`
	CoreValues     []string                `json:"core_values,omitempty"`
	CoreValuesText *string                 `json:"core_values_text,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID             uuid.UUID               `json:"id"`
	Name           string                  `json:"name"`
	Type           models.OrganizationType `json:"type"`
	ParentID       *uuid.UUID              `json:"parent_id,omitempty"`
	ParentName     string                  `json:"parent_name"`
	Vision         string                  `json:"vision"`
	Mission        string                  `json:"mission"`
	CoreValues     []string                `json:"core_values"`
	CoreValuesText string                  `json:"core_values_text"`
	CreatedAt      string                  `json:"created_at"`
	UpdatedAt      string                  `json:"updated_at"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

func coreValuesFrom(list []string, text *string) datatypes.JSONSlice[string] {
	if text != nil {
		return admin.TextToCoreValues(*text)
	}
	if list == nil {
		return datatypes.JSONSlice[string]{}
	}
	return list
}

// Create creates a new organization
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if organization with same name exists
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	var parent *models.Organization
	if req.ParentID != nil {
		if parent, err = s.getOrganization(*req.ParentID); err != nil {
			return nil, err
		}
	}

	org := &models.Organization{
		Name:       req.Name,
		Type:       req.Type,
		ParentID:   req.ParentID,
		Vision:     req.Vision,
		Mission:    req.Mission,
		CoreValues: coreValuesFrom(req.CoreValues, req.CoreValuesText),
	}

	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	org.Parent = parent

	return s.toResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.getOrganization(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(org), nil
}

// GetAll retrieves all organizations with pagination
func (s *OrganizationService) GetAll(page, pageSize int) (*OrganizationListResponse, error) {
	page, pageSize, offset := normalizePage(page, pageSize)

	orgs, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *s.toResponse(&orgs[i])
	}

	return &OrganizationListResponse{
		Organizations: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// GetChildren retrieves the direct children of an organization
func (s *OrganizationService) GetChildren(id uuid.UUID) ([]OrganizationResponse, error) {
	parent, err := s.getOrganization(id)
	if err != nil {
		return nil, err
	}

	children, err := s.repo.GetChildren(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get child organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(children))
	for i := range children {
		children[i].Parent = parent
		responses[i] = *s.toResponse(&children[i])
	}
	return responses, nil
}

// Update updates an organization
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.getOrganization(id)
	if err != nil {
		return nil, err
	}

	if req.Name != org.Name {
		existing, err := s.repo.GetByName(req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing organization by name: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrOrganizationExists
		}
	}

	var parent *models.Organization
	if req.ParentID != nil {
		if parent, err = s.checkParent(id, *req.ParentID); err != nil {
			return nil, err
		}
	}

	org.Name = req.Name
	org.Type = req.Type
	org.ParentID = req.ParentID
	org.Parent = nil
	org.Vision = req.Vision
	org.Mission = req.Mission
	if req.CoreValuesText != nil || req.CoreValues != nil {
		org.CoreValues = coreValuesFrom(req.CoreValues, req.CoreValuesText)
	}

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	org.Parent = parent

	return s.toResponse(org), nil
}

// checkParent loads the proposed parent and walks its ancestors; reaching id means
// the move would create a cycle
func (s *OrganizationService) checkParent(id, parentID uuid.UUID) (*models.Organization, error) {
	if parentID == id {
		return nil, apperrors.ErrOrganizationCycle
	}
	parent, err := s.getOrganization(parentID)
	if err != nil {
		return nil, err
	}

	visited := map[uuid.UUID]bool{parent.ID: true}
	current := parent
	for current.ParentID != nil {
		ancestorID := *current.ParentID
		if ancestorID == id {
			return nil, apperrors.ErrOrganizationCycle
		}
		if visited[ancestorID] {
			break
		}
		visited[ancestorID] = true
		if current, err = s.getOrganization(ancestorID); err != nil {
			return nil, err
		}
	}
	return parent, nil
}

// Delete deletes an organization
func (s *OrganizationService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}

func (s *OrganizationService) getOrganization(id uuid.UUID) (*models.Organization, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// toResponse converts an organization model to a response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	values := []string(org.CoreValues)
	if values == nil {
		values = []string{}
	}
	return &OrganizationResponse{
		ID:             org.ID,
		Name:           org.Name,
		Type:           org.Type,
		ParentID:       org.ParentID,
		ParentName:     admin.OrganizationLabel(org.Parent),
		Vision:         org.Vision,
		Mission:        org.Mission,
		CoreValues:     values,
		CoreValuesText: admin.CoreValuesToText(values),
		CreatedAt:      formatTime(org.CreatedAt),
		UpdatedAt:      formatTime(org.UpdatedAt),
	}
}
