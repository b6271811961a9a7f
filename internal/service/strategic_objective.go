package service

import (
	"errors"
	"fmt"

	"strategic-planning-backend/internal/database/models"
	apperrors "strategic-planning-backend/internal/errors"
	"strategic-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StrategicObjectiveService handles business logic for strategic objectives
type StrategicObjectiveService struct {
	repo      repository.StrategicObjectiveRepositoryInterface
	validator *validator.Validate
}

// NewStrategicObjectiveService creates a new strategic objective service
func NewStrategicObjectiveService(repo repository.StrategicObjectiveRepositoryInterface, validator *validator.Validate) *StrategicObjectiveService {
	return &StrategicObjectiveService{repo: repo, validator: validator}
}

// CreateStrategicObjectiveRequest represents the request to create a strategic objective
type CreateStrategicObjectiveRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description string  `json:"description,omitempty"`
	Weight      float64 `json:"weight" validate:"gte=0,lte=100"`
	IsDefault   bool    `json:"is_default"`
}

// UpdateStrategicObjectiveRequest represents the request to update a strategic objective
type UpdateStrategicObjectiveRequest = CreateStrategicObjectiveRequest

// StrategicObjectiveResponse represents the response for strategic objective operations
type StrategicObjectiveResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Weight      float64   `json:"weight"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// StrategicObjectiveListResponse represents a paginated list of strategic objectives
type StrategicObjectiveListResponse struct {
	Objectives []StrategicObjectiveResponse `json:"objectives"`
	Total      int64                        `json:"total"`
	Page       int                          `json:"page"`
	PageSize   int                          `json:"page_size"`
}

// Create creates a new strategic objective
func (s *StrategicObjectiveService) Create(req *CreateStrategicObjectiveRequest) (*StrategicObjectiveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	objective := &models.StrategicObjective{
		Title:       req.Title,
		Description: req.Description,
		Weight:      req.Weight,
		IsDefault:   req.IsDefault,
	}
	if err := s.repo.Create(objective); err != nil {
		return nil, fmt.Errorf("failed to create strategic objective: %w", err)
	}
	return toObjectiveResponse(objective), nil
}

// GetByID retrieves a strategic objective by ID
func (s *StrategicObjectiveService) GetByID(id uuid.UUID) (*StrategicObjectiveResponse, error) {
	objective, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStrategicObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to get strategic objective: %w", err)
	}
	return toObjectiveResponse(objective), nil
}

// GetAll retrieves strategic objectives with pagination
func (s *StrategicObjectiveService) GetAll(page, pageSize int) (*StrategicObjectiveListResponse, error) {
	page, pageSize, offset := normalizePage(page, pageSize)

	objectives, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get strategic objectives: %w", err)
	}

	responses := make([]StrategicObjectiveResponse, len(objectives))
	for i := range objectives {
		responses[i] = *toObjectiveResponse(&objectives[i])
	}
	return &StrategicObjectiveListResponse{
		Objectives: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Update updates a strategic objective
func (s *StrategicObjectiveService) Update(id uuid.UUID, req *UpdateStrategicObjectiveRequest) (*StrategicObjectiveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	objective, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStrategicObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to get strategic objective: %w", err)
	}

	objective.Title = req.Title
	objective.Description = req.Description
	objective.Weight = req.Weight
	objective.IsDefault = req.IsDefault

	if err := s.repo.Update(objective); err != nil {
		return nil, fmt.Errorf("failed to update strategic objective: %w", err)
	}
	return toObjectiveResponse(objective), nil
}

// Delete deletes a strategic objective
func (s *StrategicObjectiveService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStrategicObjectiveNotFound
		}
		return fmt.Errorf("failed to delete strategic objective: %w", err)
	}
	return nil
}

func toObjectiveResponse(objective *models.StrategicObjective) *StrategicObjectiveResponse {
	return &StrategicObjectiveResponse{
		ID:          objective.ID,
		Title:       objective.Title,
		Description: objective.Description,
		Weight:      objective.Weight,
		IsDefault:   objective.IsDefault,
		CreatedAt:   formatTime(objective.CreatedAt),
		UpdatedAt:   formatTime(objective.UpdatedAt),
	}
}
