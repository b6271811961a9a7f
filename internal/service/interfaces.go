package service

import (
	"context"

	"strategic-planning-backend/internal/admin"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
	GetChildren(id uuid.UUID) ([]OrganizationResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
}

// StrategicObjectiveServiceInterface defines the interface for strategic objective service
type StrategicObjectiveServiceInterface interface {
	Create(req *CreateStrategicObjectiveRequest) (*StrategicObjectiveResponse, error)
	GetByID(id uuid.UUID) (*StrategicObjectiveResponse, error)
	GetAll(page, pageSize int) (*StrategicObjectiveListResponse, error)
	Update(id uuid.UUID, req *UpdateStrategicObjectiveRequest) (*StrategicObjectiveResponse, error)
	Delete(id uuid.UUID) error
}

// PlanServiceInterface defines the interface for LEO/EO plan service
type PlanServiceInterface interface {
	Create(ctx context.Context, req *CreatePlanRequest) (*PlanResponse, error)
	GetByID(id uuid.UUID) (*PlanResponse, error)
	GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*PlanListResponse, error)
	SelectObjectives(ctx context.Context, id uuid.UUID, req *SelectObjectivesRequest) (*PlanResponse, error)
	SetObjectiveWeights(ctx context.Context, id uuid.UUID, req *SetObjectiveWeightsRequest) (*ObjectiveWeightsResponse, error)
	GetObjectiveWeights(id uuid.UUID) (*ObjectiveWeightsResponse, error)
	Submit(ctx context.Context, id uuid.UUID) (*PlanResponse, error)
}

// TeamDeskPlanServiceInterface defines the interface for team/desk plan service
type TeamDeskPlanServiceInterface interface {
	Create(ctx context.Context, req *CreateTeamDeskPlanRequest) (*TeamDeskPlanResponse, error)
	GetByID(id uuid.UUID) (*TeamDeskPlanResponse, error)
	List(req *ListTeamDeskPlansRequest) (*TeamDeskPlanListResponse, error)
	UpdateContent(ctx context.Context, id uuid.UUID, req *UpdateTeamDeskPlanContentRequest) (*TeamDeskPlanResponse, error)
	Submit(ctx context.Context, id uuid.UUID) (*TeamDeskPlanResponse, error)
	AddReview(ctx context.Context, id uuid.UUID, req *AddReviewRequest) (*ReviewResponse, error)
	ListReviews(id uuid.UUID) ([]ReviewResponse, error)
}

// AdminServiceInterface defines the interface for the generic admin panel service
type AdminServiceInterface interface {
	Entities() []*admin.ModelAdmin
	List(slug string, params admin.ListParams) (*AdminListResponse, error)
	Get(slug string, id uuid.UUID) (*AdminDetailResponse, error)
	Create(ctx context.Context, slug string, data map[string]interface{}) (*AdminDetailResponse, error)
	Update(ctx context.Context, slug string, id uuid.UUID, data map[string]interface{}) (*AdminDetailResponse, error)
	Delete(ctx context.Context, slug string, id uuid.UUID) error
	CreateInline(ctx context.Context, slug string, parentID uuid.UUID, inline string, data map[string]interface{}) (*AdminDetailResponse, error)
}
