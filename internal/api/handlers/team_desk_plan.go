package handlers

import (
	"net/http"

	"strategic-planning-backend/internal/database/models"
	"strategic-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamDeskPlanHandler handles HTTP requests for team/desk plans and their reviews
type TeamDeskPlanHandler struct {
	service service.TeamDeskPlanServiceInterface
}

// NewTeamDeskPlanHandler creates a new team/desk plan handler
func NewTeamDeskPlanHandler(service service.TeamDeskPlanServiceInterface) *TeamDeskPlanHandler {
	return &TeamDeskPlanHandler{service: service}
}

// CreateTeamDeskPlan handles POST /api/v1/team-desk-plans
// @Summary Create a team/desk plan
// @Description Create a draft team/desk plan. Team desk and LEO/EO plan are optional.
// @Tags team-desk-plans
// @Accept json
// @Produce json
// @Param plan body service.CreateTeamDeskPlanRequest true "Team/desk plan data"
// @Success 201 {object} service.TeamDeskPlanResponse "Successfully created plan"
// @Failure 400 {object} map[string]interface{} "Invalid request body or team desk type"
// @Failure 404 {object} map[string]interface{} "Organization or LEO/EO plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-desk-plans [post]
func (h *TeamDeskPlanHandler) CreateTeamDeskPlan(c *gin.Context) {
	var req service.CreateTeamDeskPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create team/desk plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetTeamDeskPlan handles GET /api/v1/team-desk-plans/:id
// @Summary Get a team/desk plan
// @Description Get a plan with its content and display labels. Missing relations display as N/A.
// @Tags team-desk-plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} service.TeamDeskPlanResponse "Successfully retrieved plan"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-desk-plans/{id} [get]
func (h *TeamDeskPlanHandler) GetTeamDeskPlan(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team/desk plan")
	if !ok {
		return
	}

	plan, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get team/desk plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListTeamDeskPlans handles GET /api/v1/team-desk-plans
// @Summary List team/desk plans
// @Tags team-desk-plans
// @Produce json
// @Param organization_id query string false "Filter by organization ID"
// @Param team_desk_id query string false "Filter by team/desk ID"
// @Param status query string false "Filter by status (draft, submitted, reviewed)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TeamDeskPlanListResponse "Successfully retrieved plans"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-desk-plans [get]
func (h *TeamDeskPlanHandler) ListTeamDeskPlans(c *gin.Context) {
	page, pageSize := parsePagination(c)
	req := service.ListTeamDeskPlansRequest{
		Status:   models.TeamDeskPlanStatus(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	var ok bool
	if req.OrganizationID, ok = optionalUUIDQuery(c, "organization_id"); !ok {
		return
	}
	if req.TeamDeskID, ok = optionalUUIDQuery(c, "team_desk_id"); !ok {
		return
	}

	plans, err := h.service.List(&req)
	if err != nil {
		respondError(c, err, "Failed to get team/desk plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// UpdateTeamDeskPlanContent handles PUT /api/v1/team-desk-plans/:id/content
// @Summary Replace the content of a team/desk plan
// @Description Replaces the selected objectives, initiatives, measures, main and detail activities
// @Tags team-desk-plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param content body service.UpdateTeamDeskPlanContentRequest true "Selected item IDs"
// @Success 200 {object} service.TeamDeskPlanResponse "Updated plan"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Plan or selected item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-desk-plans/{id}/content [put]
func (h *TeamDeskPlanHandler) UpdateTeamDeskPlanContent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team/desk plan")
	if !ok {
		return
	}

	var req service.UpdateTeamDeskPlanContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.UpdateContent(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update team/desk plan content")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// SubmitTeamDeskPlan handles POST /api/v1/team-desk-plans/:id/submit
// @Summary Submit a team/desk plan
// @Tags team-desk-plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} service.TeamDeskPlanResponse "Submitted plan"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 409 {object} map[string]interface{} "Plan is not a draft"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-desk-plans/{id}/submit [post]
func (h *TeamDeskPlanHandler) SubmitTeamDeskPlan(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team/desk plan")
	if !ok {
		return
	}

	plan, err := h.service.Submit(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to submit team/desk plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// AddReview handles POST /api/v1/team-desk-plans/:id/reviews
// @Summary Review a team/desk plan
// @Description Append a review and mark the plan reviewed
// @Tags team-desk-plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param review body service.AddReviewRequest true "Review"
// @Success 201 {object} service.ReviewResponse "Recorded review"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Plan or reviewer not found"
// @Failure 409 {object} map[string]interface{} "Plan has not been submitted"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-desk-plans/{id}/reviews [post]
func (h *TeamDeskPlanHandler) AddReview(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team/desk plan")
	if !ok {
		return
	}

	var req service.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	review, err := h.service.AddReview(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to add review")
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListReviews handles GET /api/v1/team-desk-plans/:id/reviews
// @Summary List reviews of a team/desk plan
// @Tags team-desk-plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {array} service.ReviewResponse "Reviews ordered by review time"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-desk-plans/{id}/reviews [get]
func (h *TeamDeskPlanHandler) ListReviews(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team/desk plan")
	if !ok {
		return
	}

	reviews, err := h.service.ListReviews(id)
	if err != nil {
		respondError(c, err, "Failed to get reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": invalid UUID format"})
		return nil, false
	}
	return &id, true
}
