package handlers

import (
	"net/http"

	"strategic-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlanHandler handles HTTP requests for LEO/EO plans
type PlanHandler struct {
	service service.PlanServiceInterface
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(service service.PlanServiceInterface) *PlanHandler {
	return &PlanHandler{service: service}
}

// CreatePlan handles POST /api/v1/plans
// @Summary Create a plan
// @Description Create a draft LEO/EO plan, optionally with an initial objective selection
// @Tags plans
// @Accept json
// @Produce json
// @Param plan body service.CreatePlanRequest true "Plan data"
// @Success 201 {object} service.PlanResponse "Successfully created plan"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization or objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req service.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlan handles GET /api/v1/plans/:id
// @Summary Get plan by ID
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} service.PlanResponse "Successfully retrieved plan"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "plan")
	if !ok {
		return
	}

	plan, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListPlans handles GET /api/v1/plans?organization_id=
// @Summary List plans of an organization
// @Tags plans
// @Produce json
// @Param organization_id query string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PlanListResponse "Successfully retrieved plans"
// @Failure 400 {object} map[string]interface{} "Missing or invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	organizationID, err := uuid.Parse(c.Query("organization_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_id query parameter is required and must be a UUID"})
		return
	}
	page, pageSize := parsePagination(c)

	plans, err := h.service.GetByOrganization(organizationID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// SelectObjectives handles PUT /api/v1/plans/:id/objectives
// @Summary Replace a plan's objective selection
// @Description Replaces the selected objectives. Weight overrides of deselected objectives are dropped.
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param selection body service.SelectObjectivesRequest true "Selected objective IDs"
// @Success 200 {object} service.PlanResponse "Updated plan"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Plan or objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plans/{id}/objectives [put]
func (h *PlanHandler) SelectObjectives(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "plan")
	if !ok {
		return
	}

	var req service.SelectObjectivesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.SelectObjectives(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to select objectives")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// SetObjectiveWeights handles PUT /api/v1/plans/:id/objective-weights
// @Summary Replace a plan's objective weight overrides
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param weights body service.SetObjectiveWeightsRequest true "Weights keyed by objective ID"
// @Success 200 {object} service.ObjectiveWeightsResponse "Weight breakdown"
// @Failure 400 {object} map[string]interface{} "Objective not selected or invalid weight"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plans/{id}/objective-weights [put]
func (h *PlanHandler) SetObjectiveWeights(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "plan")
	if !ok {
		return
	}

	var req service.SetObjectiveWeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	weights, err := h.service.SetObjectiveWeights(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to set objective weights")
		return
	}

	c.JSON(http.StatusOK, weights)
}

// GetObjectiveWeights handles GET /api/v1/plans/:id/objective-weights
// @Summary Get a plan's objective weight breakdown
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} service.ObjectiveWeightsResponse "Weight breakdown"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plans/{id}/objective-weights [get]
func (h *PlanHandler) GetObjectiveWeights(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "plan")
	if !ok {
		return
	}

	weights, err := h.service.GetObjectiveWeights(id)
	if err != nil {
		respondError(c, err, "Failed to get objective weights")
		return
	}

	c.JSON(http.StatusOK, weights)
}

// SubmitPlan handles POST /api/v1/plans/:id/submit
// @Summary Submit a plan
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} service.PlanResponse "Submitted plan"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 409 {object} map[string]interface{} "Plan cannot be submitted in its current status"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plans/{id}/submit [post]
func (h *PlanHandler) SubmitPlan(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "plan")
	if !ok {
		return
	}

	plan, err := h.service.Submit(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to submit plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}
