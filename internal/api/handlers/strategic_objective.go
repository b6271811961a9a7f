package handlers

import (
	"net/http"

	"strategic-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StrategicObjectiveHandler handles HTTP requests for strategic objectives
type StrategicObjectiveHandler struct {
	service service.StrategicObjectiveServiceInterface
}

// NewStrategicObjectiveHandler creates a new strategic objective handler
func NewStrategicObjectiveHandler(service service.StrategicObjectiveServiceInterface) *StrategicObjectiveHandler {
	return &StrategicObjectiveHandler{service: service}
}

// CreateStrategicObjective handles POST /api/v1/strategic-objectives
// @Summary Create a strategic objective
// @Tags strategic-objectives
// @Accept json
// @Produce json
// @Param objective body service.CreateStrategicObjectiveRequest true "Objective data"
// @Success 201 {object} service.StrategicObjectiveResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /strategic-objectives [post]
func (h *StrategicObjectiveHandler) CreateStrategicObjective(c *gin.Context) {
	var req service.CreateStrategicObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	objective, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create strategic objective")
		return
	}

	c.JSON(http.StatusCreated, objective)
}

// GetStrategicObjective handles GET /api/v1/strategic-objectives/:id
// @Summary Get a strategic objective
// @Tags strategic-objectives
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Success 200 {object} service.StrategicObjectiveResponse
// @Failure 400 {object} map[string]interface{} "Invalid objective ID"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Router /strategic-objectives/{id} [get]
func (h *StrategicObjectiveHandler) GetStrategicObjective(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "strategic objective")
	if !ok {
		return
	}

	objective, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get strategic objective")
		return
	}

	c.JSON(http.StatusOK, objective)
}

// ListStrategicObjectives handles GET /api/v1/strategic-objectives
// @Summary List strategic objectives
// @Tags strategic-objectives
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.StrategicObjectiveListResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /strategic-objectives [get]
func (h *StrategicObjectiveHandler) ListStrategicObjectives(c *gin.Context) {
	page, pageSize := parsePagination(c)

	objectives, err := h.service.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get strategic objectives")
		return
	}

	c.JSON(http.StatusOK, objectives)
}

// UpdateStrategicObjective handles PUT /api/v1/strategic-objectives/:id
// @Summary Update a strategic objective
// @Tags strategic-objectives
// @Accept json
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Param objective body service.UpdateStrategicObjectiveRequest true "Objective data"
// @Success 200 {object} service.StrategicObjectiveResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Router /strategic-objectives/{id} [put]
func (h *StrategicObjectiveHandler) UpdateStrategicObjective(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "strategic objective")
	if !ok {
		return
	}

	var req service.UpdateStrategicObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	objective, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update strategic objective")
		return
	}

	c.JSON(http.StatusOK, objective)
}

// DeleteStrategicObjective handles DELETE /api/v1/strategic-objectives/:id
// @Summary Delete a strategic objective
// @Tags strategic-objectives
// @Param id path string true "Objective ID (UUID)"
// @Success 204 "Successfully deleted objective"
// @Failure 400 {object} map[string]interface{} "Invalid objective ID"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Router /strategic-objectives/{id} [delete]
func (h *StrategicObjectiveHandler) DeleteStrategicObjective(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "strategic objective")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete strategic objective")
		return
	}

	c.Status(http.StatusNoContent)
}
