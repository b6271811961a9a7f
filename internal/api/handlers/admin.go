package handlers

import (
	"net/http"
	"strconv"

	"strategic-planning-backend/internal/admin"
	"strategic-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// reserved list query keys; every other query key is treated as a filter
var adminListKeys = map[string]bool{"search": true, "order": true, "page": true, "page_size": true}

// AdminHandler exposes the generic admin panel over HTTP
type AdminHandler struct {
	service service.AdminServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service service.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListEntities handles GET /api/v1/admin
// @Summary List admin entities
// @Description Registered admin entities with their list, filter and fieldset configuration
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Registered entities"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 403 {object} map[string]interface{} "Staff access required"
// @Security BearerAuth
// @Router /admin [get]
func (h *AdminHandler) ListEntities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entities": h.service.Entities()})
}

// List handles GET /api/v1/admin/:entity
// @Summary Admin list view
// @Description One page of an entity's list view. Query keys other than search, order, page and page_size are filters.
// @Tags admin
// @Produce json
// @Param entity path string true "Entity slug"
// @Param search query string false "Search terms"
// @Param order query string false "Order column, prefix with - for descending"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AdminListResponse "List view"
// @Failure 400 {object} map[string]interface{} "Invalid filter, order or pagination"
// @Failure 404 {object} map[string]interface{} "Unknown entity"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/{entity} [get]
func (h *AdminHandler) List(c *gin.Context) {
	params, ok := parseAdminListParams(c)
	if !ok {
		return
	}

	list, err := h.service.List(c.Param("entity"), params)
	if err != nil {
		respondError(c, err, "Failed to list records")
		return
	}

	c.JSON(http.StatusOK, list)
}

// Create handles POST /api/v1/admin/:entity
// @Summary Admin create
// @Tags admin
// @Accept json
// @Produce json
// @Param entity path string true "Entity slug"
// @Param record body map[string]interface{} true "Field values"
// @Success 201 {object} service.AdminDetailResponse "Created record"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Unknown entity"
// @Failure 409 {object} map[string]interface{} "Record already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/{entity} [post]
func (h *AdminHandler) Create(c *gin.Context) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	detail, err := h.service.Create(c.Request.Context(), c.Param("entity"), data)
	if err != nil {
		respondError(c, err, "Failed to create record")
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// Get handles GET /api/v1/admin/:entity/:id
// @Summary Admin detail view
// @Tags admin
// @Produce json
// @Param entity path string true "Entity slug"
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} service.AdminDetailResponse "Detail view"
// @Failure 400 {object} map[string]interface{} "Invalid record ID"
// @Failure 404 {object} map[string]interface{} "Unknown entity or record"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/{entity}/{id} [get]
func (h *AdminHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "record")
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Param("entity"), id)
	if err != nil {
		respondError(c, err, "Failed to get record")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Update handles PUT /api/v1/admin/:entity/:id
// @Summary Admin update
// @Description Updates the fields present in the body; omitted fields keep their values
// @Tags admin
// @Accept json
// @Produce json
// @Param entity path string true "Entity slug"
// @Param id path string true "Record ID (UUID)"
// @Param record body map[string]interface{} true "Field values"
// @Success 200 {object} service.AdminDetailResponse "Updated record"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Unknown entity or record"
// @Failure 409 {object} map[string]interface{} "Record already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/{entity}/{id} [put]
func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "record")
	if !ok {
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	detail, err := h.service.Update(c.Request.Context(), c.Param("entity"), id, data)
	if err != nil {
		respondError(c, err, "Failed to update record")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Delete handles DELETE /api/v1/admin/:entity/:id
// @Summary Admin delete
// @Tags admin
// @Param entity path string true "Entity slug"
// @Param id path string true "Record ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]interface{} "Invalid record ID"
// @Failure 404 {object} map[string]interface{} "Unknown entity or record"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/{entity}/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "record")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("entity"), id); err != nil {
		respondError(c, err, "Failed to delete record")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateInline handles POST /api/v1/admin/:entity/:id/inlines/:inline
// @Summary Admin inline create
// @Description Creates a child record linked to the parent through the inline's foreign key
// @Tags admin
// @Accept json
// @Produce json
// @Param entity path string true "Parent entity slug"
// @Param id path string true "Parent record ID (UUID)"
// @Param inline path string true "Inline name"
// @Param record body map[string]interface{} true "Field values"
// @Success 201 {object} service.AdminDetailResponse "Created child record"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Unknown entity, inline or parent"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/{entity}/{id}/inlines/{inline} [post]
func (h *AdminHandler) CreateInline(c *gin.Context) {
	parentID, ok := parseUUIDParam(c, "id", "parent")
	if !ok {
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	detail, err := h.service.CreateInline(c.Request.Context(), c.Param("entity"), parentID, c.Param("inline"), data)
	if err != nil {
		respondError(c, err, "Failed to create inline record")
		return
	}

	c.JSON(http.StatusCreated, detail)
}

func parseAdminListParams(c *gin.Context) (admin.ListParams, bool) {
	params := admin.ListParams{
		Search:  c.Query("search"),
		Order:   c.Query("order"),
		Filters: map[string]string{},
	}

	for key, target := range map[string]*int{"page": &params.Page, "page_size": &params.PageSize} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + key + ": must be an integer"})
			return params, false
		}
		*target = value
	}

	for key, values := range c.Request.URL.Query() {
		if adminListKeys[key] || len(values) == 0 {
			continue
		}
		params.Filters[key] = values[0]
	}

	return params, true
}
