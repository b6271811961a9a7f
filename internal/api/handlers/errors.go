package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "strategic-planning-backend/internal/errors"
	"strategic-planning-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// badRequestErrors are business rule violations caused by the request itself
var badRequestErrors = []error{
	apperrors.ErrInvalidTimeRange,
	apperrors.ErrObjectiveNotSelected,
	apperrors.ErrInvalidWeight,
	apperrors.ErrOrganizationCycle,
	apperrors.ErrInvalidTeamDesk,
	apperrors.ErrInvalidStatus,
	apperrors.ErrInvalidChoice,
	apperrors.ErrInvalidFilter,
	apperrors.ErrInvalidPaginationParams,
}

// errorStatus maps a service error onto an HTTP status code
func errorStatus(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs), apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err), errors.Is(err, apperrors.ErrInvalidStatusTransition):
		return http.StatusConflict
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err as JSON. Unexpected errors are logged and reported under message.
func respondError(c *gin.Context, err error, message string) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		}).Error(message)
		c.JSON(status, gin.H{"error": message, "details": err.Error()})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseUUIDParam reads a UUID path parameter, answering 400 when it is malformed
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads page and page_size, falling back to the defaults
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
