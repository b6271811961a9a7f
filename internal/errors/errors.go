package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound        = &NotFoundError{Entity: "organization"}
	ErrUserNotFound                = &NotFoundError{Entity: "user"}
	ErrStrategicObjectiveNotFound  = &NotFoundError{Entity: "strategic objective"}
	ErrPlanNotFound                = &NotFoundError{Entity: "plan"}
	ErrTeamDeskPlanNotFound        = &NotFoundError{Entity: "team/desk plan"}
	ErrReviewerNotFound            = &NotFoundError{Entity: "reviewer"}
	ErrStrategicInitiativeNotFound = &NotFoundError{Entity: "strategic initiative"}
	ErrPerformanceMeasureNotFound  = &NotFoundError{Entity: "performance measure"}
	ErrMainActivityNotFound        = &NotFoundError{Entity: "main activity"}
	ErrDetailActivityNotFound      = &NotFoundError{Entity: "detail activity"}
	ErrLocationNotFound            = &NotFoundError{Entity: "location"}
	ErrAdminEntityNotFound         = &NotFoundError{Entity: "admin entity"}
	ErrAdminRecordNotFound         = &NotFoundError{Entity: "record"}
	ErrInlineNotFound              = &NotFoundError{Entity: "inline"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrRecordExists       = &AlreadyExistsError{Entity: "record", Context: "with these unique values"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrObjectiveNotSelected    = errors.New("objective is not selected in this plan")
	ErrInvalidWeight           = errors.New("weight must be zero or greater")
	ErrOrganizationCycle       = errors.New("organization cannot be its own ancestor")
	ErrInvalidChoice           = errors.New("value is not one of the allowed choices")
	ErrInvalidTeamDesk         = errors.New("team/desk must be an organization of type TEAM_LEAD or DESK")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidFilter           = errors.New("invalid filter")
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authorization token is required"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid or expired token"}
	ErrNotStaff     = &AuthorizationError{Message: "staff access is required"}
)

// Configuration Errors
var (
	ErrJWTSecretNotSet    = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
	ErrDatabaseNameNotSet = &ConfigurationError{Message: "database name is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
