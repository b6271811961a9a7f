package auth

import (
	"net/http"
	"strings"

	apperrors "strategic-planning-backend/internal/errors"
	"strategic-planning-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *TokenService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireStaff validates the bearer token and only lets staff users through
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.authenticate(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "details": err.Error()})
			c.Abort()
			return
		}

		if !claims.Staff {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden", "details": apperrors.ErrNotStaff.Error()})
			c.Abort()
			return
		}

		// Set user context
		c.Set("username", claims.Username)
		c.Set("auth_claims", claims)
		c.Request = c.Request.WithContext(logger.WithUsername(c.Request.Context(), claims.Username))

		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (*StaffClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, apperrors.ErrMissingToken
	}

	// Extract token from Bearer header
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return m.service.ValidateJWT(tokenString)
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*StaffClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	staffClaims, ok := claims.(*StaffClaims)
	return staffClaims, ok
}
