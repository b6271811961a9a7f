package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "strategic-planning-backend/internal/errors"
	"strategic-planning-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key"

func TestTokenService(t *testing.T) {
	service := NewTokenService(testSecret)

	t.Run("round trip", func(t *testing.T) {
		token, err := service.GenerateJWT("admin", true, time.Hour)
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.True(t, claims.Staff)
		assert.Equal(t, "strategic-planning-backend", claims.Issuer)
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := service.GenerateJWT("", true, time.Hour)
		assert.Error(t, err)
	})

	t.Run("default ttl", func(t *testing.T) {
		token, err := service.GenerateJWT("admin", false, 0)
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenService("other-secret").GenerateJWT("admin", true, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &StaffClaims{
			Username: "admin",
			Staff:    true,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				Issuer:    tokenIssuer,
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateJWT("not-a-token")
		assert.True(t, apperrors.IsAuthentication(err))
	})
}

func TestRequireStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewTokenService(testSecret)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/admin", middleware.RequireStaff(), func(c *gin.Context) {
		username, _ := GetUsername(c)
		claims, ok := GetAuthClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"username":   username,
			"has_claims": ok && claims != nil,
			"ctx_user":   logger.UsernameFromContext(c.Request.Context()),
		})
	})

	staffToken, err := service.GenerateJWT("admin", true, time.Hour)
	require.NoError(t, err)
	userToken, err := service.GenerateJWT("viewer", false, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "not staff", header: "Bearer " + userToken, status: http.StatusForbidden},
		{name: "staff", header: "Bearer " + staffToken, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "admin", body["username"])
				assert.Equal(t, true, body["has_claims"])
				assert.Equal(t, "admin", body["ctx_user"])
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewTokenService(testSecret)
	handler := NewAuthHandler(service)

	router := gin.New()
	router.POST("/auth/validate", handler.ValidateToken)

	token, err := service.GenerateJWT("viewer", false, time.Hour)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var response AuthValidateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Valid)
		assert.Equal(t, "viewer", response.Claims.Username)
		assert.False(t, response.Claims.Staff)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/validate", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authorization token is required")
	})
}
