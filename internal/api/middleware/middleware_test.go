package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"strategic-planning-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func serve(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())

	t.Run("generates an id", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "abc-123"})
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Contains(t, w.Body.String(), "abc-123")
	})
}

func TestRecovery(t *testing.T) {
	router := newRouter(Logger(), Recovery())

	w := serve(router, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := newRouter(CORS(cfg))

	t.Run("allowed origin", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/ping", map[string]string{"Origin": "http://localhost:3000"})
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/ping", map[string]string{"Origin": "http://evil.example"})
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		w := serve(router, http.MethodOptions, "/ping", map[string]string{"Origin": "http://localhost:3000"})
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("wildcard", func(t *testing.T) {
		router := newRouter(CORS(&config.Config{AllowedOrigins: []string{"*"}}))
		w := serve(router, http.MethodGet, "/ping", map[string]string{"Origin": "http://any.example"})
		assert.Equal(t, "http://any.example", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
