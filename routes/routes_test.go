package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/wassim-hamila/back-end/config"
)

// The public surface (metadata, health, 404, auth gating) never touches the
// data store, so the router can be exercised without a connection.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{ClientOrigin: "http://localhost:3000", Env: "test"}
	return Setup(cfg, nil)
}

func TestHealth(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
}

func TestServiceMetadata(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/workouts")
}

func TestUnknownRoute(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	router := testRouter()

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/workouts"},
		{"GET", "/api/goals"},
		{"GET", "/api/meals"},
		{"GET", "/api/users/profile"},
		{"GET", "/api/users/stats"},
		{"GET", "/api/users/feed"},
		{"POST", "/api/users/follow/abc"},
	}
	for _, p := range paths {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(p.method, p.path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}
