package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopsight/inventory-ai/internal/api/handlers"
	"github.com/shopsight/inventory-ai/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	return NewRouter(&Services{
		Predict:   handlers.NewPredictHandler(service.NewPredictionService(nil)),
		Analytics: handlers.NewAnalyticsHandler(nil),
	}, []string{"*"})
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter()

	req, err := http.NewRequest("GET", "/", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ServiceName)
	assert.Contains(t, w.Body.String(), "features")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req, err := http.NewRequest("GET", "/health", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.Contains(t, w.Body.String(), "timestamp")
}

func TestNormalizeAllowedOrigins(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
		allowAll bool
	}{
		{"wildcard", []string{"*"}, nil, true},
		{"single", []string{"https://app.example.com"}, []string{"https://app.example.com"}, false},
		{"comma separated", []string{"https://a.com, https://b.com"}, []string{"https://a.com", "https://b.com"}, false},
		{"mixed with wildcard", []string{"https://a.com", "*"}, []string{"https://a.com"}, true},
		{"blank entries dropped", []string{" ", ""}, nil, false},
	}

	for _, tc := range testCases {
		parsed, allowAll := normalizeAllowedOrigins(tc.input)
		assert.Equal(t, tc.expected, parsed, tc.name)
		assert.Equal(t, tc.allowAll, allowAll, tc.name)
	}
}
