package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopsight/inventory-ai/internal/analytics"
	"github.com/shopsight/inventory-ai/internal/domain"
)

type AnalyticsHandler struct {
	synth *analytics.Synthesizer
}

func NewAnalyticsHandler(synth *analytics.Synthesizer) *AnalyticsHandler {
	if synth == nil {
		synth = analytics.NewSynthesizer()
	}
	return &AnalyticsHandler{synth: synth}
}

// RevenueForecast handles GET /analytics/revenue-forecast. The payload is
// synthesized, not derived from request data.
func (h *AnalyticsHandler) RevenueForecast(c *gin.Context) {
	c.JSON(http.StatusOK, h.synth.RevenueForecast())
}

// StockAlerts handles GET /analytics/stock-alerts. The list is synthesized
// for UI demonstration only.
func (h *AnalyticsHandler) StockAlerts(c *gin.Context) {
	alerts := h.synth.StockAlerts()
	c.JSON(http.StatusOK, gin.H{
		"alerts":    alerts,
		"count":     len(alerts),
		"synthetic": true,
	})
}

// DashboardStats handles POST /analytics/dashboard-stats.
func (h *AnalyticsHandler) DashboardStats(c *gin.Context) {
	var req domain.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Dashboard stats failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, analytics.DashboardStats(req.InventoryData))
}

// CategoryPerformance handles POST /analytics/category-performance.
func (h *AnalyticsHandler) CategoryPerformance(c *gin.Context) {
	var req domain.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Category performance failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, analytics.CategoryPerformance(req.InventoryData))
}
