package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopsight/inventory-ai/internal/domain"
	"github.com/shopsight/inventory-ai/internal/service"
)

type PredictHandler struct {
	service *service.PredictionService
}

func NewPredictHandler(svc *service.PredictionService) *PredictHandler {
	return &PredictHandler{service: svc}
}

// Predict handles POST /predict.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req domain.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, fmt.Sprintf("Prediction failed: %s", err.Error()))
		return
	}

	predictions, err := h.service.Predict(c.Request.Context(), req.InventoryData)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, fmt.Sprintf("Prediction failed: %s", err.Error()))
		return
	}

	c.JSON(http.StatusOK, domain.PredictionResponse{
		Predictions: predictions,
		Status:      "success",
		Message:     fmt.Sprintf("Generated predictions for %d products", len(predictions)),
	})
}

// Optimize handles POST /optimize.
func (h *PredictHandler) Optimize(c *gin.Context) {
	var req domain.OptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, fmt.Sprintf("Optimization failed: %s", err.Error()))
		return
	}

	results, totalSavings, recommendations, err := h.service.Optimize(c.Request.Context(), req)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, fmt.Sprintf("Optimization failed: %s", err.Error()))
		return
	}

	c.JSON(http.StatusOK, domain.OptimizationResponse{
		OptimizedInventory: results,
		CostSavings:        totalSavings,
		Recommendations:    recommendations,
		Status:             "success",
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	log.Error().Msg(message)
	c.JSON(statusCode, gin.H{"status": "error", "message": message})
}
