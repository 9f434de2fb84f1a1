package engine

import (
	"fmt"
	"math"

	"github.com/shopsight/inventory-ai/internal/domain"
)

// Recommendation renders the advisory text for a classified item.
func Recommendation(status domain.StockStatus, inventoryLevel, adjustedDemand, riskScore float64) string {
	switch status {
	case domain.StatusCriticalUnderstocked:
		return fmt.Sprintf("Urgent reorder required. Stockout risk at %.0f%% of exposure scale.", riskScore*100)
	case domain.StatusUnderstocked:
		increase := math.Max(0, math.Round(adjustedDemand-inventoryLevel))
		return fmt.Sprintf("Increase inventory by approximately %.0f units to meet adjusted demand.", increase)
	case domain.StatusOverstocked:
		reduction := math.Max(0, math.Round(inventoryLevel-adjustedDemand*1.5))
		return fmt.Sprintf("Reduce inventory by approximately %.0f units to cut carrying cost.", reduction)
	case domain.StatusCriticalOverstocked:
		return "Consider promotional activities to reduce excess inventory."
	default:
		return "Maintain current inventory levels."
	}
}
