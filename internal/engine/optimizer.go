package engine

import (
	"fmt"
	"math"

	"github.com/shopsight/inventory-ai/internal/domain"
)

// Optimize computes the optimal inventory target for one item.
//
// optimal = max(1, floor((demand + safetyStock) * categoryMult * priceFactor))
// with safetyStock = 0.2 * demand and priceFactor = max(0.5, 1 - price/1000).
// Cost savings may be negative, meaning the optimizer recommends buying more.
// A recommendation is emitted only when the current level deviates from the
// optimum by more than 20%.
func Optimize(item domain.InventoryItem) domain.OptimizationResult {
	demand := item.DemandForecast
	safetyStock := demand * 0.2
	categoryMult := CategoryMultiplier(item.Category)
	priceFactor := math.Max(0.5, 1-item.Price/1000)

	optimal := int(math.Max(1, math.Floor((demand+safetyStock)*categoryMult*priceFactor)))

	result := domain.OptimizationResult{
		ProductID:        item.ProductID,
		ProductName:      item.ProductName,
		StoreID:          item.StoreID,
		Category:         item.Category,
		CurrentInventory: item.InventoryLevel,
		OptimalInventory: optimal,
		CostSavings:      (item.InventoryLevel - float64(optimal)) * item.Price,
	}

	if item.InventoryLevel > float64(optimal)*1.2 {
		result.Recommendation = fmt.Sprintf("Reduce inventory by %.0f units for %s",
			item.InventoryLevel-float64(optimal), displayName(item))
	} else if item.InventoryLevel < float64(optimal)*0.8 {
		result.Recommendation = fmt.Sprintf("Increase inventory by %.0f units for %s",
			float64(optimal)-item.InventoryLevel, displayName(item))
	}

	return result
}

// OptimizeBatch optimizes every item independently, preserving input order.
func OptimizeBatch(items []domain.InventoryItem) []domain.OptimizationResult {
	results := make([]domain.OptimizationResult, len(items))
	for i, item := range items {
		results[i] = Optimize(item)
	}

	return results
}

func displayName(item domain.InventoryItem) string {
	if item.ProductName != "" {
		return item.ProductName
	}
	if item.ProductID != "" {
		return item.ProductID
	}

	return "item"
}
