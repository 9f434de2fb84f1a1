package analytics

import (
	"github.com/shopsight/inventory-ai/internal/domain"
)

// Batch-level aggregates over submitted inventory. Unlike the synthetic
// feeds these are deterministic functions of the request payload.

const (
	lowStockThreshold  = 10
	overstockThreshold = 100
)

// DashboardStats summarizes a batch: distinct products and stores, average
// inventory, low/overstock counts, on-hand value and forecasted revenue.
func DashboardStats(items []domain.InventoryItem) domain.DashboardStats {
	stats := domain.DashboardStats{}
	if len(items) == 0 {
		return stats
	}

	products := make(map[string]struct{})
	stores := make(map[string]struct{})
	var totalInventory float64

	for _, item := range items {
		products[item.ProductID] = struct{}{}
		stores[item.StoreID] = struct{}{}
		totalInventory += item.InventoryLevel

		if item.InventoryLevel < lowStockThreshold {
			stats.LowStockItems++
		}
		if item.InventoryLevel > overstockThreshold {
			stats.OverstockedItems++
		}

		stats.TotalValue += item.InventoryLevel * item.Price
		stats.RevenueForecast += item.DemandForecast * item.Price
	}

	stats.TotalProducts = len(products)
	stats.TotalStores = len(stores)
	stats.AverageInventoryLevel = round2(totalInventory / float64(len(items)))
	stats.TotalValue = round2(stats.TotalValue)
	stats.RevenueForecast = round2(stats.RevenueForecast)

	return stats
}

// CategoryPerformance groups a batch by category. Items without a category
// land under "uncategorized".
func CategoryPerformance(items []domain.InventoryItem) map[string]domain.CategoryStats {
	type acc struct {
		totalValue     float64
		totalInventory float64
		lowStock       int
		count          int
	}

	groups := make(map[string]*acc)
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = "uncategorized"
		}

		g, ok := groups[category]
		if !ok {
			g = &acc{}
			groups[category] = g
		}

		g.totalValue += item.InventoryLevel * item.Price
		g.totalInventory += item.InventoryLevel
		if item.InventoryLevel < lowStockThreshold {
			g.lowStock++
		}
		g.count++
	}

	performance := make(map[string]domain.CategoryStats, len(groups))
	for category, g := range groups {
		performance[category] = domain.CategoryStats{
			TotalValue:       round2(g.totalValue),
			AverageInventory: round2(g.totalInventory / float64(g.count)),
			LowStockItems:    g.lowStock,
			ItemCount:        g.count,
		}
	}

	return performance
}
