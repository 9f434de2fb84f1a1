// internal/domain/models.go
package domain

import "time"

// InventoryItem is one product/store snapshot submitted for assessment.
// Every field is optional; numeric zero values and empty labels are
// substituted with neutral defaults before any formula runs.
type InventoryItem struct {
	ProductID          string  `json:"productId,omitempty"`
	ProductName        string  `json:"productName,omitempty"`
	StoreID            string  `json:"storeId,omitempty"`
	Category           string  `json:"category,omitempty"`
	InventoryLevel     float64 `json:"inventoryLevel"`
	DemandForecast     float64 `json:"demandForecast"`
	Price              float64 `json:"price"`
	Discount           float64 `json:"discount,omitempty"`
	CompetitorPricing  float64 `json:"competitorPricing,omitempty"`
	WeatherCondition   string  `json:"weatherCondition,omitempty"`
	HolidayOrPromotion string  `json:"holidayOrPromotion,omitempty"`
	Seasonality        string  `json:"seasonality,omitempty"`
}

// RevenueImpact summarizes the revenue exposure of a single item.
type RevenueImpact struct {
	PotentialRevenue float64 `json:"potentialRevenue"`
	LostRevenue      float64 `json:"lostRevenue"`
	Efficiency       float64 `json:"efficiency"`
}

// Assessment is the per-item result of the prediction pipeline.
type Assessment struct {
	ProductID              string        `json:"productId,omitempty"`
	ProductName            string        `json:"productName,omitempty"`
	StoreID                string        `json:"storeId,omitempty"`
	Category               string        `json:"category,omitempty"`
	CurrentInventory       float64       `json:"currentInventory"`
	DemandForecast         float64       `json:"demandForecast"`
	AdjustedDemandForecast float64       `json:"adjustedDemandForecast"`
	StockStatus            StockStatus   `json:"stockStatus"`
	ExpectedDemandIncrease bool          `json:"expectedDemandIncrease"`
	RiskScore              float64       `json:"riskScore"`
	Recommendation         string        `json:"recommendation"`
	RevenueImpact          RevenueImpact `json:"revenueImpact"`
	Confidence             float64       `json:"confidence"`
	LastUpdated            time.Time     `json:"lastUpdated"`
}

// OptimizationResult is the per-item result of the optimize pipeline.
type OptimizationResult struct {
	ProductID        string  `json:"productId,omitempty"`
	ProductName      string  `json:"productName,omitempty"`
	StoreID          string  `json:"storeId,omitempty"`
	Category         string  `json:"category,omitempty"`
	CurrentInventory float64 `json:"currentInventory"`
	OptimalInventory int     `json:"optimalInventory"`
	CostSavings      float64 `json:"costSavings"`
	Recommendation   string  `json:"recommendation,omitempty"`
}

// PredictionRequest is the body of POST /predict.
type PredictionRequest struct {
	InventoryData []InventoryItem `json:"inventory_data"`
}

// PredictionResponse is the body returned by POST /predict.
type PredictionResponse struct {
	Predictions []Assessment `json:"predictions"`
	Status      string       `json:"status"`
	Message     string       `json:"message"`
}

// OptimizationRequest is the body of POST /optimize. Target and
// Constraints are accepted but reserved; no formula reads them yet.
type OptimizationRequest struct {
	InventoryData []InventoryItem        `json:"inventory_data"`
	Target        string                 `json:"optimization_target"`
	Constraints   map[string]interface{} `json:"constraints"`
}

// OptimizationResponse is the body returned by POST /optimize.
type OptimizationResponse struct {
	OptimizedInventory []OptimizationResult `json:"optimized_inventory"`
	CostSavings        float64              `json:"cost_savings"`
	Recommendations    []string             `json:"recommendations"`
	Status             string               `json:"status"`
}

// DashboardStats aggregates a submitted batch for the dashboard view.
type DashboardStats struct {
	TotalProducts         int     `json:"totalProducts"`
	TotalStores           int     `json:"totalStores"`
	AverageInventoryLevel float64 `json:"averageInventoryLevel"`
	LowStockItems         int     `json:"lowStockItems"`
	OverstockedItems      int     `json:"overstockedItems"`
	TotalValue            float64 `json:"totalValue"`
	RevenueForecast       float64 `json:"revenueForecast"`
}

// CategoryStats aggregates one category of a submitted batch.
type CategoryStats struct {
	TotalValue       float64 `json:"totalValue"`
	AverageInventory float64 `json:"averageInventory"`
	LowStockItems    int     `json:"lowStockItems"`
	ItemCount        int     `json:"itemCount"`
}
