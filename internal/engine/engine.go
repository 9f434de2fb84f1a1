package engine

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/shopsight/inventory-ai/internal/domain"
)

// Engine computes rule-based inventory assessments. It holds no state
// beyond the randomness source used for the presentation-only confidence
// field and a clock, both injectable for tests. The rng is mutex-guarded
// because one engine serves every request goroutine.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// New creates an engine with a time-seeded randomness source.
func New() *Engine {
	return NewWithSource(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewWithSource creates an engine with explicit randomness and clock.
func NewWithSource(rng *rand.Rand, now func() time.Time) *Engine {
	return &Engine{rng: rng, now: now}
}

// AdjustedDemand scales a raw demand forecast by the weather, holiday and
// season multipliers. The factors compose multiplicatively with no
// interaction terms.
func AdjustedDemand(item domain.InventoryItem) float64 {
	return item.DemandForecast *
		WeatherMultiplier(defaultLabel(item.WeatherCondition, "normal")) *
		HolidayMultiplier(defaultLabel(item.HolidayOrPromotion, "none")) *
		SeasonMultiplier(defaultLabel(item.Seasonality, "regular"))
}

// ClassifyStock performs the five-way classification. The branch order is
// load-bearing: boundary values (exactly 0.3x, 0.7x, 1.5x, 2.0x) and the
// zero-demand case depend on these exact comparisons.
func ClassifyStock(inventoryLevel, adjustedDemand float64) domain.StockStatus {
	switch {
	case inventoryLevel < adjustedDemand*0.3:
		return domain.StatusCriticalUnderstocked
	case inventoryLevel < adjustedDemand*0.7:
		return domain.StatusUnderstocked
	case inventoryLevel > adjustedDemand*2.0:
		return domain.StatusCriticalOverstocked
	case inventoryLevel > adjustedDemand*1.5:
		return domain.StatusOverstocked
	default:
		return domain.StatusNormal
	}
}

// RiskScore blends stockout and overstock exposure into [0,1], scaled up
// by unit price.
func RiskScore(inventoryLevel, adjustedDemand, price float64) float64 {
	var stockoutRisk, overstockRisk float64
	if adjustedDemand > 0 {
		stockoutRisk = math.Max(0, (adjustedDemand-inventoryLevel)/adjustedDemand)
		overstockRisk = math.Max(0, (inventoryLevel-adjustedDemand*1.5)/(adjustedDemand*1.5))
	}

	priceFactor := math.Min(price/100, 2.0)

	return math.Min(1.0, (0.6*stockoutRisk+0.4*overstockRisk)*priceFactor)
}

// RevenueImpact computes the revenue exposure of holding inventoryLevel
// against adjustedDemand at the given unit price.
func RevenueImpact(inventoryLevel, adjustedDemand, price float64) domain.RevenueImpact {
	potentialSales := math.Min(inventoryLevel, adjustedDemand)
	lostSales := math.Max(0, adjustedDemand-inventoryLevel)

	efficiency := 1.0
	if adjustedDemand > 0 {
		efficiency = potentialSales / adjustedDemand
	}

	return domain.RevenueImpact{
		PotentialRevenue: potentialSales * price,
		LostRevenue:      lostSales * price,
		Efficiency:       efficiency,
	}
}

// Assess runs the full per-item pipeline.
func (e *Engine) Assess(item domain.InventoryItem) domain.Assessment {
	adjusted := AdjustedDemand(item)
	status := ClassifyStock(item.InventoryLevel, adjusted)
	risk := RiskScore(item.InventoryLevel, adjusted, item.Price)

	return domain.Assessment{
		ProductID:              item.ProductID,
		ProductName:            item.ProductName,
		StoreID:                item.StoreID,
		Category:               item.Category,
		CurrentInventory:       item.InventoryLevel,
		DemandForecast:         item.DemandForecast,
		AdjustedDemandForecast: adjusted,
		StockStatus:            status,
		// Compares the raw forecast, not the adjusted one: the flag answers
		// "does baseline demand already exceed what we hold".
		ExpectedDemandIncrease: item.DemandForecast > item.InventoryLevel,
		RiskScore:              risk,
		Recommendation:         Recommendation(status, item.InventoryLevel, adjusted, risk),
		RevenueImpact:          RevenueImpact(item.InventoryLevel, adjusted, item.Price),
		// Presentation-only synthetic confidence, not a statistical interval.
		Confidence:  0.75 + e.randomFloat()*0.2,
		LastUpdated: e.now(),
	}
}

// AssessBatch assesses every item independently, preserving input order.
func (e *Engine) AssessBatch(items []domain.InventoryItem) []domain.Assessment {
	assessments := make([]domain.Assessment, len(items))
	for i, item := range items {
		assessments[i] = e.Assess(item)
	}

	return assessments
}

// randomFloat serializes access to the rng; *rand.Rand is not safe for
// concurrent use.
func (e *Engine) randomFloat() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.rng.Float64()
}

func defaultLabel(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
