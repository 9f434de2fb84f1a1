package engine

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopsight/inventory-ai/internal/domain"
)

const epsilon = 1e-9

func testEngine() *Engine {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewWithSource(rand.New(rand.NewSource(1)), func() time.Time { return fixed })
}

func TestMultiplierLookups(t *testing.T) {
	testCases := []struct {
		name     string
		lookup   func(string) float64
		label    string
		expected float64
	}{
		{"weather sunny", WeatherMultiplier, "sunny", 1.1},
		{"weather mixed case", WeatherMultiplier, "SnOwY", 0.7},
		{"weather unknown", WeatherMultiplier, "foggy", 1.0},
		{"weather empty", WeatherMultiplier, "", 1.0},
		{"holiday black friday", HolidayMultiplier, "BLACK_FRIDAY", 1.8},
		{"holiday none", HolidayMultiplier, "none", 1.0},
		{"holiday unknown", HolidayMultiplier, "easter", 1.0},
		{"season summer", SeasonMultiplier, "Summer", 1.2},
		{"season unknown", SeasonMultiplier, "monsoon", 1.0},
		{"category food", CategoryMultiplier, "Food", 0.8},
		{"category unknown", CategoryMultiplier, "toys", 1.0},
	}

	for _, tc := range testCases {
		if got := tc.lookup(tc.label); got != tc.expected {
			t.Errorf("%s: got %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

func TestAdjustedDemandComposesMultiplicatively(t *testing.T) {
	item := domain.InventoryItem{
		DemandForecast:     100,
		WeatherCondition:   "sunny",
		HolidayOrPromotion: "christmas",
		Seasonality:        "winter",
	}

	expected := 100 * 1.1 * 1.5 * 0.9
	if got := AdjustedDemand(item); math.Abs(got-expected) > epsilon {
		t.Errorf("AdjustedDemand = %v, expected %v", got, expected)
	}
}

func TestAdjustedDemandNeutralDefaults(t *testing.T) {
	item := domain.InventoryItem{DemandForecast: 42}
	if got := AdjustedDemand(item); got != 42 {
		t.Errorf("AdjustedDemand with empty labels = %v, expected 42", got)
	}
}

func TestClassifyStock(t *testing.T) {
	testCases := []struct {
		name      string
		inventory float64
		demand    float64
		expected  domain.StockStatus
	}{
		{"critical understock", 10, 100, domain.StatusCriticalUnderstocked},
		{"understock", 50, 100, domain.StatusUnderstocked},
		{"normal", 100, 100, domain.StatusNormal},
		{"overstock", 160, 100, domain.StatusOverstocked},
		{"critical overstock", 250, 100, domain.StatusCriticalOverstocked},

		// Boundary values are classification-order sensitive: all four
		// thresholds use strict comparisons.
		{"exactly 0.3x falls to understock", 30, 100, domain.StatusUnderstocked},
		{"exactly 0.7x falls to normal", 70, 100, domain.StatusNormal},
		{"exactly 1.5x stays normal", 150, 100, domain.StatusNormal},
		{"exactly 2.0x stays overstock check", 200, 100, domain.StatusOverstocked},

		{"zero demand zero inventory", 0, 0, domain.StatusNormal},
		{"zero demand positive inventory", 1, 0, domain.StatusCriticalOverstocked},
	}

	for _, tc := range testCases {
		if got := ClassifyStock(tc.inventory, tc.demand); got != tc.expected {
			t.Errorf("%s: ClassifyStock(%v, %v) = %s, expected %s",
				tc.name, tc.inventory, tc.demand, got, tc.expected)
		}
	}
}

func TestRiskScoreWorkedExample(t *testing.T) {
	// inventory 10, adjusted demand 100, price 50:
	// stockout (100-10)/100 = 0.9, overstock 0, priceFactor 0.5
	// -> min(1, 0.9*0.6*0.5) = 0.27
	got := RiskScore(10, 100, 50)
	if math.Abs(got-0.27) > epsilon {
		t.Errorf("RiskScore = %v, expected 0.27", got)
	}
}

func TestRiskScoreClamped(t *testing.T) {
	testCases := []struct {
		name      string
		inventory float64
		demand    float64
		price     float64
	}{
		{"extreme stockout", 0, 1e6, 1e6},
		{"extreme overstock", 1e9, 1, 500},
		{"zero demand", 100, 0, 300},
		{"zero everything", 0, 0, 0},
	}

	for _, tc := range testCases {
		got := RiskScore(tc.inventory, tc.demand, tc.price)
		if got < 0 || got > 1 {
			t.Errorf("%s: RiskScore = %v, out of [0,1]", tc.name, got)
		}
	}
}

func TestRiskScoreZeroDemandIsZero(t *testing.T) {
	if got := RiskScore(100, 0, 50); got != 0 {
		t.Errorf("RiskScore with zero demand = %v, expected 0", got)
	}
}

func TestRevenueImpact(t *testing.T) {
	impact := RevenueImpact(10, 100, 50)

	if impact.PotentialRevenue != 500 {
		t.Errorf("PotentialRevenue = %v, expected 500", impact.PotentialRevenue)
	}
	if impact.LostRevenue != 4500 {
		t.Errorf("LostRevenue = %v, expected 4500", impact.LostRevenue)
	}
	if math.Abs(impact.Efficiency-0.1) > epsilon {
		t.Errorf("Efficiency = %v, expected 0.1", impact.Efficiency)
	}
}

func TestRevenueImpactZeroDemandEfficiency(t *testing.T) {
	for _, inventory := range []float64{0, 50, 1000} {
		impact := RevenueImpact(inventory, 0, 25)
		if impact.Efficiency != 1.0 {
			t.Errorf("Efficiency with zero demand (inventory %v) = %v, expected 1.0",
				inventory, impact.Efficiency)
		}
	}
}

func TestAssessEndToEnd(t *testing.T) {
	e := testEngine()

	item := domain.InventoryItem{
		ProductID:          "P001",
		InventoryLevel:     10,
		DemandForecast:     100,
		Price:              50,
		WeatherCondition:   "normal",
		HolidayOrPromotion: "none",
		Seasonality:        "regular",
	}

	a := e.Assess(item)

	if a.AdjustedDemandForecast != 100 {
		t.Errorf("AdjustedDemandForecast = %v, expected 100", a.AdjustedDemandForecast)
	}
	if a.StockStatus != domain.StatusCriticalUnderstocked {
		t.Errorf("StockStatus = %s, expected CRITICAL_UNDERSTOCKED", a.StockStatus)
	}
	if math.Abs(a.RiskScore-0.27) > epsilon {
		t.Errorf("RiskScore = %v, expected 0.27", a.RiskScore)
	}
	if !a.ExpectedDemandIncrease {
		t.Error("ExpectedDemandIncrease = false, expected true")
	}
	if a.Confidence < 0.75 || a.Confidence >= 0.95 {
		t.Errorf("Confidence = %v, out of [0.75, 0.95)", a.Confidence)
	}
	if a.LastUpdated.IsZero() {
		t.Error("LastUpdated is zero")
	}
	if a.Recommendation == "" {
		t.Error("Recommendation is empty")
	}
}

func TestAssessBatchPreservesOrder(t *testing.T) {
	e := testEngine()

	items := []domain.InventoryItem{
		{ProductID: "A", InventoryLevel: 10, DemandForecast: 100},
		{ProductID: "B", InventoryLevel: 100, DemandForecast: 100},
		{ProductID: "C", InventoryLevel: 500, DemandForecast: 100},
	}

	assessments := e.AssessBatch(items)

	if len(assessments) != len(items) {
		t.Fatalf("got %d assessments for %d items", len(assessments), len(items))
	}
	for i, item := range items {
		if assessments[i].ProductID != item.ProductID {
			t.Errorf("assessment %d has productId %s, expected %s",
				i, assessments[i].ProductID, item.ProductID)
		}
	}
}

func TestRecommendationPerStatus(t *testing.T) {
	testCases := []struct {
		status   domain.StockStatus
		contains string
	}{
		{domain.StatusCriticalUnderstocked, "Urgent reorder"},
		{domain.StatusUnderstocked, "Increase inventory"},
		{domain.StatusOverstocked, "Reduce inventory"},
		{domain.StatusCriticalOverstocked, "promotional activities"},
		{domain.StatusNormal, "Maintain current inventory"},
	}

	for _, tc := range testCases {
		got := Recommendation(tc.status, 50, 100, 0.5)
		if got == "" {
			t.Errorf("%s: empty recommendation", tc.status)
			continue
		}
		if !containsFold(got, tc.contains) {
			t.Errorf("%s: recommendation %q does not mention %q", tc.status, got, tc.contains)
		}
	}
}

func TestUnderstockedRecommendationSuggestsRoundedIncrease(t *testing.T) {
	// adjusted demand 100, inventory 60 -> suggested increase 40 units
	got := Recommendation(domain.StatusUnderstocked, 60, 100, 0.2)
	if !containsFold(got, "40 units") {
		t.Errorf("recommendation %q does not suggest 40 units", got)
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func TestAssessExpectedDemandIncreaseUsesRawForecast(t *testing.T) {
	e := testEngine()

	// Multipliers push the adjusted forecast above inventory, but the raw
	// forecast does not exceed it: the flag stays false.
	inflated := e.Assess(domain.InventoryItem{
		InventoryLevel:     100,
		DemandForecast:     100,
		WeatherCondition:   "sunny",
		HolidayOrPromotion: "christmas",
		Seasonality:        "summer",
	})
	if inflated.AdjustedDemandForecast <= inflated.CurrentInventory {
		t.Fatalf("AdjustedDemandForecast = %v, expected above inventory 100",
			inflated.AdjustedDemandForecast)
	}
	if inflated.ExpectedDemandIncrease {
		t.Error("ExpectedDemandIncrease = true, expected false for raw forecast 100 vs inventory 100")
	}

	// Converse: raw forecast exceeds inventory while the adjusted one falls
	// below it.
	deflated := e.Assess(domain.InventoryItem{
		InventoryLevel:   99,
		DemandForecast:   100,
		WeatherCondition: "rainy",
		Seasonality:      "winter",
	})
	if deflated.AdjustedDemandForecast >= deflated.CurrentInventory {
		t.Fatalf("AdjustedDemandForecast = %v, expected below inventory 99",
			deflated.AdjustedDemandForecast)
	}
	if !deflated.ExpectedDemandIncrease {
		t.Error("ExpectedDemandIncrease = false, expected true for raw forecast 100 vs inventory 99")
	}
}

func TestAssessConcurrent(t *testing.T) {
	e := New()
	item := domain.InventoryItem{
		ProductID:      "P001",
		InventoryLevel: 50,
		DemandForecast: 100,
		Price:          25,
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				a := e.Assess(item)
				if a.Confidence < 0.75 || a.Confidence >= 0.95 {
					t.Errorf("Confidence = %v, out of [0.75, 0.95)", a.Confidence)
					return
				}
			}
		}()
	}
	wg.Wait()
}
