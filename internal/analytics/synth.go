// internal/analytics/synth.go
package analytics

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Synthesizer produces the demo-only analytics feeds. Both outputs are
// explicitly synthetic: they are random draws for UI demonstration and are
// not derived from any submitted inventory. One synthesizer is shared
// across request goroutines, so the rng is mutex-guarded.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewSynthesizer() *Synthesizer {
	return NewSynthesizerWithSource(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

func NewSynthesizerWithSource(rng *rand.Rand, now func() time.Time) *Synthesizer {
	return &Synthesizer{rng: rng, now: now}
}

// RevenueForecast is a randomly synthesized revenue projection.
type RevenueForecast struct {
	CurrentRevenue    float64   `json:"currentRevenue"`
	ForecastedRevenue float64   `json:"forecastedRevenue"`
	GrowthRate        float64   `json:"growthRate"`
	Currency          string    `json:"currency"`
	Synthetic         bool      `json:"synthetic"`
	GeneratedAt       time.Time `json:"generatedAt"`
}

// StockAlert is a randomly synthesized alert record.
type StockAlert struct {
	ProductID      string `json:"productId"`
	ProductName    string `json:"productName"`
	StoreID        string `json:"storeId"`
	CurrentLevel   int    `json:"currentLevel"`
	AlertType      string `json:"alertType"`
	Severity       string `json:"severity"`
	Recommendation string `json:"recommendation"`
}

var alertTypes = []string{"LOW_STOCK", "OVERSTOCKED"}

var sampleProducts = []string{
	"Wireless Earbuds", "Desk Lamp", "Running Shoes", "Coffee Beans",
	"Office Chair", "Water Bottle", "Notebook", "Phone Case",
}

// RevenueForecast draws a random projection.
func (s *Synthesizer) RevenueForecast() RevenueForecast {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := 50000 + s.rng.Float64()*450000
	growth := -10 + s.rng.Float64()*30

	return RevenueForecast{
		CurrentRevenue:    round2(current),
		ForecastedRevenue: round2(current * (1 + growth/100)),
		GrowthRate:        round2(growth),
		Currency:          "USD",
		Synthetic:         true,
		GeneratedAt:       s.now(),
	}
}

// StockAlerts draws between 3 and 8 random alert records.
func (s *Synthesizer) StockAlerts() []StockAlert {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 3 + s.rng.Intn(6)
	alerts := make([]StockAlert, count)

	for i := range alerts {
		alertType := alertTypes[s.rng.Intn(len(alertTypes))]

		var level int
		severity := "WARNING"
		if alertType == "LOW_STOCK" {
			level = s.rng.Intn(10)
			if level < 5 {
				severity = "CRITICAL"
			}
		} else {
			level = 100 + s.rng.Intn(400)
			if level > 400 {
				severity = "CRITICAL"
			}
		}

		name := sampleProducts[s.rng.Intn(len(sampleProducts))]
		alerts[i] = StockAlert{
			ProductID:      productID(s.rng),
			ProductName:    name,
			StoreID:        storeID(s.rng),
			CurrentLevel:   level,
			AlertType:      alertType,
			Severity:       severity,
			Recommendation: alertRecommendation(alertType, name, level),
		}
	}

	return alerts
}

func alertRecommendation(alertType, name string, level int) string {
	if alertType == "LOW_STOCK" {
		return fmt.Sprintf("Urgent: Reorder %s immediately. Current stock: %d", name, level)
	}
	return fmt.Sprintf("Consider promotional activities for %s. Current stock: %d", name, level)
}

func productID(rng *rand.Rand) string {
	return fmt.Sprintf("P%04d", rng.Intn(10000))
}

func storeID(rng *rand.Rand) string {
	return fmt.Sprintf("S%03d", 1+rng.Intn(50))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
