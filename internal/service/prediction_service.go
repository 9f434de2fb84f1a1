package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopsight/inventory-ai/internal/domain"
	"github.com/shopsight/inventory-ai/internal/engine"
)

// PredictionService orchestrates batch assessments over the engine. The
// engine itself cannot fail on malformed items (defaults are substituted
// silently), so the only failure mode is an unexpected panic, which is
// converted to a single request-level error with no partial results.
type PredictionService struct {
	engine *engine.Engine
}

func NewPredictionService(e *engine.Engine) *PredictionService {
	if e == nil {
		e = engine.New()
	}
	return &PredictionService{engine: e}
}

// Predict assesses a batch, preserving input order and count.
func (s *PredictionService) Predict(ctx context.Context, items []domain.InventoryItem) (result []domain.Assessment, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Int("items", len(items)).Msg("prediction batch panicked")
			result = nil
			err = fmt.Errorf("assessment batch panicked: %v", r)
		}
	}()

	result = s.engine.AssessBatch(items)

	return result, nil
}

// Optimize sizes a batch, preserving input order and count. The returned
// float is the batch-total cost savings; recommendations only carry the
// items whose current level deviates from optimal by more than 20%.
func (s *PredictionService) Optimize(ctx context.Context, req domain.OptimizationRequest) (results []domain.OptimizationResult, totalSavings float64, recommendations []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Int("items", len(req.InventoryData)).Msg("optimization batch panicked")
			results = nil
			recommendations = nil
			totalSavings = 0
			err = fmt.Errorf("optimization batch panicked: %v", r)
		}
	}()

	if req.Target != "" && req.Target != "cost" {
		// Reserved extension point; accepted but not yet load-bearing.
		log.Warn().Str("target", req.Target).Msg("optimization target not supported, using cost")
	}

	results = engine.OptimizeBatch(req.InventoryData)

	recommendations = make([]string, 0, len(results))
	for _, r := range results {
		totalSavings += r.CostSavings
		if r.Recommendation != "" {
			recommendations = append(recommendations, r.Recommendation)
		}
	}

	return results, totalSavings, recommendations, nil
}
