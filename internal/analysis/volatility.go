package analysis

import (
	"math"
	"sort"

	"crypto-sentiment-bot/internal/domain"
)

// VolatilityEstimator returns the median absolute per-interval move in percent.
type VolatilityEstimator struct {
	defaultPct float64
	minSamples int
}

func NewVolatilityEstimator(p Params) *VolatilityEstimator {
	return &VolatilityEstimator{defaultPct: p.DefaultVolatilityPct, minSamples: p.MinSamples}
}

func (e *VolatilityEstimator) Estimate(series []domain.PriceSample) float64 {
	if len(series) < e.minSamples {
		return e.defaultPct
	}

	moves := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Price
		if prev <= 0 {
			continue
		}
		moves = append(moves, math.Abs((series[i].Price-prev)/prev))
	}
	if len(moves) == 0 {
		return e.defaultPct
	}
	return median(moves) * 100
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
