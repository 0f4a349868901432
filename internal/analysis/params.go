package analysis

import "fmt"

// Params holds the tunable constants of the pipeline. The breakpoints and
// multipliers have no derivation behind them, so they stay configurable.
type Params struct {
	// sentiment -> magnitude mapping
	Slope              float64 `yaml:"slope" json:"slope"`
	Intercept          float64 `yaml:"intercept" json:"intercept"`
	DirectionThreshold float64 `yaml:"direction_threshold" json:"direction_threshold"`

	// volatility
	DefaultVolatilityPct float64 `yaml:"default_volatility_pct" json:"default_volatility_pct"`
	MinSamples           int     `yaml:"min_samples" json:"min_samples"`

	// trade plan
	TierBreakpoints     []float64 `yaml:"tier_breakpoints" json:"tier_breakpoints"`
	BaseMultiplier      float64   `yaml:"base_multiplier" json:"base_multiplier"`
	TierStep            float64   `yaml:"tier_step" json:"tier_step"`
	MagnitudeWeight     float64   `yaml:"magnitude_weight" json:"magnitude_weight"`
	TakeProfitMultiples []float64 `yaml:"take_profit_multiples" json:"take_profit_multiples"`
	StopLossMultiple    float64   `yaml:"stop_loss_multiple" json:"stop_loss_multiple"`
	StopLossFloorPct    float64   `yaml:"stop_loss_floor_pct" json:"stop_loss_floor_pct"`

	// horizons
	HorizonFactors       []float64 `yaml:"horizon_factors" json:"horizon_factors"`
	HorizonMinVolatility float64   `yaml:"horizon_min_volatility" json:"horizon_min_volatility"`
	ScalpMaxHours        float64   `yaml:"scalp_max_hours" json:"scalp_max_hours"`
	IntradayMaxHours     float64   `yaml:"intraday_max_hours" json:"intraday_max_hours"`
	SwingMaxHours        float64   `yaml:"swing_max_hours" json:"swing_max_hours"`
}

func DefaultParams() Params {
	return Params{
		Slope:                2.0,
		Intercept:            0,
		DirectionThreshold:   0.05,
		DefaultVolatilityPct: 0.6,
		MinSamples:           5,
		TierBreakpoints:      []float64{0.2, 0.5, 0.9, 1.3},
		BaseMultiplier:       1.2,
		TierStep:             0.3,
		MagnitudeWeight:      0.2,
		TakeProfitMultiples:  []float64{2, 3.5, 5},
		StopLossMultiple:     1.5,
		StopLossFloorPct:     0.5,
		HorizonFactors:       []float64{1.2, 1.3, 1.4},
		HorizonMinVolatility: 0.2,
		ScalpMaxHours:        2,
		IntradayMaxHours:     8,
		SwingMaxHours:        36,
	}
}

// Validate rejects parameter sets that would break the plan ordering invariant.
func (p Params) Validate() error {
	if p.DirectionThreshold < 0 {
		return fmt.Errorf("direction_threshold must be >= 0, got %v", p.DirectionThreshold)
	}
	if p.DefaultVolatilityPct <= 0 {
		return fmt.Errorf("default_volatility_pct must be > 0, got %v", p.DefaultVolatilityPct)
	}
	if p.MinSamples < 2 {
		return fmt.Errorf("min_samples must be >= 2, got %d", p.MinSamples)
	}
	for i := 1; i < len(p.TierBreakpoints); i++ {
		if p.TierBreakpoints[i] <= p.TierBreakpoints[i-1] {
			return fmt.Errorf("tier_breakpoints must be strictly increasing: %v", p.TierBreakpoints)
		}
	}
	if len(p.TakeProfitMultiples) != 3 {
		return fmt.Errorf("take_profit_multiples needs 3 values, got %d", len(p.TakeProfitMultiples))
	}
	prev := 0.0
	for _, m := range p.TakeProfitMultiples {
		if m <= prev {
			return fmt.Errorf("take_profit_multiples must be positive and increasing: %v", p.TakeProfitMultiples)
		}
		prev = m
	}
	if len(p.HorizonFactors) != 3 {
		return fmt.Errorf("horizon_factors needs 3 values, got %d", len(p.HorizonFactors))
	}
	if p.BaseMultiplier <= 0 || p.StopLossMultiple <= 0 || p.StopLossFloorPct < 0 {
		return fmt.Errorf("multipliers must be positive")
	}
	if p.TierStep < 0 || p.MagnitudeWeight < 0 {
		return fmt.Errorf("tier_step and magnitude_weight must be >= 0, got %v and %v", p.TierStep, p.MagnitudeWeight)
	}
	if p.HorizonMinVolatility <= 0 {
		return fmt.Errorf("horizon_min_volatility must be > 0, got %v", p.HorizonMinVolatility)
	}
	if !(p.ScalpMaxHours < p.IntradayMaxHours && p.IntradayMaxHours < p.SwingMaxHours) {
		return fmt.Errorf("horizon buckets must be increasing")
	}
	return nil
}
