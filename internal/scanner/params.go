package scanner

import "fmt"

// Params are the scanner's activity thresholds and level multipliers.
type Params struct {
	LiquidityThreshold float64 `yaml:"liquidity_threshold" json:"liquidity_threshold"`
	VolumeThreshold    float64 `yaml:"volume_threshold" json:"volume_threshold"`
	TxnsThreshold      float64 `yaml:"txns_threshold" json:"txns_threshold"`
	LiquidityWeight    float64 `yaml:"liquidity_weight" json:"liquidity_weight"`
	VolumeWeight       float64 `yaml:"volume_weight" json:"volume_weight"`
	TxnsWeight         float64 `yaml:"txns_weight" json:"txns_weight"`

	ATRMinPct     float64 `yaml:"atr_min_pct" json:"atr_min_pct"`
	ATRMaxPct     float64 `yaml:"atr_max_pct" json:"atr_max_pct"`
	ActivityTxns  float64 `yaml:"activity_txns" json:"activity_txns"`
	ActivityBoost float64 `yaml:"activity_boost" json:"activity_boost"`

	TP1Multiple float64 `yaml:"tp1_multiple" json:"tp1_multiple"`
	TP2Multiple float64 `yaml:"tp2_multiple" json:"tp2_multiple"`
	SLMultiple  float64 `yaml:"sl_multiple" json:"sl_multiple"`
	SLFloorPct  float64 `yaml:"sl_floor_pct" json:"sl_floor_pct"`
}

func DefaultParams() Params {
	return Params{
		LiquidityThreshold: 20000,
		VolumeThreshold:    5000,
		TxnsThreshold:      50,
		LiquidityWeight:    0.25,
		VolumeWeight:       0.35,
		TxnsWeight:         0.40,
		ATRMinPct:          0.4,
		ATRMaxPct:          12,
		ActivityTxns:       60,
		ActivityBoost:      0.7,
		TP1Multiple:        0.6,
		TP2Multiple:        1.2,
		SLMultiple:         0.5,
		SLFloorPct:         0.5,
	}
}

func (p Params) Validate() error {
	if p.LiquidityThreshold <= 0 || p.VolumeThreshold <= 0 || p.TxnsThreshold <= 0 || p.ActivityTxns <= 0 {
		return fmt.Errorf("scanner thresholds must be positive")
	}
	if p.ATRMinPct <= 0 || p.ATRMaxPct < p.ATRMinPct {
		return fmt.Errorf("scanner atr bounds invalid: [%v, %v]", p.ATRMinPct, p.ATRMaxPct)
	}
	if !(p.TP1Multiple > 0 && p.TP2Multiple > p.TP1Multiple && p.SLMultiple > 0) {
		return fmt.Errorf("scanner level multiples must be positive with tp2 > tp1")
	}
	return nil
}
