package analysis

import (
	"math"

	"crypto-sentiment-bot/internal/domain"
)

var takeProfitLabels = [3]domain.LevelLabel{domain.LevelTP1, domain.LevelTP2, domain.LevelTP3}

// PlanBuilder turns a price, side, volatility and magnitude into priced levels.
type PlanBuilder struct {
	p Params
}

func NewPlanBuilder(p Params) *PlanBuilder {
	return &PlanBuilder{p: p}
}

// RiskTier buckets |magnitude| into 1..len(breakpoints)+1.
func (b *PlanBuilder) RiskTier(magnitude float64) int {
	abs := math.Abs(magnitude)
	for i, bp := range b.p.TierBreakpoints {
		if abs < bp {
			return i + 1
		}
	}
	return len(b.p.TierBreakpoints) + 1
}

func (b *PlanBuilder) multiplier(tier int, magnitude float64) float64 {
	return b.p.BaseMultiplier + b.p.TierStep*float64(tier-1) + b.p.MagnitudeWeight*math.Abs(magnitude)
}

// Build is pure. side must be LONG or SHORT. Volatility below
// HorizonMinVolatility is raised to it so take-profits stay strictly ordered.
func (b *PlanBuilder) Build(price float64, side domain.Side, volatilityPct, magnitude float64) domain.TradePlan {
	volatilityPct = math.Max(volatilityPct, b.p.HorizonMinVolatility)
	tier := b.RiskTier(magnitude)
	m := b.multiplier(tier, magnitude)
	sign := side.Sign()

	plan := domain.TradePlan{
		Side:       side,
		Entry:      price,
		Volatility: volatilityPct,
		RiskTier:   tier,
		Multiplier: m,
		Horizons:   make(map[domain.LevelLabel]domain.Horizon, 3),
	}

	for i, label := range takeProfitLabels {
		pct := volatilityPct * b.p.TakeProfitMultiples[i] * m
		plan.Levels[i] = domain.TradeLevel{
			Label:   label,
			Price:   price * (1 + sign*pct/100),
			MovePct: pct,
		}
		plan.Horizons[label] = b.horizon(pct, volatilityPct, b.p.HorizonFactors[i])
	}

	slPct := math.Max(volatilityPct*b.p.StopLossMultiple*m, b.p.StopLossFloorPct)
	plan.Levels[3] = domain.TradeLevel{
		Label:   domain.LevelSL,
		Price:   price * (1 - sign*slPct/100),
		MovePct: slPct,
	}
	return plan
}

func (b *PlanBuilder) horizon(movePct, volatilityPct, factor float64) domain.Horizon {
	hours := movePct / math.Max(volatilityPct, b.p.HorizonMinVolatility) * factor
	label := domain.HorizonPositional
	switch {
	case hours <= b.p.ScalpMaxHours:
		label = domain.HorizonScalp
	case hours <= b.p.IntradayMaxHours:
		label = domain.HorizonIntraday
	case hours <= b.p.SwingMaxHours:
		label = domain.HorizonSwing
	}
	return domain.Horizon{Label: label, Hours: hours}
}
