package scanner

import (
	"math"

	"crypto-sentiment-bot/internal/analysis"
	"crypto-sentiment-bot/internal/domain"
)

// Scorer rates token activity and derives a quick scalping signal.
type Scorer struct {
	p Params
}

func NewScorer(p Params) *Scorer {
	return &Scorer{p: p}
}

// Score returns the weighted activity score in [0, 100].
func (s *Scorer) Score(t domain.TokenSnapshot) float64 {
	return s.p.LiquidityWeight*component(t.LiquidityUSD, s.p.LiquidityThreshold) +
		s.p.VolumeWeight*component(t.Volume5m, s.p.VolumeThreshold) +
		s.p.TxnsWeight*component(t.Txns5m, s.p.TxnsThreshold)
}

func component(raw, threshold float64) float64 {
	if !(raw > 0) {
		return 0
	}
	return math.Min(100, raw/threshold*100)
}

// Side is LONG on a non-negative move with trades, SHORT on any negative move.
func Side(t domain.TokenSnapshot) domain.Side {
	switch {
	case t.Change5m >= 0 && t.Txns5m > 0:
		return domain.SideLong
	case t.Change5m < 0:
		return domain.SideShort
	default:
		return domain.SideHold
	}
}

// ATRPct is a volume/liquidity volatility proxy boosted by trade activity.
func (s *Scorer) ATRPct(t domain.TokenSnapshot) float64 {
	activity := clamp(t.Txns5m/s.p.ActivityTxns, 0, 1)
	raw := t.Volume5m / math.Max(1, t.LiquidityUSD) * 100 * (1 + s.p.ActivityBoost*activity)
	return clamp(raw, s.p.ATRMinPct, s.p.ATRMaxPct)
}

// Signal builds the scalp levels. HOLD or a missing price collapses every
// level onto entry and marks the signal non-actionable.
func (s *Scorer) Signal(t domain.TokenSnapshot) domain.ScalpSignal {
	side := Side(t)
	atr := s.ATRPct(t)
	sig := domain.ScalpSignal{
		Side:   side,
		Entry:  t.PriceUSD,
		TP1:    t.PriceUSD,
		TP2:    t.PriceUSD,
		SL:     t.PriceUSD,
		ATRPct: atr,
	}
	if side == domain.SideHold || !(t.PriceUSD > 0) || math.IsInf(t.PriceUSD, 0) {
		return sig
	}

	sign := side.Sign()
	slPct := math.Max(s.p.SLMultiple*atr, s.p.SLFloorPct)
	sig.TP1 = t.PriceUSD * (1 + sign*s.p.TP1Multiple*atr/100)
	sig.TP2 = t.PriceUSD * (1 + sign*s.p.TP2Multiple*atr/100)
	sig.SL = t.PriceUSD * (1 - sign*slPct/100)
	sig.Actionable = true
	return sig
}

// Outcomes evaluates a notional position against TP1, TP2 and SL.
// Non-actionable signals have no outcomes.
func Outcomes(sig domain.ScalpSignal, notional float64) []domain.LevelOutcome {
	if !sig.Actionable {
		return nil
	}
	pos := domain.Position{EntryPrice: sig.Entry, Notional: notional, Side: sig.Side}
	levels := []domain.TradeLevel{
		{Label: domain.LevelTP1, Price: sig.TP1},
		{Label: domain.LevelTP2, Price: sig.TP2},
		{Label: domain.LevelSL, Price: sig.SL},
	}
	out := make([]domain.LevelOutcome, 0, len(levels))
	for _, l := range levels {
		pl := analysis.Evaluate(pos, l.Price)
		l.MovePct = math.Abs(pl.Pct)
		out = append(out, domain.LevelOutcome{Level: l, PL: pl})
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
