package analysis

import (
	"fmt"
	"math"

	"crypto-sentiment-bot/internal/domain"
)

const (
	maxAutoLeverage = 5
	maxUserLeverage = 10
)

// Evaluate computes the P/L of closing pos at target.
func Evaluate(pos domain.Position, target float64) domain.PLResult {
	move := (target - pos.EntryPrice) / pos.EntryPrice
	return domain.PLResult{
		TargetPrice: target,
		Amount:      move * pos.Notional * pos.Side.Sign(),
		Pct:         move * 100,
	}
}

// EvaluatePlan runs Evaluate against every level of the plan, in plan order.
func EvaluatePlan(plan domain.TradePlan, notional float64) []domain.LevelOutcome {
	pos := domain.Position{EntryPrice: plan.Entry, Notional: notional, Side: plan.Side}
	out := make([]domain.LevelOutcome, 0, len(plan.Levels))
	for _, level := range plan.Levels {
		out = append(out, domain.LevelOutcome{Level: level, PL: Evaluate(pos, level.Price)})
	}
	return out
}

// NewPosition validates calculator input and builds a position with notional = amount x leverage.
func NewPosition(entry, amount, leverage float64, side domain.Side) (domain.Position, error) {
	if !(entry > 0) || math.IsInf(entry, 0) {
		return domain.Position{}, fmt.Errorf("%w: entry price must be positive", domain.ErrInvalidInput)
	}
	if !(amount > 0) || math.IsInf(amount, 0) {
		return domain.Position{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	if !(leverage > 0) || math.IsInf(leverage, 0) {
		return domain.Position{}, fmt.Errorf("%w: leverage must be positive", domain.ErrInvalidInput)
	}
	if side != domain.SideLong && side != domain.SideShort {
		return domain.Position{}, fmt.Errorf("%w: side must be LONG or SHORT", domain.ErrInvalidInput)
	}
	return domain.Position{EntryPrice: entry, Notional: amount * leverage, Side: side}, nil
}

// ValidateTarget rejects non-positive target prices.
func ValidateTarget(target float64) error {
	if !(target > 0) || math.IsInf(target, 0) {
		return fmt.Errorf("%w: target price must be positive", domain.ErrInvalidInput)
	}
	return nil
}

// SuggestLeverage scales with the predicted magnitude, 1x..5x.
// A positive user value wins and is clamped to 1x..10x.
func SuggestLeverage(magnitude, user float64) int {
	if user > 0 {
		return clampInt(int(user), 1, maxUserLeverage)
	}
	return clampInt(int(math.Abs(magnitude)*10), 1, maxAutoLeverage)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
