package domain

import (
	"fmt"
	"strings"
)

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// Prediction is the predictor's view of the next move.
type Prediction struct {
	Direction Direction `json:"direction"`
	Magnitude float64   `json:"magnitude"`
}

type Side string

const (
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
	SideHold  Side = "HOLD"
)

// ParseSide accepts long or short in any case. HOLD is an outcome, not an input.
func ParseSide(v string) (Side, error) {
	switch Side(strings.ToUpper(strings.TrimSpace(v))) {
	case SideLong:
		return SideLong, nil
	case SideShort:
		return SideShort, nil
	}
	return "", fmt.Errorf("%w: side must be LONG or SHORT, got %q", ErrInvalidInput, v)
}

// Sign is +1 for LONG, -1 for SHORT and 0 otherwise.
func (s Side) Sign() float64 {
	switch s {
	case SideLong:
		return 1
	case SideShort:
		return -1
	default:
		return 0
	}
}

type LevelLabel string

const (
	LevelTP1 LevelLabel = "TP1"
	LevelTP2 LevelLabel = "TP2"
	LevelTP3 LevelLabel = "TP3"
	LevelSL  LevelLabel = "SL"
)

// TradeLevel is a priced take-profit or stop-loss.
type TradeLevel struct {
	Label   LevelLabel `json:"label"`
	Price   float64    `json:"price"`
	MovePct float64    `json:"move_pct"`
}

// Horizon is the advisory holding-time estimate for a take-profit level.
type Horizon struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

const (
	HorizonScalp      = "scalp"
	HorizonIntraday   = "intraday"
	HorizonSwing      = "swing"
	HorizonPositional = "positional"
)

// TradePlan holds TP1, TP2, TP3 and SL in that order.
type TradePlan struct {
	Side       Side                   `json:"side"`
	Entry      float64                `json:"entry"`
	Volatility float64                `json:"volatility_pct"`
	RiskTier   int                    `json:"risk_tier"`
	Multiplier float64                `json:"multiplier"`
	Levels     [4]TradeLevel          `json:"levels"`
	Horizons   map[LevelLabel]Horizon `json:"horizons"`
}

// Level returns the level with the given label.
func (p TradePlan) Level(label LevelLabel) (TradeLevel, bool) {
	for _, l := range p.Levels {
		if l.Label == label {
			return l, true
		}
	}
	return TradeLevel{}, false
}

// Position is a hypothetical user position for the P/L calculator.
type Position struct {
	EntryPrice float64 `json:"entry_price"`
	Notional   float64 `json:"notional"`
	Side       Side    `json:"side"`
}

// PLResult is the outcome of closing a position at a target price.
type PLResult struct {
	TargetPrice float64 `json:"target_price"`
	Amount      float64 `json:"pl_amount"`
	Pct         float64 `json:"pl_pct"`
}

// LevelOutcome pairs a plan level with its P/L.
type LevelOutcome struct {
	Level TradeLevel `json:"level"`
	PL    PLResult   `json:"pl"`
}
