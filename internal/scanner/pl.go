package scanner

import (
	"fmt"
	"math"

	"crypto-sentiment-bot/internal/domain"
)

const (
	DefaultMargin   = 100.0
	DefaultLeverage = 1.0
)

// Priced returns a copy of s with the P/L of a margin x leverage position
// at TP1, TP2 and SL of every actionable token. s itself is not modified.
func (s *Scan) Priced(margin, leverage float64) (*Scan, error) {
	if !(margin > 0) || math.IsInf(margin, 0) {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	if !(leverage > 0) || math.IsInf(leverage, 0) {
		return nil, fmt.Errorf("%w: leverage must be positive", domain.ErrInvalidInput)
	}
	if s == nil {
		return nil, nil
	}
	out := *s
	out.Notional = margin * leverage
	out.Tokens = make([]Ranked, len(s.Tokens))
	for i, r := range s.Tokens {
		r.Outcomes = Outcomes(r.Signal, out.Notional)
		out.Tokens[i] = r
	}
	return &out, nil
}
