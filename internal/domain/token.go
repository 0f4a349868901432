package domain

import "time"

// TokenSnapshot is the canonical per-token activity record from the token feed.
type TokenSnapshot struct {
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	PriceUSD     float64   `json:"price_usd"`
	LiquidityUSD float64   `json:"liquidity_usd"`
	Volume5m     float64   `json:"volume_5m"`
	Txns5m       float64   `json:"txns_5m"`
	Change5m     float64   `json:"change_5m"`
	CreatedAt    time.Time `json:"created_at"`
}

// ScalpSignal is the scanner's fast trade idea for one token.
// When Actionable is false every level equals Entry.
type ScalpSignal struct {
	Side       Side    `json:"side"`
	Entry      float64 `json:"entry"`
	TP1        float64 `json:"tp1"`
	TP2        float64 `json:"tp2"`
	SL         float64 `json:"sl"`
	ATRPct     float64 `json:"atr_pct"`
	Actionable bool    `json:"actionable"`
}
