package scanner

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crypto-sentiment-bot/internal/domain"
)

const dexPair = `{
  "chainId": "solana",
  "pairAddress": "PairAddr",
  "baseToken": {"address": "TokenMint", "name": "Dog Wif Hat", "symbol": "WIF"},
  "priceUsd": "2.315",
  "txns": {"m5": {"buys": 31, "sells": 12}, "h1": {"buys": 400, "sells": 350}},
  "volume": {"m5": 18250.5, "h1": 220000},
  "priceChange": {"m5": -0.42, "h1": 1.2},
  "liquidity": {"usd": 1250000.75, "base": 1, "quote": 2},
  "pairCreatedAt": 1700000000000
}`

func TestNormalizeDexScreenerPair(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(dexPair), &raw))

	snap := Normalize(raw)
	assert.Equal(t, "WIF", snap.Symbol)
	assert.Equal(t, "Dog Wif Hat", snap.Name)
	assert.Equal(t, "TokenMint", snap.Address)
	assert.Equal(t, 2.315, snap.PriceUSD)
	assert.Equal(t, 1250000.75, snap.LiquidityUSD)
	assert.Equal(t, 18250.5, snap.Volume5m)
	assert.Equal(t, 43.0, snap.Txns5m)
	assert.Equal(t, -0.42, snap.Change5m)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), snap.CreatedAt)
}

func TestNormalizeFlatAliases(t *testing.T) {
	snap := Normalize(map[string]any{
		"ticker":        "BONK",
		"mint":          "BonkMint",
		"price":         0.00002,
		"liquidity_usd": "50000",
		"volume_5m":     1200,
		"txns_5m":       int64(17),
		"change_5m":     "1.5",
		"created_at":    "2025-03-01T12:00:00Z",
	})
	assert.Equal(t, "BONK", snap.Symbol)
	assert.Equal(t, "BonkMint", snap.Address)
	assert.Equal(t, 0.00002, snap.PriceUSD)
	assert.Equal(t, 50000.0, snap.LiquidityUSD)
	assert.Equal(t, 1200.0, snap.Volume5m)
	assert.Equal(t, 17.0, snap.Txns5m)
	assert.Equal(t, 1.5, snap.Change5m)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), snap.CreatedAt)
}

func TestNormalizeMissingFieldsDefaultToZero(t *testing.T) {
	snap := Normalize(map[string]any{"address": "X", "priceUsd": "not-a-number", "liquidity": map[string]any{}})
	assert.Equal(t, "X", snap.Address)
	assert.Zero(t, snap.PriceUSD)
	assert.Zero(t, snap.LiquidityUSD)
	assert.Zero(t, snap.Volume5m)
	assert.Zero(t, snap.Txns5m)
	assert.Zero(t, snap.Change5m)
	assert.True(t, snap.CreatedAt.IsZero())
}

func TestNormalizeAllSkipsAddressless(t *testing.T) {
	out := NormalizeAll([]map[string]any{{"symbol": "NOADDR"}, {"address": "A", "symbol": "OK"}})
	require.Len(t, out, 1)
	assert.Equal(t, "OK", out[0].Symbol)
}

func TestCreatedAtEpochSeconds(t *testing.T) {
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), createdAt(float64(1700000000)))
}

func TestNormalizeNonFiniteBecomesZero(t *testing.T) {
	raw := map[string]any{
		"pairAddress": "p1",
		"baseToken":   map[string]any{"symbol": "BAD", "address": "bad"},
		"priceUsd":    "NaN",
		"liquidity":   map[string]any{"usd": "NaN"},
		"volume":      map[string]any{"m5": "+Inf"},
		"txns":        map[string]any{"m5": map[string]any{"buys": 10.0, "sells": 5.0}},
		"priceChange": map[string]any{"m5": "-Infinity"},
	}
	snap := Normalize(raw)
	assert.Zero(t, snap.PriceUSD)
	assert.Zero(t, snap.LiquidityUSD)
	assert.Zero(t, snap.Volume5m)
	assert.Zero(t, snap.Change5m)

	svc := NewService(nil, NewScorer(DefaultParams()), nil)
	ranked := svc.Rank([]domain.TokenSnapshot{snap})
	require.Len(t, ranked, 1)
	assert.GreaterOrEqual(t, ranked[0].Score, 0.0)
	assert.LessOrEqual(t, ranked[0].Score, 100.0)
	assert.False(t, ranked[0].Signal.Actionable)

	_, err := json.Marshal(ranked)
	assert.NoError(t, err)
}
