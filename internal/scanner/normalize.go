package scanner

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"crypto-sentiment-bot/internal/domain"
)

// Normalize maps one upstream token record onto a TokenSnapshot. It accepts
// DexScreener pair objects as well as flat records; any missing or
// unparsable numeric field becomes 0.
func Normalize(raw map[string]any) domain.TokenSnapshot {
	base, _ := raw["baseToken"].(map[string]any)

	return domain.TokenSnapshot{
		Symbol:       firstString(str(base, "symbol"), str(raw, "symbol"), str(raw, "ticker")),
		Name:         firstString(str(base, "name"), str(raw, "name")),
		Address:      firstString(str(base, "address"), str(raw, "address"), str(raw, "tokenAddress"), str(raw, "mint"), str(raw, "pairAddress")),
		PriceUSD:     firstNumber(raw, "priceUsd", "price_usd", "price"),
		LiquidityUSD: firstNumber(raw, "liquidity.usd", "liquidity_usd", "liquidityUsd", "liquidity"),
		Volume5m:     firstNumber(raw, "volume.m5", "volume_5m", "volume5m"),
		Txns5m:       txns5m(raw),
		Change5m:     firstNumber(raw, "priceChange.m5", "change_5m", "priceChange5m", "change5m"),
		CreatedAt:    createdAt(firstValue(raw, "pairCreatedAt", "created_at", "createdAt")),
	}
}

// NormalizeAll drops records without an address, since the watchlist keys on it.
func NormalizeAll(rows []map[string]any) []domain.TokenSnapshot {
	out := make([]domain.TokenSnapshot, 0, len(rows))
	for _, row := range rows {
		snap := Normalize(row)
		if snap.Address == "" {
			continue
		}
		out = append(out, snap)
	}
	return out
}

func txns5m(raw map[string]any) float64 {
	if m5, ok := lookup(raw, "txns.m5").(map[string]any); ok {
		return asFloat(m5["buys"]) + asFloat(m5["sells"])
	}
	return firstNumber(raw, "txns.m5", "txns_5m", "txns5m")
}

// lookup resolves a dotted path through nested objects.
func lookup(raw map[string]any, path string) any {
	var cur any = raw
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}

func firstValue(raw map[string]any, paths ...string) any {
	for _, p := range paths {
		if v := lookup(raw, p); v != nil {
			return v
		}
	}
	return nil
}

func firstNumber(raw map[string]any, paths ...string) float64 {
	for _, p := range paths {
		v := lookup(raw, p)
		if v == nil {
			continue
		}
		if _, nested := v.(map[string]any); nested {
			continue
		}
		return asFloat(v)
	}
	return 0
}

func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// asFloat reads a numeric field. Unparsable and non-finite values become 0.
func asFloat(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		f, _ = n.Float64()
	case string:
		f, _ = strconv.ParseFloat(strings.TrimSpace(n), 64)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// createdAt accepts epoch milliseconds, epoch seconds or RFC 3339.
func createdAt(v any) time.Time {
	if s, ok := v.(string); ok {
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(s)); err == nil {
			return t.UTC()
		}
	}
	n := asFloat(v)
	switch {
	case n <= 0:
		return time.Time{}
	case n > 1e12:
		return time.UnixMilli(int64(n)).UTC()
	default:
		return time.Unix(int64(n), 0).UTC()
	}
}
