package scanner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crypto-sentiment-bot/internal/domain"
)

func TestScoreSaturatesAtThresholds(t *testing.T) {
	s := NewScorer(DefaultParams())
	snap := domain.TokenSnapshot{LiquidityUSD: 20000, Volume5m: 5000, Txns5m: 50}
	assert.Equal(t, 100.0, s.Score(snap))

	snap = domain.TokenSnapshot{LiquidityUSD: 1e9, Volume5m: 1e9, Txns5m: 1e6}
	assert.Equal(t, 100.0, s.Score(snap))
}

func TestScorePartial(t *testing.T) {
	s := NewScorer(DefaultParams())
	// 0.25*50 + 0.35*20 + 0.40*10
	snap := domain.TokenSnapshot{LiquidityUSD: 10000, Volume5m: 1000, Txns5m: 5}
	assert.InDelta(t, 23.5, s.Score(snap), 1e-9)
	assert.Equal(t, 0.0, s.Score(domain.TokenSnapshot{}))
}

func TestSide(t *testing.T) {
	assert.Equal(t, domain.SideLong, Side(domain.TokenSnapshot{Change5m: 0, Txns5m: 1}))
	assert.Equal(t, domain.SideLong, Side(domain.TokenSnapshot{Change5m: 3, Txns5m: 4}))
	assert.Equal(t, domain.SideShort, Side(domain.TokenSnapshot{Change5m: -0.1}))
	assert.Equal(t, domain.SideHold, Side(domain.TokenSnapshot{Change5m: 2, Txns5m: 0}))
}

func TestATRPctClamped(t *testing.T) {
	s := NewScorer(DefaultParams())
	assert.Equal(t, 0.4, s.ATRPct(domain.TokenSnapshot{LiquidityUSD: 1e6, Volume5m: 1}))
	assert.Equal(t, 12.0, s.ATRPct(domain.TokenSnapshot{LiquidityUSD: 100, Volume5m: 1000, Txns5m: 100}))
	// 500/20000*100 = 2.5, activity 30/60 -> x1.35
	assert.InDelta(t, 3.375, s.ATRPct(domain.TokenSnapshot{LiquidityUSD: 20000, Volume5m: 500, Txns5m: 30}), 1e-9)
}

func TestSignalLong(t *testing.T) {
	s := NewScorer(DefaultParams())
	sig := s.Signal(domain.TokenSnapshot{PriceUSD: 2, LiquidityUSD: 20000, Volume5m: 500, Txns5m: 30, Change5m: 1})

	require.True(t, sig.Actionable)
	assert.Equal(t, domain.SideLong, sig.Side)
	assert.InDelta(t, 2*(1+0.6*3.375/100), sig.TP1, 1e-12)
	assert.InDelta(t, 2*(1+1.2*3.375/100), sig.TP2, 1e-12)
	assert.InDelta(t, 2*(1-0.5*3.375/100), sig.SL, 1e-12)
	assert.Less(t, sig.SL, sig.Entry)
	assert.Less(t, sig.Entry, sig.TP1)
	assert.Less(t, sig.TP1, sig.TP2)
}

func TestSignalShortUsesStopFloor(t *testing.T) {
	s := NewScorer(DefaultParams())
	sig := s.Signal(domain.TokenSnapshot{PriceUSD: 10, LiquidityUSD: 1e6, Volume5m: 10, Change5m: -2})

	require.True(t, sig.Actionable)
	assert.Equal(t, 0.4, sig.ATRPct)
	// 0.5*0.4 = 0.2 < floor 0.5
	assert.InDelta(t, 10.05, sig.SL, 1e-12)
	assert.Greater(t, sig.Entry, sig.TP1)
	assert.Greater(t, sig.TP1, sig.TP2)
}

func TestSignalHoldCollapses(t *testing.T) {
	s := NewScorer(DefaultParams())
	for _, snap := range []domain.TokenSnapshot{
		{PriceUSD: 5, Change5m: 1, Txns5m: 0},
		{PriceUSD: 0, Change5m: 1, Txns5m: 10},
	} {
		sig := s.Signal(snap)
		assert.False(t, sig.Actionable)
		assert.Equal(t, snap.PriceUSD, sig.TP1)
		assert.Equal(t, snap.PriceUSD, sig.TP2)
		assert.Equal(t, snap.PriceUSD, sig.SL)
		assert.Nil(t, Outcomes(sig, 100))
	}
}

func TestSignalNonFinitePriceNotActionable(t *testing.T) {
	s := NewScorer(DefaultParams())
	for _, price := range []float64{math.NaN(), math.Inf(1), -3} {
		sig := s.Signal(domain.TokenSnapshot{PriceUSD: price, Change5m: 1, Txns5m: 10})
		assert.False(t, sig.Actionable, "price %v", price)
		assert.Nil(t, Outcomes(sig, 100))
	}
	assert.Zero(t, s.Score(domain.TokenSnapshot{LiquidityUSD: math.NaN(), Volume5m: math.NaN(), Txns5m: math.NaN()}))
}

func TestOutcomes(t *testing.T) {
	s := NewScorer(DefaultParams())
	sig := s.Signal(domain.TokenSnapshot{PriceUSD: 1, LiquidityUSD: 20000, Volume5m: 500, Txns5m: 30, Change5m: -1})
	out := Outcomes(sig, 1000)
	require.Len(t, out, 3)
	assert.Greater(t, out[0].PL.Amount, 0.0)
	assert.Greater(t, out[1].PL.Amount, out[0].PL.Amount)
	assert.Less(t, out[2].PL.Amount, 0.0)
	assert.Equal(t, domain.LevelSL, out[2].Level.Label)
}

func TestParamsValidate(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())
	p := DefaultParams()
	p.TP2Multiple = p.TP1Multiple
	assert.Error(t, p.Validate())
	p = DefaultParams()
	p.ATRMaxPct = 0.1
	assert.Error(t, p.Validate())
}
