package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"crypto-sentiment-bot/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, v any) *http.Response {
	data, _ := json.Marshal(v)
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     make(http.Header),
	}
}

func newTestCoinGecko(fn roundTripFunc) *CoinGeckoProvider {
	p := NewCoinGeckoProvider(trace.NewNoopTracerProvider().Tracer("test"), time.Second)
	p.baseURL = "http://example"
	p.client = &http.Client{Transport: fn}
	p.limiter = NewRateLimiter(10, time.Millisecond)
	return p
}

func TestBucketCloses(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	prices := [][]float64{
		{float64(base.Add(6 * time.Minute).UnixMilli()), 8},
		{float64(base.UnixMilli()), 10},
		{float64(base.Add(2 * time.Minute).UnixMilli()), 12},
		{float64(base.Add(8 * time.Minute).UnixMilli()), 9},
		{1},
	}

	series := bucketCloses(prices, 5*time.Minute)
	if len(series) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(series))
	}
	if !series[0].Timestamp.Equal(base) || series[0].Price != 12 {
		t.Fatalf("unexpected first sample: %+v", series[0])
	}
	if !series[1].Timestamp.Equal(base.Add(5*time.Minute)) || series[1].Price != 9 {
		t.Fatalf("unexpected second sample: %+v", series[1])
	}
}

func TestIntervalToDuration(t *testing.T) {
	tests := map[string]time.Duration{
		"5m":  5 * time.Minute,
		"15m": 15 * time.Minute,
		"1h":  time.Hour,
		"1H":  time.Hour,
		"4h":  4 * time.Hour,
		"1d":  24 * time.Hour,
		"bad": 0,
	}
	for interval, expected := range tests {
		if got := intervalToDuration(interval); got != expected {
			t.Fatalf("%s expected %v, got %v", interval, expected, got)
		}
	}
}

func TestCoinGeckoProviderFetchPrice(t *testing.T) {
	t.Parallel()

	p := newTestCoinGecko(func(req *http.Request) (*http.Response, error) {
		if !strings.Contains(req.URL.Path, "/simple/price") {
			t.Fatalf("unexpected path: %s", req.URL.Path)
		}
		if req.URL.Query().Get("ids") != "bitcoin" {
			t.Fatalf("unexpected ids: %s", req.URL.RawQuery)
		}
		return jsonResponse(http.StatusOK, map[string]map[string]float64{"bitcoin": {"usd": 97000}}), nil
	})

	price, err := p.FetchPrice(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 97000 {
		t.Fatalf("expected 97000, got %v", price)
	}
}

func TestCoinGeckoProviderFetchPriceMissing(t *testing.T) {
	t.Parallel()

	p := newTestCoinGecko(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, map[string]any{}), nil
	})

	_, err := p.FetchPrice(context.Background(), "not-a-coin")
	if !errors.Is(err, domain.ErrNoPriceAvailable) {
		t.Fatalf("expected ErrNoPriceAvailable, got %v", err)
	}
}

func TestCoinGeckoProviderFetchPriceUpstreamError(t *testing.T) {
	t.Parallel()

	p := newTestCoinGecko(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests, map[string]string{"error": "slow down"}), nil
	})

	_, err := p.FetchPrice(context.Background(), "bitcoin")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 status error, got %v", err)
	}
}

func TestCoinGeckoProviderFetchMarketChart(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p := newTestCoinGecko(func(req *http.Request) (*http.Response, error) {
		if !strings.Contains(req.URL.Path, "/coins/bitcoin/market_chart") {
			t.Fatalf("unexpected path: %s", req.URL.Path)
		}
		if req.URL.Query().Get("days") != "1" {
			t.Fatalf("unexpected days: %s", req.URL.RawQuery)
		}
		return jsonResponse(http.StatusOK, map[string]any{
			"prices": [][]float64{
				{float64(now.Add(-2 * time.Hour).UnixMilli()), 10},
				{float64(now.Add(-time.Hour).UnixMilli()), 11},
				{float64(now.UnixMilli()), 12},
			},
		}), nil
	})

	series, err := p.FetchMarketChart(context.Background(), "bitcoin", 1, "1h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("expected 3 hourly samples, got %d", len(series))
	}
	for i := 1; i < len(series); i++ {
		if !series[i].Timestamp.After(series[i-1].Timestamp) {
			t.Fatalf("series not time ordered: %+v", series)
		}
	}
}

func TestCoinGeckoProviderFetchMarketChartBadInterval(t *testing.T) {
	t.Parallel()

	p := newTestCoinGecko(func(req *http.Request) (*http.Response, error) {
		t.Fatalf("no request expected")
		return nil, nil
	})
	if _, err := p.FetchMarketChart(context.Background(), "bitcoin", 1, "7m"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCoinGeckoProviderResolveContract(t *testing.T) {
	t.Parallel()

	var chains []string
	p := newTestCoinGecko(func(req *http.Request) (*http.Response, error) {
		parts := strings.Split(strings.Trim(req.URL.Path, "/"), "/")
		// coins/{chain}/contract/{address}
		chain := parts[1]
		chains = append(chains, chain)
		if chain != "binance-smart-chain" {
			return jsonResponse(http.StatusNotFound, map[string]string{"error": "coin not found"}), nil
		}
		return jsonResponse(http.StatusOK, map[string]string{"id": "pancakeswap-token", "name": "PancakeSwap"}), nil
	})

	asset, ok, err := p.ResolveContract(context.Background(), "0x0e09fabb73bd3ade0a17ecc321fd13a19e81ce82")
	if err != nil || !ok {
		t.Fatalf("expected resolved asset, got ok=%v err=%v", ok, err)
	}
	if asset.ID != "pancakeswap-token" || !asset.Resolved {
		t.Fatalf("unexpected asset: %+v", asset)
	}
	if strings.Join(chains, ",") != "ethereum,binance-smart-chain" {
		t.Fatalf("unexpected chain order: %v", chains)
	}
}

func TestCoinGeckoProviderResolveContractNotFound(t *testing.T) {
	t.Parallel()

	p := newTestCoinGecko(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, map[string]string{"error": "coin not found"}), nil
	})

	_, ok, err := p.ResolveContract(context.Background(), "0xdeadbeefdeadbeefdeadbeef")
	if ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
	if p.breaker.Open() {
		t.Fatal("404s must not trip the breaker")
	}
}
