package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"crypto-sentiment-bot/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoProvider fetches spot prices, market charts and contract lookups
// from the CoinGecko free API.
type CoinGeckoProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
	breaker *Breaker
}

// NewCoinGeckoProvider creates a provider limited to 8 requests per minute
// (one token every 7.5 seconds).
func NewCoinGeckoProvider(tracer trace.Tracer, timeout time.Duration) *CoinGeckoProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CoinGeckoProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: coingeckoBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(8, 7500*time.Millisecond),
		breaker: NewBreaker("coingecko"),
	}
}

// FetchPrice returns the USD spot price of a CoinGecko id.
// A missing or non-positive price wraps domain.ErrNoPriceAvailable.
func (p *CoinGeckoProvider) FetchPrice(ctx context.Context, id string) (float64, error) {
	ctx, span := p.tracer.Start(ctx, "coingecko.fetch-price")
	defer span.End()
	span.SetAttributes(attribute.String("asset.id", id))

	u := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", p.baseURL, url.QueryEscape(id))
	body, err := p.doRequest(ctx, u)
	if err != nil {
		return 0, fmt.Errorf("fetch price for %s: %w", id, err)
	}

	// Response shape: {"bitcoin": {"usd": 97000}}
	var raw map[string]map[string]float64
	if err := json.Unmarshal(body, &raw); err != nil {
		return 0, fmt.Errorf("parse price for %s: %w", id, err)
	}
	price, ok := raw[id]["usd"]
	if !ok || price <= 0 {
		return 0, fmt.Errorf("%w: coingecko has no usd price for %q", domain.ErrNoPriceAvailable, id)
	}
	return price, nil
}

// FetchMarketChart returns the close of every interval bucket over the last days.
// days=1 gives ~5min source granularity, enough for 5m/15m/1h buckets.
func (p *CoinGeckoProvider) FetchMarketChart(ctx context.Context, id string, days int, interval string) ([]domain.PriceSample, error) {
	ctx, span := p.tracer.Start(ctx, "coingecko.fetch-market-chart")
	defer span.End()
	span.SetAttributes(attribute.String("asset.id", id), attribute.Int("days", days), attribute.String("interval", interval))

	step := intervalToDuration(interval)
	if step == 0 {
		return nil, fmt.Errorf("%w: unsupported interval %q", domain.ErrInvalidInput, interval)
	}
	if days <= 0 {
		days = 1
	}

	u := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d", p.baseURL, url.PathEscape(id), days)
	body, err := p.doRequest(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch market chart for %s: %w", id, err)
	}

	var raw struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse market chart for %s: %w", id, err)
	}
	return bucketCloses(raw.Prices, step), nil
}

// ResolveContract looks a contract address up on each supported chain; first hit wins.
func (p *CoinGeckoProvider) ResolveContract(ctx context.Context, address string) (domain.Asset, bool, error) {
	ctx, span := p.tracer.Start(ctx, "coingecko.resolve-contract")
	defer span.End()

	var lastErr error
	for _, chain := range domain.ContractChains {
		u := fmt.Sprintf("%s/coins/%s/contract/%s", p.baseURL, chain, url.PathEscape(address))
		body, err := p.doRequest(ctx, u)
		if err != nil {
			if !errors.Is(err, errNotFound) {
				lastErr = err
			}
			continue
		}

		var coin struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(body, &coin); err != nil {
			lastErr = fmt.Errorf("parse contract %s on %s: %w", address, chain, err)
			continue
		}
		if coin.ID == "" {
			continue
		}
		span.SetAttributes(attribute.String("chain", chain), attribute.String("asset.id", coin.ID))
		return domain.Asset{ID: coin.ID, Name: coin.Name, Resolved: true}, true, nil
	}
	return domain.Asset{}, false, lastErr
}

func (p *CoinGeckoProvider) doRequest(ctx context.Context, u string) ([]byte, error) {
	return getBody(ctx, p.client, p.limiter, p.breaker, "coingecko", u, "application/json")
}

// bucketCloses floors each point to its interval boundary and keeps the last
// price seen per bucket, in time order.
func bucketCloses(prices [][]float64, step time.Duration) []domain.PriceSample {
	if len(prices) == 0 {
		return nil
	}

	sorted := make([][]float64, 0, len(prices))
	for _, pt := range prices {
		if len(pt) >= 2 {
			sorted = append(sorted, pt)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i][0] < sorted[j][0] })

	closes := make(map[int64]float64)
	keys := make([]int64, 0)
	for _, pt := range sorted {
		bucketTS := time.UnixMilli(int64(pt[0])).Truncate(step).UnixMilli()
		if _, seen := closes[bucketTS]; !seen {
			keys = append(keys, bucketTS)
		}
		closes[bucketTS] = pt[1]
	}

	out := make([]domain.PriceSample, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.PriceSample{Timestamp: time.UnixMilli(k).UTC(), Price: closes[k]})
	}
	return out
}

func intervalToDuration(interval string) time.Duration {
	switch strings.ToLower(strings.TrimSpace(interval)) {
	case "5m":
		return 5 * time.Minute
	case "15m":
		return 15 * time.Minute
	case "1h":
		return time.Hour
	case "4h":
		return 4 * time.Hour
	case "1d":
		return 24 * time.Hour
	default:
		return 0
	}
}
