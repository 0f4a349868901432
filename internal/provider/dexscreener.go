package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const dexscreenerBaseURL = "https://api.dexscreener.com"

// DexScreenerProvider searches DexScreener pairs. Pairs are returned as raw
// JSON objects; field normalization belongs to the scanner.
type DexScreenerProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
	breaker *Breaker
}

// NewDexScreenerProvider is limited to the documented 300 requests per minute.
func NewDexScreenerProvider(tracer trace.Tracer, timeout time.Duration) *DexScreenerProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DexScreenerProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: dexscreenerBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(300, 200*time.Millisecond),
		breaker: NewBreaker("dexscreener"),
	}
}

func (p *DexScreenerProvider) SearchPairs(ctx context.Context, query string) ([]map[string]any, error) {
	ctx, span := p.tracer.Start(ctx, "dexscreener.search-pairs")
	defer span.End()
	span.SetAttributes(attribute.String("query", query))

	u := fmt.Sprintf("%s/latest/dex/search?q=%s", p.baseURL, url.QueryEscape(query))
	body, err := getBody(ctx, p.client, p.limiter, p.breaker, "dexscreener", u, "application/json")
	if err != nil {
		return nil, fmt.Errorf("search pairs %q: %w", query, err)
	}

	var raw struct {
		Pairs []map[string]any `json:"pairs"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse pairs %q: %w", query, err)
	}
	span.SetAttributes(attribute.Int("pairs", len(raw.Pairs)))
	return raw.Pairs, nil
}
