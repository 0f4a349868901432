package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"crypto-sentiment-bot/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultPriceTTL = 60 * time.Second
	DefaultChartTTL = 5 * time.Minute
)

// MarketProvider is the pricing API.
type MarketProvider interface {
	FetchPrice(ctx context.Context, id string) (float64, error)
	FetchMarketChart(ctx context.Context, id string, days int, interval string) ([]domain.PriceSample, error)
	ResolveContract(ctx context.Context, address string) (domain.Asset, bool, error)
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// PriceService resolves assets and memoizes price lookups in Redis.
// A nil RedisClient disables memoization.
type PriceService struct {
	tracer   trace.Tracer
	provider MarketProvider
	redis    RedisClient
	priceTTL time.Duration
	chartTTL time.Duration
}

func NewPriceService(
	tracer trace.Tracer,
	provider MarketProvider,
	redisClient RedisClient,
	priceTTL, chartTTL time.Duration,
) *PriceService {
	if priceTTL <= 0 {
		priceTTL = DefaultPriceTTL
	}
	if chartTTL <= 0 {
		chartTTL = DefaultChartTTL
	}
	return &PriceService{
		tracer:   tracer,
		provider: provider,
		redis:    redisClient,
		priceTTL: priceTTL,
		chartTTL: chartTTL,
	}
}

// Resolve maps a display name, ticker, CoinGecko id or contract address to
// an asset. Unresolvable input passes through as the id with Resolved=false.
func (s *PriceService) Resolve(ctx context.Context, input string) (domain.Asset, error) {
	ctx, span := s.tracer.Start(ctx, "price-service.resolve")
	defer span.End()

	input = strings.TrimSpace(input)
	if input == "" {
		return domain.Asset{}, domain.ErrEmptyQuery
	}
	if asset, ok := domain.LookupCatalogue(input); ok {
		return asset, nil
	}
	if !domain.LooksLikeContract(input) {
		return domain.Asset{ID: strings.ToLower(input), Name: input}, nil
	}

	key := "asset:" + strings.ToLower(input)
	var cached domain.Asset
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}

	asset, found, err := s.provider.ResolveContract(ctx, input)
	if err != nil {
		log.Warn().Err(err).Str("address", input).Msg("contract resolution failed")
	}
	if !found {
		return domain.Asset{ID: input, Name: input}, nil
	}
	span.SetAttributes(attribute.String("asset.id", asset.ID))
	s.writeCache(ctx, key, asset, s.chartTTL)
	return asset, nil
}

type cachedPrice struct {
	USD       float64   `json:"usd"`
	FetchedAt time.Time `json:"fetched_at"`
}

// CurrentPrice returns the USD price, from cache when fresh.
func (s *PriceService) CurrentPrice(ctx context.Context, id string) (float64, error) {
	ctx, span := s.tracer.Start(ctx, "price-service.current-price")
	defer span.End()

	key := "price:" + id
	var cached cachedPrice
	if s.readCache(ctx, key, &cached) && cached.USD > 0 {
		return cached.USD, nil
	}

	price, err := s.provider.FetchPrice(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNoPriceAvailable) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", domain.ErrNoPriceAvailable, err)
	}
	s.writeCache(ctx, key, cachedPrice{USD: price, FetchedAt: time.Now().UTC()}, s.priceTTL)
	return price, nil
}

// PriceSeries returns the market-chart closes for id.
func (s *PriceService) PriceSeries(ctx context.Context, id string, days int, interval string) ([]domain.PriceSample, error) {
	ctx, span := s.tracer.Start(ctx, "price-service.price-series")
	defer span.End()

	key := fmt.Sprintf("chart:%s:%d:%s", id, days, interval)
	var cached []domain.PriceSample
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}

	series, err := s.provider.FetchMarketChart(ctx, id, days, interval)
	if err != nil {
		return nil, err
	}
	if len(series) > 0 {
		s.writeCache(ctx, key, series, s.chartTTL)
	}
	return series, nil
}

func (s *PriceService) readCache(ctx context.Context, key string, dst any) bool {
	if s.redis == nil {
		return false
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache read error")
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache decode error")
		return false
	}
	return true
}

func (s *PriceService) writeCache(ctx context.Context, key string, v any, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache write error")
	}
}
