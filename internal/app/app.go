package app

import (
	"context"
	"time"

	"crypto-sentiment-bot/internal/cache"
	"crypto-sentiment-bot/internal/config"
	"crypto-sentiment-bot/internal/metrics"
	"crypto-sentiment-bot/internal/news"
	"crypto-sentiment-bot/internal/provider"
	"crypto-sentiment-bot/internal/scanner"
	"crypto-sentiment-bot/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// App holds the services shared by the server, the SSH TUI and the CLI.
type App struct {
	Prices    *service.PriceService
	Analysis  *service.AnalysisService
	Scanner   *scanner.Service
	Watchlist *scanner.Watchlist
	Metrics   *metrics.Recorder

	redis *redis.Client
}

var connectRedis = cache.Connect

// Build wires providers and services from cfg. A Redis failure is logged
// and memoization is disabled.
func Build(ctx context.Context, cfg *config.Config, model config.Model, tracer trace.Tracer, reg prometheus.Registerer) *App {
	timeout := time.Duration(cfg.SourceTimeoutSecs) * time.Second
	rec := metrics.New(reg)

	client, err := connectRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, price memoization disabled")
		client = nil
	}
	var rc service.RedisClient
	if client != nil {
		rc = client
	}

	prices := service.NewPriceService(
		tracer,
		provider.NewCoinGeckoProvider(tracer, timeout),
		rc,
		time.Duration(cfg.PriceCacheSecs)*time.Second,
		time.Duration(cfg.ChartCacheSecs)*time.Second,
	)

	aggregator := news.NewAggregator(
		news.DefaultSources(provider.NewRSSProvider(tracer, timeout)),
		news.Options{MaxItems: cfg.NewsMaxItems, Timeout: timeout, Reorder: true},
		tracer,
		rec,
	)

	var translator service.Translator
	if t := provider.NewOpenAITranslator(cfg.OpenAIAPIKey, cfg.OpenAIModel, tracer); t != nil {
		translator = t
	}

	analysisSvc := service.NewAnalysisService(
		tracer, prices, aggregator, translator, rec, model.Analysis,
		service.ChartSettings{Days: cfg.ChartDays, Interval: cfg.ChartInterval},
	)

	scans := scanner.NewService(
		provider.NewDexScreenerProvider(tracer, timeout),
		scanner.NewScorer(model.Scanner),
		tracer,
	)

	return &App{
		Prices:    prices,
		Analysis:  analysisSvc,
		Scanner:   scans,
		Watchlist: scanner.NewWatchlist(),
		Metrics:   rec,
		redis:     client,
	}
}

func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing redis client")
		}
	}
}
