package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto-sentiment-bot/internal/app"
	"crypto-sentiment-bot/internal/bot"
	"crypto-sentiment-bot/internal/config"
	"crypto-sentiment-bot/internal/handler"
	"crypto-sentiment-bot/internal/job"
	"crypto-sentiment-bot/pkg/logging"
	"crypto-sentiment-bot/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "crypto-sentiment-bot/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	loadModelFunc          = config.LoadModel
	initLoggingFunc        = logging.Init
	initTracerFunc         = tracing.InitTracer
	buildAppFunc           = app.Build
	newScannerPollerFunc   = job.NewScannerPoller
	startPollerFunc        = func(p *job.ScannerPoller, ctx context.Context) { go p.Start(ctx) }
	startTelegramBotFunc   = bot.StartTelegramBot
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Crypto Sentiment Signal API
// @version         1.0
// @description     News sentiment to trade plan pipeline, P/L calculator and token activity scanner.

// @host      localhost:8080
// @BasePath  /
func main() {
	_ = loadEnvFunc()

	cfg := loadConfigFunc()
	if err := initLoggingFunc(cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		log.Warn().Err(err).Msg("invalid logging config, using defaults")
	}

	model, err := loadModelFunc(cfg.ModelConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load model config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx, cfg.TracingEnabled, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracer")
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("error shutting down tracer provider")
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a := buildAppFunc(ctx, cfg, model, tracer, reg)
	defer a.Close()

	// Background scan keeps the latest ranking and the watchlist fresh
	poller := newScannerPollerFunc(tracer, a.Scanner, a.Watchlist, a.Metrics, cfg.ScannerQuery, cfg.ScannerLimit, cfg.ScannerPollSecs)
	startPollerFunc(poller, ctx)

	cmds := bot.NewCommands(a.Analysis, a.Scanner, a.Watchlist, cfg.ScannerQuery)
	if b := startTelegramBotFunc(cfg.TelegramBotToken, cmds); b != nil {
		defer b.Stop()
	}

	h := handler.New(tracer, a.Analysis, a.Scanner, a.Watchlist, handler.ScanDefaults{
		Query: cfg.ScannerQuery,
		Limit: cfg.ScannerLimit,
	})
	h.SetAPIKey(cfg.APIKey)

	r := newRouterFunc()
	r.Use(otelgin.Middleware(tracing.ServiceName))

	h.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Info().Msg("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
