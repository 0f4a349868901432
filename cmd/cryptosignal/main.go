package main

import (
	"context"
	"os"

	"crypto-sentiment-bot/internal/app"
	"crypto-sentiment-bot/internal/bot"
	"crypto-sentiment-bot/internal/config"
	"crypto-sentiment-bot/pkg/logging"
	"crypto-sentiment-bot/pkg/tracing"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const version = "v1.0.0"

// notifier delivers a finished report; satisfied by bot.Fanout.
type notifier interface {
	Notify(ctx context.Context, text string) error
}

var (
	loadEnvFunc     = godotenv.Load
	loadConfigFunc  = config.Load
	loadModelFunc   = config.LoadModel
	initLoggingFunc = logging.Init
	initTracerFunc  = tracing.InitTracer
	buildAppFunc    = app.Build
	newNotifierFunc = func(cfg *config.Config) (notifier, error) {
		return bot.NewFanout(cfg.TelegramBotToken, cfg.TelegramChatID, cfg.DiscordWebhook)
	}
	exitFunc = os.Exit
)

func main() {
	_ = loadEnvFunc()
	cfg := loadConfigFunc()
	format := cfg.LogFormat
	if os.Getenv("LOG_FORMAT") == "" {
		format = "console"
	}
	if err := initLoggingFunc(cfg.LogLevel, format, os.Stderr); err != nil {
		log.Warn().Err(err).Msg("invalid logging config, using defaults")
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		exitFunc(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "cryptosignal",
		Short:         "News sentiment trade signals and token activity scans",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newAnalyzeCmd(cfg),
		newScanCmd(cfg),
		newPLCmd(),
		newCoinsCmd(),
	)
	return root
}

// runtime bundles what a command needs and how to release it.
type runtime struct {
	app     *app.App
	cleanup func()
}

func setup(ctx context.Context, cfg *config.Config) (*runtime, error) {
	model, err := loadModelFunc(cfg.ModelConfigPath)
	if err != nil {
		return nil, err
	}
	tp, tracer, err := initTracerFunc(ctx, cfg.TracingEnabled, cfg.OTLPEndpoint)
	if err != nil {
		return nil, err
	}
	a := buildAppFunc(ctx, cfg, model, tracer, prometheus.NewRegistry())
	return &runtime{
		app: a,
		cleanup: func() {
			a.Close()
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Debug().Err(err).Msg("tracer shutdown")
			}
		},
	}, nil
}
