package main

import (
	"context"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"crypto-sentiment-bot/internal/app"
	"crypto-sentiment-bot/internal/config"
	"crypto-sentiment-bot/internal/job"
	"crypto-sentiment-bot/internal/tui"
	"crypto-sentiment-bot/pkg/logging"
	"crypto-sentiment-bot/pkg/tracing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	gossh "golang.org/x/crypto/ssh"
)

var (
	loadEnvFunc          = godotenv.Load
	loadConfigFunc       = config.Load
	loadModelFunc        = config.LoadModel
	initLoggingFunc      = logging.Init
	initTracerFunc       = tracing.InitTracer
	buildAppFunc         = app.Build
	newScannerPollerFunc = job.NewScannerPoller
	startPollerFunc      = func(p *job.ScannerPoller, ctx context.Context) { go p.Start(ctx) }
	newWishServerFunc    = wish.NewServer
	setupSignalNotify    = ossignal.Notify
	waitForSignalFunc    = func(quit <-chan os.Signal) { <-quit }
)

// keyAllowed admits any key when allowed is empty.
func keyAllowed(allowed []string, fingerprint string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, fp := range allowed {
		if fp == fingerprint {
			return true
		}
	}
	return false
}

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

	a := buildAppFunc(ctx, cfg, model, tracer, prometheus.NewRegistry())
	defer a.Close()

	poller := newScannerPollerFunc(tracer, a.Scanner, a.Watchlist, a.Metrics, cfg.ScannerQuery, cfg.ScannerLimit, cfg.ScannerPollSecs)
	startPollerFunc(poller, ctx)

	addr := fmt.Sprintf("%s:%d", cfg.SSHHost, cfg.SSHPort)

	srv, err := newWishServerFunc(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(cfg.SSHHostKeyPath),
		wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			fingerprint := gossh.FingerprintSHA256(key)
			if !keyAllowed(cfg.SSHAllowedKeys, fingerprint) {
				log.Warn().Str("user", ctx.User()).Str("fingerprint", fingerprint).Msg("SSH auth denied")
				return false
			}
			log.Info().Str("user", ctx.User()).Str("fingerprint", fingerprint).Msg("SSH auth accepted")
			return true
		}),
		wish.WithMiddleware(
			bubbletea.Middleware(func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
				m := tui.NewAppModel(tui.Services{
					Analyzer:  a.Analysis,
					Scanner:   a.Scanner,
					ScanQuery: cfg.ScannerQuery,
					ScanLimit: cfg.ScannerLimit,
					Username:  s.User(),
				})
				pty, _, _ := s.Pty()
				m.SetSize(pty.Window.Width, pty.Window.Height)

				return m, []tea.ProgramOption{tea.WithAltScreen()}
			}),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create SSH server")
	}

	if srv != nil {
		go func() {
			log.Info().Str("addr", addr).Msg("SSH server listening")
			if err := srv.ListenAndServe(); err != nil {
				log.Info().Err(err).Msg("SSH server stopped")
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Info().Msg("Shutting down SSH server...")

	cancel()

	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("SSH server shutdown error")
		}
	}

	log.Info().Msg("SSH server exited")
}
