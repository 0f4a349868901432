package job

import (
	"context"
	"time"

	"crypto-sentiment-bot/internal/domain"
	"crypto-sentiment-bot/internal/scanner"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type TokenScanner interface {
	Scan(ctx context.Context, query string, limit int) (*scanner.Scan, error)
}

type ScanRecorder interface {
	ScannerTokens(n int)
	StageDuration(stage string, d time.Duration)
}

// ScannerPoller periodically re-runs the token scan so the latest ranking
// and the watchlist snapshots stay fresh.
type ScannerPoller struct {
	tracer       trace.Tracer
	scans        TokenScanner
	watchlist    *scanner.Watchlist
	metrics      ScanRecorder
	query        string
	limit        int
	pollInterval time.Duration
}

func NewScannerPoller(tracer trace.Tracer, scans TokenScanner, watchlist *scanner.Watchlist, metrics ScanRecorder, query string, limit, pollIntervalSecs int) *ScannerPoller {
	if pollIntervalSecs <= 0 {
		pollIntervalSecs = 30
	}
	return &ScannerPoller{
		tracer:       tracer,
		scans:        scans,
		watchlist:    watchlist,
		metrics:      metrics,
		query:        query,
		limit:        limit,
		pollInterval: time.Duration(pollIntervalSecs) * time.Second,
	}
}

// Start polls until ctx is cancelled.
func (p *ScannerPoller) Start(ctx context.Context) {
	log.Info().Str("query", p.query).Dur("interval", p.pollInterval).Msg("scanner poller starting")
	p.pollLoop(ctx, p.pollInterval, p.runOnce)
	log.Info().Msg("scanner poller stopped")
}

func (p *ScannerPoller) pollLoop(ctx context.Context, interval time.Duration, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		log.Warn().Err(err).Msg("scanner poller initial run failed")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := fn(ctx); err != nil {
				log.Warn().Err(err).Msg("scanner poller run failed")
			}
		}
	}
}

func (p *ScannerPoller) runOnce(ctx context.Context) error {
	ctx, span := p.tracer.Start(ctx, "job.scanner-poll")
	defer span.End()

	started := time.Now()
	s, err := p.scans.Scan(ctx, p.query, p.limit)
	if err != nil {
		return err
	}
	p.metrics.StageDuration("scan", time.Since(started))
	p.metrics.ScannerTokens(len(s.Tokens))

	tokens := make([]domain.TokenSnapshot, 0, len(s.Tokens))
	for _, r := range s.Tokens {
		tokens = append(tokens, r.Token)
	}
	refreshed := 0
	if p.watchlist != nil {
		refreshed = p.watchlist.Refresh(tokens)
	}
	span.SetAttributes(attribute.Int("tokens", len(tokens)), attribute.Int("watchlist.refreshed", refreshed))
	log.Debug().Int("tokens", len(tokens)).Int("refreshed", refreshed).Msg("scan refreshed")
	return nil
}
