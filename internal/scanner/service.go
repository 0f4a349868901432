package scanner

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"crypto-sentiment-bot/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PairSource searches the upstream token feed.
type PairSource interface {
	SearchPairs(ctx context.Context, query string) ([]map[string]any, error)
}

// Ranked is a scored token with its scalp signal.
type Ranked struct {
	Token    domain.TokenSnapshot  `json:"token"`
	Score    float64               `json:"score"`
	Signal   domain.ScalpSignal    `json:"signal"`
	Outcomes []domain.LevelOutcome `json:"outcomes,omitempty"`
}

// Scan is one ranked pass over the token feed.
type Scan struct {
	Query     string    `json:"query"`
	Tokens    []Ranked  `json:"tokens"`
	ScannedAt time.Time `json:"scanned_at"`
	Notional  float64   `json:"notional,omitempty"`
}

type Service struct {
	source PairSource
	scorer *Scorer
	tracer trace.Tracer

	mu     sync.RWMutex
	latest *Scan
}

func NewService(source PairSource, scorer *Scorer, tracer trace.Tracer) *Service {
	return &Service{source: source, scorer: scorer, tracer: tracer}
}

// Scan fetches, normalizes, scores and ranks tokens by activity, keeping at
// most limit entries. The result becomes the latest scan.
func (s *Service) Scan(ctx context.Context, query string, limit int) (*Scan, error) {
	ctx, span := s.tracer.Start(ctx, "scanner.scan")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	rows, err := s.source.SearchPairs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", query, err)
	}

	ranked := s.Rank(dedupeByAddress(NormalizeAll(rows)))
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	span.SetAttributes(attribute.Int("scanner.rows", len(rows)), attribute.Int("scanner.ranked", len(ranked)))

	scan := &Scan{Query: query, Tokens: ranked, ScannedAt: time.Now().UTC()}
	s.mu.Lock()
	s.latest = scan
	s.mu.Unlock()
	return scan, nil
}

// Rank scores every token and sorts by descending score, ties by symbol.
func (s *Service) Rank(tokens []domain.TokenSnapshot) []Ranked {
	out := make([]Ranked, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, Ranked{Token: t, Score: s.scorer.Score(t), Signal: s.scorer.Signal(t)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Token.Symbol < out[j].Token.Symbol
	})
	return out
}

// Latest returns the most recent scan, or nil before the first one.
func (s *Service) Latest() *Scan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Service) Scorer() *Scorer { return s.scorer }

// a token trades on many pairs; keep the first (most relevant) one
func dedupeByAddress(tokens []domain.TokenSnapshot) []domain.TokenSnapshot {
	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, t := range tokens {
		if _, ok := seen[t.Address]; ok {
			continue
		}
		seen[t.Address] = struct{}{}
		out = append(out, t)
	}
	return out
}
