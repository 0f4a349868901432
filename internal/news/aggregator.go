package news

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"crypto-sentiment-bot/internal/domain"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMaxItems = 30
	DefaultTimeout  = 8 * time.Second
)

// FailureRecorder counts absorbed source failures.
type FailureRecorder interface {
	SourceFailure(source string)
}

type Options struct {
	MaxItems int
	Timeout  time.Duration
	// Reorder moves items mentioning the query ahead of the rest.
	Reorder bool
}

// Aggregator fans out to every source, absorbs failures and merges the results.
type Aggregator struct {
	sources  []Source
	opts     Options
	tracer   trace.Tracer
	failures FailureRecorder
}

func NewAggregator(sources []Source, opts Options, tracer trace.Tracer, failures FailureRecorder) *Aggregator {
	if opts.MaxItems <= 0 {
		opts.MaxItems = DefaultMaxItems
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Aggregator{sources: sources, opts: opts, tracer: tracer, failures: failures}
}

// Aggregate never fails and never returns an empty slice: with nothing
// collected it returns the no-results placeholder.
func (a *Aggregator) Aggregate(ctx context.Context, query string) []domain.NewsItem {
	ctx, span := a.tracer.Start(ctx, "news.aggregate")
	defer span.End()

	perSource := make([][]domain.NewsItem, len(a.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range a.sources {
		g.Go(func() error {
			perSource[i] = a.fetchOne(gctx, src, query)
			return nil
		})
	}
	_ = g.Wait()

	// source order, not completion order, decides which duplicate survives
	var merged []domain.NewsItem
	for _, items := range perSource {
		merged = append(merged, items...)
	}

	out := Dedup(merged)
	if a.opts.Reorder {
		out = ReorderByRelevance(out, query)
	}
	if len(out) == 0 {
		out = []domain.NewsItem{domain.NoResultsItem(query)}
	}
	if len(out) > a.opts.MaxItems {
		out = out[:a.opts.MaxItems]
	}
	span.SetAttributes(attribute.Int("news.collected", len(merged)), attribute.Int("news.kept", len(out)))
	return out
}

func (a *Aggregator) fetchOne(ctx context.Context, src Source, query string) []domain.NewsItem {
	ctx, cancel := context.WithTimeout(ctx, a.opts.Timeout)
	defer cancel()

	items, err := src.Fetch(ctx, query)
	if err != nil {
		log.Warn().Err(err).Str("source", src.Name()).Str("query", query).Msg("news source unavailable")
		if a.failures != nil {
			a.failures.SourceFailure(src.Name())
		}
		return nil
	}
	return items
}

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// NormalizeTitle lowercases and strips every non-word character.
func NormalizeTitle(title string) string {
	return nonWord.ReplaceAllString(strings.ToLower(title), "")
}

// Dedup keeps the first item for each normalized title.
func Dedup(items []domain.NewsItem) []domain.NewsItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		key := NormalizeTitle(item.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// ReorderByRelevance is a stable partition: items whose title or body
// contains query (case-insensitive) come first.
func ReorderByRelevance(items []domain.NewsItem, query string) []domain.NewsItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := append([]domain.NewsItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return mentions(out[i], q) && !mentions(out[j], q)
	})
	return out
}

func mentions(item domain.NewsItem, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(item.Title+" "+item.Body), lowerQuery)
}
