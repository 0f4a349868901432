package news

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"crypto-sentiment-bot/internal/domain"
)

type stubSource struct {
	name  string
	items []domain.NewsItem
	err   error
	delay time.Duration
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Fetch(ctx context.Context, _ string) ([]domain.NewsItem, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.items, s.err
}

type countingRecorder struct {
	mu     sync.Mutex
	failed []string
}

func (c *countingRecorder) SourceFailure(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failed = append(c.failed, source)
}

func newTestAggregator(opts Options, rec FailureRecorder, sources ...Source) *Aggregator {
	return NewAggregator(sources, opts, trace.NewNoopTracerProvider().Tracer("test"), rec)
}

func TestAggregateDedupFirstWins(t *testing.T) {
	a := newTestAggregator(Options{}, nil,
		stubSource{name: "a", items: []domain.NewsItem{{Source: "a", Title: "Bitcoin hits $100k!"}}},
		stubSource{name: "b", items: []domain.NewsItem{
			{Source: "b", Title: "bitcoin hits 100k"},
			{Source: "b", Title: "Ether slips"},
		}},
	)

	got := a.Aggregate(context.Background(), "bitcoin")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Source)
	assert.Equal(t, "Ether slips", got[1].Title)
}

func TestAggregateAbsorbsFailures(t *testing.T) {
	rec := &countingRecorder{}
	a := newTestAggregator(Options{Timeout: 20 * time.Millisecond}, rec,
		stubSource{name: "broken", err: errors.New("dns failure")},
		stubSource{name: "slow", delay: time.Second, items: []domain.NewsItem{{Title: "late"}}},
		stubSource{name: "ok", items: []domain.NewsItem{{Source: "ok", Title: "Solana upgrade ships"}}},
	)

	got := a.Aggregate(context.Background(), "solana")
	require.Len(t, got, 1)
	assert.Equal(t, "Solana upgrade ships", got[0].Title)
	assert.ElementsMatch(t, []string{"broken", "slow"}, rec.failed)
}

func TestAggregateEmptyReturnsPlaceholder(t *testing.T) {
	a := newTestAggregator(Options{}, nil,
		stubSource{name: "empty"},
		stubSource{name: "broken", err: errors.New("boom")},
	)

	got := a.Aggregate(context.Background(), "dogecoin")
	require.Len(t, got, 1)
	assert.True(t, got[0].IsPlaceholder())
	assert.Contains(t, got[0].Title, "dogecoin")
}

func TestAggregateNoSources(t *testing.T) {
	got := newTestAggregator(Options{}, nil).Aggregate(context.Background(), "x")
	require.Len(t, got, 1)
	assert.True(t, got[0].IsPlaceholder())
}

func TestAggregateTruncates(t *testing.T) {
	var items []domain.NewsItem
	for _, title := range []string{"one", "two", "three", "four", "five"} {
		items = append(items, domain.NewsItem{Title: title})
	}
	a := newTestAggregator(Options{MaxItems: 3}, nil, stubSource{name: "s", items: items})

	got := a.Aggregate(context.Background(), "q")
	require.Len(t, got, 3)
	assert.Equal(t, "three", got[2].Title)
}

func TestAggregateReorder(t *testing.T) {
	a := newTestAggregator(Options{Reorder: true}, nil, stubSource{name: "s", items: []domain.NewsItem{
		{Title: "Markets wrap"},
		{Title: "ETH gas falls", Body: "Ethereum fees drop"},
		{Title: "Macro update"},
		{Title: "Ethereum ETF flows"},
	}})

	got := a.Aggregate(context.Background(), "ethereum")
	titles := make([]string, len(got))
	for i, item := range got {
		titles[i] = item.Title
	}
	assert.Equal(t, []string{"ETH gas falls", "Ethereum ETF flows", "Markets wrap", "Macro update"}, titles)
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "bitcoin100k", NormalizeTitle("Bitcoin: $100K?!"))
	assert.Equal(t, "биткоинрастёт", NormalizeTitle("Биткоин растёт"))
	assert.Equal(t, "snake_case", NormalizeTitle("snake_case"))
}

func TestDedupIdempotent(t *testing.T) {
	items := []domain.NewsItem{{Title: "A b"}, {Title: "a-B"}, {Title: "c"}}
	once := Dedup(items)
	assert.Equal(t, once, Dedup(once))
	assert.Len(t, once, 2)
}
