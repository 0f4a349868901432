package news

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crypto-sentiment-bot/internal/domain"
)

type recordingFetcher struct {
	calls []string
}

func (r *recordingFetcher) FetchFeed(_ context.Context, source, feedURL string, maxItems int) ([]domain.NewsItem, error) {
	r.calls = append(r.calls, source+"|"+feedURL)
	return []domain.NewsItem{{Source: source, Title: feedURL}}, nil
}

func TestFeedSourceSubstitutesQuery(t *testing.T) {
	f := &recordingFetcher{}
	sources := DefaultSources(f)
	require.Len(t, sources, 3)

	for _, s := range sources {
		_, err := s.Fetch(context.Background(), "shiba inu")
		require.NoError(t, err)
	}
	assert.Equal(t, []string{
		"GoogleNews|https://news.google.com/rss/search?q=shiba+inu",
		"Cointelegraph|" + CointelegraphURL,
		"Coindesk|" + CoindeskURL,
	}, f.calls)
}
