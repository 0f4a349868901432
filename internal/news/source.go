package news

import (
	"context"
	"net/url"
	"strings"

	"crypto-sentiment-bot/internal/domain"
)

// Source produces news items for a query.
type Source interface {
	Name() string
	Fetch(ctx context.Context, query string) ([]domain.NewsItem, error)
}

// FeedFetcher downloads one syndication feed.
type FeedFetcher interface {
	FetchFeed(ctx context.Context, source, feedURL string, maxItems int) ([]domain.NewsItem, error)
}

// FeedSource is a Source backed by an RSS feed. A "{query}" placeholder in
// URL is replaced with the escaped query; feeds without it are topical.
type FeedSource struct {
	Label    string
	URL      string
	MaxItems int
	Fetcher  FeedFetcher
}

func (s FeedSource) Name() string { return s.Label }

func (s FeedSource) Fetch(ctx context.Context, query string) ([]domain.NewsItem, error) {
	u := strings.ReplaceAll(s.URL, "{query}", url.QueryEscape(query))
	return s.Fetcher.FetchFeed(ctx, s.Label, u, s.MaxItems)
}

const (
	GoogleNewsURL    = "https://news.google.com/rss/search?q={query}"
	CointelegraphURL = "https://cointelegraph.com/rss"
	CoindeskURL      = "https://www.coindesk.com/arc/outboundfeeds/rss/"
)

// DefaultSources is the query-driven Google News search plus two topical feeds.
func DefaultSources(fetcher FeedFetcher) []Source {
	return []Source{
		FeedSource{Label: "GoogleNews", URL: GoogleNewsURL, MaxItems: 12, Fetcher: fetcher},
		FeedSource{Label: "Cointelegraph", URL: CointelegraphURL, MaxItems: 6, Fetcher: fetcher},
		FeedSource{Label: "Coindesk", URL: CoindeskURL, MaxItems: 6, Fetcher: fetcher},
	}
}
