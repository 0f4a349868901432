package provider

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"crypto-sentiment-bot/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultFeedItems = 10

type RSSProvider struct {
	client *http.Client
	tracer trace.Tracer
}

func NewRSSProvider(tracer trace.Tracer, timeout time.Duration) *RSSProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RSSProvider{
		client: &http.Client{Timeout: timeout},
		tracer: tracer,
	}
}

// FetchFeed downloads an RSS 2.0 feed and normalizes up to maxItems entries
// into news items attributed to source.
func (p *RSSProvider) FetchFeed(ctx context.Context, source, feedURL string, maxItems int) ([]domain.NewsItem, error) {
	ctx, span := p.tracer.Start(ctx, "rss.fetch-feed")
	defer span.End()
	span.SetAttributes(attribute.String("feed.source", source))

	feedURL = strings.TrimSpace(feedURL)
	if feedURL == "" {
		return nil, fmt.Errorf("feed url is required")
	}
	if maxItems <= 0 {
		maxItems = defaultFeedItems
	}

	body, err := getBody(ctx, p.client, nil, nil, source, feedURL, "application/rss+xml, application/xml, text/xml")
	if err != nil {
		return nil, err
	}

	var rss struct {
		Channel struct {
			Items []struct {
				Title       string `xml:"title"`
				Description string `xml:"description"`
			} `xml:"item"`
		} `xml:"channel"`
	}
	if err := xml.Unmarshal(body, &rss); err != nil {
		return nil, fmt.Errorf("decode rss payload: %w", err)
	}

	items := make([]domain.NewsItem, 0, min(maxItems, len(rss.Channel.Items)))
	for _, row := range rss.Channel.Items {
		if len(items) >= maxItems {
			break
		}
		title := sanitizeText(cleanHTML(row.Title), 300)
		if title == "" {
			continue
		}
		items = append(items, domain.NewsItem{
			Source: source,
			Title:  title,
			Body:   shorten(cleanHTML(row.Description), summaryMaxLen),
		})
	}
	span.SetAttributes(attribute.Int("feed.items", len(items)))
	return items, nil
}
