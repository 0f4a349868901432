package domain

// NewsItem is one normalized text snippet from a news source.
type NewsItem struct {
	Source string `json:"source"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// NoResultsSource marks the placeholder item returned when no source produced anything.
const NoResultsSource = "none"

// NoResultsItem is returned by the aggregator instead of an empty collection.
func NoResultsItem(query string) NewsItem {
	return NewsItem{
		Source: NoResultsSource,
		Title:  "No recent headlines for " + query,
	}
}

// IsPlaceholder reports whether the item is the aggregator's no-results placeholder.
func (n NewsItem) IsPlaceholder() bool {
	return n.Source == NoResultsSource
}

// Text joins the item fields into the unit that gets scored.
func (n NewsItem) Text() string {
	if n.Body == "" {
		return n.Title
	}
	if n.Title == "" {
		return n.Body
	}
	return n.Title + " " + n.Body
}
