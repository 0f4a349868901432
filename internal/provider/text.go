package provider

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const summaryMaxLen = 220

// cleanHTML drops markup and entities, then collapses whitespace.
func cleanHTML(in string) string {
	if strings.TrimSpace(in) == "" {
		return ""
	}
	text := in
	if strings.ContainsAny(in, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(in))
		if err == nil {
			text = doc.Text()
		}
	}
	return strings.Join(strings.Fields(text), " ")
}

// shorten cuts text to maxLen runes, preferring the last sentence end, and marks the cut with "...".
func shorten(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	cut := string(runes[:maxLen])
	if i := strings.LastIndex(cut, "."); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut) + "..."
}

func sanitizeText(in string, maxLen int) string {
	in = strings.Join(strings.Fields(in), " ")
	if maxLen > 0 {
		if runes := []rune(in); len(runes) > maxLen {
			in = string(runes[:maxLen])
		}
	}
	return in
}
