package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Discord rejects webhook content longer than this many characters.
const maxWebhookLen = 2000

// WebhookNotifier posts messages to a Discord webhook.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

type webhookPayload struct {
	Content string `json:"content"`
}

// NewWebhookNotifier returns ErrNotConfigured for an empty url. A nil client
// gets a 10s timeout.
func NewWebhookNotifier(url string, client *http.Client) (*WebhookNotifier, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrNotConfigured
	}
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
		return nil, fmt.Errorf("invalid discord webhook url %q", url)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &WebhookNotifier{url: url, client: client}, nil
}

func (w *WebhookNotifier) Notify(ctx context.Context, text string) error {
	for _, chunk := range splitMessage(text, maxWebhookLen) {
		if err := w.post(ctx, chunk); err != nil {
			return err
		}
	}
	return nil
}

func (w *WebhookNotifier) post(ctx context.Context, content string) error {
	body, err := json.Marshal(webhookPayload{Content: content})
	if err != nil {
		return fmt.Errorf("marshal discord payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}
	return nil
}

type notifier interface {
	Notify(ctx context.Context, text string) error
}

// Fanout delivers to every configured channel, attempting all of them even
// when one fails.
type Fanout []notifier

// NewFanout wires Telegram and Discord from their settings. It returns
// ErrNotConfigured only when neither channel is set.
func NewFanout(token string, chatID int64, webhookURL string) (Fanout, error) {
	var out Fanout
	tg, err := NewNotifier(token, chatID)
	switch {
	case err == nil:
		out = append(out, tg)
	case !errors.Is(err, ErrNotConfigured):
		return nil, err
	}
	dc, err := NewWebhookNotifier(webhookURL, nil)
	switch {
	case err == nil:
		out = append(out, dc)
	case !errors.Is(err, ErrNotConfigured):
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotConfigured
	}
	return out, nil
}

func (f Fanout) Notify(ctx context.Context, text string) error {
	var errs []error
	for _, n := range f {
		if err := n.Notify(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
