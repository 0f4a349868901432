package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var errNotFound = errors.New("not found")

// StatusError is returned for non-200 upstream responses.
type StatusError struct {
	Upstream string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error %d: %s", e.Upstream, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return errNotFound
	}
	return nil
}

const maxErrorBody = 512

// getBody performs one rate-limited GET through the breaker. No retries.
func getBody(ctx context.Context, client *http.Client, limiter *RateLimiter, breaker *Breaker, upstream, url, accept string) ([]byte, error) {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	do := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", accept)
		req.Header.Set("User-Agent", "crypto-sentiment-bot/1.0")

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			return nil, &StatusError{Upstream: upstream, Code: resp.StatusCode, Body: string(body)}
		}
		return io.ReadAll(resp.Body)
	}

	if breaker == nil {
		return do()
	}
	return breaker.Execute(do)
}
