package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"crypto-sentiment-bot/internal/domain"
	"crypto-sentiment-bot/internal/scanner"
	"crypto-sentiment-bot/internal/service"
)

type stubAnalyzer struct {
	got    service.AnalysisRequest
	result *service.Analysis
	err    error
}

func (s *stubAnalyzer) Analyze(ctx context.Context, req service.AnalysisRequest) (*service.Analysis, error) {
	s.got = req
	return s.result, s.err
}

type stubScanner struct {
	latest *scanner.Scan
	result *scanner.Scan
	err    error
	query  string
}

func (s *stubScanner) Scan(ctx context.Context, query string, limit int) (*scanner.Scan, error) {
	s.query = query
	return s.result, s.err
}

func (s *stubScanner) Latest() *scanner.Scan { return s.latest }

func TestAnalyzeReply(t *testing.T) {
	analyzer := &stubAnalyzer{result: &service.Analysis{
		Asset: domain.Asset{ID: "bitcoin", Name: "Bitcoin"},
		Price: 100,
		Side:  domain.SideHold,
		News: []domain.NewsItem{
			{Source: "coindesk", Title: "Bitcoin rallies"},
		},
	}}
	c := NewCommands(analyzer, &stubScanner{}, nil, "solana")

	reply := c.Analyze(context.Background(), []string{"btc"})
	if !strings.Contains(reply, "Bitcoin (bitcoin)") || !strings.Contains(reply, "- Bitcoin rallies (coindesk)") {
		t.Fatalf("unexpected reply:\n%s", reply)
	}
	if !strings.Contains(reply, "Signal: HOLD") {
		t.Fatalf("expected HOLD signal:\n%s", reply)
	}

	analyzer.err = fmt.Errorf("analyze pepe: %w", domain.ErrNoPriceAvailable)
	if reply := c.Analyze(context.Background(), []string{"pepe"}); !strings.HasPrefix(reply, "Could not fetch a price") {
		t.Fatalf("unexpected no-price reply: %s", reply)
	}
	if reply := c.Analyze(context.Background(), nil); !strings.Contains(reply, "Usage") {
		t.Fatalf("expected usage, got %s", reply)
	}
}

func TestPLReply(t *testing.T) {
	c := NewCommands(nil, nil, nil, "")

	reply := c.PL([]string{"100", "100", "10", "long", "110"})
	if !strings.Contains(reply, "Notional 1000.00") || !strings.Contains(reply, "P/L +100.00 (+10.00%)") {
		t.Fatalf("unexpected reply: %s", reply)
	}
	reply = c.PL([]string{"100", "100", "10", "short", "110"})
	if !strings.Contains(reply, "P/L -100.00") {
		t.Fatalf("unexpected short reply: %s", reply)
	}
	if reply := c.PL([]string{"100", "-1", "10", "long", "110"}); !strings.Contains(reply, "amount must be positive") {
		t.Fatalf("expected validation message, got %s", reply)
	}
	if reply := c.PL([]string{"1"}); !strings.HasPrefix(reply, "Usage") {
		t.Fatalf("expected usage, got %s", reply)
	}
}

func TestScanReplyIncludesPL(t *testing.T) {
	signal := domain.ScalpSignal{Side: domain.SideShort, Entry: 10, TP1: 9.5, TP2: 9, SL: 10.5, Actionable: true}
	scan := &scanner.Scan{Query: "solana", Tokens: []scanner.Ranked{{Token: domain.TokenSnapshot{Symbol: "WIF", Address: "wif"}, Score: 70, Signal: signal}}}
	c := NewCommands(nil, &stubScanner{latest: scan}, nil, "solana")

	reply := c.Scan(context.Background(), []string{"amount=20", "lev=5"})
	if !strings.Contains(reply, "P/L on 100.00 notional") || !strings.Contains(reply, "P/L TP1 +5.00 TP2 +10.00 SL -5.00") {
		t.Fatalf("unexpected scan reply: %s", reply)
	}
	if reply := c.Scan(context.Background(), nil); !strings.Contains(reply, "TP1 +5.00") {
		t.Fatalf("expected default P/L line, got %s", reply)
	}
	if reply := c.Scan(context.Background(), []string{"amount=-1"}); !strings.Contains(reply, "invalid input") {
		t.Fatalf("expected validation message, got %s", reply)
	}
	if reply := c.Scan(context.Background(), []string{"size=3"}); !strings.HasPrefix(reply, "Unknown option") {
		t.Fatalf("expected unknown option reply, got %s", reply)
	}
}

func TestScanAndWatchReplies(t *testing.T) {
	token := domain.TokenSnapshot{Symbol: "BONK", Address: "bonk-addr", PriceUSD: 0.00002}
	scan := &scanner.Scan{Query: "solana", Tokens: []scanner.Ranked{{Token: token, Score: 90}}}
	scans := &stubScanner{result: scan}
	watchlist := scanner.NewWatchlist()
	c := NewCommands(nil, scans, watchlist, "solana")

	if reply := c.Scan(context.Background(), nil); !strings.Contains(reply, "BONK") || scans.query != "solana" {
		t.Fatalf("unexpected scan reply %q (query %q)", reply, scans.query)
	}
	if reply := c.Watch([]string{"bonk-addr"}); !strings.Contains(reply, "not found") {
		t.Fatalf("expected not found before any latest scan, got %s", reply)
	}

	scans.latest = scan
	if reply := c.Watch([]string{"bonk-addr"}); !strings.HasPrefix(reply, "Watching BONK") {
		t.Fatalf("unexpected watch reply: %s", reply)
	}
	if reply := c.Watchlist(); !strings.Contains(reply, "BONK $0.00002000") {
		t.Fatalf("unexpected watchlist: %s", reply)
	}
	if reply := c.Unwatch([]string{"bonk-addr"}); reply != "Removed bonk-addr" {
		t.Fatalf("unexpected unwatch reply: %s", reply)
	}
	if reply := c.Watchlist(); reply != "Watchlist is empty." {
		t.Fatalf("unexpected empty watchlist: %s", reply)
	}

	scans.err = errors.New("upstream down")
	if reply := c.Scan(context.Background(), []string{"pepe"}); !strings.HasPrefix(reply, "Scan failed") {
		t.Fatalf("expected failure reply, got %s", reply)
	}
}
