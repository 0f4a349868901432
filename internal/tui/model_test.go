package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"crypto-sentiment-bot/internal/domain"
	"crypto-sentiment-bot/internal/scanner"
	"crypto-sentiment-bot/internal/service"

	tea "github.com/charmbracelet/bubbletea"
)

type stubAnalyzer struct {
	got service.AnalysisRequest
	res *service.Analysis
	err error
}

func (s *stubAnalyzer) Analyze(ctx context.Context, req service.AnalysisRequest) (*service.Analysis, error) {
	s.got = req
	return s.res, s.err
}

type stubScanner struct {
	latest *scanner.Scan
	query  string
}

func (s *stubScanner) Scan(ctx context.Context, query string, limit int) (*scanner.Scan, error) {
	s.query = query
	return &scanner.Scan{Query: query, Tokens: []scanner.Ranked{{Token: domain.TokenSnapshot{Symbol: "WIF"}, Score: 77}}}, nil
}

func (s *stubScanner) Latest() *scanner.Scan { return s.latest }

func typeText(m *AppModel, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// runCmd executes cmd and feeds resulting result messages back into the model.
func runCmd(m *AppModel, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			switch inner := c().(type) {
			case analysisMsg, scanMsg:
				m.Update(inner)
			}
		}
	default:
		m.Update(msg)
	}
}

func TestAnalyzeFlow(t *testing.T) {
	analyzer := &stubAnalyzer{res: &service.Analysis{
		Asset: domain.Asset{ID: "bitcoin", Name: "Bitcoin"},
		Price: 100,
		Side:  domain.SideHold,
		News:  []domain.NewsItem{{Source: "coindesk", Title: "Bitcoin steady"}},
	}}
	m := NewAppModel(Services{Analyzer: analyzer, Scanner: &stubScanner{}, ScanQuery: "solana", Username: "alice"})
	m.SetSize(100, 40)

	typeText(m, "btc side=long")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.loading {
		t.Fatal("expected loading state")
	}
	if !strings.Contains(m.View(), "working") {
		t.Fatal("expected spinner text while loading")
	}
	runCmd(m, cmd)

	if analyzer.got.Query != "btc" || analyzer.got.Side != domain.SideLong {
		t.Fatalf("unexpected request: %+v", analyzer.got)
	}
	view := m.View()
	for _, want := range []string{"alice", "Bitcoin (bitcoin)", "Bitcoin steady", "HOLD"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestAnalyzeShowsErrors(t *testing.T) {
	analyzer := &stubAnalyzer{err: domain.ErrNoPriceAvailable}
	m := NewAppModel(Services{Analyzer: analyzer, Scanner: &stubScanner{}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || !errors.Is(m.err, domain.ErrEmptyQuery) {
		t.Fatalf("expected empty query error, got %v", m.err)
	}

	typeText(m, "pepe")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runCmd(m, cmd)
	if !strings.Contains(m.View(), "no price available") {
		t.Fatalf("expected error in view:\n%s", m.View())
	}
}

func TestScanTab(t *testing.T) {
	scans := &stubScanner{}
	m := NewAppModel(Services{Analyzer: &stubAnalyzer{}, Scanner: scans, ScanQuery: "solana"})

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != tabScan {
		t.Fatal("expected scan tab")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runCmd(m, cmd)
	if scans.query != "solana" {
		t.Fatalf("expected default query, got %q", scans.query)
	}
	if !strings.Contains(m.View(), "WIF 77.0") || !strings.Contains(m.View(), "P/L on 100.00 notional") {
		t.Fatalf("expected priced scan rows:\n%s", m.View())
	}

	scans.latest = &scanner.Scan{Query: "cached"}
	scans.query = ""
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || scans.query != "" {
		t.Fatal("latest scan should be shown without fetching")
	}
	if !strings.Contains(m.View(), "No active tokens") {
		t.Fatalf("expected cached empty scan:\n%s", m.View())
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewAppModel(Services{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected QuitMsg")
	}
}
