package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crypto-sentiment-bot/internal/domain"
	"crypto-sentiment-bot/internal/scanner"
	"crypto-sentiment-bot/internal/service"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const requestTimeout = 45 * time.Second

type Analyzer interface {
	Analyze(ctx context.Context, req service.AnalysisRequest) (*service.Analysis, error)
}

type TokenScanner interface {
	Scan(ctx context.Context, query string, limit int) (*scanner.Scan, error)
	Latest() *scanner.Scan
}

// Services are the collaborators behind one terminal session.
type Services struct {
	Analyzer  Analyzer
	Scanner   TokenScanner
	ScanQuery string
	ScanLimit int
	Username  string
}

type tab int

const (
	tabAnalyze tab = iota
	tabScan
)

var tabNames = []string{"Analyze", "Scan"}

type analysisMsg struct {
	result *service.Analysis
	err    error
}

type scanMsg struct {
	result *scanner.Scan
	err    error
}

// AppModel is the root bubbletea model.
type AppModel struct {
	svc     Services
	tab     tab
	input   textinput.Model
	spinner spinner.Model
	loading bool

	analysis *service.Analysis
	scan     *scanner.Scan
	err      error

	width  int
	height int
}

func NewAppModel(svc Services) *AppModel {
	if svc.ScanLimit <= 0 {
		svc.ScanLimit = 15
	}
	in := textinput.New()
	in.Placeholder = "bitcoin side=long amount=100 lev=3"
	in.CharLimit = 128
	in.Focus()

	return &AppModel{
		svc:     svc,
		input:   in,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *AppModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 4 {
		m.input.Width = width - 4
	}
}

func (m *AppModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.switchTab()
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}
			return m, m.submit()
		}

	case analysisMsg:
		m.loading = false
		m.analysis, m.err = msg.result, msg.err
		return m, nil

	case scanMsg:
		m.loading = false
		m.scan, m.err = msg.result, msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AppModel) switchTab() {
	m.tab = (m.tab + 1) % tab(len(tabNames))
	m.err = nil
	m.input.SetValue("")
	if m.tab == tabScan {
		m.input.Placeholder = "token feed query (empty = " + m.svc.ScanQuery + ")"
	} else {
		m.input.Placeholder = "bitcoin side=long amount=100 lev=3"
	}
}

func (m *AppModel) submit() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	switch m.tab {
	case tabScan:
		if value == "" {
			if latest := m.svc.Scanner.Latest(); latest != nil {
				m.scan, m.err = latest, nil
				return nil
			}
			value = m.svc.ScanQuery
		}
		m.loading = true
		return tea.Batch(m.spinner.Tick, scanCmd(m.svc.Scanner, value, m.svc.ScanLimit))

	default:
		req, err := service.ParseAnalysisArgs(strings.Fields(value))
		if err != nil {
			m.err = err
			return nil
		}
		m.loading = true
		return tea.Batch(m.spinner.Tick, analyzeCmd(m.svc.Analyzer, req))
	}
}

func analyzeCmd(a Analyzer, req service.AnalysisRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := a.Analyze(ctx, req)
		return analysisMsg{result: res, err: err}
	}
}

func scanCmd(s TokenScanner, query string, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := s.Scan(ctx, query, limit)
		return scanMsg{result: res, err: err}
	}
}

func (m *AppModel) View() string {
	var b strings.Builder

	user := m.svc.Username
	if user == "" {
		user = "guest"
	}
	b.WriteString(titleStyle.Render("cryptosignal") + helpStyle.Render("  "+user) + "\n\n")

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")
	b.WriteString(m.input.View() + "\n")

	switch {
	case m.loading:
		b.WriteString(bodyStyle.Render(m.spinner.View() + " working..."))
	case m.err != nil:
		b.WriteString(bodyStyle.Render(errorStyle.Render("error: " + m.err.Error())))
	case m.tab == tabAnalyze && m.analysis != nil:
		b.WriteString(bodyStyle.Render(renderAnalysis(m.analysis)))
	case m.tab == tabScan && m.scan != nil:
		priced, _ := m.scan.Priced(scanner.DefaultMargin, scanner.DefaultLeverage)
		b.WriteString(bodyStyle.Render(scanner.Report(priced, m.svc.ScanLimit)))
	}

	b.WriteString("\n" + helpStyle.Render("enter: run  tab: switch  esc: quit"))
	return b.String()
}

func renderAnalysis(a *service.Analysis) string {
	var style lipgloss.Style
	switch a.Side {
	case domain.SideLong:
		style = longStyle
	case domain.SideShort:
		style = shortStyle
	default:
		style = holdStyle
	}
	return style.Render(a.SignalText()) + "\n\n" + a.Report() + headlines(a.News, 5)
}

func headlines(items []domain.NewsItem, n int) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\nHeadlines:")
	for i, item := range items {
		if i == n {
			break
		}
		fmt.Fprintf(&b, "\n  %s %s", helpStyle.Render("["+item.Source+"]"), item.Title)
	}
	return b.String()
}
