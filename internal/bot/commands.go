package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crypto-sentiment-bot/internal/analysis"
	"crypto-sentiment-bot/internal/domain"
	"crypto-sentiment-bot/internal/scanner"
	"crypto-sentiment-bot/internal/service"
)

const (
	helpText = `Commands:
/analyze <coin> [side=long|short] [amount=100] [lev=3] [target=105] [lang=es]
/pl <entry> <amount> <leverage> <long|short> <target>
/scan [query] [amount=100] [lev=1]
/watch <address>, /unwatch <address>, /watchlist
/coins, /ping`
	scanTop = 10
)

type Analyzer interface {
	Analyze(ctx context.Context, req service.AnalysisRequest) (*service.Analysis, error)
}

type TokenScanner interface {
	Scan(ctx context.Context, query string, limit int) (*scanner.Scan, error)
	Latest() *scanner.Scan
}

// Commands renders replies for the chat commands. Every method returns the
// text to send; errors are rendered for the user rather than returned.
type Commands struct {
	analyzer  Analyzer
	scans     TokenScanner
	watchlist *scanner.Watchlist
	scanQuery string
}

func NewCommands(analyzer Analyzer, scans TokenScanner, watchlist *scanner.Watchlist, scanQuery string) *Commands {
	if watchlist == nil {
		watchlist = scanner.NewWatchlist()
	}
	return &Commands{analyzer: analyzer, scans: scans, watchlist: watchlist, scanQuery: scanQuery}
}

func (c *Commands) Coins() string {
	return "Popular coins: " + strings.Join(domain.PopularCoinNames(), ", ")
}

func (c *Commands) Analyze(ctx context.Context, args []string) string {
	req, err := service.ParseAnalysisArgs(args)
	if err != nil {
		return err.Error() + "\nUsage: /analyze bitcoin side=long amount=100 lev=3 target=105"
	}
	res, err := c.analyzer.Analyze(ctx, req)
	switch {
	case errors.Is(err, domain.ErrNoPriceAvailable):
		return fmt.Sprintf("Could not fetch a price for %q. Try a CoinGecko id or a contract address.", req.Query)
	case err != nil:
		return fmt.Sprintf("Analysis failed for %q: %v", req.Query, err)
	}

	var b strings.Builder
	b.WriteString(res.Report())
	if len(res.News) > 0 && !res.News[0].IsPlaceholder() {
		b.WriteString("\n\nHeadlines:")
		for i, item := range res.News {
			if i == 5 {
				break
			}
			fmt.Fprintf(&b, "\n- %s (%s)", item.Title, item.Source)
		}
	}
	return b.String()
}

func (c *Commands) PL(args []string) string {
	const usage = "Usage: /pl <entry> <amount> <leverage> <long|short> <target>"
	if len(args) != 5 {
		return usage
	}
	nums := make([]float64, 0, 4)
	for _, i := range []int{0, 1, 2, 4} {
		v, err := domain.ParseNumber("value", args[i])
		if err != nil {
			return err.Error() + "\n" + usage
		}
		nums = append(nums, v)
	}
	side, err := domain.ParseSide(args[3])
	if err != nil {
		return err.Error() + "\n" + usage
	}
	pos, err := analysis.NewPosition(nums[0], nums[1], nums[2], side)
	if err != nil {
		return err.Error()
	}
	if err := analysis.ValidateTarget(nums[3]); err != nil {
		return err.Error()
	}
	pl := analysis.Evaluate(pos, nums[3])
	return fmt.Sprintf("%s %s -> %s\nNotional %.2f\nP/L %+.2f (%+.2f%%)",
		side, domain.FormatPrice(pos.EntryPrice), domain.FormatPrice(pl.TargetPrice), pos.Notional, pl.Amount, pl.Pct)
}

func (c *Commands) Scan(ctx context.Context, args []string) string {
	margin, leverage := scanner.DefaultMargin, scanner.DefaultLeverage
	var words []string
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			words = append(words, arg)
			continue
		}
		v, err := domain.ParseNumber(key, value)
		if err != nil {
			return err.Error()
		}
		switch strings.ToLower(key) {
		case "amount":
			margin = v
		case "lev", "leverage":
			leverage = v
		default:
			return fmt.Sprintf("Unknown option %q. Usage: /scan [query] [amount=100] [lev=1]", key)
		}
	}

	query := strings.TrimSpace(strings.Join(words, " "))
	s := c.scans.Latest()
	if query != "" || s == nil {
		if query == "" {
			query = c.scanQuery
		}
		var err error
		if s, err = c.scans.Scan(ctx, query, scanTop); err != nil {
			return fmt.Sprintf("Scan failed for %q: %v", query, err)
		}
	}
	priced, err := s.Priced(margin, leverage)
	if err != nil {
		return err.Error()
	}
	return scanner.Report(priced, scanTop)
}

func (c *Commands) Watch(args []string) string {
	if len(args) != 1 {
		return "Usage: /watch <address>"
	}
	latest := c.scans.Latest()
	if latest != nil {
		for _, r := range latest.Tokens {
			if strings.EqualFold(r.Token.Address, args[0]) {
				c.watchlist.Add(r.Token)
				return fmt.Sprintf("Watching %s (%s)", r.Token.Symbol, r.Token.Address)
			}
		}
	}
	return "Token not found in the latest scan: " + args[0]
}

func (c *Commands) Unwatch(args []string) string {
	if len(args) != 1 {
		return "Usage: /unwatch <address>"
	}
	if !c.watchlist.Remove(args[0]) {
		return "Not watching " + args[0]
	}
	return "Removed " + args[0]
}

func (c *Commands) Watchlist() string {
	tokens := c.watchlist.List()
	if len(tokens) == 0 {
		return "Watchlist is empty."
	}
	var b strings.Builder
	b.WriteString("Watchlist:")
	for _, t := range tokens {
		fmt.Fprintf(&b, "\n- %s %s liq $%.0f vol5m $%.0f txns5m %.0f", t.Symbol, domain.FormatPrice(t.PriceUSD), t.LiquidityUSD, t.Volume5m, t.Txns5m)
	}
	return b.String()
}
