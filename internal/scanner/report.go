package scanner

import (
	"fmt"
	"strings"

	"crypto-sentiment-bot/internal/domain"
)

// SignalLine renders one ranked token, e.g. "BONK 87.5 LONG $0.00002000 TP1 .. TP2 .. SL ..".
func SignalLine(r Ranked) string {
	head := fmt.Sprintf("%s %.1f", r.Token.Symbol, r.Score)
	if !r.Signal.Actionable {
		return fmt.Sprintf("%s HOLD %s (no edge)", head, domain.FormatPrice(r.Signal.Entry))
	}
	line := fmt.Sprintf("%s %s %s TP1 %s TP2 %s SL %s",
		head, r.Signal.Side, domain.FormatPrice(r.Signal.Entry),
		domain.FormatPrice(r.Signal.TP1), domain.FormatPrice(r.Signal.TP2), domain.FormatPrice(r.Signal.SL))
	if len(r.Outcomes) > 0 {
		parts := make([]string, 0, len(r.Outcomes))
		for _, o := range r.Outcomes {
			parts = append(parts, fmt.Sprintf("%s %+.2f", o.Level.Label, o.PL.Amount))
		}
		line += " | P/L " + strings.Join(parts, " ")
	}
	return line
}

// Report renders the top n tokens of a scan as plain text.
func Report(s *Scan, n int) string {
	if s == nil || len(s.Tokens) == 0 {
		return "No active tokens found."
	}
	if n <= 0 || n > len(s.Tokens) {
		n = len(s.Tokens)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Top %d for %q (%s UTC)", n, s.Query, s.ScannedAt.UTC().Format("15:04:05"))
	if s.Notional > 0 {
		fmt.Fprintf(&b, ", P/L on %.2f notional", s.Notional)
	}
	b.WriteString("\n")
	for i, r := range s.Tokens[:n] {
		fmt.Fprintf(&b, "%d. %s\n", i+1, SignalLine(r))
	}
	return strings.TrimRight(b.String(), "\n")
}
