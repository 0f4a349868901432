package service

import (
	"fmt"
	"strings"

	"crypto-sentiment-bot/internal/domain"
)

// SignalText renders the one-line signal, e.g. "LONG x3 | TP1 $102.76 | SL $97.93".
func (a *Analysis) SignalText() string {
	if a.Plan == nil {
		return string(domain.SideHold)
	}
	parts := []string{fmt.Sprintf("%s x%d", a.Side, a.Leverage)}
	for _, l := range a.Plan.Levels {
		parts = append(parts, fmt.Sprintf("%s %s", l.Label, domain.FormatPrice(l.Price)))
	}
	return strings.Join(parts, " | ")
}

// Report is the plain-text summary used by the bot and the CLI.
func (a *Analysis) Report() string {
	var b strings.Builder
	name := a.Asset.Name
	if name == "" {
		name = a.Asset.ID
	}
	fmt.Fprintf(&b, "%s (%s)\n", name, a.Asset.ID)
	fmt.Fprintf(&b, "Price: %s\n", domain.FormatPrice(a.Price))
	fmt.Fprintf(&b, "Sentiment: %+.3f over %d headlines\n", a.Sentiment, len(a.News))
	fmt.Fprintf(&b, "Forecast: %s (%+.3f)\n", a.Prediction.Direction, a.Prediction.Magnitude)
	fmt.Fprintf(&b, "Volatility: %.2f%% per interval (%d samples)\n", a.Volatility, a.Samples)
	fmt.Fprintf(&b, "Signal: %s\n", a.SignalText())

	if a.Plan != nil {
		b.WriteString("\nLevels:\n")
		for i, l := range a.Plan.Levels {
			line := fmt.Sprintf("  %-3s %s  %.2f%%", l.Label, domain.FormatPrice(l.Price), l.MovePct)
			if i < len(a.Outcomes) {
				line += fmt.Sprintf("  P/L %+.2f", a.Outcomes[i].PL.Amount)
			}
			if h, ok := a.Plan.Horizons[l.Label]; ok {
				line += fmt.Sprintf("  ~%.1fh %s", h.Hours, h.Label)
			}
			b.WriteString(line + "\n")
		}
		if len(a.Outcomes) > 0 {
			fmt.Fprintf(&b, "Risk tier %d, notional %.2f (%.2f x%d)\n", a.Plan.RiskTier, a.Amount*float64(a.Leverage), a.Amount, a.Leverage)
		} else {
			fmt.Fprintf(&b, "Risk tier %d\n", a.Plan.RiskTier)
		}
	}
	if a.Custom != nil {
		fmt.Fprintf(&b, "Target %s: %+.2f%%  P/L %+.2f\n", domain.FormatPrice(a.Custom.TargetPrice), a.Custom.Pct, a.Custom.Amount)
	}
	if a.CalculatorError != "" {
		fmt.Fprintf(&b, "Calculator: %s\n", a.CalculatorError)
	}
	fmt.Fprintf(&b, "\n%s UTC, %.1fs", a.GeneratedAt.Format("2006-01-02 15:04"), a.Elapsed.Seconds())
	return b.String()
}
