package main

import (
	"encoding/json"
	"fmt"

	"crypto-sentiment-bot/internal/config"
	"crypto-sentiment-bot/internal/scanner"

	"github.com/spf13/cobra"
)

func newScanCmd(cfg *config.Config) *cobra.Command {
	var (
		query    string
		limit    int
		amount   float64
		leverage float64
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Rank tokens from the DEX feed by activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer rt.cleanup()

			raw, err := rt.app.Scanner.Scan(cmd.Context(), query, limit)
			if err != nil {
				return err
			}
			s, err := raw.Priced(amount, leverage)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			fmt.Fprintln(out, scanner.Report(s, limit))
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "query", cfg.ScannerQuery, "Token feed search query")
	cmd.Flags().IntVar(&limit, "limit", cfg.ScannerLimit, "Maximum tokens to show")
	cmd.Flags().Float64Var(&amount, "amount", scanner.DefaultMargin, "Margin in USD for per-token P/L")
	cmd.Flags().Float64Var(&leverage, "leverage", scanner.DefaultLeverage, "Leverage for per-token P/L")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the scan as JSON")
	return cmd
}
