package main

import (
	"fmt"

	"crypto-sentiment-bot/internal/analysis"
	"crypto-sentiment-bot/internal/domain"

	"github.com/spf13/cobra"
)

func newPLCmd() *cobra.Command {
	var entry, amount, leverage, target float64
	var side string
	cmd := &cobra.Command{
		Use:   "pl",
		Short: "Profit/loss of a position closed at a target price",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := domain.ParseSide(side)
			if err != nil {
				return err
			}
			pos, err := analysis.NewPosition(entry, amount, leverage, s)
			if err != nil {
				return err
			}
			if err := analysis.ValidateTarget(target); err != nil {
				return err
			}
			pl := analysis.Evaluate(pos, target)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s notional %.2f P/L %+.2f (%+.2f%%)\n",
				s, domain.FormatPrice(entry), domain.FormatPrice(target), pos.Notional, pl.Amount, pl.Pct)
			return nil
		},
	}
	cmd.Flags().Float64Var(&entry, "entry", 0, "Entry price")
	cmd.Flags().Float64Var(&amount, "amount", 100, "Margin in USD")
	cmd.Flags().Float64Var(&leverage, "leverage", 1, "Leverage")
	cmd.Flags().StringVar(&side, "side", "long", "LONG or SHORT")
	cmd.Flags().Float64Var(&target, "target", 0, "Target price")
	_ = cmd.MarkFlagRequired("entry")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newCoinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coins",
		Short: "List the built-in coin catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range domain.PopularCoinNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", name, domain.PopularCoins[name])
			}
			return nil
		},
	}
}
