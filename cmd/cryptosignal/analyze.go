package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"crypto-sentiment-bot/internal/config"
	"crypto-sentiment-bot/internal/domain"
	"crypto-sentiment-bot/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	coin     string
	side     string
	amount   float64
	leverage float64
	target   float64
	lang     string
	asJSON   bool
	notify   bool
}

func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze [coin]",
		Short: "Run the news sentiment pipeline for a coin",
		Long:  "Aggregates headlines, scores sentiment, predicts direction and prints the trade plan with P/L per level.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.coin = strings.Join(args, " ")
			}
			return runAnalyze(cmd, cfg, opts)
		},
	}
	cmd.Flags().StringVar(&opts.coin, "coin", "bitcoin", "Coin name, ticker, CoinGecko id or contract address")
	cmd.Flags().StringVar(&opts.side, "side", "", "Force LONG or SHORT instead of the predicted side")
	cmd.Flags().Float64Var(&opts.amount, "amount", service.DefaultAmount, "Margin in USD")
	cmd.Flags().Float64Var(&opts.leverage, "leverage", 0, "Leverage (0 = suggested from the forecast)")
	cmd.Flags().Float64Var(&opts.target, "target", 0, "Custom target price for the P/L calculator")
	cmd.Flags().StringVar(&opts.lang, "lang", cfg.TranslateLang, "Translate headlines to this language")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the analysis as JSON")
	cmd.Flags().BoolVar(&opts.notify, "notify", false, "Send the report to the configured Telegram chat and Discord webhook")
	return cmd
}

func runAnalyze(cmd *cobra.Command, cfg *config.Config, opts *analyzeOptions) error {
	req := service.AnalysisRequest{
		Query:    opts.coin,
		Amount:   opts.amount,
		Leverage: opts.leverage,
		Target:   opts.target,
		Lang:     opts.lang,
	}
	if opts.side != "" {
		side, err := domain.ParseSide(opts.side)
		if err != nil {
			return err
		}
		req.Side = side
	}

	ctx := cmd.Context()
	rt, err := setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.cleanup()

	res, err := rt.app.Analysis.Analyze(ctx, req)
	if err != nil {
		return fmt.Errorf("could not analyze %q: %w", opts.coin, err)
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, res.Report())
	}

	if opts.notify {
		n, err := newNotifierFunc(cfg)
		if err != nil {
			return fmt.Errorf("notify: %w", err)
		}
		if err := n.Notify(ctx, res.Report()); err != nil {
			return fmt.Errorf("notify: %w", err)
		}
		log.Info().Msg("report sent to notification channels")
	}
	return nil
}
