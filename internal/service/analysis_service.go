package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"crypto-sentiment-bot/internal/analysis"
	"crypto-sentiment-bot/internal/domain"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultAmount   = 100.0
	translateLimit  = 4
	seriesSource    = "coingecko-chart"
	outcomeOK       = "ok"
	outcomeNoPrice  = "no_price"
	outcomeBadQuery = "bad_query"
)

type NewsAggregator interface {
	Aggregate(ctx context.Context, query string) []domain.NewsItem
}

// Translator is best-effort: callers keep the original text on error.
type Translator interface {
	Translate(ctx context.Context, text, lang string) (string, error)
}

type Recorder interface {
	Analysis(outcome string)
	SourceFailure(source string)
	StageDuration(stage string, d time.Duration)
	Sentiment(asset string, score float64)
}

// AnalysisRequest carries everything one analysis needs. Zero values mean
// defaults: auto side, DefaultAmount, auto leverage, no custom target, no translation.
type AnalysisRequest struct {
	Query    string      `json:"query"`
	Side     domain.Side `json:"side,omitempty"`
	Amount   float64     `json:"amount,omitempty"`
	Leverage float64     `json:"leverage,omitempty"`
	Target   float64     `json:"target,omitempty"`
	Lang     string      `json:"lang,omitempty"`
}

// Analysis is the immutable result of one pipeline run.
type Analysis struct {
	Asset           domain.Asset          `json:"asset"`
	Price           float64               `json:"price"`
	News            []domain.NewsItem     `json:"news"`
	Sentiment       float64               `json:"sentiment"`
	Prediction      domain.Prediction     `json:"prediction"`
	Volatility      float64               `json:"volatility_pct"`
	Samples         int                   `json:"samples"`
	Side            domain.Side           `json:"side"`
	Leverage        int                   `json:"leverage"`
	Amount          float64               `json:"amount"`
	Plan            *domain.TradePlan     `json:"plan,omitempty"`
	Outcomes        []domain.LevelOutcome `json:"outcomes,omitempty"`
	Custom          *domain.PLResult      `json:"custom,omitempty"`
	CalculatorError string                `json:"calculator_error,omitempty"`
	Elapsed         time.Duration         `json:"elapsed_ns"`
	GeneratedAt     time.Time             `json:"generated_at"`
}

type ChartSettings struct {
	Days     int
	Interval string
}

// AnalysisService runs the sentiment-to-trade-plan pipeline.
type AnalysisService struct {
	tracer     trace.Tracer
	prices     *PriceService
	news       NewsAggregator
	translator Translator
	metrics    Recorder
	chart      ChartSettings

	scorer     *analysis.LexiconScorer
	predictor  *analysis.Predictor
	volatility *analysis.VolatilityEstimator
	planner    *analysis.PlanBuilder

	now func() time.Time
}

func NewAnalysisService(
	tracer trace.Tracer,
	prices *PriceService,
	news NewsAggregator,
	translator Translator,
	metrics Recorder,
	params analysis.Params,
	chart ChartSettings,
) *AnalysisService {
	if chart.Days <= 0 {
		chart.Days = 1
	}
	if chart.Interval == "" {
		chart.Interval = "1h"
	}
	return &AnalysisService{
		tracer:     tracer,
		prices:     prices,
		news:       news,
		translator: translator,
		metrics:    metrics,
		chart:      chart,
		scorer:     analysis.NewLexiconScorer(),
		predictor:  analysis.NewPredictor(params),
		volatility: analysis.NewVolatilityEstimator(params),
		planner:    analysis.NewPlanBuilder(params),
		now:        time.Now,
	}
}

// Analyze resolves the asset, fetches news, price and series concurrently,
// and derives the plan. Only a missing price aborts; calculator problems
// are reported in Analysis.CalculatorError.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalysisRequest) (*Analysis, error) {
	ctx, span := s.tracer.Start(ctx, "analysis-service.analyze")
	defer span.End()
	started := s.now()

	asset, err := s.prices.Resolve(ctx, req.Query)
	if err != nil {
		s.metrics.Analysis(outcomeBadQuery)
		return nil, err
	}
	span.SetAttributes(attribute.String("asset.id", asset.ID))

	var (
		items  []domain.NewsItem
		price  float64
		series []domain.PriceSample
	)
	fetchStart := s.now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items = s.news.Aggregate(gctx, newsQuery(asset))
		return nil
	})
	g.Go(func() error {
		p, err := s.prices.CurrentPrice(gctx, asset.ID)
		if err != nil {
			return err
		}
		price = p
		return nil
	})
	g.Go(func() error {
		sr, err := s.prices.PriceSeries(gctx, asset.ID, s.chart.Days, s.chart.Interval)
		if err != nil {
			log.Warn().Err(err).Str("asset", asset.ID).Msg("price series unavailable, using default volatility")
			s.metrics.SourceFailure(seriesSource)
			return nil
		}
		series = sr
		return nil
	})
	if err := g.Wait(); err != nil {
		s.metrics.Analysis(outcomeNoPrice)
		if !errors.Is(err, domain.ErrNoPriceAvailable) {
			err = fmt.Errorf("%w: %v", domain.ErrNoPriceAvailable, err)
		}
		return nil, fmt.Errorf("analyze %s: %w", asset.ID, err)
	}
	s.metrics.StageDuration("fetch", s.now().Sub(fetchStart))

	computeStart := s.now()
	result := s.compute(asset, price, items, series, req)
	s.metrics.StageDuration("compute", s.now().Sub(computeStart))
	s.metrics.Sentiment(asset.ID, result.Sentiment)

	if req.Lang != "" && s.translator != nil {
		translateStart := s.now()
		result.News = s.translateNews(ctx, result.News, req.Lang)
		s.metrics.StageDuration("translate", s.now().Sub(translateStart))
	}

	result.GeneratedAt = s.now().UTC()
	result.Elapsed = result.GeneratedAt.Sub(started.UTC())
	s.metrics.Analysis(outcomeOK)
	span.SetAttributes(
		attribute.Float64("sentiment", result.Sentiment),
		attribute.String("side", string(result.Side)),
	)
	return result, nil
}

// compute is the pure part of the pipeline.
func (s *AnalysisService) compute(asset domain.Asset, price float64, items []domain.NewsItem, series []domain.PriceSample, req AnalysisRequest) *Analysis {
	sentiment := s.scorer.Score(items)
	prediction := s.predictor.Predict(sentiment)
	vol := s.volatility.Estimate(series)

	side := analysis.SideFor(prediction.Direction)
	if req.Side == domain.SideLong || req.Side == domain.SideShort {
		side = req.Side
	}

	amount := req.Amount
	if amount == 0 {
		amount = DefaultAmount
	}
	userLeverage := req.Leverage
	if !finite(userLeverage) {
		userLeverage = 0
	}

	out := &Analysis{
		Asset:      asset,
		Price:      price,
		News:       items,
		Sentiment:  sentiment,
		Prediction: prediction,
		Volatility: vol,
		Samples:    len(series),
		Side:       side,
		Leverage:   analysis.SuggestLeverage(prediction.Magnitude, userLeverage),
	}
	if amount > 0 && finite(amount) {
		out.Amount = amount
	}
	if side == domain.SideHold {
		out.Leverage = 1
		if req.Target != 0 {
			out.CalculatorError = "no trade side: prediction is flat, pass an explicit side to evaluate a target"
		}
		return out
	}

	plan := s.planner.Build(price, side, vol, prediction.Magnitude)
	out.Plan = &plan

	if req.Leverage < 0 || !finite(req.Leverage) {
		out.CalculatorError = fmt.Errorf("%w: leverage must be positive", domain.ErrInvalidInput).Error()
		return out
	}
	pos, err := analysis.NewPosition(price, amount, float64(out.Leverage), side)
	if err != nil {
		out.CalculatorError = err.Error()
		return out
	}
	out.Outcomes = analysis.EvaluatePlan(plan, pos.Notional)

	if req.Target != 0 {
		if err := analysis.ValidateTarget(req.Target); err != nil {
			out.CalculatorError = err.Error()
			return out
		}
		pl := analysis.Evaluate(pos, req.Target)
		out.Custom = &pl
	}
	return out
}

// translateNews translates titles and bodies for display; failures keep the original.
func (s *AnalysisService) translateNews(ctx context.Context, items []domain.NewsItem, lang string) []domain.NewsItem {
	out := make([]domain.NewsItem, len(items))
	copy(out, items)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(translateLimit)
	for i := range out {
		if out[i].IsPlaceholder() {
			continue
		}
		g.Go(func() error {
			out[i].Title = s.translate(gctx, out[i].Title, lang)
			out[i].Body = s.translate(gctx, out[i].Body, lang)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (s *AnalysisService) translate(ctx context.Context, text, lang string) string {
	if text == "" {
		return text
	}
	tr, err := s.translator.Translate(ctx, text, lang)
	if err != nil || tr == "" {
		if err != nil {
			log.Debug().Err(err).Str("lang", lang).Msg("translation failed, keeping original")
		}
		return text
	}
	return tr
}

// news search works better on display names than on CoinGecko ids
func newsQuery(asset domain.Asset) string {
	if asset.Name != "" && !domain.LooksLikeContract(asset.Name) {
		return asset.Name
	}
	return asset.ID
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
