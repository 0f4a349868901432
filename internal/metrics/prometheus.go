package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exports pipeline and upstream metrics to Prometheus.
type Recorder struct {
	analyses       *prometheus.CounterVec
	sourceFailures *prometheus.CounterVec
	stageDuration  *prometheus.HistogramVec
	scannerTokens  prometheus.Gauge
	lastSentiment  *prometheus.GaugeVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer to
// serve them from promhttp.Handler().
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		analyses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptosignal_analyses_total",
				Help: "Analysis requests by outcome",
			},
			[]string{"outcome"},
		),
		sourceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptosignal_source_failures_total",
				Help: "Upstream source failures absorbed by the pipeline",
			},
			[]string{"source"},
		),
		stageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cryptosignal_stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		scannerTokens: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "cryptosignal_scanner_tokens",
				Help: "Tokens ranked by the latest scan",
			},
		),
		lastSentiment: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cryptosignal_last_sentiment",
				Help: "Most recent sentiment score per asset",
			},
			[]string{"asset"},
		),
	}
}

func (r *Recorder) Analysis(outcome string) {
	r.analyses.WithLabelValues(outcome).Inc()
}

func (r *Recorder) SourceFailure(source string) {
	r.sourceFailures.WithLabelValues(source).Inc()
}

func (r *Recorder) StageDuration(stage string, d time.Duration) {
	r.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (r *Recorder) ScannerTokens(n int) {
	r.scannerTokens.Set(float64(n))
}

func (r *Recorder) Sentiment(asset string, score float64) {
	r.lastSentiment.WithLabelValues(asset).Set(score)
}

// Nop discards everything. Useful in tests and when metrics are disabled.
type Nop struct{}

func (Nop) Analysis(string)                     {}
func (Nop) SourceFailure(string)                {}
func (Nop) StageDuration(string, time.Duration) {}
func (Nop) ScannerTokens(int)                   {}
func (Nop) Sentiment(string, float64)           {}
