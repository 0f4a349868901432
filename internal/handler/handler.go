package handler

import (
	"context"
	"errors"
	"net/http"

	"crypto-sentiment-bot/internal/domain"
	"crypto-sentiment-bot/internal/scanner"
	"crypto-sentiment-bot/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Analyzer interface {
	Analyze(ctx context.Context, req service.AnalysisRequest) (*service.Analysis, error)
}

type TokenScanner interface {
	Scan(ctx context.Context, query string, limit int) (*scanner.Scan, error)
	Latest() *scanner.Scan
}

// ScanDefaults apply when a scan request omits query or limit.
type ScanDefaults struct {
	Query string
	Limit int
}

type Handler struct {
	tracer    trace.Tracer
	analyzer  Analyzer
	scans     TokenScanner
	watchlist *scanner.Watchlist
	defaults  ScanDefaults
	apiKey    string
}

func New(tracer trace.Tracer, analyzer Analyzer, scans TokenScanner, watchlist *scanner.Watchlist, defaults ScanDefaults) *Handler {
	if defaults.Limit <= 0 {
		defaults.Limit = 25
	}
	if watchlist == nil {
		watchlist = scanner.NewWatchlist()
	}
	return &Handler{
		tracer:    tracer,
		analyzer:  analyzer,
		scans:     scans,
		watchlist: watchlist,
		defaults:  defaults,
	}
}

// SetAPIKey guards the watchlist mutations with X-API-Key.
func (h *Handler) SetAPIKey(key string) {
	h.apiKey = key
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.GET("/coins", h.ListCoins)
	api.GET("/analyze/:query", h.Analyze)
	api.POST("/pl", h.CalculatePL)
	api.GET("/scan", h.Scan)
	api.GET("/watchlist", h.ListWatchlist)

	write := api.Group("", APIKeyAuth(h.apiKey))
	write.POST("/watchlist", h.AddToWatchlist)
	write.DELETE("/watchlist/:address", h.RemoveFromWatchlist)
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrEmptyQuery):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNoPriceAvailable):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func errIsInput(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrEmptyQuery)
}
