package handler

import (
	"net/http"
	"strings"

	"crypto-sentiment-bot/internal/domain"
	"crypto-sentiment-bot/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// Analyze godoc
// @Summary      Run the sentiment analysis pipeline for an asset
// @Description  Aggregates news, scores sentiment, predicts direction and builds a trade plan with P/L outcomes
// @Tags         analysis
// @Produce      json
// @Param        query     path   string  true   "Coin name, ticker, CoinGecko id or contract address"
// @Param        side      query  string  false  "Override side (LONG or SHORT)"
// @Param        amount    query  number  false  "Margin in USD"  default(100)
// @Param        leverage  query  number  false  "Leverage (0 = suggested)"
// @Param        target    query  number  false  "Custom target price for the P/L calculator"
// @Param        lang      query  string  false  "Translate headlines to this language"
// @Success      200  {object}  service.Analysis
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/analyze/{query} [get]
func (h *Handler) Analyze(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.analyze")
	defer span.End()

	req, err := analysisRequest(c)
	if err != nil {
		writeError(c, err)
		return
	}
	span.SetAttributes(attribute.String("query", req.Query))

	result, err := h.analyzer.Analyze(ctx, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func analysisRequest(c *gin.Context) (service.AnalysisRequest, error) {
	req := service.AnalysisRequest{
		Query: strings.TrimSpace(c.Param("query")),
		Lang:  strings.ToLower(strings.TrimSpace(c.Query("lang"))),
	}
	if v := c.Query("side"); v != "" {
		side, err := domain.ParseSide(v)
		if err != nil {
			return req, err
		}
		req.Side = side
	}

	var err error
	if req.Amount, err = queryFloat(c, "amount"); err != nil {
		return req, err
	}
	if req.Leverage, err = queryFloat(c, "leverage"); err != nil {
		return req, err
	}
	if req.Target, err = queryFloat(c, "target"); err != nil {
		return req, err
	}
	return req, nil
}

func queryFloat(c *gin.Context, key string) (float64, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return 0, nil
	}
	return domain.ParseNumber(key, v)
}
