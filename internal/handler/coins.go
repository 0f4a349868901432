package handler

import (
	"net/http"
	"sort"

	"crypto-sentiment-bot/internal/domain"

	"github.com/gin-gonic/gin"
)

// CoinsResponse lists the built-in coin catalogue.
type CoinsResponse struct {
	Coins   map[string]string `json:"coins"`
	Names   []string          `json:"names"`
	Tickers []string          `json:"tickers"`
}

// ListCoins godoc
// @Summary      List the popular coin catalogue
// @Description  Display names and tickers that resolve without a network lookup
// @Tags         analysis
// @Produce      json
// @Success      200  {object}  CoinsResponse
// @Router       /api/coins [get]
func (h *Handler) ListCoins(c *gin.Context) {
	tickers := make([]string, 0, len(domain.TickerAliases))
	for t := range domain.TickerAliases {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	c.JSON(http.StatusOK, CoinsResponse{
		Coins:   domain.PopularCoins,
		Names:   domain.PopularCoinNames(),
		Tickers: tickers,
	})
}
