package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"crypto-sentiment-bot/internal/domain"
	"crypto-sentiment-bot/internal/scanner"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// Scan godoc
// @Summary      Rank tokens by on-chain activity
// @Description  Without a query the latest background scan is returned when available
// @Tags         scanner
// @Produce      json
// @Param        query  query  string  false  "Token feed search query"
// @Param        limit  query  int     false  "Maximum tokens returned"  default(25)
// @Param        amount    query  number  false  "Margin in USD for per-token P/L"  default(100)
// @Param        leverage  query  number  false  "Leverage for per-token P/L"  default(1)
// @Success      200  {object}  scanner.Scan
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/scan [get]
func (h *Handler) Scan(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.scan")
	defer span.End()

	query := strings.TrimSpace(c.Query("query"))
	limit := h.defaults.Limit
	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			writeError(c, fmt.Errorf("%w: limit must be a positive integer", domain.ErrInvalidInput))
			return
		}
		limit = n
	}

	margin, leverage, err := scanPosition(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if query == "" {
		if latest := h.scans.Latest(); latest != nil {
			h.writeScan(c, latest, margin, leverage)
			return
		}
		query = h.defaults.Query
	}
	span.SetAttributes(attribute.String("query", query), attribute.Int("limit", limit))

	result, err := h.scans.Scan(ctx, query, limit)
	if err != nil {
		if errIsInput(err) {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	h.writeScan(c, result, margin, leverage)
}

func (h *Handler) writeScan(c *gin.Context, s *scanner.Scan, margin, leverage float64) {
	priced, err := s.Priced(margin, leverage)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, priced)
}

// scanPosition reads the margin and leverage used for per-token P/L.
func scanPosition(c *gin.Context) (float64, float64, error) {
	margin, err := queryFloat(c, "amount")
	if err != nil {
		return 0, 0, err
	}
	leverage, err := queryFloat(c, "leverage")
	if err != nil {
		return 0, 0, err
	}
	if c.Query("amount") == "" {
		margin = scanner.DefaultMargin
	}
	if c.Query("leverage") == "" {
		leverage = scanner.DefaultLeverage
	}
	return margin, leverage, nil
}

type WatchRequest struct {
	Address string `json:"address"`
}

// ListWatchlist godoc
// @Summary      List watched tokens
// @Tags         scanner
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/watchlist [get]
func (h *Handler) ListWatchlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tokens": h.watchlist.List()})
}

// AddToWatchlist godoc
// @Summary      Watch a token from the latest scan
// @Tags         scanner
// @Accept       json
// @Produce      json
// @Param        request  body  WatchRequest  true  "Token address"
// @Success      201  {object}  domain.TokenSnapshot
// @Success      200  {object}  domain.TokenSnapshot
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/watchlist [post]
func (h *Handler) AddToWatchlist(c *gin.Context) {
	var req WatchRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Address) == "" {
		writeError(c, fmt.Errorf("%w: address is required", domain.ErrInvalidInput))
		return
	}
	address := strings.TrimSpace(req.Address)

	snap, ok := h.findInLatest(address)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "token not found in latest scan: " + address})
		return
	}
	_, watched := h.watchlist.Get(snap.Address)
	h.watchlist.Add(snap)
	if watched {
		c.JSON(http.StatusOK, snap)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// RemoveFromWatchlist godoc
// @Summary      Stop watching a token
// @Tags         scanner
// @Produce      json
// @Param        address  path  string  true  "Token address"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/watchlist/{address} [delete]
func (h *Handler) RemoveFromWatchlist(c *gin.Context) {
	if !h.watchlist.Remove(c.Param("address")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "token not watched"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) findInLatest(address string) (domain.TokenSnapshot, bool) {
	latest := h.scans.Latest()
	if latest == nil {
		return domain.TokenSnapshot{}, false
	}
	for _, r := range latest.Tokens {
		if strings.EqualFold(r.Token.Address, address) {
			return r.Token, true
		}
	}
	return domain.TokenSnapshot{}, false
}
