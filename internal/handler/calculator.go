package handler

import (
	"fmt"
	"net/http"

	"crypto-sentiment-bot/internal/analysis"
	"crypto-sentiment-bot/internal/domain"

	"github.com/gin-gonic/gin"
)

type PLRequest struct {
	EntryPrice  float64 `json:"entry_price"`
	Amount      float64 `json:"amount"`
	Leverage    float64 `json:"leverage"`
	Side        string  `json:"side"`
	TargetPrice float64 `json:"target_price"`
}

type PLResponse struct {
	Position domain.Position `json:"position"`
	Result   domain.PLResult `json:"result"`
}

// CalculatePL godoc
// @Summary      Profit/loss calculator
// @Description  Evaluates a hypothetical position (notional = amount x leverage) closed at a target price
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body  PLRequest  true  "Position and target"
// @Success      200  {object}  PLResponse
// @Failure      400  {object}  map[string]string
// @Router       /api/pl [post]
func (h *Handler) CalculatePL(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.calculate-pl")
	defer span.End()

	var req PLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	if req.Leverage == 0 {
		req.Leverage = 1
	}

	side, err := domain.ParseSide(req.Side)
	if err != nil {
		writeError(c, err)
		return
	}
	pos, err := analysis.NewPosition(req.EntryPrice, req.Amount, req.Leverage, side)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := analysis.ValidateTarget(req.TargetPrice); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, PLResponse{Position: pos, Result: analysis.Evaluate(pos, req.TargetPrice)})
}
