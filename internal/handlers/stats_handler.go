package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loterialab/sorteos-backend/internal/services"
)

// StatsHandler handles time-series requests.
type StatsHandler struct {
	statsService services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetBetsSeries handles GET /api/:lottery/apuestas.
func (h *StatsHandler) GetBetsSeries(c *gin.Context) {
	spec, ok := lotteryParam(c)
	if !ok {
		return
	}
	points, err := h.statsService.BetsSeries(c.Request.Context(), spec, c.DefaultQuery("window", "3m"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}
