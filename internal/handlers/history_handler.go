package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/loterialab/sorteos-backend/internal/services"
)

// HistoryHandler handles number-history and gap-analysis requests.
type HistoryHandler struct {
	historyService services.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// GetNumberHistory handles GET /api/:lottery/number-history.
func (h *HistoryHandler) GetNumberHistory(c *gin.Context) {
	spec, ok := lotteryParam(c)
	if !ok {
		return
	}
	history, err := h.historyService.NumberHistory(c.Request.Context(), spec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve number history: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetGaps handles GET /api/:lottery/gaps.
func (h *HistoryHandler) GetGaps(c *gin.Context) {
	spec, ok := lotteryParam(c)
	if !ok {
		return
	}

	category := c.DefaultQuery("type", "main")
	windowDays := 31
	if v, err := strconv.Atoi(c.Query("window_days")); err == nil {
		windowDays = v
	}
	if windowDays < 1 || windowDays > 365 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "window_days must be between 1 and 365"})
		return
	}

	points, err := h.historyService.GapPoints(c.Request.Context(), spec, category, c.Query("end_date"), windowDays)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute gaps: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}
