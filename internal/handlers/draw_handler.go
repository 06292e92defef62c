package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/loterialab/sorteos-backend/internal/services"
)

// DrawHandler handles draw-related HTTP requests.
type DrawHandler struct {
	drawService services.DrawService
}

// NewDrawHandler creates a new DrawHandler.
func NewDrawHandler(drawService services.DrawService) *DrawHandler {
	return &DrawHandler{drawService: drawService}
}

// parsePagination reads limit/skip query params with the original bounds:
// limit defaults to 50, capped to 1..200; skip defaults to 0, never
// negative.
func parsePagination(c *gin.Context) (skip, limit int64) {
	limit = 50
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil {
		limit = v
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 200 {
		limit = 200
	}
	if v, err := strconv.ParseInt(c.Query("skip"), 10, 64); err == nil && v > 0 {
		skip = v
	}
	return skip, limit
}

// GetDraws handles GET /api/draws.
func (h *DrawHandler) GetDraws(c *gin.Context) {
	skip, limit := parsePagination(c)
	page, err := h.drawService.GetDraws(
		c.Request.Context(),
		c.Query("lottery"),
		c.Query("from_date"),
		c.Query("to_date"),
		skip,
		limit,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve draws: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}
