package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loterialab/sorteos-backend/internal/services"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

// FeatureHandler handles feature-row HTTP requests.
type FeatureHandler struct {
	featureService services.FeatureService
	historyService services.HistoryService
}

// NewFeatureHandler creates a new FeatureHandler.
func NewFeatureHandler(featureService services.FeatureService, historyService services.HistoryService) *FeatureHandler {
	return &FeatureHandler{
		featureService: featureService,
		historyService: historyService,
	}
}

// lotteryParam resolves the :lottery path parameter, answering 404 for an
// unknown slug.
func lotteryParam(c *gin.Context) (lotteries.Spec, bool) {
	slug := c.Param("lottery")
	spec, ok := lotteries.BySlug(slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown lottery: " + slug})
		return lotteries.Spec{}, false
	}
	return spec, true
}

// GetFeatures handles GET /api/:lottery/features.
func (h *FeatureHandler) GetFeatures(c *gin.Context) {
	spec, ok := lotteryParam(c)
	if !ok {
		return
	}
	skip, limit := parsePagination(c)
	page, err := h.featureService.GetFeatures(c.Request.Context(), spec, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve features: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// RebuildFeatures handles POST /api/:lottery/features/rebuild.
func (h *FeatureHandler) RebuildFeatures(c *gin.Context) {
	spec, ok := lotteryParam(c)
	if !ok {
		return
	}
	processed, err := h.featureService.Rebuild(c.Request.Context(), spec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Feature rebuild failed: " + err.Error()})
		return
	}
	h.historyService.Invalidate(spec)
	c.JSON(http.StatusOK, gin.H{
		"lottery": spec.Slug,
		"draws":   processed,
		"message": "Feature datasets rebuilt",
	})
}
