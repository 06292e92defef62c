package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/loterialab/sorteos-backend/internal/services"
)

var compactDateRe = regexp.MustCompile(`^\d{8}$`)

// ScrapeHandler handles ingestion HTTP requests.
type ScrapeHandler struct {
	scrapeService services.ScrapeService
}

// NewScrapeHandler creates a new ScrapeHandler.
func NewScrapeHandler(scrapeService services.ScrapeService) *ScrapeHandler {
	return &ScrapeHandler{scrapeService: scrapeService}
}

// Scrape handles GET /api/scrape?lottery=&start_date=&end_date= with dates
// in YYYYMMDD form.
func (h *ScrapeHandler) Scrape(c *gin.Context) {
	lottery := c.Query("lottery")
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if lottery == "" || !compactDateRe.MatchString(startDate) || !compactDateRe.MatchString(endDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lottery, start_date and end_date (YYYYMMDD) are required"})
		return
	}

	result, err := h.scrapeService.ScrapeRange(c.Request.Context(), lottery, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ScrapeDaily handles POST /api/scrape/daily: the last three days for every
// lottery, called by the scheduler just after midnight.
func (h *ScrapeHandler) ScrapeDaily(c *gin.Context) {
	results, date := h.scrapeService.ScrapeDaily(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"results": results, "date": date})
}

// Import handles POST /api/scrape/import: a pasted JSON array of raw draws,
// for when the upstream API refuses direct requests.
func (h *ScrapeHandler) Import(c *gin.Context) {
	var body []map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body must be a JSON array of draws"})
		return
	}
	result, err := h.scrapeService.Import(c.Request.Context(), body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
