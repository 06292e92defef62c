// Package resultsapi is the HTTP client for the official draw results API.
package resultsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/loterialab/sorteos-backend/internal/metrics"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client represents a results API client. The upstream blocks obvious bots,
// so requests carry a browser User-Agent and a Referer pointing at the
// lottery's public results page, and are rate limited to one per delay.
type Client struct {
	BaseURL    string
	SiteOrigin string
	Mock       bool
	client     *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new results API client. requestDelayMS is the minimum
// time between upstream requests.
func NewClient(baseURL, siteOrigin string, mock bool, requestDelayMS int) *Client {
	if requestDelayMS < 1 {
		requestDelayMS = 1
	}
	return &Client{
		BaseURL:    baseURL,
		SiteOrigin: siteOrigin,
		Mock:       mock,
		client:     &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Duration(requestDelayMS)*time.Millisecond), 1),
	}
}

// FetchDraws retrieves the celebrated draws for one game between two dates
// in "YYYYMMDD" form, inclusive.
func (c *Client) FetchDraws(ctx context.Context, gameID, resultsPath, startDate, endDate string) ([]map[string]interface{}, error) {
	if c.Mock {
		return c.mockFetchDraws(gameID, startDate, endDate)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("game_id", gameID)
	q.Set("celebrados", "true")
	q.Set("fechaInicioInclusiva", startDate)
	q.Set("fechaFinInclusiva", endDate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if c.SiteOrigin != "" {
		req.Header.Set("Origin", c.SiteOrigin)
		req.Header.Set("Referer", c.SiteOrigin+resultsPath)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestsTotal.Inc()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, string(body))
	}

	var draws []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&draws); err != nil {
		return nil, fmt.Errorf("decoding upstream response: %w", err)
	}
	return draws, nil
}
