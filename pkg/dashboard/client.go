// Package dashboard is a client for the draws API, with the paginated
// query, gap-analysis and draw-card rendering logic the terminal
// dashboard is built on.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000"

// PageSize is the fixed page size of every paginated query.
const PageSize = 20

// Client talks to the draws API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client. An empty baseURL falls back to
// DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// apiError is the error body shape the API (and common proxies) send.
type apiError struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Error   string `json:"error"`
}

// getJSON issues a GET and decodes the JSON response into out. Non-2xx
// responses become an error carrying the body's message field when present,
// else the HTTP status text.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var e apiError
		if json.Unmarshal(body, &e) == nil {
			if e.Message != "" {
				return fmt.Errorf("%s", e.Message)
			}
			if e.Detail != "" {
				return fmt.Errorf("%s", e.Detail)
			}
			if e.Error != "" {
				return fmt.Errorf("%s", e.Error)
			}
		}
		return fmt.Errorf("%s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// totalPages computes the 1-indexed page count, never less than 1.
func totalPages(total int64) int {
	pages := int((total + PageSize - 1) / PageSize)
	if pages < 1 {
		pages = 1
	}
	return pages
}
