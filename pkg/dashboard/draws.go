package dashboard

import (
	"context"
	"net/url"
	"strconv"
	"sync"
)

// drawFilter is the filter set a fetch actually runs with. Edits to the
// staged fields on DrawQuery take effect only through Search.
type drawFilter struct {
	lottery  string
	fromDate string
	toDate   string
}

// drawPage is the response body of GET /api/draws.
type drawPage struct {
	Draws []Draw `json:"draws"`
	Total int64  `json:"total"`
}

// DrawQuery fetches one page of draws at a time for a lottery and optional
// date range. Filter edits are staged: changing Lottery, FromDate or ToDate
// does nothing until Search is called, which applies them and resets the
// offset to 0. Page moves refetch immediately. When fetches overlap, only
// the latest-issued request's response is applied.
type DrawQuery struct {
	client *Client

	// Staged filters, edited freely between searches.
	Lottery  string
	FromDate string
	ToDate   string

	mu         sync.Mutex
	applied    drawFilter
	skip       int
	generation uint64

	rows  []Draw
	total int64
	err   string
}

// NewDrawQuery creates a draw query with empty results.
func NewDrawQuery(client *Client) *DrawQuery {
	return &DrawQuery{client: client, rows: []Draw{}}
}

// Search applies the staged filters, resets the offset to 0 and fetches
// the first page. An empty lottery clears the results without calling
// the API.
func (q *DrawQuery) Search(ctx context.Context) {
	q.mu.Lock()
	q.applied = drawFilter{lottery: q.Lottery, fromDate: q.FromDate, toDate: q.ToDate}
	q.skip = 0
	q.mu.Unlock()
	q.fetch(ctx)
}

// NextPage advances one page and refetches. Past the last page it does
// nothing.
func (q *DrawQuery) NextPage(ctx context.Context) {
	q.mu.Lock()
	if q.skip/PageSize+1 >= totalPages(q.total) {
		q.mu.Unlock()
		return
	}
	q.skip += PageSize
	q.mu.Unlock()
	q.fetch(ctx)
}

// PrevPage goes back one page and refetches. On the first page it does
// nothing.
func (q *DrawQuery) PrevPage(ctx context.Context) {
	q.mu.Lock()
	if q.skip == 0 {
		q.mu.Unlock()
		return
	}
	q.skip -= PageSize
	if q.skip < 0 {
		q.skip = 0
	}
	q.mu.Unlock()
	q.fetch(ctx)
}

func (q *DrawQuery) fetch(ctx context.Context) {
	q.mu.Lock()
	filter := q.applied
	skip := q.skip
	q.generation++
	gen := q.generation
	q.mu.Unlock()

	if filter.lottery == "" {
		q.apply(gen, []Draw{}, 0, "")
		return
	}

	query := url.Values{}
	query.Set("lottery", filter.lottery)
	query.Set("limit", strconv.Itoa(PageSize))
	query.Set("skip", strconv.Itoa(skip))
	if filter.fromDate != "" {
		query.Set("from_date", filter.fromDate)
	}
	if filter.toDate != "" {
		query.Set("to_date", filter.toDate)
	}

	var page drawPage
	if err := q.client.getJSON(ctx, "/api/draws", query, &page); err != nil {
		q.apply(gen, []Draw{}, 0, err.Error())
		return
	}
	if page.Draws == nil {
		page.Draws = []Draw{}
	}
	q.apply(gen, page.Draws, page.Total, "")
}

// apply stores a fetch result unless a newer fetch has been issued since.
func (q *DrawQuery) apply(gen uint64, rows []Draw, total int64, errMsg string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if gen != q.generation {
		return
	}
	q.rows = rows
	q.total = total
	q.err = errMsg
}

// Rows returns the current page's draws in server order.
func (q *DrawQuery) Rows() []Draw {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.rows
}

// Total returns the total matching draw count.
func (q *DrawQuery) Total() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.total
}

// Err returns the last fetch's error message, empty on success.
func (q *DrawQuery) Err() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.err
}

// CurrentPage returns the 1-indexed page number.
func (q *DrawQuery) CurrentPage() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.skip/PageSize + 1
}

// TotalPages returns the page count, at least 1 even with no results.
func (q *DrawQuery) TotalPages() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return totalPages(q.total)
}
