package dashboard

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

// featurePage is the response body of GET /api/{lottery}/features.
type featurePage struct {
	Features []FeatureRow `json:"features"`
	Total    int64        `json:"total"`
}

// FeatureQuery fetches one page of feature rows at a time for a single
// lottery. One instance serves one lottery; which bonus fields the rows
// carry follows the lottery's bonus shape. Pagination and error behavior
// match DrawQuery: page moves refetch immediately, a failed fetch clears
// the rows, overlapping fetches resolve to the latest one issued.
type FeatureQuery struct {
	client *Client
	spec   lotteries.Spec

	mu         sync.Mutex
	skip       int
	generation uint64

	rows  []FeatureRow
	total int64
	err   string
}

// NewFeatureQuery creates a feature query for one lottery.
func NewFeatureQuery(client *Client, spec lotteries.Spec) *FeatureQuery {
	return &FeatureQuery{client: client, spec: spec, rows: []FeatureRow{}}
}

// Load fetches the first page, resetting the offset.
func (q *FeatureQuery) Load(ctx context.Context) {
	q.mu.Lock()
	q.skip = 0
	q.mu.Unlock()
	q.fetch(ctx)
}

// NextPage advances one page and refetches.
func (q *FeatureQuery) NextPage(ctx context.Context) {
	q.mu.Lock()
	if q.skip/PageSize+1 >= totalPages(q.total) {
		q.mu.Unlock()
		return
	}
	q.skip += PageSize
	q.mu.Unlock()
	q.fetch(ctx)
}

// PrevPage goes back one page and refetches.
func (q *FeatureQuery) PrevPage(ctx context.Context) {
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

func (q *FeatureQuery) fetch(ctx context.Context) {
	q.mu.Lock()
	skip := q.skip
	q.generation++
	gen := q.generation
	q.mu.Unlock()

	query := url.Values{}
	query.Set("limit", strconv.Itoa(PageSize))
	query.Set("skip", strconv.Itoa(skip))

	var page featurePage
	if err := q.client.getJSON(ctx, "/api/"+q.spec.Slug+"/features", query, &page); err != nil {
		q.apply(gen, []FeatureRow{}, 0, err.Error())
		return
	}
	if page.Features == nil {
		page.Features = []FeatureRow{}
	}
	q.apply(gen, page.Features, page.Total, "")
}

func (q *FeatureQuery) apply(gen uint64, rows []FeatureRow, total int64, errMsg string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if gen != q.generation {
		return
	}
	q.rows = rows
	q.total = total
	q.err = errMsg
}

// Rows returns the current page's feature rows in server order.
func (q *FeatureQuery) Rows() []FeatureRow {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.rows
}

// Total returns the total feature row count.
func (q *FeatureQuery) Total() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.total
}

// Err returns the last fetch's error message, empty on success.
func (q *FeatureQuery) Err() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.err
}

// CurrentPage returns the 1-indexed page number.
func (q *FeatureQuery) CurrentPage() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.skip/PageSize + 1
}

// TotalPages returns the page count, at least 1.
func (q *FeatureQuery) TotalPages() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return totalPages(q.total)
}
