package dashboard

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

// gapWindowDays is the trailing window of a gap chart: the reference date
// and the 30 days before it.
const gapWindowDays = 31

// GapBuilder derives the gap chart for one lottery: per number category,
// the (number, appearance date) pairs falling inside a 31-day window
// ending at a chosen draw date. The full number-history is fetched once
// and cached for the builder's lifetime; every chart after that is
// computed locally.
type GapBuilder struct {
	client *Client
	spec   lotteries.Spec

	mu         sync.Mutex
	history    map[string][]NumberDates
	loaded     bool
	generation uint64

	points map[string][]GapPoint
	err    string
}

// NewGapBuilder creates a gap builder for one lottery.
func NewGapBuilder(client *Client, spec lotteries.Spec) *GapBuilder {
	return &GapBuilder{client: client, spec: spec}
}

// EnsureHistoryLoaded fetches the number-history once. Repeat calls after
// a success are no-ops; after a failure the next call retries.
func (b *GapBuilder) EnsureHistoryLoaded(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.loaded {
		return nil
	}

	var history map[string][]NumberDates
	if err := b.client.getJSON(ctx, "/api/"+b.spec.Slug+"/number-history", nil, &history); err != nil {
		return err
	}
	b.history = history
	b.loaded = true
	return nil
}

// LoadGapsForDate computes the gap points for the window ending at endDate
// ("YYYY-MM-DD", inclusive). Day boundaries are UTC so stored dates and
// chart labels agree. An unparseable endDate resets the point sets to nil
// and records an error. When calls overlap, the latest call's result wins.
func (b *GapBuilder) LoadGapsForDate(endDate string) {
	b.mu.Lock()
	b.generation++
	gen := b.generation
	history := b.history
	b.mu.Unlock()

	end, err := time.ParseInLocation("2006-01-02", endDate, time.UTC)
	if err != nil {
		b.apply(gen, nil, fmt.Sprintf("Invalid draw date: %s", endDate))
		return
	}
	start := end.AddDate(0, 0, -(gapWindowDays - 1))

	points := make(map[string][]GapPoint)
	for category, entries := range history {
		var pts []GapPoint
		for _, entry := range entries {
			for _, date := range entry.Dates {
				d, err := time.ParseInLocation("2006-01-02", date, time.UTC)
				if err != nil {
					continue
				}
				if d.Before(start) || d.After(end) {
					continue
				}
				pts = append(pts, GapPoint{
					Number: entry.Number,
					Time:   d.UnixMilli(),
					Date:   date,
				})
			}
		}
		sort.Slice(pts, func(i, j int) bool {
			if pts[i].Time != pts[j].Time {
				return pts[i].Time < pts[j].Time
			}
			return pts[i].Number < pts[j].Number
		})
		points[category] = pts
	}
	b.apply(gen, points, "")
}

func (b *GapBuilder) apply(gen uint64, points map[string][]GapPoint, errMsg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		return
	}
	b.points = points
	b.err = errMsg
}

// Points returns the last computed point sets keyed by category, or nil
// when nothing has been computed (or the last computation failed).
func (b *GapBuilder) Points() map[string][]GapPoint {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.points
}

// Err returns the last computation's error message, empty on success.
func (b *GapBuilder) Err() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}
