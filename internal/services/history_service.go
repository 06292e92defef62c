package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/loterialab/sorteos-backend/internal/metrics"
	"github.com/loterialab/sorteos-backend/internal/models"
	"github.com/loterialab/sorteos-backend/internal/repositories"
	"github.com/loterialab/sorteos-backend/internal/utils"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

// ErrInvalidDate is returned for an unparseable end_date.
var ErrInvalidDate = fmt.Errorf("invalid date format, expected YYYY-MM-DD")

// HistoryService serves per-number appearance histories and gap-analysis
// windows derived from them.
type HistoryService interface {
	// NumberHistory returns, per category, every number's deduplicated and
	// sorted appearance dates. The response is cached per lottery until
	// Invalidate is called.
	NumberHistory(ctx context.Context, lottery lotteries.Spec) (map[string][]models.NumberDates, error)
	// GapPoints returns the appearances of one category inside the trailing
	// window of windowDays days ending at endDate (inclusive). An empty
	// endDate means today.
	GapPoints(ctx context.Context, lottery lotteries.Spec, category, endDate string, windowDays int) ([]models.GapPoint, error)
	// Invalidate drops the cached number history of a lottery.
	Invalidate(lottery lotteries.Spec)
}

type historyService struct {
	historyRepo repositories.NumberHistoryRepository
	cache       *lru.Cache[string, map[string][]models.NumberDates]
}

// NewHistoryService creates a new HistoryService. The cache holds one entry
// per lottery; the LRU bound only matters if more lotteries are added.
func NewHistoryService(historyRepo repositories.NumberHistoryRepository) HistoryService {
	cache, _ := lru.New[string, map[string][]models.NumberDates](8)
	return &historyService{
		historyRepo: historyRepo,
		cache:       cache,
	}
}

func (s *historyService) NumberHistory(ctx context.Context, lottery lotteries.Spec) (map[string][]models.NumberDates, error) {
	if cached, ok := s.cache.Get(lottery.Slug); ok {
		metrics.HistoryCacheHits.Inc()
		return cached, nil
	}
	metrics.HistoryCacheMisses.Inc()

	docs, err := s.historyRepo.FindAll(ctx, lottery)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]models.NumberDates)
	for _, r := range lottery.Categories() {
		out[string(r.Category)] = []models.NumberDates{}
	}
	for _, doc := range docs {
		if _, known := out[doc.Type]; !known {
			continue
		}
		seen := make(map[string]struct{}, len(doc.Appearances))
		dates := make([]string, 0, len(doc.Appearances))
		for _, app := range doc.Appearances {
			d := utils.DateOnly(app.Date)
			if d == "" {
				continue
			}
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			dates = append(dates, d)
		}
		sort.Strings(dates)
		out[doc.Type] = append(out[doc.Type], models.NumberDates{Number: doc.Number, Dates: dates})
	}

	s.cache.Add(lottery.Slug, out)
	return out, nil
}

func (s *historyService) GapPoints(ctx context.Context, lottery lotteries.Spec, category, endDate string, windowDays int) ([]models.GapPoint, error) {
	if !validCategory(lottery, category) {
		return nil, fmt.Errorf("unknown category %q for %s", category, lottery.Slug)
	}

	var end time.Time
	if endDate == "" {
		end = time.Now().UTC().Truncate(24 * time.Hour)
	} else {
		var err error
		end, err = time.Parse("2006-01-02", endDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}
	start := end.AddDate(0, 0, -windowDays)

	docs, err := s.historyRepo.FindByType(ctx, lottery, category)
	if err != nil {
		return nil, err
	}

	points := []models.GapPoint{}
	for _, doc := range docs {
		for _, app := range doc.Appearances {
			d := utils.DateOnly(app.Date)
			if d == "" {
				continue
			}
			appDate, err := time.Parse("2006-01-02", d)
			if err != nil {
				continue
			}
			if appDate.Before(start) || appDate.After(end) {
				continue
			}
			points = append(points, models.GapPoint{
				Type:      category,
				Number:    doc.Number,
				DrawIndex: app.DrawIndex,
				Date:      d,
			})
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points, nil
}

func (s *historyService) Invalidate(lottery lotteries.Spec) {
	s.cache.Remove(lottery.Slug)
}

func validCategory(lottery lotteries.Spec, category string) bool {
	for _, r := range lottery.Categories() {
		if string(r.Category) == category {
			return true
		}
	}
	return false
}
