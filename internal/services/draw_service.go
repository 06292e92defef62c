package services

import (
	"context"
	"sort"

	"github.com/loterialab/sorteos-backend/internal/models"
	"github.com/loterialab/sorteos-backend/internal/repositories"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

// DrawService serves paginated draw queries.
type DrawService interface {
	// GetDraws returns one page of draws sorted by fecha_sorteo descending.
	// An empty or unknown lottery slug queries all three lotteries merged.
	GetDraws(ctx context.Context, lotterySlug, fromDate, toDate string, skip, limit int64) (*models.DrawPage, error)
}

type drawService struct {
	drawRepo repositories.DrawRepository
}

// NewDrawService creates a new DrawService.
func NewDrawService(drawRepo repositories.DrawRepository) DrawService {
	return &drawService{drawRepo: drawRepo}
}

func (s *drawService) GetDraws(ctx context.Context, lotterySlug, fromDate, toDate string, skip, limit int64) (*models.DrawPage, error) {
	if spec, ok := lotteries.BySlug(lotterySlug); ok {
		draws, total, err := s.drawRepo.FindPage(ctx, spec, repositories.DrawFilter{
			FromDate: fromDate,
			ToDate:   toDate,
			Skip:     skip,
			Limit:    limit,
		})
		if err != nil {
			return nil, err
		}
		return &models.DrawPage{Draws: draws, Total: total}, nil
	}

	// All lotteries: fetch everything matching the date filter from each
	// collection, merge by date descending and page in memory.
	var all []models.Draw
	for _, spec := range lotteries.All() {
		draws, _, err := s.drawRepo.FindPage(ctx, spec, repositories.DrawFilter{
			FromDate: fromDate,
			ToDate:   toDate,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, draws...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].DrawDate > all[j].DrawDate
	})

	total := int64(len(all))
	if skip < 0 {
		skip = 0
	}
	if skip > total {
		skip = total
	}
	end := skip + limit
	if limit <= 0 || end > total {
		end = total
	}
	page := all[skip:end]
	if page == nil {
		page = []models.Draw{}
	}
	return &models.DrawPage{Draws: page, Total: total}, nil
}
