package services

import (
	"context"
	"fmt"
	"time"

	"github.com/loterialab/sorteos-backend/internal/models"
	"github.com/loterialab/sorteos-backend/internal/repositories"
	"github.com/loterialab/sorteos-backend/internal/utils"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

// StatsService builds the apuestas/premios/premio_bote time series.
type StatsService interface {
	// BetsSeries returns one point per draw, ascending by date, for the
	// window "3m", "6m", "1y" or "all".
	BetsSeries(ctx context.Context, lottery lotteries.Spec, window string) ([]models.SeriesPoint, error)
}

type statsService struct {
	drawRepo repositories.DrawRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(drawRepo repositories.DrawRepository) StatsService {
	return &statsService{drawRepo: drawRepo}
}

func windowStart(window string, now time.Time) (string, error) {
	switch window {
	case "all":
		return "", nil
	case "3m":
		return now.AddDate(0, 0, -90).Format("2006-01-02"), nil
	case "6m":
		return now.AddDate(0, 0, -180).Format("2006-01-02"), nil
	case "1y":
		return now.AddDate(0, 0, -365).Format("2006-01-02"), nil
	default:
		return "", fmt.Errorf("invalid window %q, expected 3m|6m|1y|all", window)
	}
}

func (s *statsService) BetsSeries(ctx context.Context, lottery lotteries.Spec, window string) ([]models.SeriesPoint, error) {
	start, err := windowStart(window, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	draws, err := s.drawRepo.FindAllAscending(ctx, lottery)
	if err != nil {
		return nil, err
	}

	points := []models.SeriesPoint{}
	for _, d := range draws {
		date := utils.DateOnly(d.DrawDate)
		if d.DrawID == "" || date == "" {
			continue
		}
		if start != "" && date < start {
			continue
		}

		bets := d.Bets
		if bets == "" {
			bets = d.BetsAlt
		}

		prizes := utils.ParseSpanishFloat(d.Prizes)
		if prizes != nil {
			// Upstream premios values are 100x the euro amount.
			v := *prizes / 100.0
			prizes = &v
		}

		points = append(points, models.SeriesPoint{
			DrawID:  d.DrawID,
			Date:    date,
			Bets:    utils.ParseSpanishInt(bets),
			Prizes:  prizes,
			Jackpot: utils.ParseSpanishFloat(d.Jackpot),
		})
	}
	return points, nil
}
