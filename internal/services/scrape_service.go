package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/loterialab/sorteos-backend/internal/metrics"
	"github.com/loterialab/sorteos-backend/internal/models"
	"github.com/loterialab/sorteos-backend/internal/repositories"
	"github.com/loterialab/sorteos-backend/internal/utils"
	"github.com/loterialab/sorteos-backend/pkg/combinations"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

// ResultsFetcher fetches raw draw documents from the upstream results API.
// Implemented by pkg/resultsapi.Client.
type ResultsFetcher interface {
	FetchDraws(ctx context.Context, gameID, resultsPath, startDate, endDate string) ([]map[string]interface{}, error)
}

// ScrapeService pulls draws from the upstream API (or accepts pasted JSON)
// and stores normalized documents.
type ScrapeService interface {
	// ScrapeRange fetches and saves one lottery's draws for a date range
	// (dates in "YYYYMMDD" form, inclusive).
	ScrapeRange(ctx context.Context, lotterySlug, startDate, endDate string) (*models.ScrapeResult, error)
	// ScrapeDaily fetches the last three days for every lottery in the
	// daily order. One lottery failing does not stop the rest.
	ScrapeDaily(ctx context.Context) ([]models.ScrapeResult, string)
	// Import saves a pasted JSON array of raw draws, the manual fallback
	// for when the upstream blocks direct requests.
	Import(ctx context.Context, raw []map[string]interface{}) (*models.ScrapeResult, error)
}

type scrapeService struct {
	fetcher      ResultsFetcher
	drawRepo     repositories.DrawRepository
	metadataRepo repositories.MetadataRepository
}

// NewScrapeService creates a new ScrapeService.
func NewScrapeService(fetcher ResultsFetcher, drawRepo repositories.DrawRepository, metadataRepo repositories.MetadataRepository) ScrapeService {
	return &scrapeService{
		fetcher:      fetcher,
		drawRepo:     drawRepo,
		metadataRepo: metadataRepo,
	}
}

func (s *scrapeService) ScrapeRange(ctx context.Context, lotterySlug, startDate, endDate string) (*models.ScrapeResult, error) {
	spec, ok := lotteries.BySlug(lotterySlug)
	if !ok {
		return nil, fmt.Errorf("unknown lottery: %s", lotterySlug)
	}

	data, err := s.fetcher.FetchDraws(ctx, spec.GameID, spec.ResultsPath, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("upstream fetch failed: %w", err)
	}

	saved, errs := s.saveDraws(ctx, data)
	metrics.ScrapedDrawsTotal.WithLabelValues(spec.Slug).Add(float64(saved))
	if maxDate := maxDrawDate(data); maxDate != "" {
		if err := s.metadataRepo.SetLastDrawDate(ctx, spec.Slug, maxDate); err != nil {
			errs = append(errs, err.Error())
		}
	}

	return &models.ScrapeResult{
		Lottery:   spec.Slug,
		GameID:    spec.GameID,
		Saved:     saved,
		Total:     len(data),
		StartDate: startDate,
		EndDate:   endDate,
		Message:   fmt.Sprintf("Saved %d draws", saved),
		Errors:    truncateErrors(errs),
	}, nil
}

func (s *scrapeService) ScrapeDaily(ctx context.Context) ([]models.ScrapeResult, string) {
	today := time.Now().Format("2006-01-02")
	start := time.Now().AddDate(0, 0, -3).Format("2006-01-02")

	results := make([]models.ScrapeResult, 0, len(lotteries.DailyOrder))
	for _, spec := range lotteries.DailyOrder {
		res, err := s.ScrapeRange(ctx, spec.Slug, utils.CompactDate(start), utils.CompactDate(today))
		if err != nil {
			results = append(results, models.ScrapeResult{
				Lottery: spec.Slug,
				Message: err.Error(),
			})
			continue
		}
		results = append(results, *res)
	}
	return results, today
}

func (s *scrapeService) Import(ctx context.Context, raw []map[string]interface{}) (*models.ScrapeResult, error) {
	saved, errs := s.saveDraws(ctx, raw)
	return &models.ScrapeResult{
		Saved:   saved,
		Total:   len(raw),
		Message: fmt.Sprintf("Saved %d draws", saved),
		Errors:  truncateErrors(errs),
	}, nil
}

// saveDraws normalizes and upserts raw draws into the collection matching
// each draw's game_id. Draws without id_sorteo or with an unknown game_id
// are skipped silently, like the original importer.
func (s *scrapeService) saveDraws(ctx context.Context, data []map[string]interface{}) (int, []string) {
	saved := 0
	var errs []string
	for _, raw := range data {
		drawID := stringField(raw, "id_sorteo")
		gameID := stringField(raw, "game_id")
		if drawID == "" || gameID == "" {
			continue
		}
		spec, ok := lotteries.ByGameID(gameID)
		if !ok {
			continue
		}
		doc := NormalizeDraw(raw)
		if err := s.drawRepo.Upsert(ctx, spec, doc); err != nil {
			errs = append(errs, err.Error())
			continue
		}
		saved++
	}
	return saved, errs
}

// NormalizeDraw keeps every upstream field and adds the parsed fields the
// API guarantees: numbers, complementario, reintegro and joker_combinacion
// (from the joker or millon subdocument).
func NormalizeDraw(raw map[string]interface{}) bson.M {
	doc := bson.M{}
	for k, v := range raw {
		doc[k] = v
	}
	doc["id_sorteo"] = stringField(raw, "id_sorteo")

	parsed := combinations.ParseCombination(stringField(raw, "combinacion"))
	doc["numbers"] = parsed.Numbers
	doc["complementario"] = parsed.Complementario
	doc["reintegro"] = parsed.Reintegro

	var joker interface{}
	if sub, ok := raw["joker"].(map[string]interface{}); ok && sub["combinacion"] != nil {
		joker = sub["combinacion"]
	} else if sub, ok := raw["millon"].(map[string]interface{}); ok && sub["combinacion"] != nil {
		joker = sub["combinacion"]
	}
	doc["joker_combinacion"] = joker
	return doc
}

// maxDrawDate returns the greatest fecha_sorteo date ("YYYY-MM-DD") in a
// raw draw list.
func maxDrawDate(data []map[string]interface{}) string {
	max := ""
	for _, raw := range data {
		d := utils.DateOnly(stringField(raw, "fecha_sorteo"))
		if d != "" && d > max {
			max = d
		}
	}
	return max
}

func stringField(raw map[string]interface{}, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	default:
		return fmt.Sprint(t)
	}
}

func truncateErrors(errs []string) []string {
	if len(errs) > 5 {
		return errs[:5]
	}
	return errs
}
