package services

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/loterialab/sorteos-backend/internal/models"
	"github.com/loterialab/sorteos-backend/internal/repositories"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

// In-memory repository fakes shared by the service tests.

type fakeDrawRepo struct {
	draws   map[string][]models.Draw // keyed by slug, ascending by date
	upserts map[string][]bson.M
	failAll bool
}

func newFakeDrawRepo() *fakeDrawRepo {
	return &fakeDrawRepo{
		draws:   make(map[string][]models.Draw),
		upserts: make(map[string][]bson.M),
	}
}

func (f *fakeDrawRepo) FindPage(ctx context.Context, lottery lotteries.Spec, filter repositories.DrawFilter) ([]models.Draw, int64, error) {
	if f.failAll {
		return nil, 0, fmt.Errorf("repository down")
	}
	matched := []models.Draw{}
	for _, d := range f.draws[lottery.Slug] {
		if filter.FromDate != "" && d.DrawDate < filter.FromDate+" 00:00:00" {
			continue
		}
		if filter.ToDate != "" && d.DrawDate > filter.ToDate+" 23:59:59" {
			continue
		}
		matched = append(matched, d)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].DrawDate > matched[j].DrawDate
	})
	total := int64(len(matched))

	skip := filter.Skip
	if skip > total {
		skip = total
	}
	end := total
	if filter.Limit > 0 && skip+filter.Limit < total {
		end = skip + filter.Limit
	}
	return matched[skip:end], total, nil
}

func (f *fakeDrawRepo) FindAllAscending(ctx context.Context, lottery lotteries.Spec) ([]models.Draw, error) {
	if f.failAll {
		return nil, fmt.Errorf("repository down")
	}
	return f.draws[lottery.Slug], nil
}

func (f *fakeDrawRepo) Upsert(ctx context.Context, lottery lotteries.Spec, doc bson.M) error {
	f.upserts[lottery.Slug] = append(f.upserts[lottery.Slug], doc)
	return nil
}

func (f *fakeDrawRepo) EnsureIndexes(ctx context.Context, lottery lotteries.Spec) error {
	return nil
}

type fakeFeatureRepo struct {
	rows map[string][]*models.FeatureRow
}

func newFakeFeatureRepo() *fakeFeatureRepo {
	return &fakeFeatureRepo{rows: make(map[string][]*models.FeatureRow)}
}

func (f *fakeFeatureRepo) FindPage(ctx context.Context, lottery lotteries.Spec, skip, limit int64) ([]models.FeatureRow, int64, error) {
	rows := f.rows[lottery.Slug]
	out := make([]models.FeatureRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeFeatureRepo) Upsert(ctx context.Context, lottery lotteries.Spec, row *models.FeatureRow) error {
	copied := *row
	f.rows[lottery.Slug] = append(f.rows[lottery.Slug], &copied)
	return nil
}

func (f *fakeFeatureRepo) EnsureIndexes(ctx context.Context, lottery lotteries.Spec) error {
	return nil
}

type fakeHistoryRepo struct {
	docs     map[string][]models.NumberHistory // keyed by slug
	findAlls int
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{docs: make(map[string][]models.NumberHistory)}
}

func (f *fakeHistoryRepo) FindAll(ctx context.Context, lottery lotteries.Spec) ([]models.NumberHistory, error) {
	f.findAlls++
	return f.docs[lottery.Slug], nil
}

func (f *fakeHistoryRepo) FindByType(ctx context.Context, lottery lotteries.Spec, category string) ([]models.NumberHistory, error) {
	out := []models.NumberHistory{}
	for _, d := range f.docs[lottery.Slug] {
		if d.Type == category {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) Replace(ctx context.Context, lottery lotteries.Spec, history *models.NumberHistory) error {
	docs := f.docs[lottery.Slug]
	for i, d := range docs {
		if d.Type == history.Type && d.Number == history.Number {
			docs[i] = *history
			return nil
		}
	}
	f.docs[lottery.Slug] = append(docs, *history)
	return nil
}

func (f *fakeHistoryRepo) EnsureIndexes(ctx context.Context, lottery lotteries.Spec) error {
	return nil
}

// findHistory returns the stored history doc for one category and number.
func (f *fakeHistoryRepo) findHistory(slug, category string, number int) *models.NumberHistory {
	for _, d := range f.docs[slug] {
		if d.Type == category && d.Number == number {
			doc := d
			return &doc
		}
	}
	return nil
}

type fakeMetadataRepo struct {
	lastDates map[string]string
}

func newFakeMetadataRepo() *fakeMetadataRepo {
	return &fakeMetadataRepo{lastDates: make(map[string]string)}
}

func (f *fakeMetadataRepo) GetLastDrawDate(ctx context.Context, lottery string) (string, error) {
	return f.lastDates[lottery], nil
}

func (f *fakeMetadataRepo) SetLastDrawDate(ctx context.Context, lottery, date string) error {
	f.lastDates[lottery] = date
	return nil
}

type fakeFetcher struct {
	responses map[string][]map[string]interface{} // keyed by game id
	failGames map[string]bool
	calls     []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		responses: make(map[string][]map[string]interface{}),
		failGames: make(map[string]bool),
	}
}

func (f *fakeFetcher) FetchDraws(ctx context.Context, gameID, resultsPath, startDate, endDate string) ([]map[string]interface{}, error) {
	f.calls = append(f.calls, gameID)
	if f.failGames[gameID] {
		return nil, fmt.Errorf("upstream refused")
	}
	return f.responses[gameID], nil
}
