package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/loterialab/sorteos-backend/internal/metrics"
	"github.com/loterialab/sorteos-backend/internal/models"
	"github.com/loterialab/sorteos-backend/internal/repositories"
	"github.com/loterialab/sorteos-backend/internal/utils"
	"github.com/loterialab/sorteos-backend/pkg/combinations"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

// FeatureService serves per-draw feature rows and rebuilds them, together
// with the per-number appearance histories, from the stored draws.
type FeatureService interface {
	GetFeatures(ctx context.Context, lottery lotteries.Spec, skip, limit int64) (*models.FeaturePage, error)
	// Rebuild recomputes every feature row and number history of a lottery
	// oldest-first. Features of draw i use draws 0..i-1 only, so there is
	// no look-ahead. Returns the number of draws processed.
	Rebuild(ctx context.Context, lottery lotteries.Spec) (int, error)
}

type featureService struct {
	drawRepo    repositories.DrawRepository
	featureRepo repositories.FeatureRepository
	historyRepo repositories.NumberHistoryRepository
}

// NewFeatureService creates a new FeatureService.
func NewFeatureService(drawRepo repositories.DrawRepository, featureRepo repositories.FeatureRepository, historyRepo repositories.NumberHistoryRepository) FeatureService {
	return &featureService{
		drawRepo:    drawRepo,
		featureRepo: featureRepo,
		historyRepo: historyRepo,
	}
}

func (s *featureService) GetFeatures(ctx context.Context, lottery lotteries.Spec, skip, limit int64) (*models.FeaturePage, error) {
	rows, total, err := s.featureRepo.FindPage(ctx, lottery, skip, limit)
	if err != nil {
		return nil, err
	}
	return &models.FeaturePage{Features: rows, Total: total}, nil
}

// parsedDraw is one draw reduced to its per-category numbers.
type parsedDraw struct {
	drawID  string
	date    string // "YYYY-MM-DD"
	numbers map[lotteries.Category][]int
}

func (s *featureService) Rebuild(ctx context.Context, lottery lotteries.Spec) (int, error) {
	start := time.Now()

	draws, err := s.drawRepo.FindAllAscending(ctx, lottery)
	if err != nil {
		return 0, fmt.Errorf("load draws: %w", err)
	}

	parsed := make([]parsedDraw, 0, len(draws))
	for _, d := range draws {
		pd, ok := parseDrawNumbers(lottery, d)
		if !ok {
			continue // malformed row, wrong main-number count
		}
		parsed = append(parsed, pd)
	}

	if err := s.buildFeatures(ctx, lottery, parsed); err != nil {
		return 0, err
	}
	if err := s.buildNumberHistory(ctx, lottery, parsed); err != nil {
		return 0, err
	}

	metrics.FeatureRebuildDuration.WithLabelValues(lottery.Slug).Observe(time.Since(start).Seconds())
	return len(parsed), nil
}

func (s *featureService) buildFeatures(ctx context.Context, lottery lotteries.Spec, parsed []parsedDraw) error {
	ranges := lottery.Categories()

	// Lifetime frequency per category, updated after each draw is saved.
	freq := make(map[lotteries.Category]map[int]int, len(ranges))
	for _, r := range ranges {
		m := make(map[int]int, r.Size())
		for n := r.Min; n <= r.Max; n++ {
			m[n] = 0
		}
		freq[r.Category] = m
	}

	for idx, pd := range parsed {
		row := &models.FeatureRow{
			DrawID:          pd.drawID,
			DrawDate:        pd.date,
			Weekday:         utils.WeekdayName(pd.date),
			DrawIndex:       idx,
			PrevMainNumbers: []int{},
		}
		for _, r := range ranges {
			setDrawNumbers(row, r.Category, pd.numbers[r.Category])
			setFrequencyCounts(row, r.Category, frequencyArray(freq[r.Category], r))
			if idx > 0 {
				hot, cold := hotCold(freq[r.Category], r)
				setHotCold(row, r.Category, hot, cold)
			} else {
				setHotCold(row, r.Category, []int{}, []int{})
			}
		}
		if idx > 0 {
			prev := parsed[idx-1]
			prevWeekday := utils.WeekdayName(prev.date)
			row.PrevDrawID = &prev.drawID
			row.PrevDrawDate = &prev.date
			row.PrevWeekday = &prevWeekday
			for _, r := range ranges {
				setPrevNumbers(row, r.Category, prev.numbers[r.Category])
			}
		}

		if err := s.featureRepo.Upsert(ctx, lottery, row); err != nil {
			return fmt.Errorf("save feature row %s: %w", pd.drawID, err)
		}

		// Only now does this draw count towards the lifetime frequencies.
		for _, r := range ranges {
			for _, n := range pd.numbers[r.Category] {
				freq[r.Category][n]++
			}
		}
	}
	return nil
}

func (s *featureService) buildNumberHistory(ctx context.Context, lottery lotteries.Spec, parsed []parsedDraw) error {
	ranges := lottery.Categories()

	type key struct {
		cat lotteries.Category
		n   int
	}
	appearances := make(map[key][]models.Appearance)
	lastSeen := make(map[key]int)

	for idx, pd := range parsed {
		for _, r := range ranges {
			for _, n := range pd.numbers[r.Category] {
				k := key{r.Category, n}
				var gap *int
				if last, ok := lastSeen[k]; ok {
					g := idx - last
					gap = &g
				}
				appearances[k] = append(appearances[k], models.Appearance{
					DrawIndex:         idx,
					DrawID:            pd.drawID,
					Date:              pd.date,
					GapDrawsSincePrev: gap,
				})
				lastSeen[k] = idx
			}
		}
	}

	for _, r := range ranges {
		for n := r.Min; n <= r.Max; n++ {
			apps := appearances[key{r.Category, n}]
			if apps == nil {
				apps = []models.Appearance{}
			}
			history := &models.NumberHistory{
				Type:        string(r.Category),
				Number:      n,
				Appearances: apps,
			}
			if err := s.historyRepo.Replace(ctx, lottery, history); err != nil {
				return fmt.Errorf("save number history %s/%d: %w", r.Category, n, err)
			}
		}
	}
	return nil
}

// parseDrawNumbers reduces a stored draw to its per-category numbers.
// Preference order follows the original datasets: combinacion_acta, then
// combinacion, then the normalized fields. Draws whose main-number count
// does not match the lottery are rejected.
func parseDrawNumbers(lottery lotteries.Spec, d models.Draw) (parsedDraw, bool) {
	pd := parsedDraw{
		drawID:  d.DrawID,
		date:    utils.DateOnly(d.DrawDate),
		numbers: make(map[lotteries.Category][]int),
	}
	if pd.drawID == "" || pd.date == "" {
		return pd, false
	}

	text := d.CombinationActa
	if text == "" {
		text = d.Combination
	}

	switch lottery.Bonus {
	case lotteries.BonusStars:
		acta := combinations.ParseActaEuromillones(text)
		mains, stars := acta.Main, acta.Stars
		if len(mains) == 0 {
			mains = d.Numbers
		}
		pd.numbers[lotteries.CategoryMain] = clampNumbers(mains, lottery.MainMin, lottery.MainMax, lottery.MainCount)
		pd.numbers[lotteries.CategoryStar] = clampNumbers(stars, 1, 12, 2)

	case lotteries.BonusComplementarioReintegro:
		mains := d.Numbers
		comp, rein := d.Complementario, d.Reintegro
		if len(mains) == 0 {
			parsedC := combinations.ParseCombination(d.Combination)
			mains = parsedC.Numbers
			if comp == nil {
				comp = parsedC.Complementario
			}
			if rein == nil {
				rein = parsedC.Reintegro
			}
		}
		pd.numbers[lotteries.CategoryMain] = clampNumbers(mains, lottery.MainMin, lottery.MainMax, lottery.MainCount)
		pd.numbers[lotteries.CategoryComplementario] = optionalNumber(comp, 1, 49)
		pd.numbers[lotteries.CategoryReintegro] = optionalNumber(rein, 0, 9)

	case lotteries.BonusClave:
		mains := d.Numbers
		if len(mains) == 0 {
			mains = combinations.ParseCombination(d.Combination).Numbers
		}
		// El Gordo stores the clave in the reintegro field; some rows only
		// carry it as a 6th number token.
		clave := d.Reintegro
		if clave == nil && len(mains) >= 6 {
			clave = &mains[5]
		}
		pd.numbers[lotteries.CategoryMain] = clampNumbers(mains, lottery.MainMin, lottery.MainMax, lottery.MainCount)
		pd.numbers[lotteries.CategoryClave] = optionalNumber(clave, 0, 9)
	}

	return pd, len(pd.numbers[lotteries.CategoryMain]) == lottery.MainCount
}

// clampNumbers drops out-of-range values and trims extras.
func clampNumbers(nums []int, min, max, count int) []int {
	out := make([]int, 0, count)
	for _, n := range nums {
		if n >= min && n <= max {
			out = append(out, n)
		}
		if len(out) == count {
			break
		}
	}
	return out
}

func optionalNumber(v *int, min, max int) []int {
	if v == nil || *v < min || *v > max {
		return []int{}
	}
	return []int{*v}
}

// frequencyArray flattens a frequency map into an array covering the full
// number space of the category.
func frequencyArray(freq map[int]int, r lotteries.CategoryRange) []int {
	out := make([]int, 0, r.Size())
	for n := r.Min; n <= r.Max; n++ {
		out = append(out, freq[n])
	}
	return out
}

// hotCold returns the up-to-5 most and least frequent numbers. Hot numbers
// need at least one appearance; ties resolve to the lower number.
func hotCold(freq map[int]int, r lotteries.CategoryRange) ([]int, []int) {
	nums := make([]int, 0, r.Size())
	for n := r.Min; n <= r.Max; n++ {
		nums = append(nums, n)
	}

	hotSorted := append([]int(nil), nums...)
	sort.SliceStable(hotSorted, func(i, j int) bool {
		return freq[hotSorted[i]] > freq[hotSorted[j]]
	})
	hot := []int{}
	for _, n := range hotSorted {
		if freq[n] > 0 && len(hot) < 5 {
			hot = append(hot, n)
		}
	}

	coldSorted := append([]int(nil), nums...)
	sort.SliceStable(coldSorted, func(i, j int) bool {
		return freq[coldSorted[i]] < freq[coldSorted[j]]
	})
	cold := coldSorted
	if len(cold) > 5 {
		cold = cold[:5]
	}
	return hot, cold
}

func setDrawNumbers(row *models.FeatureRow, cat lotteries.Category, vals []int) {
	switch cat {
	case lotteries.CategoryMain:
		row.MainNumbers = vals
	case lotteries.CategoryStar:
		row.StarNumbers = vals
	case lotteries.CategoryComplementario:
		row.Complementario = firstOrNil(vals)
	case lotteries.CategoryReintegro:
		row.Reintegro = firstOrNil(vals)
	case lotteries.CategoryClave:
		row.Clave = firstOrNil(vals)
	}
}

func setPrevNumbers(row *models.FeatureRow, cat lotteries.Category, vals []int) {
	switch cat {
	case lotteries.CategoryMain:
		row.PrevMainNumbers = vals
	case lotteries.CategoryStar:
		row.PrevStarNumbers = vals
	case lotteries.CategoryComplementario:
		row.PrevComplementario = firstOrNil(vals)
	case lotteries.CategoryReintegro:
		row.PrevReintegro = firstOrNil(vals)
	case lotteries.CategoryClave:
		row.PrevClave = firstOrNil(vals)
	}
}

func setHotCold(row *models.FeatureRow, cat lotteries.Category, hot, cold []int) {
	switch cat {
	case lotteries.CategoryMain:
		row.HotMainNumbers, row.ColdMainNumbers = hot, cold
	case lotteries.CategoryStar:
		row.HotStarNumbers, row.ColdStarNumbers = hot, cold
	case lotteries.CategoryComplementario:
		row.HotComplementario, row.ColdComplementario = hot, cold
	case lotteries.CategoryReintegro:
		row.HotReintegro, row.ColdReintegro = hot, cold
	case lotteries.CategoryClave:
		row.HotClave, row.ColdClave = hot, cold
	}
}

func setFrequencyCounts(row *models.FeatureRow, cat lotteries.Category, counts []int) {
	switch cat {
	case lotteries.CategoryMain:
		row.MainFrequencyCounts = counts
	case lotteries.CategoryStar:
		row.StarFrequencyCounts = counts
	case lotteries.CategoryComplementario:
		row.ComplementarioFrequencyCounts = counts
	case lotteries.CategoryReintegro:
		row.ReintegroFrequencyCounts = counts
	case lotteries.CategoryClave:
		row.ClaveFrequencyCounts = counts
	}
}

func firstOrNil(vals []int) *int {
	if len(vals) == 0 {
		return nil
	}
	v := vals[0]
	return &v
}
