// Package lotteries describes the three supported Spanish lotteries:
// game identifiers, number ranges, MongoDB collection names and the
// shape of each lottery's bonus numbers.
package lotteries

// BonusShape identifies which bonus-number fields a lottery carries.
type BonusShape string

const (
	BonusStars                   BonusShape = "stars"                    // Euromillones: 2 lucky stars
	BonusComplementarioReintegro BonusShape = "complementario_reintegro" // La Primitiva: C + R
	BonusClave                   BonusShape = "clave"                    // El Gordo: 1 clave digit
)

// Category is a number category within a lottery.
type Category string

const (
	CategoryMain           Category = "main"
	CategoryStar           Category = "star"
	CategoryComplementario Category = "complementario"
	CategoryReintegro      Category = "reintegro"
	CategoryClave          Category = "clave"
)

// CategoryRange is the value range of one number category.
type CategoryRange struct {
	Category Category
	Min      int
	Max      int
	PerDraw  int // numbers drawn per draw in this category
}

// Size returns the number-space size of the category.
func (r CategoryRange) Size() int {
	return r.Max - r.Min + 1
}

// Spec describes one lottery.
type Spec struct {
	Slug              string // URL slug, e.g. "la-primitiva"
	GameID            string // loteriasyapuestas.es game id, e.g. "LAPR"
	Name              string // display name
	Collection        string // draws collection
	FeatureCollection string // per-draw feature collection
	HistoryCollection string // per-number history collection
	ResultsPath       string // results page path on the upstream site
	MainCount         int
	MainMin           int
	MainMax           int
	Bonus             BonusShape
	BonusRanges       []CategoryRange
	// PrizeLabels maps escrutinio category index (1-based) to a display
	// label for the prize breakdown table.
	PrizeLabels []string
}

// Categories returns all number categories of the lottery, mains first.
func (s Spec) Categories() []CategoryRange {
	out := []CategoryRange{{Category: CategoryMain, Min: s.MainMin, Max: s.MainMax, PerDraw: s.MainCount}}
	return append(out, s.BonusRanges...)
}

var (
	// LaPrimitiva: 6 mains from 1-49, complementario 1-49, reintegro 0-9.
	LaPrimitiva = Spec{
		Slug:              "la-primitiva",
		GameID:            "LAPR",
		Name:              "La Primitiva",
		Collection:        "la_primitiva",
		FeatureCollection: "la_primitiva_draw_features",
		HistoryCollection: "la_primitiva_number_history",
		ResultsPath:       "/es/resultados/la-primitiva",
		MainCount:         6,
		MainMin:           1,
		MainMax:           49,
		Bonus:             BonusComplementarioReintegro,
		BonusRanges: []CategoryRange{
			{Category: CategoryComplementario, Min: 1, Max: 49, PerDraw: 1},
			{Category: CategoryReintegro, Min: 0, Max: 9, PerDraw: 1},
		},
		PrizeLabels: []string{
			"Especial (6 + R)",
			"1ª (6 aciertos)",
			"2ª (5 + C)",
			"3ª (5 aciertos)",
			"4ª (4 aciertos)",
			"5ª (3 aciertos)",
			"Reintegro",
		},
	}

	// Euromillones: 5 mains from 1-50, 2 stars from 1-12.
	Euromillones = Spec{
		Slug:              "euromillones",
		GameID:            "EMIL",
		Name:              "Euromillones",
		Collection:        "euromillones",
		FeatureCollection: "euromillones_draw_features",
		HistoryCollection: "euromillones_number_history",
		ResultsPath:       "/es/resultados/euromillones",
		MainCount:         5,
		MainMin:           1,
		MainMax:           50,
		Bonus:             BonusStars,
		BonusRanges: []CategoryRange{
			{Category: CategoryStar, Min: 1, Max: 12, PerDraw: 2},
		},
		PrizeLabels: []string{
			"1ª (5 + 2)",
			"2ª (5 + 1)",
			"3ª (5 + 0)",
			"4ª (4 + 2)",
			"5ª (4 + 1)",
			"6ª (3 + 2)",
			"7ª (4 + 0)",
			"8ª (2 + 2)",
			"9ª (3 + 1)",
			"10ª (3 + 0)",
			"11ª (1 + 2)",
			"12ª (2 + 1)",
			"13ª (2 + 0)",
		},
	}

	// ElGordo: 5 mains from 1-54, 1 clave from 0-9.
	ElGordo = Spec{
		Slug:              "el-gordo",
		GameID:            "ELGR",
		Name:              "El Gordo",
		Collection:        "el_gordo",
		FeatureCollection: "el_gordo_draw_features",
		HistoryCollection: "el_gordo_number_history",
		ResultsPath:       "/es/resultados/gordo-primitiva",
		MainCount:         5,
		MainMin:           1,
		MainMax:           54,
		Bonus:             BonusClave,
		BonusRanges: []CategoryRange{
			{Category: CategoryClave, Min: 0, Max: 9, PerDraw: 1},
		},
		PrizeLabels: []string{
			"1ª (5 + clave)",
			"2ª (5 aciertos)",
			"3ª (4 + clave)",
			"4ª (4 aciertos)",
			"5ª (3 + clave)",
			"6ª (3 aciertos)",
			"7ª (2 + clave)",
			"8ª (2 aciertos)",
			"Reintegro (clave)",
		},
	}
)

// DailyOrder is the order lotteries are processed in the daily scrape.
var DailyOrder = []Spec{Euromillones, LaPrimitiva, ElGordo}

// All returns every supported lottery.
func All() []Spec {
	return []Spec{LaPrimitiva, Euromillones, ElGordo}
}

// BySlug looks up a lottery by its URL slug.
func BySlug(slug string) (Spec, bool) {
	for _, s := range All() {
		if s.Slug == slug {
			return s, true
		}
	}
	return Spec{}, false
}

// ByGameID looks up a lottery by its upstream game id.
func ByGameID(gameID string) (Spec, bool) {
	for _, s := range All() {
		if s.GameID == gameID {
			return s, true
		}
	}
	return Spec{}, false
}

// PrizeLabel resolves the display label for an escrutinio category index
// (1-based). Unknown indices get a generic label.
func (s Spec) PrizeLabel(index int) string {
	if index >= 1 && index <= len(s.PrizeLabels) {
		return s.PrizeLabels[index-1]
	}
	return ""
}
