package dashboard

// ScrutinyRow is one prize-breakdown row of a draw. Winner and prize
// amounts arrive as Spanish-formatted strings and are shown as-is.
type ScrutinyRow struct {
	Category      string `json:"categoria,omitempty"`
	CategoryIndex int    `json:"orden_escrutinio,omitempty"`
	Winners       string `json:"ganadores,omitempty"`
	Prize         string `json:"premio,omitempty"`
	Beneficiaries string `json:"beneficiarios,omitempty"`
}

// Draw is one lottery drawing as served by GET /api/draws.
type Draw struct {
	DrawID           string        `json:"id_sorteo"`
	DrawDate         string        `json:"fecha_sorteo"` // "YYYY-MM-DD HH:MM:SS"
	GameID           string        `json:"game_id"`
	GameName         string        `json:"game_name"`
	Combination      string        `json:"combinacion"`
	CombinationActa  string        `json:"combinacion_acta"`
	Numbers          []int         `json:"numbers"`
	Complementario   *int          `json:"complementario"`
	Reintegro        *int          `json:"reintegro"`
	JokerCombination *string       `json:"joker_combinacion"`
	Jackpot          string        `json:"premio_bote"`
	Scrutiny         []ScrutinyRow `json:"escrutinio"`
}

// FeatureRow is one draw's derived statistics as served by
// GET /api/{lottery}/features. Bonus fields are present per lottery:
// star_numbers for Euromillones, complementario/reintegro for La Primitiva,
// clave for El Gordo.
type FeatureRow struct {
	DrawID         string `json:"draw_id"`
	DrawDate       string `json:"draw_date"`
	Weekday        string `json:"weekday"`
	DrawIndex      int    `json:"draw_index"`
	MainNumbers    []int  `json:"main_numbers"`
	StarNumbers    []int  `json:"star_numbers,omitempty"`
	Complementario *int   `json:"complementario,omitempty"`
	Reintegro      *int   `json:"reintegro,omitempty"`
	Clave          *int   `json:"clave,omitempty"`

	HotMain  []int `json:"hot_main_numbers,omitempty"`
	ColdMain []int `json:"cold_main_numbers,omitempty"`

	MainFrequencyCounts []int `json:"main_frequency_counts,omitempty"`
}

// NumberDates is the full appearance-date history of one number value
// within one category, as served by GET /api/{lottery}/number-history.
type NumberDates struct {
	Number int      `json:"number"`
	Dates  []string `json:"dates"` // "YYYY-MM-DD", ascending
}

// GapPoint is one (number, appearance date) pair inside the trailing
// window of a gap chart. Derived, never persisted.
type GapPoint struct {
	Number int
	Time   int64  // Unix milliseconds, UTC midnight of the appearance day
	Date   string // "YYYY-MM-DD"
}
