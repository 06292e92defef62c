package models

// ScrutinyRow is one prize-breakdown row (escrutinio) of a draw as returned
// by the upstream buscadorSorteos API. Winner and prize amounts are kept as
// the Spanish-formatted strings the upstream sends.
type ScrutinyRow struct {
	Category      string `bson:"categoria,omitempty" json:"categoria,omitempty"`
	CategoryIndex int    `bson:"orden_escrutinio,omitempty" json:"orden_escrutinio,omitempty"`
	Winners       string `bson:"ganadores,omitempty" json:"ganadores,omitempty"`
	Prize         string `bson:"premio,omitempty" json:"premio,omitempty"`
	Beneficiaries string `bson:"beneficiarios,omitempty" json:"beneficiarios,omitempty"`
}

// Draw is one lottery drawing as served by GET /api/draws. Documents in
// MongoDB keep every upstream field; this struct is the projection of the
// keys the API contract guarantees (the original DRAW_KEYS set).
type Draw struct {
	DrawID           string        `bson:"id_sorteo" json:"id_sorteo"`
	DrawDate         string        `bson:"fecha_sorteo" json:"fecha_sorteo"` // "YYYY-MM-DD HH:MM:SS"
	GameID           string        `bson:"game_id" json:"game_id"`
	GameName         string        `bson:"-" json:"game_name"`
	Combination      string        `bson:"combinacion,omitempty" json:"combinacion"`
	CombinationActa  string        `bson:"combinacion_acta,omitempty" json:"combinacion_acta"`
	Numbers          []int         `bson:"numbers,omitempty" json:"numbers"`
	Complementario   *int          `bson:"complementario,omitempty" json:"complementario"`
	Reintegro        *int          `bson:"reintegro,omitempty" json:"reintegro"`
	JokerCombination *string       `bson:"joker_combinacion,omitempty" json:"joker_combinacion"`
	Jackpot          string        `bson:"premio_bote,omitempty" json:"premio_bote"`
	Scrutiny         []ScrutinyRow `bson:"escrutinio,omitempty" json:"escrutinio"`
	Bets             string        `bson:"apuestas,omitempty" json:"apuestas,omitempty"`
	BetsAlt          string        `bson:"aquestas,omitempty" json:"aquestas,omitempty"` // historical typo field kept for old documents
	Collected        string        `bson:"recaudacion,omitempty" json:"recaudacion,omitempty"`
	Prizes           string        `bson:"premios,omitempty" json:"premios,omitempty"`
}

// DrawPage is the response body of GET /api/draws.
type DrawPage struct {
	Draws []Draw `json:"draws"`
	Total int64  `json:"total"`
}

// ScrapeResult summarizes one scrape run for one lottery.
type ScrapeResult struct {
	Lottery   string   `json:"lottery"`
	GameID    string   `json:"game_id,omitempty"`
	Saved     int      `json:"saved"`
	Total     int      `json:"total"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Message   string   `json:"message"`
	Errors    []string `json:"errors,omitempty"`
}

// ScraperMetadata tracks the last known draw date per lottery in the
// scraper_metadata collection.
type ScraperMetadata struct {
	Lottery      string `bson:"lottery" json:"lottery"`
	LastDrawDate string `bson:"last_draw_date" json:"last_draw_date"` // "YYYY-MM-DD"
}
