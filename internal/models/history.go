package models

// Appearance is one occurrence of a number in a draw, with the gap in
// draws since its previous occurrence (nil on the first one).
type Appearance struct {
	DrawIndex         int    `bson:"draw_index" json:"draw_index"`
	DrawID            string `bson:"draw_id" json:"draw_id"`
	Date              string `bson:"date" json:"date"` // "YYYY-MM-DD"
	GapDrawsSincePrev *int   `bson:"gap_draws_since_prev" json:"gap_draws_since_prev"`
}

// NumberHistory is the stored per-number appearance history: one document
// per (category, number) in the per-lottery history collections.
type NumberHistory struct {
	Type        string       `bson:"type" json:"type"` // category name, e.g. "main", "star"
	Number      int          `bson:"number" json:"number"`
	Appearances []Appearance `bson:"appearances" json:"appearances"`
}

// NumberDates is the API shape of one number's history in
// GET /api/:lottery/number-history: deduplicated dates sorted ascending.
type NumberDates struct {
	Number int      `json:"number"`
	Dates  []string `json:"dates"`
}

// GapPoint is one appearance inside a gap-analysis window.
type GapPoint struct {
	Type      string `json:"type"`
	Number    int    `json:"number"`
	DrawIndex int    `json:"draw_index"`
	Date      string `json:"date"`
}

// SeriesPoint is one point of the apuestas/premios time series.
type SeriesPoint struct {
	DrawID  string   `json:"draw_id"`
	Date    string   `json:"date"`
	Bets    *int64   `json:"apuestas"`
	Prizes  *float64 `json:"premios"`
	Jackpot *float64 `json:"premio_bote"`
}
