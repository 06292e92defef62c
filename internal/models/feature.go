package models

// FeatureRow is one draw's derived statistics, one document per draw in the
// per-lottery feature collections. All statistics are computed from earlier
// draws only, so there is no look-ahead.
//
// The bonus-number fields form a tagged variant keyed by the lottery's
// BonusShape: Euromillones fills the star fields, La Primitiva the
// complementario/reintegro fields, El Gordo the clave fields. Unused fields
// stay empty and are omitted from BSON and JSON.
type FeatureRow struct {
	DrawID    string `bson:"draw_id" json:"draw_id"`
	DrawDate  string `bson:"draw_date" json:"draw_date"` // "YYYY-MM-DD"
	Weekday   string `bson:"weekday" json:"weekday"`
	DrawIndex int    `bson:"draw_index" json:"draw_index"`

	MainNumbers    []int `bson:"main_numbers" json:"main_numbers"`
	StarNumbers    []int `bson:"star_numbers,omitempty" json:"star_numbers,omitempty"`
	Complementario *int  `bson:"complementario,omitempty" json:"complementario,omitempty"`
	Reintegro      *int  `bson:"reintegro,omitempty" json:"reintegro,omitempty"`
	Clave          *int  `bson:"clave,omitempty" json:"clave,omitempty"`

	// Previous-draw snapshot.
	PrevDrawID         *string `bson:"prev_draw_id" json:"prev_draw_id"`
	PrevDrawDate       *string `bson:"prev_draw_date" json:"prev_draw_date"`
	PrevWeekday        *string `bson:"prev_weekday" json:"prev_weekday"`
	PrevMainNumbers    []int   `bson:"prev_main_numbers" json:"prev_main_numbers"`
	PrevStarNumbers    []int   `bson:"prev_star_numbers,omitempty" json:"prev_star_numbers,omitempty"`
	PrevComplementario *int    `bson:"prev_complementario,omitempty" json:"prev_complementario,omitempty"`
	PrevReintegro      *int    `bson:"prev_reintegro,omitempty" json:"prev_reintegro,omitempty"`
	PrevClave          *int    `bson:"prev_clave,omitempty" json:"prev_clave,omitempty"`

	// Hot/cold sets (up to 5 each) based on lifetime frequency before this
	// draw. Hot numbers require at least one earlier appearance.
	HotMainNumbers     []int `bson:"hot_main_numbers" json:"hot_main_numbers"`
	ColdMainNumbers    []int `bson:"cold_main_numbers" json:"cold_main_numbers"`
	HotStarNumbers     []int `bson:"hot_star_numbers,omitempty" json:"hot_star_numbers,omitempty"`
	ColdStarNumbers    []int `bson:"cold_star_numbers,omitempty" json:"cold_star_numbers,omitempty"`
	HotComplementario  []int `bson:"hot_complementario,omitempty" json:"hot_complementario,omitempty"`
	ColdComplementario []int `bson:"cold_complementario,omitempty" json:"cold_complementario,omitempty"`
	HotReintegro       []int `bson:"hot_reintegro,omitempty" json:"hot_reintegro,omitempty"`
	ColdReintegro      []int `bson:"cold_reintegro,omitempty" json:"cold_reintegro,omitempty"`
	HotClave           []int `bson:"hot_clave,omitempty" json:"hot_clave,omitempty"`
	ColdClave          []int `bson:"cold_clave,omitempty" json:"cold_clave,omitempty"`

	// Frequency counts before this draw, indexed over the full number
	// space of each category (length equals the category's size).
	MainFrequencyCounts           []int `bson:"main_frequency_counts" json:"main_frequency_counts"`
	StarFrequencyCounts           []int `bson:"star_frequency_counts,omitempty" json:"star_frequency_counts,omitempty"`
	ComplementarioFrequencyCounts []int `bson:"complementario_frequency_counts,omitempty" json:"complementario_frequency_counts,omitempty"`
	ReintegroFrequencyCounts      []int `bson:"reintegro_frequency_counts,omitempty" json:"reintegro_frequency_counts,omitempty"`
	ClaveFrequencyCounts          []int `bson:"clave_frequency_counts,omitempty" json:"clave_frequency_counts,omitempty"`
}

// FeaturePage is the response body of GET /api/:lottery/features.
type FeaturePage struct {
	Features []FeatureRow `json:"features"`
	Total    int64        `json:"total"`
}
