package domain

// DropRate is the per-item breakdown of a batch calculation.
type DropRate struct {
	ItemID          string  `json:"item_id"`
	ItemName        string  `json:"item_name"`
	BaseDropPercent float64 `json:"base_drop_percent"`
	BGeneralPercent float64 `json:"B_general_percent"`
	BFinalPercent   float64 `json:"B_final_percent"`
	PInterPercent   float64 `json:"p_inter_percent"`
	PFinalPercent   float64 `json:"p_final_percent"`
	IsFlorzinha     bool    `json:"is_florzinha"`
}

// BatchCalculation is the result of calculating every drop of a normal level.
type BatchCalculation struct {
	ContentID       string     `json:"content_id"`
	LevelID         string     `json:"level_id"`
	BGeneralPercent float64    `json:"B_general_percent"`
	BFinalPercent   float64    `json:"B_final_percent"`
	Drops           []DropRate `json:"drops"`
}

// MonsterInfo is the display form of a monster identifier.
type MonsterInfo struct {
	MonsterID string `json:"monster_id"`
	Name      string `json:"name"`
}

// MonsterRate pairs the base and final (capped) percentage for one monster.
type MonsterRate struct {
	Base  float64 `json:"base"`
	Final float64 `json:"final"`
}

// MonsterTableDrop holds per-monster calculated rates for one item.
type MonsterTableDrop struct {
	ItemID          string                 `json:"item_id"`
	ItemName        string                 `json:"item_name"`
	CalculatedRates map[string]MonsterRate `json:"calculated_rates"`
}

// MonsterTableCalculation is the result of calculating a monster_table level.
type MonsterTableCalculation struct {
	ContentID       string             `json:"content_id"`
	LevelID         string             `json:"level_id"`
	BGeneralPercent float64            `json:"B_general_percent"`
	BFinalPercent   float64            `json:"B_final_percent"`
	Monsters        []MonsterInfo      `json:"monsters"`
	Drops           []MonsterTableDrop `json:"drops"`
}

// ItemCalculation is the full single-item breakdown including kill statistics.
// MeanKillsForOne and MedianKillsFor50Pct are nil when the final probability is
// zero; the item is unobtainable and the statistics are undefined.
type ItemCalculation struct {
	ItemID               string   `json:"item_id"`
	PBasePercent         float64  `json:"p_base_percent"`
	BGeneralPercent      float64  `json:"B_general_percent"`
	BFinalPercent        float64  `json:"B_final_percent"`
	PInterPercent        float64  `json:"p_inter_percent"`
	PFinalPercent        float64  `json:"p_final_percent"`
	DropFlorzinhaPercent float64  `json:"drop_florzinha_percent"`
	ProbAtLeastOneInN    float64  `json:"prob_at_least_one_in_N"`
	ExpectedDropsInN     float64  `json:"expected_drops_in_N"`
	MeanKillsForOne      *float64 `json:"mean_kills_for_one"`
	MedianKillsFor50Pct  *float64 `json:"median_kills_for_50pct"`
	NumKills             int      `json:"num_kills"`
}

// SimulationReport summarizes a Monte Carlo run of kills-until-drop trials.
type SimulationReport struct {
	Simulations int     `json:"simulations"`
	AvgKills    float64 `json:"avg_kills"`
	MedianKills int     `json:"median_kills"`
	P10         int     `json:"p10"`
	P25         int     `json:"p25"`
	P75         int     `json:"p75"`
	P90         int     `json:"p90"`
}
