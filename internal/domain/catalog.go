package domain

// ContentType distinguishes how a content's levels describe their drops.
type ContentType string

const (
	// ContentTypeNormal levels carry a flat ordered list of item drops.
	ContentTypeNormal ContentType = "normal"
	// ContentTypeMonsterTable levels carry per-monster base rates for each item.
	ContentTypeMonsterTable ContentType = "monster_table"
)

// Item is a droppable item from the catalog. Items flagged IsFlorzinha use
// the fixed FlorzinhaBasePercent instead of their catalog-declared base.
type Item struct {
	ID              string  `json:"item_id"`
	Name            string  `json:"name"`
	BaseDropPercent float64 `json:"base_drop_percent"`
	IsFlorzinha     bool    `json:"is_florzinha,omitempty"`
}

// FlorzinhaBasePercent is the fixed base drop rate of the florzinha bonus item,
// independent of any catalog-declared value.
const FlorzinhaBasePercent = 2.0

// Content groups levels under a single selectable game content.
type Content struct {
	ID     string
	Name   string
	Type   ContentType
	Levels map[string]Level
}

// Level holds the drop data for one level of a content.
// Drops is populated for normal contents; Monsters and Rates for monster tables.
type Level struct {
	ID       string
	Name     string
	Drops    []string
	Monsters []string
	// Rates maps item ID -> monster ID -> base drop percent.
	Rates map[string]map[string]float64
}
