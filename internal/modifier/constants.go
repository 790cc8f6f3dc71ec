package modifier

// Synthetic keys written into the aggregates by the resolver.
const (
	KeyBigConsumable  = "consumable_big"
	KeyAdvMastery     = "adv_mastery"
	KeyBirthMastery   = "birth_mastery"
	KeyRebornMastery  = "reborn_mastery"
	FinalKeyPrefix    = "final_"
	ReputationKey     = "dominio_reputation"
	ReputationContent = "dominio"
)

// Big consumables - only the single highest selected value counts.
var BigConsumables = map[string]float64{
	"calice":   265.0,
	"calice2":  240.0,
	"chicle":   200.0,
	"chiclete": 100.0,
}

// Tokens whose selection suppresses other general consumables.
const (
	TokenCalice  = "calice"
	TokenCalice2 = "calice2"
)

// GeneralConsumables are summed into the general aggregate, subject to the
// suppression rules in resolveGeneral.
var GeneralConsumables = map[string]float64{
	"lata":           20.0, // suppressed by calice or calice2
	"revitalizadora": 20.0, // suppressed by calice or calice2
	"drop_pot":       25.0, // suppressed by calice only
	"fusion":         25.0,
	"doador":         35.0,
	"doador_rmt":     35.0,
}

// suppressedByAnyBig lists the general consumables disabled by either calice.
var suppressedByAnyBig = map[string]bool{
	"lata":           true,
	"revitalizadora": true,
}

// FinalConsumables are always summed into the final aggregate when selected.
var FinalConsumables = map[string]float64{
	"black":        6.0,
	"ativador":     5.0,
	"carnavalesco": 2.0,
	"champs":       6.0,
	"amantes":      4.0,
}

// Tier is one entry of a mastery family, declared low to high.
type Tier struct {
	Token string
	Value float64
}

// Mastery families. Declaration order matters: the resolver scans low to high
// and keeps the FIRST selected tier, not the highest-valued one. Callers are
// expected to select at most one tier per family; the resolver does not
// enforce exclusivity.
var (
	AdvMastery = []Tier{
		{"adv_1", 1.0},
		{"adv_2", 3.0},
		{"adv_3", 5.0},
		{"adv_4", 8.0},
	}

	BirthMastery = []Tier{
		{"birth_1", 1.0},
		{"birth_2", 2.0},
		{"birth_3", 3.0},
		{"birth_4", 5.0},
	}

	RebornMastery = []Tier{
		{"reborn_1", 1.0},
		{"reborn_2", 2.0},
		{"reborn_3", 3.0},
		{"reborn_4", 5.0},
		{"reborn_5", 8.0},
	}
)
