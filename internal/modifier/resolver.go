// Package modifier resolves player-selected bonus tokens (consumables,
// mastery tiers) and caller-supplied modifier maps into the two aggregate
// percentages applied by the probability engine: the general bonus and the
// final bonus.
package modifier

import "github.com/luanqs/RagDropSim_Go/internal/domain"

// Resolution carries the fully resolved modifier maps for one calculation.
// Aggregate bonuses are the sums of the map values.
type Resolution struct {
	General domain.ModifierMap
	Final   domain.ModifierMap
}

// BGeneral returns the aggregate general bonus percentage.
func (r Resolution) BGeneral() float64 { return r.General.Sum() }

// BFinal returns the aggregate final bonus percentage.
func (r Resolution) BFinal() float64 { return r.Final.Sum() }

// Resolve combines the selected consumable tokens with the caller-supplied
// general/final maps. The inputs are never mutated.
//
// Rules, in order:
//  1. Among the big consumables, only the single highest selected value is
//     added to the general aggregate (under KeyBigConsumable).
//  2. lata and revitalizadora are skipped when calice or calice2 is selected;
//     drop_pot is skipped when calice (but not calice2) is selected.
//  3. Every other selected general consumable is summed.
//  4. Selected final consumables are always summed into the final aggregate
//     under a "final_" prefixed key.
func Resolve(selected []string, general, final domain.ModifierMap) Resolution {
	sel := make(map[string]bool, len(selected))
	for _, token := range selected {
		sel[token] = true
	}

	res := Resolution{
		General: general.Clone(),
		Final:   final.Clone(),
	}

	var bestBig float64
	for token, val := range BigConsumables {
		if sel[token] && val > bestBig {
			bestBig = val
		}
	}
	if bestBig > 0 {
		res.General[KeyBigConsumable] = bestBig
	}

	usedCalice := sel[TokenCalice]
	usedBig := usedCalice || sel[TokenCalice2]

	for token, val := range GeneralConsumables {
		if !sel[token] {
			continue
		}
		switch {
		case suppressedByAnyBig[token]:
			if !usedBig {
				res.General[token] = val
			}
		case token == "drop_pot":
			if !usedCalice {
				res.General[token] = val
			}
		default:
			res.General[token] = val
		}
	}

	for token, val := range FinalConsumables {
		if sel[token] {
			res.Final[FinalKeyPrefix+token] = val
		}
	}

	return res
}

// ApplyMastery adds the three mastery family bonuses to the final aggregate.
// Only single-item calculations carry mastery; batch calculations do not.
//
// Each family is scanned in its declared low-to-high order and the first
// selected tier wins. This is deliberately order-first, not max-value: tiers
// are mutually exclusive by UI construction, and the declared order is the
// observable contract when they are not.
func (r Resolution) ApplyMastery(selected []string) {
	sel := make(map[string]bool, len(selected))
	for _, token := range selected {
		sel[token] = true
	}

	applyFamily := func(key string, family []Tier) {
		for _, tier := range family {
			if sel[tier.Token] {
				r.Final[key] = tier.Value
				return
			}
		}
	}

	applyFamily(KeyAdvMastery, AdvMastery)
	applyFamily(KeyBirthMastery, BirthMastery)
	applyFamily(KeyRebornMastery, RebornMastery)
}

// GateReputation strips the dominio reputation bonus from the general
// aggregate unless the request targets the dominio content. The bonus is
// caller-supplied, so it must be removed even when no token selected it.
func (r Resolution) GateReputation(contentID string) {
	if contentID != ReputationContent {
		delete(r.General, ReputationKey)
	}
}
