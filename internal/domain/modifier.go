package domain

// ModifierMap is an open-ended mapping from modifier-source name to percentage
// contribution. Callers may supply arbitrary keys (e.g. "dominio_reputation");
// values are summed verbatim when computing the aggregate bonus.
type ModifierMap map[string]float64

// Sum returns the aggregate percentage of all contributions.
func (m ModifierMap) Sum() float64 {
	var total float64
	for _, v := range m {
		total += v
	}
	return total
}

// Clone returns an independent copy so request maps are never mutated in place.
func (m ModifierMap) Clone() ModifierMap {
	out := make(ModifierMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
