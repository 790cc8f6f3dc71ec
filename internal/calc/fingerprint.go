package calc

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/luanqs/RagDropSim_Go/internal/domain"
)

// fingerprint returns a stable hash of the scenario. Consumable order and map
// iteration order must not affect the result.
func (s Scenario) fingerprint() string {
	var b strings.Builder

	consumables := append([]string(nil), s.Consumables...)
	sort.Strings(consumables)
	b.WriteString(strings.Join(consumables, ","))
	b.WriteByte('|')
	writeSortedMods(&b, s.GeneralMods)
	b.WriteByte('|')
	writeSortedMods(&b, s.FinalMods)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func writeSortedMods(b *strings.Builder, mods domain.ModifierMap) {
	keys := make([]string, 0, len(mods))
	for k := range mods {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "%s=%g;", k, mods[k])
	}
}
