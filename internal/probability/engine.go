// Package probability implements the two-stage drop rate boost, the capping
// policy, and the closed-form kill statistics derived from a final rate.
package probability

// Capping thresholds, in percent.
const (
	CapMax   = 90.0
	FullRate = 100.0
)

// Boost applies the general and final aggregate bonuses to a base percentage.
// Returns the intermediate percentage (after the general bonus) and the final
// capped percentage.
func Boost(pBase, bGeneral, bFinal float64) (pInter, pFinal float64) {
	pInter = pBase * (1 + bGeneral/100.0)
	pFinal = ApplyCaps(pBase, pInter*(1+bFinal/100.0))
	return pInter, pFinal
}

// ApplyCaps clamps a boosted percentage according to the base rate:
// bases at or below 90 are capped at 90, a base of exactly 100 always stays
// 100, and bases strictly between 90 and 100 pass through uncapped. The gap
// is intentional and must not be closed.
func ApplyCaps(pBase, pFinal float64) float64 {
	switch {
	case pBase <= CapMax:
		return min(pFinal, CapMax)
	case pBase == FullRate:
		return FullRate
	default:
		return pFinal
	}
}
