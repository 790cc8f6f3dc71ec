package probability

import "math"

// KillStats holds closed-form drop statistics for numKills attempts at a
// per-kill probability p. MeanKillsForOne and MedianKillsFor50Pct are nil
// when p is zero; the event is unreachable and the values are undefined.
type KillStats struct {
	ProbAtLeastOne      float64
	ExpectedDrops       float64
	MeanKillsForOne     *float64
	MedianKillsFor50Pct *float64
	NumKills            int
}

// ComputeKillStats derives kill statistics from a probability fraction
// p in [0,1]. Kill counts below 1 are clamped to 1.
func ComputeKillStats(p float64, numKills int) KillStats {
	if numKills < 1 {
		numKills = 1
	}

	stats := KillStats{
		ProbAtLeastOne: 1 - math.Pow(1-p, float64(numKills)),
		ExpectedDrops:  float64(numKills) * p,
		NumKills:       numKills,
	}

	if p > 0 {
		mean := 1 / p
		// Continuous closed form of the smallest k with 1-(1-p)^k >= 0.5.
		median := math.Log(0.5) / math.Log(1-p)
		stats.MeanKillsForOne = &mean
		stats.MedianKillsFor50Pct = &median
	}

	return stats
}
