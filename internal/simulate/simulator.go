// Package simulate estimates kills-until-drop statistics by running repeated
// Bernoulli trial sequences and summarizing the empirical distribution.
package simulate

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/luanqs/RagDropSim_Go/internal/domain"
)

// MaxKillsPerSim bounds a single simulation so unreachable drops (p == 0 or
// extremely small) terminate instead of hanging the request.
const MaxKillsPerSim = 1_000_000

// Simulator runs Monte Carlo kills-until-drop simulations.
type Simulator struct {
	randFloat func() float64 // Injectable for testing
}

// New creates a simulator seeded from the wall clock. Results are not
// reproducible across calls; use NewSeeded when determinism is needed.
func New() *Simulator {
	return NewSeeded(time.Now().UnixMicro())
}

// NewSeeded creates a simulator with an explicit seed.
func NewSeeded(seed int64) *Simulator {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))
	return &Simulator{randFloat: rng.Float64}
}

// Run executes the given number of simulations (clamped to at least 1), each
// counting kills until a drop with probability p lands or MaxKillsPerSim is
// reached. Returns the empirical mean, median and percentile summary.
func (s *Simulator) Run(p float64, simulations int) domain.SimulationReport {
	if simulations < 1 {
		simulations = 1
	}

	kills := make([]int, 0, simulations)
	for range simulations {
		count := 0
		for count < MaxKillsPerSim {
			count++
			if s.randFloat() < p {
				break
			}
		}
		kills = append(kills, count)
	}

	sort.Ints(kills)

	var sum int64
	for _, k := range kills {
		sum += int64(k)
	}

	return domain.SimulationReport{
		Simulations: simulations,
		AvgKills:    float64(sum) / float64(len(kills)),
		MedianKills: kills[len(kills)/2],
		P10:         percentile(kills, 10),
		P25:         percentile(kills, 25),
		P75:         percentile(kills, 75),
		P90:         percentile(kills, 90),
	}
}

// percentile picks the nearest-rank element of a sorted slice; the index is
// floor(p/100*len) clamped into range, not interpolated.
func percentile(sorted []int, p float64) int {
	idx := int(p / 100.0 * float64(len(sorted)))
	if idx < 0 {
		idx = 0
	}
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
