package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeKillStats(t *testing.T) {
	t.Run("Coin flip single kill", func(t *testing.T) {
		stats := ComputeKillStats(0.5, 1)

		assert.InDelta(t, 0.5, stats.ProbAtLeastOne, 1e-9)
		assert.InDelta(t, 0.5, stats.ExpectedDrops, 1e-9)
		require.NotNil(t, stats.MeanKillsForOne)
		assert.InDelta(t, 2.0, *stats.MeanKillsForOne, 1e-9)
		require.NotNil(t, stats.MedianKillsFor50Pct)
		assert.InDelta(t, 1.0, *stats.MedianKillsFor50Pct, 1e-9)
		assert.Equal(t, 1, stats.NumKills)
	})

	t.Run("Small probability many kills", func(t *testing.T) {
		stats := ComputeKillStats(0.01, 100)

		assert.InDelta(t, 0.6339676587, stats.ProbAtLeastOne, 1e-6)
		assert.InDelta(t, 1.0, stats.ExpectedDrops, 1e-9)
		require.NotNil(t, stats.MeanKillsForOne)
		assert.InDelta(t, 100.0, *stats.MeanKillsForOne, 1e-9)
		require.NotNil(t, stats.MedianKillsFor50Pct)
		assert.InDelta(t, 68.9675639365, *stats.MedianKillsFor50Pct, 1e-6)
	})

	t.Run("Zero probability leaves undefined stats", func(t *testing.T) {
		stats := ComputeKillStats(0, 500)

		assert.Zero(t, stats.ProbAtLeastOne)
		assert.Zero(t, stats.ExpectedDrops)
		assert.Nil(t, stats.MeanKillsForOne)
		assert.Nil(t, stats.MedianKillsFor50Pct)
	})

	t.Run("Kill count clamped to one", func(t *testing.T) {
		tests := []int{0, -1, -100}
		for _, n := range tests {
			stats := ComputeKillStats(0.5, n)
			assert.Equal(t, 1, stats.NumKills)
			assert.InDelta(t, 0.5, stats.ProbAtLeastOne, 1e-9)
		}
	})

	t.Run("Certain drop", func(t *testing.T) {
		stats := ComputeKillStats(1.0, 10)

		assert.InDelta(t, 1.0, stats.ProbAtLeastOne, 1e-9)
		assert.InDelta(t, 10.0, stats.ExpectedDrops, 1e-9)
		require.NotNil(t, stats.MeanKillsForOne)
		assert.InDelta(t, 1.0, *stats.MeanKillsForOne, 1e-9)
	})
}
