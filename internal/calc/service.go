// Package calc orchestrates drop rate calculations: it reads base rates from
// the catalog store, resolves modifiers, runs the probability engine and
// derives kill statistics or Monte Carlo estimates.
package calc

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/luanqs/RagDropSim_Go/internal/catalog"
	"github.com/luanqs/RagDropSim_Go/internal/domain"
	"github.com/luanqs/RagDropSim_Go/internal/logger"
	"github.com/luanqs/RagDropSim_Go/internal/metrics"
	"github.com/luanqs/RagDropSim_Go/internal/modifier"
	"github.com/luanqs/RagDropSim_Go/internal/probability"
	"github.com/luanqs/RagDropSim_Go/internal/simulate"
)

// Scenario bundles the player-selected modifiers of one calculation request.
type Scenario struct {
	GeneralMods domain.ModifierMap
	FinalMods   domain.ModifierMap
	Consumables []string
}

// Service defines the interface for drop calculation operations
type Service interface {
	CalculateAll(ctx context.Context, contentID, levelID string, scenario Scenario) (*domain.BatchCalculation, error)
	CalculateMonsterTable(ctx context.Context, contentID, levelID string, scenario Scenario) (*domain.MonsterTableCalculation, error)
	CalculateItem(ctx context.Context, itemID string, scenario Scenario, numKills int) (*domain.ItemCalculation, error)
	Simulate(ctx context.Context, itemID string, scenario Scenario, numKills, simulations int, seed *int64) (*domain.SimulationReport, error)
}

type service struct {
	store *catalog.Store
	cache *lru.Cache[string, any]
	// newSimulator is injectable so tests can pin the random source.
	newSimulator func(seed *int64) *simulate.Simulator
}

// Batch results are pure functions of the request, so caching them is safe.
const cacheSize = 512

// NewService creates a new calc service backed by the given catalog store.
func NewService(store *catalog.Store) Service {
	cache, _ := lru.New[string, any](cacheSize)
	return &service{
		store: store,
		cache: cache,
		newSimulator: func(seed *int64) *simulate.Simulator {
			if seed != nil {
				return simulate.NewSeeded(*seed)
			}
			return simulate.New()
		},
	}
}

// baseFor returns the effective base rate of an item: florzinha items carry a
// fixed base regardless of the catalog value.
func baseFor(item domain.Item) float64 {
	if item.IsFlorzinha {
		return domain.FlorzinhaBasePercent
	}
	return item.BaseDropPercent
}

// CalculateAll computes final rates for every drop of a normal level.
func (s *service) CalculateAll(ctx context.Context, contentID, levelID string, scenario Scenario) (*domain.BatchCalculation, error) {
	key := cacheKey("all", contentID, levelID, scenario)
	if cached, ok := s.cache.Get(key); ok {
		metrics.CalcCacheHits.Inc()
		return cached.(*domain.BatchCalculation), nil
	}
	metrics.CalcCacheMisses.Inc()

	drops, err := s.store.LevelDrops(contentID, levelID)
	if err != nil {
		return nil, err
	}

	res := modifier.Resolve(scenario.Consumables, scenario.GeneralMods, scenario.FinalMods)
	res.GateReputation(contentID)
	bGeneral, bFinal := res.BGeneral(), res.BFinal()

	result := &domain.BatchCalculation{
		ContentID:       contentID,
		LevelID:         levelID,
		BGeneralPercent: bGeneral,
		BFinalPercent:   bFinal,
		Drops:           make([]domain.DropRate, 0, len(drops)),
	}

	for _, item := range drops {
		pBase := baseFor(item)
		pInter, pFinal := probability.Boost(pBase, bGeneral, bFinal)
		result.Drops = append(result.Drops, domain.DropRate{
			ItemID:          item.ID,
			ItemName:        item.Name,
			BaseDropPercent: pBase,
			BGeneralPercent: bGeneral,
			BFinalPercent:   bFinal,
			PInterPercent:   pInter,
			PFinalPercent:   pFinal,
			IsFlorzinha:     item.IsFlorzinha,
		})
	}

	metrics.CalculationsTotal.WithLabelValues(metrics.OpCalculateAll).Inc()
	s.cache.Add(key, result)
	return result, nil
}

// CalculateMonsterTable computes per-monster final rates for a monster_table level.
func (s *service) CalculateMonsterTable(ctx context.Context, contentID, levelID string, scenario Scenario) (*domain.MonsterTableCalculation, error) {
	key := cacheKey("monster", contentID, levelID, scenario)
	if cached, ok := s.cache.Get(key); ok {
		metrics.CalcCacheHits.Inc()
		return cached.(*domain.MonsterTableCalculation), nil
	}
	metrics.CalcCacheMisses.Inc()

	view, err := s.store.MonsterTable(contentID, levelID)
	if err != nil {
		return nil, err
	}

	res := modifier.Resolve(scenario.Consumables, scenario.GeneralMods, scenario.FinalMods)
	res.GateReputation(contentID)
	bGeneral, bFinal := res.BGeneral(), res.BFinal()

	result := &domain.MonsterTableCalculation{
		ContentID:       contentID,
		LevelID:         levelID,
		BGeneralPercent: bGeneral,
		BFinalPercent:   bFinal,
		Monsters:        make([]domain.MonsterInfo, 0, len(view.Monsters)),
		Drops:           make([]domain.MonsterTableDrop, 0, len(view.ItemIDs)),
	}

	for _, monsterID := range view.Monsters {
		result.Monsters = append(result.Monsters, domain.MonsterInfo{
			MonsterID: monsterID,
			Name:      catalog.MonsterDisplayName(monsterID),
		})
	}

	for _, itemID := range view.ItemIDs {
		item, err := s.store.Item(itemID)
		if err != nil {
			return nil, err
		}

		entry := domain.MonsterTableDrop{
			ItemID:          itemID,
			ItemName:        item.Name,
			CalculatedRates: make(map[string]domain.MonsterRate, len(view.Monsters)),
		}
		for _, monsterID := range view.Monsters {
			pBase := view.Rates[itemID][monsterID]
			_, pFinal := probability.Boost(pBase, bGeneral, bFinal)
			entry.CalculatedRates[monsterID] = domain.MonsterRate{Base: pBase, Final: pFinal}
		}
		result.Drops = append(result.Drops, entry)
	}

	metrics.CalculationsTotal.WithLabelValues(metrics.OpCalculateMonsterTable).Inc()
	s.cache.Add(key, result)
	return result, nil
}

// CalculateItem computes the full breakdown for one item, including mastery
// bonuses and closed-form kill statistics.
func (s *service) CalculateItem(ctx context.Context, itemID string, scenario Scenario, numKills int) (*domain.ItemCalculation, error) {
	item, err := s.store.Item(itemID)
	if err != nil {
		return nil, err
	}

	res := modifier.Resolve(scenario.Consumables, scenario.GeneralMods, scenario.FinalMods)
	res.ApplyMastery(scenario.Consumables)
	bGeneral, bFinal := res.BGeneral(), res.BFinal()

	pBase := baseFor(item)
	pInter, pFinal := probability.Boost(pBase, bGeneral, bFinal)
	_, florFinal := probability.Boost(domain.FlorzinhaBasePercent, bGeneral, bFinal)

	stats := probability.ComputeKillStats(pFinal/100.0, numKills)

	metrics.CalculationsTotal.WithLabelValues(metrics.OpCalculateItem).Inc()
	return &domain.ItemCalculation{
		ItemID:               itemID,
		PBasePercent:         pBase,
		BGeneralPercent:      bGeneral,
		BFinalPercent:        bFinal,
		PInterPercent:        pInter,
		PFinalPercent:        pFinal,
		DropFlorzinhaPercent: florFinal,
		ProbAtLeastOneInN:    stats.ProbAtLeastOne,
		ExpectedDropsInN:     stats.ExpectedDrops,
		MeanKillsForOne:      stats.MeanKillsForOne,
		MedianKillsFor50Pct:  stats.MedianKillsFor50Pct,
		NumKills:             stats.NumKills,
	}, nil
}

// Simulate runs the single-item calculation and then a Monte Carlo estimate
// of kills needed for one drop. Results are intentionally non-reproducible
// unless the caller pins a seed.
func (s *service) Simulate(ctx context.Context, itemID string, scenario Scenario, numKills, simulations int, seed *int64) (*domain.SimulationReport, error) {
	calcResult, err := s.CalculateItem(ctx, itemID, scenario, numKills)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	report := s.newSimulator(seed).Run(calcResult.PFinalPercent/100.0, simulations)
	elapsed := time.Since(start)

	metrics.SimulationDuration.Observe(elapsed.Seconds())
	metrics.CalculationsTotal.WithLabelValues(metrics.OpSimulate).Inc()

	logger.FromContext(ctx).Debug("Simulation finished",
		"item_id", itemID,
		"simulations", report.Simulations,
		"avg_kills", report.AvgKills,
		"duration_ms", elapsed.Milliseconds())

	return &report, nil
}

// cacheKey fingerprints a batch request. Maps are serialized sorted so equal
// scenarios always collide.
func cacheKey(op, contentID, levelID string, scenario Scenario) string {
	return fmt.Sprintf("%s|%s|%s|%s", op, contentID, levelID, scenario.fingerprint())
}
