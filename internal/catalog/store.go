package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/luanqs/RagDropSim_Go/internal/domain"
)

// ContentSummary is the listing form of a content.
type ContentSummary struct {
	ContentID string             `json:"content_id"`
	Name      string             `json:"name"`
	Type      domain.ContentType `json:"type"`
}

// LevelSummary is the listing form of a level.
type LevelSummary struct {
	LevelID string `json:"level_id"`
	Name    string `json:"name"`
}

// MonsterTableView is the resolved monster rate table of one level.
type MonsterTableView struct {
	ContentID string
	LevelID   string
	Monsters  []string
	// Rates maps item ID -> monster ID -> base drop percent. Only items that
	// exist in the item table are included, sorted order via ItemIDs.
	Rates   map[string]map[string]float64
	ItemIDs []string
}

// Store is the immutable in-memory catalog. Safe for concurrent reads; it is
// never written after New returns.
type Store struct {
	items    map[string]domain.Item
	contents map[string]domain.Content
}

// New builds a Store from a validated Config, decoding the per-level drop
// payloads into their content-type specific shape.
func New(config *Config) (*Store, error) {
	items := make(map[string]domain.Item, len(config.Items))
	for id, def := range config.Items {
		items[id] = domain.Item{
			ID:              id,
			Name:            def.Name,
			BaseDropPercent: def.BaseDropPercent,
			IsFlorzinha:     def.IsFlorzinha,
		}
	}

	contents := make(map[string]domain.Content, len(config.Contents))
	for contentID, contentDef := range config.Contents {
		content := domain.Content{
			ID:     contentID,
			Name:   contentDef.Name,
			Type:   domain.ContentType(contentDef.Type),
			Levels: make(map[string]domain.Level, len(contentDef.Levels)),
		}

		for levelID, levelDef := range contentDef.Levels {
			level := domain.Level{
				ID:       levelID,
				Name:     levelDef.Name,
				Monsters: levelDef.Monsters,
			}
			if len(levelDef.Drops) > 0 {
				switch content.Type {
				case domain.ContentTypeNormal:
					if err := json.Unmarshal(levelDef.Drops, &level.Drops); err != nil {
						return nil, fmt.Errorf("content '%s' level '%s': %w", contentID, levelID, err)
					}
				case domain.ContentTypeMonsterTable:
					if err := json.Unmarshal(levelDef.Drops, &level.Rates); err != nil {
						return nil, fmt.Errorf("content '%s' level '%s': %w", contentID, levelID, err)
					}
				}
			}
			content.Levels[levelID] = level
		}

		contents[contentID] = content
	}

	return &Store{items: items, contents: contents}, nil
}

// Contents lists every content, sorted by id for stable output.
func (s *Store) Contents() []ContentSummary {
	result := make([]ContentSummary, 0, len(s.contents))
	for _, content := range s.contents {
		result = append(result, ContentSummary{
			ContentID: content.ID,
			Name:      content.Name,
			Type:      content.Type,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ContentID < result[j].ContentID })
	return result
}

// Content returns a content by id.
func (s *Store) Content(contentID string) (domain.Content, error) {
	content, ok := s.contents[contentID]
	if !ok {
		return domain.Content{}, fmt.Errorf("%w: '%s'", domain.ErrContentNotFound, contentID)
	}
	return content, nil
}

// Levels lists the levels of a content, sorted numerically by level id.
func (s *Store) Levels(contentID string) ([]LevelSummary, error) {
	content, err := s.Content(contentID)
	if err != nil {
		return nil, err
	}

	result := make([]LevelSummary, 0, len(content.Levels))
	for _, level := range content.Levels {
		result = append(result, LevelSummary{LevelID: level.ID, Name: level.Name})
	}
	sort.Slice(result, func(i, j int) bool {
		return levelSortKey(result[i].LevelID) < levelSortKey(result[j].LevelID)
	})
	return result, nil
}

// levelSortKey orders numeric level ids numerically; non-numeric ids sort
// after all numeric ones.
func levelSortKey(levelID string) int {
	if n, err := strconv.Atoi(levelID); err == nil {
		return n
	}
	return int(^uint(0) >> 1)
}

// Level returns one level of a content.
func (s *Store) Level(contentID, levelID string) (domain.Content, domain.Level, error) {
	content, err := s.Content(contentID)
	if err != nil {
		return domain.Content{}, domain.Level{}, err
	}
	level, ok := content.Levels[levelID]
	if !ok {
		return domain.Content{}, domain.Level{}, fmt.Errorf("%w: '%s'", domain.ErrLevelNotFound, levelID)
	}
	return content, level, nil
}

// LevelDrops resolves the item list of a normal level. Item ids missing from
// the item table are skipped.
func (s *Store) LevelDrops(contentID, levelID string) ([]domain.Item, error) {
	_, level, err := s.Level(contentID, levelID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Item, 0, len(level.Drops))
	for _, itemID := range level.Drops {
		if item, ok := s.items[itemID]; ok {
			result = append(result, item)
		}
	}
	return result, nil
}

// MonsterTable resolves the per-monster rate table of a monster_table level.
// Returns domain.ErrNotMonsterTable for contents of any other type.
func (s *Store) MonsterTable(contentID, levelID string) (*MonsterTableView, error) {
	content, err := s.Content(contentID)
	if err != nil {
		return nil, err
	}
	if content.Type != domain.ContentTypeMonsterTable {
		return nil, fmt.Errorf("%w: '%s'", domain.ErrNotMonsterTable, contentID)
	}

	level, ok := content.Levels[levelID]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", domain.ErrLevelNotFound, levelID)
	}

	view := &MonsterTableView{
		ContentID: contentID,
		LevelID:   levelID,
		Monsters:  level.Monsters,
		Rates:     level.Rates,
	}
	for itemID := range level.Rates {
		if _, ok := s.items[itemID]; ok {
			view.ItemIDs = append(view.ItemIDs, itemID)
		}
	}
	sort.Strings(view.ItemIDs)
	return view, nil
}

// Item returns an item by id.
func (s *Store) Item(itemID string) (domain.Item, error) {
	item, ok := s.items[itemID]
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: '%s'", domain.ErrItemNotFound, itemID)
	}
	return item, nil
}

// CheckHealth reports whether the catalog is loaded and non-empty.
func (s *Store) CheckHealth(_ context.Context) error {
	if s == nil || len(s.contents) == 0 {
		return domain.ErrNoCatalogData
	}
	return nil
}

var monsterTitle = cases.Title(language.Und)

// MonsterDisplayName turns a monster id like "dark_lord" into "Dark Lord".
func MonsterDisplayName(monsterID string) string {
	return monsterTitle.String(strings.ReplaceAll(monsterID, "_", " "))
}
