// Package catalog loads the static drop catalog (contents, levels, items,
// monster rate tables) from JSON and serves read-only lookups over it. The
// catalog is loaded once at startup and never mutated afterwards.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/luanqs/RagDropSim_Go/internal/domain"
)

// Sentinel errors for the catalog loader
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON catalog file.
type Config struct {
	Version     string                `json:"version"`
	Description string                `json:"description"`
	Items       map[string]ItemDef    `json:"items"`
	Contents    map[string]ContentDef `json:"contents"`
}

// ItemDef is a single item definition in the JSON.
type ItemDef struct {
	Name            string  `json:"name"`
	BaseDropPercent float64 `json:"base_drop_percent"`
	IsFlorzinha     bool    `json:"is_florzinha,omitempty"`
}

// ContentDef is a single content definition in the JSON.
type ContentDef struct {
	Name   string              `json:"name"`
	Type   string              `json:"type"`
	Levels map[string]LevelDef `json:"levels"`
}

// LevelDef is a single level definition. Drops is kept raw because its shape
// depends on the content type: a list of item IDs for normal contents, an
// item -> monster -> rate table for monster_table contents.
type LevelDef struct {
	Name     string          `json:"name"`
	Monsters []string        `json:"monsters,omitempty"`
	Drops    json.RawMessage `json:"drops"`
}

// Loader handles loading and validating the catalog configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type catalogLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{}
}

// Load reads and parses the catalog JSON file.
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors.
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if len(config.Contents) == 0 {
		return fmt.Errorf("%w: no contents defined", ErrInvalidConfig)
	}

	for id, item := range config.Items {
		if id == "" {
			return fmt.Errorf("%w: item with empty id", ErrInvalidConfig)
		}
		if item.BaseDropPercent < 0 || item.BaseDropPercent > 100 {
			return fmt.Errorf("%w: item '%s' base_drop_percent %v out of range [0,100]",
				ErrInvalidConfig, id, item.BaseDropPercent)
		}
	}

	for contentID, content := range config.Contents {
		if err := l.validateContentDef(contentID, &content); err != nil {
			return err
		}
	}

	return nil
}

func (l *catalogLoader) validateContentDef(contentID string, content *ContentDef) error {
	if contentID == "" {
		return fmt.Errorf("%w: content with empty id", ErrInvalidConfig)
	}

	contentType := domain.ContentType(content.Type)
	if contentType != domain.ContentTypeNormal && contentType != domain.ContentTypeMonsterTable {
		return fmt.Errorf("%w: content '%s' has unknown type '%s'", ErrInvalidConfig, contentID, content.Type)
	}

	for levelID, level := range content.Levels {
		if len(level.Drops) == 0 {
			continue
		}
		switch contentType {
		case domain.ContentTypeNormal:
			var drops []string
			if err := json.Unmarshal(level.Drops, &drops); err != nil {
				return fmt.Errorf("%w: content '%s' level '%s' drops must be an item list: %v",
					ErrInvalidConfig, contentID, levelID, err)
			}
		case domain.ContentTypeMonsterTable:
			var rates map[string]map[string]float64
			if err := json.Unmarshal(level.Drops, &rates); err != nil {
				return fmt.Errorf("%w: content '%s' level '%s' drops must be a monster rate table: %v",
					ErrInvalidConfig, contentID, levelID, err)
			}
			for itemID, monsterRates := range rates {
				for monsterID, rate := range monsterRates {
					if rate < 0 || rate > 100 {
						return fmt.Errorf("%w: content '%s' level '%s' item '%s' monster '%s' rate %v out of range [0,100]",
							ErrInvalidConfig, contentID, levelID, itemID, monsterID, rate)
					}
				}
			}
		}
	}

	return nil
}
