package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luanqs/RagDropSim_Go/internal/domain"
)

func loadTestStore(t *testing.T) *Store {
	t.Helper()
	loader := NewLoader()
	config, err := loader.Load(testCatalogPath)
	require.NoError(t, err)
	require.NoError(t, loader.Validate(config))
	store, err := New(config)
	require.NoError(t, err)
	return store
}

func TestStoreContents(t *testing.T) {
	store := loadTestStore(t)

	contents := store.Contents()
	require.Len(t, contents, 2)
	assert.Equal(t, "dominio", contents[0].ContentID)
	assert.Equal(t, domain.ContentTypeNormal, contents[0].Type)
	assert.Equal(t, "troia", contents[1].ContentID)
	assert.Equal(t, domain.ContentTypeMonsterTable, contents[1].Type)
}

func TestStoreLevels(t *testing.T) {
	store := loadTestStore(t)

	t.Run("Numeric ordering", func(t *testing.T) {
		levels, err := store.Levels("dominio")
		require.NoError(t, err)
		require.Len(t, levels, 3)
		// "10" sorts after "2" numerically, not lexicographically.
		assert.Equal(t, "1", levels[0].LevelID)
		assert.Equal(t, "2", levels[1].LevelID)
		assert.Equal(t, "10", levels[2].LevelID)
	})

	t.Run("Unknown content", func(t *testing.T) {
		_, err := store.Levels("nope")
		assert.ErrorIs(t, err, domain.ErrContentNotFound)
	})
}

func TestStoreLevelDrops(t *testing.T) {
	store := loadTestStore(t)

	t.Run("Resolves items and skips unknown ids", func(t *testing.T) {
		drops, err := store.LevelDrops("dominio", "1")
		require.NoError(t, err)
		// "fantasma" is referenced by the level but absent from the item table.
		require.Len(t, drops, 2)
		assert.Equal(t, "eye", drops[0].ID)
		assert.Equal(t, 10.0, drops[0].BaseDropPercent)
		assert.Equal(t, "florzinha", drops[1].ID)
		assert.True(t, drops[1].IsFlorzinha)
	})

	t.Run("Unknown level", func(t *testing.T) {
		_, err := store.LevelDrops("dominio", "99")
		assert.ErrorIs(t, err, domain.ErrLevelNotFound)
	})
}

func TestStoreMonsterTable(t *testing.T) {
	store := loadTestStore(t)

	t.Run("Resolves table", func(t *testing.T) {
		view, err := store.MonsterTable("troia", "1")
		require.NoError(t, err)
		assert.Equal(t, []string{"dark_lord", "baphomet"}, view.Monsters)
		// "fantasma" rates are dropped with the unknown item.
		assert.Equal(t, []string{"essencia", "eye"}, view.ItemIDs)
		assert.Equal(t, 1.5, view.Rates["eye"]["dark_lord"])
	})

	t.Run("Wrong content type", func(t *testing.T) {
		_, err := store.MonsterTable("dominio", "1")
		assert.ErrorIs(t, err, domain.ErrNotMonsterTable)
	})

	t.Run("Unknown level", func(t *testing.T) {
		_, err := store.MonsterTable("troia", "9")
		assert.ErrorIs(t, err, domain.ErrLevelNotFound)
	})
}

func TestStoreItem(t *testing.T) {
	store := loadTestStore(t)

	item, err := store.Item("eye")
	require.NoError(t, err)
	assert.Equal(t, "Olho do Abismo", item.Name)

	_, err = store.Item("ghost")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestStoreCheckHealth(t *testing.T) {
	store := loadTestStore(t)
	assert.NoError(t, store.CheckHealth(context.Background()))

	empty := &Store{contents: map[string]domain.Content{}}
	assert.ErrorIs(t, empty.CheckHealth(context.Background()), domain.ErrNoCatalogData)
}

func TestMonsterDisplayName(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"dark_lord", "Dark Lord"},
		{"baphomet", "Baphomet"},
		{"orc_hero_king", "Orc Hero King"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MonsterDisplayName(tt.id))
	}
}
