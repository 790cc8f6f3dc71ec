package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luanqs/RagDropSim_Go/internal/catalog"
	"github.com/luanqs/RagDropSim_Go/internal/domain"
)

// ContentsResponse lists every selectable content.
type ContentsResponse struct {
	Contents []catalog.ContentSummary `json:"contents"`
}

// LevelsResponse lists the levels of one content.
type LevelsResponse struct {
	Levels []catalog.LevelSummary `json:"levels"`
}

// DropEntry is one item of a level drop listing.
type DropEntry struct {
	ItemID          string  `json:"item_id"`
	Name            string  `json:"name"`
	BaseDropPercent float64 `json:"base_drop_percent"`
}

// DropsResponse lists the drops of one normal level.
type DropsResponse struct {
	Drops []DropEntry `json:"drops"`
}

// MonsterDropEntry is one item row of a monster drop table.
type MonsterDropEntry struct {
	ItemID   string             `json:"item_id"`
	ItemName string             `json:"item_name"`
	Rates    map[string]float64 `json:"rates"`
}

// MonsterDropsResponse is the per-monster base rate table of one level.
type MonsterDropsResponse struct {
	ContentID string               `json:"content_id"`
	LevelID   string               `json:"level_id"`
	Monsters  []domain.MonsterInfo `json:"monsters"`
	Drops     []MonsterDropEntry   `json:"drops"`
}

// HandleListContents lists all available contents
// @Summary List contents
// @Description Returns every selectable content with its type
// @Tags catalog
// @Produce json
// @Success 200 {object} ContentsResponse
// @Router /contents [get]
func HandleListContents(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ContentsResponse{Contents: store.Contents()})
	}
}

// HandleListLevels lists the levels of a content
// @Summary List levels
// @Description Returns the levels of a content, ordered numerically
// @Tags catalog
// @Produce json
// @Param content_id path string true "Content ID"
// @Success 200 {object} LevelsResponse
// @Failure 404 {object} ErrorResponse
// @Router /contents/{content_id}/levels [get]
func HandleListLevels(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentID := chi.URLParam(r, "content_id")

		levels, err := store.Levels(contentID)
		if err != nil {
			respondServiceError(w, r, "List levels", err)
			return
		}

		respondJSON(w, http.StatusOK, LevelsResponse{Levels: levels})
	}
}

// HandleListDrops lists the drops of a level
// @Summary List level drops
// @Description Returns the items droppable in a level with their base rates
// @Tags catalog
// @Produce json
// @Param content_id path string true "Content ID"
// @Param level_id path string true "Level ID"
// @Success 200 {object} DropsResponse
// @Failure 404 {object} ErrorResponse
// @Router /contents/{content_id}/levels/{level_id}/drops [get]
func HandleListDrops(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentID := chi.URLParam(r, "content_id")
		levelID := chi.URLParam(r, "level_id")

		items, err := store.LevelDrops(contentID, levelID)
		if err != nil {
			respondServiceError(w, r, "List drops", err)
			return
		}

		drops := make([]DropEntry, 0, len(items))
		for _, item := range items {
			drops = append(drops, DropEntry{
				ItemID:          item.ID,
				Name:            item.Name,
				BaseDropPercent: item.BaseDropPercent,
			})
		}

		respondJSON(w, http.StatusOK, DropsResponse{Drops: drops})
	}
}

// HandleListMonsterDrops returns the monster drop table of a level
// @Summary List monster drops
// @Description Returns the per-monster base rate table for a monster_table level
// @Tags catalog
// @Produce json
// @Param content_id path string true "Content ID"
// @Param level_id path string true "Level ID"
// @Success 200 {object} MonsterDropsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /contents/{content_id}/levels/{level_id}/monster-drops [get]
func HandleListMonsterDrops(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentID := chi.URLParam(r, "content_id")
		levelID := chi.URLParam(r, "level_id")

		view, err := store.MonsterTable(contentID, levelID)
		if err != nil {
			respondServiceError(w, r, "List monster drops", err)
			return
		}

		monsters := make([]domain.MonsterInfo, 0, len(view.Monsters))
		for _, monsterID := range view.Monsters {
			monsters = append(monsters, domain.MonsterInfo{
				MonsterID: monsterID,
				Name:      catalog.MonsterDisplayName(monsterID),
			})
		}

		drops := make([]MonsterDropEntry, 0, len(view.ItemIDs))
		for _, itemID := range view.ItemIDs {
			item, err := store.Item(itemID)
			if err != nil {
				respondServiceError(w, r, "List monster drops", err)
				return
			}

			rates := make(map[string]float64, len(view.Monsters))
			for _, monsterID := range view.Monsters {
				rates[monsterID] = view.Rates[itemID][monsterID]
			}
			drops = append(drops, MonsterDropEntry{
				ItemID:   itemID,
				ItemName: item.Name,
				Rates:    rates,
			})
		}

		respondJSON(w, http.StatusOK, MonsterDropsResponse{
			ContentID: contentID,
			LevelID:   levelID,
			Monsters:  monsters,
			Drops:     drops,
		})
	}
}
