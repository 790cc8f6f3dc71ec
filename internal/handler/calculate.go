package handler

import (
	"net/http"

	"github.com/luanqs/RagDropSim_Go/internal/calc"
	"github.com/luanqs/RagDropSim_Go/internal/domain"
)

// CalcHandler serves the drop calculation and simulation endpoints.
type CalcHandler struct {
	service calc.Service
}

// NewCalcHandler creates a new CalcHandler
func NewCalcHandler(service calc.Service) *CalcHandler {
	return &CalcHandler{service: service}
}

// BatchCalculateRequest selects a level and the modifiers to apply to it.
type BatchCalculateRequest struct {
	ContentID   string             `json:"content_id" validate:"required"`
	LevelID     string             `json:"level_id" validate:"required"`
	GeneralMods domain.ModifierMap `json:"general_mods"`
	FinalMods   domain.ModifierMap `json:"final_mods"`
	Consumables []string           `json:"consumables"`
}

func (req BatchCalculateRequest) scenario() calc.Scenario {
	return calc.Scenario{
		GeneralMods: req.GeneralMods,
		FinalMods:   req.FinalMods,
		Consumables: req.Consumables,
	}
}

// ScenarioRequest selects a single item, the modifiers, and the kill count.
type ScenarioRequest struct {
	ItemID      string             `json:"item_id" validate:"required"`
	GeneralMods domain.ModifierMap `json:"general_mods"`
	FinalMods   domain.ModifierMap `json:"final_mods"`
	Consumables []string           `json:"consumables"`
	NumKills    int                `json:"num_kills"`
}

// SimulateRequest extends ScenarioRequest with the Monte Carlo parameters.
// Seed is optional; when omitted the run is seeded from the wall clock and
// is not reproducible.
type SimulateRequest struct {
	ScenarioRequest
	MCSimulations int    `json:"mc_simulations"`
	Seed          *int64 `json:"seed,omitempty"`
}

// HandleCalculateAll calculates final rates for every drop of a level
// @Summary Batch drop calculation
// @Description Applies the selected modifiers to every drop of a normal level
// @Tags drop
// @Accept json
// @Produce json
// @Param request body BatchCalculateRequest true "Batch calculation request"
// @Success 200 {object} domain.BatchCalculation
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drop/calculate-all [post]
func (h *CalcHandler) HandleCalculateAll(w http.ResponseWriter, r *http.Request) {
	var req BatchCalculateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Batch calculate"); err != nil {
		return
	}

	result, err := h.service.CalculateAll(r.Context(), req.ContentID, req.LevelID, req.scenario())
	if err != nil {
		respondServiceError(w, r, "Batch calculate", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleCalculateMonsterTable calculates per-monster rates for a level
// @Summary Monster table calculation
// @Description Applies the selected modifiers to every item/monster pair of a monster_table level
// @Tags drop
// @Accept json
// @Produce json
// @Param request body BatchCalculateRequest true "Monster table calculation request"
// @Success 200 {object} domain.MonsterTableCalculation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drop/calculate-monster-table [post]
func (h *CalcHandler) HandleCalculateMonsterTable(w http.ResponseWriter, r *http.Request) {
	var req BatchCalculateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Monster table calculate"); err != nil {
		return
	}

	result, err := h.service.CalculateMonsterTable(r.Context(), req.ContentID, req.LevelID, req.scenario())
	if err != nil {
		respondServiceError(w, r, "Monster table calculate", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleCalculateItem calculates the full breakdown for one item
// @Summary Single item calculation
// @Description Returns the probability breakdown and kill statistics for one item
// @Tags drop
// @Accept json
// @Produce json
// @Param request body ScenarioRequest true "Item calculation request"
// @Success 200 {object} domain.ItemCalculation
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drop/calculate [post]
func (h *CalcHandler) HandleCalculateItem(w http.ResponseWriter, r *http.Request) {
	var req ScenarioRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Item calculate"); err != nil {
		return
	}

	scenario := calc.Scenario{
		GeneralMods: req.GeneralMods,
		FinalMods:   req.FinalMods,
		Consumables: req.Consumables,
	}
	result, err := h.service.CalculateItem(r.Context(), req.ItemID, scenario, req.NumKills)
	if err != nil {
		respondServiceError(w, r, "Item calculate", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleSimulate runs a Monte Carlo kills-until-drop estimate
// @Summary Drop simulation
// @Description Runs repeated kills-until-drop simulations and returns empirical statistics
// @Tags drop
// @Accept json
// @Produce json
// @Param request body SimulateRequest true "Simulation request"
// @Success 200 {object} domain.SimulationReport
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drop/simulate [post]
func (h *CalcHandler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Simulate"); err != nil {
		return
	}

	scenario := calc.Scenario{
		GeneralMods: req.GeneralMods,
		FinalMods:   req.FinalMods,
		Consumables: req.Consumables,
	}
	report, err := h.service.Simulate(r.Context(), req.ItemID, scenario, req.NumKills, req.MCSimulations, req.Seed)
	if err != nil {
		respondServiceError(w, r, "Simulate", err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
