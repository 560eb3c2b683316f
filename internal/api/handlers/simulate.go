package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rent-or-buy/internal/analysis"
	"rent-or-buy/internal/api/models"
	"rent-or-buy/internal/api/store"
	"rent-or-buy/internal/config"
	"rent-or-buy/internal/montecarlo"
)

// SimulateHandler handles simulation requests
type SimulateHandler struct {
	store *store.ResultStore
}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler(s *store.ResultStore) *SimulateHandler {
	return &SimulateHandler{store: s}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg := req.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	config.ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	engine := montecarlo.New()
	results, err := engine.Run(montecarlo.Inputs{
		Simulation:    cfg.Simulation.ToModel(),
		Household:     cfg.Household.ToModel(),
		Specs:         cfg.Parameters,
		IncludeLedger: req.Options.IncludeLedger,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.SimulateResponse{
		ID:          h.store.Put(results),
		Status:      "completed",
		Summary:     analysis.Summarize(results, cfg.Simulation.HorizonYears),
		Sensitivity: analysis.RankInfluence(results),
	}
	if req.Options.IncludeRuns {
		limit := len(results)
		if req.Options.LimitRuns > 0 && req.Options.LimitRuns < limit {
			limit = req.Options.LimitRuns
		}
		resp.Runs = make([]models.RunRecord, 0, limit)
		for _, r := range results[:limit] {
			resp.Runs = append(resp.Runs, models.NewRunRecord(r, req.Options.IncludeLedger))
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetRuns handles GET /api/v1/simulate/:id/runs
func (h *SimulateHandler) GetRuns(c *gin.Context) {
	id := c.Param("id")
	results, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "no stored simulation with id " + id,
			},
		})
		return
	}

	resp := models.RunsResponse{ID: id, Runs: make([]models.RunRecord, 0, len(results))}
	for _, r := range results {
		resp.Runs = append(resp.Runs, models.NewRunRecord(r, true))
	}
	c.JSON(http.StatusOK, resp)
}
