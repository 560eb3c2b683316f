package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"rent-or-buy/internal/api/models"
	"rent-or-buy/internal/config"
	"rent-or-buy/internal/model"
)

// ParametersHandler handles parameter catalog requests
type ParametersHandler struct{}

// NewParametersHandler creates a new parameters handler
func NewParametersHandler() *ParametersHandler {
	return &ParametersHandler{}
}

var paramDescriptions = map[string]string{
	model.ParamInflation:       "Annual CPI inflation; also deflates final net worths to today's dollars",
	model.ParamStockReturn:     "Annual stock-market return applied to both scenarios' holdings",
	model.ParamHousingGrowth:   "Annual home-value appreciation",
	model.ParamMortgageRate:    "Fixed mortgage rate for the loan term",
	model.ParamPropertyTaxRate: "Property tax as a fraction of current home value",
	model.ParamMaintenanceRate: "Maintenance, insurance and HOA as a fraction of current home value",
	model.ParamPropertyPrice:   "Purchase price of the home ($)",
	model.ParamMarketRent:      "Annual market rent for a fresh lease ($/year)",
	model.ParamRentGrowth:      "Landlord escalation on a held lease",
	model.ParamMovingCost:      "Amortized annual cost of periodic moves ($/year)",
	model.ParamMovingSavings:   "Amortized annual concessions from moving ($/year)",
	model.ParamCostOfLiving:    "Non-housing cost of living ($/year)",
	model.ParamIncomeGrowth:    "Annual income growth (derived: inflation + spread)",
	model.ParamCOLGrowth:       "Cost-of-living growth (derived: inflation + spread)",
}

// ListParameters handles GET /api/v1/parameters
func (h *ParametersHandler) ListParameters(c *gin.Context) {
	defaults := config.Default().Parameters

	out := make([]models.ParameterInfo, 0, len(defaults))
	for name, spec := range defaults {
		out = append(out, models.ParameterInfo{
			Name:        name,
			Description: paramDescriptions[name],
			Default:     spec,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	c.JSON(http.StatusOK, models.ParametersResponse{Parameters: out})
}
