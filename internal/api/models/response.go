package models

import (
	"rent-or-buy/internal/analysis"
	"rent-or-buy/internal/model"
	"rent-or-buy/internal/montecarlo"
	"rent-or-buy/internal/scenario"
)

// SimulateResponse is the response from a simulation run.
type SimulateResponse struct {
	ID          string                    `json:"id"`
	Status      string                    `json:"status"`
	Summary     analysis.Summary          `json:"summary"`
	Sensitivity []analysis.ParamInfluence `json:"sensitivity"`
	Runs        []RunRecord               `json:"runs,omitempty"`
}

// RunRecord is one run's outcome for API output.
type RunRecord struct {
	Run            int                 `json:"run"`
	OwnerNetWorth  float64             `json:"owner_net_worth"`
	RenterNetWorth float64             `json:"renter_net_worth"`
	OwnerNominal   float64             `json:"owner_nominal"`
	RenterNominal  float64             `json:"renter_nominal"`
	AnnualIncome   float64             `json:"annual_income"`
	Params         map[string]float64  `json:"params"`
	OwnerYears     []scenario.YearRow  `json:"owner_years,omitempty"`
	RenterYears    []scenario.YearRow  `json:"renter_years,omitempty"`
}

// NewRunRecord converts an engine result for API output.
func NewRunRecord(r montecarlo.RunResult, includeLedger bool) RunRecord {
	rec := RunRecord{
		Run:            r.Run,
		OwnerNetWorth:  r.OwnerNetWorth,
		RenterNetWorth: r.RenterNetWorth,
		OwnerNominal:   r.OwnerNominal,
		RenterNominal:  r.RenterNominal,
		AnnualIncome:   r.AnnualIncome,
		Params:         r.Params,
	}
	if includeLedger {
		rec.OwnerYears = r.OwnerYears
		rec.RenterYears = r.RenterYears
	}
	return rec
}

// RunsResponse is the response for fetching a stored batch's runs.
type RunsResponse struct {
	ID   string      `json:"id"`
	Runs []RunRecord `json:"runs"`
}

// ParameterInfo describes one recognized parameter and its default spec.
type ParameterInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Default     model.ParamSpec `json:"default"`
}

// ParametersResponse lists the recognized parameters.
type ParametersResponse struct {
	Parameters []ParameterInfo `json:"parameters"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
