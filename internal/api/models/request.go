package models

import "rent-or-buy/internal/config"

// SimulateRequest is the request body for running a simulation batch.
// Config may be partial; missing values fall back to the server defaults.
type SimulateRequest struct {
	Config  *config.Config  `json:"config,omitempty"`
	Options SimulateOptions `json:"options,omitempty"`
}

// SimulateOptions contains optional simulation parameters.
type SimulateOptions struct {
	IncludeRuns   bool `json:"include_runs,omitempty"`   // embed per-run results in the response
	IncludeLedger bool `json:"include_ledger,omitempty"` // keep per-year rows (stored, fetchable by id)
	LimitRuns     int  `json:"limit_runs,omitempty"`     // cap embedded runs (0 = all)
}
