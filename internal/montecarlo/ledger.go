package montecarlo

import (
	"rent-or-buy/internal/model"
	"rent-or-buy/internal/scenario"
)

// RunResult is the outcome of one run: both scenarios liquidated at the
// horizon, in today's dollars and nominal, plus the parameter draw that
// produced it (kept for sensitivity inspection).
type RunResult struct {
	Run int

	// Net worths deflated to today's dollars by the run's sampled inflation
	// compounded over the horizon.
	OwnerNetWorth  float64
	RenterNetWorth float64

	OwnerNominal  float64
	RenterNominal float64

	AnnualIncome float64
	Params       model.SampledParams

	// Per-year rows, populated only when the engine is asked for them.
	OwnerYears  []scenario.YearRow
	RenterYears []scenario.YearRow
}
