package montecarlo

import "rent-or-buy/internal/scenario"

// Simulate drives one scenario through the full horizon with its fixed
// parameter set, then liquidates exactly once. Parameters are never
// re-sampled mid-run.
func Simulate(sc scenario.Scenario, horizonYears int) float64 {
	for year := 0; year < horizonYears; year++ {
		sc.Step(year)
	}
	return sc.Liquidate()
}
