package scenario

import "rent-or-buy/internal/model"

// Scenario is one financial trajectory within a run. Step advances the state
// by exactly one year; Liquidate converts everything held into a nominal
// net-worth figure and must be called once, after the final step.
type Scenario interface {
	Name() string
	Step(year int)
	Liquidate() float64
	Ledger() []YearRow
}

// YearRow is one row of per-year output for a scenario.
type YearRow struct {
	Year     int
	Scenario string

	Income       float64
	HousingCost  float64 // mortgage+tax+maintenance, or rent+net moving cost
	CostOfLiving float64
	Surplus      float64
	Action       model.Action

	HomeValue float64
	Principal float64
	Equity    float64
	Rent      float64
	Stocks    float64
}

// investAndGrow applies a year's surplus to the stock holding and then grows
// it by the sampled market return. A shortfall is drawn down from existing
// holdings; holdings and basis clamp at zero and never go negative. A run is
// never terminated early for insolvency; the zero floor masks it.
func investAndGrow(stocks, basis *float64, surplus, marketReturn float64) {
	*stocks += surplus
	*basis += surplus
	if *stocks < 0 {
		*stocks = 0
	}
	if *basis < 0 {
		*basis = 0
	}
	if *basis > *stocks {
		*basis = *stocks
	}
	*stocks *= 1 + marketReturn
}

// liquidateStocks returns after-tax proceeds, taxing only growth above the
// contributed basis at the long-term capital-gains rate.
func liquidateStocks(stocks, basis, cgRate float64) float64 {
	gain := stocks - basis
	if gain < 0 {
		gain = 0
	}
	return stocks - gain*cgRate
}
