package scenario

import (
	"math"

	"rent-or-buy/internal/model"
)

// Renter simulates the renter trajectory: pay rent, absorb amortized moving
// costs, invest everything left over.
type Renter struct {
	hh     model.HouseholdParams
	params model.SampledParams
	st     model.RenterState

	income       float64
	costOfLiving float64

	rows []YearRow
}

func NewRenter(hh model.HouseholdParams, params model.SampledParams, income float64) *Renter {
	return &Renter{
		hh:           hh,
		params:       params,
		income:       income,
		costOfLiving: params[model.ParamCostOfLiving],
		st: model.RenterState{
			Rent: params[model.ParamMarketRent],
			Cash: hh.StartingCash,
		},
	}
}

func (r *Renter) Name() string { return "renter" }

func (r *Renter) Step(year int) {
	st := &r.st

	// 1./2. Move on the fixed interval, resetting rent to the market rate
	// for that year; otherwise the landlord escalates the current lease.
	// The market rate drifts with inflation from the sampled starting rent.
	if year > 0 {
		if r.hh.MoveEveryYears > 0 && st.YearsSinceMove+1 >= r.hh.MoveEveryYears {
			marketNow := r.params[model.ParamMarketRent] * math.Pow(1+r.params[model.ParamInflation], float64(year))
			st.Rent = marketNow
			st.YearsSinceMove = 0
		} else {
			st.Rent *= 1 + r.params[model.ParamRentGrowth]
			st.YearsSinceMove++
		}
	}

	movingNet := r.params[model.ParamMovingCost] - r.params[model.ParamMovingSavings]
	housingCost := st.Rent + movingNet

	// 3. Invest the remainder, grown by the same sampled market return the
	// homeowner sees this year.
	surplus := r.income - housingCost - r.costOfLiving + st.Cash
	st.Cash = 0
	investAndGrow(&st.Stocks, &st.StockBasis, surplus, r.params[model.ParamStockReturn])

	r.rows = append(r.rows, YearRow{
		Year:         year,
		Scenario:     r.Name(),
		Income:       r.income,
		HousingCost:  housingCost,
		CostOfLiving: r.costOfLiving,
		Surplus:      surplus,
		Action:       model.ActionFromSurplus(surplus),
		Rent:         st.Rent,
		Stocks:       st.Stocks,
	})

	r.income *= 1 + r.params[model.ParamIncomeGrowth]
	r.costOfLiving *= 1 + r.params[model.ParamCOLGrowth]
}

func (r *Renter) Liquidate() float64 {
	return liquidateStocks(r.st.Stocks, r.st.StockBasis, r.hh.CapitalGainsRate) + r.st.Cash
}

func (r *Renter) Ledger() []YearRow { return r.rows }
