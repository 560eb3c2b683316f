package model

import "errors"

// SimulationParams are the batch-wide constants.
type SimulationParams struct {
	Runs         int
	HorizonYears int
	Seed         int64
	// Parallelism caps concurrent runs. <=1 means sequential. Results are
	// identical at any setting because each run gets its own random source.
	Parallelism int
}

func (s SimulationParams) Validate() error {
	if s.Runs <= 0 {
		return errors.New("runs must be > 0")
	}
	if s.HorizonYears <= 0 {
		return errors.New("horizon_years must be > 0")
	}
	return nil
}

// HouseholdParams are the deterministic personal-finance constants shared by
// both scenarios of every run.
type HouseholdParams struct {
	StartingCash float64
	// AnnualIncome of 0 means income is derived from the mortgage payment
	// via MortgageToIncomeRatio.
	AnnualIncome          float64
	MortgageToIncomeRatio float64
	DownPaymentRate       float64
	LoanTermYears         int
	// MoveEveryYears triggers a renter move on a fixed interval. 0 disables
	// moves entirely.
	MoveEveryYears   int
	Married          bool
	CapitalGainsRate float64
	SellingCostRate  float64

	// Shifts applied to distribution means before drawing: good = 1 std dev,
	// great = 2 (great wins when both are set). Loan shifts lower the
	// mortgage-rate mean, growth shifts raise the housing-growth mean.
	AssumeGoodLoan           bool
	AssumeGreatLoan          bool
	AssumeGoodHousingGrowth  bool
	AssumeGreatHousingGrowth bool
}

func (h HouseholdParams) Validate() error {
	if h.StartingCash < 0 {
		return errors.New("starting_cash must be >= 0")
	}
	if h.AnnualIncome < 0 {
		return errors.New("annual_income must be >= 0")
	}
	if h.AnnualIncome == 0 && h.MortgageToIncomeRatio <= 0 {
		return errors.New("mortgage_to_income_ratio must be > 0 when annual_income is unset")
	}
	if h.DownPaymentRate <= 0 || h.DownPaymentRate > 1 {
		return errors.New("down_payment_rate must be in (0, 1]")
	}
	if h.LoanTermYears <= 0 {
		return errors.New("loan_term_years must be > 0")
	}
	if h.MoveEveryYears < 0 {
		return errors.New("move_every_years must be >= 0")
	}
	if h.CapitalGainsRate < 0 || h.CapitalGainsRate >= 1 {
		return errors.New("capital_gains_rate must be in [0, 1)")
	}
	if h.SellingCostRate < 0 || h.SellingCostRate >= 1 {
		return errors.New("selling_cost_rate must be in [0, 1)")
	}
	return nil
}

// OwnerState is the homeowner's mutable per-year state.
type OwnerState struct {
	Principal  float64 // remaining mortgage principal
	HomeValue  float64
	Equity     float64 // HomeValue - Principal, recorded each year
	Stocks     float64
	StockBasis float64 // contributed principal, for liquidation tax on growth
	Cash       float64 // uninvested cash, swept into stocks on the next step
}

// RenterState is the renter's mutable per-year state.
type RenterState struct {
	Rent           float64 // current annual rent
	YearsSinceMove int
	Stocks         float64
	StockBasis     float64
	Cash           float64
}
