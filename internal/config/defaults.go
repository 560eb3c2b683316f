package config

import "rent-or-buy/internal/model"

func ptr(v float64) *float64 { return &v }

// Default returns a fully-populated config. Distribution values follow
// published averages for a high-credit borrower in a mid-Atlantic metro
// (mortgage and rent levels) and long-run US market history (stock and
// housing returns, inflation).
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Runs:         1000,
			HorizonYears: 10,
			Seed:         1,
			Parallelism:  1,
		},
		Household: HouseholdConfig{
			StartingCash:          250000,
			AnnualIncome:          0, // derived from the mortgage payment
			MortgageToIncomeRatio: 0.28,
			DownPaymentRate:       0.20,
			LoanTermYears:         15,
			MoveEveryYears:        3,
			Married:               false,
			CapitalGainsRate:      0.15,
			SellingCostRate:       0.075,
		},
		Parameters: map[string]model.ParamSpec{
			model.ParamInflation: {
				Mean: 0.0239, StdDev: 0.0123, Floor: ptr(-0.02),
			},
			model.ParamStockReturn: {
				Mean: 0.09, StdDev: 0.15,
			},
			model.ParamHousingGrowth: {
				Mean: 0.038, StdDev: 0.03,
			},
			model.ParamMortgageRate: {
				Mean: 0.06459, StdDev: 0.0040, Floor: ptr(0.005),
			},
			model.ParamPropertyTaxRate: {
				Mean: 0.011, StdDev: 0.0015, Floor: ptr(0),
			},
			model.ParamMaintenanceRate: {
				Mean: 0.012, StdDev: 0.003, Floor: ptr(0),
			},
			model.ParamPropertyPrice: {
				Mean: 750000, StdDev: 50000, Floor: ptr(0),
			},
			// Annualized from a ~$3,100/month two-bedroom.
			model.ParamMarketRent: {
				Mean: 37140, StdDev: 2100, Floor: ptr(0),
			},
			model.ParamRentGrowth: {
				Mean: 0.06, StdDev: 0.03,
			},
			model.ParamMovingCost: {
				Mean: 400, StdDev: 100, Floor: ptr(0),
			},
			model.ParamMovingSavings: {
				Mean: 1000, StdDev: 200, Floor: ptr(0),
			},
			model.ParamCostOfLiving: {
				Mean: 52000, StdDev: 4000, Floor: ptr(0),
			},
			model.ParamIncomeGrowth: {
				DeriveFrom: model.ParamInflation, Spread: 0.01,
			},
			model.ParamCOLGrowth: {
				DeriveFrom: model.ParamInflation, Spread: 0.005,
			},
		},
	}
}
