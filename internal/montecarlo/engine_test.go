package montecarlo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-or-buy/internal/model"
)

// stochasticInputs is a realistic configuration with real variance.
func stochasticInputs(runs, horizon int, seed int64) Inputs {
	return Inputs{
		Simulation: model.SimulationParams{Runs: runs, HorizonYears: horizon, Seed: seed},
		Household: model.HouseholdParams{
			StartingCash:          250000,
			MortgageToIncomeRatio: 0.28,
			DownPaymentRate:       0.20,
			LoanTermYears:         15,
			MoveEveryYears:        3,
			CapitalGainsRate:      0.15,
			SellingCostRate:       0.075,
		},
		Specs: map[string]model.ParamSpec{
			model.ParamInflation:       {Mean: 0.0239, StdDev: 0.0123},
			model.ParamStockReturn:     {Mean: 0.09, StdDev: 0.15},
			model.ParamHousingGrowth:   {Mean: 0.038, StdDev: 0.03},
			model.ParamMortgageRate:    {Mean: 0.06459, StdDev: 0.004},
			model.ParamPropertyTaxRate: {Mean: 0.011, StdDev: 0.0015},
			model.ParamMaintenanceRate: {Mean: 0.012, StdDev: 0.003},
			model.ParamPropertyPrice:   {Mean: 750000, StdDev: 50000},
			model.ParamMarketRent:      {Mean: 37140, StdDev: 2100},
			model.ParamRentGrowth:      {Mean: 0.06, StdDev: 0.03},
			model.ParamMovingCost:      {Mean: 400, StdDev: 100},
			model.ParamMovingSavings:   {Mean: 1000, StdDev: 200},
			model.ParamCostOfLiving:    {Mean: 52000, StdDev: 4000},
			model.ParamIncomeGrowth:    {DeriveFrom: model.ParamInflation, Spread: 0.01},
			model.ParamCOLGrowth:       {DeriveFrom: model.ParamInflation, Spread: 0.005},
		},
	}
}

func TestRunProducesFiniteResultPerRun(t *testing.T) {
	results, err := New().Run(stochasticInputs(100, 10, 3))
	require.NoError(t, err)
	require.Len(t, results, 100)

	for i, r := range results {
		assert.Equal(t, i, r.Run)
		assert.False(t, math.IsNaN(r.OwnerNetWorth) || math.IsInf(r.OwnerNetWorth, 0), "run %d owner", i)
		assert.False(t, math.IsNaN(r.RenterNetWorth) || math.IsInf(r.RenterNetWorth, 0), "run %d renter", i)
		assert.NotEmpty(t, r.Params)
	}
}

func TestRunDeterministicUnderFixedSeed(t *testing.T) {
	a, err := New().Run(stochasticInputs(50, 10, 99))
	require.NoError(t, err)
	b, err := New().Run(stochasticInputs(50, 10, 99))
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestParallelMatchesSequential(t *testing.T) {
	seq := stochasticInputs(60, 10, 7)
	seq.Simulation.Parallelism = 1
	par := stochasticInputs(60, 10, 7)
	par.Simulation.Parallelism = 8

	a, err := New().Run(seq)
	require.NoError(t, err)
	b, err := New().Run(par)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestRunsAreIndependentOfBatchSize(t *testing.T) {
	// Run i depends only on seed+i, so a smaller batch is a prefix of a
	// larger one.
	small, err := New().Run(stochasticInputs(10, 10, 11))
	require.NoError(t, err)
	large, err := New().Run(stochasticInputs(30, 10, 11))
	require.NoError(t, err)

	require.Equal(t, small, large[:10])
}

func TestScenariosShareTheSampledParameters(t *testing.T) {
	in := stochasticInputs(20, 10, 21)
	in.IncludeLedger = true
	results, err := New().Run(in)
	require.NoError(t, err)

	for _, r := range results {
		require.Len(t, r.OwnerYears, 10)
		require.Len(t, r.RenterYears, 10)
		for y := range r.OwnerYears {
			// Same income path on both sides implies both scenarios saw the
			// identical income-growth (and therefore inflation) draw.
			assert.Equal(t, r.OwnerYears[y].Income, r.RenterYears[y].Income, "run %d year %d", r.Run, y)
			assert.Equal(t, r.OwnerYears[y].CostOfLiving, r.RenterYears[y].CostOfLiving, "run %d year %d", r.Run, y)
		}
	}
}

func TestLiquidationHappensOnlyAtTheHorizon(t *testing.T) {
	in := stochasticInputs(10, 10, 31)
	in.IncludeLedger = true
	results, err := New().Run(in)
	require.NoError(t, err)

	for _, r := range results {
		for y := 0; y < len(r.OwnerYears)-1; y++ {
			paper := r.OwnerYears[y].Equity + r.OwnerYears[y].Stocks
			assert.NotEqual(t, r.OwnerNominal, paper, "run %d year %d equals the liquidated result", r.Run, y)
		}
	}
}

func TestValidationFailsFast(t *testing.T) {
	bad := stochasticInputs(10, 10, 1)
	bad.Simulation.Runs = 0
	_, err := New().Run(bad)
	require.Error(t, err)

	bad = stochasticInputs(10, 10, 1)
	bad.Simulation.HorizonYears = -1
	_, err = New().Run(bad)
	require.Error(t, err)

	bad = stochasticInputs(10, 10, 1)
	bad.Specs[model.ParamStockReturn] = model.ParamSpec{Mean: 0.09, StdDev: -0.1}
	_, err = New().Run(bad)
	require.Error(t, err)

	bad = stochasticInputs(10, 10, 1)
	bad.Specs[model.ParamInflation] = model.ParamSpec{Mean: 0.02, StdDev: 0.01, Floor: ptr(0.5), Ceiling: ptr(0.1)}
	_, err = New().Run(bad)
	require.Error(t, err)
}

func TestRunRejectsMissingParameters(t *testing.T) {
	// A missing spec must fail the batch up front, never read as a zero
	// rate inside the steppers.
	for _, name := range []string{
		model.ParamPropertyTaxRate,
		model.ParamMaintenanceRate,
		model.ParamRentGrowth,
		model.ParamIncomeGrowth,
		model.ParamCOLGrowth,
	} {
		in := stochasticInputs(10, 10, 1)
		delete(in.Specs, name)

		_, err := New().Run(in)
		require.Error(t, err, "missing %s must be rejected", name)
		assert.Contains(t, err.Error(), name)
	}

	_, err := New().Run(Inputs{
		Simulation: stochasticInputs(10, 10, 1).Simulation,
		Household:  stochasticInputs(10, 10, 1).Household,
	})
	require.Error(t, err)
}

// TestHorizonOneBreakEven pins the one-year arithmetic end to end: income is
// constructed so the homeowner invests exactly nothing, growth rates are
// zero, and liquidation costs are turned off, so both final figures are
// hand-computable.
func TestHorizonOneBreakEven(t *testing.T) {
	const (
		startingCash  = 100000.0
		price         = 400000.0
		downRate      = 0.20
		rate          = 0.04
		term          = 30
		taxRate       = 0.01
		maintRate     = 0.01
		rent          = 36000.0
		costOfLiving  = 30000.0
		leftoverCash  = startingCash - price*downRate // joins the owner's first-year surplus
	)
	principal := price * (1 - downRate)
	payment := model.AnnualMortgagePayment(principal, rate, term)
	ownership := payment + price*taxRate + price*maintRate
	// Zero owner surplus: income + leftover cash covers ownership + col.
	income := ownership + costOfLiving - leftoverCash

	in := Inputs{
		Simulation: model.SimulationParams{Runs: 1, HorizonYears: 1, Seed: 1},
		Household: model.HouseholdParams{
			StartingCash:          startingCash,
			AnnualIncome:          income,
			MortgageToIncomeRatio: 0.28,
			DownPaymentRate:       downRate,
			LoanTermYears:         term,
			CapitalGainsRate:      0.15,
			SellingCostRate:       0,
		},
		Specs: map[string]model.ParamSpec{
			model.ParamInflation:       {Mean: 0},
			model.ParamStockReturn:     {Mean: 0},
			model.ParamHousingGrowth:   {Mean: 0},
			model.ParamMortgageRate:    {Mean: rate},
			model.ParamPropertyTaxRate: {Mean: taxRate},
			model.ParamMaintenanceRate: {Mean: maintRate},
			model.ParamPropertyPrice:   {Mean: price},
			model.ParamMarketRent:      {Mean: rent},
			model.ParamRentGrowth:      {Mean: 0},
			model.ParamMovingCost:      {Mean: 0},
			model.ParamMovingSavings:   {Mean: 0},
			model.ParamCostOfLiving:    {Mean: costOfLiving},
			model.ParamIncomeGrowth:    {Mean: 0},
			model.ParamCOLGrowth:       {Mean: 0},
		},
	}

	results, err := New().Run(in)
	require.NoError(t, err)
	require.Len(t, results, 1)
	r := results[0]

	// Owner: home sold at the unchanged price, no gain, no selling cost;
	// net worth is the down payment plus one year of amortized principal.
	interest := principal * rate
	principalPaid := payment - interest
	wantOwner := price*downRate + principalPaid
	assert.InDelta(t, wantOwner, r.OwnerNetWorth, 1e-6)

	// Renter: starting cash plus income, minus rent and cost of living,
	// with zero market growth and so zero capital-gains tax.
	wantRenter := startingCash + income - rent - costOfLiving
	assert.InDelta(t, wantRenter, r.RenterNetWorth, 1e-6)

	// Inflation is zero, so nominal and today's dollars agree.
	assert.InDelta(t, r.OwnerNominal, r.OwnerNetWorth, 1e-9)
}

func TestRenterInsolvencyClampsHoldingsAtZero(t *testing.T) {
	in := Inputs{
		Simulation: model.SimulationParams{Runs: 1, HorizonYears: 10, Seed: 1},
		Household: model.HouseholdParams{
			StartingCash:          0,
			AnnualIncome:          10000,
			MortgageToIncomeRatio: 0.28,
			DownPaymentRate:       0.20,
			LoanTermYears:         15,
			CapitalGainsRate:      0.15,
			SellingCostRate:       0.075,
		},
		Specs: map[string]model.ParamSpec{
			model.ParamInflation:       {Mean: 0.02},
			model.ParamStockReturn:     {Mean: 0.05},
			model.ParamHousingGrowth:   {Mean: 0.03},
			model.ParamMortgageRate:    {Mean: 0.06},
			model.ParamPropertyTaxRate: {Mean: 0.01},
			model.ParamMaintenanceRate: {Mean: 0.01},
			model.ParamPropertyPrice:   {Mean: 400000},
			model.ParamMarketRent:      {Mean: 30000},
			model.ParamRentGrowth:      {Mean: 0.05},
			model.ParamMovingCost:      {Mean: 0},
			model.ParamMovingSavings:   {Mean: 0},
			model.ParamCostOfLiving:    {Mean: 50000},
			model.ParamIncomeGrowth:    {Mean: 0},
			model.ParamCOLGrowth:       {Mean: 0},
		},
		IncludeLedger: true,
	}

	results, err := New().Run(in)
	require.NoError(t, err)
	r := results[0]

	require.Len(t, r.RenterYears, 10)
	for _, row := range r.RenterYears {
		assert.Negative(t, row.Surplus, "cost of living exceeds income every year")
		assert.GreaterOrEqual(t, row.Stocks, 0.0, "holdings must clamp at zero, year %d", row.Year)
	}
	assert.GreaterOrEqual(t, r.RenterNetWorth, 0.0)
}
