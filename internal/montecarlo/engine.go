package montecarlo

import (
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"rent-or-buy/internal/model"
	"rent-or-buy/internal/scenario"
)

// Inputs is everything the engine needs for a batch of runs. The caller
// (config loader or API handler) validates it before any run starts.
type Inputs struct {
	Simulation model.SimulationParams
	Household  model.HouseholdParams
	Specs      map[string]model.ParamSpec

	// IncludeLedger keeps per-year rows on every RunResult.
	IncludeLedger bool
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes the full batch. Each run gets its own random source derived
// from the base seed, so results are bit-identical regardless of
// parallelism and no locks are needed between runs.
func (e *Engine) Run(in Inputs) ([]RunResult, error) {
	if err := in.Simulation.Validate(); err != nil {
		return nil, err
	}
	if err := in.Household.Validate(); err != nil {
		return nil, err
	}
	for _, name := range model.RequiredParams() {
		if _, ok := in.Specs[name]; !ok {
			return nil, fmt.Errorf("required parameter %q is not configured", name)
		}
	}
	for name, spec := range in.Specs {
		if err := spec.Validate(name); err != nil {
			return nil, err
		}
	}

	results := make([]RunResult, in.Simulation.Runs)

	workers := in.Simulation.Parallelism
	if workers < 1 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range results {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(in.Simulation.Seed + int64(i)))
			res, err := e.runOne(i, rng, in)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runOne samples one shared parameter set and drives both trajectories
// through it.
func (e *Engine) runOne(run int, rng *rand.Rand, in Inputs) (RunResult, error) {
	params, err := NewSampler(rng).SampleAll(in.Specs, in.Household)
	if err != nil {
		return RunResult{}, err
	}

	income := in.Household.AnnualIncome
	if income == 0 {
		// Derive income from the payment the sampled mortgage implies.
		price, err := params.Get(model.ParamPropertyPrice)
		if err != nil {
			return RunResult{}, err
		}
		rate, err := params.Get(model.ParamMortgageRate)
		if err != nil {
			return RunResult{}, err
		}
		principal := price * (1 - in.Household.DownPaymentRate)
		payment := model.AnnualMortgagePayment(principal, rate, in.Household.LoanTermYears)
		income = payment / in.Household.MortgageToIncomeRatio
	}
	owner := scenario.NewOwner(in.Household, params, income)
	renter := scenario.NewRenter(in.Household, params, income)

	horizon := in.Simulation.HorizonYears
	ownerNominal := Simulate(owner, horizon)
	renterNominal := Simulate(renter, horizon)

	// Convert to today's dollars: the run's inflation draw is constant, so
	// the deflator is a single compounded factor.
	inflation, err := params.Get(model.ParamInflation)
	if err != nil {
		return RunResult{}, err
	}
	deflator := math.Pow(1+inflation, float64(horizon))

	res := RunResult{
		Run:            run,
		OwnerNetWorth:  ownerNominal / deflator,
		RenterNetWorth: renterNominal / deflator,
		OwnerNominal:   ownerNominal,
		RenterNominal:  renterNominal,
		AnnualIncome:   income,
		Params:         params,
	}
	if in.IncludeLedger {
		res.OwnerYears = owner.Ledger()
		res.RenterYears = renter.Ledger()
	}
	return res, nil
}
