package main

import (
	"flag"
	"fmt"

	"rent-or-buy/internal/analysis"
	"rent-or-buy/internal/config"
	"rent-or-buy/internal/montecarlo"
	"rent-or-buy/internal/scenario"
)

// Demo:
// - Run a small batch with the built-in default config
// - Print the summary statistics
// - Walk through the first run's year-by-year ledger to show how the two
//   trajectories evolve under one shared parameter draw
func main() {
	runs := flag.Int("runs", 200, "Number of Monte Carlo runs")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	cfg := config.Default()
	cfg.Simulation.Runs = *runs
	cfg.Simulation.Seed = *seed

	results, err := montecarlo.New().Run(montecarlo.Inputs{
		Simulation:    cfg.Simulation.ToModel(),
		Household:     cfg.Household.ToModel(),
		Specs:         cfg.Parameters,
		IncludeLedger: true,
	})
	if err != nil {
		panic(err)
	}

	s := analysis.Summarize(results, cfg.Simulation.HorizonYears)
	fmt.Printf("%d runs, %d-year horizon\n", s.Runs, s.HorizonYears)
	fmt.Printf("owner mean net worth (today's $): %.0f\n", s.Owner.Mean)
	fmt.Printf("renter mean net worth (today's $): %.0f\n", s.Renter.Mean)
	fmt.Printf("owner win rate: %.1f%%\n\n", s.OwnerWinRate*100)

	first := results[0]
	fmt.Printf("run 0 parameter draw:\n")
	fmt.Printf("  mortgage rate %.4f, housing growth %.4f, stock return %.4f, inflation %.4f\n\n",
		first.Params["mortgage_rate"],
		first.Params["housing_growth"],
		first.Params["stock_return"],
		first.Params["inflation"],
	)

	printLedger("homeowner", first.OwnerYears)
	printLedger("renter", first.RenterYears)

	fmt.Printf("run 0 liquidated: owner %.0f, renter %.0f (today's $)\n",
		first.OwnerNetWorth, first.RenterNetWorth)
}

func printLedger(name string, rows []scenario.YearRow) {
	fmt.Printf("%s:\n", name)
	fmt.Printf("  %-5s %-12s %-12s %-10s %-12s %-12s\n", "year", "housing", "surplus", "action", "equity", "stocks")
	for _, r := range rows {
		fmt.Printf("  %-5d %-12.0f %-12.0f %-10s %-12.0f %-12.0f\n",
			r.Year, r.HousingCost, r.Surplus, r.Action, r.Equity, r.Stocks)
	}
	fmt.Println("")
}
