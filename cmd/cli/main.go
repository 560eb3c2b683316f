package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"rent-or-buy/internal/analysis"
	"rent-or-buy/internal/config"
	"rent-or-buy/internal/montecarlo"
	"rent-or-buy/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "sensitivity":
		cmdSensitivity(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml [--runs N] [--seed S] [--interactive] [--out results/runs.csv] [--ledger-out results/run0.csv]")
	fmt.Println("  cli sensitivity --config examples/config.yaml [--runs N]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate prints homeowner-vs-renter net-worth statistics in today's dollars")
	fmt.Println("  - sensitivity ranks sampled parameters by their pull on the owner-renter gap")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (empty = built-in defaults)")
	runs := fs.Int("runs", 0, "Optional: override number of runs")
	seed := fs.Int64("seed", 0, "Optional: override random seed")
	interactive := fs.Bool("interactive", false, "Interactively enter income, net worth, mortgage rate and property price")
	outPath := fs.String("out", "", "Optional: per-run results CSV path")
	ledgerPath := fs.String("ledger-out", "", "Optional: year-by-year ledger CSV for the first run")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	if *runs > 0 {
		cfg.Simulation.Runs = *runs
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *interactive {
		promptOverrides().Apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	engine := montecarlo.New()
	results, err := engine.Run(montecarlo.Inputs{
		Simulation:    cfg.Simulation.ToModel(),
		Household:     cfg.Household.ToModel(),
		Specs:         cfg.Parameters,
		IncludeLedger: *ledgerPath != "",
	})
	if err != nil {
		panic(err)
	}

	summary := analysis.Summarize(results, cfg.Simulation.HorizonYears)
	printSummary(summary)

	fmt.Println("\nParameter influence on the owner-renter gap:")
	printInfluence(analysis.RankInfluence(results))

	if *outPath != "" {
		if err := montecarlo.WriteResultsCSV(*outPath, results); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(results), *outPath)
	}
	if *ledgerPath != "" {
		rows := append([]scenario.YearRow{}, results[0].OwnerYears...)
		rows = append(rows, results[0].RenterYears...)
		if err := montecarlo.WriteLedgerCSV(*ledgerPath, rows); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote run 0 ledger to %s\n", *ledgerPath)
	}
}

func cmdSensitivity(args []string) {
	fs := flag.NewFlagSet("sensitivity", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (empty = built-in defaults)")
	runs := fs.Int("runs", 0, "Optional: override number of runs")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	if *runs > 0 {
		cfg.Simulation.Runs = *runs
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	results, err := montecarlo.New().Run(montecarlo.Inputs{
		Simulation: cfg.Simulation.ToModel(),
		Household:  cfg.Household.ToModel(),
		Specs:      cfg.Parameters,
	})
	if err != nil {
		panic(err)
	}

	printInfluence(analysis.RankInfluence(results))
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func printSummary(s analysis.Summary) {
	fmt.Printf("Results across %d simulations extended %d years into the future:\n", s.Runs, s.HorizonYears)
	fmt.Printf("Owning beats renting (in net worth) in %.2f%% of simulations\n", s.OwnerWinRate*100)
	fmt.Println("")
	fmt.Printf("%-10s %-16s %-16s\n", "", "homeowner", "renter")
	row := func(label string, o, r float64) {
		fmt.Printf("%-10s %-16s %-16s\n", label, fmtDollars(o), fmtDollars(r))
	}
	row("mean", s.Owner.Mean, s.Renter.Mean)
	row("std dev", s.Owner.StdDev, s.Renter.StdDev)
	row("p05", s.Owner.P05, s.Renter.P05)
	row("p25", s.Owner.P25, s.Renter.P25)
	row("median", s.Owner.P50, s.Renter.P50)
	row("p75", s.Owner.P75, s.Renter.P75)
	row("p95", s.Owner.P95, s.Renter.P95)
	row("min", s.Owner.Min, s.Renter.Min)
	row("max", s.Owner.Max, s.Renter.Max)
}

func printInfluence(influence []analysis.ParamInfluence) {
	fmt.Printf("%-4s %-22s %-12s\n", "rank", "parameter", "correlation")
	for i, p := range influence {
		fmt.Printf("%-4d %-22s %+.3f\n", i+1, p.Name, p.Correlation)
	}
}

// promptOverrides reads optional interactive values; empty answers keep the
// simulated defaults.
func promptOverrides() config.Overrides {
	fmt.Println("Running interactive mode. Leave any answer blank to use simulated defaults.")
	r := bufio.NewReader(os.Stdin)

	o := config.Overrides{}
	o.AnnualIncome = promptFloat(r, "What is your annual gross income? E.g. 123456.78")
	o.StartingCash = promptFloat(r, "What is your net worth?")
	if rate := promptFloat(r, "What is your mortgage rate percentage? E.g. 6.78"); rate != nil {
		v := *rate / 100.0
		o.MortgageRate = &v
	}
	o.PropertyPrice = promptFloat(r, "What is your home's purchase price?")
	return o
}

func promptFloat(r *bufio.Reader, question string) *float64 {
	fmt.Println(question)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return nil
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Printf("could not parse %q, using simulated default\n", line)
		return nil
	}
	return &v
}

func fmtDollars(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	// insert thousands separators into the integer part
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := "$" + b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
