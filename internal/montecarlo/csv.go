package montecarlo

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"

	"rent-or-buy/internal/scenario"
)

// WriteResultsCSV writes one row per run: both net worths (today's dollars
// and nominal) followed by every sampled parameter, columns sorted by name.
func WriteResultsCSV(path string, results []RunResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	paramNames := []string{}
	if len(results) > 0 {
		for name := range results[0].Params {
			paramNames = append(paramNames, name)
		}
		sort.Strings(paramNames)
	}

	header := []string{
		"run",
		"owner_net_worth",
		"renter_net_worth",
		"owner_nominal",
		"renter_nominal",
		"annual_income",
	}
	header = append(header, paramNames...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Run),
			fmtFloat(r.OwnerNetWorth),
			fmtFloat(r.RenterNetWorth),
			fmtFloat(r.OwnerNominal),
			fmtFloat(r.RenterNominal),
			fmtFloat(r.AnnualIncome),
		}
		for _, name := range paramNames {
			row = append(row, fmtFloat(r.Params[name]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WriteLedgerCSV writes per-year rows for one or both scenarios of a run.
func WriteLedgerCSV(path string, rows []scenario.YearRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"scenario",
		"income",
		"housing_cost",
		"cost_of_living",
		"surplus",
		"action",
		"home_value",
		"mortgage_principal",
		"equity",
		"rent",
		"stocks",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Year),
			r.Scenario,
			fmtFloat(r.Income),
			fmtFloat(r.HousingCost),
			fmtFloat(r.CostOfLiving),
			fmtFloat(r.Surplus),
			string(r.Action),
			fmtFloat(r.HomeValue),
			fmtFloat(r.Principal),
			fmtFloat(r.Equity),
			fmtFloat(r.Rent),
			fmtFloat(r.Stocks),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
