package analysis

import (
	"math"
	"sort"

	"rent-or-buy/internal/montecarlo"
)

// Stats describes one scenario's net-worth distribution across runs.
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P05    float64 `json:"p05"`
	P25    float64 `json:"p25"`
	P50    float64 `json:"p50"`
	P75    float64 `json:"p75"`
	P95    float64 `json:"p95"`
}

// Summary is the aggregate over a full batch of runs. It is an associative
// reduction: run order does not matter.
type Summary struct {
	Runs         int   `json:"runs"`
	HorizonYears int   `json:"horizon_years"`
	Owner        Stats `json:"owner"`
	Renter       Stats `json:"renter"`

	// OwnerWinRate is the fraction of runs where the homeowner ends with
	// the higher net worth.
	OwnerWinRate float64 `json:"owner_win_rate"`
}

// Summarize reduces the batch to summary statistics over today's-dollar
// net worths.
func Summarize(results []montecarlo.RunResult, horizonYears int) Summary {
	s := Summary{
		Runs:         len(results),
		HorizonYears: horizonYears,
	}
	if len(results) == 0 {
		return s
	}

	owner := make([]float64, 0, len(results))
	renter := make([]float64, 0, len(results))
	wins := 0
	for _, r := range results {
		owner = append(owner, r.OwnerNetWorth)
		renter = append(renter, r.RenterNetWorth)
		if r.OwnerNetWorth > r.RenterNetWorth {
			wins++
		}
	}
	s.Owner = computeStats(owner)
	s.Renter = computeStats(renter)
	s.OwnerWinRate = float64(wins) / float64(len(results))
	return s
}

func computeStats(vals []float64) Stats {
	st := Stats{}
	if len(vals) == 0 {
		return st
	}

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	for _, v := range vals {
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	mean := sum / float64(len(vals))

	varSum := 0.0
	for _, v := range vals {
		d := v - mean
		varSum += d * d
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	st.Mean = mean
	st.StdDev = math.Sqrt(varSum / float64(len(vals)))
	st.Min = minv
	st.Max = maxv
	st.P05 = percentileSorted(sorted, 0.05)
	st.P25 = percentileSorted(sorted, 0.25)
	st.P50 = percentileSorted(sorted, 0.50)
	st.P75 = percentileSorted(sorted, 0.75)
	st.P95 = percentileSorted(sorted, 0.95)
	return st
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
