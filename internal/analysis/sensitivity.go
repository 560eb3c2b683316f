package analysis

import (
	"math"
	"sort"

	"rent-or-buy/internal/montecarlo"
)

// ParamInfluence links one sampled parameter to the buy-vs-rent outcome.
type ParamInfluence struct {
	Name string `json:"name"`

	// Correlation is the Pearson r between the parameter's sampled values
	// and the owner-minus-renter net-worth gap across runs.
	Correlation float64 `json:"correlation"`
}

// RankInfluence ranks parameters by how strongly their draws move the
// owner-renter gap, descending by absolute correlation. Parameters with no
// variance across runs (fixed or zero std_dev) are skipped.
func RankInfluence(results []montecarlo.RunResult) []ParamInfluence {
	if len(results) < 2 {
		return nil
	}

	gaps := make([]float64, len(results))
	for i, r := range results {
		gaps[i] = r.OwnerNetWorth - r.RenterNetWorth
	}

	out := make([]ParamInfluence, 0, len(results[0].Params))
	for name := range results[0].Params {
		vals := make([]float64, len(results))
		for i, r := range results {
			vals[i] = r.Params[name]
		}
		r, ok := pearson(vals, gaps)
		if !ok {
			continue
		}
		out = append(out, ParamInfluence{Name: name, Correlation: r})
	}

	sort.Slice(out, func(i, j int) bool {
		ai, aj := math.Abs(out[i].Correlation), math.Abs(out[j].Correlation)
		if ai != aj {
			return ai > aj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func pearson(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}
