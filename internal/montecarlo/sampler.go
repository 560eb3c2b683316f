package montecarlo

import (
	"fmt"
	"math/rand"
	"sort"

	"rent-or-buy/internal/model"
)

// Sampler draws one SampledParams instance per run. It keeps no state across
// runs beyond the random source it was given.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Draw produces one clamped normal draw for a non-derived spec.
func (s *Sampler) Draw(spec model.ParamSpec) float64 {
	v := s.rng.NormFloat64()*spec.StdDev + spec.Mean
	return spec.Clamp(v)
}

// SampleAll resolves every configured parameter for one run. Base
// parameters are drawn first, in sorted name order so a fixed seed always
// consumes the random source identically; derived parameters resolve
// afterwards, iterating until the dependency order settles.
func (s *Sampler) SampleAll(specs map[string]model.ParamSpec, hh model.HouseholdParams) (model.SampledParams, error) {
	params := make(model.SampledParams, len(specs))

	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	pending := make(map[string]model.ParamSpec)
	for _, name := range names {
		spec := specs[name]
		if spec.DeriveFrom != "" {
			pending[name] = spec
			continue
		}
		params[name] = s.Draw(shiftMean(name, spec, hh))
	}

	for len(pending) > 0 {
		progressed := false
		for name, spec := range pending {
			base, ok := params[spec.DeriveFrom]
			if !ok {
				continue
			}
			params[name] = spec.Clamp(base + spec.Spread)
			delete(pending, name)
			progressed = true
		}
		if !progressed {
			for name, spec := range pending {
				return nil, fmt.Errorf("parameter %q derives from unresolvable %q", name, spec.DeriveFrom)
			}
		}
	}

	return params, nil
}

// shiftMean applies the household's loan/housing-growth assumptions: good
// moves the mean one standard deviation in the favorable direction, great
// moves it two.
func shiftMean(name string, spec model.ParamSpec, hh model.HouseholdParams) model.ParamSpec {
	switch name {
	case model.ParamMortgageRate:
		if hh.AssumeGreatLoan {
			spec.Mean -= 2 * spec.StdDev
		} else if hh.AssumeGoodLoan {
			spec.Mean -= spec.StdDev
		}
	case model.ParamHousingGrowth:
		if hh.AssumeGreatHousingGrowth {
			spec.Mean += 2 * spec.StdDev
		} else if hh.AssumeGoodHousingGrowth {
			spec.Mean += spec.StdDev
		}
	}
	return spec
}
