package model

import (
	"errors"
	"fmt"
)

// Recognized stochastic parameter names. Values are annual rates unless
// noted otherwise; dollar-valued parameters are annual amounts.
const (
	ParamInflation       = "inflation"
	ParamStockReturn     = "stock_return"
	ParamHousingGrowth   = "housing_growth"
	ParamMortgageRate    = "mortgage_rate"
	ParamPropertyTaxRate = "property_tax_rate"
	ParamMaintenanceRate = "maintenance_rate"
	ParamPropertyPrice   = "property_price" // $
	ParamMarketRent      = "market_rent"    // $/year, market rate for a fresh lease
	ParamRentGrowth      = "rent_growth"    // landlord escalation on a held lease
	ParamMovingCost      = "moving_cost"    // $/year, amortized
	ParamMovingSavings   = "moving_savings" // $/year, amortized concessions
	ParamCostOfLiving    = "cost_of_living" // $/year, non-housing
	ParamIncomeGrowth    = "income_growth"
	ParamCOLGrowth       = "col_growth"
)

// RequiredParams lists every parameter the simulation reads. Validation
// fails fast when one is missing, so a run never sees a silent zero rate.
func RequiredParams() []string {
	return []string{
		ParamInflation,
		ParamStockReturn,
		ParamHousingGrowth,
		ParamMortgageRate,
		ParamPropertyTaxRate,
		ParamMaintenanceRate,
		ParamPropertyPrice,
		ParamMarketRent,
		ParamRentGrowth,
		ParamMovingCost,
		ParamMovingSavings,
		ParamCostOfLiving,
		ParamIncomeGrowth,
		ParamCOLGrowth,
	}
}

// ParamSpec describes one parameter's distribution: a normal draw with
// optional clamp bounds, or a value derived from another parameter plus a
// fixed spread (e.g. income_growth = inflation + 0.01).
type ParamSpec struct {
	Mean    float64  `yaml:"mean" json:"mean"`
	StdDev  float64  `yaml:"std_dev" json:"std_dev"`
	Floor   *float64 `yaml:"floor,omitempty" json:"floor,omitempty"`
	Ceiling *float64 `yaml:"ceiling,omitempty" json:"ceiling,omitempty"`

	// DeriveFrom names another (non-derived) parameter. When set, the value
	// is that parameter's sampled value plus Spread; Mean/StdDev are unused.
	DeriveFrom string  `yaml:"derive_from,omitempty" json:"derive_from,omitempty"`
	Spread     float64 `yaml:"spread,omitempty" json:"spread,omitempty"`
}

func (s ParamSpec) Validate(name string) error {
	if s.DeriveFrom != "" {
		if s.DeriveFrom == name {
			return fmt.Errorf("parameter %q derives from itself", name)
		}
		if s.StdDev != 0 {
			return fmt.Errorf("parameter %q: derived parameters must not set std_dev", name)
		}
		return nil
	}
	if s.StdDev < 0 {
		return fmt.Errorf("parameter %q: std_dev must be >= 0", name)
	}
	if s.Floor != nil && s.Ceiling != nil && *s.Floor > *s.Ceiling {
		return fmt.Errorf("parameter %q: floor %v > ceiling %v", name, *s.Floor, *s.Ceiling)
	}
	return nil
}

// Clamp applies the spec's bounds to a drawn value. Out-of-range draws are
// clamped, never rejected or resampled.
func (s ParamSpec) Clamp(v float64) float64 {
	if s.Floor != nil && v < *s.Floor {
		v = *s.Floor
	}
	if s.Ceiling != nil && v > *s.Ceiling {
		v = *s.Ceiling
	}
	return v
}

// SampledParams holds one concrete draw of every parameter for a single run.
// Both scenarios of the run read the same instance, so the homeowner and
// renter always experience the identical macro environment.
type SampledParams map[string]float64

func (p SampledParams) Get(name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, errors.New("missing sampled parameter: " + name)
	}
	return v, nil
}
