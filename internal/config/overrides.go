package config

import "rent-or-buy/internal/model"

// Overrides carries interactively-supplied values that replace config
// defaults before any run begins. Nil fields keep the configured behavior.
type Overrides struct {
	AnnualIncome  *float64
	StartingCash  *float64
	MortgageRate  *float64 // annual rate, e.g. 0.0678
	PropertyPrice *float64
}

// Apply merges the overrides into the config. Mortgage rate and property
// price become fixed zero-variance specs so every run uses the exact value;
// the loan-assumption shifts are cleared for a pinned rate since the user
// has told us what they actually got.
func (o Overrides) Apply(c *Config) {
	if o.AnnualIncome != nil {
		c.Household.AnnualIncome = *o.AnnualIncome
	}
	if o.StartingCash != nil {
		c.Household.StartingCash = *o.StartingCash
	}
	if o.MortgageRate != nil {
		c.Parameters[model.ParamMortgageRate] = model.ParamSpec{Mean: *o.MortgageRate}
		c.Household.AssumeGoodLoan = false
		c.Household.AssumeGreatLoan = false
	}
	if o.PropertyPrice != nil {
		c.Parameters[model.ParamPropertyPrice] = model.ParamSpec{Mean: *o.PropertyPrice}
	}
}
