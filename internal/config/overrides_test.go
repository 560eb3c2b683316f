package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rent-or-buy/internal/model"
)

func TestOverridesApply(t *testing.T) {
	c := Default()
	c.Household.AssumeGoodLoan = true
	c.Household.AssumeGreatLoan = true

	o := Overrides{
		AnnualIncome:  ptr(180000),
		StartingCash:  ptr(90000),
		MortgageRate:  ptr(0.0525),
		PropertyPrice: ptr(650000),
	}
	o.Apply(c)

	assert.Equal(t, 180000.0, c.Household.AnnualIncome)
	assert.Equal(t, 90000.0, c.Household.StartingCash)

	// A pinned rate is a zero-variance spec, and the loan assumptions no
	// longer apply to it.
	rate := c.Parameters[model.ParamMortgageRate]
	assert.Equal(t, 0.0525, rate.Mean)
	assert.Equal(t, 0.0, rate.StdDev)
	assert.False(t, c.Household.AssumeGoodLoan)
	assert.False(t, c.Household.AssumeGreatLoan)

	price := c.Parameters[model.ParamPropertyPrice]
	assert.Equal(t, 650000.0, price.Mean)
	assert.Equal(t, 0.0, price.StdDev)

	assert.NoError(t, c.Validate())
}

func TestOverridesNilFieldsLeaveConfigAlone(t *testing.T) {
	c := Default()
	before := c.Parameters[model.ParamMortgageRate]

	Overrides{}.Apply(c)

	assert.Equal(t, before, c.Parameters[model.ParamMortgageRate])
	assert.Equal(t, Default().Household.StartingCash, c.Household.StartingCash)
}
