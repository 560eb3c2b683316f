package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyMortgagePayment(t *testing.T) {
	// Textbook case: $320,000 at 6% over 30 years is $1,918.56/month.
	got := MonthlyMortgagePayment(320000, 0.06, 30)
	assert.InDelta(t, 1918.56, got, 0.01)

	// $100,000 at 4.5% over 15 years is $764.99/month.
	got = MonthlyMortgagePayment(100000, 0.045, 15)
	assert.InDelta(t, 764.99, got, 0.01)
}

func TestMortgagePaymentZeroRate(t *testing.T) {
	// Interest-free principal split evenly over the term.
	assert.InDelta(t, 1000, MonthlyMortgagePayment(120000, 0, 10), 1e-9)
	assert.InDelta(t, 12000, AnnualMortgagePayment(120000, 0, 10), 1e-9)
}

func TestMortgagePaymentZeroPrincipal(t *testing.T) {
	assert.Equal(t, 0.0, MonthlyMortgagePayment(0, 0.06, 30))
}

func TestAnnualIsTwelveMonthly(t *testing.T) {
	m := MonthlyMortgagePayment(500000, 0.065, 15)
	assert.InDelta(t, m*12, AnnualMortgagePayment(500000, 0.065, 15), 1e-9)
}
