package model

import "math"

const monthsPerYear = 12

// MonthlyMortgagePayment returns the fixed monthly principal-and-interest
// payment for a standard amortizing loan:
//
//	m = p(i(1+i)^n) / ((1+i)^n - 1)
//
// where i is the monthly rate and n the total number of payments.
func MonthlyMortgagePayment(principal, annualRate float64, termYears int) float64 {
	n := float64(termYears * monthsPerYear)
	if annualRate == 0 {
		return principal / n
	}
	i := annualRate / monthsPerYear
	pow := math.Pow(1+i, n)
	return principal * (i * pow) / (pow - 1)
}

// AnnualMortgagePayment is the yearly sum of monthly payments.
func AnnualMortgagePayment(principal, annualRate float64, termYears int) float64 {
	return MonthlyMortgagePayment(principal, annualRate, termYears) * monthsPerYear
}
