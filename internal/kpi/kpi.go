// Package kpi computes the operational metrics served by the analytics
// endpoints. Functions here are pure: they take counts, sums and averages
// already aggregated by the store and shape them into response values.
//
// Every percentage is num/den*100 rounded to two decimals, and is 0 when the
// denominator is not positive.
package kpi

import (
	"math"
	"strconv"
)

// Round2 rounds x half-to-even on its exact binary value, the same way
// decimal formatting to two places does.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return 0
	}
	return r
}

// Ratio returns num/den as a percentage rounded to two decimals.
func Ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return Round2(num / den * 100)
}

// Rate is Ratio over counts.
func Rate(num, den int) float64 {
	return Ratio(float64(num), float64(den))
}

// Margin is (revenue-cost)/revenue as a percentage, 0 without revenue.
func Margin(revenue, cost float64) float64 {
	return Ratio(revenue-cost, revenue)
}
