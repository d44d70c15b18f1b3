package engine

import "math"

// SIPFutureValue is the annuity-due future value of a monthly investment
// compounded monthly at annualCAGR percent over the given number of months.
func SIPFutureValue(monthly, annualCAGR float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	r := annualCAGR / 12 / 100
	if r == 0 {
		return monthly * float64(months)
	}
	return monthly * ((math.Pow(1+r, float64(months)) - 1) / r) * (1 + r)
}
