package utils

import (
	"math"
)

// Round rounds half away from negative infinity, so -2.5 becomes -2.
// This matches the rounding every monetary figure in the app is shown with.
func Round(value float64) float64 {
	return math.Floor(value + 0.5)
}

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return Round(value*factor) / factor
}

// Clamp limits value to the closed range [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(value, hi))
}

// Lerp performs linear interpolation between two values
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Growth returns the compound factor (1+ratePct/100)^periods
func Growth(ratePct float64, periods int) float64 {
	return math.Pow(1+ratePct/100, float64(periods))
}
