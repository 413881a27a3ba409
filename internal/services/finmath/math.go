// Package finmath provides the small numeric helpers shared by the analysis engines.
// All functions are pure and never return NaN or Inf for zero denominators.
package finmath

// Ratio returns numerator/denominator*scale when denominator > 0 and numerator != 0, else 0
func Ratio(numerator, denominator, scale float64) float64 {
	if denominator <= 0 || numerator == 0 {
		return 0
	}
	return numerator / denominator * scale
}

// SafeDiv returns numerator/denominator when denominator > 0, else 0
func SafeDiv(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

// Mean calculates the arithmetic mean
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// ClampFloat64 constrains a value to a range
func ClampFloat64(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// PositiveGrowthRates returns the year-over-year growth fractions of a series,
// skipping transitions where either endpoint is not strictly positive
func PositiveGrowthRates(values []float64) []float64 {
	rates := []float64{}
	for i := 1; i < len(values); i++ {
		prev, curr := values[i-1], values[i]
		if prev > 0 && curr > 0 {
			rates = append(rates, curr/prev-1)
		}
	}
	return rates
}

// AllPositive reports whether every value is strictly positive
func AllPositive(values []float64) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if v <= 0 {
			return false
		}
	}
	return true
}

// StrictlyIncreasing reports whether each value exceeds the previous one multiplied by factor.
// A factor of 1 is a plain strictly increasing check.
func StrictlyIncreasing(values []float64, factor float64) bool {
	if len(values) < 2 {
		return false
	}
	for i := 1; i < len(values); i++ {
		if !(values[i] > values[i-1]*factor) {
			return false
		}
	}
	return true
}

// StrictlyDecreasing reports whether each value is below the previous one
func StrictlyDecreasing(values []float64) bool {
	if len(values) < 2 {
		return false
	}
	for i := 1; i < len(values); i++ {
		if !(values[i] < values[i-1]) {
			return false
		}
	}
	return true
}

// Tail returns the last n values, or all of them when fewer exist
func Tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}
