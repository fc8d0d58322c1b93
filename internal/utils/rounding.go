package utils

import "math"

// RoundToInt rounds to the nearest integer, halves away from zero.
func RoundToInt(v float64) int {
	return int(math.Round(v))
}

// Round2 rounds to two decimal places. Used for per-route CO2 figures.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ClampInt limits v to the inclusive range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
