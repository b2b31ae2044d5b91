package utils

import "math"

// RoundHalfUp rounds to the nearest whole currency unit, with halves going
// up. Negative amounts never survive validation upstream.
func RoundHalfUp(amount float64) float64 {
	return math.Floor(amount + 0.5)
}

// CeilDiv divides total by n and rounds the result up to a whole currency unit.
func CeilDiv(total float64, n int) float64 {
	return math.Ceil(total / float64(n))
}

// ValidOccupancyRate reports whether rate lies in [0, 1].
func ValidOccupancyRate(rate float64) bool {
	return rate >= 0 && rate <= 1
}
