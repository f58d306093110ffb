package utils

import (
	"math"
)

// RoundHalfUp rounds to the nearest integer with halves going toward +Inf,
// so 2.5 becomes 3 and -2.5 becomes -2
func RoundHalfUp(value float64) float64 {
	return math.Floor(value + 0.5)
}

// Clamp limits a value between min and max
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
