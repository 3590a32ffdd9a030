package stats

import "math"

// PercentileBelow returns the percentage (0-100) of values strictly less
// than x. An empty input yields 0.
func PercentileBelow(values []int, x int) float64 {
	if len(values) == 0 {
		return 0
	}
	below := 0
	for _, v := range values {
		if v < x {
			below++
		}
	}
	return float64(below) / float64(len(values)) * 100.0
}

// Round2 rounds to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
