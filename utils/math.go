package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Normalize maps v from [lo, hi] onto [0, 1]. A degenerate range maps everything to 0.5.
func Normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return Clamp((v-lo)/(hi-lo), 0, 1)
}
