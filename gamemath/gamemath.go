package gamemath

import "math"

// fallback direction used when a zero-length vector has to be normalized.
const fallbackX, fallbackY = 1.0, 0.0

// Length returns the magnitude of (x, y).
func Length(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Normalize returns the unit vector of (x, y). A degenerate input falls back
// to a fixed unit vector instead of propagating NaN.
func Normalize(x, y float64) (float64, float64) {
	d := math.Hypot(x, y)
	if d == 0 {
		return fallbackX, fallbackY
	}
	return x / d, y / d
}

// Rescale returns (x, y) scaled to the given magnitude, keeping its direction.
// Degenerate directions use the Normalize fallback.
func Rescale(x, y, magnitude float64) (float64, float64) {
	nx, ny := Normalize(x, y)
	return nx * magnitude, ny * magnitude
}

// Clamp constrains value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
