package vmath

// Clamp limits v to [lo, hi], lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Lerp performs linear interpolation between a and b, t in [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
