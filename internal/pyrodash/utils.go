package pyrodash

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// linspace returns n evenly spaced values from a to b, endpoints included.
func linspace(a, b Real, n int) []Real {
	out := make([]Real, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / Real(n-1)
	for i := range out {
		out[i] = a + Real(i)*step
	}
	out[n-1] = b
	return out
}
