package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Abs32 returns the absolute value of x without a branch.
func Abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

// Floor is a fast floor for the noise kernels. It is exact for the
// coordinate magnitudes the kernels see; do not use it as a general
// replacement for math.Floor.
func Floor(x float64) int {
	if x > 0 {
		return int(x)
	}
	return int(x) - 1
}

// Clamp constrains v to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}
