package pixfilter

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Min returns the smallest of the given values.
func Min[T constraints.Ordered](first T, rest ...T) T {
	acc := first

	for _, v := range rest {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest of the given values.
func Max[T constraints.Ordered](first T, rest ...T) T {
	acc := first

	for _, v := range rest {
		if v > acc {
			acc = v
		}
	}
	return acc
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}

// average returns the rounded mean of the three color channels starting at offset i.
func average(pix []uint8, i int) int {
	sum := int(pix[i]) + int(pix[i+1]) + int(pix[i+2])
	return int(math.Round(float64(sum) / 3))
}

// toByte stores a float channel value the way a clamped byte array does:
// rounded half to even, then saturated to [0, 255].
func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(Clamp(math.RoundToEven(v), 0, 255))
}
