package xfloat

import (
	"math"
)

const (
	expMask  = 0x7FF
	expShift = 64 - 11 - 1
	expBias  = 1023

	// 2^53: every float64 at or above this magnitude is an even integer.
	twoPow53 = 1 << 53
	twoPow63 = 1 << 63
)

// nonFinite reports whether x is NaN or an infinity. Inf-Inf and NaN-NaN are
// both NaN, so x-x is zero only for finite x.
func nonFinite(x float64) bool { return x-x != 0 }

// ilogb returns the unbiased binary exponent of a finite, non-zero x. It
// reads the exponent field directly and only handles normal values; callers
// pass leading components, which are never subnormal in the ranges where
// this is used.
func ilogb(x float64) int {
	return int((math.Float64bits(x)>>expShift)&expMask) - expBias
}

// isOddInt reports whether x is an odd integer.
func isOddInt(x float64) bool {
	if math.Abs(x) >= twoPow53 {
		return false
	}
	return math.Mod(x, 2) != 0 && x == math.Trunc(x)
}

// roundTies rounds x to an integer. Exact halves go towards +Inf when up is
// set and towards -Inf otherwise.
func roundTies(x float64, up bool) float64 {
	r := math.Floor(x)
	switch f := x - r; {
	case f > 0.5:
		r++
	case f == 0.5 && up:
		r++
	}
	return r
}

// roundTiesEven rounds x to an integer r such that base+r is the nearest
// integer to base+x, with exact halves resolved so that base+r is even. base
// must itself be an integer.
func roundTiesEven(x, base float64) float64 {
	r := math.Floor(x)
	switch f := x - r; {
	case f > 0.5:
		r++
	case f == 0.5:
		if isOddInt(base) != isOddInt(r) {
			r++
		}
	}
	return r
}

// halfway reports whether the rounded integer r sits exactly half a unit away
// from x.
func halfway(r, x float64) bool {
	return math.Abs(r-x) == 0.5
}
