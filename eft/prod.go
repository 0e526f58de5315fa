package eft

import (
	"math"

	"golang.org/x/exp/constraints"
)

// splitParams returns the Veltkamp splitter 2^s+1 (s = ceil(p/2)), the
// magnitude above which splitter*a may overflow, and the pair of powers of
// two used to scale such inputs out of and back into range.
func splitParams[F constraints.Float]() (splitter, thresh, down, up F) {
	if is32[F]() {
		return 4097, F(math.Ldexp(1, 115)), 1.0 / 8192, 8192
	}
	return 134217729, F(math.Ldexp(1, 996)), 1.0 / 268435456, 268435456
}

// Split breaks a into hi and lo such that hi+lo == a and neither half needs
// more than half of F's mantissa bits, so products of halves are exact.
//
// Inputs close to the overflow boundary are scaled down before splitting and
// the halves scaled back up, otherwise splitter*a would overflow. Values
// within half a 26-bit ulp of math.MaxFloat64 still round their high half up
// to +/-Inf.
func Split[F constraints.Float](a F) (hi, lo F) {
	splitter, thresh, down, up := splitParams[F]()
	if a > thresh || a < -thresh {
		a *= down
		// Explicit conversions force the rounding of each product; a fused
		// multiply-subtract here would break the split.
		t := F(splitter * a)
		hi = t - (t - a)
		lo = a - hi
		return hi * up, lo * up
	}
	t := F(splitter * a)
	hi = t - (t - a)
	lo = a - hi
	return hi, lo
}

// TwoProd returns p = fl(a*b) and e such that p+e == a*b, barring underflow
// of e. A fused multiply-add is used when FMAEnabled reports true, otherwise
// the product is rebuilt from two Splits.
func TwoProd[F constraints.Float](a, b F) (p, e F) {
	p = F(a * b)
	if is32[F]() {
		// The float64 product of two float32 values is exact.
		return p, F(float64(a)*float64(b) - float64(p))
	}
	if useFMA {
		return p, F(math.FMA(float64(a), float64(b), -float64(p)))
	}
	return p, dekkerErr(a, b, p)
}

// TwoProdDekker is TwoProd without the fused multiply-add path.
func TwoProdDekker[F constraints.Float](a, b F) (p, e F) {
	p = F(a * b)
	return p, dekkerErr(a, b, p)
}

func dekkerErr[F constraints.Float](a, b, p F) F {
	ahi, alo := Split(a)
	bhi, blo := Split(b)
	return ((ahi*bhi - p) + ahi*blo + alo*bhi) + alo*blo
}

// TwoSquare returns q = fl(a*a) and e such that q+e == a*a. It is the
// self-product form of TwoProd and needs a single Split.
func TwoSquare[F constraints.Float](a F) (q, e F) {
	q = F(a * a)
	if is32[F]() {
		return q, F(float64(a)*float64(a) - float64(q))
	}
	if useFMA {
		return q, F(math.FMA(float64(a), float64(a), -float64(q)))
	}
	hi, lo := Split(a)
	return q, ((hi*hi - q) + 2.0*hi*lo) + lo*lo
}
