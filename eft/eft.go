/*
Package eft provides error-free transformations of native floating-point
values: operations that return the rounded result of a sum or product together
with the exact rounding error, so that result+error equals the mathematically
exact value.

They are the building blocks of double-double and quad-double arithmetic and
are generic over float32 and float64:

	s, e := eft.TwoSum(a, b)    // s+e == a+b exactly
	p, e := eft.TwoProd(a, b)   // p+e == a*b exactly

None of these functions fail. Non-finite inputs produce non-finite outputs,
and the error term is meaningless once the rounded result has overflowed.
*/
package eft

import (
	"golang.org/x/exp/constraints"
)

// is32 reports whether F carries a 24-bit mantissa. 1+2^-30 rounds to 1 in
// float32 but not in float64.
func is32[F constraints.Float]() bool {
	one := F(1)
	return one+F(1.0/(1<<30)) == one
}

// MantissaBits returns the precision p of F in bits, including the implicit
// leading bit.
func MantissaBits[F constraints.Float]() int {
	if is32[F]() {
		return 24
	}
	return 53
}

// Epsilon returns 2^(1-p), the gap between 1 and the next larger F.
func Epsilon[F constraints.Float]() F {
	if is32[F]() {
		return 1.0 / (1 << 23)
	}
	return 1.0 / (1 << 52)
}

// TwoSum returns s = fl(a+b) and e such that s+e == a+b. There is no
// precondition on the magnitudes of a and b.
func TwoSum[F constraints.Float](a, b F) (s, e F) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

// QuickTwoSum returns s = fl(a+b) and e such that s+e == a+b. It requires
// |a| >= |b| (or a == 0); the result is unspecified otherwise.
func QuickTwoSum[F constraints.Float](a, b F) (s, e F) {
	s = a + b
	e = b - (s - a)
	return s, e
}

// TwoDiff returns s = fl(a-b) and e such that s+e == a-b.
func TwoDiff[F constraints.Float](a, b F) (s, e F) {
	s = a - b
	bb := s - a
	e = (a - (s - bb)) - (b + bb)
	return s, e
}

// QuickTwoDiff returns s = fl(a-b) and e such that s+e == a-b. It requires
// |a| >= |b|.
func QuickTwoDiff[F constraints.Float](a, b F) (s, e F) {
	s = a - b
	e = (a - s) - b
	return s, e
}
