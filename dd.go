package xfloat

import (
	"math"

	"github.com/shabbyrobe/go-xfloat/eft"
)

// DD is a double-double: an unevaluated sum hi+lo of two float64 values with
// |lo| <= ulp(hi)/2, giving roughly 106 bits of mantissa.
//
// Signed zeros, infinities and NaN are carried in hi alone; lo is zero for
// every non-finite DD.
type DD struct {
	hi, lo float64
}

func DDFrom64(v float64) DD { return DD{hi: v} }
func DDFrom32(v float32) DD { return DD{hi: float64(v)} }

// DDFromInt64 converts v exactly. Integers above 2^53 need both components.
func DDFromInt64(v int64) DD {
	h := v >> 32 << 32
	return DDFromParts(float64(h), float64(v-h))
}

// DDFromRaw creates a DD from its components without renormalizing them. The
// caller must ensure |lo| <= ulp(hi)/2; see DDFromParts for a checked
// variant.
func DDFromRaw(hi, lo float64) DD { return DD{hi: hi, lo: lo} }

// DDFromParts creates a DD equal to hi+lo, renormalizing the pair. There is
// no precondition on the relative magnitudes of hi and lo.
func DDFromParts(hi, lo float64) DD {
	if lo == 0 {
		return DD{hi: hi}
	}
	s, e := eft.TwoSum(hi, lo)
	if nonFinite(s) {
		return DD{hi: s}
	}
	return DD{hi: s, lo: e}
}

// DDFromBits creates a DD from the IEEE-754 bit patterns of its components.
// Like DDFromRaw, the pair is not renormalized; it exists to reproduce exact
// values, for example in tests.
func DDFromBits(hi, lo uint64) DD {
	return DD{hi: math.Float64frombits(hi), lo: math.Float64frombits(lo)}
}

// ddQuick renormalizes hi+lo where |hi| >= |lo| is already known.
func ddQuick(hi, lo float64) DD {
	if lo == 0 {
		// Keeps the sign of a zero hi.
		return DD{hi: hi}
	}
	s, e := eft.QuickTwoSum(hi, lo)
	if nonFinite(s) {
		return DD{hi: s}
	}
	return DD{hi: s, lo: e}
}

// Raw returns the components of d. See DDFromRaw for the counterpart.
func (d DD) Raw() (hi, lo float64) { return d.hi, d.lo }

// Bits returns the IEEE-754 bit patterns of the components of d.
func (d DD) Bits() (hi, lo uint64) { return math.Float64bits(d.hi), math.Float64bits(d.lo) }

func (d DD) Hi() float64 { return d.hi }
func (d DD) Lo() float64 { return d.lo }

// Float64 returns the float64 nearest to d, which is its leading component.
func (d DD) Float64() float64 { return d.hi }

// QD widens d to a quad-double without loss.
func (d DD) QD() QD { return QD{x: [4]float64{d.hi, d.lo}} }

// Renorm returns d with its components renormalized. For a DD produced by
// this package it returns d unchanged.
func (d DD) Renorm() DD { return DDFromParts(d.hi, d.lo) }

func (d DD) IsZero() bool  { return d.hi == 0 }
func (d DD) IsNaN() bool   { return d.hi != d.hi }
func (d DD) Signbit() bool { return math.Signbit(d.hi) }

// IsInf reports whether d is an infinity, according to sign. See math.IsInf.
func (d DD) IsInf(sign int) bool { return math.IsInf(d.hi, sign) }

func (d DD) IsFinite() bool { return !nonFinite(d.hi) }

// IsNormal reports whether d is finite, non-zero and not subnormal.
func (d DD) IsNormal() bool {
	a := math.Abs(d.hi)
	return a >= minNormal && !nonFinite(a)
}

// IsSubnormal reports whether the leading component of d is subnormal.
func (d DD) IsSubnormal() bool {
	a := math.Abs(d.hi)
	return a > 0 && a < minNormal
}

// Sign returns -1, 0 or +1 according to the sign of d. NaN returns 0.
func (d DD) Sign() int {
	if d.hi > 0 {
		return 1
	} else if d.hi < 0 {
		return -1
	}
	return 0
}

// Cmp compares d and n and returns -1, 0 or +1. The result is 0 if either
// operand is NaN.
func (d DD) Cmp(n DD) int {
	if d.LessThan(n) {
		return -1
	} else if n.LessThan(d) {
		return 1
	}
	return 0
}

// Equal reports whether d == n. Components are compared in order; when both
// leading components are zero the trailing ones are not examined.
func (d DD) Equal(n DD) bool {
	if d.hi == 0 && n.hi == 0 {
		return true
	}
	return d.hi == n.hi && d.lo == n.lo
}

func (d DD) LessThan(n DD) bool {
	return d.hi < n.hi || (d.hi == n.hi && d.hi != 0 && d.lo < n.lo)
}

func (d DD) LessOrEqualTo(n DD) bool {
	return d.LessThan(n) || d.Equal(n)
}

func (d DD) GreaterThan(n DD) bool {
	return n.LessThan(d)
}

func (d DD) GreaterOrEqualTo(n DD) bool {
	return n.LessThan(d) || d.Equal(n)
}

// Equal64 reports whether d is exactly equal to the float64 v.
func (d DD) Equal64(v float64) bool {
	return d.hi == v && (v == 0 || d.lo == 0)
}

// Floor returns the greatest integer value less than or equal to d.
func (d DD) Floor() DD {
	hi := math.Floor(d.hi)
	if hi != d.hi || d.lo == 0 {
		return DD{hi: hi}
	}
	return ddQuick(hi, math.Floor(d.lo))
}

// Ceil returns the least integer value greater than or equal to d.
func (d DD) Ceil() DD {
	hi := math.Ceil(d.hi)
	if hi != d.hi || d.lo == 0 {
		return DD{hi: hi}
	}
	return ddQuick(hi, math.Ceil(d.lo))
}

// Trunc returns the integer value of d, rounded towards zero.
func (d DD) Trunc() DD {
	if d.hi >= 0 {
		return d.Floor()
	}
	return d.Ceil()
}

// Round returns the nearest integer to d, rounding half away from zero.
//
// A leading component that lies exactly halfway between two integers is
// resolved by the sign of the trailing component, which says which side of
// the half the full value is on.
func (d DD) Round() DD {
	hi := math.Round(d.hi)
	if hi == d.hi {
		if d.lo == 0 {
			return DD{hi: hi}
		}
		return ddQuick(hi, roundTies(d.lo, d.hi > 0))
	}
	if halfway(hi, d.hi) {
		if d.lo < 0 {
			hi = d.hi - 0.5
		} else if d.lo > 0 {
			hi = d.hi + 0.5
		}
	}
	return DD{hi: hi}
}

// RoundToEven returns the nearest integer to d, rounding ties to even. Go
// exposes no dynamic floating-point rounding mode, so this is also what C
// calls rint.
func (d DD) RoundToEven() DD {
	hi := math.RoundToEven(d.hi)
	if hi == d.hi {
		if d.lo == 0 {
			return DD{hi: hi}
		}
		return ddQuick(hi, roundTiesEven(d.lo, hi))
	}
	if halfway(hi, d.hi) {
		if d.lo < 0 {
			hi = d.hi - 0.5
		} else if d.lo > 0 {
			hi = d.hi + 0.5
		}
	}
	return DD{hi: hi}
}

// Rint is an alias for RoundToEven.
func (d DD) Rint() DD { return d.RoundToEven() }

// Int64 truncates d towards zero and converts it to an int64. Values outside
// the int64 range saturate and set inRange to false; NaN returns 0.
func (d DD) Int64() (v int64, inRange bool) {
	if d.IsNaN() {
		return 0, false
	}
	t := d.Trunc()
	switch {
	case t.hi > -twoPow63 && t.hi < twoPow63:
		return int64(t.hi) + int64(t.lo), true
	case t.hi == twoPow63 && t.lo < 0:
		return math.MaxInt64 + int64(t.lo) + 1, true
	case t.hi == -twoPow63 && t.lo >= 0:
		return math.MinInt64 + int64(t.lo), true
	case t.hi > 0:
		return math.MaxInt64, false
	default:
		return math.MinInt64, false
	}
}
