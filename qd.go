package xfloat

import (
	"math"
	"sort"
)

// QD is a quad-double: an unevaluated sum of four float64 components,
// decreasing in magnitude, each no larger than half an ulp of the running sum
// above it. This gives roughly 212 bits of mantissa with the exponent range
// of a float64.
//
// As with DD, non-finite values are carried in the leading component alone.
type QD struct {
	x [4]float64
}

func QDFrom64(v float64) QD { return QD{x: [4]float64{v}} }

func QDFromInt64(v int64) QD { return DDFromInt64(v).QD() }

func QDFromDD(d DD) QD { return d.QD() }

// QDFromRaw creates a QD from its components without renormalizing them.
func QDFromRaw(c0, c1, c2, c3 float64) QD {
	return QD{x: [4]float64{c0, c1, c2, c3}}
}

// QDFromParts creates a QD equal to c0+c1+c2+c3. The components may be given
// in any order and may overlap.
func QDFromParts(c0, c1, c2, c3 float64) QD {
	c := [4]float64{c0, c1, c2, c3}
	sort.Slice(c[:], func(i, j int) bool {
		return math.Abs(c[i]) > math.Abs(c[j])
	})
	return distill(c[0], c[1], c[2], c[3])
}

// QDFromBits creates a QD from the IEEE-754 bit patterns of its components
// without renormalizing.
func QDFromBits(bits [4]uint64) QD {
	var q QD
	for i, b := range bits {
		q.x[i] = math.Float64frombits(b)
	}
	return q
}

func (q QD) Raw() [4]float64 { return q.x }

func (q QD) Bits() (bits [4]uint64) {
	for i, v := range q.x {
		bits[i] = math.Float64bits(v)
	}
	return bits
}

// Component returns the i'th component of q. It panics if i is not in
// [0, 4).
func (q QD) Component(i int) float64 { return q.x[i] }

// Float64 returns the float64 nearest to q, which is its leading component.
func (q QD) Float64() float64 { return q.x[0] }

// DD rounds q to the nearest DD.
func (q QD) DD() DD {
	if nonFinite(q.x[0]) {
		return DD{hi: q.x[0]}
	}
	return ddQuick(q.x[0], q.x[1]+q.x[2])
}

func (q QD) IsZero() bool        { return q.x[0] == 0 }
func (q QD) IsNaN() bool         { return q.x[0] != q.x[0] }
func (q QD) Signbit() bool       { return math.Signbit(q.x[0]) }
func (q QD) IsInf(sign int) bool { return math.IsInf(q.x[0], sign) }
func (q QD) IsFinite() bool      { return !nonFinite(q.x[0]) }

func (q QD) IsNormal() bool {
	a := math.Abs(q.x[0])
	return a >= minNormal && !nonFinite(a)
}

func (q QD) IsSubnormal() bool {
	a := math.Abs(q.x[0])
	return a > 0 && a < minNormal
}

// Sign returns -1, 0 or +1 according to the sign of q. NaN returns 0.
func (q QD) Sign() int {
	if q.x[0] > 0 {
		return 1
	} else if q.x[0] < 0 {
		return -1
	}
	return 0
}

// Cmp compares q and n and returns -1, 0 or +1. The result is 0 if either
// operand is NaN.
func (q QD) Cmp(n QD) int {
	if q.LessThan(n) {
		return -1
	} else if n.LessThan(q) {
		return 1
	}
	return 0
}

// Equal reports whether q == n, comparing components in order.
func (q QD) Equal(n QD) bool {
	if q.x[0] == 0 && n.x[0] == 0 {
		return true
	}
	return q.x[0] == n.x[0] && q.x[1] == n.x[1] && q.x[2] == n.x[2] && q.x[3] == n.x[3]
}

func (q QD) LessThan(n QD) bool {
	if q.x[0] != n.x[0] || q.x[0] == 0 {
		return q.x[0] < n.x[0]
	}
	for i := 1; i < 4; i++ {
		if q.x[i] != n.x[i] {
			return q.x[i] < n.x[i]
		}
	}
	return false
}

func (q QD) LessOrEqualTo(n QD) bool {
	return q.LessThan(n) || q.Equal(n)
}

func (q QD) GreaterThan(n QD) bool {
	return n.LessThan(q)
}

func (q QD) GreaterOrEqualTo(n QD) bool {
	return n.LessThan(q) || q.Equal(n)
}

func (q QD) Equal64(v float64) bool {
	return q.x[0] == v && (v == 0 || (q.x[1] == 0 && q.x[2] == 0 && q.x[3] == 0))
}

// EqualDD reports whether q is exactly equal to d.
func (q QD) EqualDD(d DD) bool {
	return q.Equal(d.QD())
}

// roundWith rounds q to an integer one component at a time. Lower components
// are only examined while every component above them is already integral.
// When a component lies exactly halfway between two integers the sign of the
// next component decides the direction.
func (q QD) roundWith(lead func(float64) float64, rest func(x, prev float64) float64, ties bool) QD {
	var r [4]float64
	for i := 0; i < 4; i++ {
		if i == 0 {
			r[i] = lead(q.x[i])
		} else {
			r[i] = rest(q.x[i], r[i-1])
		}
		if r[i] == q.x[i] {
			continue
		}
		if ties && i < 3 && halfway(r[i], q.x[i]) {
			if next := q.x[i+1]; next < 0 {
				r[i] = q.x[i] - 0.5
			} else if next > 0 {
				r[i] = q.x[i] + 0.5
			}
		}
		break
	}
	return renorm4(r[0], r[1], r[2], r[3])
}

// Floor returns the greatest integer value less than or equal to q.
func (q QD) Floor() QD {
	return q.roundWith(math.Floor, func(x, _ float64) float64 { return math.Floor(x) }, false)
}

// Ceil returns the least integer value greater than or equal to q.
func (q QD) Ceil() QD {
	return q.roundWith(math.Ceil, func(x, _ float64) float64 { return math.Ceil(x) }, false)
}

// Trunc returns the integer value of q, rounded towards zero.
func (q QD) Trunc() QD {
	if q.x[0] >= 0 {
		return q.Floor()
	}
	return q.Ceil()
}

// Round returns the nearest integer to q, rounding half away from zero.
func (q QD) Round() QD {
	up := q.x[0] > 0
	return q.roundWith(math.Round, func(x, _ float64) float64 { return roundTies(x, up) }, true)
}

// RoundToEven returns the nearest integer to q, rounding ties to even.
//
// A lower component can only sit on a half when the component above it is at
// least 2^52, at which point every component above that one is even. The
// parity of the result therefore follows the previous component alone.
func (q QD) RoundToEven() QD {
	return q.roundWith(math.RoundToEven, roundTiesEven, true)
}

// Rint is an alias for RoundToEven.
func (q QD) Rint() QD { return q.RoundToEven() }

// Int64 truncates q towards zero and converts it to an int64. Values outside
// the int64 range saturate and set inRange to false; NaN returns 0.
func (q QD) Int64() (v int64, inRange bool) {
	if q.IsNaN() {
		return 0, false
	}
	t := q.Trunc()
	return DD{hi: t.x[0], lo: t.x[1]}.Int64()
}
