package xfloat

import (
	"math"

	"github.com/shabbyrobe/go-xfloat/eft"
)

func (d DD) Neg() DD { return DD{hi: -d.hi, lo: -d.lo} }

func (d DD) Abs() DD {
	if math.Signbit(d.hi) {
		return d.Neg()
	}
	return d
}

// Add returns d+n.
//
// The leading components are summed natively and the rounding error of that
// sum is recovered with the cheap formula appropriate to whichever operand is
// larger in magnitude. The formula is only exact when that order is known, so
// the branch is required for correctness.
func (d DD) Add(n DD) DD {
	s := d.hi + n.hi
	if nonFinite(s) {
		return DD{hi: s}
	}
	var c float64
	if math.Abs(d.hi) >= math.Abs(n.hi) {
		c = (((d.hi - s) + n.hi) + n.lo) + d.lo
	} else {
		c = (((n.hi - s) + d.hi) + d.lo) + n.lo
	}
	return ddQuick(s, c)
}

// Sub returns d-n.
func (d DD) Sub(n DD) DD {
	return d.Add(n.Neg())
}

// AddFloat returns d+v. The exact error of the leading sum is kept, so this
// is more accurate than d.Add(DDFrom64(v)).
func (d DD) AddFloat(v float64) DD {
	s, e := eft.TwoSum(d.hi, v)
	if nonFinite(s) {
		return DD{hi: s}
	}
	return ddQuick(s, e+d.lo)
}

func (d DD) SubFloat(v float64) DD {
	return d.AddFloat(-v)
}

// Mul returns d*n: the exact product of the leading components plus the
// cross terms hi*lo and lo*hi.
func (d DD) Mul(n DD) DD {
	p, e := eft.TwoProd(d.hi, n.hi)
	if nonFinite(p) {
		return DD{hi: p}
	}
	e += d.hi*n.lo + d.lo*n.hi
	return ddQuick(p, e)
}

func (d DD) MulFloat(v float64) DD {
	p, e := eft.TwoProd(d.hi, v)
	if nonFinite(p) {
		return DD{hi: p}
	}
	return ddQuick(p, e+d.lo*v)
}

// mulPwr2 multiplies d by a power of two, which is exact unless the result
// leaves the normal range.
func (d DD) mulPwr2(f float64) DD {
	return DD{hi: d.hi * f, lo: d.lo * f}
}

// Sqr returns d*d.
func (d DD) Sqr() DD {
	p, e := eft.TwoSquare(d.hi)
	if nonFinite(p) {
		return DD{hi: p}
	}
	return ddQuick(p, e+2*d.hi*d.lo)
}

// Div returns d/n.
//
// A quotient digit q = d.hi/n.hi is refined once: q*n.hi is formed exactly,
// subtracted from d, and the remainder divided by n.hi gives the correction.
//
// Division by zero follows float64 semantics: x/0 is a signed infinity and
// 0/0 is NaN. See DivOrZero for the other contract.
func (d DD) Div(n DD) DD {
	q := d.hi / n.hi
	if nonFinite(q) || nonFinite(n.hi) {
		return DD{hi: q}
	}
	p, e := eft.TwoProd(q, n.hi)
	c := ((((d.hi - p) - e) + d.lo) - q*n.lo) / n.hi
	return ddQuick(q, c)
}

// DivOrZero returns d/n, or zero when n is zero. It is for call sites where a
// vanishing divisor means the quotient contributes nothing, such as a Newton
// correction whose derivative is zero. Everywhere else use Div, which
// produces Inf or NaN.
func (d DD) DivOrZero(n DD) DD {
	if n.hi == 0 {
		return DD{}
	}
	return d.Div(n)
}

func (d DD) DivFloat(v float64) DD {
	q := d.hi / v
	if nonFinite(q) || nonFinite(v) {
		return DD{hi: q}
	}
	p, e := eft.TwoProd(q, v)
	c := (((d.hi - p) - e) + d.lo) / v
	return ddQuick(q, c)
}

// Recip returns 1/d using the same quotient refinement as Div.
func (d DD) Recip() DD {
	q := 1 / d.hi
	if nonFinite(q) || nonFinite(d.hi) {
		return DD{hi: q}
	}
	p, e := eft.TwoProd(q, d.hi)
	c := (((1 - p) - e) - q*d.lo) / d.hi
	return ddQuick(q, c)
}

// Sqrt returns the square root of d.
//
// The native root g of the leading component is refined by one Newton step,
// (g + d/g)/2, evaluated in double-double. The argument is scaled by an even
// power of two first, so that the error terms inside d/g stay normal. Zero is
// returned unchanged, keeping its sign; negative values give NaN.
func (d DD) Sqrt() DD {
	switch {
	case d.hi == 0:
		return d
	case d.hi < 0:
		return DD{hi: math.NaN()}
	case nonFinite(d.hi):
		return DD{hi: d.hi}
	}
	_, exp := math.Frexp(d.hi)
	k := exp / 2
	a := d.Ldexp(-2 * k)

	g := DD{hi: math.Sqrt(a.hi)}
	return g.Add(a.Div(g)).mulPwr2(0.5).Ldexp(k)
}

// Cbrt returns the cube root of d.
//
// The native root g of the leading component gets one Halley step,
// g*(g^3 + 2d)/(2g^3 + d), which triples the number of correct bits. The
// argument is first scaled by a power of eight so that g^3 cannot overflow.
func (d DD) Cbrt() DD {
	if d.hi == 0 || nonFinite(d.hi) {
		return d
	}
	_, exp := math.Frexp(d.hi)
	k := exp / 3
	a := d.Ldexp(-3 * k)

	g := DD{hi: math.Cbrt(a.hi)}
	g3 := g.Sqr().Mul(g)
	r := g.Mul(g3.Add(a.mulPwr2(2))).Div(g3.mulPwr2(2).Add(a))
	return r.Ldexp(k)
}

// Ldexp returns d*2^exp.
func (d DD) Ldexp(exp int) DD {
	if d.lo == 0 {
		return DD{hi: math.Ldexp(d.hi, exp)}
	}
	return DD{hi: math.Ldexp(d.hi, exp), lo: math.Ldexp(d.lo, exp)}
}

// Frexp breaks d into a fraction and a power of two, such that
// d == frac*2^exp and the leading component of frac is in [0.5, 1). See
// math.Frexp for the special cases.
func (d DD) Frexp() (frac DD, exp int) {
	hi, exp := math.Frexp(d.hi)
	if d.lo == 0 {
		return DD{hi: hi}, exp
	}
	return DD{hi: hi, lo: math.Ldexp(d.lo, -exp)}, exp
}
