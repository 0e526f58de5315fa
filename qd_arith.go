package xfloat

import (
	"math"

	"github.com/shabbyrobe/go-xfloat/eft"
)

func (q QD) Neg() QD {
	return QD{x: [4]float64{-q.x[0], -q.x[1], -q.x[2], -q.x[3]}}
}

func (q QD) Abs() QD {
	if math.Signbit(q.x[0]) {
		return q.Neg()
	}
	return q
}

// Add returns q+n in Quick mode. Use Arith for Accurate.
func (q QD) Add(n QD) QD { return quick.Add(q, n) }

// Sub returns q-n in Quick mode.
func (q QD) Sub(n QD) QD { return quick.Sub(q, n) }

// AddDD returns q+d.
func (q QD) AddDD(d DD) QD {
	s0, t0 := eft.TwoSum(q.x[0], d.hi)
	if nonFinite(s0) || (s0 == 0 && q.x[0] == 0 && d.hi == 0) {
		return qdSingle(s0)
	}
	s1, t1 := eft.TwoSum(q.x[1], d.lo)
	s1, t0 = eft.TwoSum(s1, t0)
	s2, t0, t1 := threeSum(q.x[2], t0, t1)
	s3, t0 := eft.TwoSum(t0, q.x[3])
	t0 += t1
	return quickRenorm5(s0, s1, s2, s3, t0)
}

func (q QD) SubDD(d DD) QD { return q.AddDD(d.Neg()) }

// AddFloat returns q+v.
func (q QD) AddFloat(v float64) QD {
	c0, e := eft.TwoSum(q.x[0], v)
	if nonFinite(c0) || (q.x[0] == 0 && v == 0) {
		return qdSingle(c0)
	}
	c1, e := eft.TwoSum(q.x[1], e)
	c2, e := eft.TwoSum(q.x[2], e)
	c3, e := eft.TwoSum(q.x[3], e)
	return quickRenorm5(c0, c1, c2, c3, e)
}

func (q QD) SubFloat(v float64) QD { return q.AddFloat(-v) }

// Mul returns q*n in Quick mode. Use Arith for Accurate.
func (q QD) Mul(n QD) QD { return quick.Mul(q, n) }

// MulDD returns q*d, expanding the products down to O(ε³).
func (q QD) MulDD(d DD) QD {
	p0, q0 := eft.TwoProd(q.x[0], d.hi)
	if nonFinite(p0) {
		return qdSingle(p0)
	}
	p1, q1 := eft.TwoProd(q.x[0], d.lo)
	p2, q2 := eft.TwoProd(q.x[1], d.hi)
	p3, q3 := eft.TwoProd(q.x[1], d.lo)
	p4, q4 := eft.TwoProd(q.x[2], d.hi)

	p1, p2, q0 = threeSum(p1, p2, q0)

	p2, p3, p4 = threeSum(p2, p3, p4)
	q1, q2 = eft.TwoSum(q1, q2)
	s0, t0 := eft.TwoSum(p2, q1)
	s1, t1 := eft.TwoSum(p3, q2)
	s1, t0 = eft.TwoSum(s1, t0)
	s2 := t0 + t1 + p4
	p2 = s0

	p3 = q.x[2]*d.lo + q.x[3]*d.hi + q3 + q4
	p3, q0 = threeSum2(p3, q0, s1)
	p4 = q0 + s2

	return quickRenorm5(p0, p1, p2, p3, p4)
}

// MulFloat returns q*v.
func (q QD) MulFloat(v float64) QD { return quick.mulFloat(q, v) }

// mulPwr2 multiplies q by a power of two.
func (q QD) mulPwr2(f float64) QD {
	return QD{x: [4]float64{q.x[0] * f, q.x[1] * f, q.x[2] * f, q.x[3] * f}}
}

// Sqr returns q*q. The cross products appear twice, so they are formed once
// from 2*q0 and 2*q1, which is exact.
func (q QD) Sqr() QD {
	a := q.x
	p0, q0 := eft.TwoSquare(a[0])
	if nonFinite(p0) {
		return qdSingle(p0)
	}
	p1, q1 := eft.TwoProd(2*a[0], a[1])
	p2, q2 := eft.TwoProd(2*a[0], a[2])
	p3, q3 := eft.TwoSquare(a[1])

	// O(ε) terms
	p1, e1 := eft.TwoSum(p1, q0)

	// O(ε²) terms
	p2, p3 = eft.TwoSum(p2, p3)
	e1, q1 = eft.TwoSum(e1, q1)
	s0, t0 := eft.TwoSum(p2, e1)
	s1, t1 := eft.TwoSum(p3, q1)
	s1, t0 = eft.TwoSum(s1, t0)
	s2 := t0 + t1

	// O(ε³) terms
	s1 += 2*a[0]*a[3] + 2*a[1]*a[2] + q2 + q3

	return quickRenorm5(p0, p1, s0, s1, s2)
}

// Div returns q/n in Quick mode. Division by zero follows float64
// semantics; see DivOrZero for the other contract.
func (q QD) Div(n QD) QD { return quick.Div(q, n) }

// DivOrZero returns q/n, or zero when n is zero. It is for call sites where a
// vanishing divisor means the quotient contributes nothing.
func (q QD) DivOrZero(n QD) QD {
	if n.x[0] == 0 {
		return QD{}
	}
	return q.Div(n)
}

func (q QD) DivDD(d DD) QD { return q.Div(d.QD()) }

// DivFloat returns q/v. Each quotient digit times v is exact as a DD, so the
// remainder update needs no QD multiplication.
func (q QD) DivFloat(v float64) QD {
	q0 := q.x[0] / v
	if nonFinite(q0) || nonFinite(v) {
		return qdSingle(q0)
	}
	var digits [4]float64
	digits[0] = q0
	r := q
	for i := 1; i < 4; i++ {
		p, e := eft.TwoProd(digits[i-1], v)
		r = r.SubDD(DD{hi: p, lo: e})
		digits[i] = r.x[0] / v
	}
	return quickRenorm4(digits[0], digits[1], digits[2], digits[3])
}

// Recip returns 1/q.
func (q QD) Recip() QD { return quick.Recip(q) }

// Sqrt returns the square root of q.
//
// A DD root seeds r ≈ 1/√q, which one Newton step r += r(1/2 - (q/2)r²)
// takes to full QD precision. The root is then y = q*r, finished with Karp's
// correction y + r(q - y²)/2. The argument is scaled by an even power of two
// so that r² stays in range.
func (q QD) Sqrt() QD {
	switch {
	case q.x[0] == 0:
		return q
	case q.x[0] < 0:
		return qdSingle(math.NaN())
	case nonFinite(q.x[0]):
		return qdSingle(q.x[0])
	}

	_, exp := math.Frexp(q.x[0])
	k := exp / 2
	a := q.Ldexp(-2 * k)

	r := DD{hi: a.x[0], lo: a.x[1]}.Sqrt().Recip().QD()
	h := a.mulPwr2(0.5)
	half := QD{x: [4]float64{0.5}}
	r = r.Add(r.Mul(half.Sub(h.Mul(r.Sqr()))))

	y := a.Mul(r)
	y = y.Add(r.Mul(a.Sub(y.Sqr())).mulPwr2(0.5))
	return y.Ldexp(k)
}

// Cbrt returns the cube root of q: a DD seed followed by one Halley step,
// c(c³ + 2q)/(2c³ + q). The argument is scaled by a power of eight first.
func (q QD) Cbrt() QD {
	if q.x[0] == 0 || nonFinite(q.x[0]) {
		return q
	}
	_, exp := math.Frexp(q.x[0])
	k := exp / 3
	a := q.Ldexp(-3 * k)

	c := DD{hi: a.x[0], lo: a.x[1]}.Cbrt().QD()
	c3 := c.Sqr().Mul(c)
	c = c.Mul(c3.Add(a.mulPwr2(2))).Div(c3.mulPwr2(2).Add(a))
	return c.Ldexp(k)
}

// Ldexp returns q*2^exp.
func (q QD) Ldexp(exp int) QD {
	return QD{x: [4]float64{
		math.Ldexp(q.x[0], exp),
		math.Ldexp(q.x[1], exp),
		math.Ldexp(q.x[2], exp),
		math.Ldexp(q.x[3], exp),
	}}
}

// Frexp breaks q into a fraction and a power of two, such that
// q == frac*2^exp and the leading component of frac is in [0.5, 1).
func (q QD) Frexp() (frac QD, exp int) {
	hi, exp := math.Frexp(q.x[0])
	if nonFinite(q.x[0]) || q.x[0] == 0 {
		return qdSingle(hi), exp
	}
	frac = q.Ldexp(-exp)
	frac.x[0] = hi
	return frac, exp
}
