package xfloat

import (
	"fmt"
	"math"

	"github.com/shabbyrobe/go-xfloat/eft"
)

// Mode selects between the two QD arithmetic variants.
type Mode uint8

const (
	// Quick drops the smallest cross terms and renormalizes with a cheap
	// QuickTwoSum cascade. Results are good to roughly 2^-208 relative error.
	Quick Mode = iota

	// Accurate merges components in magnitude order, keeps every product that
	// can reach the last component, and renormalizes with the zero-skipping
	// algorithm. It is slower, but its results are correctly renormalized
	// even after heavy cancellation.
	Accurate
)

func (m Mode) String() string {
	switch m {
	case Quick:
		return "quick"
	case Accurate:
		return "accurate"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Arith performs QD arithmetic, and IEEE-style DD addition, in a chosen Mode.
// The zero value uses Quick, which is also what the methods on QD use.
//
//	acc := xfloat.Arith{Mode: xfloat.Accurate}
//	z := acc.Mul(x, y)
type Arith struct {
	Mode Mode
}

var quick = Arith{Mode: Quick}

func (ar Arith) renorm5(c0, c1, c2, c3, c4 float64) QD {
	if ar.Mode == Accurate {
		return renorm5(c0, c1, c2, c3, c4)
	}
	return quickRenorm5(c0, c1, c2, c3, c4)
}

func (ar Arith) renorm4(c0, c1, c2, c3 float64) QD {
	if ar.Mode == Accurate {
		return renorm4(c0, c1, c2, c3)
	}
	return quickRenorm4(c0, c1, c2, c3)
}

// Renorm renormalizes the components of q.
func (ar Arith) Renorm(q QD) QD {
	return ar.renorm4(q.x[0], q.x[1], q.x[2], q.x[3])
}

// Add returns a+b.
func (ar Arith) Add(a, b QD) QD {
	if s := a.x[0] + b.x[0]; nonFinite(s) || (a.x[0] == 0 && b.x[0] == 0) {
		return qdSingle(s)
	}
	if ar.Mode == Accurate {
		return ieeeAdd(a, b)
	}

	s0, t0 := eft.TwoSum(a.x[0], b.x[0])
	s1, t1 := eft.TwoSum(a.x[1], b.x[1])
	s2, t2 := eft.TwoSum(a.x[2], b.x[2])
	s3, t3 := eft.TwoSum(a.x[3], b.x[3])

	s1, t0 = eft.TwoSum(s1, t0)
	s2, t0, t1 = threeSum(s2, t0, t1)
	s3, t0 = threeSum2(s3, t0, t2)
	t0 = t0 + t1 + t3

	return quickRenorm5(s0, s1, s2, s3, t0)
}

// ieeeAdd merges the components of a and b in decreasing order of magnitude,
// accumulating into a running pair and emitting a component whenever the pair
// fills up.
func ieeeAdd(a, b QD) QD {
	var x [4]float64
	var i, j, k int

	next := func() (v float64) {
		switch {
		case i >= 4:
			v = b.x[j]
			j++
		case j >= 4:
			v = a.x[i]
			i++
		case math.Abs(a.x[i]) > math.Abs(b.x[j]):
			v = a.x[i]
			i++
		default:
			v = b.x[j]
			j++
		}
		return v
	}

	u := next()
	v := next()
	u, v = eft.QuickTwoSum(u, v)

	for k < 4 {
		if i >= 4 && j >= 4 {
			x[k] = u
			if k < 3 {
				k++
				x[k] = v
			}
			break
		}

		var s float64
		s, u, v = quickThreeAccum(u, v, next())
		if s != 0 {
			x[k] = s
			k++
		}
	}

	for ; i < 4; i++ {
		x[3] += a.x[i]
	}
	for ; j < 4; j++ {
		x[3] += b.x[j]
	}
	return renorm4(x[0], x[1], x[2], x[3])
}

// Sub returns a-b.
func (ar Arith) Sub(a, b QD) QD {
	return ar.Add(a, b.Neg())
}

// Mul returns a*b.
//
// The product is expanded by order of magnitude: a0b0 is O(1), a0b1 and a1b0
// are O(ε), and so on. Quick mode keeps the exact error of every product down
// to O(ε²), adds the O(ε³) products natively and drops the rest. Accurate mode
// also keeps the errors of the O(ε³) products and adds the O(ε⁴) ones.
func (ar Arith) Mul(a, b QD) QD {
	p0, q0 := eft.TwoProd(a.x[0], b.x[0])
	if nonFinite(p0) {
		return qdSingle(p0)
	}

	p1, q1 := eft.TwoProd(a.x[0], b.x[1])
	p2, q2 := eft.TwoProd(a.x[1], b.x[0])

	p3, q3 := eft.TwoProd(a.x[0], b.x[2])
	p4, q4 := eft.TwoProd(a.x[1], b.x[1])
	p5, q5 := eft.TwoProd(a.x[2], b.x[0])

	// O(ε) terms
	p1, p2, q0 = threeSum(p1, p2, q0)

	// O(ε²) terms
	p2, q1, q2 = threeSum(p2, q1, q2)
	p3, p4, p5 = threeSum(p3, p4, p5)

	s0, t0 := eft.TwoSum(p2, p3)
	s1, t1 := eft.TwoSum(q1, p4)
	s2 := q2 + p5
	s1, t0 = eft.TwoSum(s1, t0)
	s2 += t0 + t1

	if ar.Mode != Accurate {
		// O(ε³) terms, added natively
		s1 += a.x[0]*b.x[3] + a.x[1]*b.x[2] + a.x[2]*b.x[1] + a.x[3]*b.x[0] + q0 + q3 + q4 + q5
		return quickRenorm5(p0, p1, s0, s1, s2)
	}

	// O(ε³) terms with their errors
	p6, q6 := eft.TwoProd(a.x[0], b.x[3])
	p7, q7 := eft.TwoProd(a.x[1], b.x[2])
	p8, q8 := eft.TwoProd(a.x[2], b.x[1])
	p9, q9 := eft.TwoProd(a.x[3], b.x[0])

	q0, q3 = eft.TwoSum(q0, q3)
	q4, q5 = eft.TwoSum(q4, q5)
	p6, p7 = eft.TwoSum(p6, p7)
	p8, p9 = eft.TwoSum(p8, p9)

	t0, t1 = eft.TwoSum(q0, q4)
	t1 += q3 + q5

	r0, r1 := eft.TwoSum(p6, p8)
	r1 += p7 + p9

	q3, q4 = eft.TwoSum(t0, r0)
	q4 += t1 + r1

	t0, t1 = eft.TwoSum(q3, s1)
	t1 += q4

	// O(ε⁴) terms
	t1 += a.x[1]*b.x[3] + a.x[2]*b.x[2] + a.x[3]*b.x[1] + q6 + q7 + q8 + q9 + s2

	return renorm5(p0, p1, s0, t0, t1)
}

// mulFloat returns a*b for a float64 b.
func (ar Arith) mulFloat(a QD, b float64) QD {
	p0, q0 := eft.TwoProd(a.x[0], b)
	if nonFinite(p0) {
		return qdSingle(p0)
	}
	p1, q1 := eft.TwoProd(a.x[1], b)
	p2, q2 := eft.TwoProd(a.x[2], b)
	p3 := a.x[3] * b

	s0 := p0
	s1, s2 := eft.TwoSum(q0, p1)
	s2, q1, p2 = threeSum(s2, q1, p2)
	q1, q2 = threeSum2(q1, q2, p3)
	s3 := q1
	s4 := q2 + p2

	return ar.renorm5(s0, s1, s2, s3, s4)
}

// Div returns a/b by long division: each quotient digit is the ratio of
// leading components, and its product with b is subtracted from the running
// remainder. Quick mode takes four digits, Accurate five.
//
// Division by zero follows float64 semantics; see QD.DivOrZero for the
// other contract.
func (ar Arith) Div(a, b QD) QD {
	q0 := a.x[0] / b.x[0]
	if nonFinite(q0) || nonFinite(b.x[0]) {
		return qdSingle(q0)
	}

	r := ar.Sub(a, ar.mulFloat(b, q0))
	q1 := r.x[0] / b.x[0]
	r = ar.Sub(r, ar.mulFloat(b, q1))
	q2 := r.x[0] / b.x[0]
	r = ar.Sub(r, ar.mulFloat(b, q2))
	q3 := r.x[0] / b.x[0]

	if ar.Mode != Accurate {
		return quickRenorm4(q0, q1, q2, q3)
	}
	r = ar.Sub(r, ar.mulFloat(b, q3))
	q4 := r.x[0] / b.x[0]
	return renorm5(q0, q1, q2, q3, q4)
}

// Recip returns 1/q.
func (ar Arith) Recip(q QD) QD {
	return ar.Div(QD{x: [4]float64{1}}, q)
}

// AddDD returns a+b. Quick mode is DD.Add. Accurate mode sums the two
// components separately with TwoSum, which keeps the result accurate when the
// leading components cancel.
func (ar Arith) AddDD(a, b DD) DD {
	if ar.Mode != Accurate {
		return a.Add(b)
	}
	s1, s2 := eft.TwoSum(a.hi, b.hi)
	if nonFinite(s1) {
		return DD{hi: s1}
	}
	t1, t2 := eft.TwoSum(a.lo, b.lo)
	d := ddQuick(s1, s2+t1)
	return ddQuick(d.hi, d.lo+t2)
}

// SubDD returns a-b; see AddDD.
func (ar Arith) SubDD(a, b DD) DD {
	return ar.AddDD(a, b.Neg())
}
