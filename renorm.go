package xfloat

import (
	"github.com/shabbyrobe/go-xfloat/eft"
)

// threeSum returns the sum of a, b and c as three non-overlapping parts, the
// first being the rounded sum.
func threeSum(a, b, c float64) (s, e1, e2 float64) {
	t1, t2 := eft.TwoSum(a, b)
	s, t3 := eft.TwoSum(c, t1)
	e1, e2 = eft.TwoSum(t2, t3)
	return s, e1, e2
}

// threeSum2 is threeSum with the two error terms folded into one.
func threeSum2(a, b, c float64) (s, e float64) {
	t1, t2 := eft.TwoSum(a, b)
	s, t3 := eft.TwoSum(c, t1)
	return s, t2 + t3
}

// quickThreeAccum adds c into the running pair (a, b). If the pair still
// holds two non-zero parts after the addition, the leading part is complete
// and is returned as s; otherwise s is zero and the pair is shifted up.
func quickThreeAccum(a, b, c float64) (s, na, nb float64) {
	s, b = eft.TwoSum(b, c)
	s, a = eft.TwoSum(a, s)
	za, zb := a != 0, b != 0
	if za && zb {
		return s, a, b
	}
	if !zb {
		return 0, s, a
	}
	return 0, s, b
}

func allZero(c ...float64) bool {
	for _, v := range c {
		if v != 0 {
			return false
		}
	}
	return true
}

// qdSingle returns a QD holding only c0, which may be zero or non-finite.
func qdSingle(c0 float64) QD {
	return QD{x: [4]float64{c0}}
}

// renorm4 is the accurate renormalization of four overlapping components.
// Zero components are skipped so that they never sit between non-zero ones.
func renorm4(c0, c1, c2, c3 float64) QD {
	if nonFinite(c0) || allZero(c1, c2, c3) {
		return qdSingle(c0)
	}

	s0, c3 := eft.QuickTwoSum(c2, c3)
	s0, c2 = eft.QuickTwoSum(c1, s0)
	c0, c1 = eft.QuickTwoSum(c0, s0)

	s0, s1 := c0, c1
	var s2, s3 float64
	if s1 != 0 {
		s1, s2 = eft.QuickTwoSum(s1, c2)
		if s2 != 0 {
			s2, s3 = eft.QuickTwoSum(s2, c3)
		} else {
			s1, s2 = eft.QuickTwoSum(s1, c3)
		}
	} else {
		s0, s1 = eft.QuickTwoSum(s0, c2)
		if s1 != 0 {
			s1, s2 = eft.QuickTwoSum(s1, c3)
		} else {
			s0, s1 = eft.QuickTwoSum(s0, c3)
		}
	}
	if nonFinite(s0) {
		return qdSingle(s0)
	}
	return QD{x: [4]float64{s0, s1, s2, s3}}
}

// renorm5 folds a fifth, smallest component into four.
func renorm5(c0, c1, c2, c3, c4 float64) QD {
	if nonFinite(c0) || allZero(c1, c2, c3, c4) {
		return qdSingle(c0)
	}

	s0, c4 := eft.QuickTwoSum(c3, c4)
	s0, c3 = eft.QuickTwoSum(c2, s0)
	s0, c2 = eft.QuickTwoSum(c1, s0)
	c0, c1 = eft.QuickTwoSum(c0, s0)

	s0, s1 := c0, c1
	var s2, s3 float64
	if s1 != 0 {
		s1, s2 = eft.QuickTwoSum(s1, c2)
		if s2 != 0 {
			s2, s3 = eft.QuickTwoSum(s2, c3)
			if s3 != 0 {
				s3 += c4
			} else {
				s2, s3 = eft.QuickTwoSum(s2, c4)
			}
		} else {
			s1, s2 = eft.QuickTwoSum(s1, c3)
			if s2 != 0 {
				s2, s3 = eft.QuickTwoSum(s2, c4)
			} else {
				s1, s2 = eft.QuickTwoSum(s1, c4)
			}
		}
	} else {
		s0, s1 = eft.QuickTwoSum(s0, c2)
		if s1 != 0 {
			s1, s2 = eft.QuickTwoSum(s1, c3)
			if s2 != 0 {
				s2, s3 = eft.QuickTwoSum(s2, c4)
			} else {
				s1, s2 = eft.QuickTwoSum(s1, c4)
			}
		} else {
			s0, s1 = eft.QuickTwoSum(s0, c3)
			if s1 != 0 {
				s1, s2 = eft.QuickTwoSum(s1, c4)
			} else {
				s0, s1 = eft.QuickTwoSum(s0, c4)
			}
		}
	}
	if nonFinite(s0) {
		return qdSingle(s0)
	}
	return QD{x: [4]float64{s0, s1, s2, s3}}
}

// quickRenorm5 is the cheap renormalization: one bottom-up and one top-down
// cascade of QuickTwoSum with no zero handling. It is exact whenever the
// inputs are roughly ordered by decreasing magnitude, which every caller in
// this package guarantees.
func quickRenorm5(c0, c1, c2, c3, c4 float64) QD {
	if nonFinite(c0) || allZero(c1, c2, c3, c4) {
		return qdSingle(c0)
	}

	s, t3 := eft.QuickTwoSum(c3, c4)
	s, t2 := eft.QuickTwoSum(c2, s)
	s, t1 := eft.QuickTwoSum(c1, s)
	c0, t0 := eft.QuickTwoSum(c0, s)

	s, t2 = eft.QuickTwoSum(t2, t3)
	s, t1 = eft.QuickTwoSum(t1, s)
	c1, t0 = eft.QuickTwoSum(t0, s)

	s, t1 = eft.QuickTwoSum(t1, t2)
	c2, t0 = eft.QuickTwoSum(t0, s)

	c3 = t0 + t1
	if nonFinite(c0) {
		return qdSingle(c0)
	}
	return QD{x: [4]float64{c0, c1, c2, c3}}
}

func quickRenorm4(c0, c1, c2, c3 float64) QD {
	return quickRenorm5(c0, c1, c2, c3, 0)
}

// distill renormalizes four components of arbitrary magnitude and order. Two
// exact bottom-up TwoSum passes bring the largest magnitudes to the front
// before the accurate renormalization.
func distill(c0, c1, c2, c3 float64) QD {
	if allZero(c1, c2, c3) {
		return qdSingle(c0)
	}
	if s := c0 + c1 + c2 + c3; nonFinite(s) {
		return qdSingle(s)
	}
	for i := 0; i < 2; i++ {
		c2, c3 = eft.TwoSum(c2, c3)
		c1, c2 = eft.TwoSum(c1, c2)
		c0, c1 = eft.TwoSum(c0, c1)
	}
	return renorm4(c0, c1, c2, c3)
}
