package xfloat

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

const ddIterations = 5000

var negZero = math.Copysign(0, -1)

func TestDDFromInt64(t *testing.T) {
	for idx, v := range []int64{
		0, 1, -1, 1 << 53, 1<<53 + 1, -(1<<53 + 1), 1<<62 + 12345,
		math.MaxInt64, math.MinInt64, math.MinInt64 + 1,
	} {
		t.Run(fmt.Sprintf("%d/%d", idx, v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			d := DDFromInt64(v)
			tt.MustAssert(isDDNormal(d))
			b, ok := d.AsBigInt()
			tt.MustAssert(ok)
			tt.MustEqual(big.NewInt(v).String(), b.String())

			back, inRange := d.Int64()
			tt.MustAssert(inRange)
			tt.MustEqual(v, back)

			q, inRange := QDFromInt64(v).Int64()
			tt.MustAssert(inRange)
			tt.MustEqual(v, q)
		})
	}
}

func TestDDFromParts(t *testing.T) {
	for idx, tc := range []struct {
		hi, lo   float64
		out      DD
		signbitZ bool
	}{
		{1, 1, DD{hi: 2}, false},
		{1e-20, 1, DD{hi: 1, lo: 1e-20}, false},
		{1, math.Ldexp(1, -53), DD{hi: 1, lo: math.Ldexp(1, -53)}, false},
		{1, math.Ldexp(3, -53), DD{hi: 1 + math.Ldexp(1, -51), lo: -math.Ldexp(1, -53)}, false},
		{negZero, 0, DD{hi: negZero}, true},
		{math.Inf(1), 1, DD{hi: math.Inf(1)}, false},
		{math.Inf(1), math.Inf(-1), DD{hi: math.NaN()}, false},
	} {
		t.Run(fmt.Sprintf("%d/%v+%v", idx, tc.hi, tc.lo), func(t *testing.T) {
			tt := assert.WrapTB(t)
			d := DDFromParts(tc.hi, tc.lo)
			if math.IsNaN(tc.out.hi) {
				tt.MustAssert(d.IsNaN())
				tt.MustEqual(0.0, d.lo)
				return
			}
			tt.MustEqual(tc.out, d)
			tt.MustEqual(tc.signbitZ, d.IsZero() && d.Signbit())
		})
	}
}

func TestDDRenormIdempotent(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < ddIterations; i++ {
		hi := globalRNG.NormFloat64() * math.Ldexp(1, globalRNG.Intn(200)-100)
		lo := globalRNG.NormFloat64() * math.Ldexp(1, globalRNG.Intn(200)-100)
		d := DDFromParts(hi, lo)
		tt.MustAssert(isDDNormal(d), "%v+%v -> (%v, %v)", hi, lo, d.hi, d.lo)
		tt.MustEqual(d, d.Renorm())
		tt.MustEqual(0, d.AsBigFloat().Cmp(exactSum(hi, lo)))
	}
}

func TestDDAddCommutes(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < ddIterations; i++ {
		a := RandDD(globalRNG).Ldexp(globalRNG.Intn(40) - 20)
		b := RandDD(globalRNG).Ldexp(globalRNG.Intn(40) - 20).Neg()
		tt.MustEqual(a.Add(b), b.Add(a))
		tt.MustEqual(a.Sub(b), b.Sub(a).Neg())
	}
}

func TestDDFloatOps(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < ddIterations; i++ {
		a := RandDD(globalRNG).AddFloat(0.5)
		v := globalRNG.Float64() + 0.25
		ab, vb := a.AsBigFloat(), new(big.Float).SetFloat64(v)

		tt.MustOK(checkRel(a.AddFloat(v).AsBigFloat(), newRef().Add(ab, vb), ddArithLimit))
		tt.MustOK(checkRel(a.SubFloat(v).AsBigFloat(), newRef().Sub(ab, vb), 1e-29))
		tt.MustOK(checkRel(a.MulFloat(v).AsBigFloat(), newRef().Mul(ab, vb), ddArithLimit))
		tt.MustOK(checkRel(a.DivFloat(v).AsBigFloat(), newRef().Quo(ab, vb), ddArithLimit))
		tt.MustOK(checkRel(a.Recip().AsBigFloat(), newRef().Quo(big.NewFloat(1), ab), ddArithLimit))
	}
}

func TestDDCbrt(t *testing.T) {
	for idx, tc := range []struct {
		in   float64
		want string
	}{
		{27, "3"},
		{-8, "-2"},
		{2, "1.2599210498948731647672106072782283505702514647015079800819751121553"},
		{1e-300, "1.000000000000000008353030611736253158792261868631644555152960841387035e-100"},
		{5e307, "3.684031498640386619262228245725034894403379122402883860727918773248247e102"},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustOK(checkRel(DDFrom64(tc.in).Cbrt().AsBigFloat(), bigf(tc.want), 1e-30))
			tt.MustOK(checkRel(QDFrom64(tc.in).Cbrt().AsBigFloat(), bigf(tc.want), 1e-60))
		})
	}
}

func TestDDSqrtExponentRange(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < ddIterations; i++ {
		d := RandDD(globalRNG).AddFloat(0.5).Ldexp(globalRNG.Intn(2000) - 1000)
		want := newRef().Sqrt(d.AsBigFloat())
		tt.MustOK(checkRel(d.Sqrt().AsBigFloat(), want, ddArithLimit))
	}

	tt.MustOK(checkRel(DDFrom64(1e-300).Sqrt().AsBigFloat(),
		bigf("1.00000000000000001252954591760437976435331295317356317150955925231131934634e-150"), ddArithLimit))
	tt.MustOK(checkRel(DDFrom64(1e300).Sqrt().AsBigFloat(),
		bigf("1.00000000000000002625238012760220977975850310849237145835942488368465141433e150"), ddArithLimit))
	tt.MustAssert(DDFrom64(0x1p-1074).Sqrt().Equal64(0x1p-537))
	tt.MustAssert(DDFrom64(0x1p-1000).Sqrt().Equal64(0x1p-500))
	tt.MustAssert(DDFrom64(4).Sqrt().Equal64(2))
}

func TestDDSignedZero(t *testing.T) {
	tt := assert.WrapTB(t)
	nz := DDFrom64(negZero)

	tt.MustAssert(nz.Add(nz).Signbit())
	tt.MustAssert(nz.Sub(DDFrom64(0)).Signbit())
	tt.MustAssert(!nz.Add(DDFrom64(0)).Signbit())
	tt.MustAssert(nz.AddFloat(negZero).Signbit())
	tt.MustAssert(nz.Sqrt().Signbit())
	tt.MustAssert(nz.Cbrt().Signbit())
	tt.MustAssert(DDFrom64(0).Neg().Signbit())
	tt.MustAssert(DDFrom64(-1).Mul(DDFrom64(0)).Signbit())
	tt.MustAssert(nz.Equal(DDFrom64(0)))
	tt.MustEqual(0, nz.Cmp(DDFrom64(0)))
	tt.MustEqual(0, nz.Sign())
	tt.MustAssert(!nz.Abs().Signbit())
	tt.MustEqual("-0", nz.String())
}

func TestDDNonFinite(t *testing.T) {
	inf := DDFrom64(math.Inf(1))
	one := DDFrom64(1)
	zero := DDFrom64(0)
	huge := DDFrom64(1e300)

	for idx, tc := range []struct {
		name string
		in   DD
		want float64
	}{
		{"inf+1", inf.Add(one), math.Inf(1)},
		{"1-inf", one.Sub(inf), math.Inf(-1)},
		{"inf-inf", inf.Sub(inf), math.NaN()},
		{"huge*huge", huge.Mul(huge), math.Inf(1)},
		{"huge*-huge", huge.Mul(huge.Neg()), math.Inf(-1)},
		{"huge²", huge.Sqr(), math.Inf(1)},
		{"1/0", one.Div(zero), math.Inf(1)},
		{"1/-0", one.Div(DDFrom64(negZero)), math.Inf(-1)},
		{"0/0", zero.Div(zero), math.NaN()},
		{"inf/inf", inf.Div(inf), math.NaN()},
		{"1/inf", one.Div(inf), 0},
		{"recip(0)", zero.Recip(), math.Inf(1)},
		{"1/0 float", one.DivFloat(0), math.Inf(1)},
		{"sqrt(inf)", inf.Sqrt(), math.Inf(1)},
		{"sqrt(nan)", DDFrom64(math.NaN()).Sqrt(), math.NaN()},
		{"cbrt(-inf)", inf.Neg().Cbrt(), math.Inf(-1)},
		{"inf*0", inf.MulFloat(0), math.NaN()},
		{"max+max", DDFrom64(math.MaxFloat64).AddFloat(math.MaxFloat64), math.Inf(1)},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(t *testing.T) {
			tt := assert.WrapTB(t)
			if math.IsNaN(tc.want) {
				tt.MustAssert(tc.in.IsNaN(), "got %v", tc.in)
			} else {
				tt.MustEqual(tc.want, tc.in.hi)
			}
			tt.MustEqual(0.0, tc.in.lo)
		})
	}
}

func TestDDDivOrZero(t *testing.T) {
	tt := assert.WrapTB(t)
	one := DDFrom64(1)
	tt.MustEqual(DD{}, one.DivOrZero(DDFrom64(0)))
	tt.MustEqual(DD{}, one.DivOrZero(DDFrom64(negZero)))
	tt.MustEqual(DD{}, DDFrom64(0).DivOrZero(DDFrom64(0)))
	tt.MustAssert(one.Div(DDFrom64(0)).IsInf(1))

	for i := 0; i < 100; i++ {
		a, b := RandDD(globalRNG), RandDD(globalRNG).AddFloat(1)
		tt.MustEqual(a.Div(b), a.DivOrZero(b))
	}
}

func TestDDComparisons(t *testing.T) {
	a := DDFromParts(1, math.Ldexp(1, -60))
	b := DDFromParts(1, -math.Ldexp(1, -60))
	for idx, tc := range []struct {
		a, b DD
		cmp  int
	}{
		{a, b, 1},
		{b, a, -1},
		{a, a, 0},
		{DDFrom64(1), a, -1},
		{DDFrom64(1), b, 1},
		{DDFrom64(0), DDFrom64(negZero), 0},
		{DDFrom64(-2), a, -1},
		{DDFrom64(math.Inf(-1)), b, -1},
		{DDFrom64(math.NaN()), a, 0},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.cmp, tc.a.Cmp(tc.b))
			tt.MustEqual(tc.cmp < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.cmp > 0, tc.a.GreaterThan(tc.b))
			if !tc.a.IsNaN() {
				tt.MustEqual(tc.cmp <= 0, tc.a.LessOrEqualTo(tc.b))
				tt.MustEqual(tc.cmp >= 0, tc.a.GreaterOrEqualTo(tc.b))
				tt.MustEqual(tc.cmp == 0, tc.a.Equal(tc.b))
			}
		})
	}

	tt := assert.WrapTB(t)
	tt.MustAssert(DDFrom64(3).Equal64(3))
	tt.MustAssert(!a.Equal64(1))
	tt.MustAssert(DDFrom64(0).Equal64(negZero))
	tt.MustEqual(a, LargerDD(a, b))
	tt.MustEqual(b, SmallerDD(a, b))
	tt.MustAssert(DifferenceDD(b, a).Equal64(math.Ldexp(1, -59)))
}

func TestDDClassify(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(DDFrom64(1).IsNormal())
	tt.MustAssert(!DDFrom64(0).IsNormal())
	tt.MustAssert(DDFrom64(5e-324).IsSubnormal())
	tt.MustAssert(!DDFrom64(math.Inf(1)).IsNormal())
	tt.MustAssert(!DDFrom64(math.Inf(-1)).IsFinite())
	tt.MustAssert(DDFrom64(math.Inf(-1)).IsInf(-1))
	tt.MustAssert(!DDFrom64(math.Inf(-1)).IsInf(1))
	tt.MustAssert(DDFrom64(math.NaN()).IsNaN())
	tt.MustEqual(-1, DDFrom64(-3).Sign())
}

func TestDDRounding(t *testing.T) {
	const p60 = 1 << 60
	for idx, tc := range []struct {
		in                                   DD
		floor, ceil, trunc, round, roundEven string
	}{
		{DDFrom64(2.5), "2", "3", "2", "3", "2"},
		{DDFrom64(3.5), "3", "4", "3", "4", "4"},
		{DDFrom64(-2.5), "-3", "-2", "-2", "-3", "-2"},
		{DDFrom64(-0.3), "-1", "-0", "-0", "-0", "-0"},
		{DDFromParts(2.5, -1e-20), "2", "3", "2", "2", "2"},
		{DDFromParts(2.5, 1e-20), "2", "3", "2", "3", "3"},
		{DDFromParts(-2.5, 1e-20), "-3", "-2", "-2", "-2", "-2"},
		{DDFromParts(p60, 0.5), "1152921504606846976", "1152921504606846977", "1152921504606846976", "1152921504606846977", "1152921504606846976"},
		{DDFromParts(p60, -0.5), "1152921504606846975", "1152921504606846976", "1152921504606846975", "1152921504606846976", "1152921504606846976"},
		{DDFromParts(p60, 1.5), "1152921504606846977", "1152921504606846978", "1152921504606846977", "1152921504606846978", "1152921504606846978"},
		{DDFromParts(p60, -1.5), "1152921504606846974", "1152921504606846975", "1152921504606846974", "1152921504606846975", "1152921504606846974"},
		{DDFromParts(-p60, 0.5), "-1152921504606846976", "-1152921504606846975", "-1152921504606846975", "-1152921504606846976", "-1152921504606846976"},
		{DDFromParts(-p60, 2.25), "-1152921504606846974", "-1152921504606846973", "-1152921504606846973", "-1152921504606846974", "-1152921504606846974"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			check := func(name string, got DD, want string) {
				t.Helper()
				w := dds(want)
				tt.MustAssert(got.Equal(w) && got.Signbit() == w.Signbit(), "%s: %v != %v", name, got, w)
				tt.MustAssert(isDDNormal(got), "%s: (%v, %v)", name, got.hi, got.lo)
			}
			check("floor", tc.in.Floor(), tc.floor)
			check("ceil", tc.in.Ceil(), tc.ceil)
			check("trunc", tc.in.Trunc(), tc.trunc)
			check("round", tc.in.Round(), tc.round)
			check("roundEven", tc.in.RoundToEven(), tc.roundEven)
			check("rint", tc.in.Rint(), tc.roundEven)

			q := tc.in.QD()
			check("qd floor", q.Floor().DD(), tc.floor)
			check("qd ceil", q.Ceil().DD(), tc.ceil)
			check("qd round", q.Round().DD(), tc.round)
			check("qd roundEven", q.RoundToEven().DD(), tc.roundEven)
		})
	}
}

func TestDDInt64(t *testing.T) {
	for idx, tc := range []struct {
		in      DD
		out     int64
		inRange bool
	}{
		{DDFrom64(-3.7), -3, true},
		{DDFrom64(3.7), 3, true},
		{dds("9223372036854775807"), math.MaxInt64, true},
		{dds("9223372036854775807.9"), math.MaxInt64, true},
		{dds("9223372036854775808"), math.MaxInt64, false},
		{dds("-9223372036854775808"), math.MinInt64, true},
		{dds("-9223372036854775808.5"), math.MinInt64, true},
		{dds("-9223372036854775809"), math.MinInt64, false},
		{DDFrom64(1e30), math.MaxInt64, false},
		{DDFrom64(-1e30), math.MinInt64, false},
		{DDFrom64(math.Inf(1)), math.MaxInt64, false},
		{DDFrom64(math.NaN()), 0, false},
		{DDFromParts(1<<60, -0.5), 1<<60 - 1, true},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, inRange := tc.in.Int64()
			tt.MustEqual(tc.out, out)
			tt.MustEqual(tc.inRange, inRange)
		})
	}
}

func TestDDLdexpFrexp(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 1000; i++ {
		d := RandDD(globalRNG).AddFloat(1e-3).Ldexp(globalRNG.Intn(2000) - 1000)
		frac, exp := d.Frexp()
		tt.MustAssert(math.Abs(frac.hi) >= 0.5 && math.Abs(frac.hi) < 1)
		tt.MustEqual(d, frac.Ldexp(exp))
	}
	frac, exp := DDFrom64(0).Frexp()
	tt.MustAssert(frac.IsZero())
	tt.MustEqual(0, exp)
}

func TestDDString(t *testing.T) {
	for idx, tc := range []struct {
		in  DD
		out string
	}{
		{DDFrom64(0), "0"},
		{DDFrom64(0.1), "0.1"},
		{DDFrom64(-1.5e300), "-1.5e+300"},
		{DDFrom64(math.Inf(1)), "+Inf"},
		{DDFrom64(math.Inf(-1)), "-Inf"},
		{DDFrom64(math.NaN()), "NaN"},
		{DDFromParts(1<<53, 1), "9007199254740993"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.String())
		})
	}
}

func TestDDStringRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, d := range []DD{
		DDFrom64(1).Div(DDFrom64(3)),
		PiDD,
		PiDD.Ldexp(-1000),
		EDD.Ldexp(1000).Neg(),
		DDFromParts(1, math.Ldexp(1, -1000)),
		DDFromParts(math.Ldexp(1, 900), math.Ldexp(1, -900)),
		DDFrom64(5e-324),
	} {
		back, err := DDFromString(d.String())
		tt.MustOK(err)
		tt.MustEqual(d, back, "%s", d.String())
	}
}

func TestDDFromString(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out DD
		ok  bool
	}{
		{"0.125", DDFrom64(0.125), true},
		{"  42 ", DDFrom64(42), true},
		{"0x1p-3", DDFrom64(0.125), true},
		{"-inf", DDFrom64(math.Inf(-1)), true},
		{"+Inf", DDFrom64(math.Inf(1)), true},
		{"1e400", DDFrom64(math.Inf(1)), true},
		{"1e-400", DDFrom64(0), true},
		{"9007199254740993", DDFromParts(1<<53, 1), true},
		{"", DD{}, false},
		{"abc", DD{}, false},
		{"1.2.3", DD{}, false},
		{"1e", DD{}, false},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := DDFromString(tc.in)
			if !tc.ok {
				tt.MustAssert(err != nil)
				return
			}
			tt.MustOK(err)
			tt.MustEqual(tc.out, out)
		})
	}

	tt := assert.WrapTB(t)
	nan, err := DDFromString("NaN")
	tt.MustOK(err)
	tt.MustAssert(nan.IsNaN())
}

func TestDDFromBigFloat(t *testing.T) {
	tt := assert.WrapTB(t)

	d, exact := DDFromBigFloat(bigf("0.5"))
	tt.MustAssert(exact)
	tt.MustEqual(DDFrom64(0.5), d)

	d, exact = DDFromBigFloat(bigf("0.1"))
	tt.MustAssert(!exact)
	tt.MustOK(checkRel(d.AsBigFloat(), bigf("0.1"), 1e-32))

	_, exact = DDFromBigFloat(new(big.Float).SetInf(true))
	tt.MustAssert(exact)

	tt.MustAssert(DDFrom64(math.NaN()).AsBigFloat() == nil)
	_, ok := DDFrom64(math.Inf(1)).AsBigInt()
	tt.MustAssert(!ok)
}

func TestDDFormat(t *testing.T) {
	for idx, tc := range []struct {
		in  DD
		f   string
		out string
	}{
		{DDFrom64(0.5), "%v", "0.5"},
		{DDFrom64(0.5), "%s", "0.5"},
		{PiDD, "%.5f", "3.14159"},
		{PiDD, "%.30f", "3.141592653589793238462643383280"},
		{PiDD, "%.3e", "3.142e+00"},
		{DDFrom64(2), "%6v", "     2"},
		{DDFrom64(2), "%-6s|", "2     |"},
		{DDFrom64(math.Inf(-1)), "%.3f", "-Inf"},
		{DDFrom64(math.NaN()), "%g", "NaN"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.f), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.f, tc.in))
		})
	}
}

func TestDDJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	type wrapper struct {
		V DD `json:"v"`
	}
	bts, err := json.Marshal(wrapper{V: DDFromParts(1<<53, 1)})
	tt.MustOK(err)
	tt.MustEqual(`{"v":"9007199254740993"}`, string(bts))

	var w wrapper
	tt.MustOK(json.Unmarshal([]byte(`{"v":"1.5"}`), &w))
	tt.MustEqual(DDFrom64(1.5), w.V)

	tt.MustOK(json.Unmarshal([]byte(`{"v":2.25}`), &w))
	tt.MustEqual(DDFrom64(2.25), w.V)

	tt.MustAssert(json.Unmarshal([]byte(`{"v":"bork"}`), &w) != nil)

	txt, err := PiDD.MarshalText()
	tt.MustOK(err)
	var d DD
	tt.MustOK(d.UnmarshalText(txt))
	tt.MustEqual(PiDD, d)
}
