package xfloat

import (
	"math/big"
	"testing"
)

var (
	BenchBigFloatResult *big.Float
	BenchBoolResult     bool
	BenchDDResult       DD
	BenchFloatResult    float64
	BenchIntResult      int
	BenchQDResult       QD
	BenchStringResult   string

	BenchFloat1, BenchFloat2 float64 = 1.2093749018, 0.18927348917

	BenchDD1 = DDFromParts(1.2093749018, 1.1e-17)
	BenchDD2 = DDFromParts(0.18927348917, -3.7e-18)

	BenchQD1 = QDFromParts(1.2093749018, 1.1e-17, 2.3e-34, -4.1e-51)
	BenchQD2 = QDFromParts(0.18927348917, -3.7e-18, 5.9e-35, 6.7e-52)
)

func BenchmarkFloat64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchFloat1 * BenchFloat2
	}
}

func BenchmarkFloat64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchFloat1 / BenchFloat2
	}
}

func BenchmarkDDAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = BenchDD1.Add(BenchDD2)
	}
}

func BenchmarkDDMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = BenchDD1.Mul(BenchDD2)
	}
}

func BenchmarkDDDiv(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = BenchDD1.Div(BenchDD2)
	}
}

func BenchmarkDDSqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = BenchDD1.Sqrt()
	}
}

func BenchmarkDDExp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = BenchDD1.Exp()
	}
}

func BenchmarkDDSin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = BenchDD1.Sin()
	}
}

func BenchmarkDDCmp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult = BenchDD1.Cmp(BenchDD2)
	}
}

func BenchmarkDDString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult = BenchDD1.String()
	}
}

func BenchmarkQDAdd(b *testing.B) {
	for _, mode := range []Mode{Quick, Accurate} {
		b.Run(mode.String(), func(b *testing.B) {
			ar := Arith{Mode: mode}
			for i := 0; i < b.N; i++ {
				BenchQDResult = ar.Add(BenchQD1, BenchQD2)
			}
		})
	}
}

func BenchmarkQDMul(b *testing.B) {
	for _, mode := range []Mode{Quick, Accurate} {
		b.Run(mode.String(), func(b *testing.B) {
			ar := Arith{Mode: mode}
			for i := 0; i < b.N; i++ {
				BenchQDResult = ar.Mul(BenchQD1, BenchQD2)
			}
		})
	}
}

func BenchmarkQDDiv(b *testing.B) {
	for _, mode := range []Mode{Quick, Accurate} {
		b.Run(mode.String(), func(b *testing.B) {
			ar := Arith{Mode: mode}
			for i := 0; i < b.N; i++ {
				BenchQDResult = ar.Div(BenchQD1, BenchQD2)
			}
		})
	}
}

func BenchmarkQDSqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchQDResult = BenchQD1.Sqrt()
	}
}

func BenchmarkQDExp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchQDResult = BenchQD1.Exp()
	}
}

func BenchmarkQDSin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchQDResult = BenchQD1.Sin()
	}
}

func BenchmarkQDEqual(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = BenchQD1.Equal(BenchQD2)
	}
}

func BenchmarkBigFloatMul(b *testing.B) {
	x := new(big.Float).SetPrec(212).SetFloat64(BenchFloat1)
	y := new(big.Float).SetPrec(212).SetFloat64(BenchFloat2)

	for i := 0; i < b.N; i++ {
		var dest big.Float
		dest.SetPrec(212)
		BenchBigFloatResult = dest.Mul(x, y)
	}
}

func BenchmarkBigFloatQuo(b *testing.B) {
	x := new(big.Float).SetPrec(212).SetFloat64(BenchFloat1)
	y := new(big.Float).SetPrec(212).SetFloat64(BenchFloat2)

	for i := 0; i < b.N; i++ {
		var dest big.Float
		dest.SetPrec(212)
		BenchBigFloatResult = dest.Quo(x, y)
	}
}
