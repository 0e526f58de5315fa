package xfloat

// Exp returns e^d. It returns +Inf above about 709.78 and 0 below about
// -745.13.
func (d DD) Exp() DD { return ddKit.exp(d) }

// Expm1 returns e^d - 1, accurate for d near zero.
func (d DD) Expm1() DD { return ddKit.expm1(d) }

// Exp2 returns 2^d.
func (d DD) Exp2() DD { return ddKit.exp2(d) }

// Exp10 returns 10^d.
func (d DD) Exp10() DD { return ddKit.exp10(d) }

// Log returns the natural logarithm of d. Log(0) is -Inf and negative
// arguments give NaN.
func (d DD) Log() DD { return ddKit.log(d) }

// Log1p returns the natural logarithm of 1+d, accurate for d near zero.
func (d DD) Log1p() DD { return ddKit.log1p(d) }

// Log2 returns the binary logarithm of d. Exact powers of two give exact
// results.
func (d DD) Log2() DD { return ddKit.log2(d) }

func (d DD) Log10() DD { return ddKit.log10(d) }

// Pow returns d^e, with the special cases of math.Pow.
func (d DD) Pow(e DD) DD { return ddKit.pow(d, e) }

// PowInt returns d^n by repeated squaring.
func (d DD) PowInt(n int) DD { return ddKit.powInt(d, n) }

// Nroot returns the n'th root of d. Even roots of negative numbers and
// n <= 0 give NaN.
func (d DD) Nroot(n int) DD { return ddKit.nroot(d, n) }

// Sin returns the sine of the radian argument d.
//
// The argument is reduced modulo 2π, then π/2, then π/16, so the accuracy
// of the result degrades for large arguments as the reduction runs out of
// precision in π. Arguments beyond about 4e30, where none is left, give NaN,
// as do infinities.
func (d DD) Sin() DD { return ddKit.sin(d) }

func (d DD) Cos() DD { return ddKit.cos(d) }

// Sincos returns Sin(d), Cos(d), sharing the argument reduction.
func (d DD) Sincos() (sin, cos DD) { return ddKit.sincos(d) }

func (d DD) Tan() DD { return ddKit.tan(d) }

// Asin returns the arcsine of d in [-π/2, π/2]. |d| > 1 gives NaN.
func (d DD) Asin() DD { return ddKit.asin(d) }

// Acos returns the arccosine of d in [0, π]. |d| > 1 gives NaN.
func (d DD) Acos() DD { return ddKit.acos(d) }

func (d DD) Atan() DD { return ddKit.atan(d) }

// Atan2 returns the arc tangent of d/x, using the signs of both to pick the
// quadrant, with d as the y coordinate. Unlike math.Atan2, Atan2 of two
// zeros is NaN.
func (d DD) Atan2(x DD) DD { return ddKit.atan2(d, x) }

func (d DD) Sinh() DD { return ddKit.sinh(d) }
func (d DD) Cosh() DD { return ddKit.cosh(d) }

// Tanh returns the hyperbolic tangent of d. It is exactly ±1 for |d| > 350.
func (d DD) Tanh() DD { return ddKit.tanh(d) }

// Sincosh returns Sinh(d), Cosh(d), sharing one call to Exp.
func (d DD) Sincosh() (sinh, cosh DD) { return ddKit.sincosh(d) }

func (d DD) Asinh() DD { return ddKit.asinh(d) }

// Acosh returns the inverse hyperbolic cosine of d. d < 1 gives NaN.
func (d DD) Acosh() DD { return ddKit.acosh(d) }

// Atanh returns the inverse hyperbolic tangent of d. |d| >= 1 gives NaN.
func (d DD) Atanh() DD { return ddKit.atanh(d) }

// Hypot returns Sqrt(d*d + x*x) without overflow or underflow in the
// squares.
func (d DD) Hypot(x DD) DD { return ddKit.hypot(d, x) }
