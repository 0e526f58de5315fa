package xfloat

// The QD transcendental functions share their algorithms and special cases
// with the DD ones; see the DD method of the same name. The iterations run
// to QD precision, so each call costs several times its DD counterpart.
// The trigonometric functions give NaN beyond about 1.6e62 instead of 4e30.

func (q QD) Exp() QD                  { return qdKit.exp(q) }
func (q QD) Expm1() QD                { return qdKit.expm1(q) }
func (q QD) Exp2() QD                 { return qdKit.exp2(q) }
func (q QD) Exp10() QD                { return qdKit.exp10(q) }
func (q QD) Log() QD                  { return qdKit.log(q) }
func (q QD) Log1p() QD                { return qdKit.log1p(q) }
func (q QD) Log2() QD                 { return qdKit.log2(q) }
func (q QD) Log10() QD                { return qdKit.log10(q) }
func (q QD) Pow(e QD) QD              { return qdKit.pow(q, e) }
func (q QD) PowInt(n int) QD          { return qdKit.powInt(q, n) }
func (q QD) Nroot(n int) QD           { return qdKit.nroot(q, n) }
func (q QD) Sin() QD                  { return qdKit.sin(q) }
func (q QD) Cos() QD                  { return qdKit.cos(q) }
func (q QD) Sincos() (sin, cos QD)    { return qdKit.sincos(q) }
func (q QD) Tan() QD                  { return qdKit.tan(q) }
func (q QD) Asin() QD                 { return qdKit.asin(q) }
func (q QD) Acos() QD                 { return qdKit.acos(q) }
func (q QD) Atan() QD                 { return qdKit.atan(q) }
func (q QD) Atan2(x QD) QD            { return qdKit.atan2(q, x) }
func (q QD) Sinh() QD                 { return qdKit.sinh(q) }
func (q QD) Cosh() QD                 { return qdKit.cosh(q) }
func (q QD) Tanh() QD                 { return qdKit.tanh(q) }
func (q QD) Sincosh() (sinh, cosh QD) { return qdKit.sincosh(q) }
func (q QD) Asinh() QD                { return qdKit.asinh(q) }
func (q QD) Acosh() QD                { return qdKit.acosh(q) }
func (q QD) Atanh() QD                { return qdKit.atanh(q) }
func (q QD) Hypot(x QD) QD            { return qdKit.hypot(q, x) }
