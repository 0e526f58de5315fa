/*
Package xfloat provides double-double (DD) and quad-double (QD) floating point
types, built from unevaluated sums of float64 values using error-free
transformations. DD carries roughly 106 bits of mantissa and QD roughly 212,
both with the exponent range of a float64.

DD and QD are value types; all operations return new values.

Simple example:

	x := DDFromInt64(1 << 53).AddFloat(1)
	fmt.Println(x, x.Float64())
	// Output: 9007199254740993 9.007199254740992e+15

DD can be created from a variety of sources:

	DDFrom64(v float64) DD
	DDFrom32(v float32) DD
	DDFromInt64(v int64) DD
	DDFromRaw(hi, lo float64) DD
	DDFromParts(hi, lo float64) DD
	DDFromBits(hi, lo uint64) DD
	DDFromString(s string) (out DD, err error)
	DDFromBigFloat(f *big.Float) (out DD, exact bool)

QD can be created from a variety of sources:

	QDFrom64(v float64) QD
	QDFromInt64(v int64) QD
	QDFromDD(d DD) QD
	QDFromRaw(c0, c1, c2, c3 float64) QD
	QDFromParts(c0, c1, c2, c3 float64) QD
	QDFromBits(bits [4]uint64) QD
	QDFromString(s string) (out QD, err error)
	QDFromBigFloat(f *big.Float) (out QD, exact bool)

QD arithmetic comes in two modes. The methods on QD use Quick; Arith selects
a mode explicitly:

	acc := Arith{Mode: Accurate}
	z := acc.Div(x, y)

Both types implement the elementary functions (Exp, Log, Pow, Sin, Atan2,
Tanh and so on) as methods. Non-finite values are carried in the leading
component alone, and follow the float64 conventions of the math package.

The low-level error-free transformations (TwoSum, TwoProd and friends) live in
the eft subpackage.

DD and QD support the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package xfloat

//go:generate go run ./misc -out consts.go
