package xfloat

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// exactPrec holds the sum of any set of float64 values exactly: the span
	// from the largest exponent to the smallest subnormal bit is 2098 bits.
	exactPrec = 2200

	ddMinDigits, ddMaxDigits = 32, 40
	qdMinDigits, qdMaxDigits = 63, 72
)

func exactSum(c ...float64) *big.Float {
	f := new(big.Float).SetPrec(exactPrec)
	for _, v := range c {
		if v == 0 {
			continue
		}
		f.Add(f, new(big.Float).SetFloat64(v))
	}
	if f.Sign() == 0 && len(c) > 0 && math.Signbit(c[0]) {
		f.Neg(f)
	}
	return f
}

// splitBig peels n float64 components off f, each the nearest float64 to
// what remains. f is consumed.
func splitBig(f *big.Float, n int) (c [4]float64) {
	for i := 0; i < n; i++ {
		v, _ := f.Float64()
		c[i] = v
		if math.IsInf(v, 0) || v == 0 {
			break
		}
		f.Sub(f, new(big.Float).SetFloat64(v))
	}
	return c
}

// DDFromBigFloat returns the DD nearest to f. If f is not exactly
// representable, exact is false.
func DDFromBigFloat(f *big.Float) (out DD, exact bool) {
	r := new(big.Float).SetPrec(exactPrec).Set(f)
	if r.IsInf() {
		return DD{hi: math.Inf(r.Sign())}, true
	}
	c := splitBig(r, 2)
	if math.IsInf(c[0], 0) {
		return DD{hi: c[0]}, false
	}
	out = ddQuick(c[0], c[1])
	return out, out.AsBigFloat().Cmp(f) == 0
}

// QDFromBigFloat returns the QD nearest to f. If f is not exactly
// representable, exact is false.
func QDFromBigFloat(f *big.Float) (out QD, exact bool) {
	r := new(big.Float).SetPrec(exactPrec).Set(f)
	if r.IsInf() {
		return qdSingle(math.Inf(r.Sign())), true
	}
	c := splitBig(r, 4)
	if math.IsInf(c[0], 0) {
		return qdSingle(c[0]), false
	}
	out = renorm4(c[0], c[1], c[2], c[3])
	return out, out.AsBigFloat().Cmp(f) == 0
}

func parseBig(s string) (*big.Float, bool, error) {
	t := strings.TrimSpace(s)
	switch strings.ToLower(strings.TrimLeft(t, "+-")) {
	case "nan":
		return nil, true, nil
	}
	f, _, err := big.ParseFloat(t, 0, exactPrec, big.ToNearestEven)
	if err != nil {
		return nil, false, err
	}
	return f, false, nil
}

// DDFromString parses s as a decimal or hexadecimal floating-point number,
// as accepted by big.ParseFloat, and rounds it to the nearest DD. "NaN",
// "Inf", "+Inf" and "-Inf" are also accepted.
func DDFromString(s string) (out DD, err error) {
	f, nan, err := parseBig(s)
	if err != nil {
		return out, fmt.Errorf("xfloat: dd string %q invalid: %w", s, err)
	} else if nan {
		return DD{hi: math.NaN()}, nil
	}
	out, _ = DDFromBigFloat(f)
	return out, nil
}

// QDFromString is DDFromString for QD.
func QDFromString(s string) (out QD, err error) {
	f, nan, err := parseBig(s)
	if err != nil {
		return out, fmt.Errorf("xfloat: qd string %q invalid: %w", s, err)
	} else if nan {
		return qdSingle(math.NaN()), nil
	}
	out, _ = QDFromBigFloat(f)
	return out, nil
}

// AsBigFloat returns the exact value of d. NaN has no big.Float
// representation and returns nil.
func (d DD) AsBigFloat() *big.Float {
	if d.IsNaN() {
		return nil
	}
	return exactSum(d.hi, d.lo)
}

// AsBigFloat returns the exact value of q. NaN returns nil.
func (q QD) AsBigFloat() *big.Float {
	if q.IsNaN() {
		return nil
	}
	return exactSum(q.x[0], q.x[1], q.x[2], q.x[3])
}

// AsBigInt returns d truncated towards zero. ok is false for NaN and the
// infinities.
func (d DD) AsBigInt() (b *big.Int, ok bool) {
	if !d.IsFinite() {
		return new(big.Int), false
	}
	b, _ = d.AsBigFloat().Int(nil)
	return b, true
}

// AsBigInt returns q truncated towards zero. ok is false for NaN and the
// infinities.
func (q QD) AsBigInt() (b *big.Int, ok bool) {
	if !q.IsFinite() {
		return new(big.Int), false
	}
	b, _ = q.AsBigFloat().Int(nil)
	return b, true
}

// shortestText returns the shortest 'g' formatting of f with between min and
// max significant digits that parses back to the same value. Components
// separated by a wide gap of zero bits need more digits than max; those
// values are printed in full.
func shortestText(f *big.Float, min, max int, same func(string) bool) string {
	for n := min; n <= max; n++ {
		s := f.Text('g', n)
		if same(s) {
			return s
		}
	}
	return f.Text('g', -1)
}

func nonFiniteText(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String returns the shortest decimal representation of d that DDFromString
// maps back to d.
func (d DD) String() string {
	if !d.IsFinite() {
		return nonFiniteText(d.hi)
	}
	if d.lo == 0 {
		return strconv.FormatFloat(d.hi, 'g', -1, 64)
	}
	return shortestText(d.AsBigFloat(), ddMinDigits, ddMaxDigits, func(s string) bool {
		v, err := DDFromString(s)
		return err == nil && v == d
	})
}

// String returns the shortest decimal representation of q that QDFromString
// maps back to q.
func (q QD) String() string {
	if !q.IsFinite() {
		return nonFiniteText(q.x[0])
	}
	if q.x[1] == 0 {
		return strconv.FormatFloat(q.x[0], 'g', -1, 64)
	}
	return shortestText(q.AsBigFloat(), qdMinDigits, qdMaxDigits, func(s string) bool {
		v, err := QDFromString(s)
		return err == nil && v == q
	})
}

// Format implements fmt.Formatter. %v and %s print String; the float verbs
// are passed to big.Float with the exact value, and %g without an explicit
// precision uses the full precision of the type.
func (d DD) Format(s fmt.State, c rune) {
	formatNumber(s, c, d.String(), d.AsBigFloat(), ddMinDigits)
}

// Format implements fmt.Formatter; see DD.Format.
func (q QD) Format(s fmt.State, c rune) {
	formatNumber(s, c, q.String(), q.AsBigFloat(), qdMinDigits)
}

func formatNumber(s fmt.State, c rune, str string, f *big.Float, digits int) {
	switch c {
	case 'e', 'E', 'f', 'F', 'g', 'G', 'b', 'p', 'x':
		if f != nil {
			fmt.Fprintf(s, formatVerb(s, c, digits, true), f)
			return
		}
		// NaN: a precision would truncate the text.
		fmt.Fprintf(s, formatVerb(s, 's', -1, false), str)
		return
	}
	fmt.Fprintf(s, formatVerb(s, 's', -1, true), str)
}

// formatVerb rebuilds the format directive held in s for verb c. If no
// precision was given and c is 'g' or 'G', defPrec is used. The precision is
// left out entirely unless withPrec is set.
func formatVerb(s fmt.State, c rune, defPrec int, withPrec bool) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, flag := range "+-# 0" {
		if s.Flag(int(flag)) {
			b.WriteRune(flag)
		}
	}
	if w, ok := s.Width(); ok {
		b.WriteString(strconv.Itoa(w))
	}
	if withPrec {
		if p, ok := s.Precision(); ok {
			b.WriteByte('.')
			b.WriteString(strconv.Itoa(p))
		} else if defPrec >= 0 && (c == 'g' || c == 'G') {
			b.WriteByte('.')
			b.WriteString(strconv.Itoa(defPrec))
		}
	}
	b.WriteRune(c)
	return b.String()
}

func (d DD) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DD) UnmarshalText(bts []byte) (err error) {
	v, err := DDFromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d DD) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DD) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts, "dd")
	if err != nil {
		return err
	}
	return d.UnmarshalText(bts)
}

func (q QD) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

func (q *QD) UnmarshalText(bts []byte) (err error) {
	v, err := QDFromString(string(bts))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

func (q QD) MarshalJSON() ([]byte, error) {
	return []byte(`"` + q.String() + `"`), nil
}

func (q *QD) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts, "qd")
	if err != nil {
		return err
	}
	return q.UnmarshalText(bts)
}

// unquoteJSON accepts both quoted strings and bare JSON numbers.
func unquoteJSON(bts []byte, kind string) ([]byte, error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("xfloat: %s invalid JSON %q", kind, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
