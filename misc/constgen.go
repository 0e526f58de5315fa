package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"math/big"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// Generates consts.go. Every constant is computed from scratch with math/big
// at a precision far beyond a QD and then split greedily into the nearest
// float64 components, so DD and QD values are both correctly rounded.

const usage = `Constant generator

Usage: constgen [-out <file>] [-dump]

With no -out, the Go source is written to stdout.`

const prec = 1024

type constant struct {
	Name  string
	Value *big.Float
	DD    [2]float64
	QD    [4]float64
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var out string
	var dump bool

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.StringVar(&out, "out", "", "Output file")
	flag.BoolVar(&dump, "dump", false, "Dump the computed components to stderr")
	flag.Parse()

	pi := computePi()
	ln2 := mulInt(atanhInv(3), 2)
	ln10 := newf().Add(mulInt(ln2, 3), mulInt(atanhInv(9), 2))
	sqrt5 := newf().Sqrt(newf().SetInt64(5))

	named := []*constant{
		{Name: "Pi", Value: pi},
		{Name: "TwoPi", Value: mulInt(pi, 2)},
		{Name: "HalfPi", Value: quoInt(pi, 2)},
		{Name: "QuarterPi", Value: quoInt(pi, 4)},
		{Name: "ThreeQuarterPi", Value: quoInt(mulInt(pi, 3), 4)},
		{Name: "InvPi", Value: newf().Quo(newf().SetInt64(1), pi)},
		{Name: "E", Value: computeE()},
		{Name: "Ln2", Value: ln2},
		{Name: "Ln10", Value: ln10},
		{Name: "Log2E", Value: newf().Quo(newf().SetInt64(1), ln2)},
		{Name: "Log10E", Value: newf().Quo(newf().SetInt64(1), ln10)},
		{Name: "Sqrt2", Value: newf().Sqrt(newf().SetInt64(2))},
		{Name: "Sqrt3", Value: newf().Sqrt(newf().SetInt64(3))},
		{Name: "Sqrt1_2", Value: newf().Sqrt(newf().SetFloat64(0.5))},
		{Name: "Phi", Value: quoInt(newf().Add(sqrt5, newf().SetInt64(1)), 2)},
		{Name: "EulerGamma", Value: computeEulerGamma(ln2, ln10)},
	}

	var sines, cosines []*constant
	for k := int64(1); k <= 4; k++ {
		x := quoInt(mulInt(pi, k), 16)
		s, c := sinCos(x)
		sines = append(sines, &constant{Name: fmt.Sprintf("sin(%dπ/16)", k), Value: s})
		cosines = append(cosines, &constant{Name: fmt.Sprintf("cos(%dπ/16)", k), Value: c})
	}
	pi16 := &constant{Name: "pi16", Value: quoInt(pi, 16)}

	all := append(append(append([]*constant{}, named...), sines...), cosines...)
	all = append(all, pi16)
	for _, c := range all {
		c.split()
	}

	if dump {
		spew.Fdump(os.Stderr, all)
	}

	src, err := render(named, sines, cosines, pi16)
	if err != nil {
		return err
	}
	if out == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(out, src, 0644)
}

func newf() *big.Float { return new(big.Float).SetPrec(prec) }

func mulInt(x *big.Float, n int64) *big.Float {
	return newf().Mul(x, newf().SetInt64(n))
}

func quoInt(x *big.Float, n int64) *big.Float {
	return newf().Quo(x, newf().SetInt64(n))
}

// negligible reports whether t can no longer affect a sum of order one.
func negligible(t *big.Float) bool {
	return t.Sign() == 0 || t.MantExp(nil) < -(prec+16)
}

// atanInv returns atan(1/n).
func atanInv(n int64) *big.Float {
	sum := newf()
	nn := newf().SetInt64(n * n)
	pow := quoInt(newf().SetInt64(1), n)
	for k := int64(0); ; k++ {
		term := quoInt(pow, 2*k+1)
		if negligible(term) {
			return sum
		}
		if k%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
		pow.Quo(pow, nn)
	}
}

// atanhInv returns atanh(1/n).
func atanhInv(n int64) *big.Float {
	sum := newf()
	nn := newf().SetInt64(n * n)
	pow := quoInt(newf().SetInt64(1), n)
	for k := int64(0); ; k++ {
		term := quoInt(pow, 2*k+1)
		if negligible(term) {
			return sum
		}
		sum.Add(sum, term)
		pow.Quo(pow, nn)
	}
}

// computePi uses Machin's formula, π = 16 atan(1/5) - 4 atan(1/239).
func computePi() *big.Float {
	return newf().Sub(mulInt(atanInv(5), 16), mulInt(atanInv(239), 4))
}

func computeE() *big.Float {
	sum := newf().SetInt64(1)
	term := newf().SetInt64(1)
	for k := int64(1); !negligible(term); k++ {
		term.Quo(term, newf().SetInt64(k))
		sum.Add(sum, term)
	}
	return sum
}

// computeEulerGamma uses the Brent-McMillan formula with n = 80:
//
//	γ = Σ a_k H_k / Σ a_k - ln n, where a_k = (n^k / k!)².
//
// The truncation error is of order e^(-4n), far below 2^-212.
func computeEulerGamma(ln2, ln10 *big.Float) *big.Float {
	const n = 80
	a := newf().SetInt64(1)
	h := newf()
	num, den := newf(), newf().SetInt64(1)
	for k := int64(1); k < 400; k++ {
		a = quoInt(mulInt(a, n), k)
		h.Add(h, quoInt(newf().SetInt64(1), k))
		t := newf().Mul(a, a)
		num.Add(num, newf().Mul(t, h))
		den.Add(den, t)
	}

	// ln 80 = 4 ln 2 + ln 5 = 3 ln 2 + ln 10
	lnN := newf().Add(mulInt(ln2, 3), ln10)
	return newf().Sub(newf().Quo(num, den), lnN)
}

func sinCos(x *big.Float) (sin, cos *big.Float) {
	x2 := newf().Mul(x, x)

	sin = newf()
	term := newf().Set(x)
	for k := int64(1); !negligible(term); k += 2 {
		sin.Add(sin, term)
		term = quoInt(newf().Neg(newf().Mul(term, x2)), (k+1)*(k+2))
	}

	cos = newf()
	term = newf().SetInt64(1)
	for k := int64(0); !negligible(term); k += 2 {
		cos.Add(cos, term)
		term = quoInt(newf().Neg(newf().Mul(term, x2)), (k+1)*(k+2))
	}
	return sin, cos
}

// split peels off the nearest float64 to what remains of the value, four
// times. The first two components are the nearest DD.
func (c *constant) split() {
	r := newf().Set(c.Value)
	for i := range c.QD {
		f, _ := r.Float64()
		c.QD[i] = f
		r.Sub(r, newf().SetFloat64(f))
	}

	r = newf().Set(c.Value)
	for i := range c.DD {
		f, _ := r.Float64()
		c.DD[i] = f
		r.Sub(r, newf().SetFloat64(f))
	}
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (c *constant) ddLit() string {
	return fmt.Sprintf("{hi: %s, lo: %s}", ftoa(c.DD[0]), ftoa(c.DD[1]))
}

func (c *constant) qdLit() string {
	return fmt.Sprintf("{x: [4]float64{%s, %s, %s, %s}}",
		ftoa(c.QD[0]), ftoa(c.QD[1]), ftoa(c.QD[2]), ftoa(c.QD[3]))
}

func render(named, sines, cosines []*constant, pi16 *constant) ([]byte, error) {
	var buf bytes.Buffer
	p := func(format string, args ...interface{}) {
		fmt.Fprintf(&buf, format, args...)
	}

	p("// Code generated by misc/constgen.go; DO NOT EDIT.\n\n")
	p("package xfloat\n\n")
	p("const (\n\tminNormal = %s // 2^-1022\n)\n\n", ftoa(0x1p-1022))

	p("// Mathematical constants rounded to the nearest DD and QD.\n")
	p("var (\n")
	for _, c := range named {
		p("\t%sDD = DD%s\n", c.Name, c.ddLit())
	}
	p("\n")
	for _, c := range named {
		p("\t%sQD = QD%s\n", c.Name, c.qdLit())
	}
	p(")\n\n")

	p("// sin(kπ/16) and cos(kπ/16) for k = 1..4.\n")
	p("var (\n")
	table := func(name, typ string, cs []*constant, lit func(c *constant) string) {
		p("\t%s = [%d]%s{\n", name, len(cs), typ)
		for _, c := range cs {
			p("\t\t%s,\n", lit(c))
		}
		p("\t}\n")
	}
	table("sinTableDD", "DD", sines, (*constant).ddLit)
	table("cosTableDD", "DD", cosines, (*constant).ddLit)
	table("sinTableQD", "QD", sines, (*constant).qdLit)
	table("cosTableQD", "QD", cosines, (*constant).qdLit)
	p(")\n\n")

	p("var (\n")
	p("\tpi16DD = DD%s\n", pi16.ddLit())
	p("\tpi16QD = QD%s\n", pi16.qdLit())
	p(")\n")

	return format.Source(buf.Bytes())
}
