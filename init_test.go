package xfloat

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/big"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shabbyrobe/go-xfloat/eft"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzOpsActive   = allFuzzOps
	fuzzTypesActive = allFuzzTypes
	fuzzSeed        int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList
	var types StringList

	flag.IntVar(&fuzzIterations, "xfloat.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "xfloat.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "xfloat.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&types, "xfloat.fuzztype", "Fuzz type (dd, qd, qdacc) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(types) > 0 {
		fuzzTypesActive = nil
		for _, t := range types {
			fuzzTypesActive = append(fuzzTypesActive, fuzzType(t))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("fma:", eft.FMAEnabled())

	code := m.Run()
	os.Exit(code)
}

var trimFloatPattern = regexp.MustCompile(`(\.0+$|(\.\d+[1-9])\0+$)`)

func cleanFloatStr(str string) string {
	return trimFloatPattern.ReplaceAllString(str, "$2")
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// refPrec is comfortably more than a QD holds, so reference results computed
// at this precision are exact for the comparisons made in these tests.
const refPrec = 512

func bigf(s string) *big.Float {
	f, _, err := big.ParseFloat(strings.Replace(s, " ", "", -1), 0, refPrec, big.ToNearestEven)
	if err != nil {
		panic(fmt.Errorf("xfloat: big string %q invalid: %v", s, err))
	}
	return f
}

func dds(s string) DD {
	d, err := DDFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func qds(s string) QD {
	q, err := QDFromString(s)
	if err != nil {
		panic(err)
	}
	return q
}

// relErr returns |got-want|/|want|, or |got| if want is zero.
func relErr(got, want *big.Float) float64 {
	diff := new(big.Float).SetPrec(exactPrec).Sub(got, want)
	diff.Abs(diff)
	if want.Sign() != 0 {
		diff.Quo(diff, new(big.Float).SetPrec(exactPrec).Abs(want))
	}
	v, _ := diff.Float64()
	return v
}

func checkRel(got, want *big.Float, limit float64) error {
	if e := relErr(got, want); e > limit {
		return fmt.Errorf("|x(%s) - big(%s)| = %g, > %g", got.Text('g', 40), want.Text('g', 40), e, limit)
	}
	return nil
}

// isDDNormal reports whether |lo| is no more than half an ulp of hi.
func isDDNormal(d DD) bool {
	if d.lo == 0 || nonFinite(d.hi) {
		return true
	}
	return d.hi+d.lo == d.hi && math.Abs(d.lo) <= halfULP(d.hi)
}

// isQDNormal reports whether every component of q is no more than half an
// ulp of the one above it. Trailing zeros are allowed; a non-zero component
// after a zero is not.
func isQDNormal(q QD) bool {
	if nonFinite(q.x[0]) {
		return q.x[1] == 0 && q.x[2] == 0 && q.x[3] == 0
	}
	for i := 1; i < 4; i++ {
		if q.x[i] == 0 {
			for j := i + 1; j < 4; j++ {
				if q.x[j] != 0 {
					return false
				}
			}
			return true
		}
		if math.Abs(q.x[i]) > halfULP(q.x[i-1]) {
			return false
		}
	}
	return true
}

func halfULP(x float64) float64 {
	x = math.Abs(x)
	return (math.Nextafter(x, math.Inf(1)) - x) / 2
}
