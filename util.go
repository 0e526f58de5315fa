package xfloat

type RandSource interface {
	Uint64() uint64
}

// randMantissa returns a float64 in [0, 1) built from the top 53 bits of u.
func randMantissa(u uint64) float64 {
	return float64(u>>11) / twoPow53
}

// RandDD returns a random DD in [0, 1) with 106 random mantissa bits.
func RandDD(source RandSource) DD {
	hi := randMantissa(source.Uint64())
	lo := randMantissa(source.Uint64()) / twoPow53
	return DDFromParts(hi, lo)
}

// RandQD returns a random QD in [0, 1) with 212 random mantissa bits.
func RandQD(source RandSource) QD {
	var c [4]float64
	scale := 1.0
	for i := range c {
		c[i] = randMantissa(source.Uint64()) * scale
		scale /= twoPow53
	}
	return distill(c[0], c[1], c[2], c[3])
}

// DifferenceDD subtracts the smaller of a and b from the larger.
func DifferenceDD(a, b DD) DD {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerDD(a, b DD) DD {
	if a.LessThan(b) {
		return b
	}
	return a
}

func SmallerDD(a, b DD) DD {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceQD subtracts the smaller of a and b from the larger.
func DifferenceQD(a, b QD) QD {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerQD(a, b QD) QD {
	if a.LessThan(b) {
		return b
	}
	return a
}

func SmallerQD(a, b QD) QD {
	if b.LessThan(a) {
		return b
	}
	return a
}
