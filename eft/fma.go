package eft

import (
	"os"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// FMAEnvVar selects how TwoProd computes its error term: "on" or "1" forces a
// fused multiply-add, "off" or "0" forces the split algorithm, and anything
// else (including unset) detects hardware support.
const FMAEnvVar = "XFLOAT_FMA"

// useFMA is decided once at init and never written afterwards, except by
// tests in this package.
var useFMA = detectFMA()

// FMAEnabled reports whether TwoProd and TwoSquare use a fused multiply-add.
// Both paths produce identical results; only their speed differs.
func FMAEnabled() bool { return useFMA }

func detectFMA() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(FMAEnvVar))) {
	case "on", "1", "true":
		return true
	case "off", "0", "false":
		return false
	}
	return hardwareFMA()
}

// hardwareFMA reports whether math.FMA compiles to a single instruction.
// Without hardware support math.FMA falls back to a slow software emulation
// and the split algorithm is faster.
func hardwareFMA() bool {
	switch runtime.GOARCH {
	case "amd64":
		return cpu.X86.HasFMA
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64":
		return true
	}
	return false
}
