package types

import (
	"math/bits"
)

// FloatScaling is the fixed-point scale of fee rates and prices: 1e9 == 1.0.
const FloatScaling uint64 = 1e9

func Mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) == ((a < 0) != (b < 0)) {
		if c/b == a {
			return c, true
		}
	}
	return c, false
}

// MulDivUint64 returns floor(a * b / c) computed on the exact 128-bit product.
// It panics if c is zero or the quotient does not fit into 64 bits.
func MulDivUint64(a, b, c uint64) uint64 {
	if c == 0 {
		panic("division by zero")
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= c {
		panic("Int overflow")
	}
	quo, _ := bits.Div64(hi, lo, c)
	return quo
}

// AddUint64 returns a + b and false if the sum overflows.
func AddUint64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// SubUint64 returns a - b and false if the difference underflows.
func SubUint64(a, b uint64) (uint64, bool) {
	diff, borrow := bits.Sub64(a, b, 0)
	return diff, borrow == 0
}

func MinUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
