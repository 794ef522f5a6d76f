package checked

import (
	"math"
	"math/bits"
)

// Abs returns the magnitude of x as an unsigned value, so Abs(math.MinInt64) is 1<<63.
func Abs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// Add returns the wrapped sum a+b and whether it overflowed int64.
func Add(a, b int64) (int64, bool) {
	s := a + b
	// overflow only when both operands share a sign the sum does not have
	return s, (a^s)&(b^s) < 0
}

// Sub returns the wrapped difference a-b and whether it overflowed int64.
func Sub(a, b int64) (int64, bool) {
	s := a - b
	return s, (a^b)&(a^s) < 0
}

// Mul returns the wrapped product a*b and whether it overflowed int64.
func Mul(a, b int64) (int64, bool) {
	p := a * b
	if a == 0 || b == 0 {
		return 0, false
	}

	hi, lo := bits.Mul64(Abs(a), Abs(b))
	if hi != 0 {
		return p, true
	}
	if (a < 0) != (b < 0) {
		return p, lo > 1<<63
	}
	return p, lo > math.MaxInt64
}
