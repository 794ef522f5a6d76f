// Package rational provides exact rational numbers with int64 numerator and
// denominator, always kept in lowest terms with a positive denominator.
package rational

import (
	"fmt"
	"math"

	"github.com/QuangTung97/rational/checked"
)

// Rational is an immutable fraction in canonical form.
// The zero value is 0/1. Two values are equal under == iff they are equal as numbers,
// so Rational can be used directly as a map key.
type Rational struct {
	num int64
	den int64 // denominator minus one
}

// New returns n/d in lowest terms. It panics with ErrInvalidDenominator when d is zero
// and with ErrOverflow when the reduced value does not fit, e.g. New(math.MinInt64, -1).
func New(n int64, d int64) Rational {
	r, err := Try(n, d)
	if err != nil {
		panic(err)
	}
	return r
}

// Try is like New but returns the error instead of panicking.
func Try(n int64, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, ErrInvalidDenominator
	}
	return normalize(n, d)
}

// NewFromInt ...
func NewFromInt(k int64) Rational {
	return Rational{num: k}
}

func normalize(n int64, d int64) (Rational, error) {
	if n == 0 {
		return Rational{}, nil
	}

	un, ud := checked.Abs(n), checked.Abs(d)
	g := GCD(un, ud)
	un, ud = un/g, ud/g

	if ud > math.MaxInt64 {
		return Rational{}, ErrOverflow
	}
	if (n < 0) != (d < 0) {
		// un <= 1<<63 here, and -int64(1<<63) wraps to math.MinInt64 as wanted
		return Rational{num: -int64(un), den: int64(ud) - 1}, nil
	}
	if un > math.MaxInt64 {
		return Rational{}, ErrOverflow
	}
	return Rational{num: int64(un), den: int64(ud) - 1}, nil
}

// Numerator ...
func (r Rational) Numerator() int64 {
	return r.num
}

// Denominator is always positive.
func (r Rational) Denominator() int64 {
	return r.den + 1
}

// Sign returns -1, 0 or 1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero ...
func (r Rational) IsZero() bool {
	return r.num == 0
}

// IsInt reports whether the denominator is 1.
func (r Rational) IsInt() bool {
	return r.den == 0
}

// Float64 returns numerator / denominator computed in float64.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Denominator())
}

// Inverse returns 1/r. It returns ErrUndefinedInverse for zero and ErrOverflow
// for math.MinInt64/1, whose inverse needs a denominator of 1<<63.
func (r Rational) Inverse() (Rational, error) {
	if r.num == 0 {
		return Rational{}, ErrUndefinedInverse
	}
	return normalize(r.Denominator(), r.num)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.Denominator())
}
