package rational

import (
	"math/bits"

	"github.com/QuangTung97/rational/checked"
)

// Equal compares the canonical parts, which is enough because both sides are reduced.
func (r Rational) Equal(o Rational) bool {
	return r.num == o.num && r.den == o.den
}

// Less reports whether r < o, i.e. r.num * o.den < r.den * o.num.
// Denominators are positive so the inequality needs no sign case-split; the cross-products
// are formed in 128 bits and never overflow.
func (r Rational) Less(o Rational) bool {
	rs, ys := r.Sign(), o.Sign()
	if rs != ys {
		return rs < ys
	}
	if rs == 0 {
		return false
	}

	lh, ll := bits.Mul64(checked.Abs(r.num), uint64(o.Denominator()))
	rh, rl := bits.Mul64(checked.Abs(o.num), uint64(r.Denominator()))
	if rs > 0 {
		return lh < rh || (lh == rh && ll < rl)
	}
	return lh > rh || (lh == rh && ll > rl)
}

// LessOrEqual ...
func (r Rational) LessOrEqual(o Rational) bool {
	return r.Less(o) || r.Equal(o)
}

// Greater ...
func (r Rational) Greater(o Rational) bool {
	return o.Less(r)
}

// GreaterOrEqual ...
func (r Rational) GreaterOrEqual(o Rational) bool {
	return !r.Less(o)
}

// Cmp returns -1 if r < o, 0 if r == o and 1 if r > o.
func (r Rational) Cmp(o Rational) int {
	if r.Equal(o) {
		return 0
	}
	if r.Less(o) {
		return -1
	}
	return 1
}
