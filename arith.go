package rational

import "github.com/QuangTung97/rational/checked"

// The operators below use plain int64 arithmetic: cross-products that overflow wrap
// silently and the wrapped parts are reduced as if they were exact. Use the
// *WithOverflow family when operands may be large.

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	if r.den == o.den {
		return New(r.num+o.num, r.Denominator())
	}
	n := r.num*o.Denominator() + r.Denominator()*o.num
	d := r.Denominator() * o.Denominator()
	return New(n, d)
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	if r.den == o.den {
		return New(r.num-o.num, r.Denominator())
	}
	n := r.num*o.Denominator() - r.Denominator()*o.num
	d := r.Denominator() * o.Denominator()
	return New(n, d)
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return New(r.num*o.num, r.Denominator()*o.Denominator())
}

// Div returns r / o, computed as r * (1/o). It panics with ErrUndefinedInverse
// when o is zero.
func (r Rational) Div(o Rational) Rational {
	inv, err := o.Inverse()
	if err != nil {
		panic(err)
	}
	return r.Mul(inv)
}

// TryDiv is like Div but returns ErrUndefinedInverse instead of panicking.
func (r Rational) TryDiv(o Rational) (Rational, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(inv), nil
}

// Neg ...
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, den: r.den}
}

// Abs ...
func (r Rational) Abs() Rational {
	if r.num < 0 {
		return r.Neg()
	}
	return r
}

// MulInt64 scales v by r, truncating toward zero. The flag reports whether v * numerator
// overflowed before the division.
func (r Rational) MulInt64(v int64) (int64, bool) {
	p, overflow := checked.Mul(v, r.num)
	return p / r.Denominator(), overflow
}
