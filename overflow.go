package rational

import "github.com/QuangTung97/rational/checked"

// fromWrapped reduces parts that may have wrapped. It never panics: parts that cannot
// form a valid value yield the zero value, flagged as overflow.
func fromWrapped(n int64, d int64, overflow bool) (Rational, bool) {
	r, err := Try(n, d)
	if err != nil {
		return Rational{}, true
	}
	return r, overflow
}

// AddWithOverflow returns r + o and whether any intermediate step overflowed int64.
// When the flag is false the result equals r.Add(o).
func (r Rational) AddWithOverflow(o Rational) (Rational, bool) {
	if r.den == o.den {
		n, overflow := checked.Add(r.num, o.num)
		return fromWrapped(n, r.Denominator(), overflow)
	}
	ad, f1 := checked.Mul(r.num, o.Denominator())
	bc, f2 := checked.Mul(r.Denominator(), o.num)
	n, f3 := checked.Add(ad, bc)
	d, f4 := checked.Mul(r.Denominator(), o.Denominator())
	return fromWrapped(n, d, f1 || f2 || f3 || f4)
}

// SubWithOverflow ...
func (r Rational) SubWithOverflow(o Rational) (Rational, bool) {
	if r.den == o.den {
		n, overflow := checked.Sub(r.num, o.num)
		return fromWrapped(n, r.Denominator(), overflow)
	}
	ad, f1 := checked.Mul(r.num, o.Denominator())
	bc, f2 := checked.Mul(r.Denominator(), o.num)
	n, f3 := checked.Sub(ad, bc)
	d, f4 := checked.Mul(r.Denominator(), o.Denominator())
	return fromWrapped(n, d, f1 || f2 || f3 || f4)
}

// MulWithOverflow ...
func (r Rational) MulWithOverflow(o Rational) (Rational, bool) {
	n, f1 := checked.Mul(r.num, o.num)
	d, f2 := checked.Mul(r.Denominator(), o.Denominator())
	return fromWrapped(n, d, f1 || f2)
}

// DivWithOverflow multiplies r by the inverse of o, checking both products.
// Overflow is reported, but a zero o is not: it panics with ErrUndefinedInverse
// exactly like Div, so callers must check o.IsZero() first.
func (r Rational) DivWithOverflow(o Rational) (Rational, bool) {
	if o.num == 0 {
		panic(ErrUndefinedInverse)
	}
	n, f1 := checked.Mul(r.num, o.Denominator())
	d, f2 := checked.Mul(r.Denominator(), o.num)
	return fromWrapped(n, d, f1 || f2)
}
