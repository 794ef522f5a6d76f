package rational

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// BigRat converts r to a new big.Rat.
func (r Rational) BigRat() *big.Rat {
	return big.NewRat(r.num, r.Denominator())
}

// TryFromBigRat converts x if its reduced numerator and denominator both fit int64.
func TryFromBigRat(x *big.Rat) (Rational, error) {
	num, den := x.Num(), x.Denom()
	if !num.IsInt64() {
		return Rational{}, fmt.Errorf("%w: numerator %s", ErrOverflow, num)
	}
	if !den.IsInt64() {
		return Rational{}, fmt.Errorf("%w: denominator %s", ErrOverflow, den)
	}
	return Try(num.Int64(), den.Int64())
}

// Decimal returns numerator / denominator rounded to decimal.DivisionPrecision places.
func (r Rational) Decimal() decimal.Decimal {
	return decimal.New(r.num, 0).Div(decimal.New(r.Denominator(), 0))
}

// TryFromDecimal converts d exactly, unlike TryFromFloat which goes through binary
// floating point.
func TryFromDecimal(d decimal.Decimal) (Rational, error) {
	return TryFromBigRat(d.Rat())
}
