package rational

import (
	"fmt"
	"math"
)

// maximumPower is floor(log10(math.MaxInt64)): 10^maximumPower is the largest power
// of ten a denominator can hold.
const maximumPower = 18

// smallestNormal is the smallest positive normal float64.
const smallestNormal = 0x1p-1022

// NewFromFloat approximates v by a fraction with a power-of-ten denominator.
// It panics with ErrInvalidFloat when v is infinite, NaN, subnormal or too large.
func NewFromFloat(v float64) Rational {
	r, err := TryFromFloat(v)
	if err != nil {
		panic(err)
	}
	return r
}

// TryFromFloat scales |v| by ten until it is integral, at most maximumPower times,
// then rounds half away from zero. Precision is capped at maximumPower decimal places,
// fewer for magnitudes whose scaled value would pass 2^63.
func TryFromFloat(v float64) (Rational, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Rational{}, ErrInvalidFloat
	}
	magnitude := math.Abs(v)
	if magnitude != 0 && magnitude < smallestNormal {
		return Rational{}, ErrInvalidFloat
	}

	scale := int64(1)
	for i := 0; i < maximumPower; i++ {
		if _, frac := math.Modf(magnitude); frac == 0 {
			break
		}
		if magnitude*10 >= 0x1p63 {
			break
		}
		magnitude *= 10
		scale *= 10
	}

	rounded := math.Round(magnitude)
	if rounded >= 0x1p63 {
		return Rational{}, fmt.Errorf("%w: %g is out of range", ErrInvalidFloat, v)
	}

	n := int64(rounded)
	if math.Signbit(v) {
		n = -n
	}
	return Try(n, scale)
}
