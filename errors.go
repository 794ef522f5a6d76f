package rational

import "errors"

// Errors returned (or panicked with) by the constructors and by division.
var (
	ErrInvalidDenominator = errors.New("rational: denominator is zero")
	ErrInvalidFloat       = errors.New("rational: float is not a normal finite value")
	ErrUndefinedInverse   = errors.New("rational: inverse of zero")
	ErrOverflow           = errors.New("rational: value does not fit int64")
)
