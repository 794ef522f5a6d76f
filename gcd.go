package rational

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of u and v using the iterative
// Euclidean algorithm. Callers pass non-negative values; GCD(0, 0) is 0.
func GCD[T constraints.Integer](u, v T) T {
	a, b := u, v
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
