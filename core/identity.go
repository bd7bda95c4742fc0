package core

import "io"

// IsZero reports whether the polynomial is identically zero, using a single
// random evaluation. A point is drawn from the coefficient type's safe
// sampling range using src, the polynomial is evaluated there, and the result
// is compared against the additive identity. A polynomial with no
// coefficients is zero.
//
// By the Schwartz-Zippel lemma the probability of reporting zero for a
// nonzero polynomial is at most order/N, where N is the cardinality of the
// sampled range. Exactly one point is drawn; callers needing a tighter bound
// should use ProbablyZero with more rounds.
func IsZero[F Element[F]](p *DensePoly[F], src io.Reader) bool {
	point := Zero[F]().SamplePoint(src)

	result, ok := p.Evaluate(point)
	if !ok {
		return true
	}

	return result.IsZero()
}

// ProbablyZero runs IsZero over the given number of independent rounds and
// reports whether every round agreed the polynomial is zero. The false
// positive probability of a single round shrinks exponentially with rounds.
// Panics if rounds < 1.
func ProbablyZero[F Element[F]](p *DensePoly[F], src io.Reader, rounds int) bool {
	if rounds < 1 {
		panic("rounds must be positive")
	}

	for i := 0; i < rounds; i++ {
		if !IsZero(p, src) {
			return false
		}
	}

	return true
}

// ProbablyEqual reports whether a and b agree as polynomials, by testing
// a - b for zero over the given number of rounds. Operands of different
// orders are compared over the full degree range via the padded subtraction
// of DensePoly.Sub.
//
// The result is probabilistic: unequal polynomials are reported equal with
// probability at most (order/N)^rounds. Equal polynomials are always reported
// equal up to the coefficient type's arithmetic (floating-point rounding can
// break this for values computed along different paths).
func ProbablyEqual[F Element[F]](a, b *DensePoly[F], src io.Reader, rounds int) bool {
	// a = b iff a - b = 0
	return ProbablyZero(a.Sub(b), src, rounds)
}
