package core

import (
	"fmt"
	"io"
)

// Element is the capability set a coefficient type must provide to be usable
// with DensePoly and the randomized identity test. The type parameter is the
// implementing type itself, so that arithmetic stays closed over F without
// boxing.
//
// All methods are value receivers and return new values; implementations must
// be free of side effects. The Go zero value of F must be the additive
// identity, so that Zero[F]() and zero padding are well defined.
//
// The identity test assumes F behaves as a field: division by any nonzero
// element is defined, and the usual associativity/commutativity/identity laws
// hold well enough that a random evaluation point is a meaningful
// Schwartz-Zippel witness. The engine never checks this; a trivial or wrapping
// type silently degrades the test.
type Element[F any] interface {
	fmt.Stringer

	// Add x + y
	Add(y F) F
	// Sub x - y
	Sub(y F) F
	// Mul x * y
	Mul(y F) F
	// Div x * y⁻¹. Implementations define their own failure for y = 0;
	// the polynomial and identity engines never divide.
	Div(y F) F

	// IsZero reports whether x is the additive identity.
	IsZero() bool
	// Equal reports whether x == y.
	Equal(y F) bool

	// SetUint64 returns the element representing v.
	SetUint64(v uint64) F
	// Bytes returns a canonical encoding of x, used for transcript binding.
	Bytes() []byte

	// MinValue and MaxValue are the smallest and largest representable
	// values, retrievable from any instance including the zero value.
	MinValue() F
	MaxValue() F

	// SampleRange draws a value uniformly from [lo, hi) using bytes read
	// from src as the only source of randomness.
	SampleRange(src io.Reader, lo, hi F) F
	// SamplePoint draws an identity-test point from the type's own
	// overflow-safe range: the point must be usable as a Horner evaluation
	// argument without the arithmetic leaving the representable range.
	SamplePoint(src io.Reader) F
}

// Zero constructs the additive identity of F.
func Zero[F Element[F]]() F {
	var element F
	return element
}

// One constructs the multiplicative identity of F.
func One[F Element[F]]() F {
	var element F
	return element.SetUint64(1)
}

// Two constructs one + one. Small constants are derived from the identities
// rather than literals so they stay meaningful for any representation.
func Two[F Element[F]]() F {
	one := One[F]()
	return one.Add(one)
}
