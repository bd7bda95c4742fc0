package core

// DensePoly is a dense univariate polynomial with coefficients stored
// highest-degree-first: coefficients[i] is the coefficient of degree
// len-1-i. An empty sequence represents the zero polynomial.
type DensePoly[F Element[F]] struct {
	coefficients []F
}

// NewDensePoly constructs a polynomial from coefficients given
// highest-degree-first. The slice is copied; instances are immutable and own
// their coefficient sequence exclusively.
func NewDensePoly[F Element[F]](coefficients []F) *DensePoly[F] {
	coeffs := make([]F, len(coefficients))
	copy(coeffs, coefficients)
	return &DensePoly[F]{coefficients: coeffs}
}

// Order returns the length of the stored coefficient sequence. Leading zero
// coefficients are never trimmed, so this is a storage-size metric, not the
// mathematical degree: [0, 1] has order 2 but degree 0. Use Degree for the
// reduced notion.
func (p *DensePoly[F]) Order() int {
	return len(p.coefficients)
}

// Degree returns the mathematical degree, ignoring leading additive-identity
// coefficients. The zero polynomial (empty or all-identity) has degree -1.
func (p *DensePoly[F]) Degree() int {
	for i, c := range p.coefficients {
		if !c.IsZero() {
			return len(p.coefficients) - 1 - i
		}
	}
	return -1
}

// Coefficient returns the coefficient of the given degree, or the additive
// identity when that degree is not stored.
func (p *DensePoly[F]) Coefficient(degree int) F {
	if degree < 0 || degree >= len(p.coefficients) {
		return Zero[F]()
	}
	return p.coefficients[len(p.coefficients)-1-degree]
}

// Coefficients returns a copy of the stored sequence, highest-degree-first.
func (p *DensePoly[F]) Coefficients() []F {
	coeffs := make([]F, len(p.coefficients))
	copy(coeffs, p.coefficients)
	return coeffs
}

// Evaluate computes the value of the polynomial at the given point using
// Horner's method. The second return is false when the polynomial has no
// coefficients, since the empty representation has no defined evaluation.
func (p *DensePoly[F]) Evaluate(point F) (F, bool) {
	if len(p.coefficients) == 0 {
		return Zero[F](), false
	}

	result := p.coefficients[0]
	for _, c := range p.coefficients[1:] {
		result = result.Mul(point).Add(c)
	}

	return result, true
}

// Add returns p + other. Operands of different orders are aligned from the
// low-degree end and the shorter one is padded with additive identities, so
// the result has the larger of the two orders.
func (p *DensePoly[F]) Add(other *DensePoly[F]) *DensePoly[F] {
	return p.combine(other, func(a, b F) F { return a.Add(b) })
}

// Sub returns p - other, with the same padding rule as Add.
func (p *DensePoly[F]) Sub(other *DensePoly[F]) *DensePoly[F] {
	return p.combine(other, func(a, b F) F { return a.Sub(b) })
}

func (p *DensePoly[F]) combine(other *DensePoly[F], op func(a, b F) F) *DensePoly[F] {
	n := len(p.coefficients)
	if len(other.coefficients) > n {
		n = len(other.coefficients)
	}

	coeffs := make([]F, n)
	for degree := 0; degree < n; degree++ {
		coeffs[n-1-degree] = op(p.Coefficient(degree), other.Coefficient(degree))
	}

	return &DensePoly[F]{coefficients: coeffs}
}
