// Package f64 provides a float64 coefficient type. The wide exponent range
// makes the Schwartz-Zippel false-positive bound negligible for low-order
// polynomials, at the usual cost of rounding in the arithmetic itself.
package f64

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/nulltea/zippel/core"
)

// Element is a float64 coefficient. The zero value is the additive identity.
type Element float64

var _ core.Element[Element] = Element(0)

// NewElement returns a new Element from a float64 value.
func NewElement(v float64) Element {
	return Element(v)
}

// Add x + y
func (x Element) Add(y Element) Element {
	return x + y
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	return x - y
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return x * y
}

// Div x / y. Division by zero follows IEEE 754 and yields an infinity, which
// is a defined (if rarely useful) result.
func (x Element) Div(y Element) Element {
	return x / y
}

// IsZero returns x == 0
func (x Element) IsZero() bool {
	return x == 0
}

// Equal returns x == y
func (x Element) Equal(y Element) bool {
	return x == y
}

// SetUint64 returns the element representing v.
func (x Element) SetUint64(v uint64) Element {
	return Element(v)
}

// Float64 returns the float64 representation of x.
func (x Element) Float64() float64 {
	return float64(x)
}

// Bytes returns the little-endian IEEE 754 encoding of x.
func (x Element) Bytes() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(float64(x)))
	return b
}

func (x Element) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

// MinValue returns the most negative finite value.
func (x Element) MinValue() Element {
	return -math.MaxFloat64
}

// MaxValue returns the largest finite value.
func (x Element) MaxValue() Element {
	return math.MaxFloat64
}

// SampleRange draws a value uniformly from [lo, hi) using bytes from src.
// hi - lo must be finite.
func (x Element) SampleRange(src io.Reader, lo, hi Element) Element {
	if !(lo < hi) {
		panic("invalid sampling range")
	}
	return lo + Element(randomUnit(src))*(hi-lo)
}

// SamplePoint draws an identity-test point from the extreme bounds halved,
// so that Horner evaluation of a low-order polynomial stays finite.
func (x Element) SamplePoint(src io.Reader) Element {
	two := core.Two[Element]()
	return x.SampleRange(src, x.MinValue().Div(two), x.MaxValue().Div(two))
}

// randomUnit returns a float64 in [0, 1) with 53 bits of precision.
func randomUnit(src io.Reader) float64 {
	var buf [8]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	return float64(binary.LittleEndian.Uint64(buf[:])>>11) / (1 << 53)
}
