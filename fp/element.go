package fp

import (
	"encoding/binary"
	"io"
	"strconv"

	"github.com/nulltea/zippel/core"
	"github.com/tuneinsight/lattigo/v6/ring"
)

// Element represents a field element stored on 1 word (uint64), always
// reduced mod q. The zero value is the additive identity.
//
// # Warning
//
// This code has not been audited and is provided as-is. In particular, there
// is no security guarantees such as constant time implementation or
// side-channel attack resistance.
type Element [1]uint64

var _ core.Element[Element] = Element{}

// NewElement returns a new Element from a uint64 value, reducing mod q.
func NewElement(v uint64) Element {
	return Element{v % q}
}

// SetUint64 returns the element representing v mod q.
func (x Element) SetUint64(v uint64) Element {
	return Element{v % q}
}

// Add x + y (mod q)
func (x Element) Add(y Element) Element {
	return Element{ring.CRed(x[0]+y[0], q)}
}

// Sub x - y (mod q)
func (x Element) Sub(y Element) Element {
	return Element{ring.CRed(x[0]+q-y[0], q)}
}

// Mul x * y (mod q)
func (x Element) Mul(y Element) Element {
	return Element{ring.BRed(x[0], y[0], q, subring.BRedConstant)}
}

// Div x * y⁻¹ (mod q). Panics when y is zero.
func (x Element) Div(y Element) Element {
	if y.IsZero() {
		panic("division by zero")
	}
	return x.Mul(y.Inverse())
}

// Inverse x⁻¹ (mod q) by Fermat's little theorem, or 0 if x = 0.
func (x Element) Inverse() Element {
	if x.IsZero() {
		return Element{}
	}
	return Element{ring.ModExp(x[0], q-2, q)}
}

// Neg q - x
func (x Element) Neg() Element {
	if x[0] == 0 {
		return x
	}
	return Element{q - x[0]}
}

// IsZero returns x == 0
func (x Element) IsZero() bool {
	return x[0] == 0
}

// IsOne returns x == 1
func (x Element) IsOne() bool {
	return x[0] == 1
}

// Equal returns x == y
func (x Element) Equal(y Element) bool {
	return x[0] == y[0]
}

// Uint64 returns the uint64 representation of x.
func (x Element) Uint64() uint64 {
	return x[0]
}

// Bytes returns the canonical little-endian encoding of x.
func (x Element) Bytes() []byte {
	b := make([]byte, Bytes)
	binary.LittleEndian.PutUint64(b, x[0])
	return b
}

func (x Element) String() string {
	return strconv.FormatUint(x[0], 10)
}

// MinValue returns 0, the smallest representable value.
func (x Element) MinValue() Element {
	return Element{}
}

// MaxValue returns q - 1, the largest representable value.
func (x Element) MaxValue() Element {
	return Element{q - 1}
}

// SampleRange draws a value uniformly from [lo, hi) using bytes from src.
// The modular bias is negligible since q is far below 2⁶⁴.
func (x Element) SampleRange(src io.Reader, lo, hi Element) Element {
	if hi[0] <= lo[0] {
		panic("invalid sampling range")
	}
	return Element{lo[0] + randomUint64(src)%(hi[0]-lo[0])}
}

// SamplePoint draws an identity-test point from the whole field: modular
// arithmetic cannot overflow, so no bound shrinking is needed.
func (x Element) SamplePoint(src io.Reader) Element {
	return Element{randomUint64(src) % q}
}
