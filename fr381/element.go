// Package fr381 adapts the BLS12-381 scalar field of gnark-crypto to the
// coefficient contract. With a ~255-bit field the single-draw identity test
// false-positive bound order/N is vanishing for any realistic order.
package fr381

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/nulltea/zippel/core"
)

// Element wraps fr.Element with value-receiver copy semantics. The zero value
// is the additive identity.
type Element fr.Element

var _ core.Element[Element] = Element{}

// NewElement returns a new Element from a uint64 value.
func NewElement(v uint64) Element {
	var z fr.Element
	z.SetUint64(v)
	return Element(z)
}

// Add x + y (mod r)
func (x Element) Add(y Element) Element {
	var z fr.Element
	z.Add((*fr.Element)(&x), (*fr.Element)(&y))
	return Element(z)
}

// Sub x - y (mod r)
func (x Element) Sub(y Element) Element {
	var z fr.Element
	z.Sub((*fr.Element)(&x), (*fr.Element)(&y))
	return Element(z)
}

// Mul x * y (mod r)
func (x Element) Mul(y Element) Element {
	var z fr.Element
	z.Mul((*fr.Element)(&x), (*fr.Element)(&y))
	return Element(z)
}

// Div x * y⁻¹ (mod r). Panics when y is zero.
func (x Element) Div(y Element) Element {
	if y.IsZero() {
		panic("division by zero")
	}
	var z fr.Element
	z.Div((*fr.Element)(&x), (*fr.Element)(&y))
	return Element(z)
}

// IsZero returns x == 0
func (x Element) IsZero() bool {
	return (*fr.Element)(&x).IsZero()
}

// Equal returns x == y
func (x Element) Equal(y Element) bool {
	return (*fr.Element)(&x).Equal((*fr.Element)(&y))
}

// SetUint64 returns the element representing v.
func (x Element) SetUint64(v uint64) Element {
	var z fr.Element
	z.SetUint64(v)
	return Element(z)
}

// Bytes returns the canonical big-endian encoding of x.
func (x Element) Bytes() []byte {
	b := (*fr.Element)(&x).Bytes()
	return b[:]
}

func (x Element) String() string {
	return (*fr.Element)(&x).String()
}

// MinValue returns 0, the smallest representable value.
func (x Element) MinValue() Element {
	return Element{}
}

// MaxValue returns r - 1, the largest representable value.
func (x Element) MaxValue() Element {
	var z fr.Element
	z.SetBigInt(new(big.Int).Sub(fr.Modulus(), big.NewInt(1)))
	return Element(z)
}

// SampleRange draws a value uniformly from [lo, hi) using bytes from src.
func (x Element) SampleRange(src io.Reader, lo, hi Element) Element {
	var loInt, hiInt big.Int
	(*fr.Element)(&lo).BigInt(&loInt)
	(*fr.Element)(&hi).BigInt(&hiInt)

	width := new(big.Int).Sub(&hiInt, &loInt)
	if width.Sign() <= 0 {
		panic("invalid sampling range")
	}

	v := new(big.Int).Mod(randomWide(src), width)
	v.Add(v, &loInt)

	var z fr.Element
	z.SetBigInt(v)
	return Element(z)
}

// SamplePoint draws an identity-test point from the whole field: modular
// arithmetic cannot overflow, so no bound shrinking is needed.
func (x Element) SamplePoint(src io.Reader) Element {
	var z fr.Element
	z.SetBigInt(new(big.Int).Mod(randomWide(src), fr.Modulus()))
	return Element(z)
}

// randomWide reads twice the field size, keeping the reduction bias on the
// order of 2⁻²⁵⁵.
func randomWide(src io.Reader) *big.Int {
	buf := make([]byte, 2*fr.Bytes)
	if _, err := io.ReadFull(src, buf); err != nil {
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	return new(big.Int).SetBytes(buf)
}
