package fr381_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/nulltea/zippel/core"
	"github.com/nulltea/zippel/fr381"
	"github.com/stretchr/testify/require"
)

func TestArithmeticMatchesBigInt(t *testing.T) {
	modulus := fr.Modulus()

	var i, j big.Int

	for iter := 0; iter < 1000; iter++ {
		a := rand.Uint64()
		b := rand.Uint64()

		x := fr381.NewElement(a)
		y := fr381.NewElement(b)

		i.SetUint64(a).Add(&i, j.SetUint64(b)).Mod(&i, modulus)
		require.Equal(t, i.Bytes(), trimLeadingZeros(x.Add(y).Bytes()), "add %d %d", a, b)

		i.SetUint64(a).Mul(&i, j.SetUint64(b)).Mod(&i, modulus)
		require.Equal(t, i.Bytes(), trimLeadingZeros(x.Mul(y).Bytes()), "mul %d %d", a, b)
	}
}

// trimLeadingZeros strips the big-endian padding so the canonical encoding
// can be compared against big.Int.Bytes.
func trimLeadingZeros(b []byte) []byte {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	return b
}

func TestDivRoundTrips(t *testing.T) {
	for iter := 0; iter < 1000; iter++ {
		x := fr381.NewElement(rand.Uint64())
		y := fr381.NewElement(rand.Uint64() | 1)

		require.True(t, x.Div(y).Mul(y).Equal(x))
	}

	require.Panics(t, func() {
		fr381.NewElement(1).Div(fr381.NewElement(0))
	})
}

func TestIdentities(t *testing.T) {
	require.True(t, core.Zero[fr381.Element]().IsZero())

	one := core.One[fr381.Element]()
	x := fr381.NewElement(rand.Uint64())

	require.True(t, x.Mul(one).Equal(x))
	require.True(t, x.Sub(x).IsZero())
	require.True(t, core.Two[fr381.Element]().Equal(fr381.NewElement(2)))
}

func TestBoundsWrap(t *testing.T) {
	var x fr381.Element

	require.True(t, x.MinValue().IsZero())
	// the field wraps: (r - 1) + 1 = 0
	require.True(t, x.MaxValue().Add(core.One[fr381.Element]()).IsZero())
}

func TestSampling(t *testing.T) {
	src, err := core.NewKeystream([]byte{7})
	require.NoError(t, err)

	var x fr381.Element
	seen := make(map[string]bool)

	for iter := 0; iter < 100; iter++ {
		point := x.SamplePoint(src)
		seen[point.String()] = true
	}

	// a 255-bit field sampled 100 times should never collide
	require.Len(t, seen, 100)

	lo := fr381.NewElement(10)
	hi := fr381.NewElement(20)
	for iter := 0; iter < 100; iter++ {
		v := x.SampleRange(src, lo, hi)

		var vInt, loInt, hiInt big.Int
		vInt.SetBytes(v.Bytes())
		loInt.SetBytes(lo.Bytes())
		hiInt.SetBytes(hi.Bytes())

		require.True(t, vInt.Cmp(&loInt) >= 0)
		require.True(t, vInt.Cmp(&hiInt) < 0)
	}

	require.Panics(t, func() { x.SampleRange(src, hi, lo) })
}
