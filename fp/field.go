// Package fp provides a fixed-modulus prime field coefficient type backed by
// the lattigo ring arithmetic (Barrett reduction for multiplication,
// conditional reduction for addition and subtraction).
package fp

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/ring"
)

// Field modulus q
const (
	// Modulus is an NTT-friendly prime of about 26 bits.
	//
	//	q[base10] = 65929217
	//	q[base16] = 0x3ee0001
	Modulus uint64 = 0x3ee0001
	q              = Modulus
)

// Bytes is the number of bytes needed to represent an Element.
const Bytes = 8

// subring carries the precomputed Barrett constants for the modulus.
var subring *ring.SubRing

func init() {
	r, err := ring.NewSubRing(16, Modulus)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize subring: %v", err))
	}
	subring = r
}

func randomUint64(src io.Reader) uint64 {
	var buf [8]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	return binary.LittleEndian.Uint64(buf[:])
}
