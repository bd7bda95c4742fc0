package core

import (
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// Keystream is a deterministic byte source backed by a ChaCha20 keystream.
// It implements io.Reader and is meant to be injected wherever the library
// needs randomness, making identity tests reproducible from a seed. Not safe
// for concurrent use.
type Keystream struct {
	cipher *chacha20.Cipher
}

// NewKeystream derives a keystream from the given seed. Seeds longer than 32
// bytes are truncated, shorter ones are zero-padded.
func NewKeystream(seed []byte) (*Keystream, error) {
	key := make([]byte, chacha20.KeySize)
	copy(key, seed)

	cipher, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ChaCha20: %v", err)
	}

	return &Keystream{cipher: cipher}, nil
}

// Read fills p with keystream bytes. It never fails.
func (k *Keystream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	k.cipher.XORKeyStream(p, p)

	return len(p), nil
}
