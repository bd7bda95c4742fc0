package core

import (
	"encoding/binary"

	"github.com/gtank/merlin"
)

// Transcript is a Fiat-Shamir transcript over merlin. Appending the inputs of
// an identity test and then using the transcript as the sampling source makes
// the test deterministic in its inputs, which removes the need for a shared
// random generator. Not safe for concurrent use.
type Transcript struct {
	*merlin.Transcript
}

func NewTranscript(name string) *Transcript {
	return &Transcript{merlin.NewTranscript(name)}
}

func (t *Transcript) AppendBytes(label string, bytes []byte) {
	t.AppendMessage([]byte(label), bytes)
}

// SampleBytes extracts n challenge bytes for the given label.
func (t *Transcript) SampleBytes(label string, n int) []byte {
	return t.ExtractBytes([]byte(label), n)
}

func (t *Transcript) SampleUint64(label string) uint64 {
	bytes := t.ExtractBytes([]byte(label), 8)
	return binary.LittleEndian.Uint64(bytes)
}

// Read implements io.Reader, so a transcript can be used directly as the
// sampling source of IsZero and ProbablyEqual. Each call extracts fresh
// challenge bytes and ratchets the transcript state.
func (t *Transcript) Read(p []byte) (int, error) {
	copy(p, t.ExtractBytes([]byte("sample"), len(p)))
	return len(p), nil
}

// AppendField appends a coefficient's canonical encoding to the transcript.
func AppendField[F Element[F]](t *Transcript, label string, element F) {
	t.AppendMessage([]byte(label), element.Bytes())
}

// AppendPolynomial binds a polynomial, coefficient by coefficient, to the
// transcript.
func AppendPolynomial[F Element[F]](t *Transcript, label string, p *DensePoly[F]) {
	for _, element := range p.Coefficients() {
		AppendField(t, label, element)
	}
}

// SampleField draws a coefficient from the type's safe sampling range using
// challenge bytes extracted under the given label.
func SampleField[F Element[F]](t *Transcript, label string) F {
	return Zero[F]().SamplePoint(labelReader{t, []byte(label)})
}

type labelReader struct {
	t     *Transcript
	label []byte
}

func (r labelReader) Read(p []byte) (int, error) {
	copy(p, r.t.ExtractBytes(r.label, len(p)))
	return len(p), nil
}
