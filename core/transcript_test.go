package core_test

import (
	"testing"

	"github.com/nulltea/zippel/core"
	"github.com/nulltea/zippel/fp"
	"github.com/stretchr/testify/require"
)

func TestTranscriptSamplingIsDeterministic(t *testing.T) {
	sample := func() (fp.Element, uint64) {
		tr := core.NewTranscript("test")
		tr.AppendBytes("data", []byte("hello"))
		core.AppendField(tr, "coeff", fp.NewElement(123))

		return core.SampleField[fp.Element](tr, "challenge"), tr.SampleUint64("word")
	}

	firstField, firstWord := sample()
	secondField, secondWord := sample()

	require.True(t, firstField.Equal(secondField))
	require.Equal(t, firstWord, secondWord)
}

func TestTranscriptDivergesOnDifferentAppends(t *testing.T) {
	a := core.NewTranscript("test")
	a.AppendBytes("data", []byte("hello"))

	b := core.NewTranscript("test")
	b.AppendBytes("data", []byte("world"))

	require.NotEqual(t, a.SampleUint64("challenge"), b.SampleUint64("challenge"))
}

func TestTranscriptRatchetsBetweenReads(t *testing.T) {
	tr := core.NewTranscript("test")

	first := make([]byte, 32)
	second := make([]byte, 32)
	_, _ = tr.Read(first)
	_, _ = tr.Read(second)

	require.NotEqual(t, first, second)
}

func TestTranscriptDrivesIdentityTest(t *testing.T) {
	p := core.NewDensePoly([]fp.Element{
		fp.NewElement(1), fp.NewElement(0), fp.NewElement(1),
	})

	// binding the polynomial before sampling derandomizes the test: the
	// same inputs always produce the same verdict
	verdict := func() bool {
		tr := core.NewTranscript("identity")
		core.AppendPolynomial(tr, "poly", p)

		return core.IsZero(p, tr)
	}

	require.False(t, verdict())
	require.Equal(t, verdict(), verdict())
}
