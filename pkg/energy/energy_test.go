package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ninefold/novena/pkg/principle"
)

func TestDigitalRoot(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, 1},
		{9, 9},
		{10, 1},
		{18, 9},
		{19, 1},
		{123, 6},
		{999, 9},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DigitalRoot(tc.n, true), "n=%d", tc.n)
	}
}

func TestDigitalRootZero(t *testing.T) {
	assert.Equal(t, 9, DigitalRoot(0, true))
	assert.Equal(t, 0, DigitalRoot(0, false))
}

func TestDigitalRootCongruence(t *testing.T) {
	for n := 1; n < 200; n++ {
		dr := DigitalRoot(n, true)
		assert.Equal(t, n%9, dr%9, "n=%d", n)
		assert.GreaterOrEqual(t, dr, 1)
		assert.LessOrEqual(t, dr, 9)
	}
}

func TestDigitalRootIdempotent(t *testing.T) {
	for n := 0; n < 100; n++ {
		dr := DigitalRoot(n, true)
		assert.Equal(t, dr, DigitalRoot(dr, true), "n=%d", n)
	}
}

func TestLetterValues(t *testing.T) {
	p := principle.Default()
	assert.Equal(t, 1, CharEnergy('A', p))
	assert.Equal(t, 2, CharEnergy('b', p))
	assert.Equal(t, 3, CharEnergy('C', p))
	assert.Equal(t, 9, CharEnergy('I', p))
	assert.Equal(t, 1, CharEnergy('J', p), "J wraps back to 1 under A1Z26")
	assert.Equal(t, 8, CharEnergy('Z', p))
}

func TestWhitespaceHasNoEnergy(t *testing.T) {
	p := principle.Default()
	assert.Equal(t, 0, CharEnergy(' ', p))
	assert.Equal(t, 0, CharEnergy('\t', p))
	assert.Equal(t, 0, CharEnergy('\n', p))
}

func TestDigitEnergy(t *testing.T) {
	p := principle.Default()
	assert.Equal(t, 7, CharEnergy('7', p))
	assert.Equal(t, 9, CharEnergy('0', p), "zero maps to nine by default")
}

func TestSymbolTableEnergy(t *testing.T) {
	p := principle.Default()
	assert.Equal(t, 1, CharEnergy('.', p))
	assert.Equal(t, 3, CharEnergy('!', p))
	assert.Equal(t, 9, CharEnergy('*', p))
}

func TestStringEnergy(t *testing.T) {
	p := principle.Default()
	total, root := StringEnergy("ABC", p)
	assert.Equal(t, 6, total)
	assert.Equal(t, 6, root)

	total, root = StringEnergy("", p)
	assert.Equal(t, 0, total)
	assert.Equal(t, 9, root, "empty text roots to nine under zero_to_nine")
}

func TestStringEnergyIgnoresSpaces(t *testing.T) {
	p := principle.Default()
	totalA, _ := StringEnergy("AB", p)
	totalB, _ := StringEnergy("A B", p)
	assert.Equal(t, totalA, totalB)
}

func TestSplitWords(t *testing.T) {
	words := SplitWords("hello, wor_ld! 42")
	assert.Equal(t, []string{"hello", "wor_ld", "42"}, words)
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("One. Two! Three? And a tail")
	assert.Equal(t, []string{"One.", "Two!", "Three?", "And a tail"}, sentences)
}

func TestSplitSentencesKeepsAbbreviationsTogether(t *testing.T) {
	// Punctuation not followed by whitespace does not end a sentence.
	sentences := SplitSentences("v1.2 is out. Ship it.")
	assert.Equal(t, []string{"v1.2 is out.", "Ship it."}, sentences)
}

func TestAnalyzeText(t *testing.T) {
	p := principle.Default()
	a := AnalyzeText("Go now.\n\nStay.", p)

	assert.Len(t, a.Paragraphs, 2)
	assert.Len(t, a.Sentences, 2)
	assert.Equal(t, "document", a.Document.Unit)

	total, root := StringEnergy("Go now.\n\nStay.", p)
	assert.Equal(t, total, a.Document.Total)
	assert.Equal(t, root, a.Document.Energy)
}

func TestVectorEnergy(t *testing.T) {
	p := principle.Default()
	v := VectorEnergy("A1!", p)
	assert.Equal(t, 1, v.Sum["letters"])
	assert.Equal(t, 1, v.Sum["digits"])
	assert.Equal(t, 3, v.Sum["symbols"])
}

func TestHarmonicTriads(t *testing.T) {
	p := principle.Default()
	// A=1 root, B=2 wave, C=3 peak
	triads := HarmonicTriads("ABC", p)
	assert.Equal(t, 1, triads["root"])
	assert.Equal(t, 1, triads["wave"])
	assert.Equal(t, 1, triads["peak"])
}

func TestProfileCoversAllDigits(t *testing.T) {
	p := principle.Default()
	hist := Profile("A", p)
	assert.Len(t, hist, 9)
	assert.Equal(t, 1, hist[1])
	assert.Equal(t, 0, hist[2])
}

func TestAnnotate(t *testing.T) {
	p := principle.Default()
	assert.Equal(t, "A[1]B[2]", Annotate("AB", p))
	assert.Equal(t, " [0]", Annotate(" ", p))
}

func TestStripAnnotations(t *testing.T) {
	p := principle.Default()
	text := "Hello, nine!"
	assert.Equal(t, text, StripAnnotations(Annotate(text, p)))
	assert.Equal(t, "[12] stays", StripAnnotations("[12] stays"), "only single-digit markers are stripped")
}

func TestSynthesizeSigilStyles(t *testing.T) {
	p := principle.Default()
	grid := SynthesizeSigil("ABC", p, "grid")
	assert.Contains(t, grid, "DR=6")

	bar := SynthesizeSigil("ABC", p, "bar")
	assert.Contains(t, bar, "#")
}
