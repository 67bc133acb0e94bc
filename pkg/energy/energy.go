// Package energy implements the ninefold checksum arithmetic: per-rune
// energies under a principle and digital-root reductions of their sums.
// Every function here is pure; concurrent calls need no synchronization as
// long as the shared principle is treated as immutable.
package energy

import (
	"unicode"

	"github.com/ninefold/novena/pkg/principle"
)

// DigitalRoot reduces n to a single digit 1..9. The result is congruent to
// n mod 9, with 9 substituted for a zero residue. When zeroToNine is set,
// n == 0 also maps to 9 (the default principle behavior).
func DigitalRoot(n int, zeroToNine bool) int {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		if zeroToNine {
			return 9
		}
		return 0
	}
	if n%9 == 0 {
		return 9
	}
	return n % 9
}

// LetterValue returns the A1Z26 ordinal for ASCII letters and the raw
// codepoint for anything else.
func LetterValue(r rune) int {
	c := unicode.ToUpper(r)
	if c >= 'A' && c <= 'Z' {
		return int(c-'A') + 1
	}
	return int(r)
}

// CharEnergy assigns a single rune its 0..9 energy under p.
// Whitespace is inert. Letters and digits take their base value, rooted,
// weighted, and rooted again. Symbols use the explicit table when present
// and otherwise fall back to the codepoint root.
func CharEnergy(r rune, p *principle.Principle) int {
	switch {
	case unicode.IsSpace(r):
		return 0
	case unicode.IsLetter(r):
		base := LetterValue(r)
		if p.LetterMode == principle.LetterModeCodepoint {
			base = int(r)
		}
		e := DigitalRoot(base, p.ZeroToNine)
		return DigitalRoot(e*p.Weights.Letter, p.ZeroToNine)
	case r >= '0' && r <= '9':
		e := DigitalRoot(int(r-'0'), p.ZeroToNine)
		return DigitalRoot(e*p.Weights.Digit, p.ZeroToNine)
	}
	if e, ok := p.EnergyFor(r); ok {
		e = DigitalRoot(e, p.ZeroToNine)
		return DigitalRoot(e*p.Weights.Symbol, p.ZeroToNine)
	}
	e := DigitalRoot(int(r), p.ZeroToNine)
	return DigitalRoot(e*p.Weights.Symbol, p.ZeroToNine)
}

// StringEnergy sums per-rune energies and returns the total alongside its
// digital root.
func StringEnergy(text string, p *principle.Principle) (total, root int) {
	for _, r := range text {
		total += CharEnergy(r, p)
	}
	return total, DigitalRoot(total, p.ZeroToNine)
}
