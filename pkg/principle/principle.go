// Package principle defines the read-only energy configuration that every
// checksum and planning call receives explicitly. A Principle is never
// mutated after construction; callers share it freely across goroutines.
package principle

import (
	"fmt"
	"unicode/utf8"
)

// Letter valuation modes.
const (
	LetterModeA1Z26     = "a1z26"
	LetterModeCodepoint = "codepoint"
)

// NumberModeDigitalRoot is the only supported number valuation mode.
const NumberModeDigitalRoot = "digital_root"

// Weights multiply the rooted base value of each character class before the
// final digital-root reduction.
type Weights struct {
	Letter int `json:"letter" yaml:"letter"`
	Digit  int `json:"digit" yaml:"digit"`
	Symbol int `json:"symbol" yaml:"symbol"`
}

// Principle is an immutable energy mapping: how each symbol class is valued
// and reduced. The zero value is not usable; construct via Default or Load.
type Principle struct {
	Name         string         `json:"name" yaml:"name"`
	Description  string         `json:"description" yaml:"description"`
	SymbolEnergy map[string]int `json:"symbol_energy" yaml:"symbol_energy"`
	LetterMode   string         `json:"letter_mode" yaml:"letter_mode"`
	NumberMode   string         `json:"number_mode" yaml:"number_mode"`
	ZeroToNine   bool           `json:"normalize_zero_to_nine" yaml:"normalize_zero_to_nine"`
	Weights      Weights        `json:"weights" yaml:"weights"`
	Harmonics    bool           `json:"harmonics" yaml:"harmonics"`
}

// Default returns the Ninefold Grid principle: A1Z26 letters, digital-root
// numbers, the stock symbol table, zero mapping to nine.
func Default() *Principle {
	return &Principle{
		Name: "Ninefold Grid",
		Description: "Default principle: A1Z26 letters, digital-root numbers, " +
			"custom symbol energies, zero maps to nine.",
		SymbolEnergy: map[string]int{
			".": 1, ",": 2, "!": 3, "?": 4, ":": 5, ";": 6, "-": 7, "_": 8,
			"*": 9, "#": 5, "+": 4, "=": 6, "@": 8, "$": 7, "%": 5, "&": 9,
			"/": 3, "\\": 3, "(": 2, ")": 2, "[": 2, "]": 2, "{": 2, "}": 2,
			"<": 1, ">": 1, "|": 1, "~": 9, "^": 8,
		},
		LetterMode: LetterModeA1Z26,
		NumberMode: NumberModeDigitalRoot,
		ZeroToNine: true,
		Weights:    Weights{Letter: 1, Digit: 1, Symbol: 1},
		Harmonics:  true,
	}
}

// EnergyFor looks up an explicit symbol energy. The second return reports
// whether the rune has a table entry.
func (p *Principle) EnergyFor(r rune) (int, bool) {
	e, ok := p.SymbolEnergy[string(r)]
	return e, ok
}

// Symbols returns the runes with explicit table entries, unordered.
func (p *Principle) Symbols() []rune {
	out := make([]rune, 0, len(p.SymbolEnergy))
	for k := range p.SymbolEnergy {
		r, _ := utf8.DecodeRuneInString(k)
		out = append(out, r)
	}
	return out
}

// Validate checks structural constraints shared by Load and plugin overlays.
func (p *Principle) Validate() error {
	for k := range p.SymbolEnergy {
		if utf8.RuneCountInString(k) != 1 {
			return fmt.Errorf("symbol_energy keys must be single-character strings, got %q", k)
		}
	}
	switch p.LetterMode {
	case LetterModeA1Z26, LetterModeCodepoint:
	default:
		return fmt.Errorf("letter_mode must be %q or %q, got %q", LetterModeA1Z26, LetterModeCodepoint, p.LetterMode)
	}
	if p.NumberMode != NumberModeDigitalRoot {
		return fmt.Errorf("number_mode must be %q, got %q", NumberModeDigitalRoot, p.NumberMode)
	}
	return nil
}

// WithOverlay returns a copy of p with extra symbol energies merged in.
// The receiver is left untouched; plugins use this to extend a principle.
func (p *Principle) WithOverlay(symbolEnergy map[string]int) *Principle {
	clone := *p
	clone.SymbolEnergy = make(map[string]int, len(p.SymbolEnergy)+len(symbolEnergy))
	for k, v := range p.SymbolEnergy {
		clone.SymbolEnergy[k] = v
	}
	for k, v := range symbolEnergy {
		clone.SymbolEnergy[k] = v
	}
	return &clone
}

// normalize fills unset weights and modes with defaults after decoding.
func (p *Principle) normalize() {
	if p.LetterMode == "" {
		p.LetterMode = LetterModeA1Z26
	}
	if p.NumberMode == "" {
		p.NumberMode = NumberModeDigitalRoot
	}
	if p.Weights.Letter == 0 {
		p.Weights.Letter = 1
	}
	if p.Weights.Digit == 0 {
		p.Weights.Digit = 1
	}
	if p.Weights.Symbol == 0 {
		p.Weights.Symbol = 1
	}
	if p.SymbolEnergy == nil {
		p.SymbolEnergy = map[string]int{}
	}
}
