package energy

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ninefold/novena/pkg/principle"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// UnitEnergy annotates one analysis unit (char, word, sentence, paragraph
// or the whole document) with its energy figures.
type UnitEnergy struct {
	Unit   string `json:"unit"`
	Value  string `json:"value"`
	Energy int    `json:"energy"`
	Total  int    `json:"total"`
}

// Analysis is the hierarchical breakdown of a document's energies.
type Analysis struct {
	Chars      []UnitEnergy `json:"chars"`
	Words      []UnitEnergy `json:"words"`
	Sentences  []UnitEnergy `json:"sentences"`
	Paragraphs []UnitEnergy `json:"paragraphs"`
	Document   UnitEnergy   `json:"document"`
}

// SplitWords extracts word tokens (letters, digits, underscore runs).
func SplitWords(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// SplitSentences splits on sentence-final punctuation followed by
// whitespace, retaining the punctuation with its sentence.
func SplitSentences(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	var out []string
	runes := []rune(trimmed)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 >= len(runes) {
			break
		}
		if !unicode.IsSpace(runes[i+1]) {
			continue
		}
		sentence := strings.TrimSpace(string(runes[start : i+1]))
		if sentence != "" {
			out = append(out, sentence)
		}
		for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			i++
		}
		start = i + 1
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		out = append(out, tail)
	}
	return out
}


// AnalyzeText computes the full document -> paragraph -> sentence -> word
// -> char breakdown under p.
func AnalyzeText(text string, p *principle.Principle) *Analysis {
	a := &Analysis{}

	for _, r := range text {
		e := CharEnergy(r, p)
		a.Chars = append(a.Chars, UnitEnergy{Unit: "char", Value: string(r), Energy: e, Total: e})
	}
	for _, w := range SplitWords(text) {
		total, root := StringEnergy(w, p)
		a.Words = append(a.Words, UnitEnergy{Unit: "word", Value: w, Energy: root, Total: total})
	}
	for _, s := range SplitSentences(text) {
		total, root := StringEnergy(s, p)
		a.Sentences = append(a.Sentences, UnitEnergy{Unit: "sentence", Value: s, Energy: root, Total: total})
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total, root := StringEnergy(line, p)
		a.Paragraphs = append(a.Paragraphs, UnitEnergy{Unit: "paragraph", Value: line, Energy: root, Total: total})
	}
	total, root := StringEnergy(text, p)
	a.Document = UnitEnergy{Unit: "document", Value: text, Energy: root, Total: total}
	return a
}

// Vector groups energies by character class.
type Vector struct {
	Sum  map[string]int `json:"sum"`
	Root map[string]int `json:"dr"`
}

// VectorEnergy sums letter/digit/symbol energies separately.
func VectorEnergy(text string, p *principle.Principle) Vector {
	var letters, digits, symbols int
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
		case unicode.IsLetter(r):
			letters += CharEnergy(r, p)
		case r >= '0' && r <= '9':
			digits += CharEnergy(r, p)
		default:
			symbols += CharEnergy(r, p)
		}
	}
	return Vector{
		Sum: map[string]int{"letters": letters, "digits": digits, "symbols": symbols},
		Root: map[string]int{
			"letters": DigitalRoot(letters, p.ZeroToNine),
			"digits":  DigitalRoot(digits, p.ZeroToNine),
			"symbols": DigitalRoot(symbols, p.ZeroToNine),
		},
	}
}

// HarmonicTriads buckets rune energies into the residue triads:
// 1/4/7 root, 2/5/8 wave, 3/6/9 peak. Zero-energy runes are skipped.
func HarmonicTriads(text string, p *principle.Principle) map[string]int {
	triads := map[string]int{"root": 0, "wave": 0, "peak": 0}
	for _, r := range text {
		e := CharEnergy(r, p)
		if e == 0 {
			continue
		}
		switch e % 9 {
		case 1, 4, 7:
			triads["root"]++
		case 2, 5, 8:
			triads["wave"]++
		default:
			triads["peak"]++
		}
	}
	return triads
}

// Profile counts runes per energy digit 1..9; zero energy counts as 9.
func Profile(text string, p *principle.Principle) map[int]int {
	profile := make(map[int]int, 9)
	for i := 1; i <= 9; i++ {
		profile[i] = 0
	}
	for _, r := range text {
		e := CharEnergy(r, p)
		if e == 0 {
			e = 9
		}
		profile[e]++
	}
	return profile
}
