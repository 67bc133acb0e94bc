// Package tokenize splits text on delimiter sets derived from a
// principle's symbol energies and annotates each token with its energy
// figures.
package tokenize

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/ninefold/novena/pkg/energy"
	"github.com/ninefold/novena/pkg/principle"
)

// Options steer tokenization. The zero value keeps delimiter runs as
// standalone tokens and strips content tokens; Energy selects which
// symbol-energy class supplies the delimiters when Delims is nil.
type Options struct {
	Energy      int     // delimiter energy class, default 1
	Delims      *string // explicit delimiter override
	DropDelims  bool    // drop delimiter runs instead of emitting them
	KeepPadding bool    // keep surrounding whitespace on content tokens
}

// DelimiterSet returns the characters whose symbol energy equals the given
// class, plus any extras, sorted for stable output.
func DelimiterSet(p *principle.Principle, energyClass int, extra string) string {
	set := map[rune]struct{}{}
	for k, v := range p.SymbolEnergy {
		if v == energyClass {
			for _, r := range k {
				set[r] = struct{}{}
			}
		}
	}
	for _, r := range extra {
		set[r] = struct{}{}
	}
	runes := make([]rune, 0, len(set))
	for r := range set {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

// Token is one tokenization unit with its energy annotation.
type Token struct {
	Kind     string  `json:"kind"` // "token" or "delim"
	Text     string  `json:"text"`
	Total    int     `json:"total"`
	Root     int     `json:"dr"`
	Letters  int     `json:"letters"`
	Digits   int     `json:"digits"`
	Symbols  int     `json:"symbols"`
	ELetters int     `json:"e_letters"`
	EDigits  int     `json:"e_digits"`
	ESymbols int     `json:"e_symbols"`
	Dominant string  `json:"dominant"` // letters, digits, symbols or mixed
	RLetters float64 `json:"r_letters"`
	RDigits  float64 `json:"r_digits"`
	RSymbols float64 `json:"r_symbols"`
}

// Split returns the raw token strings for text under opts.
func Split(text string, p *principle.Principle, opts Options) []string {
	var out []string
	for _, piece := range rawPieces(text, p, opts) {
		out = append(out, piece.text)
	}
	return out
}

// Tokens tokenizes and annotates each piece with its energy profile.
func Tokens(text string, p *principle.Principle, opts Options) []Token {
	var toks []Token
	for _, piece := range rawPieces(text, p, opts) {
		toks = append(toks, annotate(piece, p))
	}
	return toks
}

type piece struct {
	text    string
	isDelim bool
}

func rawPieces(text string, p *principle.Principle, opts Options) []piece {
	ds := resolveDelims(p, opts)
	pat := compilePattern(ds)
	inDelims := func(s string) bool {
		for _, r := range s {
			if !strings.ContainsRune(ds, r) {
				return false
			}
		}
		return ds != ""
	}

	var out []piece
	for _, raw := range pat.FindAllString(text, -1) {
		isDelim := inDelims(raw)
		if isDelim && opts.DropDelims {
			continue
		}
		if !isDelim && !opts.KeepPadding {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
		}
		out = append(out, piece{text: raw, isDelim: isDelim})
	}
	return out
}

func resolveDelims(p *principle.Principle, opts Options) string {
	if opts.Delims != nil {
		return *opts.Delims
	}
	class := opts.Energy
	if class == 0 {
		class = 1
	}
	return DelimiterSet(p, class, "")
}

// compilePattern builds an alternation keeping delimiter runs and
// non-delimiter runs as separate matches. With no delimiters the whole
// text is one token.
func compilePattern(delims string) *regexp.Regexp {
	if delims == "" {
		return regexp.MustCompile(`(?s).+`)
	}
	cls := escapeClass(delims)
	return regexp.MustCompile(`[^` + cls + `]+|[` + cls + `]+`)
}

// escapeClass escapes runes for use inside a regexp character class.
func escapeClass(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func annotate(pc piece, p *principle.Principle) Token {
	total, root := energy.StringEnergy(pc.text, p)
	kind := "token"
	if pc.isDelim {
		kind = "delim"
	}
	t := Token{Kind: kind, Text: pc.text, Total: total, Root: root}

	for _, r := range pc.text {
		switch {
		case unicode.IsSpace(r):
		case unicode.IsLetter(r):
			t.Letters++
			t.ELetters += energy.CharEnergy(r, p)
		case r >= '0' && r <= '9':
			t.Digits++
			t.EDigits += energy.CharEnergy(r, p)
		default:
			t.Symbols++
			t.ESymbols += energy.CharEnergy(r, p)
		}
	}

	t.Dominant = dominantClass(t)
	denom := t.Letters + t.Digits + t.Symbols
	if denom == 0 {
		denom = 1
	}
	t.RLetters = float64(t.Letters) / float64(denom)
	t.RDigits = float64(t.Digits) / float64(denom)
	t.RSymbols = float64(t.Symbols) / float64(denom)
	return t
}

type classEntry struct {
	val  int
	name string
}

// dominantClass picks the class with the highest energy, falling back to
// counts, and reports "mixed" on unresolved ties.
func dominantClass(t Token) string {
	byEnergy := []classEntry{{t.ELetters, "letters"}, {t.EDigits, "digits"}, {t.ESymbols, "symbols"}}
	maxE, winners := pickMax(byEnergy, false)
	if len(winners) == 1 && maxE > 0 {
		return winners[0]
	}
	byCount := []classEntry{{t.Letters, "letters"}, {t.Digits, "digits"}, {t.Symbols, "symbols"}}
	maxC, winnersC := pickMax(byCount, true)
	if len(winnersC) == 1 && maxC > 0 {
		return winnersC[0]
	}
	return "mixed"
}

func pickMax(entries []classEntry, positiveOnly bool) (int, []string) {
	max := entries[0].val
	for _, e := range entries[1:] {
		if e.val > max {
			max = e.val
		}
	}
	var winners []string
	for _, e := range entries {
		if e.val == max && (!positiveOnly || e.val > 0) {
			winners = append(winners, e.name)
		}
	}
	return max, winners
}
