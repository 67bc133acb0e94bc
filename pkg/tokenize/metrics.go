package tokenize

import (
	"sort"

	"github.com/ninefold/novena/pkg/energy"
	"github.com/ninefold/novena/pkg/principle"
)

// ClassAggregate holds per-class counts or energies.
type ClassAggregate struct {
	Letters int `json:"letters"`
	Digits  int `json:"digits"`
	Symbols int `json:"symbols"`
}

// TopToken is a high-energy content token summary.
type TopToken struct {
	Text  string `json:"text"`
	Total int    `json:"total"`
	Root  int    `json:"dr"`
}

// LengthStats summarizes content token lengths.
type LengthStats struct {
	Avg float64 `json:"avg"`
	Min int     `json:"min"`
	Max int     `json:"max"`
}

// Metrics is the aggregate token/energy report for one tokenization run.
type Metrics struct {
	TotalTokens     int            `json:"total_tokens"`
	ContentTokens   int            `json:"content_tokens"`
	DelimiterTokens int            `json:"delimiter_tokens"`
	ContentTotal    int            `json:"content_total"`
	DelimiterTotal  int            `json:"delimiter_total"`
	DocumentTotal   int            `json:"document_total"`
	DocumentRoot    int            `json:"document_dr"`
	ContentRootHist map[int]int    `json:"content_dr_hist"`
	DelimRootHist   map[int]int    `json:"delimiter_dr_hist"`
	Lengths         LengthStats    `json:"lengths"`
	TopTokens       []TopToken     `json:"top_tokens"`
	DelimiterSet    string         `json:"delimiter_set"`
	DelimiterCounts map[string]int `json:"delimiter_char_counts"`
	ContentCounts   ClassAggregate `json:"content_counts"`
	ContentEnergy   ClassAggregate `json:"content_energy"`
	DelimCounts     ClassAggregate `json:"delim_counts"`
	DelimEnergy     ClassAggregate `json:"delim_energy"`
}

// ComputeMetrics aggregates token statistics for downstream reporting.
func ComputeMetrics(text string, toks []Token, p *principle.Principle, delimSet string) *Metrics {
	m := &Metrics{
		DelimiterSet:    delimSet,
		ContentRootHist: newHist(),
		DelimRootHist:   newHist(),
		DelimiterCounts: map[string]int{},
	}

	var content, delim []Token
	for _, t := range toks {
		if t.Kind == "delim" {
			delim = append(delim, t)
		} else {
			content = append(content, t)
		}
	}
	m.TotalTokens = len(toks)
	m.ContentTokens = len(content)
	m.DelimiterTokens = len(delim)

	for _, t := range content {
		m.ContentTotal += t.Total
		m.ContentRootHist[normRoot(t.Root)]++
		m.ContentCounts.Letters += t.Letters
		m.ContentCounts.Digits += t.Digits
		m.ContentCounts.Symbols += t.Symbols
		m.ContentEnergy.Letters += t.ELetters
		m.ContentEnergy.Digits += t.EDigits
		m.ContentEnergy.Symbols += t.ESymbols
	}
	for _, t := range delim {
		m.DelimiterTotal += t.Total
		m.DelimRootHist[normRoot(t.Root)]++
		m.DelimCounts.Letters += t.Letters
		m.DelimCounts.Digits += t.Digits
		m.DelimCounts.Symbols += t.Symbols
		m.DelimEnergy.Letters += t.ELetters
		m.DelimEnergy.Digits += t.EDigits
		m.DelimEnergy.Symbols += t.ESymbols
		for _, r := range t.Text {
			m.DelimiterCounts[string(r)]++
		}
	}

	m.DocumentTotal, m.DocumentRoot = energy.StringEnergy(text, p)

	if len(content) > 0 {
		min, max, sum := len([]rune(content[0].Text)), 0, 0
		for _, t := range content {
			l := len([]rune(t.Text))
			if l < min {
				min = l
			}
			if l > max {
				max = l
			}
			sum += l
		}
		m.Lengths = LengthStats{Avg: float64(sum) / float64(len(content)), Min: min, Max: max}
	}

	top := append([]Token(nil), content...)
	sort.SliceStable(top, func(i, j int) bool {
		a, b := top[i], top[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.Root != b.Root {
			return a.Root > b.Root
		}
		return len(a.Text) > len(b.Text)
	})
	if len(top) > 5 {
		top = top[:5]
	}
	for _, t := range top {
		m.TopTokens = append(m.TopTokens, TopToken{Text: t.Text, Total: t.Total, Root: t.Root})
	}
	return m
}

func newHist() map[int]int {
	h := make(map[int]int, 9)
	for i := 1; i <= 9; i++ {
		h[i] = 0
	}
	return h
}

func normRoot(root int) int {
	if root == 0 {
		return 9
	}
	return root
}
