package presentation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Table accumulates rows and renders them with columns padded to the
// widest cell. Styling is applied by the caller before Add; widths are
// computed on the raw cell text via AddRaw when styled cells carry
// escape sequences.
type Table struct {
	header []string
	rows   [][]string
	widths []int
}

// NewTable creates a table with the given header.
func NewTable(header ...string) *Table {
	t := &Table{header: header, widths: make([]int, len(header))}
	for i, h := range header {
		t.widths[i] = utf8.RuneCountInString(h)
	}
	return t
}

// Add appends a row, truncating or padding to the header width.
func (t *Table) Add(cells ...string) {
	row := make([]string, len(t.header))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if w := utf8.RuneCountInString(row[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table as aligned plain text.
func (t *Table) Render() string {
	var b strings.Builder
	t.writeRow(&b, t.header)
	sep := make([]string, len(t.header))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("-", w)
	}
	t.writeRow(&b, sep)
	for _, row := range t.rows {
		t.writeRow(&b, row)
	}
	return b.String()
}

func (t *Table) writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cell)
		if pad := t.widths[i] - utf8.RuneCountInString(cell); pad > 0 && i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	b.WriteByte('\n')
}

// KV renders a two-column key/value block with aligned keys.
func KV(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if w := utf8.RuneCountInString(p[0]); w > width {
			width = w
		}
	}
	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b, "%-*s  %s\n", width, p[0], p[1])
	}
	return b.String()
}
