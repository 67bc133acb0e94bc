package energy

import (
	"fmt"
	"strings"

	"github.com/ninefold/novena/pkg/principle"
)

// Sigil styles.
const (
	SigilGrid = "grid"
	SigilBar  = "bar"
)

// SynthesizeSigil renders a small textual figure of the energy profile:
// a 3x3 count grid or a per-digit bar chart.
func SynthesizeSigil(text string, p *principle.Principle, style string) string {
	total, root := StringEnergy(text, p)
	profile := Profile(text, p)

	switch style {
	case SigilGrid:
		cells := make([]string, 9)
		for i := 1; i <= 9; i++ {
			cells[i-1] = fmt.Sprintf("%d", profile[i])
		}
		rows := []string{
			strings.Join(cells[0:3], " "),
			strings.Join(cells[3:6], " "),
			strings.Join(cells[6:9], " "),
		}
		return fmt.Sprintf("DR=%d TOTAL=%d\n%s", root, total, strings.Join(rows, "\n"))
	case SigilBar:
		var lines []string
		for i := 1; i <= 9; i++ {
			count := profile[i]
			if count > 40 {
				count = 40
			}
			lines = append(lines, fmt.Sprintf("%d: %s", i, strings.Repeat("#", count)))
		}
		return strings.Join(lines, "\n")
	}
	return fmt.Sprintf("DR=%d TOTAL=%d", root, total)
}
