// Package presentation renders engine results for the terminal: energy
// color coding, aligned tables, and the glamour-rendered handbook.
package presentation

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ANSI-256 colors for the nine energies, cold blues at 1 rising to hot
// reds at 9.
var energyColors = map[int]string{
	1: "27",
	2: "33",
	3: "39",
	4: "45",
	5: "220",
	6: "214",
	7: "208",
	8: "202",
	9: "196",
}

// Styler colorizes output when the target is an interactive terminal.
type Styler struct {
	profile termenv.Profile
	enabled bool
}

// NewStyler builds a Styler for stdout. Color is suppressed when stdout
// is not a TTY or when disable is set (the --no-color flag).
func NewStyler(disable bool) *Styler {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	return &Styler{
		profile: termenv.ColorProfile(),
		enabled: isTTY && !disable,
	}
}

// Energy renders text in the color assigned to an energy value 1..9.
// Out-of-range energies pass through unstyled.
func (s *Styler) Energy(text string, energy int) string {
	if !s.enabled {
		return text
	}
	color, ok := energyColors[energy]
	if !ok {
		return text
	}
	return termenv.String(text).Foreground(s.profile.Color(color)).String()
}

// Bold renders bold text when styling is enabled.
func (s *Styler) Bold(text string) string {
	if !s.enabled {
		return text
	}
	return termenv.String(text).Bold().String()
}

// Faint renders dim text when styling is enabled.
func (s *Styler) Faint(text string) string {
	if !s.enabled {
		return text
	}
	return termenv.String(text).Faint().String()
}

// EnergyBadge renders "[e]" colorized for the energy value.
func (s *Styler) EnergyBadge(energy int) string {
	return s.Energy(fmt.Sprintf("[%d]", energy), energy)
}

// Width reports the terminal width, or the fallback when stdout is not a
// terminal.
func Width(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
