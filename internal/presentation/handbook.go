package presentation

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
)

//go:embed handbook.md
var handbookSource string

// Handbook returns the built-in handbook rendered for the terminal.
// When plain is set (no TTY or --no-color) the raw markdown is returned.
func Handbook(plain bool, width int) (string, error) {
	if plain {
		return handbookSource, nil
	}
	if width <= 0 || width > 100 {
		width = 100
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build markdown renderer: %w", err)
	}
	out, err := renderer.Render(handbookSource)
	if err != nil {
		return "", fmt.Errorf("failed to render handbook: %w", err)
	}
	return out, nil
}
