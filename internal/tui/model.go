// Package tui is the interactive attunement workbench: type text, watch
// its energy update live, and pick a target digital root to see the
// minimal insertion plan.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	novena "github.com/ninefold/novena"
	"github.com/ninefold/novena/pkg/energy"
	"github.com/ninefold/novena/pkg/planner"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
	rootStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	planStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// Model is the bubbletea model for the workbench.
type Model struct {
	engine *novena.Engine
	input  textarea.Model
	target int
	width  int
}

// New creates the workbench model.
func New(engine *novena.Engine) Model {
	input := textarea.New()
	input.Placeholder = "Type text to attune..."
	input.Focus()
	input.SetHeight(6)
	return Model{engine: engine, input: input, target: 9}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(msg.Width - 4)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		// Alt+digit switches the target without stealing typed digits.
		if msg.Alt && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9' {
			m.target = int(msg.Runes[0] - '0')
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("novena workbench"))
	b.WriteString(labelStyle.Render("  esc quits, alt+1..9 picks the target\n\n"))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(borderStyle.Render(m.statusPanel()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusPanel() string {
	text := m.input.Value()
	total, root := m.engine.Checksum(text)
	triads := energy.HarmonicTriads(text, m.engine.Principle())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s   %s %d   %s root=%d wave=%d peak=%d\n",
		labelStyle.Render("dr"), rootStyle.Render(fmt.Sprintf("%d", root)),
		labelStyle.Render("total"), total,
		labelStyle.Render("triads"), triads["root"], triads["wave"], triads["peak"])

	fmt.Fprintf(&b, "%s %d   ", labelStyle.Render("target"), m.target)
	b.WriteString(m.planLine(text))
	return b.String()
}

func (m Model) planLine(text string) string {
	if strings.TrimSpace(text) == "" {
		return labelStyle.Render("waiting for input")
	}
	plan, err := m.engine.PlanInsertion(text, m.target, "", planner.DefaultMaxSteps)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	if plan.Empty() {
		return planStyle.Render("already attuned")
	}
	parts := make([]string, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		parts = append(parts, fmt.Sprintf("%q x%d", step.Symbol, step.Count))
	}
	return planStyle.Render("insert " + strings.Join(parts, ", "))
}

// Run starts the workbench.
func Run(engine *novena.Engine) error {
	_, err := tea.NewProgram(New(engine), tea.WithAltScreen()).Run()
	return err
}
