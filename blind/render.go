package blind

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style controls terminal rendering of a ModifiedSequence.
type Style struct {
	// Step renders untouched steps.
	Step lipgloss.Style
	// Modified renders substituted steps.
	Modified lipgloss.Style
	// Separator goes between steps.
	Separator string
}

// DefaultStyle renders untouched steps dimmed and substituted steps bold
// red on the terminal's color profile.
func DefaultStyle() Style {
	return Style{
		Step:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
		Modified:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C")),
		Separator: " ",
	}
}

// PlainStyle applies no styling; Render then matches the step text of
// String without the asterisks.
func PlainStyle() Style {
	return Style{Step: lipgloss.NewStyle(), Modified: lipgloss.NewStyle(), Separator: " "}
}

// Render draws m with st, highlighting substituted steps.
func (m ModifiedSequence[T]) Render(st Style) string {
	parts := make([]string, 0, len(m.original))
	m.each(func(_ int, op T, modified bool) {
		if modified {
			parts = append(parts, st.Modified.Render(op.String()))
			return
		}
		parts = append(parts, st.Step.Render(op.String()))
	})

	return strings.Join(parts, st.Separator)
}
