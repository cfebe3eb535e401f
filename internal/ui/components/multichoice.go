package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/ui/theme"
)

// ChoiceLabels are the letters shown in front of choices.
var ChoiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// ChoiceLabel returns the letter for choice i.
func ChoiceLabel(i int) string {
	if i >= 0 && i < len(ChoiceLabels) {
		return ChoiceLabels[i]
	}
	return fmt.Sprintf("%d", i+1)
}

// MultiChoice renders lettered choices. Key handling belongs to the owning
// screen, which records selections in the session engine.
type MultiChoice struct {
	Options []string

	// Chosen is the selected choice, -1 for none.
	Chosen int

	// Correct is the right choice. It is only highlighted when Reveal is set.
	Correct int
	Reveal  bool
}

// NewMultiChoice creates a new multiple-choice view with nothing chosen.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
		Correct: correctIndex,
	}
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Chosen {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, ChoiceLabel(i), opt)

		if m.Reveal {
			if i == m.Correct {
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			} else if i == m.Chosen {
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Chosen {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// IsCorrect returns true if the chosen answer is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Chosen >= 0 && m.Chosen == m.Correct
}
