package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question display.
func (s *QuizScreen) renderQuestionView(width int) string {
	q := s.quiz
	item, ok := q.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + q.Set().Name)

	status := fmt.Sprintf("Q %d/%d   %s %d answered",
		q.Cursor()+1, q.Len(),
		lipgloss.NewStyle().Foreground(theme.Success).Render("●"),
		q.AnsweredCount(),
	)
	if s.timed {
		timer := layout.FormatDuration(int(s.remaining.Seconds()))
		style := lipgloss.NewStyle().Foreground(theme.Accent)
		if s.remaining.Minutes() < 1 {
			style = style.Foreground(theme.Error).Bold(true)
		}
		status += "   " + style.Render("⏱ "+timer)
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(status)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.progressStrip().View()))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, questionStyle.Render(item.Prompt)))
	b.WriteString("\n\n")

	mc := components.NewMultiChoice(item.Choices, item.CorrectIndex)
	if c, ok := q.Answer(q.Cursor()); ok {
		mc.Chosen = c
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, mc.View()))
	b.WriteString("\n")

	hint := fmt.Sprintf("Select %s-%s or 1-%d", components.ChoiceLabel(0),
		components.ChoiceLabel(len(item.Choices)-1), len(item.Choices))
	if q.IsLast() {
		hint += "  ·  Enter submits the test"
	}
	b.WriteString(layout.Centered(width, theme.Hint, hint))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(width, theme.Incorrect, s.notice))
	}

	return b.String()
}

func (s *QuizScreen) progressStrip() components.ProgressStrip {
	cells := make([]components.StripCell, s.quiz.Len())
	for i := range cells {
		if i == s.quiz.Cursor() {
			cells[i] = components.CellCurrent
		} else if _, ok := s.quiz.Answer(i); ok {
			cells[i] = components.CellAnswered
		}
	}
	return components.ProgressStrip{Cells: cells}
}

func renderQuitConfirm(width, height int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Quit this test?") +
		"\n\n" +
		theme.Muted.Render("Your answers will be discarded.") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Accent).Render("Y") + " quit    " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render("N") + " keep going"

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Dialog.Render(body))
}
