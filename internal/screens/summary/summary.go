package summary

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/session"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// RetakeFunc starts a fresh attempt and returns the screen to run it.
type RetakeFunc func() (screen.Screen, error)

type keyMap struct {
	Retake key.Binding
	Back   key.Binding
	Up     key.Binding
	Down   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Retake: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("R", "Retake")),
		Back:   key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("Enter", "Back")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Scroll")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
	}
}

// SummaryScreen displays the result of a finished attempt.
type SummaryScreen struct {
	summary session.Summary
	name    string
	retake  RetakeFunc
	keys    keyMap
	offset  int
	errMsg  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. retake may be nil, which disables R.
func New(sum session.Summary, name string, retake RetakeFunc) *SummaryScreen {
	keys := defaultKeys()
	keys.Retake.SetEnabled(retake != nil)
	return &SummaryScreen{
		summary: sum,
		name:    name,
		retake:  retake,
		keys:    keys,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.summary.Kind == catalog.KindDeck {
		return "Deck Summary"
	}
	return "Test Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(s.keys.Retake, s.keys.Back, s.keys.Up)
}

// Summary returns the summary on display.
func (s *SummaryScreen) Summary() session.Summary {
	return s.summary
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, s.keys.Retake):
		next, err := s.retake()
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s, router.Replace(next)
	case key.Matches(kmsg, s.keys.Back):
		return s, router.Pop
	case key.Matches(kmsg, s.keys.Up):
		if s.offset > 0 {
			s.offset--
		}
	case key.Matches(kmsg, s.keys.Down):
		s.offset++
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	heading := "Test complete!"
	if sum.Kind == catalog.KindDeck {
		heading = "Deck complete!"
	}
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), heading))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Muted, s.name))
	b.WriteString("\n\n")

	bandStyle := lipgloss.NewStyle().Foreground(bandColor(sum.Band)).Bold(true)
	b.WriteString(layout.Centered(width, bandStyle, fmt.Sprintf("%d%%", sum.Percentage)))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, bandStyle, sum.Band.Message()))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, theme.Body, statsLine(sum)))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(layout.Centered(width, theme.Incorrect, s.errMsg))
		b.WriteString("\n\n")
	}

	header := b.String()
	reviewHeight := height - lipgloss.Height(header) - 1
	review := s.reviewLines(min(width-8, 76))
	if len(review) == 0 {
		return header
	}

	maxOffset := max(len(review)-reviewHeight, 0)
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	end := min(s.offset+max(reviewHeight, 0), len(review))
	block := strings.Join(review[s.offset:end], "\n")

	return header + lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func statsLine(sum session.Summary) string {
	if sum.Kind == catalog.KindDeck {
		return fmt.Sprintf("Known: %d        Needs review: %d        Cards: %d",
			sum.Correct, sum.Incorrect(), sum.Total)
	}
	return fmt.Sprintf("Correct: %d        Incorrect: %d        Unanswered: %d        Total: %d",
		sum.Correct, sum.Incorrect()-sum.Unanswered(), sum.Unanswered(), sum.Total)
}

// reviewLines renders the per-item breakdown, one string per line.
func (s *SummaryScreen) reviewLines(width int) []string {
	var lines []string
	wrap := lipgloss.NewStyle().Width(max(width, 20))

	for _, it := range s.summary.Items {
		if s.summary.Kind == catalog.KindDeck {
			if it.Correct {
				continue
			}
			line := fmt.Sprintf("↻ %s  →  %s", it.Item.Prompt, it.Item.Back)
			lines = append(lines, strings.Split(wrap.Foreground(theme.Accent).Render(line), "\n")...)
			continue
		}

		mark, style := "✗", theme.Incorrect
		if it.Correct {
			mark, style = "✓", theme.Correct
		}
		q := fmt.Sprintf("%s %d. %s", mark, it.Index+1, it.Item.Prompt)
		lines = append(lines, strings.Split(style.Width(max(width, 20)).Render(q), "\n")...)

		mc := components.NewMultiChoice(it.Item.Choices, it.Item.CorrectIndex)
		mc.Chosen = it.Choice
		mc.Reveal = true
		lines = append(lines, strings.Split(strings.TrimRight(mc.View(), "\n"), "\n")...)
		if !it.Answered {
			lines = append(lines, theme.Muted.Render("  (not answered)"))
		}
		if it.Item.Explanation != "" {
			lines = append(lines, strings.Split(wrap.Foreground(theme.TextDim).Italic(true).Render("  "+it.Item.Explanation), "\n")...)
		}
		lines = append(lines, "")
	}

	if s.summary.Kind == catalog.KindDeck && len(lines) > 0 {
		lines = append([]string{theme.Muted.Render("Cards to review")}, lines...)
	}
	return lines
}

// bandColor returns the theme color for a result band.
func bandColor(b session.Band) color.Color {
	switch b {
	case session.BandHigh:
		return theme.Success
	case session.BandMid:
		return theme.Accent
	default:
		return theme.Error
	}
}
