// Package testlist lists the mock tests in the catalog.
package testlist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/screens"
	"github.com/abhisek/studyhub/internal/screens/quiz"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// TestListScreen shows every mock test and starts the selected one.
type TestListScreen struct {
	deps   screens.Deps
	tests  []*catalog.Set
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*TestListScreen)(nil)
var _ screen.KeyHintProvider = (*TestListScreen)(nil)

// New creates the test list from the catalog in deps.
func New(deps screens.Deps) *TestListScreen {
	s := &TestListScreen{deps: deps, tests: deps.Catalog.Tests()}

	items := make([]components.MenuItem, 0, len(s.tests))
	for _, set := range s.tests {
		items = append(items, components.MenuItem{
			Label:  set.Name,
			Detail: Describe(set),
			Action: func() tea.Cmd { return s.start(set) },
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

// Describe returns the one-line metadata shown next to a test.
func Describe(set *catalog.Set) string {
	parts := []string{
		set.Subject,
		set.Difficulty.DisplayName(),
		fmt.Sprintf("%d questions", set.Len()),
	}
	if set.TimeLimit > 0 {
		parts = append(parts, fmt.Sprintf("%d min", int(set.TimeLimit.Minutes())))
	}
	if set.Attempts > 0 {
		parts = append(parts, fmt.Sprintf("best %d%% of %d attempts", set.BestScore, set.Attempts))
	}
	return strings.Join(parts, " · ")
}

func (s *TestListScreen) start(set *catalog.Set) tea.Cmd {
	q, err := quiz.New(s.deps, set)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	return router.Push(q)
}

func (s *TestListScreen) Init() tea.Cmd {
	return nil
}

func (s *TestListScreen) Title() string {
	return "Mock Tests"
}

func (s *TestListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TestListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TestListScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title, "Mock Tests"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Subtitle, "Timed exams scored on submit"))
	b.WriteString("\n\n")

	if len(s.tests) == 0 {
		b.WriteString(layout.Centered(width, theme.Hint, "No tests in this catalog."))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Incorrect, s.errMsg))
	}
	return b.String()
}
