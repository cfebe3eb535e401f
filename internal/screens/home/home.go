// Package home is the studyhub dashboard.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/screens"
	"github.com/abhisek/studyhub/internal/screens/decklist"
	"github.com/abhisek/studyhub/internal/screens/testlist"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	tests      int
	decks      int
	avgMastery int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps screens.Deps) *HomeScreen {
	tests := deps.Catalog.Tests()
	decks := deps.Catalog.Decks()

	var cards, mastered int
	for _, d := range decks {
		cards += d.CardCount
		mastered += d.Mastered
	}
	avg := 0
	if cards > 0 {
		avg = (200*mastered + cards) / (2 * cards)
	}

	items := []components.MenuItem{
		{
			Label:    "Mock Tests",
			Detail:   fmt.Sprintf("%d available", len(tests)),
			Disabled: len(tests) == 0,
			Action: func() tea.Cmd {
				return router.Push(testlist.New(deps))
			},
		},
		{
			Label:    "Flashcards",
			Detail:   fmt.Sprintf("%d decks", len(decks)),
			Disabled: len(decks) == 0,
			Action: func() tea.Cmd {
				return router.Push(decklist.New(deps))
			},
		},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		tests:      len(tests),
		decks:      len(decks),
		avgMastery: avg,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) || height < 18

	var sections []string
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderBanner(width, compact)))
	sections = append(sections, layout.Centered(width, theme.Subtitle, "Mock tests and flashcards in your terminal"))

	stats := fmt.Sprintf("%s tests    %s decks    %s mastered",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprint(h.tests)),
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(fmt.Sprint(h.decks)),
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(fmt.Sprintf("%d%%", h.avgMastery)),
	)
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(stats)))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}
