// Package decklist lists the flashcard decks in the catalog.
package decklist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/screens"
	"github.com/abhisek/studyhub/internal/screens/flashcards"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// DeckListScreen shows every deck and starts a pass through the selected one.
type DeckListScreen struct {
	deps   screens.Deps
	decks  []*catalog.Set
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*DeckListScreen)(nil)
var _ screen.KeyHintProvider = (*DeckListScreen)(nil)

// New creates the deck list from the catalog in deps.
func New(deps screens.Deps) *DeckListScreen {
	s := &DeckListScreen{deps: deps, decks: deps.Catalog.Decks()}

	items := make([]components.MenuItem, 0, len(s.decks))
	for _, set := range s.decks {
		items = append(items, components.MenuItem{
			Label:  set.Name,
			Detail: Describe(set),
			Action: func() tea.Cmd { return s.start(set) },
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

// Describe returns the one-line metadata shown next to a deck.
func Describe(set *catalog.Set) string {
	return fmt.Sprintf("%s · %d cards · %d%% mastered · %d to review",
		set.Subject, set.CardCount, set.MasteredPercent(), set.ToReview())
}

func (s *DeckListScreen) start(set *catalog.Set) tea.Cmd {
	f, err := flashcards.New(s.deps, set)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	return router.Push(f)
}

func (s *DeckListScreen) Init() tea.Cmd {
	return nil
}

func (s *DeckListScreen) Title() string {
	return "Flashcards"
}

func (s *DeckListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Study"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DeckListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DeckListScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title, "Flashcards"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Subtitle, "Reveal each card, then mark it known or for review"))
	b.WriteString("\n\n")

	if len(s.decks) == 0 {
		b.WriteString(layout.Centered(width, theme.Hint, "No decks in this catalog."))
		return b.String()
	}

	var mastery strings.Builder
	for i, set := range s.decks {
		bar := components.NewProgressBar("", float64(set.MasteredPercent())/100, true, 30)
		prefix := "  "
		if i == s.menu.Selected {
			prefix = "▸ "
		}
		mastery.WriteString(theme.Muted.Render(prefix) + bar.View() + "\n")
	}

	block := lipgloss.JoinHorizontal(lipgloss.Top, s.menu.View(), "   ", mastery.String())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Incorrect, s.errMsg))
	}
	return b.String()
}
