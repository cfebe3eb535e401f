// Package flashcards is the deck study screen.
package flashcards

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/logging"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/screens"
	"github.com/abhisek/studyhub/internal/screens/summary"
	"github.com/abhisek/studyhub/internal/session"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

type keyMap struct {
	Reveal  key.Binding
	Know    key.Binding
	Review  key.Binding
	Restart key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Reveal:  key.NewBinding(key.WithKeys("space", " ", "enter"), key.WithHelp("Space", "Reveal")),
		Know:    key.NewBinding(key.WithKeys("k", "K", "y", "Y"), key.WithHelp("K", "Know it")),
		Review:  key.NewBinding(key.WithKeys("r", "R", "n", "N"), key.WithHelp("R", "Review")),
		Restart: key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("S", "Start over")),
	}
}

// FlashcardScreen runs one pass through a deck.
type FlashcardScreen struct {
	deps   screens.Deps
	deck   session.DeckState
	keys   keyMap
	notice string
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)

// New starts a pass through set.
func New(deps screens.Deps, set *catalog.Set) (*FlashcardScreen, error) {
	d, err := session.StartDeck(set)
	if err != nil {
		return nil, err
	}
	return newScreen(deps, d), nil
}

func newScreen(deps screens.Deps, d session.DeckState) *FlashcardScreen {
	deps.Log().Info("deck started",
		logging.KeyAttempt, d.ID(),
		logging.KeySet, d.Set().ID,
		"cards", d.Len(),
	)
	return &FlashcardScreen{deps: deps, deck: d, keys: defaultKeys()}
}

func (s *FlashcardScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardScreen) Title() string {
	return "Flashcards"
}

// State returns the engine state of the pass.
func (s *FlashcardScreen) State() session.DeckState {
	return s.deck
}

func (s *FlashcardScreen) KeyHints() []layout.KeyHint {
	hints := layout.HintsFor(s.keys.Reveal)
	if s.deck.Revealed() {
		hints = layout.HintsFor(s.keys.Know, s.keys.Review)
	}
	if len(s.deck.Outcomes()) > 0 {
		hints = append(hints, layout.HintsFor(s.keys.Restart)...)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	s.notice = ""
	switch {
	case key.Matches(kmsg, s.keys.Reveal):
		d, err := s.deck.Reveal()
		s.apply(d, err)
	case key.Matches(kmsg, s.keys.Know):
		return s.classify(session.OutcomeKnown)
	case key.Matches(kmsg, s.keys.Review):
		return s.classify(session.OutcomeNeedsReview)
	case key.Matches(kmsg, s.keys.Restart):
		s.restart()
	}
	return s, nil
}

func (s *FlashcardScreen) classify(o session.Outcome) (screen.Screen, tea.Cmd) {
	d, err := s.deck.Classify(o)
	s.apply(d, err)
	if err != nil || d.Phase() != session.PhaseComplete {
		return s, nil
	}

	sum := d.Summary(s.deps.Bands)
	s.deps.Log().Info("deck complete",
		logging.KeyAttempt, d.ID(),
		logging.KeySet, d.Set().ID,
		logging.KeyScore, sum.Percentage,
		logging.KeyBand, sum.Band.String(),
		"known", sum.Correct,
		"review", sum.Incorrect(),
	)
	return s, router.Replace(summary.New(sum, d.Set().Name, s.retake))
}

func (s *FlashcardScreen) apply(d session.DeckState, err error) {
	s.deck = d
	if err == nil {
		return
	}
	if errors.Is(err, session.ErrNotRevealed) {
		s.notice = "Reveal the answer first (Space)"
	} else {
		s.notice = err.Error()
	}
	s.deps.Log().Debug("deck intent rejected", logging.KeyAttempt, d.ID(), "err", err)
}

// restart begins a new pass from the first card in place.
func (s *FlashcardScreen) restart() {
	next, err := s.reset()
	if err != nil {
		s.notice = err.Error()
		return
	}
	s.deck = next
}

func (s *FlashcardScreen) retake() (screen.Screen, error) {
	next, err := s.reset()
	if err != nil {
		return nil, err
	}
	return newScreen(s.deps, next), nil
}

func (s *FlashcardScreen) reset() (session.DeckState, error) {
	next, err := s.deck.Reset()
	if err != nil {
		return s.deck, err
	}
	s.deps.Log().Info("deck reset",
		logging.KeyAttempt, next.ID(),
		logging.KeySet, next.Set().ID,
		"previous", s.deck.ID(),
		"reached", s.deck.Cursor(),
	)
	return next, nil
}

func (s *FlashcardScreen) View(width, height int) string {
	d := s.deck
	card, ok := d.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true), d.Set().Name))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Muted, fmt.Sprintf("Card %d of %d", d.Cursor()+1, d.Len())))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	bar := components.NewProgressBar("", float64(d.Cursor())/float64(d.Len()), true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	cardWidth := min(width-8, 64)
	face := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(card.Prompt)
	if d.Revealed() {
		face += "\n\n" + lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(cardWidth-8, 0))) +
			"\n\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render(card.Back)
	} else {
		face += "\n\n" + theme.Hint.Render("Press Space to reveal")
	}
	box := theme.Card.Width(cardWidth).Align(lipgloss.Center).Render(face)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	b.WriteString("\n\n")

	sum := d.Summary(s.deps.Bands)
	tally := fmt.Sprintf("%s %d known    %s %d to review",
		theme.Correct.Render("✓"), sum.Correct,
		lipgloss.NewStyle().Foreground(theme.Accent).Render("↻"), sum.Incorrect())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tally))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(width, theme.Incorrect, s.notice))
	}

	return b.String()
}
