package flashcards

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/logging"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screens"
	"github.com/abhisek/studyhub/internal/screens/summary"
	"github.com/abhisek/studyhub/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func space() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
}

func testDeck(n int) *catalog.Set {
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{
			ID:     fmt.Sprintf("c%d", i+1),
			Prompt: fmt.Sprintf("Front %d", i+1),
			Back:   fmt.Sprintf("Back %d", i+1),
		}
	}
	return &catalog.Set{ID: "calc", Name: "Calculus", Kind: catalog.KindDeck, CardCount: n, Items: items}
}

func newTestScreen(t *testing.T, n int) *FlashcardScreen {
	t.Helper()
	s, err := New(screens.Deps{Bands: session.DefaultBands()}, testDeck(n))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func press(s *FlashcardScreen, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

func TestNew_WrongKind(t *testing.T) {
	test := &catalog.Set{ID: "t", Kind: catalog.KindTest, Items: []catalog.Item{{ID: "q", Choices: []string{"a", "b"}}}}
	if _, err := New(screens.Deps{}, test); err == nil {
		t.Fatal("expected error for a test set")
	}
}

func TestReveal(t *testing.T) {
	s := newTestScreen(t, 2)
	if strings.Contains(s.View(100, 30), "Back 1") {
		t.Error("back face must be hidden before reveal")
	}

	press(s, space())
	if !s.State().Revealed() {
		t.Fatal("expected Space to reveal")
	}
	if !strings.Contains(s.View(100, 30), "Back 1") {
		t.Error("expected back face after reveal")
	}
}

func TestClassifyBeforeReveal(t *testing.T) {
	s := newTestScreen(t, 2)

	press(s, keyPress('k'))
	if s.State().Cursor() != 0 || len(s.State().Outcomes()) != 0 {
		t.Error("classifying a hidden card must not change state")
	}
	if !strings.Contains(s.View(100, 30), "Reveal the answer first") {
		t.Error("expected a reveal notice")
	}
}

func TestClassifyAdvances(t *testing.T) {
	s := newTestScreen(t, 3)

	press(s, space(), keyPress('r'))
	st := s.State()
	if st.Cursor() != 1 || st.Revealed() {
		t.Fatalf("expected next hidden card, got cursor=%d revealed=%v", st.Cursor(), st.Revealed())
	}
	if o, _ := st.Outcome(0); o != session.OutcomeNeedsReview {
		t.Errorf("expected needs-review, got %s", o)
	}

	press(s, tea.KeyPressMsg{Code: tea.KeyEnter}, keyPress('y'))
	if o, _ := s.State().Outcome(1); o != session.OutcomeKnown {
		t.Errorf("expected known via Y, got %s", o)
	}
}

func TestCompletion(t *testing.T) {
	s := newTestScreen(t, 4)

	var cmd tea.Cmd
	for i := 0; i < 4; i++ {
		cmd = press(s, space(), keyPress('k'))
	}
	if s.State().Phase() != session.PhaseComplete {
		t.Fatalf("expected complete, got %s", s.State().Phase())
	}
	if cmd == nil {
		t.Fatal("expected navigation to summary")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	sumScreen, ok := msg.Screen.(*summary.SummaryScreen)
	if !ok {
		t.Fatalf("expected summary screen, got %T", msg.Screen)
	}
	sum := sumScreen.Summary()
	if sum.Correct != 4 || sum.Total != 4 || sum.Percentage != 100 {
		t.Errorf("unexpected summary %+v", sum)
	}

	// Retake produces a fresh pass.
	_, cmd = sumScreen.Update(keyPress('r'))
	next := cmd().(router.ReplaceScreenMsg).Screen.(*FlashcardScreen)
	if next.State().Cursor() != 0 || next.State().ID() == s.State().ID() {
		t.Error("expected a new pass from the first card")
	}
}

func TestKeyHints(t *testing.T) {
	s := newTestScreen(t, 1)
	if hints := s.KeyHints(); hints[0].Key != "Space" {
		t.Errorf("expected reveal hint first, got %+v", hints)
	}
	press(s, space())
	if hints := s.KeyHints(); hints[0].Key != "K" {
		t.Errorf("expected know hint after reveal, got %+v", hints)
	}
}

func TestRestartMidPass(t *testing.T) {
	var logs bytes.Buffer
	deps := screens.Deps{Bands: session.DefaultBands(), Logger: logging.NewWriter(&logs, slog.LevelInfo)}
	s, err := New(deps, testDeck(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	press(s, space(), keyPress('k'), space(), keyPress('r'), space())
	before := s.State()
	if before.Cursor() != 2 || !before.Revealed() {
		t.Fatalf("expected third card revealed, got cursor=%d revealed=%v", before.Cursor(), before.Revealed())
	}

	if cmd := press(s, keyPress('s')); cmd != nil {
		t.Error("restart stays on the flashcard screen")
	}

	st := s.State()
	if st.Cursor() != 0 || st.Revealed() || len(st.Outcomes()) != 0 {
		t.Errorf("expected a fresh pass, got cursor=%d revealed=%v outcomes=%v", st.Cursor(), st.Revealed(), st.Outcomes())
	}
	if st.Phase() != session.PhaseInProgress || st.ID() == before.ID() {
		t.Error("expected a new in-progress attempt")
	}
	if !strings.Contains(logs.String(), "deck reset") {
		t.Errorf("expected a reset log line, got %q", logs.String())
	}
}

func TestRestartHint(t *testing.T) {
	s := newTestScreen(t, 3)
	for _, h := range s.KeyHints() {
		if h.Key == "S" {
			t.Fatal("restart hint should wait for the first classified card")
		}
	}

	press(s, space(), keyPress('k'))
	found := false
	for _, h := range s.KeyHints() {
		found = found || h.Key == "S"
	}
	if !found {
		t.Error("expected restart hint mid-pass")
	}
}
