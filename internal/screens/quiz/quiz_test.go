package quiz

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screens"
	"github.com/abhisek/studyhub/internal/screens/summary"
	"github.com/abhisek/studyhub/internal/session"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSet(correct ...int) *catalog.Set {
	items := make([]catalog.Item, len(correct))
	for i, c := range correct {
		items[i] = catalog.Item{
			ID:           fmt.Sprintf("q%d", i+1),
			Prompt:       fmt.Sprintf("Question number %d?", i+1),
			Choices:      []string{"one", "two", "three"},
			CorrectIndex: c,
			Explanation:  "Because.",
		}
	}
	return &catalog.Set{
		ID:        "algebra",
		Name:      "Algebra Drill",
		Kind:      catalog.KindTest,
		TimeLimit: 90 * time.Minute,
		Items:     items,
	}
}

func testDeps(timer bool) screens.Deps {
	return screens.Deps{
		Bands: session.DefaultBands(),
		Timer: timer,
		Now:   func() time.Time { return t0 },
	}
}

func newTestScreen(t *testing.T, timer bool, correct ...int) *QuizScreen {
	t.Helper()
	s, err := New(testDeps(timer), testSet(correct...))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func press(s *QuizScreen, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

// summaryFrom runs cmd and returns the summary screen it replaces to.
func summaryFrom(t *testing.T, cmd tea.Cmd) *summary.SummaryScreen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	sum, ok := msg.Screen.(*summary.SummaryScreen)
	if !ok {
		t.Fatalf("expected summary screen, got %T", msg.Screen)
	}
	return sum
}

func TestNew_EmptySet(t *testing.T) {
	_, err := New(testDeps(false), &catalog.Set{ID: "empty", Kind: catalog.KindTest})
	if err == nil {
		t.Fatal("expected error for empty test")
	}
}

func TestSelect_LetterAndDigit(t *testing.T) {
	s := newTestScreen(t, false, 0, 1)

	press(s, keyPress('b'))
	if c, ok := s.State().Answer(0); !ok || c != 1 {
		t.Errorf("expected answer 1 after 'b', got %d (ok=%v)", c, ok)
	}

	press(s, keyPress('3'))
	if c, _ := s.State().Answer(0); c != 2 {
		t.Errorf("expected answer overwritten to 2 after '3', got %d", c)
	}

	press(s, keyPress('A'))
	if c, _ := s.State().Answer(0); c != 0 {
		t.Errorf("expected answer 0 after 'A', got %d", c)
	}
}

func TestSelect_OutOfRangeShowsNotice(t *testing.T) {
	s := newTestScreen(t, false, 0)

	press(s, keyPress('d'))
	if _, ok := s.State().Answer(0); ok {
		t.Error("choice D does not exist and must not be recorded")
	}
	if !strings.Contains(s.View(100, 30), "not available") {
		t.Error("expected a notice for the rejected choice")
	}
}

func TestNavigation(t *testing.T) {
	s := newTestScreen(t, false, 0, 1, 2)

	press(s, specialKey(tea.KeyRight), specialKey(tea.KeyRight), specialKey(tea.KeyRight))
	if s.State().Cursor() != 2 {
		t.Errorf("expected cursor clamped at 2, got %d", s.State().Cursor())
	}
	if s.State().Phase() != session.PhaseInProgress {
		t.Error("navigating past the end must not submit")
	}

	press(s, specialKey(tea.KeyLeft))
	if s.State().Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", s.State().Cursor())
	}

	press(s, specialKey(tea.KeyEnter))
	if s.State().Cursor() != 2 {
		t.Errorf("expected Enter to advance, got cursor %d", s.State().Cursor())
	}
}

func TestScenario_SubmitOnLastEnter(t *testing.T) {
	s := newTestScreen(t, false, 0, 1, 1)

	cmd := press(s,
		keyPress('a'), specialKey(tea.KeyRight),
		keyPress('c'), specialKey(tea.KeyRight),
		keyPress('b'), specialKey(tea.KeyEnter),
	)

	if s.State().Phase() != session.PhaseSubmitted {
		t.Fatalf("expected submitted, got %s", s.State().Phase())
	}
	sum := summaryFrom(t, cmd).Summary()
	if sum.Correct != 2 || sum.Total != 3 {
		t.Errorf("expected 2/3 correct, got %d/%d", sum.Correct, sum.Total)
	}
	if sum.Percentage != 67 {
		t.Errorf("expected 67%%, got %d", sum.Percentage)
	}
	if sum.Band != session.BandMid {
		t.Errorf("expected mid band, got %s", sum.Band)
	}
}

func TestSubmitKey_WithUnanswered(t *testing.T) {
	s := newTestScreen(t, false, 0, 1, 1)
	cmd := press(s, keyPress('a'), keyPress('s'))

	sum := summaryFrom(t, cmd).Summary()
	if sum.Correct != 1 || sum.Unanswered() != 2 || sum.Percentage != 33 {
		t.Errorf("unexpected summary %+v", sum)
	}
}

func TestSubmit_ZeroBandsAreUsedAsConfigured(t *testing.T) {
	deps := testDeps(false)
	deps.Bands = session.Bands{High: 0, Mid: 0}
	s, err := New(deps, testSet(0, 1, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cmd := press(s, keyPress('a'), keyPress('s'))

	sum := summaryFrom(t, cmd).Summary()
	if sum.Percentage != 33 {
		t.Fatalf("expected 33%%, got %d", sum.Percentage)
	}
	if sum.Band != session.BandHigh {
		t.Errorf("expected high band with 0/0 thresholds, got %s", sum.Band)
	}
}

func TestQuitConfirm(t *testing.T) {
	s := newTestScreen(t, false, 0, 1)
	if !s.HandlesBack() {
		t.Fatal("quiz screen should handle Esc itself")
	}

	press(s, specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation after Esc")
	}
	if !strings.Contains(s.View(100, 30), "Quit this test?") {
		t.Error("expected confirmation dialog in view")
	}

	// Answer keys are ignored while confirming.
	press(s, keyPress('a'))
	if s.State().AnsweredCount() != 0 {
		t.Error("keys must not reach the quiz while confirming")
	}

	press(s, keyPress('n'))
	if s.confirmQuit {
		t.Fatal("expected N to cancel confirmation")
	}

	cmd := press(s, specialKey(tea.KeyEscape), keyPress('y'))
	if cmd == nil {
		t.Fatal("expected pop command on Y")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestTimer_DisabledHasNoTick(t *testing.T) {
	s := newTestScreen(t, false, 0)
	if s.Init() != nil {
		t.Error("expected no tick when the timer is disabled")
	}
}

func TestTimer_CountsDown(t *testing.T) {
	s := newTestScreen(t, true, 0, 1)
	if s.Init() == nil {
		t.Fatal("expected a tick command when timed")
	}

	_, cmd := s.Update(tickMsg{attempt: s.State().ID(), at: t0.Add(30 * time.Second)})
	if cmd == nil {
		t.Error("expected the tick to reschedule")
	}
	if s.Remaining() != 89*time.Minute+30*time.Second {
		t.Errorf("remaining = %v", s.Remaining())
	}
	if !strings.Contains(s.View(100, 30), "89:30") {
		t.Error("expected countdown in view")
	}
}

func TestTimer_ExpirySubmits(t *testing.T) {
	s := newTestScreen(t, true, 0, 1)
	press(s, keyPress('a'))

	_, cmd := s.Update(tickMsg{attempt: s.State().ID(), at: t0.Add(91 * time.Minute)})
	if s.State().Phase() != session.PhaseSubmitted {
		t.Fatal("expected submit on expiry")
	}
	sum := summaryFrom(t, cmd).Summary()
	if sum.Correct != 1 || sum.Percentage != 50 {
		t.Errorf("unexpected summary %+v", sum)
	}

	// Later ticks are ignored once submitted.
	if _, cmd := s.Update(tickMsg{attempt: s.State().ID(), at: t0.Add(92 * time.Minute)}); cmd != nil {
		t.Error("expected no command after submit")
	}
}

func TestTimer_StaleTickIgnored(t *testing.T) {
	s := newTestScreen(t, true, 0)
	_, cmd := s.Update(tickMsg{attempt: "previous-attempt", at: t0.Add(2 * time.Hour)})
	if cmd != nil || s.State().Phase() != session.PhaseInProgress {
		t.Error("a tick from another attempt must not submit")
	}
}

func TestRetake(t *testing.T) {
	s := newTestScreen(t, false, 0, 1)
	first := s.State().ID()
	sumScreen := summaryFrom(t, press(s, keyPress('a'), keyPress('s')))

	_, cmd := sumScreen.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected retake command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	next, ok := msg.Screen.(*QuizScreen)
	if !ok {
		t.Fatalf("expected quiz screen, got %T", msg.Screen)
	}
	st := next.State()
	if st.ID() == first {
		t.Error("retake must start a new attempt")
	}
	if st.Phase() != session.PhaseInProgress || st.AnsweredCount() != 0 || st.Cursor() != 0 {
		t.Errorf("retake must start fresh, got phase=%s answered=%d cursor=%d",
			st.Phase(), st.AnsweredCount(), st.Cursor())
	}
}

func TestKeyHints_LastQuestion(t *testing.T) {
	s := newTestScreen(t, false, 0)
	found := false
	for _, h := range s.KeyHints() {
		if h.Key == "Enter" && h.Description == "Submit" {
			found = true
		}
	}
	if !found {
		t.Error("expected Enter hint to read Submit on the last question")
	}
}

func TestView_ShowsQuestion(t *testing.T) {
	s := newTestScreen(t, false, 0, 1)
	view := s.View(100, 30)
	for _, want := range []string{"Algebra Drill", "Question number 1?", "Q 1/2", "A)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
