// Package quiz is the mock test screen.
package quiz

import (
	"errors"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/logging"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/screens"
	"github.com/abhisek/studyhub/internal/screens/summary"
	"github.com/abhisek/studyhub/internal/session"
	"github.com/abhisek/studyhub/internal/ui/layout"
)

// QuizScreen runs one attempt at a mock test.
type QuizScreen struct {
	deps screens.Deps
	quiz session.QuizState
	keys keyMap

	timed     bool
	deadline  time.Time
	remaining time.Duration

	confirmQuit bool
	notice      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.BackHandler = (*QuizScreen)(nil)

// New starts an attempt at set.
func New(deps screens.Deps, set *catalog.Set) (*QuizScreen, error) {
	q, err := session.StartQuiz(set)
	if err != nil {
		return nil, err
	}
	return newScreen(deps, q), nil
}

func newScreen(deps screens.Deps, q session.QuizState) *QuizScreen {
	s := &QuizScreen{
		deps: deps,
		quiz: q,
		keys: defaultKeys(),
	}
	if limit := q.Set().TimeLimit; deps.Timer && limit > 0 {
		s.timed = true
		s.deadline = deps.Clock().Add(limit)
		s.remaining = limit
	}
	deps.Log().Info("quiz started",
		logging.KeyAttempt, q.ID(),
		logging.KeySet, q.Set().ID,
		"questions", q.Len(),
		"timed", s.timed,
	)
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.tick()
}

func (s *QuizScreen) Title() string {
	return "Mock Test"
}

// State returns the engine state of the attempt.
func (s *QuizScreen) State() session.QuizState {
	return s.quiz
}

// Remaining returns the time left on the countdown.
func (s *QuizScreen) Remaining() time.Duration {
	return s.remaining
}

// HandlesBack is always true: Esc opens the quit confirmation.
func (s *QuizScreen) HandlesBack() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return layout.HintsFor(s.keys.Confirm, s.keys.Cancel)
	}
	enter := s.keys.Enter
	if s.quiz.IsLast() {
		enter.SetHelp("Enter", "Submit")
	}
	return layout.HintsFor(s.keys.Choose, s.keys.Prev, enter, s.keys.Submit, s.keys.Back)
}

func (s *QuizScreen) tick() tea.Cmd {
	if !s.timed {
		return nil
	}
	attempt := s.quiz.ID()
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{attempt: attempt, at: t}
	})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if msg.attempt != s.quiz.ID() || s.quiz.Phase() != session.PhaseInProgress {
		return s, nil
	}
	s.remaining = s.deadline.Sub(msg.at)
	if s.remaining <= 0 {
		s.remaining = 0
		return s.submit("time expired")
	}
	return s, s.tick()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmQuit {
		switch {
		case key.Matches(msg, s.keys.Confirm):
			s.deps.Log().Info("quiz abandoned",
				logging.KeyAttempt, s.quiz.ID(),
				"answered", s.quiz.AnsweredCount(),
			)
			return s, router.Pop
		case key.Matches(msg, s.keys.Cancel):
			s.confirmQuit = false
		}
		return s, nil
	}

	s.notice = ""
	switch {
	case key.Matches(msg, s.keys.Back):
		s.confirmQuit = true
	case key.Matches(msg, s.keys.Submit):
		return s.submit("submitted")
	case key.Matches(msg, s.keys.Prev):
		s.apply(s.quiz.Advance(-1))
	case key.Matches(msg, s.keys.Next):
		s.apply(s.quiz.Advance(1))
	case key.Matches(msg, s.keys.Enter):
		if s.quiz.IsLast() {
			return s.submit("submitted")
		}
		s.apply(s.quiz.Advance(1))
	case key.Matches(msg, s.keys.Choose):
		idx, _ := choiceIndex(msg.String())
		s.apply(s.quiz.Select(idx))
	}
	return s, nil
}

// apply keeps the new state, or shows why the engine rejected the intent.
func (s *QuizScreen) apply(q session.QuizState, err error) {
	s.quiz = q
	if err != nil {
		if errors.Is(err, session.ErrInvalidChoice) {
			s.notice = "That choice is not available for this question"
		} else {
			s.notice = err.Error()
		}
		s.deps.Log().Debug("quiz intent rejected", logging.KeyAttempt, s.quiz.ID(), "err", err)
	}
}

// submit finalizes the attempt and replaces this screen with its summary.
func (s *QuizScreen) submit(reason string) (screen.Screen, tea.Cmd) {
	q, err := s.quiz.Submit()
	if err != nil {
		s.notice = err.Error()
		return s, nil
	}
	s.quiz = q
	s.confirmQuit = false

	sum := q.Summary(s.deps.Bands)
	s.deps.Log().Info("quiz submitted",
		logging.KeyAttempt, q.ID(),
		logging.KeySet, q.Set().ID,
		logging.KeyScore, sum.Percentage,
		logging.KeyBand, sum.Band.String(),
		"correct", sum.Correct,
		"total", sum.Total,
		"reason", reason,
	)

	return s, router.Replace(summary.New(sum, q.Set().Name, s.retake))
}

// retake resets the submitted attempt and returns a screen for the new one.
func (s *QuizScreen) retake() (screen.Screen, error) {
	next, err := s.quiz.Reset()
	if err != nil {
		return nil, err
	}
	s.deps.Log().Info("quiz reset", logging.KeyAttempt, next.ID(), "previous", s.quiz.ID())
	return newScreen(s.deps, next), nil
}
