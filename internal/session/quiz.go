package session

import (
	"fmt"
	"maps"

	"github.com/google/uuid"

	"github.com/abhisek/studyhub/internal/catalog"
)

// QuizState is one attempt at a mock test.
//
// A QuizState is a value: every operation returns a new state and leaves
// the receiver untouched. On error the returned state is the receiver
// itself. The answers map is copied on write and never mutated once a state
// has been returned, so states may share it.
type QuizState struct {
	id      string
	set     *catalog.Set
	phase   Phase
	cursor  int
	answers map[int]int // item index -> choice index; absent means unanswered
}

// StartQuiz begins a fresh attempt at a test.
func StartQuiz(set *catalog.Set) (QuizState, error) {
	if set.Len() == 0 {
		return QuizState{}, ErrEmptySet
	}
	if set.Kind != catalog.KindTest {
		return QuizState{}, fmt.Errorf("%w: %q is a %s", ErrWrongKind, set.ID, set.Kind.DisplayName())
	}
	return QuizState{
		id:      uuid.NewString(),
		set:     set,
		phase:   PhaseInProgress,
		answers: map[int]int{},
	}, nil
}

// ID returns the attempt ID. Reset produces a new one.
func (q QuizState) ID() string { return q.id }

// Set returns the test being attempted.
func (q QuizState) Set() *catalog.Set { return q.set }

// Phase returns the lifecycle phase.
func (q QuizState) Phase() Phase { return q.phase }

// Cursor returns the index of the question on display.
func (q QuizState) Cursor() int { return q.cursor }

// Len returns the number of questions.
func (q QuizState) Len() int { return q.set.Len() }

// Current returns the question at the cursor.
func (q QuizState) Current() (catalog.Item, bool) {
	return q.set.Item(q.cursor)
}

// Answer returns the selected choice for item i, if any.
func (q QuizState) Answer(i int) (int, bool) {
	c, ok := q.answers[i]
	return c, ok
}

// Answers returns a copy of all recorded answers keyed by item index.
func (q QuizState) Answers() map[int]int {
	return maps.Clone(q.answers)
}

// AnsweredCount returns how many questions have a selection.
func (q QuizState) AnsweredCount() int { return len(q.answers) }

// IsFirst reports whether the cursor is on the first question.
func (q QuizState) IsFirst() bool { return q.cursor == 0 }

// IsLast reports whether the cursor is on the last question.
func (q QuizState) IsLast() bool { return q.cursor == q.Len()-1 }

// checkActive returns an error unless the quiz accepts input.
func (q QuizState) checkActive() error {
	switch q.phase {
	case PhaseInProgress:
		return nil
	case PhaseNotStarted:
		return ErrNotStarted
	default:
		return fmt.Errorf("%w: quiz is %s", ErrOperationAfterTerminal, q.phase)
	}
}

// SelectAnswer records choice for item, replacing any earlier selection.
// Selections may change freely until the quiz is submitted.
func (q QuizState) SelectAnswer(item, choice int) (QuizState, error) {
	if err := q.checkActive(); err != nil {
		return q, err
	}
	it, ok := q.set.Item(item)
	if !ok {
		return q, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidItem, item, q.Len())
	}
	if choice < 0 || choice >= len(it.Choices) {
		return q, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidChoice, choice, len(it.Choices))
	}

	next := q
	next.answers = maps.Clone(q.answers)
	next.answers[item] = choice
	return next, nil
}

// Select records choice for the question at the cursor.
func (q QuizState) Select(choice int) (QuizState, error) {
	return q.SelectAnswer(q.cursor, choice)
}

// Advance moves the cursor by delta, clamped to the question range.
// It never submits and does not require the current question to be answered.
func (q QuizState) Advance(delta int) (QuizState, error) {
	if err := q.checkActive(); err != nil {
		return q, err
	}
	next := q
	next.cursor = clamp(q.cursor+delta, 0, q.Len()-1)
	return next, nil
}

// Submit ends the attempt. Unanswered questions count as incorrect.
// Submitting an already submitted quiz returns it unchanged.
func (q QuizState) Submit() (QuizState, error) {
	switch q.phase {
	case PhaseSubmitted:
		return q, nil
	case PhaseNotStarted:
		return q, ErrNotStarted
	}
	next := q
	next.phase = PhaseSubmitted
	return next, nil
}

// Reset discards every answer and starts a new attempt on the same test.
func (q QuizState) Reset() (QuizState, error) {
	if q.phase == PhaseNotStarted {
		return q, ErrNotStarted
	}
	return StartQuiz(q.set)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
