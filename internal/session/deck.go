package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/studyhub/internal/catalog"
)

// DeckState is one pass through a flashcard deck.
//
// Each card goes hidden -> revealed -> classified. Classification is final
// for the pass and moves to the next card; the pass completes when the
// cursor reaches the end of the deck. Like QuizState, DeckState is a value
// and its operations return new states.
type DeckState struct {
	id       string
	set      *catalog.Set
	phase    Phase
	cursor   int
	revealed bool
	outcomes []Outcome // outcomes[i] for every i < cursor
}

// StartDeck begins a fresh pass through a deck.
func StartDeck(set *catalog.Set) (DeckState, error) {
	if set.Len() == 0 {
		return DeckState{}, ErrEmptySet
	}
	if set.Kind != catalog.KindDeck {
		return DeckState{}, fmt.Errorf("%w: %q is a %s", ErrWrongKind, set.ID, set.Kind.DisplayName())
	}
	return DeckState{
		id:    uuid.NewString(),
		set:   set,
		phase: PhaseInProgress,
	}, nil
}

// ID returns the attempt ID. Reset produces a new one.
func (d DeckState) ID() string { return d.id }

// Set returns the deck being studied.
func (d DeckState) Set() *catalog.Set { return d.set }

// Phase returns the lifecycle phase.
func (d DeckState) Phase() Phase { return d.phase }

// Cursor returns the index of the card on display; equal to Len once complete.
func (d DeckState) Cursor() int { return d.cursor }

// Len returns the number of cards.
func (d DeckState) Len() int { return d.set.Len() }

// Revealed reports whether the current card's answer face is showing.
func (d DeckState) Revealed() bool { return d.revealed }

// Current returns the card at the cursor. ok is false once complete.
func (d DeckState) Current() (catalog.Item, bool) {
	return d.set.Item(d.cursor)
}

// Outcome returns the classification of card i, if it has one.
func (d DeckState) Outcome(i int) (Outcome, bool) {
	if i < 0 || i >= len(d.outcomes) {
		return 0, false
	}
	return d.outcomes[i], true
}

// Outcomes returns a copy of the classifications made so far, in card order.
func (d DeckState) Outcomes() []Outcome {
	return append([]Outcome(nil), d.outcomes...)
}

func (d DeckState) checkActive() error {
	switch d.phase {
	case PhaseInProgress:
		return nil
	case PhaseNotStarted:
		return ErrNotStarted
	default:
		return fmt.Errorf("%w: deck is %s", ErrOperationAfterTerminal, d.phase)
	}
}

// Reveal shows the answer face of the current card. Revealing a card that
// is already showing is a no-op.
func (d DeckState) Reveal() (DeckState, error) {
	if err := d.checkActive(); err != nil {
		return d, err
	}
	next := d
	next.revealed = true
	return next, nil
}

// Classify records outcome for the current card, hides the answer face and
// moves to the next card. The card must have been revealed first.
func (d DeckState) Classify(outcome Outcome) (DeckState, error) {
	if err := d.checkActive(); err != nil {
		return d, err
	}
	if !outcome.isValid() {
		return d, fmt.Errorf("%w: %s", ErrInvalidOutcome, outcome)
	}
	if !d.revealed {
		return d, ErrNotRevealed
	}

	outcomes := make([]Outcome, len(d.outcomes), len(d.outcomes)+1)
	copy(outcomes, d.outcomes)

	next := d
	next.outcomes = append(outcomes, outcome)
	next.cursor = d.cursor + 1
	next.revealed = false
	if next.cursor == d.Len() {
		next.phase = PhaseComplete
	}
	return next, nil
}

// Reset discards every classification and starts a new pass on the same deck.
func (d DeckState) Reset() (DeckState, error) {
	if d.phase == PhaseNotStarted {
		return d, ErrNotStarted
	}
	return StartDeck(d.set)
}
