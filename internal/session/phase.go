package session

import "fmt"

// Phase is the coarse lifecycle stage of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota // Zero value; no set selected
	PhaseInProgress              // Accepting answers or classifications
	PhaseSubmitted               // Quiz submitted; terminal until reset
	PhaseComplete                // Every card classified; terminal until reset
)

var phaseNames = [...]string{
	PhaseNotStarted: "not-started",
	PhaseInProgress: "in-progress",
	PhaseSubmitted:  "submitted",
	PhaseComplete:   "complete",
}

// String returns the phase name. For invalid values it returns "Phase(n)".
func (p Phase) String() string {
	if p >= PhaseNotStarted && p <= PhaseComplete {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Terminal reports whether the phase accepts no further input except reset.
func (p Phase) Terminal() bool {
	return p == PhaseSubmitted || p == PhaseComplete
}

// Outcome is a learner's self-report on a flashcard.
type Outcome int

const (
	OutcomeKnown       Outcome = iota + 1 // "Know it"
	OutcomeNeedsReview                    // "Review"
)

// String returns the outcome name. For invalid values it returns "Outcome(n)".
func (o Outcome) String() string {
	switch o {
	case OutcomeKnown:
		return "known"
	case OutcomeNeedsReview:
		return "needs-review"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

func (o Outcome) isValid() bool {
	return o == OutcomeKnown || o == OutcomeNeedsReview
}
