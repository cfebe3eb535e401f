package session

import "github.com/abhisek/studyhub/internal/catalog"

// Attempt is the read-only surface shared by quiz and deck sessions.
type Attempt interface {
	ID() string
	Set() *catalog.Set
	Phase() Phase
	Cursor() int
	Summary(b Bands) Summary
}

var (
	_ Attempt = QuizState{}
	_ Attempt = DeckState{}
)

// ItemResult is the per-item line of a summary.
type ItemResult struct {
	Index int
	Item  catalog.Item

	// Answered is true when the item has a response.
	Answered bool

	// Choice is the selected choice index for questions, -1 if unanswered.
	Choice int

	// Correct is true for a correct answer or a known card.
	Correct bool

	// Outcome is the card classification (cards only).
	Outcome Outcome
}

// Summary holds the aggregate results of an attempt. It is derived from the
// session state on demand and never stored.
type Summary struct {
	Kind catalog.Kind

	// Correct counts correct answers (tests) or known cards (decks).
	Correct int

	// Total is the denominator of Percentage. For tests it is always the
	// number of questions. For decks it is the number of cards classified
	// so far, and the full deck size once the pass is complete.
	Total int

	// Answered counts questions with a selection or classified cards.
	Answered int

	Percentage int
	Band       Band

	// Final is true once the attempt is submitted or complete.
	Final bool

	Items []ItemResult
}

// Incorrect returns the number of items in Total that were not correct.
// For decks this is the "needs review" tally.
func (s Summary) Incorrect() int {
	return s.Total - s.Correct
}

// Unanswered returns the number of questions left without a selection.
func (s Summary) Unanswered() int {
	if s.Kind != catalog.KindTest {
		return 0
	}
	return s.Total - s.Answered
}

// Summary scores the quiz. Unanswered questions count as incorrect and are
// never excluded from the total.
func (q QuizState) Summary(b Bands) Summary {
	n := q.Len()
	sum := Summary{
		Kind:  catalog.KindTest,
		Total: n,
		Final: q.phase == PhaseSubmitted,
		Items: make([]ItemResult, 0, n),
	}

	for i := 0; i < n; i++ {
		it := q.set.Items[i]
		res := ItemResult{Index: i, Item: it, Choice: -1}
		if c, ok := q.answers[i]; ok {
			res.Answered = true
			res.Choice = c
			res.Correct = it.IsCorrect(c)
			sum.Answered++
		}
		if res.Correct {
			sum.Correct++
		}
		sum.Items = append(sum.Items, res)
	}

	sum.Percentage = Percentage(sum.Correct, sum.Total)
	sum.Band = b.Classify(sum.Percentage)
	return sum
}

// Summary tallies the pass. Mid-pass the total covers only the cards
// classified so far; a complete pass always uses the full deck size.
func (d DeckState) Summary(b Bands) Summary {
	sum := Summary{
		Kind:     catalog.KindDeck,
		Total:    len(d.outcomes),
		Answered: len(d.outcomes),
		Final:    d.phase == PhaseComplete,
		Items:    make([]ItemResult, 0, len(d.outcomes)),
	}
	if sum.Final {
		sum.Total = d.Len()
	}

	for i, o := range d.outcomes {
		known := o == OutcomeKnown
		if known {
			sum.Correct++
		}
		sum.Items = append(sum.Items, ItemResult{
			Index:    i,
			Item:     d.set.Items[i],
			Answered: true,
			Choice:   -1,
			Correct:  known,
			Outcome:  o,
		})
	}

	sum.Percentage = Percentage(sum.Correct, sum.Total)
	sum.Band = b.Classify(sum.Percentage)
	return sum
}
