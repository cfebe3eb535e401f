package catalog

import "time"

// Kind distinguishes mock tests from flashcard decks.
type Kind string

const (
	KindTest Kind = "test"
	KindDeck Kind = "deck"
)

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindTest:
		return "Mock Test"
	case KindDeck:
		return "Flashcard Deck"
	default:
		return string(k)
	}
}

// Difficulty is the advertised difficulty of a mock test.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// Item is a single question or flashcard.
type Item struct {
	// ID is unique within its Set.
	ID string

	// Prompt is the question stem or the card front.
	Prompt string

	// Choices holds the ordered answer labels (questions only).
	Choices []string

	// CorrectIndex indexes into Choices (questions only).
	CorrectIndex int

	// Explanation is the worked solution shown on review (questions only).
	Explanation string

	// Back is the answer face of a card (cards only).
	Back string
}

// IsCorrect reports whether choice is the correct answer to the item.
func (it Item) IsCorrect(choice int) bool {
	return len(it.Choices) > 0 && choice == it.CorrectIndex
}

// Set is an ordered, immutable collection of items: a test or a deck.
// Sets are shared read-only between the catalog and every session started
// on them; nothing outside this package mutates one.
type Set struct {
	ID      string
	Name    string
	Subject string
	Kind    Kind

	// Difficulty and TimeLimit apply to tests.
	Difficulty Difficulty
	TimeLimit  time.Duration

	// Attempts and BestScore are display-only history for tests.
	Attempts  int
	BestScore int

	// CardCount and Mastered are display-only progress for decks. CardCount
	// is the size of the full deck, which may exceed len(Items).
	CardCount int
	Mastered  int

	Items []Item
}

// Len returns the number of items in the set. A nil set has zero items.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Items)
}

// Item returns the item at index i.
func (s *Set) Item(i int) (Item, bool) {
	if s == nil || i < 0 || i >= len(s.Items) {
		return Item{}, false
	}
	return s.Items[i], true
}

// MasteredPercent returns the share of the full deck already mastered,
// rounded half up. Returns 0 for tests and empty decks.
func (s *Set) MasteredPercent() int {
	if s == nil || s.CardCount <= 0 {
		return 0
	}
	return (200*s.Mastered + s.CardCount) / (2 * s.CardCount)
}

// ToReview returns how many cards of the full deck are not yet mastered.
func (s *Set) ToReview() int {
	if s == nil {
		return 0
	}
	return max(s.CardCount-s.Mastered, 0)
}
