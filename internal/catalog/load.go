package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog format major version this build reads.
const SupportedMajor = "v1"

// DefaultSource names the embedded catalog in errors and listings.
const DefaultSource = "builtin"

//go:embed data/catalog.json
var defaultCatalogJSON []byte

// catalogFile is the on-disk catalog format.
type catalogFile struct {
	Version string     `json:"version"`
	Tests   []testFile `json:"tests"`
	Decks   []deckFile `json:"decks"`
}

type testFile struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Subject     string         `json:"subject"`
	Difficulty  string         `json:"difficulty"`
	TimeMinutes int            `json:"time_minutes"`
	Attempts    int            `json:"attempts"`
	BestScore   int            `json:"best_score"`
	Questions   []questionFile `json:"questions"`
}

type questionFile struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

type deckFile struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Subject   string     `json:"subject"`
	CardCount int        `json:"card_count"`
	Mastered  int        `json:"mastered"`
	Cards     []cardFile `json:"cards"`
}

type cardFile struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(DefaultSource, defaultCatalogJSON)
}

// Load reads a catalog from path. An empty path loads the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(path, raw)
}

// Parse runs the full load pipeline on raw catalog JSON: schema validation,
// version check, decoding and structural validation. source is used only
// in error messages.
func Parse(source string, raw []byte) (*Catalog, error) {
	if err := validateSchema(source, raw); err != nil {
		return nil, err
	}

	var f catalogFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", source, err)
	}

	if err := checkVersion(f.Version); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", source, err)
	}

	sets := make([]Set, 0, len(f.Tests)+len(f.Decks))
	for _, t := range f.Tests {
		sets = append(sets, t.toSet())
	}
	for _, d := range f.Decks {
		sets = append(sets, d.toSet())
	}

	if err := validateSets(sets); err != nil {
		return nil, err
	}

	return newCatalog(source, f.Version, sets), nil
}

// checkVersion accepts any valid semantic version with the supported major.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x.y)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}

func (t testFile) toSet() Set {
	items := make([]Item, 0, len(t.Questions))
	for _, q := range t.Questions {
		choices := make([]string, len(q.Options))
		copy(choices, q.Options)
		items = append(items, Item{
			ID:           q.ID,
			Prompt:       q.Question,
			Choices:      choices,
			CorrectIndex: q.Correct,
			Explanation:  q.Explanation,
		})
	}
	return Set{
		ID:         t.ID,
		Name:       t.Name,
		Subject:    t.Subject,
		Kind:       KindTest,
		Difficulty: Difficulty(t.Difficulty),
		TimeLimit:  time.Duration(t.TimeMinutes) * time.Minute,
		Attempts:   t.Attempts,
		BestScore:  t.BestScore,
		Items:      items,
	}
}

func (d deckFile) toSet() Set {
	items := make([]Item, 0, len(d.Cards))
	for _, c := range d.Cards {
		items = append(items, Item{
			ID:     c.ID,
			Prompt: c.Front,
			Back:   c.Back,
		})
	}
	cardCount := d.CardCount
	if cardCount < len(items) {
		cardCount = len(items)
	}
	return Set{
		ID:        d.ID,
		Name:      d.Name,
		Subject:   d.Subject,
		Kind:      KindDeck,
		CardCount: cardCount,
		Mastered:  d.Mastered,
		Items:     items,
	}
}
