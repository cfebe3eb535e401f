package catalog

import "fmt"

// validateSets performs all structural checks the schema cannot express.
// Returns a *ValidationError describing every problem found, or nil.
func validateSets(sets []Set) error {
	var errs []string

	setIDs := make(map[string]bool, len(sets))
	for _, s := range sets {
		if s.ID == "" {
			errs = append(errs, fmt.Sprintf("%s %q has an empty ID", s.Kind, s.Name))
		} else if setIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate set ID: %q", s.ID))
		}
		setIDs[s.ID] = true

		errs = append(errs, validateSet(s)...)
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

func validateSet(s Set) []string {
	var errs []string

	if len(s.Items) == 0 {
		errs = append(errs, fmt.Sprintf("set %q has no items", s.ID))
	}

	itemIDs := make(map[string]bool, len(s.Items))
	for i, it := range s.Items {
		if itemIDs[it.ID] {
			errs = append(errs, fmt.Sprintf("set %q: duplicate item ID %q", s.ID, it.ID))
		}
		itemIDs[it.ID] = true

		switch s.Kind {
		case KindTest:
			if len(it.Choices) < 2 {
				errs = append(errs, fmt.Sprintf("set %q item %d: needs at least 2 choices", s.ID, i))
			}
			if it.CorrectIndex < 0 || it.CorrectIndex >= len(it.Choices) {
				errs = append(errs, fmt.Sprintf("set %q item %d: correct index %d out of range [0, %d)",
					s.ID, i, it.CorrectIndex, len(it.Choices)))
			}
		case KindDeck:
			if it.Back == "" {
				errs = append(errs, fmt.Sprintf("set %q item %d: card has no back", s.ID, i))
			}
		default:
			errs = append(errs, fmt.Sprintf("set %q: unknown kind %q", s.ID, s.Kind))
		}
	}

	if s.Kind == KindDeck && s.Mastered > s.CardCount {
		errs = append(errs, fmt.Sprintf("set %q: mastered %d exceeds card count %d", s.ID, s.Mastered, s.CardCount))
	}

	return errs
}
