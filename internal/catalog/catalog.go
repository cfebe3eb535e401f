// Package catalog provides the static tests and flashcard decks that
// study sessions run against.
package catalog

import "fmt"

// Catalog holds the loaded sets with precomputed indices.
type Catalog struct {
	source  string
	version string
	sets    []Set
	byID    map[string]*Set
	tests   []*Set
	decks   []*Set
}

// newCatalog builds the indices over sets. sets must already be validated.
func newCatalog(source, version string, sets []Set) *Catalog {
	c := &Catalog{
		source:  source,
		version: version,
		sets:    sets,
		byID:    make(map[string]*Set, len(sets)),
	}
	for i := range c.sets {
		s := &c.sets[i]
		c.byID[s.ID] = s
		switch s.Kind {
		case KindTest:
			c.tests = append(c.tests, s)
		case KindDeck:
			c.decks = append(c.decks, s)
		}
	}
	return c
}

// Source returns where the catalog was loaded from.
func (c *Catalog) Source() string { return c.source }

// Version returns the catalog format version.
func (c *Catalog) Version() string { return c.version }

// Tests returns all mock tests in catalog order.
func (c *Catalog) Tests() []*Set {
	return append([]*Set(nil), c.tests...)
}

// Decks returns all flashcard decks in catalog order.
func (c *Catalog) Decks() []*Set {
	return append([]*Set(nil), c.decks...)
}

// Set returns the set with the given ID.
func (c *Catalog) Set(id string) (*Set, error) {
	s, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSetNotFound, id)
	}
	return s, nil
}

// SetOfKind returns the set with the given ID, failing if it is not of kind k.
func (c *Catalog) SetOfKind(id string, k Kind) (*Set, error) {
	s, err := c.Set(id)
	if err != nil {
		return nil, err
	}
	if s.Kind != k {
		return nil, fmt.Errorf("%w: %q is a %s, not a %s", ErrSetNotFound, id, s.Kind.DisplayName(), k.DisplayName())
	}
	return s, nil
}
