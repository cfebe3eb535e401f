package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSetNotFound is returned when a lookup names an unknown set.
	ErrSetNotFound = errors.New("catalog: set not found")

	// ErrUnsupportedVersion is returned when the catalog file declares a
	// format version this build cannot read.
	ErrUnsupportedVersion = errors.New("catalog: unsupported catalog version")
)

// ValidationError lists every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog: %d problem(s): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// SchemaError indicates the catalog file does not conform to the catalog
// JSON schema.
type SchemaError struct {
	Source string
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalog %s: schema validation failed: %v", e.Source, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
