package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/catalog.schema.json
var schemaJSON []byte

const schemaURL = "schema://studyhub/catalog.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiled returns the catalog schema, compiling it on first use.
func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw bytes.
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}

		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// validateSchema checks raw catalog JSON against the catalog schema.
func validateSchema(source string, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &SchemaError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compiled()
	if err != nil {
		return err
	}

	if err := sch.Validate(parsed); err != nil {
		return &SchemaError{Source: source, Err: err}
	}
	return nil
}
