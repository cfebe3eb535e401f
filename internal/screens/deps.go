// Package screens holds the dependencies shared by the studyhub screens.
package screens

import (
	"log/slog"
	"time"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/logging"
	"github.com/abhisek/studyhub/internal/session"
)

// Deps is passed from the app to every screen that starts or scores an
// attempt.
type Deps struct {
	Catalog *catalog.Catalog

	// Bands scores every summary. It is used as given, so callers pass the
	// validated configuration, zero thresholds included.
	Bands session.Bands

	// Timer enables the mock test countdown.
	Timer bool

	Logger *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Log returns the logger, never nil.
func (d Deps) Log() *slog.Logger {
	return logging.OrDiscard(d.Logger)
}

// Clock returns the current time.
func (d Deps) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
