package session

import "errors"

// Sentinel errors for engine operations. Every operation that returns one of
// these leaves the state it was called on unchanged.
// Use errors.Is to check: errors.Is(err, session.ErrNotRevealed)
var (
	ErrEmptySet               = errors.New("session: set has no items")
	ErrWrongKind              = errors.New("session: set kind does not match session mode")
	ErrNotStarted             = errors.New("session: session not started")
	ErrInvalidItem            = errors.New("session: item index out of range")
	ErrInvalidChoice          = errors.New("session: choice index out of range")
	ErrInvalidOutcome         = errors.New("session: invalid card outcome")
	ErrNotRevealed            = errors.New("session: card must be revealed before classification")
	ErrOperationAfterTerminal = errors.New("session: operation not allowed after session end")
)
