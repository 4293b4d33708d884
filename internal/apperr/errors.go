// Package apperr defines the error taxonomy shared across Ansuz components.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a note referenced directly by the user
	// does not exist in the vault.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguousName is returned when more than one vault file resolves
	// to the same display name.
	ErrAmbiguousName = errors.New("ambiguous note name")

	// ErrAlreadyExists is returned when creating a note whose name is
	// already taken.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidDepth is returned when a graph expansion is requested
	// beyond the bounded depth limit.
	ErrInvalidDepth = errors.New("invalid depth")
)

// RoutingError reports a tool invocation that matched no known handler.
// Unlike the sentinel errors above it is fatal to the conversational turn:
// it must surface to the caller instead of being narrated back to the model.
type RoutingError struct {
	Tool string // tool name as produced by the model, may be empty
}

func (e *RoutingError) Error() string {
	if e.Tool == "" {
		return "routing: unrecognized tool invocation"
	}
	return fmt.Sprintf("routing: unrecognized tool invocation %q", e.Tool)
}

// Recoverable reports whether err is one of the vault errors that should be
// converted into a tool-result message so the model can narrate the failure.
func Recoverable(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAmbiguousName) ||
		errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrInvalidDepth)
}
