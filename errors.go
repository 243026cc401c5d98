package msitab

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for runtime operations.
var (
	// ErrInvalidIdentifier is returned when a string does not form a
	// valid installer identifier.
	ErrInvalidIdentifier = errors.New("msitab: invalid identifier")

	// ErrIdentifierExhausted is returned when an identifier generator
	// cannot mint a fresh value.
	ErrIdentifierExhausted = errors.New("msitab: identifier space exhausted")
)

// ParseError reports why a piece of text is not a valid identifier.
type ParseError struct {
	Text   string
	Reason string
}

// Error returns the error string.
func (e *ParseError) Error() string {
	return fmt.Sprintf("msitab: cannot parse %q as identifier: %s", e.Text, e.Reason)
}

// Is reports whether the target matches the sentinel for ParseError.
// This allows errors.Is(err, ErrInvalidIdentifier) to return true.
func (e *ParseError) Is(err error) bool {
	return err == ErrInvalidIdentifier
}

// IsParseError reports whether the error is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
