// Package gen compiles loaded entity schemas into their derived
// artifacts: the identifier wrapper and generator, the data-access
// holder, the table container and, for variant groups, the tagged
// union over the per-variant table types.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the fatal compilation diagnostics. Compilation
// is fail-fast: any of these aborts the whole group with no partial
// output.
var (
	// ErrAmbiguousIdentifier indicates more than one field qualifies
	// as the entity's primary identifier.
	ErrAmbiguousIdentifier = errors.New("msitab: ambiguous primary identifier")
	// ErrInconsistentIdentifier indicates a generator was requested
	// for a field that carries no identifier options.
	ErrInconsistentIdentifier = errors.New("msitab: inconsistent identifier configuration")
	// ErrInvalidCategory indicates a field's category does not resolve
	// to a recognized value.
	ErrInvalidCategory = errors.New("msitab: invalid category")
	// ErrMissingLength indicates a non-integer category without a
	// declared maximum length.
	ErrMissingLength = errors.New("msitab: missing required length")
	// ErrUnknownReference indicates a foreign key names an entity that
	// is not part of the compiled group.
	ErrUnknownReference = errors.New("msitab: unknown referenced entity")
	// ErrGenerationFailed indicates artifact emission failed.
	ErrGenerationFailed = errors.New("msitab: artifact generation failed")
)

// CompileError is a fatal schema compilation error. It wraps one of
// the diagnostic sentinels so callers can match with errors.Is.
type CompileError struct {
	Entity  string // entity name
	Field   string // field name, if applicable
	Message string
	Err     error // the matching sentinel
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString("msitab: compile error")
	if e.Entity != "" {
		b.WriteString(" on entity ")
		b.WriteString(e.Entity)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap returns the diagnostic sentinel.
func (e *CompileError) Unwrap() error { return e.Err }

// NewCompileError creates a CompileError wrapping the given sentinel.
func NewCompileError(sentinel error, entity, field, message string) *CompileError {
	return &CompileError{Entity: entity, Field: field, Message: message, Err: sentinel}
}

// IsCompileError reports whether the error is a CompileError.
func IsCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}

// GenerationError reports a failure while emitting an artifact file.
type GenerationError struct {
	Entity string
	File   string
	Cause  error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("msitab: generation error")
	if e.Entity != "" {
		b.WriteString(" for entity ")
		b.WriteString(e.Entity)
	}
	if e.File != "" {
		fmt.Fprintf(&b, " (file: %s)", e.File)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the generation sentinel.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(entity, file string, cause error) *GenerationError {
	return &GenerationError{Entity: entity, File: file, Cause: cause}
}
