// Package msitab defines the runtime contract shared between the schema
// compiler and the generated installer-table artifacts: the opaque
// Identifier type, row values, column descriptors and the interfaces the
// database writer consumes.
package msitab

import (
	"fmt"
	"unicode"
)

// Identifier is an opaque, validated installer identifier. Identifiers
// start with a letter or underscore and contain only letters, digits,
// underscores and periods. The zero value is the empty (invalid)
// identifier.
type Identifier struct {
	id string
}

// ParseIdentifier validates s and returns it as an Identifier.
func ParseIdentifier(s string) (Identifier, error) {
	if s == "" {
		return Identifier{}, &ParseError{Text: s, Reason: "identifier cannot be empty"}
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return Identifier{}, &ParseError{Text: s, Reason: "identifier must start with a letter or underscore"}
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' {
			return Identifier{}, &ParseError{Text: s, Reason: fmt.Sprintf("invalid character %q", r)}
		}
	}
	return Identifier{id: s}, nil
}

// MustIdentifier is like ParseIdentifier but panics on invalid input.
// It simplifies declarations of identifiers known to be valid.
func MustIdentifier(s string) Identifier {
	id, err := ParseIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the textual form of the identifier.
func (i Identifier) String() string { return i.id }

// IsZero reports whether i is the zero (invalid) identifier.
func (i Identifier) IsZero() bool { return i.id == "" }

// ToValue implements ToValue. The zero identifier maps to a null value.
func (i Identifier) ToValue() Value {
	if i.IsZero() {
		return Null()
	}
	return Str(i.id)
}

// ToIdentifier is implemented by the generated identifier wrapper types.
type ToIdentifier interface {
	ToIdentifier() Identifier
}

// Dao is implemented by every generated row holder.
type Dao interface {
	// PrimaryIdentifier returns the row's primary identifier, if the
	// entity declares one.
	PrimaryIdentifier() (Identifier, bool)
	// ToRow returns one value per column, in column order.
	ToRow() []Value
}

// Table is the shape the database writer consumes. Every generated
// table type implements it on top of its typed entry collection.
type Table interface {
	Name() string
	Columns() []Column
	PrimaryKeyIndices() []int
	Rows() [][]Value
}
