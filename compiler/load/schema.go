// Package load holds the intermediate representation the compiler
// consumes: entity and field descriptors resolved from the declarative
// schema surface, plus JSON round-tripping of that IR.
package load

import (
	"encoding/json"
	"fmt"

	"github.com/packfold/msitab"
	"github.com/packfold/msitab/schema"
	"github.com/packfold/msitab/schema/field"
)

// Schema is one entity that was loaded from a declarative definition.
// Field order matches declaration order and is preserved by every
// derived artifact.
type Schema struct {
	Name   string   `json:"name,omitempty"`
	Fields []*Field `json:"fields,omitempty"`
}

// Field is one column candidate that was loaded from a field descriptor.
type Field struct {
	Name        string             `json:"name,omitempty"`
	Category    msitab.Category    `json:"category,omitempty"`
	Length      *int               `json:"length,omitempty"`
	ColumnName  string             `json:"column_name,omitempty"`
	PrimaryKey  bool               `json:"primary_key,omitempty"`
	Identifier  *IdentifierOptions `json:"identifier,omitempty"`
	Localizable bool               `json:"localizable,omitempty"`
	Optional    bool               `json:"optional,omitempty"`
	Position    int                `json:"position"`
}

// IdentifierOptions mirror the identifier sub-options of a field.
type IdentifierOptions struct {
	Generated  bool   `json:"generated,omitempty"`
	ForeignKey string `json:"foreign_key,omitempty"`
}

// Group is a set of entities compiled together as variants of one
// schema group.
type Group struct {
	Name     string    `json:"name,omitempty"`
	Variants []*Schema `json:"variants,omitempty"`
}

// NewField creates a loaded field from a field descriptor. It returns
// an error if the descriptor carries a deferred builder error or is
// structurally incomplete.
func NewField(fd *field.Descriptor) (*Field, error) {
	if fd.Err != nil {
		return nil, fmt.Errorf("field %q: %w", fd.Name, fd.Err)
	}
	if fd.Name == "" {
		return nil, fmt.Errorf("field name cannot be empty")
	}
	lf := &Field{
		Name:        fd.Name,
		Category:    fd.Category,
		ColumnName:  fd.ColumnName,
		PrimaryKey:  fd.PrimaryKey,
		Localizable: fd.Localizable,
		Optional:    fd.Optional,
	}
	if fd.Length != 0 {
		length := fd.Length
		lf.Length = &length
	}
	if opts := fd.Identifier; opts != nil {
		lf.Identifier = &IdentifierOptions{
			Generated:  opts.Generated,
			ForeignKey: opts.ForeignKey,
		}
	}
	return lf, nil
}

// NewSchema loads an entity definition into the IR.
func NewSchema(e schema.Entity) (*Schema, error) {
	s := &Schema{Name: e.Name, Fields: make([]*Field, 0, len(e.Fields))}
	if s.Name == "" {
		return nil, fmt.Errorf("entity name cannot be empty")
	}
	for i, fb := range e.Fields {
		lf, err := NewField(fb.Descriptor())
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", e.Name, err)
		}
		lf.Position = i
		s.Fields = append(s.Fields, lf)
	}
	return s, nil
}

// NewGroup loads a group definition into the IR. Every variant loads
// independently; the first failure aborts the whole group.
func NewGroup(g schema.Group) (*Group, error) {
	lg := &Group{Name: g.Name, Variants: make([]*Schema, 0, len(g.Entities))}
	if lg.Name == "" {
		return nil, fmt.Errorf("group name cannot be empty")
	}
	for _, e := range g.Entities {
		s, err := NewSchema(e)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		lg.Variants = append(lg.Variants, s)
	}
	return lg, nil
}

// SingleGroup wraps one entity as a one-variant group, named after the
// entity. The compiler treats single entities and groups uniformly.
func SingleGroup(s *Schema) *Group {
	return &Group{Name: s.Name, Variants: []*Schema{s}}
}

// MarshalGroup encodes a loaded group as JSON.
func MarshalGroup(g *Group) ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

// UnmarshalGroup decodes a loaded group from JSON and validates each
// variant's fields.
func UnmarshalGroup(buf []byte) (*Group, error) {
	g := &Group{}
	if err := json.Unmarshal(buf, g); err != nil {
		return nil, err
	}
	for _, s := range g.Variants {
		if s.Name == "" {
			return nil, fmt.Errorf("group %q: variant name cannot be empty", g.Name)
		}
		for i, f := range s.Fields {
			if f.Name == "" {
				return nil, fmt.Errorf("entity %q: field %d name cannot be empty", s.Name, i)
			}
			f.Position = i
		}
	}
	return g, nil
}
