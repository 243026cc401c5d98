// Package field provides fluent builders for declaring installer-table
// columns.
//
// A field carries a storage category, an explicit maximum length for
// string categories, and the flags that drive column derivation:
//
//	field.Identifier("directory").Length(72).PrimaryKey().Generated()
//	field.Identifier("parent_directory").Optional().ForeignKey("Directory").
//		ColumnName("Directory_Parent").Length(72)
//	field.New("default_dir", msitab.CategoryDefaultDir).Length(255).Localizable()
//
// Builders defer all errors to the Descriptor's Err field; the compiler
// surfaces them when the entity is loaded.
package field

import (
	"errors"
	"fmt"

	"github.com/packfold/msitab"
)

// IdentifierOptions are the sub-options of a field declared as an
// identifier.
type IdentifierOptions struct {
	// Generated requests a generator that mints values for this field.
	Generated bool `json:"generated,omitempty"`
	// ForeignKey names the entity whose table this field references.
	ForeignKey string `json:"foreign_key,omitempty"`
}

// Descriptor holds the declared properties of one column candidate. It
// is the raw material the loader validates into the compiler's IR.
type Descriptor struct {
	Name        string             // field name, unique within the entity
	Category    msitab.Category    // storage category, required
	Length      int                // maximum string length; 0 means undeclared
	ColumnName  string             // optional column-name override
	PrimaryKey  bool               // part of the table's primary key
	Identifier  *IdentifierOptions // identifier options, if the field is one
	Localizable bool               // localizable per the installer documentation
	Optional    bool               // optional-wrapped value, drives nullability
	Err         error              // deferred builder error
}

// Builder accumulates a Descriptor.
type Builder struct {
	desc *Descriptor
}

// New starts declaring a field with the given name and category.
// Fields of the Identifier category carry identifier options from the
// start; other categories gain them through Generated or ForeignKey.
func New(name string, category msitab.Category) *Builder {
	b := &Builder{desc: &Descriptor{Name: name, Category: category}}
	if name == "" {
		b.fail(errors.New("field name cannot be empty"))
	}
	if category == msitab.CategoryIdentifier {
		b.identifier()
	}
	return b
}

// Identifier declares a field of the Identifier category.
func Identifier(name string) *Builder { return New(name, msitab.CategoryIdentifier) }

// Integer declares a field stored as a fixed 16-bit integer.
func Integer(name string) *Builder { return New(name, msitab.CategoryInteger) }

// DoubleInteger declares a field stored as a fixed 32-bit integer.
func DoubleInteger(name string) *Builder { return New(name, msitab.CategoryDoubleInteger) }

// Text declares a field of the Text category.
func Text(name string) *Builder { return New(name, msitab.CategoryText) }

// Formatted declares a field of the Formatted category.
func Formatted(name string) *Builder { return New(name, msitab.CategoryFormatted) }

// Filename declares a field of the Filename category.
func Filename(name string) *Builder { return New(name, msitab.CategoryFilename) }

// Condition declares a field of the Condition category.
func Condition(name string) *Builder { return New(name, msitab.CategoryCondition) }

// GUID declares a field of the Guid category.
func GUID(name string) *Builder { return New(name, msitab.CategoryGUID) }

// Length sets the maximum string length. It is required for every
// category except Integer and DoubleInteger.
func (b *Builder) Length(n int) *Builder {
	if n <= 0 {
		b.fail(fmt.Errorf("length must be positive, got %d", n))
		return b
	}
	b.desc.Length = n
	return b
}

// ColumnName overrides the derived column name.
func (b *Builder) ColumnName(name string) *Builder {
	b.desc.ColumnName = name
	return b
}

// PrimaryKey marks the field as part of the table's primary key.
func (b *Builder) PrimaryKey() *Builder {
	b.desc.PrimaryKey = true
	return b
}

// Generated marks the field as an identifier whose values are minted by
// a generator owned by the table.
func (b *Builder) Generated() *Builder {
	b.identifier().Generated = true
	return b
}

// ForeignKey marks the field as an identifier referencing the named
// entity's table.
func (b *Builder) ForeignKey(entity string) *Builder {
	if entity == "" {
		b.fail(errors.New("foreign key entity cannot be empty"))
		return b
	}
	b.identifier().ForeignKey = entity
	return b
}

// Localizable marks the field as localizable.
func (b *Builder) Localizable() *Builder {
	b.desc.Localizable = true
	return b
}

// Optional marks the field's value as optional-wrapped; the derived
// column is nullable.
func (b *Builder) Optional() *Builder {
	b.desc.Optional = true
	return b
}

// Descriptor returns the accumulated descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}

func (b *Builder) identifier() *IdentifierOptions {
	if b.desc.Identifier == nil {
		b.desc.Identifier = &IdentifierOptions{}
	}
	return b.desc.Identifier
}

// fail records the first builder error.
func (b *Builder) fail(err error) {
	if b.desc.Err == nil {
		b.desc.Err = err
	}
}
