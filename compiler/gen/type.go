package gen

import (
	"strings"

	"github.com/packfold/msitab"
	"github.com/packfold/msitab/compiler/load"
)

// Type represents one compiled entity: its validated fields, derived
// columns and the names of every artifact generated for it.
type Type struct {
	*Config
	schema *load.Schema
	// Name is the entity's display name, capitalized.
	Name string
	// Fields holds the entity's compiled fields, in declaration order.
	Fields []*Field
	fields map[string]*Field
	// PrimaryIdentifier is the at-most-one field qualifying as the
	// entity's primary identifier, or nil.
	PrimaryIdentifier *Field
}

// NewType compiles a loaded schema into a Type. Validation is
// fail-fast: the first diagnostic aborts compilation.
func NewType(c *Config, schema *load.Schema) (*Type, error) {
	if c == nil {
		c = &Config{}
	}
	typ := &Type{
		Config: c,
		schema: schema,
		Name:   titleCase(schema.Name),
		Fields: make([]*Field, 0, len(schema.Fields)),
		fields: make(map[string]*Field, len(schema.Fields)),
	}
	if err := validEntityName(typ.Name); err != nil {
		return nil, NewCompileError(ErrGenerationFailed, schema.Name, "", err.Error())
	}
	for _, def := range schema.Fields {
		if _, ok := typ.fields[def.Name]; ok {
			return nil, NewCompileError(ErrGenerationFailed, typ.Name, def.Name,
				"field redeclared")
		}
		f, err := newField(typ, def)
		if err != nil {
			return nil, err
		}
		if f.isPrimaryIdentifier() {
			if typ.PrimaryIdentifier != nil {
				return nil, NewCompileError(ErrAmbiguousIdentifier, typ.Name, def.Name,
					"more than one field qualifies as primary identifier")
			}
			typ.PrimaryIdentifier = f
		}
		typ.Fields = append(typ.Fields, f)
		typ.fields[def.Name] = f
	}
	return typ, nil
}

// HasGenerator reports whether the entity declared a generated primary
// identifier and therefore owns a generator artifact.
func (t *Type) HasGenerator() bool {
	return t.PrimaryIdentifier != nil && t.PrimaryIdentifier.Generated()
}

// Columns returns the derived column descriptors, in field declaration
// order.
func (t *Type) Columns() []msitab.Column {
	cols := make([]msitab.Column, len(t.Fields))
	for i, f := range t.Fields {
		cols[i] = f.Column
	}
	return cols
}

// PrimaryKeyIndices returns the 0-based positions, in declaration
// order, of every field marked as part of the primary key.
func (t *Type) PrimaryKeyIndices() []int {
	var indices []int
	for i, f := range t.Fields {
		if f.PrimaryKey() {
			indices = append(indices, i)
		}
	}
	return indices
}

// IDPrefix returns the prefix a generator for this entity mints
// identifiers with: the entity name, upper-cased.
func (t *Type) IDPrefix() string { return strings.ToUpper(t.Name) }

// IdentifierName returns the name of the identifier wrapper type.
func (t *Type) IdentifierName() string { return t.Name + "Identifier" }

// GeneratorName returns the name of the identifier generator type.
func (t *Type) GeneratorName() string { return t.Name + "IdentifierGenerator" }

// DaoName returns the name of the data-access holder type.
func (t *Type) DaoName() string { return t.Name + "Dao" }

// TableName returns the name of the table container type.
func (t *Type) TableName() string { return t.Name + "Table" }

// FileName returns the base name of the generated file for a given
// artifact suffix, e.g. "directory_table.go".
func (t *Type) FileName(suffix string) string {
	return strings.ToLower(t.Name) + "_" + suffix + ".go"
}

// DaoReceiver returns the receiver name used by Dao methods.
func (t *Type) DaoReceiver() string { return "_d" }

// TableReceiver returns the receiver name used by Table methods.
func (t *Type) TableReceiver() string { return "_t" }

// GeneratorReceiver returns the receiver name used by Generator methods.
func (t *Type) GeneratorReceiver() string { return "_g" }

// FieldBy returns the first field the given function reports true on.
func (t *Type) FieldBy(fn func(*Field) bool) (*Field, bool) {
	for _, f := range t.Fields {
		if fn(f) {
			return f, true
		}
	}
	return nil, false
}
