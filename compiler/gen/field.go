package gen

import (
	"github.com/packfold/msitab"
	"github.com/packfold/msitab/compiler/load"
)

// Field holds the compiled information of one entity field. Its column
// descriptor is derived once, at compilation time, independently of
// every other field.
type Field struct {
	def *load.Field
	typ *Type
	// Name is the field's symbolic name, unique within the entity.
	Name string
	// Column is the derived column descriptor.
	Column msitab.Column
}

// newField derives the column descriptor for a loaded field. It fails
// with the matching diagnostic when the category is unrecognized or a
// string category lacks a length.
func newField(t *Type, def *load.Field) (*Field, error) {
	f := &Field{def: def, typ: t, Name: def.Name}
	if !def.Category.Valid() {
		return nil, NewCompileError(ErrInvalidCategory, t.Name, def.Name,
			"category does not resolve to a recognized value")
	}
	b := msitab.BuildColumn(f.ColumnName())
	if def.PrimaryKey {
		b.PrimaryKey()
	}
	if def.Optional {
		b.Nullable()
	}
	if def.Localizable {
		b.Localizable()
	}
	if id := def.Identifier; id != nil && id.ForeignKey != "" {
		// The link always targets column index 0 of the referenced
		// table; the referenced primary-key index is not resolved.
		b.ForeignKey(titleCase(id.ForeignKey), 0)
	}
	b.Category(def.Category)
	switch def.Category {
	case msitab.CategoryInteger:
		f.Column = b.Int16()
	case msitab.CategoryDoubleInteger:
		f.Column = b.Int32()
	default:
		if def.Length == nil {
			return nil, NewCompileError(ErrMissingLength, t.Name, def.Name,
				"category "+def.Category.String()+" requires a declared length")
		}
		f.Column = b.String(*def.Length)
	}
	return f, nil
}

// ColumnName returns the explicit override if present, else the field
// name converted to title case with separators removed.
func (f *Field) ColumnName() string {
	if f.def.ColumnName != "" {
		return f.def.ColumnName
	}
	return pascal(f.def.Name)
}

// StructField returns the unexported Go struct field name.
func (f *Field) StructField() string { return camelDown(f.def.Name) }

// Accessor returns the exported getter name.
func (f *Field) Accessor() string { return pascal(f.def.Name) }

// Optional reports whether the field's value is optional-wrapped.
func (f *Field) Optional() bool { return f.def.Optional }

// PrimaryKey reports whether the field is part of the primary key.
func (f *Field) PrimaryKey() bool { return f.def.PrimaryKey }

// Localizable reports whether the field is localizable.
func (f *Field) Localizable() bool { return f.def.Localizable }

// Category returns the field's declared storage category.
func (f *Field) Category() msitab.Category { return f.def.Category }

// HasIdentifierOptions reports whether the field carries identifier
// options.
func (f *Field) HasIdentifierOptions() bool { return f.def.Identifier != nil }

// Generated reports whether the field requests a generator.
func (f *Field) Generated() bool {
	return f.def.Identifier != nil && f.def.Identifier.Generated
}

// ForeignEntity returns the referenced entity name, capitalized, or ""
// if the field is not a foreign key.
func (f *Field) ForeignEntity() string {
	if f.def.Identifier == nil {
		return ""
	}
	return titleCase(f.def.Identifier.ForeignKey)
}

// isPrimaryIdentifier reports whether the field qualifies as the
// entity's primary identifier: part of the primary key, carrying
// identifier options, and not a foreign key.
func (f *Field) isPrimaryIdentifier() bool {
	return f.def.PrimaryKey && f.def.Identifier != nil && f.def.Identifier.ForeignKey == ""
}
