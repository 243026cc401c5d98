package msitab

import "fmt"

// ColumnType is the concrete storage width of a column.
type ColumnType uint8

const (
	// ColumnInt16 is a fixed 16-bit integer column.
	ColumnInt16 ColumnType = iota
	// ColumnInt32 is a fixed 32-bit integer column.
	ColumnInt32
	// ColumnString is a string column with an explicit maximum length.
	ColumnString
)

// String returns a short description of the column type.
func (t ColumnType) String() string {
	switch t {
	case ColumnInt16:
		return "int16"
	case ColumnInt32:
		return "int32"
	default:
		return "string"
	}
}

// ForeignKey links a column to another table in the same database.
type ForeignKey struct {
	// Table is the name of the referenced table.
	Table string `msgpack:"table" json:"table"`
	// Column is the positional index of the referenced column.
	Column int `msgpack:"column" json:"column"`
}

// Column describes one column of a table: its name, category, storage
// width and constraints. Columns are produced by the schema compiler
// and consumed by the database writer.
type Column struct {
	Name        string      `msgpack:"name" json:"name"`
	Category    Category    `msgpack:"category" json:"category"`
	Type        ColumnType  `msgpack:"type" json:"type"`
	Size        int         `msgpack:"size,omitempty" json:"size,omitempty"`
	Nullable    bool        `msgpack:"nullable,omitempty" json:"nullable,omitempty"`
	PrimaryKey  bool        `msgpack:"primary_key,omitempty" json:"primary_key,omitempty"`
	Localizable bool        `msgpack:"localizable,omitempty" json:"localizable,omitempty"`
	ForeignKey  *ForeignKey `msgpack:"foreign_key,omitempty" json:"foreign_key,omitempty"`
}

// String renders the column for diagnostics.
func (c Column) String() string {
	s := fmt.Sprintf("%s %s(%s", c.Name, c.Type, c.Category)
	if c.Type == ColumnString {
		s = fmt.Sprintf("%s, %d", s, c.Size)
	}
	s += ")"
	if c.PrimaryKey {
		s += " primary_key"
	}
	if c.Nullable {
		s += " nullable"
	}
	if c.Localizable {
		s += " localizable"
	}
	if fk := c.ForeignKey; fk != nil {
		s += fmt.Sprintf(" foreign_key(%s, %d)", fk.Table, fk.Column)
	}
	return s
}

// ColumnBuilder assembles a Column. The zero-valued builder is not
// usable; start with BuildColumn.
type ColumnBuilder struct {
	col Column
}

// BuildColumn starts building a column with the given name.
func BuildColumn(name string) *ColumnBuilder {
	return &ColumnBuilder{col: Column{Name: name}}
}

// PrimaryKey marks the column as part of the table's primary key.
func (b *ColumnBuilder) PrimaryKey() *ColumnBuilder {
	b.col.PrimaryKey = true
	return b
}

// Nullable marks the column as accepting null values.
func (b *ColumnBuilder) Nullable() *ColumnBuilder {
	b.col.Nullable = true
	return b
}

// Localizable marks the column as localizable.
func (b *ColumnBuilder) Localizable() *ColumnBuilder {
	b.col.Localizable = true
	return b
}

// ForeignKey links the column to the given column index of another table.
func (b *ColumnBuilder) ForeignKey(table string, column int) *ColumnBuilder {
	b.col.ForeignKey = &ForeignKey{Table: table, Column: column}
	return b
}

// Category sets the column's storage category.
func (b *ColumnBuilder) Category(c Category) *ColumnBuilder {
	b.col.Category = c
	return b
}

// Int16 finishes the column as a fixed 16-bit integer column.
func (b *ColumnBuilder) Int16() Column {
	b.col.Type = ColumnInt16
	return b.col
}

// Int32 finishes the column as a fixed 32-bit integer column.
func (b *ColumnBuilder) Int32() Column {
	b.col.Type = ColumnInt32
	return b.col
}

// String finishes the column as a string column of the given maximum length.
func (b *ColumnBuilder) String(size int) Column {
	b.col.Type = ColumnString
	b.col.Size = size
	return b.col
}
