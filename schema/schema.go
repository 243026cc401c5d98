// Package schema is the declarative surface for defining installer
// tables. An Entity names one table-kind and lists its fields in
// column order; a Group gathers entities that are compiled together as
// variants of one schema.
package schema

import "github.com/packfold/msitab/schema/field"

// Entity describes one table-kind to be compiled into identifier, data
// object and table artifacts.
type Entity struct {
	// Name is the entity's display name. It is capitalized on intake,
	// so "directory" and "Directory" declare the same entity.
	Name string
	// Fields are the entity's column candidates, in declaration order.
	// Order is significant and preserved by every derived artifact.
	Fields []*field.Builder
}

// Group gathers entities compiled together. Foreign-key references
// resolve within the group, and a tagged union over the per-variant
// table types is emitted for groups with more than one entity.
type Group struct {
	// Name names the schema group and its tagged union type.
	Name string
	// Entities are the group's variants, each compiled independently.
	Entities []Entity
}
