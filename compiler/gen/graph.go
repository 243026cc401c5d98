package gen

import (
	"github.com/packfold/msitab/compiler/load"
)

// Graph is a compiled variant group: every entity compiled
// independently, with foreign-key references resolved across the
// group, plus the naming of the tagged union that couples the
// variants together.
type Graph struct {
	*Config
	group *load.Group
	// Group is the schema group's display name, capitalized.
	Group string
	// Nodes holds the compiled entities, in declaration order.
	Nodes []*Type
	nodes map[string]*Type
}

// NewGraph compiles a loaded group. Per-entity validation happens
// first and is fail-fast: any variant's diagnostic aborts the whole
// group with no partial output. Reference resolution across variants
// runs after every entity compiled.
func NewGraph(c *Config, group *load.Group, opts ...Option) (*Graph, error) {
	if c == nil {
		c = &Config{}
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	g := &Graph{
		Config: c,
		group:  group,
		Group:  titleCase(group.Name),
		Nodes:  make([]*Type, 0, len(group.Variants)),
		nodes:  make(map[string]*Type, len(group.Variants)),
	}
	if err := validEntityName(g.Group); err != nil {
		return nil, NewCompileError(ErrGenerationFailed, group.Name, "", err.Error())
	}
	for _, s := range group.Variants {
		typ, err := NewType(c, s)
		if err != nil {
			return nil, err
		}
		if _, ok := g.nodes[typ.Name]; ok {
			return nil, NewCompileError(ErrGenerationFailed, typ.Name, "",
				"entity redeclared in group")
		}
		g.Nodes = append(g.Nodes, typ)
		g.nodes[typ.Name] = typ
	}
	if err := g.resolveReferences(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewSingle compiles one entity as a one-variant group.
func NewSingle(c *Config, schema *load.Schema, opts ...Option) (*Graph, error) {
	return NewGraph(c, load.SingleGroup(schema), opts...)
}

// resolveReferences checks that every foreign key names an entity in
// the group. A single-variant graph skips the check: its siblings are
// unknowable at compile time, and the link degrades to the blind
// column-0 reference the writer resolves later.
func (g *Graph) resolveReferences() error {
	if len(g.Nodes) < 2 {
		return nil
	}
	for _, t := range g.Nodes {
		for _, f := range t.Fields {
			ref := f.ForeignEntity()
			if ref == "" {
				continue
			}
			if _, ok := g.nodes[ref]; !ok {
				return NewCompileError(ErrUnknownReference, t.Name, f.Name,
					"foreign key references entity "+ref+" outside the group")
			}
		}
	}
	return nil
}

// HasUnion reports whether the graph emits a tagged union, i.e. the
// group declares more than one variant.
func (g *Graph) HasUnion() bool { return len(g.Nodes) > 1 }

// UnionName returns the name of the tagged union type over the
// per-variant table types.
func (g *Graph) UnionName() string { return g.Group }

// KindName returns the name of the union's tag type.
func (g *Graph) KindName() string { return g.Group + "Kind" }

// Lookup returns the compiled entity with the given (capitalized)
// name.
func (g *Graph) Lookup(name string) (*Type, bool) {
	t, ok := g.nodes[name]
	return t, ok
}
