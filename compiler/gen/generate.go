package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/packfold/msitab"
)

const (
	rootPkg  = "github.com/packfold/msitab"
	idgenPkg = "github.com/packfold/msitab/idgen"

	defaultHeader  = "Code generated by msitabc. DO NOT EDIT."
	defaultPackage = "tables"
)

// Generator emits the compiled graph's artifacts as Go source files:
// per entity an identifier file (wrapper plus optional generator), a
// dao file and a table file, and for multi-variant groups one tagged
// union file. Output is deterministic for a given graph.
type Generator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string
	header  string
}

// NewGenerator creates a generator for the compiled graph, using the
// graph's config for target directory, package name and file header.
func NewGenerator(g *Graph) *Generator {
	gen := &Generator{
		graph:   g,
		workers: runtime.GOMAXPROCS(0),
		outDir:  g.Target,
		pkg:     g.Package,
		header:  g.Header,
	}
	if gen.pkg == "" {
		gen.pkg = defaultPackage
	}
	if gen.header == "" {
		gen.header = defaultHeader
	}
	return gen
}

// WithWorkers sets the number of parallel file writers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// Generate writes every artifact file. Files for different entities
// are written in parallel; any failure aborts the whole run.
func (g *Generator) Generate(ctx context.Context) error {
	if g.outDir == "" {
		return NewCompileError(ErrGenerationFailed, g.graph.Group, "", "target directory not set")
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return NewGenerationError(g.graph.Group, g.outDir, err)
	}

	errg, _ := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)

	for _, t := range g.graph.Nodes {
		t := t
		if t.PrimaryIdentifier != nil {
			errg.Go(func() error {
				f, err := g.genIdentifier(t)
				if err != nil {
					return err
				}
				return g.writeFile(t, f, t.FileName("identifier"))
			})
		}
		errg.Go(func() error {
			return g.writeFile(t, g.genDao(t), t.FileName("dao"))
		})
		errg.Go(func() error {
			return g.writeFile(t, g.genTable(t), t.FileName("table"))
		})
	}

	if g.graph.HasUnion() {
		errg.Go(func() error {
			name := strings.ToLower(g.graph.UnionName()) + ".go"
			return g.writeFile(nil, g.genUnion(), name)
		})
	}

	return errg.Wait()
}

// Render returns every artifact file as rendered source, keyed by file
// name. It performs no filesystem writes; tests and the watch helper
// use it.
func (g *Generator) Render() (map[string]string, error) {
	files := make(map[string]string)
	for _, t := range g.graph.Nodes {
		if t.PrimaryIdentifier != nil {
			f, err := g.genIdentifier(t)
			if err != nil {
				return nil, err
			}
			src, err := render(f)
			if err != nil {
				return nil, NewGenerationError(t.Name, t.FileName("identifier"), err)
			}
			files[t.FileName("identifier")] = src
		}
		src, err := render(g.genDao(t))
		if err != nil {
			return nil, NewGenerationError(t.Name, t.FileName("dao"), err)
		}
		files[t.FileName("dao")] = src
		src, err = render(g.genTable(t))
		if err != nil {
			return nil, NewGenerationError(t.Name, t.FileName("table"), err)
		}
		files[t.FileName("table")] = src
	}
	if g.graph.HasUnion() {
		name := strings.ToLower(g.graph.UnionName()) + ".go"
		src, err := render(g.genUnion())
		if err != nil {
			return nil, NewGenerationError(g.graph.Group, name, err)
		}
		files[name] = src
	}
	return files, nil
}

func render(f *jen.File) (string, error) {
	var b strings.Builder
	if err := f.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// writeFile renders a jennifer file directly to disk.
func (g *Generator) writeFile(t *Type, f *jen.File, filename string) error {
	path := filepath.Join(g.outDir, filename)
	out, err := os.Create(path)
	if err != nil {
		return g.genErr(t, filename, err)
	}
	defer out.Close()
	if err := f.Render(out); err != nil {
		return g.genErr(t, filename, err)
	}
	return nil
}

func (g *Generator) genErr(t *Type, filename string, err error) error {
	entity := g.graph.Group
	if t != nil {
		entity = t.Name
	}
	return NewGenerationError(entity, filename, err)
}

// newFile creates a jennifer file with the configured header comment.
func (g *Generator) newFile() *jen.File {
	f := jen.NewFile(g.pkg)
	f.HeaderComment(g.header)
	return f
}

// baseType returns the Go type of a field's value, ignoring
// optionality. Identifier fields resolve to the typed wrapper of the
// owning or referenced entity when one exists in the graph.
func (g *Generator) baseType(t *Type, f *Field) jen.Code {
	switch {
	case f.Category() == msitab.CategoryInteger:
		return jen.Int16()
	case f.Category() == msitab.CategoryDoubleInteger:
		return jen.Int32()
	case t.PrimaryIdentifier == f:
		return jen.Id(t.IdentifierName())
	case f.ForeignEntity() != "":
		if ref, ok := g.graph.Lookup(f.ForeignEntity()); ok && ref.PrimaryIdentifier != nil {
			return jen.Id(ref.IdentifierName())
		}
		// The referenced entity is outside the graph or has no typed
		// identifier; the field degrades to the opaque type.
		return jen.Qual(rootPkg, "Identifier")
	case f.Category() == msitab.CategoryIdentifier:
		return jen.Qual(rootPkg, "Identifier")
	default:
		return jen.String()
	}
}

// goType returns the Go type of a field's struct member; optional
// fields become pointers.
func (g *Generator) goType(t *Type, f *Field) jen.Code {
	base := g.baseType(t, f)
	if f.Optional() {
		return jen.Op("*").Add(base)
	}
	return base
}

// rowValue returns the expression converting a field to its row value.
func (g *Generator) rowValue(t *Type, f *Field) jen.Code {
	recv := jen.Id(t.DaoReceiver()).Dot(f.StructField())
	wrapped := func() bool {
		switch {
		case f.Category() == msitab.CategoryInteger, f.Category() == msitab.CategoryDoubleInteger:
			return false
		case t.PrimaryIdentifier == f, f.ForeignEntity() != "", f.Category() == msitab.CategoryIdentifier:
			return true
		default:
			return false
		}
	}()
	switch {
	case wrapped && f.Optional():
		return jen.Qual(rootPkg, "NullableValue").Call(recv)
	case wrapped:
		return recv.Clone().Dot("ToValue").Call()
	case f.Category() == msitab.CategoryInteger && f.Optional():
		return jen.Qual(rootPkg, "NullableInt16").Call(recv)
	case f.Category() == msitab.CategoryInteger:
		return jen.Qual(rootPkg, "Int16Value").Call(recv)
	case f.Category() == msitab.CategoryDoubleInteger && f.Optional():
		return jen.Qual(rootPkg, "NullableInt32").Call(recv)
	case f.Category() == msitab.CategoryDoubleInteger:
		return jen.Qual(rootPkg, "Int").Call(recv)
	case f.Optional():
		return jen.Qual(rootPkg, "NullableStr").Call(recv)
	default:
		return jen.Qual(rootPkg, "Str").Call(recv)
	}
}
