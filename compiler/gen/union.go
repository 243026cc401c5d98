package gen

import (
	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
)

// genUnion emits the tagged union over a multi-variant group: the kind
// enum, the union struct with one pointer slot per variant table, the
// per-variant constructors and accessors, and the dispatch to the
// shared msitab.Table contract.
func (g *Generator) genUnion() *jen.File {
	f := g.newFile()
	gr := g.graph
	unionName := gr.UnionName()
	kindName := gr.KindName()

	f.Commentf("%s discriminates the variants of %s.", kindName, unionName)
	f.Type().Id(kindName).Int()

	f.Const().DefsFunc(func(d *jen.Group) {
		for i, t := range gr.Nodes {
			if i == 0 {
				d.Id(kindConst(t)).Id(kindName).Op("=").Iota()
				continue
			}
			d.Id(kindConst(t))
		}
	})

	f.Comment("String returns the variant name.")
	f.Func().Params(jen.Id("k").Id(kindName)).Id("String").Params().String().Block(
		jen.Switch(jen.Id("k")).BlockFunc(func(s *jen.Group) {
			for _, t := range gr.Nodes {
				s.Case(jen.Id(kindConst(t))).Block(jen.Return(jen.Lit(t.Name)))
			}
		}),
		jen.Return(jen.Lit("unknown")),
	)

	f.Commentf("%s holds exactly one of the group's table variants.", unionName)
	f.Type().Id(unionName).StructFunc(func(s *jen.Group) {
		s.Id("kind").Id(kindName)
		for _, t := range gr.Nodes {
			s.Id(variantField(t)).Op("*").Id(t.TableName())
		}
	})

	for _, t := range gr.Nodes {
		t := t
		f.Commentf("%sFrom%s wraps a %s.", unionName, t.Name, t.TableName())
		f.Func().Id(unionName+"From"+t.Name).Params(jen.Id("t").Op("*").Id(t.TableName())).Id(unionName).Block(
			jen.Return(jen.Id(unionName).Values(jen.Dict{
				jen.Id("kind"):          jen.Id(kindConst(t)),
				jen.Id(variantField(t)): jen.Id("t"),
			})),
		)
	}

	f.Comment("Kind returns the variant discriminator.")
	f.Func().Params(jen.Id("u").Id(unionName)).Id("Kind").Params().Id(kindName).Block(
		jen.Return(jen.Id("u").Dot("kind")),
	)

	for _, t := range gr.Nodes {
		t := t
		f.Commentf("%s returns the %s variant, reporting whether it is set.", t.Name, t.TableName())
		f.Func().Params(jen.Id("u").Id(unionName)).Id(t.Name).Params().Params(jen.Op("*").Id(t.TableName()), jen.Bool()).Block(
			jen.Return(jen.Id("u").Dot(variantField(t)), jen.Id("u").Dot("kind").Op("==").Id(kindConst(t))),
		)
	}

	f.Comment("Table returns the active variant as the shared table contract.")
	f.Func().Params(jen.Id("u").Id(unionName)).Id("Table").Params().Qual(rootPkg, "Table").Block(
		jen.Switch(jen.Id("u").Dot("kind")).BlockFunc(func(s *jen.Group) {
			for _, t := range gr.Nodes {
				s.Case(jen.Id(kindConst(t))).Block(jen.Return(jen.Id("u").Dot(variantField(t))))
			}
		}),
		jen.Return(jen.Nil()),
	)

	return f
}

// kindConst returns the constant name discriminating a variant.
func kindConst(t *Type) string { return "Kind" + t.Name }

// variantField returns the union's struct field holding a variant.
func variantField(t *Type) string { return inflect.CamelizeDownFirst(t.Name) }
