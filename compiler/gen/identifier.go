package gen

import (
	"github.com/dave/jennifer/jen"
)

// genIdentifier emits the typed identifier wrapper for an entity and,
// when a generated identifier was requested, the sequential generator
// bound to a shared used-identifier registry.
func (g *Generator) genIdentifier(t *Type) (*jen.File, error) {
	pi := t.PrimaryIdentifier
	if !pi.HasIdentifierOptions() {
		return nil, NewCompileError(ErrInconsistentIdentifier, t.Name, pi.def.Name,
			"primary identifier field carries no identifier options")
	}

	f := g.newFile()
	idName := t.IdentifierName()

	f.Commentf("%s is the typed primary identifier of a %s row.", idName, t.Name)
	f.Type().Id(idName).Struct(
		jen.Id("id").Qual(rootPkg, "Identifier"),
	)

	f.Commentf("Parse%s validates s as an identifier and wraps it.", idName)
	f.Func().Id("Parse"+idName).Params(jen.Id("s").String()).Params(jen.Id(idName), jen.Error()).Block(
		jen.List(jen.Id("id"), jen.Err()).Op(":=").Qual(rootPkg, "ParseIdentifier").Call(jen.Id("s")),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Id(idName).Values(), jen.Err()),
		),
		jen.Return(jen.Id(idName).Values(jen.Dict{jen.Id("id"): jen.Id("id")}), jen.Nil()),
	)

	f.Comment("ToIdentifier returns the wrapped identifier.")
	f.Func().Params(jen.Id("i").Id(idName)).Id("ToIdentifier").Params().Qual(rootPkg, "Identifier").Block(
		jen.Return(jen.Id("i").Dot("id")),
	)

	f.Comment("ToValue converts the identifier to its cell value.")
	f.Func().Params(jen.Id("i").Id(idName)).Id("ToValue").Params().Qual(rootPkg, "Value").Block(
		jen.Return(jen.Id("i").Dot("id").Dot("ToValue").Call()),
	)

	f.Comment("String implements fmt.Stringer.")
	f.Func().Params(jen.Id("i").Id(idName)).Id("String").Params().String().Block(
		jen.Return(jen.Id("i").Dot("id").Dot("String").Call()),
	)

	if t.HasGenerator() {
		g.genGenerator(f, t)
	}
	return f, nil
}

// genGenerator emits the sequential identifier generator type. The
// generator shares its used-identifier registry with the table so
// minted and appended identifiers can never collide.
func (g *Generator) genGenerator(f *jen.File, t *Type) {
	genName := t.GeneratorName()
	idName := t.IdentifierName()
	recv := t.GeneratorReceiver()

	f.Commentf("%s mints unused %s values from the %q prefix.", genName, idName, t.IDPrefix())
	f.Type().Id(genName).Struct(
		jen.Id("seq").Op("*").Qual(idgenPkg, "Sequence"),
	)

	f.Commentf("New%s creates a generator recording minted identifiers in used.", genName)
	f.Func().Id("New"+genName).Params(jen.Id("used").Op("*").Qual(idgenPkg, "Used")).Op("*").Id(genName).Block(
		jen.Return(jen.Op("&").Id(genName).Values(jen.Dict{
			jen.Id("seq"): jen.Qual(idgenPkg, "NewSequence").Call(jen.Lit(t.IDPrefix()), jen.Id("used")),
		})),
	)

	f.Comment("IDPrefix returns the prefix of minted identifiers.")
	f.Func().Params(jen.Id(recv).Op("*").Id(genName)).Id("IDPrefix").Params().String().Block(
		jen.Return(jen.Id(recv).Dot("seq").Dot("IDPrefix").Call()),
	)

	f.Comment("Count returns the current value of the mint counter.")
	f.Func().Params(jen.Id(recv).Op("*").Id(genName)).Id("Count").Params().Int().Block(
		jen.Return(jen.Id(recv).Dot("seq").Dot("Count").Call()),
	)

	f.Comment("Used returns the shared used-identifier registry.")
	f.Func().Params(jen.Id(recv).Op("*").Id(genName)).Id("Used").Params().Op("*").Qual(idgenPkg, "Used").Block(
		jen.Return(jen.Id(recv).Dot("seq").Dot("Used").Call()),
	)

	f.Comment("Next mints the next unused identifier and registers it.")
	f.Func().Params(jen.Id(recv).Op("*").Id(genName)).Id("Next").Params().Params(jen.Id(idName), jen.Error()).Block(
		jen.List(jen.Id("id"), jen.Err()).Op(":=").Id(recv).Dot("seq").Dot("Next").Call(),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Id(idName).Values(), jen.Err()),
		),
		jen.Return(jen.Id(idName).Values(jen.Dict{jen.Id("id"): jen.Id("id")}), jen.Nil()),
	)
}
