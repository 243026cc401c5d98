package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/packfold/msitab"
)

// genTable emits the table container for an entity: the entry slice,
// the shared used-identifier registry and generator when one was
// requested, and the msitab.Table contract methods.
func (g *Generator) genTable(t *Type) *jen.File {
	f := g.newFile()
	tblName := t.TableName()
	daoName := t.DaoName()
	recv := t.TableReceiver()

	f.Commentf("%s collects %s rows for the %q database table.", tblName, daoName, t.Name)
	f.Type().Id(tblName).StructFunc(func(s *jen.Group) {
		s.Id("entries").Index().Op("*").Id(daoName)
		if t.HasGenerator() {
			s.Id("used").Op("*").Qual(idgenPkg, "Used")
			s.Id("generator").Op("*").Id(t.GeneratorName())
		}
	})

	f.Commentf("New%s creates an empty table.", tblName)
	f.Func().Id("New"+tblName).Params().Op("*").Id(tblName).BlockFunc(func(b *jen.Group) {
		if t.HasGenerator() {
			b.Id("used").Op(":=").Qual(idgenPkg, "NewUsed").Call()
			b.Return(jen.Op("&").Id(tblName).Values(jen.Dict{
				jen.Id("used"):      jen.Id("used"),
				jen.Id("generator"): jen.Id("New" + t.GeneratorName()).Call(jen.Id("used")),
			}))
			return
		}
		b.Return(jen.Op("&").Id(tblName).Values())
	})

	f.Comment("Name returns the database table name.")
	f.Func().Params(jen.Id(recv).Op("*").Id(tblName)).Id("Name").Params().String().Block(
		jen.Return(jen.Lit(t.Name)),
	)

	f.Comment("Entries returns the appended rows in insertion order.")
	f.Func().Params(jen.Id(recv).Op("*").Id(tblName)).Id("Entries").Params().Index().Op("*").Id(daoName).Block(
		jen.Return(jen.Id(recv).Dot("entries")),
	)

	if t.HasGenerator() {
		f.Comment("SetEntries replaces the rows wholesale, re-registering their identifiers.")
		f.Func().Params(jen.Id(recv).Op("*").Id(tblName)).Id("SetEntries").Params(jen.Id("entries").Index().Op("*").Id(daoName)).Block(
			jen.Id(recv).Dot("entries").Op("=").Id(recv).Dot("entries").Index(jen.Empty(), jen.Lit(0)),
			jen.For(jen.List(jen.Id("_"), jen.Id("d")).Op(":=").Range().Id("entries")).Block(
				jen.Id(recv).Dot("Append").Call(jen.Id("d")),
			),
		)

		f.Comment("Append adds a row and registers its primary identifier as used.")
		f.Func().Params(jen.Id(recv).Op("*").Id(tblName)).Id("Append").Params(jen.Id("d").Op("*").Id(daoName)).BlockFunc(func(b *jen.Group) {
			b.If(jen.List(jen.Id("id"), jen.Id("ok")).Op(":=").Id("d").Dot("PrimaryIdentifier").Call(), jen.Id("ok")).Block(
				jen.Id(recv).Dot("used").Dot("TryAdd").Call(jen.Id("id")),
			)
			b.Id(recv).Dot("entries").Op("=").Append(jen.Id(recv).Dot("entries"), jen.Id("d"))
		})

		f.Comment("Generator returns the identifier generator sharing this table's registry.")
		f.Func().Params(jen.Id(recv).Op("*").Id(tblName)).Id("Generator").Params().Op("*").Id(t.GeneratorName()).Block(
			jen.Return(jen.Id(recv).Dot("generator")),
		)
	} else {
		f.Comment("SetEntries replaces the rows wholesale.")
		f.Func().Params(jen.Id(recv).Op("*").Id(tblName)).Id("SetEntries").Params(jen.Id("entries").Index().Op("*").Id(daoName)).Block(
			jen.Id(recv).Dot("entries").Op("=").Id("entries"),
		)

		f.Comment("Append adds a row.")
		f.Func().Params(jen.Id(recv).Op("*").Id(tblName)).Id("Append").Params(jen.Id("d").Op("*").Id(daoName)).Block(
			jen.Id(recv).Dot("entries").Op("=").Append(jen.Id(recv).Dot("entries"), jen.Id("d")),
		)
	}

	f.Comment("Columns returns the table's column descriptors.")
	f.Func().Params(jen.Id(recv).Op("*").Id(tblName)).Id("Columns").Params().Index().Qual(rootPkg, "Column").Block(
		jen.Return(jen.Index().Qual(rootPkg, "Column").ValuesFunc(func(v *jen.Group) {
			for _, fld := range t.Fields {
				v.Add(columnExpr(fld.Column))
			}
		})),
	)

	f.Comment("PrimaryKeyIndices returns the positions of the primary key columns.")
	f.Func().Params(jen.Id(recv).Op("*").Id(tblName)).Id("PrimaryKeyIndices").Params().Index().Int().Block(
		jen.Return(jen.Index().Int().ValuesFunc(func(v *jen.Group) {
			for _, i := range t.PrimaryKeyIndices() {
				v.Lit(i)
			}
		})),
	)

	f.Comment("Rows converts every entry to its cell values.")
	f.Func().Params(jen.Id(recv).Op("*").Id(tblName)).Id("Rows").Params().Index().Index().Qual(rootPkg, "Value").Block(
		jen.Id("rows").Op(":=").Make(jen.Index().Index().Qual(rootPkg, "Value"), jen.Len(jen.Id(recv).Dot("entries"))),
		jen.For(jen.List(jen.Id("i"), jen.Id("e")).Op(":=").Range().Id(recv).Dot("entries")).Block(
			jen.Id("rows").Index(jen.Id("i")).Op("=").Id("e").Dot("ToRow").Call(),
		),
		jen.Return(jen.Id("rows")),
	)

	f.Var().Id("_").Qual(rootPkg, "Table").Op("=").Parens(jen.Op("*").Id(tblName)).Call(jen.Nil())
	return f
}

// columnExpr emits the builder chain reconstructing a column descriptor.
func columnExpr(c msitab.Column) jen.Code {
	expr := jen.Qual(rootPkg, "BuildColumn").Call(jen.Lit(c.Name))
	if c.PrimaryKey {
		expr = expr.Dot("PrimaryKey").Call()
	}
	if c.Nullable {
		expr = expr.Dot("Nullable").Call()
	}
	if c.Localizable {
		expr = expr.Dot("Localizable").Call()
	}
	if fk := c.ForeignKey; fk != nil {
		expr = expr.Dot("ForeignKey").Call(jen.Lit(fk.Table), jen.Lit(fk.Column))
	}
	expr = expr.Dot("Category").Call(jen.Qual(rootPkg, categoryConst(c.Category)))
	switch c.Type {
	case msitab.ColumnInt16:
		return expr.Dot("Int16").Call()
	case msitab.ColumnInt32:
		return expr.Dot("Int32").Call()
	default:
		return expr.Dot("String").Call(jen.Lit(c.Size))
	}
}

// categoryConst returns the Go constant name of a category.
func categoryConst(c msitab.Category) string {
	if c == msitab.CategoryGUID {
		return "CategoryGUID"
	}
	return "Category" + c.String()
}
