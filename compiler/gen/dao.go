package gen

import (
	"github.com/dave/jennifer/jen"
)

// genDao emits the row holder for an entity: an immutable struct with
// one unexported field per schema field, a constructor, accessors, the
// primary-identifier probe, the conflict check over primary key fields
// and the row conversion.
func (g *Generator) genDao(t *Type) *jen.File {
	f := g.newFile()
	daoName := t.DaoName()
	recv := t.DaoReceiver()

	f.Commentf("%s holds one %s row.", daoName, t.TableName())
	f.Type().Id(daoName).StructFunc(func(s *jen.Group) {
		for _, fld := range t.Fields {
			s.Id(fld.StructField()).Add(g.goType(t, fld))
		}
	})

	f.Commentf("New%s creates a row holder from its field values.", daoName)
	f.Func().Id("New"+daoName).ParamsFunc(func(p *jen.Group) {
		for _, fld := range t.Fields {
			p.Id(fld.StructField()).Add(g.goType(t, fld))
		}
	}).Op("*").Id(daoName).Block(
		jen.Return(jen.Op("&").Id(daoName).ValuesFunc(func(v *jen.Group) {
			for _, fld := range t.Fields {
				v.Id(fld.StructField()).Op(":").Id(fld.StructField())
			}
		})),
	)

	for _, fld := range t.Fields {
		fld := fld
		f.Commentf("%s returns the %s field.", fld.Accessor(), fld.def.Name)
		f.Func().Params(jen.Id(recv).Op("*").Id(daoName)).Id(fld.Accessor()).Params().Add(g.goType(t, fld)).Block(
			jen.Return(jen.Id(recv).Dot(fld.StructField())),
		)
	}

	f.Comment("PrimaryIdentifier returns the row's primary identifier, if any.")
	if pi := t.PrimaryIdentifier; pi != nil {
		f.Func().Params(jen.Id(recv).Op("*").Id(daoName)).Id("PrimaryIdentifier").Params().Params(jen.Qual(rootPkg, "Identifier"), jen.Bool()).Block(
			jen.Return(jen.Id(recv).Dot(pi.StructField()).Dot("ToIdentifier").Call(), jen.True()),
		)
	} else {
		f.Func().Params(jen.Id(recv).Op("*").Id(daoName)).Id("PrimaryIdentifier").Params().Params(jen.Qual(rootPkg, "Identifier"), jen.Bool()).Block(
			jen.Return(jen.Qual(rootPkg, "Identifier").Values(), jen.False()),
		)
	}

	g.genConflictsWith(f, t)

	f.Comment("ToRow converts the row to its cell values in field order.")
	f.Func().Params(jen.Id(recv).Op("*").Id(daoName)).Id("ToRow").Params().Index().Qual(rootPkg, "Value").Block(
		jen.Return(jen.Index().Qual(rootPkg, "Value").ValuesFunc(func(v *jen.Group) {
			for _, fld := range t.Fields {
				v.Add(g.rowValue(t, fld))
			}
		})),
	)

	f.Var().Id("_").Qual(rootPkg, "Dao").Op("=").Parens(jen.Op("*").Id(daoName)).Call(jen.Nil())
	return f
}

// genConflictsWith emits the pairwise conflict check: two rows
// conflict when every primary key field compares equal. With no
// primary key fields the conjunction is empty and every pair
// conflicts.
func (g *Generator) genConflictsWith(f *jen.File, t *Type) {
	daoName := t.DaoName()
	recv := t.DaoReceiver()

	var pks []*Field
	for _, fld := range t.Fields {
		if fld.PrimaryKey() {
			pks = append(pks, fld)
		}
	}

	f.Commentf("ConflictsWith reports whether both rows share the same primary key.")
	f.Func().Params(jen.Id(recv).Op("*").Id(daoName)).Id("ConflictsWith").Params(jen.Id("other").Op("*").Id(daoName)).Bool().BlockFunc(func(b *jen.Group) {
		if len(pks) == 0 {
			b.Return(jen.True())
			return
		}
		expr := g.fieldEqual(t, pks[0])
		for _, fld := range pks[1:] {
			expr = expr.Op("&&").Add(g.fieldEqual(t, fld))
		}
		b.Return(expr)
	})
}

// fieldEqual returns the equality expression for one primary key field.
func (g *Generator) fieldEqual(t *Type, f *Field) *jen.Statement {
	recv := t.DaoReceiver()
	if f.Optional() {
		return jen.Qual(rootPkg, "PtrEqual").Call(
			jen.Id(recv).Dot(f.StructField()),
			jen.Id("other").Dot(f.StructField()),
		)
	}
	return jen.Id(recv).Dot(f.StructField()).Op("==").Id("other").Dot(f.StructField())
}
