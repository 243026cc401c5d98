package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packfold/msitab"
	"github.com/packfold/msitab/compiler/load"
	"github.com/packfold/msitab/schema"
	"github.com/packfold/msitab/schema/field"
)

func loadEntity(t *testing.T, e schema.Entity) *load.Schema {
	t.Helper()
	s, err := load.NewSchema(e)
	require.NoError(t, err)
	return s
}

func directorySchema(t *testing.T) *load.Schema {
	t.Helper()
	return loadEntity(t, schema.Entity{
		Name: "Directory",
		Fields: []*field.Builder{
			field.Identifier("directory").Length(72).PrimaryKey().Generated(),
			field.Identifier("parent_directory").Optional().ForeignKey("Directory").
				ColumnName("Directory_Parent").Length(72),
			field.New("default_dir", msitab.CategoryDefaultDir).Length(255).Localizable(),
		},
	})
}

func featureSchema(t *testing.T) *load.Schema {
	t.Helper()
	return loadEntity(t, schema.Entity{
		Name: "Feature",
		Fields: []*field.Builder{
			field.Identifier("feature").Length(38).PrimaryKey(),
			field.Text("title").Length(64).Optional().Localizable(),
			field.Integer("display").Optional(),
			field.Integer("level"),
		},
	})
}

func componentSchema(t *testing.T) *load.Schema {
	t.Helper()
	return loadEntity(t, schema.Entity{
		Name: "Component",
		Fields: []*field.Builder{
			field.Identifier("component").Length(72).PrimaryKey().Generated(),
			field.GUID("component_id").Length(38).Optional(),
			field.Identifier("directory_").ForeignKey("Directory").Length(72),
			field.Integer("attributes"),
			field.Condition("condition").Length(255).Optional(),
		},
	})
}

func featureComponentSchema(t *testing.T) *load.Schema {
	t.Helper()
	return loadEntity(t, schema.Entity{
		Name: "FeatureComponents",
		Fields: []*field.Builder{
			field.Identifier("feature_").PrimaryKey().ForeignKey("Feature").
				ColumnName("Feature_").Length(38),
			field.Identifier("component_").PrimaryKey().ForeignKey("Component").
				ColumnName("Component_").Length(72),
		},
	})
}

func installerGroup(t *testing.T) *load.Group {
	t.Helper()
	return &load.Group{
		Name: "Installer",
		Variants: []*load.Schema{
			directorySchema(t),
			featureSchema(t),
			componentSchema(t),
			featureComponentSchema(t),
		},
	}
}

func TestNewSingle(t *testing.T) {
	t.Run("Directory", func(t *testing.T) {
		g, err := NewSingle(nil, directorySchema(t))
		require.NoError(t, err)
		assert.Equal(t, "Directory", g.Group)
		assert.False(t, g.HasUnion())
		require.Len(t, g.Nodes, 1)

		typ := g.Nodes[0]
		assert.Equal(t, "Directory", typ.Name)
		assert.Equal(t, "DirectoryIdentifier", typ.IdentifierName())
		assert.Equal(t, "DirectoryIdentifierGenerator", typ.GeneratorName())
		assert.Equal(t, "DirectoryDao", typ.DaoName())
		assert.Equal(t, "DirectoryTable", typ.TableName())
		assert.Equal(t, "DIRECTORY", typ.IDPrefix())
		assert.True(t, typ.HasGenerator())
		require.NotNil(t, typ.PrimaryIdentifier)
		assert.Equal(t, "directory", typ.PrimaryIdentifier.Name)
		assert.Equal(t, []int{0}, typ.PrimaryKeyIndices())
	})

	t.Run("LowercaseEntityName", func(t *testing.T) {
		s := directorySchema(t)
		s.Name = "directory"
		g, err := NewSingle(nil, s)
		require.NoError(t, err)
		assert.Equal(t, "Directory", g.Nodes[0].Name)
	})

	t.Run("ForeignKeysOnly", func(t *testing.T) {
		// A pure join table compiles standalone: its references are
		// not resolvable, so the link degrades to a blind column-0
		// target and no primary identifier is derived.
		g, err := NewSingle(nil, featureComponentSchema(t))
		require.NoError(t, err)

		typ := g.Nodes[0]
		assert.Nil(t, typ.PrimaryIdentifier)
		assert.False(t, typ.HasGenerator())
		assert.Equal(t, []int{0, 1}, typ.PrimaryKeyIndices())

		cols := typ.Columns()
		require.Len(t, cols, 2)
		require.NotNil(t, cols[0].ForeignKey)
		assert.Equal(t, "Feature", cols[0].ForeignKey.Table)
		assert.Equal(t, 0, cols[0].ForeignKey.Column)
		require.NotNil(t, cols[1].ForeignKey)
		assert.Equal(t, "Component", cols[1].ForeignKey.Table)
		assert.Equal(t, 0, cols[1].ForeignKey.Column)
	})
}

func TestColumnDerivation(t *testing.T) {
	g, err := NewSingle(nil, directorySchema(t))
	require.NoError(t, err)
	cols := g.Nodes[0].Columns()
	require.Len(t, cols, 3)

	assert.Equal(t, "Directory", cols[0].Name)
	assert.Equal(t, msitab.ColumnString, cols[0].Type)
	assert.Equal(t, 72, cols[0].Size)
	assert.True(t, cols[0].PrimaryKey)
	assert.False(t, cols[0].Nullable)
	assert.Nil(t, cols[0].ForeignKey)

	assert.Equal(t, "Directory_Parent", cols[1].Name)
	assert.True(t, cols[1].Nullable)
	require.NotNil(t, cols[1].ForeignKey)
	assert.Equal(t, "Directory", cols[1].ForeignKey.Table)
	assert.Equal(t, 0, cols[1].ForeignKey.Column)

	assert.Equal(t, "DefaultDir", cols[2].Name)
	assert.True(t, cols[2].Localizable)
	assert.Equal(t, msitab.CategoryDefaultDir, cols[2].Category)
}

func TestIntegerWidths(t *testing.T) {
	s := loadEntity(t, schema.Entity{
		Name: "Registry",
		Fields: []*field.Builder{
			field.Identifier("registry").Length(72).PrimaryKey().Generated(),
			field.Integer("root"),
			field.DoubleInteger("attributes").Optional(),
		},
	})
	g, err := NewSingle(nil, s)
	require.NoError(t, err)
	cols := g.Nodes[0].Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, msitab.ColumnInt16, cols[1].Type)
	assert.False(t, cols[1].Nullable)
	assert.Equal(t, msitab.ColumnInt32, cols[2].Type)
	assert.True(t, cols[2].Nullable)
}

func TestNewGraph(t *testing.T) {
	t.Run("Installer", func(t *testing.T) {
		g, err := NewGraph(nil, installerGroup(t))
		require.NoError(t, err)
		assert.Equal(t, "Installer", g.Group)
		assert.True(t, g.HasUnion())
		assert.Equal(t, "Installer", g.UnionName())
		assert.Equal(t, "InstallerKind", g.KindName())
		require.Len(t, g.Nodes, 4)

		feature, ok := g.Lookup("Feature")
		require.True(t, ok)
		require.NotNil(t, feature.PrimaryIdentifier)
		assert.False(t, feature.HasGenerator())

		fc, ok := g.Lookup("FeatureComponents")
		require.True(t, ok)
		assert.Nil(t, fc.PrimaryIdentifier)
	})

	t.Run("Deterministic", func(t *testing.T) {
		g1, err := NewGraph(nil, installerGroup(t))
		require.NoError(t, err)
		g2, err := NewGraph(nil, installerGroup(t))
		require.NoError(t, err)
		require.Len(t, g2.Nodes, len(g1.Nodes))
		for i := range g1.Nodes {
			assert.Equal(t, g1.Nodes[i].Name, g2.Nodes[i].Name)
			assert.Equal(t, g1.Nodes[i].Columns(), g2.Nodes[i].Columns())
			assert.Equal(t, g1.Nodes[i].PrimaryKeyIndices(), g2.Nodes[i].PrimaryKeyIndices())
		}
	})

	t.Run("UnknownReference", func(t *testing.T) {
		group := &load.Group{
			Name: "Installer",
			Variants: []*load.Schema{
				featureSchema(t),
				featureComponentSchema(t), // references Component, absent here
			},
		}
		_, err := NewGraph(nil, group)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownReference)
		require.True(t, IsCompileError(err))
	})

	t.Run("RedeclaredEntity", func(t *testing.T) {
		group := &load.Group{
			Name:     "Installer",
			Variants: []*load.Schema{featureSchema(t), featureSchema(t)},
		}
		_, err := NewGraph(nil, group)
		require.Error(t, err)
	})
}

func TestCompileErrors(t *testing.T) {
	t.Run("InvalidCategory", func(t *testing.T) {
		s := &load.Schema{Name: "Broken", Fields: []*load.Field{
			{Name: "value", Category: msitab.CategoryNone},
		}}
		_, err := NewSingle(nil, s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("MissingLength", func(t *testing.T) {
		s := &load.Schema{Name: "Broken", Fields: []*load.Field{
			{Name: "title", Category: msitab.CategoryText},
		}}
		_, err := NewSingle(nil, s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingLength)

		var ce *CompileError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "Broken", ce.Entity)
		assert.Equal(t, "title", ce.Field)
	})

	t.Run("AmbiguousIdentifier", func(t *testing.T) {
		s := loadEntity(t, schema.Entity{
			Name: "Shortcut",
			Fields: []*field.Builder{
				field.Identifier("shortcut").Length(72).PrimaryKey(),
				field.Identifier("target").Length(72).PrimaryKey(),
			},
		})
		_, err := NewSingle(nil, s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAmbiguousIdentifier)
	})

	t.Run("DuplicateField", func(t *testing.T) {
		s := loadEntity(t, schema.Entity{
			Name: "Media",
			Fields: []*field.Builder{
				field.Integer("disk_id").PrimaryKey(),
				field.Integer("disk_id"),
			},
		})
		_, err := NewSingle(nil, s)
		require.Error(t, err)
	})

	t.Run("InvalidEntityName", func(t *testing.T) {
		s := &load.Schema{Name: "2fast", Fields: []*load.Field{
			{Name: "value", Category: msitab.CategoryInteger},
		}}
		_, err := NewSingle(nil, s)
		require.Error(t, err)
	})
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "ParentDirectory", pascal("parent_directory"))
	assert.Equal(t, "parentDirectory", camelDown("parent_directory"))
	assert.Equal(t, "_type", camelDown("type"))
	assert.Equal(t, "Directory", titleCase("directory"))
	assert.NoError(t, validEntityName("Directory"))
	assert.Error(t, validEntityName(""))
	assert.Error(t, validEntityName("2fast"))
}
