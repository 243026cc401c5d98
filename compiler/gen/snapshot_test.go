package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packfold/msitab/schema"
	"github.com/packfold/msitab/schema/field"
)

func TestSnapshot(t *testing.T) {
	g, err := NewGraph(nil, installerGroup(t))
	require.NoError(t, err)
	snap := TakeSnapshot(g)

	assert.Equal(t, "Installer", snap.Group)
	assert.True(t, snap.Union)
	require.Len(t, snap.Entities, 4)
	assert.Equal(t, "Directory", snap.Entities[0].Name)
	assert.True(t, snap.Entities[0].HasGenerator)
	assert.False(t, snap.Entities[3].HasIdentifier)

	t.Run("RoundTrip", func(t *testing.T) {
		buf, err := snap.Encode()
		require.NoError(t, err)
		got, err := DecodeSnapshot(buf)
		require.NoError(t, err)
		assert.Equal(t, snap, got)
		assert.True(t, snap.Equal(got))
	})

	t.Run("EqualGraphs", func(t *testing.T) {
		g2, err := NewGraph(nil, installerGroup(t))
		require.NoError(t, err)
		assert.True(t, snap.Equal(TakeSnapshot(g2)))
	})

	t.Run("ShapeChange", func(t *testing.T) {
		group := installerGroup(t)
		group.Variants[1] = loadEntity(t, schema.Entity{
			Name: "Feature",
			Fields: []*field.Builder{
				field.Identifier("feature").Length(38).PrimaryKey(),
				field.Text("title").Length(64).Optional().Localizable(),
				field.Integer("display").Optional(),
				field.Integer("level"),
				field.Formatted("description").Length(255).Optional(),
			},
		})
		g2, err := NewGraph(nil, group)
		require.NoError(t, err)
		assert.False(t, snap.Equal(TakeSnapshot(g2)))
	})

	t.Run("NilOther", func(t *testing.T) {
		assert.False(t, snap.Equal(nil))
	})

	t.Run("Corrupt", func(t *testing.T) {
		_, err := DecodeSnapshot([]byte{0xc1})
		require.Error(t, err)
	})
}
