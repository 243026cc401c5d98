package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packfold/msitab"
)

func TestBuilders(t *testing.T) {
	t.Run("identifier with generator", func(t *testing.T) {
		fd := Identifier("directory").Length(72).PrimaryKey().Generated().Descriptor()
		require.NoError(t, fd.Err)
		assert.Equal(t, "directory", fd.Name)
		assert.Equal(t, msitab.CategoryIdentifier, fd.Category)
		assert.Equal(t, 72, fd.Length)
		assert.True(t, fd.PrimaryKey)
		require.NotNil(t, fd.Identifier)
		assert.True(t, fd.Identifier.Generated)
		assert.Empty(t, fd.Identifier.ForeignKey)
	})

	t.Run("foreign key with column override", func(t *testing.T) {
		fd := Identifier("parent_directory").
			Optional().
			ForeignKey("Directory").
			ColumnName("Directory_Parent").
			Length(72).
			Descriptor()
		require.NoError(t, fd.Err)
		assert.True(t, fd.Optional)
		assert.Equal(t, "Directory_Parent", fd.ColumnName)
		require.NotNil(t, fd.Identifier)
		assert.Equal(t, "Directory", fd.Identifier.ForeignKey)
		assert.False(t, fd.Identifier.Generated)
	})

	t.Run("localizable string field", func(t *testing.T) {
		fd := New("default_dir", msitab.CategoryDefaultDir).Length(255).Localizable().Descriptor()
		require.NoError(t, fd.Err)
		assert.True(t, fd.Localizable)
		assert.Equal(t, msitab.CategoryDefaultDir, fd.Category)
	})

	t.Run("integer fields need no length", func(t *testing.T) {
		fd := Integer("sequence").PrimaryKey().Descriptor()
		require.NoError(t, fd.Err)
		assert.Zero(t, fd.Length)
		assert.Equal(t, msitab.CategoryInteger, fd.Category)

		fd = DoubleInteger("attributes").Descriptor()
		require.NoError(t, fd.Err)
		assert.Equal(t, msitab.CategoryDoubleInteger, fd.Category)
	})

	t.Run("plain field has no identifier options", func(t *testing.T) {
		fd := Text("description").Length(255).Descriptor()
		require.NoError(t, fd.Err)
		assert.Nil(t, fd.Identifier)
	})
}

func TestBuilderErrors(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		fd := Identifier("").Length(72).Descriptor()
		require.Error(t, fd.Err)
		assert.Contains(t, fd.Err.Error(), "name cannot be empty")
	})

	t.Run("non-positive length", func(t *testing.T) {
		fd := Text("notes").Length(0).Descriptor()
		require.Error(t, fd.Err)
		assert.Contains(t, fd.Err.Error(), "length must be positive")
	})

	t.Run("empty foreign key entity", func(t *testing.T) {
		fd := Identifier("owner").Length(72).ForeignKey("").Descriptor()
		require.Error(t, fd.Err)
		assert.Contains(t, fd.Err.Error(), "foreign key entity cannot be empty")
	})

	t.Run("first error wins", func(t *testing.T) {
		fd := Text("").Length(-1).Descriptor()
		require.Error(t, fd.Err)
		assert.Contains(t, fd.Err.Error(), "name cannot be empty")
	})
}
