package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packfold/msitab"
)

func TestUsed(t *testing.T) {
	t.Run("try add is atomic check-and-append", func(t *testing.T) {
		u := NewUsed()
		id := msitab.MustIdentifier("DIRECTORY1")
		assert.True(t, u.TryAdd(id))
		assert.False(t, u.TryAdd(id))
		assert.True(t, u.Contains(id))
		assert.Equal(t, 1, u.Len())
	})

	t.Run("from preserves order and drops duplicates", func(t *testing.T) {
		a := msitab.MustIdentifier("A")
		b := msitab.MustIdentifier("B")
		u := NewUsedFrom(a, b, a)
		assert.Equal(t, []msitab.Identifier{a, b}, u.Snapshot())
		assert.Equal(t, 2, u.Len())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		u := NewUsedFrom(msitab.MustIdentifier("A"))
		ids := u.Snapshot()
		ids[0] = msitab.MustIdentifier("B")
		assert.Equal(t, "A", u.Snapshot()[0].String())
	})
}

func TestSequence(t *testing.T) {
	t.Run("mints prefixed identifiers", func(t *testing.T) {
		s := NewSequence("DIRECTORY", NewUsed())
		assert.Equal(t, "DIRECTORY", s.IDPrefix())
		assert.Equal(t, 0, s.Count())

		id, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, "DIRECTORY1", id.String())
		assert.Equal(t, 1, s.Count())
		assert.True(t, s.Used().Contains(id))

		id, err = s.Next()
		require.NoError(t, err)
		assert.Equal(t, "DIRECTORY2", id.String())
	})

	t.Run("counter starts at registry length", func(t *testing.T) {
		used := NewUsedFrom(
			msitab.MustIdentifier("TARGETDIR"),
			msitab.MustIdentifier("ProgramFilesFolder"),
		)
		s := NewSequence("DIRECTORY", used)
		assert.Equal(t, 2, s.Count())

		id, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, "DIRECTORY3", id.String())
	})

	t.Run("skips identifiers already in the registry", func(t *testing.T) {
		used := NewUsedFrom(msitab.MustIdentifier("FEATURE2"))
		s := NewSequence("FEATURE", used)
		// Counter starts at 1, so the first candidate is FEATURE2,
		// which is taken.
		id, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, "FEATURE3", id.String())
	})

	t.Run("nil registry gets a fresh one", func(t *testing.T) {
		s := NewSequence("X", nil)
		require.NotNil(t, s.Used())
		id, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, "X1", id.String())
	})

	t.Run("concurrent generators never collide", func(t *testing.T) {
		used := NewUsed()
		a := NewSequence("COMPONENT", used)
		b := NewSequence("COMPONENT", used)

		const n = 200
		var wg sync.WaitGroup
		mint := func(s *Sequence) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				_, err := s.Next()
				assert.NoError(t, err)
			}
		}
		wg.Add(2)
		go mint(a)
		go mint(b)
		wg.Wait()

		assert.Equal(t, 2*n, used.Len())
	})
}

func TestRandom(t *testing.T) {
	used := NewUsed()
	r := NewRandom(used)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := r.Next()
		require.NoError(t, err)
		assert.False(t, seen[id.String()])
		seen[id.String()] = true
	}
	assert.Equal(t, 50, used.Len())
	assert.Same(t, used, r.Used())
}
