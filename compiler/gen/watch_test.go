package gen

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	schemaDir := t.TempDir()
	schemaFile := filepath.Join(schemaDir, "schema.json")
	require.NoError(t, os.WriteFile(schemaFile, []byte("{}"), 0o644))

	out := t.TempDir()
	schema := directorySchema(t)
	var calls atomic.Int32
	compile := func() (*Graph, error) {
		calls.Add(1)
		return NewSingle(nil, schema, WithTarget(out))
	}

	w, err := NewWatcher(compile, schemaFile)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// The first generation runs before any event arrives.
	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(out, "directory_table.go"))
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	// A save triggers a recompile; the unchanged shape skips the
	// second write through the snapshot comparison.
	require.NoError(t, os.WriteFile(schemaFile, []byte("{ }"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	err = <-done
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatcherMissingPath(t *testing.T) {
	_, err := NewWatcher(func() (*Graph, error) { return nil, nil },
		filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
