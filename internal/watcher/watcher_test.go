package watcher

// Test Plan for the file watcher:
// - New creates a watcher over a valid directory
// - New returns an error for a missing directory
// - A source file write fires the callback after the debounce window
// - Changes to files outside the watched extensions are ignored
// - Rapid changes to one file coalesce into a single batch entry
// - Stop is safe to call more than once

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	w, err := New(t.TempDir(), []string{".cs", ".vb"})
	require.NoError(t, err)
	require.NotNil(t, w)
	require.NoError(t, w.Stop())
}

func TestNewMissingDirectory(t *testing.T) {
	t.Parallel()

	w, err := New(filepath.Join(t.TempDir(), "nope"), []string{".cs"})
	assert.Error(t, err)
	assert.Nil(t, w)
}

func TestWatcherFiresOnSourceChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := New(dir, []string{".cs"})
	require.NoError(t, err)
	defer w.Stop()

	var mu sync.Mutex
	var got []string
	fired := make(chan struct{}, 1)
	require.NoError(t, w.Start(context.Background(), func(files []string) {
		mu.Lock()
		got = files
		mu.Unlock()
		select {
		case fired <- struct{}{}:
		default:
		}
	}))

	time.Sleep(100 * time.Millisecond)

	source := filepath.Join(dir, "Warehouse.cs")
	require.NoError(t, os.WriteFile(source, []byte("class Warehouse {}"), 0o644))

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("callback not fired")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, got, source)
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := New(dir, []string{".cs"})
	require.NoError(t, err)
	defer w.Stop()

	fired := make(chan struct{}, 1)
	require.NoError(t, w.Start(context.Background(), func(files []string) {
		select {
		case fired <- struct{}{}:
		default:
		}
	}))

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-fired:
		t.Fatal("callback fired for unwatched extension")
	case <-time.After(1 * time.Second):
	}
}

func TestWatcherCoalescesRapidChanges(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := New(dir, []string{".vb"})
	require.NoError(t, err)
	defer w.Stop()

	var mu sync.Mutex
	var batches [][]string
	fired := make(chan struct{}, 8)
	require.NoError(t, w.Start(context.Background(), func(files []string) {
		mu.Lock()
		batches = append(batches, files)
		mu.Unlock()
		fired <- struct{}{}
	}))

	time.Sleep(100 * time.Millisecond)

	source := filepath.Join(dir, "Orders.vb")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(source, []byte("Class Orders"), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("callback not fired")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, batches, 1)
	assert.Equal(t, []string{source}, batches[0])
}

func TestStopTwice(t *testing.T) {
	t.Parallel()

	w, err := New(t.TempDir(), []string{".cs"})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background(), func([]string) {}))
	require.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
