package storage

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Storage {
	t.Helper()

	file, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	db, err := NewSQLiteStorage(t.TempDir())
	require.NoError(t, err)

	all := map[string]Storage{
		BackendFile:   file,
		BackendSQLite: db,
		BackendMemory: NewMemoryStorage(),
	}
	t.Cleanup(func() {
		for _, s := range all {
			s.Close()
		}
	})
	return all
}

func TestStorage_Contract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(HistoryKey)
			require.NoError(t, err)
			assert.False(t, ok, "absent key")

			require.NoError(t, s.Set(HistoryKey, `[{"id":1}]`))
			require.NoError(t, s.Set(ThemeKey, "dark"))

			v, ok, err := s.Get(HistoryKey)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":1}]`, v)

			require.NoError(t, s.Set(HistoryKey, "[]"))
			v, _, err = s.Get(HistoryKey)
			require.NoError(t, err)
			assert.Equal(t, "[]", v, "set replaces")

			require.NoError(t, s.Remove(HistoryKey))
			_, ok, err = s.Get(HistoryKey)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Remove(HistoryKey), "removing twice is fine")

			theme, ok, err := s.Get(ThemeKey)
			require.NoError(t, err)
			assert.True(t, ok, "keys are independent")
			assert.Equal(t, "dark", theme)
		})
	}
}

func TestFileStorage_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStorage(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ThemeKey, "dark"))

	second, err := NewFileStorage(dir)
	require.NoError(t, err)
	v, ok, err := second.Get(ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestSQLiteStorage_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewSQLiteStorage(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(HistoryKey, "[]"))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStorage(dir)
	require.NoError(t, err)
	defer second.Close()

	v, ok, err := second.Get(HistoryKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestFileStorage_RejectsPathKeys(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, s.Set("../escape", "x"))
	_, _, err = s.Get("a/b")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	s, err := Open(BackendMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, s)

	s, err = Open("", t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &FileStorage{}, s)

	_, err = Open("redis", t.TempDir())
	assert.True(t, errors.Is(err, ErrUnknownBackend))
}

func TestFileStorage_Watch(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- s.Watch(ctx, HistoryKey, 10*time.Millisecond, func() { changes.Add(1) })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.Set(ThemeKey, "dark"))
	require.NoError(t, s.Set(HistoryKey, "[]"))

	require.Eventually(t, func() bool { return changes.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
