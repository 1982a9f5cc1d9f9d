package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteGateway {
	t.Helper()
	g, err := NewSQLiteGateway(filepath.Join(t.TempDir(), "taskmind.db"), discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func TestSQLiteGateway_RoundTrip(t *testing.T) {
	g := newTestSQLite(t)

	want := sampleSnapshot()
	g.Save(want)

	got, ok := g.Load()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestSQLiteGateway_LoadAbsent(t *testing.T) {
	g := newTestSQLite(t)

	_, ok := g.Load()
	assert.False(t, ok)
}

func TestSQLiteGateway_SaveOverwrites(t *testing.T) {
	g := newTestSQLite(t)

	first := sampleSnapshot()
	g.Save(first)

	second := sampleSnapshot()
	second.InboxTasks = second.InboxTasks[:0]
	g.Save(second)

	got, ok := g.Load()
	require.True(t, ok)
	assert.Empty(t, got.InboxTasks)
	assert.Len(t, got.Goals, 1)
}

func TestSQLiteGateway_Clear(t *testing.T) {
	g := newTestSQLite(t)

	g.Save(sampleSnapshot())
	g.Clear()

	_, ok := g.Load()
	assert.False(t, ok)
}
