package snapindex

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIndexRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ix, err := Open(filepath.Join(dir, "index.db"))
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()

	_, ok, err := ix.Latest(ctx)
	require.NoError(t, err)
	require.False(t, ok, "empty catalog reported a latest snapshot")

	older := Meta{
		Path:      "/snapshots/world-1.snap",
		Entities:  10,
		Bytes:     2048,
		SHA256:    "aa",
		CreatedAt: time.Now().Add(-time.Hour).UTC(),
	}
	newer := Meta{
		Path:      "/snapshots/world-2.snap",
		Entities:  12,
		Bytes:     4096,
		SHA256:    "bb",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, ix.Record(ctx, older))
	require.NoError(t, ix.Record(ctx, newer))

	latest, ok, err := ix.Latest(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, newer.Path, latest.Path)
	require.Equal(t, newer.Entities, latest.Entities)
	require.Equal(t, newer.SHA256, latest.SHA256)

	all, err := ix.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, older.Path, all[0].Path)
	require.Equal(t, newer.Path, all[1].Path)
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.snap")
	require.NoError(t, os.WriteFile(path, []byte("snapshot bytes"), 0o644))

	m, err := Describe(path, 7)
	require.NoError(t, err)
	require.Equal(t, path, m.Path)
	require.Equal(t, 7, m.Entities)
	require.Equal(t, int64(len("snapshot bytes")), m.Bytes)
	require.Len(t, m.SHA256, 64)
	require.False(t, m.CreatedAt.IsZero())

	_, err = Describe(filepath.Join(dir, "missing.snap"), 0)
	require.Error(t, err)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}
