package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdwidth/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content and metadata", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "chapter.md")
		content := []byte("# Title\n\nBody text.\n")
		require.NoError(t, os.WriteFile(path, content, 0o644))

		got, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(len(content)), info.Size)
		assert.False(t, info.ModTime.IsZero())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "whatever.md")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestExistsAndIsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0o644))

	assert.True(t, fsutil.Exists(dir))
	assert.True(t, fsutil.Exists(file))
	assert.False(t, fsutil.Exists(filepath.Join(dir, "missing")))

	assert.True(t, fsutil.IsDir(dir))
	assert.False(t, fsutil.IsDir(file))
	assert.False(t, fsutil.IsDir(filepath.Join(dir, "missing")))
}
