package docroot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdwidth/internal/docroot"
)

func TestFind(t *testing.T) {
	t.Parallel()

	t.Run("from project root", func(t *testing.T) {
		t.Parallel()

		project := t.TempDir()
		src := filepath.Join(project, "book", "src")
		require.NoError(t, os.MkdirAll(src, 0o755))

		root, err := docroot.Find(context.Background(), project)
		require.NoError(t, err)
		assert.Equal(t, src, root)
	})

	t.Run("from nested directory", func(t *testing.T) {
		t.Parallel()

		project := t.TempDir()
		src := filepath.Join(project, "book", "src")
		nested := filepath.Join(project, "qa", "book")
		require.NoError(t, os.MkdirAll(src, 0o755))
		require.NoError(t, os.MkdirAll(nested, 0o755))

		root, err := docroot.Find(context.Background(), nested)
		require.NoError(t, err)
		assert.Equal(t, src, root)
	})

	t.Run("book without src does not count", func(t *testing.T) {
		t.Parallel()

		project := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(project, "book"), 0o755))

		_, err := docroot.Find(context.Background(), project)
		require.ErrorIs(t, err, docroot.ErrNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := docroot.Find(ctx, t.TempDir())
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	project := t.TempDir()
	docs := filepath.Join(project, "docs")
	require.NoError(t, os.MkdirAll(docs, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "README.md"), []byte("x"), 0o644))

	root, err := docroot.Resolve(context.Background(), "docs", project)
	require.NoError(t, err)
	assert.Equal(t, docs, root)

	root, err = docroot.Resolve(context.Background(), docs, "")
	require.NoError(t, err)
	assert.Equal(t, docs, root)

	_, err = docroot.Resolve(context.Background(), "missing", project)
	require.ErrorIs(t, err, docroot.ErrNotFound)

	_, err = docroot.Resolve(context.Background(), "README.md", project)
	require.ErrorIs(t, err, docroot.ErrNotFound)
}
