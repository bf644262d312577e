package filestorage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUpload(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	ls, err := NewLocalStorage(root, "http://localhost:8080/uploads")
	require.NoError(t, err)

	t.Run("writes under prefix", func(t *testing.T) {
		require.NoError(t, ls.Upload(ctx, "edited-pdfs/letter.pdf", strings.NewReader("%PDF-1.4 one")))

		got, err := os.ReadFile(filepath.Join(root, "edited-pdfs", "letter.pdf"))
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 one", string(got))
	})

	t.Run("same name overwrites", func(t *testing.T) {
		require.NoError(t, ls.Upload(ctx, "edited-pdfs/letter.pdf", strings.NewReader("%PDF-1.4 two")))

		got, err := os.ReadFile(filepath.Join(root, "edited-pdfs", "letter.pdf"))
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 two", string(got))
	})

	t.Run("traversal rejected", func(t *testing.T) {
		assert.Error(t, ls.Upload(ctx, "../../escape.pdf", strings.NewReader("x")))
		assert.Error(t, ls.Upload(ctx, "edited-pdfs/../../escape.pdf", strings.NewReader("x")))

		_, err := os.Stat(filepath.Join(filepath.Dir(root), "escape.pdf"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("paths without a file name rejected", func(t *testing.T) {
		for _, p := range []string{"", "/", ".", "..", "edited-pdfs/.", "edited-pdfs/..", "edited-pdfs/"} {
			assert.Error(t, ls.Upload(ctx, p, strings.NewReader("x")), "path %q", p)
		}
	})

	t.Run("prefix directory is never replaced by a blob", func(t *testing.T) {
		fresh, err := NewLocalStorage(t.TempDir(), "")
		require.NoError(t, err)

		assert.Error(t, fresh.Upload(ctx, "applications/.", strings.NewReader("%PDF-1.4")))
		require.NoError(t, fresh.Upload(ctx, "applications/letter.pdf", strings.NewReader("%PDF-1.4")))

		info, err := os.Stat(filepath.Join(fresh.BasePath(), "applications"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestLocalStorageURL(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/edited-pdfs/a.pdf", ls.URL("edited-pdfs/a.pdf"))

	bare, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/edited-pdfs/a.pdf", bare.URL("/edited-pdfs/a.pdf"))
}
