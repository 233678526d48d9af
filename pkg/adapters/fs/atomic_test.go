package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "chart.png")

		require.NoError(t, WriteFileAtomic(filename, []byte("png bytes"), 0644))

		got, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "png bytes", string(got))
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "slides.md")
		require.NoError(t, os.WriteFile(filename, []byte("initial"), 0644))

		require.NoError(t, WriteFileAtomic(filename, []byte("overwritten"), 0644))

		got, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "overwritten", string(got))
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, WriteFileAtomic(filepath.Join(dir, "a.txt"), []byte("a"), 0644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), "leftover temp file %s", e.Name())
		}
	})

	t.Run("Creates Missing Directory", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "charts", "nested", "chart.png")

		require.NoError(t, WriteFileAtomic(filename, []byte("png bytes"), 0644))

		got, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "png bytes", string(got))
	})

	t.Run("Fails if Parent Is a File", func(t *testing.T) {
		dir := t.TempDir()
		parent := filepath.Join(dir, "slides.md")
		require.NoError(t, os.WriteFile(parent, []byte("not a dir"), 0644))

		err := WriteFileAtomic(filepath.Join(parent, "out.md"), []byte("fail"), 0644)
		assert.ErrorContains(t, err, "failed to create directory")
	})
}
