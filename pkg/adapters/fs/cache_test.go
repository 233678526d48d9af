package fs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/capstone/pkg/core"
)

func TestCache(t *testing.T) {
	now := time.Now()

	t.Run("Hit on Same File State", func(t *testing.T) {
		c := newCache()
		c.Set("a.ipynb", &cacheEntry{Notebook: core.Notebook{Title: "A"}, LastModified: now, Size: 10})

		entry, ok := c.Get("a.ipynb", now, 10)
		assert.True(t, ok)
		assert.Equal(t, "A", entry.Notebook.Title)
	})

	t.Run("Miss on Stale Mtime or Size", func(t *testing.T) {
		c := newCache()
		c.Set("a.ipynb", &cacheEntry{LastModified: now, Size: 10})

		_, ok := c.Get("a.ipynb", now.Add(time.Second), 10)
		assert.False(t, ok)
		_, ok = c.Get("a.ipynb", now, 11)
		assert.False(t, ok)
		_, ok = c.Get("b.ipynb", now, 10)
		assert.False(t, ok)
	})

	t.Run("Delete", func(t *testing.T) {
		c := newCache()
		c.Set("a.ipynb", &cacheEntry{})
		c.Set("b.ipynb", &cacheEntry{})

		c.Delete("a.ipynb")
		assert.Equal(t, 1, c.Len())
		c.Delete("missing.ipynb")
		assert.Equal(t, 1, c.Len())
	})
}
