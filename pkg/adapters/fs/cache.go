package fs

import (
	"sync"
	"time"

	"github.com/aretw0/capstone/pkg/core"
)

// cacheEntry holds a parsed notebook together with the file state it was parsed from.
type cacheEntry struct {
	Notebook     core.Notebook
	LastModified time.Time
	Size         int64
}

// cache keeps parsed notebooks keyed by relative path, so unchanged files are not reparsed.
type cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

func newCache() *cache {
	return &cache{entries: make(map[string]*cacheEntry)}
}

// Get returns the entry for relPath if it was parsed from a file with the same mtime and size.
func (c *cache) Get(relPath string, mtime time.Time, size int64) (*cacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[relPath]
	if !ok {
		return nil, false
	}
	if !entry.LastModified.Equal(mtime) || entry.Size != size {
		return nil, false
	}
	return entry, true
}

// Set updates an entry in the cache.
func (c *cache) Set(relPath string, entry *cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[relPath] = entry
}

// Delete removes a single entry from the cache.
func (c *cache) Delete(relPath string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, relPath)
}

// Len returns the number of entries in the cache.
func (c *cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
