// Package assets handles asset loading and caching.
package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"
)

// Manager loads asset files from a filesystem root.
type Manager struct {
	root  fs.FS
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates an asset manager reading from root.
func NewManager(root fs.FS) *Manager {
	return &Manager{
		root:  root,
		cache: NewCache(),
	}
}

// NewDirManager creates an asset manager rooted at a directory on disk.
func NewDirManager(dir string) *Manager {
	return NewManager(os.DirFS(dir))
}

// Load reads a file relative to the root. Results are cached.
func (m *Manager) Load(name string) ([]byte, error) {
	name = path.Clean(name)

	// Check cache first
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := fs.ReadFile(m.root, name)
	if err != nil {
		return nil, fmt.Errorf("loading asset %s: %w", name, err)
	}
	m.cache.Set(name, data)
	return data, nil
}

// Exists reports whether name exists under the root.
func (m *Manager) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := fs.Stat(m.root, path.Clean(name))
	return err == nil
}

// Close drops cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
