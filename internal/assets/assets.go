// Package assets handles asset loading and caching.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound is returned when no layer contains the requested asset.
// It matches fs.ErrNotExist with errors.Is.
var ErrNotFound = fmt.Errorf("asset not found: %w", fs.ErrNotExist)

// layer is one searchable file system. dir is set when the layer is backed by
// a real directory, so files can be resolved to disk paths for watching.
type layer struct {
	name string
	fsys fs.FS
	dir  string
}

// Manager loads assets from a stack of file systems.
// Layers are searched in reverse order (last added = highest priority).
type Manager struct {
	layers []layer
	cache  *Cache
	mu     sync.RWMutex
}

// NewManager creates a new asset manager with no layers.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// AddFS adds a file system layer, e.g. the embedded shader set.
func (m *Manager) AddFS(name string, fsys fs.FS) {
	m.mu.Lock()
	m.layers = append(m.layers, layer{name: name, fsys: fsys})
	m.mu.Unlock()
}

// AddDir adds an on-disk directory layer.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset dir %s: not a directory", dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("asset dir %s: %w", dir, err)
	}

	m.mu.Lock()
	m.layers = append(m.layers, layer{name: abs, fsys: os.DirFS(abs), dir: abs})
	m.mu.Unlock()
	return nil
}

// Layers returns the layer names from lowest to highest priority.
func (m *Manager) Layers() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.layers))
	for i, l := range m.layers {
		names[i] = l.name
	}
	return names
}

// Clean normalizes an asset path to the slash-separated form fs.FS expects.
func Clean(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// Load reads a file from the highest-priority layer that has it.
func (m *Manager) Load(name string) ([]byte, error) {
	name = Clean(name)

	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.layers) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.layers[i].fsys, name)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s from %s: %w", name, m.layers[i].name, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Open opens a file from the highest-priority layer that has it. Not cached.
func (m *Manager) Open(name string) (fs.File, error) {
	name = Clean(name)

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.layers) - 1; i >= 0; i-- {
		f, err := m.layers[i].fsys.Open(name)
		if err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Exists reports whether any layer has the file.
func (m *Manager) Exists(name string) bool {
	name = Clean(name)

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.layers) - 1; i >= 0; i-- {
		if _, err := fs.Stat(m.layers[i].fsys, name); err == nil {
			return true
		}
	}
	return false
}

// Resolve returns the on-disk path of the file that Load would read.
// ok is false when the winning layer is not a directory (embedded) or the file is missing.
func (m *Manager) Resolve(name string) (string, bool) {
	name = Clean(name)

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.layers) - 1; i >= 0; i-- {
		l := m.layers[i]
		if _, err := fs.Stat(l.fsys, name); err != nil {
			continue
		}
		if l.dir == "" {
			return "", false
		}
		return filepath.Join(l.dir, filepath.FromSlash(name)), true
	}
	return "", false
}

// FS returns the layered view as an fs.FS. ReadFile goes through the cache.
func (m *Manager) FS() fs.FS {
	return managerFS{m: m}
}

type managerFS struct {
	m *Manager
}

func (f managerFS) Open(name string) (fs.File, error) {
	return f.m.Open(name)
}

func (f managerFS) ReadFile(name string) ([]byte, error) {
	return f.m.Load(name)
}

// Invalidate drops a cached file so the next Load reads it again.
func (m *Manager) Invalidate(name string) {
	m.cache.Delete(Clean(name))
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops all layers and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.layers = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

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
	// Write lock: the hit/miss counters are mutated
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

// Delete removes one item from cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
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
