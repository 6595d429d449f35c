// Package material implements the atlas/material registry (spec 4.J): it
// deduplicates materials by (texture, tint, uv-rotation), assigns dense
// stable indices, and lazily resolves+caches the texture bytes behind each
// material through a ResourceProvider. The cache shape is adapted
// from the teacher's renderer.TextureManager (internal/renderer/texture_manager.go)
// — same mutex-guarded map-of-maps idiom, swapped from GL texture IDs to
// dense material indices and texture-decode byte caching.
package material

import (
	"sync"

	"github.com/nicolasmd87/voxelmesh/internal/category"
	"github.com/nicolasmd87/voxelmesh/internal/log"
	"go.uber.org/zap"
)

// Key is the tuple that determines material identity (spec §3 MaterialKey).
type Key struct {
	Texture    string
	TintR      float32
	TintG      float32
	TintB      float32
	UVRotation int // 0, 90, 180, 270
}

// Entry is what the registry hands back for a material_index (spec 4.J).
type Entry struct {
	Index      uint32
	Texture    string
	Tint       [3]float32
	UVRotation int
	Category   category.Category
}

// Stats mirrors TextureManager.TextureStats from the teacher, repurposed to
// material interning instead of GL texture upload.
type Stats struct {
	TotalMaterials int
	CacheHits      int
	CacheMisses    int
}

// Registry deduplicates materials by Key and assigns dense indices. It is
// thread-safe and append-only within a build session (spec §5: "material
// registry lives on the main coordinator only; workers know material
// indices, never material objects").
type Registry struct {
	mu      sync.RWMutex
	byKey   map[Key]uint32
	entries []Entry
	stats   Stats

	texMu    sync.Mutex
	texCache map[string][]byte // normalized texture path -> decoded bytes
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		byKey:    make(map[Key]uint32),
		texCache: make(map[string][]byte),
	}
}

// Intern looks up or creates the dense index for key, tagging it with cat
// the first time it is seen. Subsequent calls with the same key ignore cat
// (materials are immutable once interned).
func (r *Registry) Intern(key Key, cat category.Category) uint32 {
	r.mu.RLock()
	if idx, ok := r.byKey[key]; ok {
		r.mu.RUnlock()
		r.mu.Lock()
		r.stats.CacheHits++
		r.mu.Unlock()
		return idx
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock: another goroutine may have interned
	// the same key between our RUnlock and this Lock.
	if idx, ok := r.byKey[key]; ok {
		r.stats.CacheHits++
		return idx
	}

	idx := uint32(len(r.entries))
	r.entries = append(r.entries, Entry{
		Index:      idx,
		Texture:    key.Texture,
		Tint:       [3]float32{key.TintR, key.TintG, key.TintB},
		UVRotation: key.UVRotation,
		Category:   cat,
	})
	r.byKey[key] = idx
	r.stats.TotalMaterials++
	r.stats.CacheMisses++

	log.Log.Debug("material interned",
		zap.Uint32("index", idx),
		zap.String("texture", key.Texture),
		zap.Int("uv_rotation", key.UVRotation),
		zap.String("category", cat.String()))

	return idx
}

// Lookup returns the Entry for a material_index.
func (r *Registry) Lookup(index uint32) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(index) >= len(r.entries) {
		return Entry{}, false
	}
	return r.entries[index], true
}

// Len reports how many distinct materials have been interned.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Stats returns a snapshot of interning statistics.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// ResolveTexture returns the decoded texture bytes for a normalized path,
// fetching and caching via load on first access (spec 4.J: "Texture bytes
// themselves... are resolved lazily by the adapter through the
// ResourceProvider and cached by path").
func (r *Registry) ResolveTexture(path string, load func(string) ([]byte, bool)) ([]byte, bool) {
	r.texMu.Lock()
	defer r.texMu.Unlock()

	if data, ok := r.texCache[path]; ok {
		return data, true
	}

	data, ok := load(path)
	if !ok {
		return nil, false
	}
	r.texCache[path] = data

	log.Log.Debug("texture decoded and cached", zap.String("path", path), zap.Int("bytes", len(data)))
	return data, true
}

// InvalidateTexture drops a cached texture decode, so the next
// ResolveTexture for path calls load again.
func (r *Registry) InvalidateTexture(path string) {
	r.texMu.Lock()
	defer r.texMu.Unlock()
	delete(r.texCache, path)
}
