// Package buildctx carries the explicit, build-session-scoped state that
// spec §9 asks for instead of process-wide singletons: caches, the
// material registry, the cancellation epoch, and the resolved options.
package buildctx

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/google/uuid"
	"github.com/nicolasmd87/voxelmesh/internal/material"
	"github.com/nicolasmd87/voxelmesh/internal/resource"
)

const defaultModelCacheSize = 4096

// Context is handed explicitly to every resolver/merger call (spec §9:
// "hand them in as an explicit BuildContext rather than using process-wide
// singletons"). One Context belongs to exactly one build session.
type Context struct {
	Options   BuildOptions
	Resources resource.Provider
	Materials *material.Registry
	Summary   *Summary

	// BuildID uniquely names this build session; independent of Epoch,
	// which exists purely for cheap cancellation comparisons.
	BuildID uuid.UUID

	epoch int64

	// modelCache holds resolved (post-parent-merge) models keyed by
	// model_ref, bounded so a pathological resource pack can't grow it
	// without limit (spec 4.B: "Cache by model_ref").
	modelCache *lru.Cache[string, any]

	// rawModelCache holds the unparsed, unmerged JSON-decoded model for a
	// ref, avoiding a re-read+re-decode of the same file when it appears in
	// more than one parent chain.
	rawModelCache *lru.Cache[string, any]
}

// New builds a Context for one build session.
func New(opts BuildOptions, resources resource.Provider) (*Context, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	modelCache, err := lru.New[string, any](defaultModelCacheSize)
	if err != nil {
		return nil, err
	}
	rawCache, err := lru.New[string, any](defaultModelCacheSize)
	if err != nil {
		return nil, err
	}

	return &Context{
		Options:       opts,
		Resources:     resources,
		Materials:     material.New(),
		Summary:       NewSummary(),
		BuildID:       uuid.New(),
		modelCache:    modelCache,
		rawModelCache: rawCache,
	}, nil
}

// Epoch returns the current build epoch (spec §5 cancellation model).
func (c *Context) Epoch() int64 { return atomic.LoadInt64(&c.epoch) }

// BumpEpoch monotonically advances the epoch, invalidating in-flight
// results tagged with the old value.
func (c *Context) BumpEpoch() int64 { return atomic.AddInt64(&c.epoch, 1) }

// CacheModel stores a resolved model (any concrete *modelresolve.Model, kept as
// `any` here to avoid an import cycle between buildctx and modelresolve).
func (c *Context) CacheModel(ref string, resolved any) {
	c.modelCache.Add(ref, resolved)
}

// CachedModel retrieves a previously resolved model by ref.
func (c *Context) CachedModel(ref string) (any, bool) {
	return c.modelCache.Get(ref)
}

// CacheRawModel stores a JSON-decoded, not-yet-merged model by ref.
func (c *Context) CacheRawModel(ref string, raw any) {
	c.rawModelCache.Add(ref, raw)
}

// CachedRawModel retrieves a previously decoded raw model by ref.
func (c *Context) CachedRawModel(ref string) (any, bool) {
	return c.rawModelCache.Get(ref)
}

// InvalidateModelCaches drops everything cached, so the next Resolve
// re-reads models from the resource provider. Nothing in this module calls
// it; resource.Watcher only reports changed paths to its onChange callback.
func (c *Context) InvalidateModelCaches() {
	c.modelCache.Purge()
	c.rawModelCache.Purge()
}
