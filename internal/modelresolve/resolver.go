// Package modelresolve implements the model resolver (spec 4.B): loads a
// model by ref, recursively merges its parent chain, resolves texture
// references, and normalizes element coordinates from [0,16] to [0,1].
package modelresolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nicolasmd87/voxelmesh/internal/buildctx"
	"github.com/nicolasmd87/voxelmesh/internal/log"
	"go.uber.org/zap"
)

// ErrDepthExceeded names the depth-cap condition (cap 5) for parent and
// texture-ref chains. Neither Resolve nor ResolveTextureRef returns it: an
// over-deep parent chain resolves to an empty model and an over-deep
// texture chain to "missing_texture".
var ErrDepthExceeded = errors.New("modelresolve: depth exceeded")

const maxDepth = 5

const defaultNamespace = "minecraft"

func stripNamespace(ref string) string {
	if idx := strings.IndexByte(ref, ':'); idx >= 0 && ref[:idx] == defaultNamespace {
		return ref[idx+1:]
	}
	return ref
}

// Resolve implements spec 4.B: loads modelRef (applying built-in overrides
// and the resource-cache), iteratively merges its parent chain, and returns
// a fully normalized Model. A missing resource yields an empty model, not
// an error (spec: "Missing resource is not fatal").
func Resolve(ctx *buildctx.Context, modelRef string, props map[string]string) (*Model, error) {
	ref := stripNamespace(modelRef)

	// Built-in overrides can be property-dependent (chest left/right/single),
	// so the cache key must reflect the resolved override,
	// not the raw ref — otherwise the first variant seen would shadow every
	// other variant of the same block forever.
	cacheKey := ref
	if overrideRef, ok := builtinOverrideRef(ref, props); ok {
		cacheKey = overrideRef
	}

	if cached, ok := ctx.CachedModel(cacheKey); ok {
		return cached.(*Model), nil
	}

	merged, err := resolveChain(ctx, ref, props, make(map[string]bool), 0)
	if err != nil {
		return nil, err
	}

	normalizeElements(merged)
	ctx.CacheModel(cacheKey, merged)
	return merged, nil
}

// resolveChain walks the parent chain, merging child-wins over parent
// (spec 4.B.4), with a loop-safe visited set and a depth cap of 5
// (spec 4.B.4, §9).
func resolveChain(ctx *buildctx.Context, ref string, props map[string]string, visited map[string]bool, depth int) (*Model, error) {
	if depth > maxDepth {
		log.Log.Debug("model parent chain depth exceeded, treating as empty", zap.String("ref", ref))
		return &Model{}, nil
	}
	if visited[ref] {
		log.Log.Debug("model parent cycle detected, treating as empty", zap.String("ref", ref))
		return &Model{}, nil
	}
	visited[ref] = true

	current, err := loadRaw(ctx, ref, props)
	if err != nil {
		return nil, err
	}
	if current.Parent == "" {
		return current, nil
	}

	parentRef := stripNamespace(current.Parent)
	parent, err := resolveChain(ctx, parentRef, props, visited, depth+1)
	if err != nil {
		return nil, err
	}

	return mergeModels(parent, current), nil
}

// loadRaw resolves built-in overrides, then falls back to the resource
// provider at "models/<ref>.json" (spec 4.B.2-3).
func loadRaw(ctx *buildctx.Context, ref string, props map[string]string) (*Model, error) {
	if overrideRef, ok := builtinOverrideRef(ref, props); ok {
		if m, ok := builtinModels[overrideRef]; ok {
			clone := m
			return &clone, nil
		}
	}

	if cached, ok := ctx.CachedRawModel(ref); ok {
		return cached.(*Model), nil
	}

	path := "models/" + ref + ".json"
	raw, ok := ctx.Resources.ReadString(path)
	if !ok {
		log.Log.Debug("model resource missing, using empty model", zap.String("path", path))
		empty := &Model{}
		ctx.CacheRawModel(ref, empty)
		return empty, nil
	}

	var m Model
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("modelresolve: decode %s: %w", path, err)
	}
	ctx.CacheRawModel(ref, &m)
	return &m, nil
}

// mergeModels applies spec 4.B.4: child wins on every field except
// `textures` (shallow deep-merge, parent keys kept unless overridden) and
// `elements` (taken from whichever descendant — child if present, else
// parent).
func mergeModels(parent, child *Model) *Model {
	merged := &Model{
		Parent:           child.Parent,
		AmbientOcclusion: child.AmbientOcclusion,
	}

	merged.Textures = make(map[string]string, len(parent.Textures)+len(child.Textures))
	for k, v := range parent.Textures {
		merged.Textures[k] = v
	}
	for k, v := range child.Textures {
		merged.Textures[k] = v
	}

	if len(child.Elements) > 0 {
		merged.Elements = child.Elements
	} else {
		merged.Elements = parent.Elements
	}

	return merged
}

// normalizeElements divides from/to/rotation.origin/face-uv by 16, converting
// voxel units [0,16] to the internal [0,1] space (spec 4.B.5, spec §3 "After
// normalization uv is in [0,1]").
func normalizeElements(m *Model) {
	for i := range m.Elements {
		el := &m.Elements[i]
		el.From = divScalar(el.From, 16)
		el.To = divScalar(el.To, 16)
		if el.Rotation != nil {
			el.Rotation.Origin = divScalar(el.Rotation.Origin, 16)
		}
		for _, f := range el.Faces {
			if f == nil {
				continue
			}
			f.UV = [4]float32{f.UV[0] / 16, f.UV[1] / 16, f.UV[2] / 16, f.UV[3] / 16}
		}
	}
}

func divScalar(v [3]float32, d float32) [3]float32 {
	return [3]float32{v[0] / d, v[1] / d, v[2] / d}
}

// ResolveTextureRef walks a "#ref" chain up to 5 levels deep (spec 4.B
// "Texture reference resolution"), returning the resolved texture path or
// the "missing_texture" sentinel on overflow or a dead end.
func ResolveTextureRef(m *Model, ref string) string {
	const missing = "missing_texture"
	seen := 0
	for strings.HasPrefix(ref, "#") && seen < maxDepth {
		next, ok := m.Textures[ref[1:]]
		if !ok {
			return missing
		}
		ref = next
		seen++
	}
	if strings.HasPrefix(ref, "#") {
		return missing
	}
	return ref
}
