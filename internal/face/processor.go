// Package face implements the face processor (spec 4.C): for one element of
// one model, it resolves each of the six canonical faces to a material
// index and a UV rectangle, ready for the block mesh builder (4.D) to turn
// into quads.
package face

import (
	"github.com/nicolasmd87/voxelmesh/internal/buildctx"
	"github.com/nicolasmd87/voxelmesh/internal/category"
	"github.com/nicolasmd87/voxelmesh/internal/material"
	"github.com/nicolasmd87/voxelmesh/internal/modelresolve"
)

var defaultUV = [4]float32{0, 0, 1, 1}

// Output is the per-face result: MaterialIndex is nil for an absent, null,
// or overlay-sentinel face (spec 4.C: "emit null material and default UV").
type Output struct {
	MaterialIndex *uint32
	UV            [4]float32
}

// Process resolves every canonical face of el against model's texture
// table, interning a material for each non-null face into ctx.Materials
// under cat. props is the block's own property map, used for tint rules
// that key off a property (redstone `power`).
func Process(ctx *buildctx.Context, model *modelresolve.Model, el *modelresolve.Element, props map[string]string, cat category.Category) map[modelresolve.FaceName]Output {
	out := make(map[modelresolve.FaceName]Output, len(modelresolve.AllFaces))
	if len(el.Faces) == 0 {
		return out
	}

	for _, name := range modelresolve.AllFaces {
		f := el.Faces[name]
		if f == nil {
			out[name] = Output{UV: defaultUV}
			continue
		}

		texture := modelresolve.ResolveTextureRef(model, f.Texture)
		if texture == "" || isOverlaySentinel(texture) {
			out[name] = Output{UV: defaultUV}
			continue
		}

		rotation := normalizeRotation(f.Rotation)
		uv := f.UV
		if !f.HasUV {
			uv = defaultUV
		}
		uv = RotateUV(uv, rotation)

		var tint [3]float32
		if f.TintIndex != nil {
			tint = tintFor(texture, props)
		}

		key := material.Key{
			Texture:    texture,
			TintR:      tint[0],
			TintG:      tint[1],
			TintB:      tint[2],
			UVRotation: rotation,
		}
		idx := ctx.Materials.Intern(key, cat)
		out[name] = Output{MaterialIndex: &idx, UV: uv}
	}

	return out
}
