package blockmesh

import (
	"github.com/nicolasmd87/voxelmesh/internal/blockkey"
	"github.com/nicolasmd87/voxelmesh/internal/blockstate"
	"github.com/nicolasmd87/voxelmesh/internal/buildctx"
	"github.com/nicolasmd87/voxelmesh/internal/category"
	"github.com/nicolasmd87/voxelmesh/internal/face"
	"github.com/nicolasmd87/voxelmesh/internal/modelresolve"
)

// Build implements spec 4.D end to end for one block: resolve its holders
// (4.A), resolve and merge each holder's model (4.B), process every
// element's faces (4.C), and emit rotated, positioned quads.
func Build(ctx *buildctx.Context, key blockkey.BlockKey, def blockstate.Definition, cat category.Category) ([]Quad, error) {
	holders, err := blockstate.Resolve(key, def)
	if err != nil {
		return nil, err
	}

	var quads []Quad
	for _, holder := range holders {
		model, err := modelresolve.Resolve(ctx, holder.ModelRef, key.Properties)
		if err != nil {
			return nil, err
		}

		for i := range model.Elements {
			el := &model.Elements[i]
			quads = append(quads, buildElementQuads(ctx, model, el, key.Properties, cat, holder)...)
		}
	}
	return quads, nil
}

func buildElementQuads(ctx *buildctx.Context, model *modelresolve.Model, el *modelresolve.Element, props map[string]string, cat category.Category, holder blockstate.Holder) []Quad {
	faceOut := face.Process(ctx, model, el, props, cat)

	var quads []Quad
	for _, name := range modelresolve.AllFaces {
		out, ok := faceOut[name]
		if !ok || out.MaterialIndex == nil {
			continue
		}

		corners := faceCornerTable[name]
		normal := faceNormals[name]
		normal = applyElementRotationToNormal(normal, el.Rotation)
		normal = applyHolderRotationToNormal(normal, holder.X, holder.Y, holder.Z)

		var quad Quad
		quad.MaterialIndex = *out.MaterialIndex
		for c := 0; c < 4; c++ {
			pos := cornerPosition(corners[c], el.From, el.To)
			pos = applyElementRotation(pos, el.Rotation)
			pos = applyHolderRotation(pos, holder.X, holder.Y, holder.Z)
			uv := cornerUV(out.UV, cornerUVSlot[c])

			quad.Vertices[c] = Vertex{
				Position: pos,
				Normal:   normal,
				UV:       uv,
			}
		}
		quads = append(quads, quad)
	}
	return quads
}
