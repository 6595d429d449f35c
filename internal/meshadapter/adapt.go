package meshadapter

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/nicolasmd87/voxelmesh/internal/category"
	"github.com/nicolasmd87/voxelmesh/internal/chunkmerge"
	"github.com/nicolasmd87/voxelmesh/internal/material"
)

// Adapt implements spec 4.K: given a MergedMesh, produce the host's buffer
// attributes, material groups, inverse-quantization node scale, and origin
// translation, plus the category-driven render-order/transparency
// attributes.
func Adapt(mesh *chunkmerge.MergedMesh, registry *material.Registry) *Node {
	n := &Node{
		Category:  mesh.Category,
		Positions: widenPositions(mesh.Positions),
		Normals:   widenNormals(mesh.Normals),
		UVs:       append([]float32(nil), mesh.UVs...),
		Indices:   widenIndices(mesh),
		Origin:    mesh.Origin,
		Scale:     [3]float32{1.0 / chunkmerge.PositionScale, 1.0 / chunkmerge.PositionScale, 1.0 / chunkmerge.PositionScale},
		Groups:    adaptGroups(mesh.Groups, registry),
	}

	n.RenderOrder, n.Transparent, n.Opacity, n.Dynamic = renderAttributes(mesh.Category)
	return n
}

func widenPositions(q []int16) []float32 {
	out := make([]float32, len(q))
	for i, v := range q {
		out[i] = float32(v)
	}
	return out
}

// widenNormals undoes the i8->f32 mapping and renormalizes, since
// quantization can leave the vector slightly off unit length (spec 4.K:
// "Normals declared normalized to undo i8->f32 mapping").
func widenNormals(q []int8) []float32 {
	out := make([]float32, len(q))
	for i := 0; i+2 < len(q); i += 3 {
		v := mgl32.Vec3{
			float32(q[i]) / chunkmerge.NormalScale,
			float32(q[i+1]) / chunkmerge.NormalScale,
			float32(q[i+2]) / chunkmerge.NormalScale,
		}
		if l := v.Len(); l > 1e-8 {
			v = v.Mul(1 / l)
		}
		out[i], out[i+1], out[i+2] = v[0], v[1], v[2]
	}
	return out
}

func widenIndices(mesh *chunkmerge.MergedMesh) []uint32 {
	if mesh.Indices32 != nil {
		return append([]uint32(nil), mesh.Indices32...)
	}
	out := make([]uint32, len(mesh.Indices16))
	for i, v := range mesh.Indices16 {
		out[i] = uint32(v)
	}
	return out
}

func adaptGroups(groups []chunkmerge.Group, registry *material.Registry) []MaterialGroup {
	out := make([]MaterialGroup, len(groups))
	for i, g := range groups {
		mg := MaterialGroup{
			MaterialIndex: g.MaterialIndex,
			Start:         g.Start,
			Count:         g.Count,
		}
		if registry != nil {
			if entry, ok := registry.Lookup(g.MaterialIndex); ok {
				mg.Texture = entry.Texture
				mg.Tint = entry.Tint
				mg.UVRotation = entry.UVRotation
			}
		}
		out[i] = mg
	}
	return out
}

// renderAttributes implements spec 4.K's category table: "Solid opaque
// order 0, Emissive order 1, Transparent order 2 transparent, Water order 3
// transparent with fixed 0.8 opacity, Redstone tagged as dynamic".
func renderAttributes(cat category.Category) (order int, transparent bool, opacity float32, dynamic bool) {
	order = cat.RenderOrder()
	transparent = cat.IsTransparent()
	opacity = 1.0
	if cat == category.Water {
		opacity = 0.8
	}
	dynamic = cat == category.Redstone
	return
}
