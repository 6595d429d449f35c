package meshadapter

import (
	"github.com/nicolasmd87/voxelmesh/internal/chunkmerge"
	"github.com/nicolasmd87/voxelmesh/internal/material"
)

// AdaptWorld is Adapt's counterpart for batched dispatch (spec 4.I):
// positions already live in absolute f32 world space, so no quantization
// scale or origin translation applies (Scale is identity, Origin is zero).
func AdaptWorld(mesh *chunkmerge.WorldMesh, registry *material.Registry) *Node {
	n := &Node{
		Category:  mesh.Category,
		Positions: append([]float32(nil), mesh.Positions...),
		Normals:   append([]float32(nil), mesh.Normals...),
		UVs:       append([]float32(nil), mesh.UVs...),
		Indices:   append([]uint32(nil), mesh.Indices...),
		Origin:    [3]float32{0, 0, 0},
		Scale:     [3]float32{1, 1, 1},
		Groups:    adaptGroups(mesh.Groups, registry),
	}
	n.RenderOrder, n.Transparent, n.Opacity, n.Dynamic = renderAttributes(mesh.Category)
	return n
}
