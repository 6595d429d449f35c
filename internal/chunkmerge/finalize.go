package chunkmerge

import "github.com/nicolasmd87/voxelmesh/internal/category"

const maxU16Vertices = 65535

// finalize implements spec 4.H.6-7: pick the index width by final vertex
// count and slice every buffer to its exact length.
func finalize(cat category.Category, origin [3]int32, a *vertexAccum) *MergedMesh {
	m := &MergedMesh{
		Category:  cat,
		Origin:    [3]float32{float32(origin[0]), float32(origin[1]), float32(origin[2])},
		Positions: a.positions[:len(a.positions):len(a.positions)],
		Normals:   a.normals[:len(a.normals):len(a.normals)],
		UVs:       a.uvs[:len(a.uvs):len(a.uvs)],
		Groups:    a.groups[:len(a.groups):len(a.groups)],
	}

	vertexCount := len(a.positions) / 3
	if vertexCount <= maxU16Vertices {
		indices16 := make([]uint16, len(a.indices))
		for i, idx := range a.indices {
			indices16[i] = uint16(idx)
		}
		m.Indices16 = indices16
	} else {
		indices32 := make([]uint32, len(a.indices))
		copy(indices32, a.indices)
		m.Indices32 = indices32
	}

	return m
}
