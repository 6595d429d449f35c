// Package chunkmerge implements the chunk mesh merger (spec 4.H): given a
// palette, a chunk's packed block array, and its origin/extent, it builds a
// padded occupancy grid, culls triangles against occlusion_flags, quantizes
// surviving vertices, and emits one MergedMesh per category, batched into
// material-contiguous draw groups.
package chunkmerge

import "github.com/nicolasmd87/voxelmesh/internal/category"

// PositionScale quantizes f32 block-local positions to i16 (spec §3
// MergedMesh: "positions: i16 xyz (quantized by POSITION_SCALE=1024)").
const PositionScale = 1024

// NormalScale quantizes f32 unit normal components to i8.
const NormalScale = 127

// Group is one material-contiguous run of indices within a MergedMesh
// (spec §3 MergedMesh.groups).
type Group struct {
	Start         int
	Count         int
	MaterialIndex uint32
}

// MergedMesh is one category's final, quantized, chunk-local buffer set
// (spec §3 MergedMesh).
type MergedMesh struct {
	Category category.Category
	Origin   [3]float32

	Positions []int16 // 3 per vertex
	Normals   []int8  // 3 per vertex
	UVs       []float32 // 2 per vertex

	// Exactly one of Indices16/Indices32 is populated, chosen by final
	// vertex count (spec 4.H.6: "u16 iff vertex_count <= 65535").
	Indices16 []uint16
	Indices32 []uint32

	Groups []Group
}

// VertexCount reports how many vertices this mesh holds.
func (m *MergedMesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Uses32BitIndices reports which index width this mesh chose.
func (m *MergedMesh) Uses32BitIndices() bool {
	return m.Indices32 != nil
}
