// Package meshadapter implements the mesh adapter (spec 4.K): pure
// translation from a chunkmerge.MergedMesh into host buffer attributes,
// with the inverse quantization scale and chunk origin applied as node
// transform, never baked into the vertex data. Binary encode/decode is
// adapted from the teacher's internal/renderer/mesh_serialization.go
// (magic-numbered, gzip-compressed little-endian buffers).
package meshadapter

import "github.com/nicolasmd87/voxelmesh/internal/category"

// MaterialGroup is one draw call's worth of indices sharing a material
// (spec 4.H Group, carried through unchanged by the adapter).
type MaterialGroup struct {
	MaterialIndex uint32
	Start         int
	Count         int
	Texture       string
	Tint          [3]float32
	UVRotation    int
}

// Node is the host-ready representation of one chunk-category mesh (spec
// 4.K): raw quantized attributes plus the transform and render attributes
// that reconstruct world space and draw order.
type Node struct {
	Category category.Category

	// Positions from Adapt are still in their quantized numeric range
	// (i16, PositionScale per block) converted to float32 — the host
	// applies Scale and Origin as a node transform, it does not rescale the
	// buffers itself. Normals are already divided by NormalScale and
	// renormalized to unit length.
	Positions []float32 // 3 per vertex, raw i16 values as float32
	Normals   []float32 // 3 per vertex, unit-length float32
	UVs       []float32 // 2 per vertex
	Indices   []uint32

	Groups []MaterialGroup

	Origin [3]float32 // node translation
	Scale  [3]float32 // uniform 1/PositionScale, applied as node scale

	RenderOrder int
	Transparent bool
	Opacity     float32
	Dynamic     bool // Redstone: tagged as dynamic (spec 4.K)
}
