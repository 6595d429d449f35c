// Package blockmesh implements the block mesh builder (spec 4.D): for one
// block, with no world/neighbor context, it produces the quads of every
// visible face of every element of every model holder, fully rotated and
// positioned in block-local [0,1]^3 space.
package blockmesh

// Vertex is one corner of a face quad.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// Quad is one emitted face: 4 vertices in corner order (0,1,2,3), meant to
// be triangulated as (0,1,2),(2,1,3) (spec 4.D.4).
type Quad struct {
	MaterialIndex uint32
	Vertices      [4]Vertex
}
