// Package chunkpart implements the chunk partitioner (spec 4.G): it walks a
// schematic by a configurable chunk_side, resolves each block to its
// palette index, and emits each chunk's blocks as (x,y,z,palette_index)
// quadruples packed into a flat i32 array, in lexicographic order.
package chunkpart

// IndexedChunk is one chunk's populated blocks, already resolved to
// palette indices.
type IndexedChunk struct {
	Origin [3]int32
	Size   [3]uint32

	// Packed holds one (x,y,z,palette_index) quadruple per populated
	// block, in the same lexicographic order as the source RawChunk (spec
	// 4.G: "block order within a chunk is lexicographic on world
	// coordinates").
	Packed []int32
}

// Len reports how many blocks are packed into this chunk.
func (c IndexedChunk) Len() int {
	return len(c.Packed) / 4
}

// At returns the i'th block's (x,y,z,palette_index) quadruple.
func (c IndexedChunk) At(i int) (x, y, z, paletteIndex int32) {
	base := i * 4
	return c.Packed[base], c.Packed[base+1], c.Packed[base+2], c.Packed[base+3]
}
