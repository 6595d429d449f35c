// Package schematic defines the Schematic capability the core consumes
// (spec §6). Parsing NBT/litematic/schem archives is an explicit non-goal;
// this package only specifies the interface and a simple in-memory
// implementation used by tests and the demo CLI.
package schematic

import "github.com/nicolasmd87/voxelmesh/internal/blockkey"

// Schematic gives the core random and iterative read access to a sparse,
// logically-infinite voxel grid.
type Schematic interface {
	// Dimensions returns the schematic's bounding box, width/height/length.
	Dimensions() (w, h, l int)

	// GetBlock returns the block at absolute world coordinates, or false if
	// the position is unset (including out-of-bounds positions — this is a
	// random-access read with no bounds error).
	GetBlock(x, y, z int32) (blockkey.BlockKey, bool)

	// IterChunks yields chunks of chunkSide-sized cubes in lexicographic
	// order of chunk coordinates (spec 4.G).
	IterChunks(chunkSide int) ChunkCursor
}

// ChunkCursor yields raw (position, BlockKey) pairs per chunk, before
// palette indices are assigned. The chunk partitioner (4.G) consumes this
// and the palette compiler (4.F) to produce indexed Chunks.
type ChunkCursor interface {
	// Next advances to the next non-empty chunk. Returns false when done.
	Next() (RawChunk, bool)
}

// RawChunk is one chunk's worth of (position, BlockKey) pairs, in
// lexicographic order on world coordinates within the chunk (spec 4.G).
type RawChunk struct {
	Origin [3]int32
	Size   [3]uint32
	Blocks []RawBlock
}

// RawBlock is a single populated voxel before palette-index assignment.
type RawBlock struct {
	X, Y, Z int32
	Key     blockkey.BlockKey
}
