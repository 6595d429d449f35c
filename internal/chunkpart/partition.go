package chunkpart

import (
	"github.com/nicolasmd87/voxelmesh/internal/palette"
	"github.com/nicolasmd87/voxelmesh/internal/schematic"
)

const defaultChunkSide = 16

// Partition implements spec 4.G end to end: chunkSide <= 0 falls back to
// the default of 16. A chunk with no visible (non-zero-palette-index)
// block is dropped entirely, since it contributes nothing to any mesh.
func Partition(sch schematic.Schematic, chunkSide int, pal *palette.Palette) []IndexedChunk {
	if chunkSide <= 0 {
		chunkSide = defaultChunkSide
	}

	var out []IndexedChunk
	cursor := sch.IterChunks(chunkSide)
	for {
		raw, ok := cursor.Next()
		if !ok {
			break
		}

		packed := make([]int32, 0, len(raw.Blocks)*4)
		anyVisible := false
		for _, b := range raw.Blocks {
			idx := int32(pal.IndexFor(b.Key))
			if idx != 0 {
				anyVisible = true
			}
			packed = append(packed, b.X, b.Y, b.Z, idx)
		}
		if !anyVisible {
			continue
		}

		out = append(out, IndexedChunk{
			Origin: raw.Origin,
			Size:   raw.Size,
			Packed: packed,
		})
	}
	return out
}
