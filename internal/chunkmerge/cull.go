package chunkmerge

import (
	"github.com/nicolasmd87/voxelmesh/internal/category"
	"github.com/nicolasmd87/voxelmesh/internal/chunkpart"
	"github.com/nicolasmd87/voxelmesh/internal/palette"
)

// keptTriangle is one surviving triangle after spec 4.H.3's occlusion test,
// still in block-local [0,1]^3 space together with the integer block
// coordinate it came from. Two emitters consume these: the quantized
// chunk-local one (Merge, incremental dispatch) and the f32 world-space one
// (MergeWorldSpace, batched dispatch) — spec 4.I: "Batched mode uses f32
// positions in world coordinates... because the spatial extent can exceed
// the i16 range".
type keptTriangle struct {
	materialIndex          uint32
	blockX, blockY, blockZ int32
	positions              [3][3]float32
	normals                [3][3]float32
	uvs                    [3][2]float32
}

// cullChunk implements spec 4.H.1-3: build the occupancy grid and walk
// every block instance's geometry, dropping triangles whose flush,
// axis-aligned face is occluded by the grid neighbor, grouped by category.
func cullChunk(pal *palette.Palette, chunk chunkpart.IndexedChunk) (map[category.Category][]keptTriangle, error) {
	if pal == nil {
		return nil, notReadyErr()
	}

	grid := newOccupancyGrid(chunk)
	out := make(map[category.Category][]keptTriangle)

	for i := 0; i < chunk.Len(); i++ {
		x, y, z, occupancy := chunk.At(i)
		if occupancy == 0 {
			continue
		}

		entry, ok := pal.EntryAt(uint32(occupancy))
		if !ok {
			// spec 4.H: "If palette index is absent, skip the block (not
			// fatal)".
			continue
		}

		lx := int(x-chunk.Origin[0]) + 1
		ly := int(y-chunk.Origin[1]) + 1
		lz := int(z-chunk.Origin[2]) + 1

		for _, g := range entry.Geometries {
			for t := 0; t+2 < len(g.Indices); t += 3 {
				i0, i1, i2 := g.Indices[t], g.Indices[t+1], g.Indices[t+2]
				normal := vertexVec3(g.Normals, i0)

				if bit, axisAligned := normalToBit(normal); axisAligned {
					v0 := vertexVec3(g.Positions, i0)
					if isFlush(coordForBit(v0, bit)) {
						dx, dy, dz := neighborOffset(bit)
						neighborOccupancy := grid.at(lx+dx, ly+dy, lz+dz)
						if neighborOccupancy != 0 {
							if neighborEntry, ok := pal.EntryAt(neighborOccupancy); ok {
								if neighborEntry.OcclusionFlags&oppositeBit(bit) != 0 {
									continue // dropped: neighbor fully covers the shared face
								}
							}
						}
					}
				}

				out[entry.Category] = append(out[entry.Category], keptTriangle{
					materialIndex: g.MaterialIndex,
					blockX:        x,
					blockY:        y,
					blockZ:        z,
					positions:     [3][3]float32{vertexVec3(g.Positions, i0), vertexVec3(g.Positions, i1), vertexVec3(g.Positions, i2)},
					normals:       [3][3]float32{vertexVec3(g.Normals, i0), vertexVec3(g.Normals, i1), vertexVec3(g.Normals, i2)},
					uvs:           [3][2]float32{vertexUV(g.UVs, i0), vertexUV(g.UVs, i1), vertexUV(g.UVs, i2)},
				})
			}
		}
	}

	return out, nil
}
