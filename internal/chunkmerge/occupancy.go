package chunkmerge

import "github.com/nicolasmd87/voxelmesh/internal/chunkpart"

// occupancyGrid is a padded 3D array of palette occupancy values (0 =
// empty, otherwise palette-index+1), one cell of padding on every side so
// neighbor lookups at the chunk boundary degrade to "empty" instead of
// going out of range (spec 4.H.1).
type occupancyGrid struct {
	sx, sy, sz int // padded dimensions: extent+2 per axis
	cells      []uint32
	originX    int32
	originY    int32
	originZ    int32
}

func newOccupancyGrid(chunk chunkpart.IndexedChunk) *occupancyGrid {
	sx := int(chunk.Size[0]) + 2
	sy := int(chunk.Size[1]) + 2
	sz := int(chunk.Size[2]) + 2
	g := &occupancyGrid{
		sx: sx, sy: sy, sz: sz,
		cells:   make([]uint32, sx*sy*sz),
		originX: chunk.Origin[0],
		originY: chunk.Origin[1],
		originZ: chunk.Origin[2],
	}

	for i := 0; i < chunk.Len(); i++ {
		x, y, z, idx := chunk.At(i)
		lx := int(x-g.originX) + 1
		ly := int(y-g.originY) + 1
		lz := int(z-g.originZ) + 1
		g.cells[g.index(lx, ly, lz)] = uint32(idx)
	}
	return g
}

func (g *occupancyGrid) index(lx, ly, lz int) int {
	return (lx*g.sy+ly)*g.sz + lz
}

// at returns the occupancy value at a local (already +1 padded) coordinate,
// or 0 (empty) if it falls outside the padded grid — this should only
// happen for a lookup more than one cell past the chunk boundary, which
// this package never performs.
func (g *occupancyGrid) at(lx, ly, lz int) uint32 {
	if lx < 0 || lx >= g.sx || ly < 0 || ly >= g.sy || lz < 0 || lz >= g.sz {
		return 0
	}
	return g.cells[g.index(lx, ly, lz)]
}
