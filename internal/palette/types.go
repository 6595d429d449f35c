// Package palette implements the palette compiler (spec 4.F): before any
// chunk is meshed, it walks a schematic's distinct BlockKeys, builds each
// one's canonical block mesh once via blockmesh, flattens it into a
// PaletteEntry with per-material geometry groups, and computes the 6-bit
// occlusion_flags mask used for conservative chunk-boundary culling.
package palette

import (
	"github.com/nicolasmd87/voxelmesh/internal/blockkey"
	"github.com/nicolasmd87/voxelmesh/internal/category"
)

// GeometryGroup is one material's worth of a palette entry's mesh (spec §3
// PaletteEntry.geometries / GeometryGroup).
type GeometryGroup struct {
	MaterialIndex uint32
	Positions     []float32 // 3 floats per vertex, block-local [0,1]^3
	Normals       []float32 // 3 floats per vertex
	UVs           []float32 // 2 floats per vertex
	Indices       []uint32
}

// Entry is one distinct block's pre-meshed, indexed geometry (spec §3
// PaletteEntry).
type Entry struct {
	BlockKey       blockkey.BlockKey
	Category       category.Category
	OcclusionFlags uint8
	Geometries     []GeometryGroup
}

// emptyIndex is the reserved occupancy-grid value for "no block here" (air
// and the rest of the invisible set) — spec 4.F.4: "their index is reserved
// as empty (encoded as 0 ... real blocks stored as index+1)".
const emptyIndex = 0

// Palette is the dense, build-session-scoped set of distinct real blocks.
// Entries[i] is stored at occupancy-grid value i+1; emptyIndex (0) means no
// block.
type Palette struct {
	Entries []Entry

	// indexByFingerprint maps a real block's BlockKey.Fingerprint() to its
	// position in Entries. Invisible blocks (and the background/no-block
	// case) are absent from this map; callers treat a miss as emptyIndex.
	indexByFingerprint map[uint64]int
}

// IndexFor returns the occupancy-grid value (Entries-index+1) for key, or
// emptyIndex if key is invisible or was never compiled.
func (p *Palette) IndexFor(key blockkey.BlockKey) uint32 {
	idx, ok := p.indexByFingerprint[key.Fingerprint()]
	if !ok {
		return emptyIndex
	}
	return uint32(idx + 1)
}

// EntryAt returns the Entry for an occupancy-grid value (as produced by
// IndexFor), or false for emptyIndex / out-of-range values.
func (p *Palette) EntryAt(occupancy uint32) (Entry, bool) {
	if occupancy == emptyIndex {
		return Entry{}, false
	}
	i := int(occupancy) - 1
	if i < 0 || i >= len(p.Entries) {
		return Entry{}, false
	}
	return p.Entries[i], true
}
