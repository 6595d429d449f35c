package chunkmerge

import (
	"errors"

	"github.com/nicolasmd87/voxelmesh/internal/buildctx"
	"github.com/nicolasmd87/voxelmesh/internal/category"
	"github.com/nicolasmd87/voxelmesh/internal/chunkpart"
	"github.com/nicolasmd87/voxelmesh/internal/palette"
)

const flushEpsilon = 1e-3

// isFlush implements the boundary test in spec 4.H.3: a vertex coordinate
// flush with the block boundary in its axis, where the tolerance also
// accepts the half-block mid-plane (the documented quirk carried over from
// the slow/correct source path, relevant to slabs and other half-height
// elements).
func isFlush(coord float32) bool {
	return near(coord, 0) || near(coord, 1) || near(coord, 0.5)
}

func near(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < flushEpsilon
}

func notReadyErr() error {
	return buildctx.Wrap(buildctx.ErrNotReady, errors.New("chunkmerge: palette not uploaded"))
}

type vertexAccum struct {
	positions []int16
	normals   []int8
	uvs       []float32
	indices   []uint32
	groups    []Group
}

// Merge implements spec 4.H: build the occupancy grid, cull triangles
// against palette occlusion_flags, quantize surviving vertices, and return
// one MergedMesh per category present in the chunk. Positions are quantized
// chunk-local (spec 4.H.6, incremental dispatch); see MergeWorldSpace for
// the unquantized, world-space variant used by batched dispatch.
func Merge(pal *palette.Palette, chunk chunkpart.IndexedChunk) (map[category.Category]*MergedMesh, error) {
	kept, err := cullChunk(pal, chunk)
	if err != nil {
		return nil, err
	}

	out := make(map[category.Category]*MergedMesh, len(kept))
	for cat, triangles := range kept {
		a := &vertexAccum{}
		for _, tri := range triangles {
			appendTriangle(a, tri, chunk.Origin)
		}
		out[cat] = finalize(cat, chunk.Origin, a)
	}
	return out, nil
}

func vertexVec3(flat []float32, idx uint32) [3]float32 {
	base := idx * 3
	return [3]float32{flat[base], flat[base+1], flat[base+2]}
}

func coordForBit(v [3]float32, bit uint8) float32 {
	switch bit {
	case bitEast, bitWest:
		return v[0]
	case bitUp, bitDown:
		return v[1]
	default:
		return v[2]
	}
}
