package chunkmerge

import (
	"github.com/nicolasmd87/voxelmesh/internal/category"
	"github.com/nicolasmd87/voxelmesh/internal/chunkpart"
	"github.com/nicolasmd87/voxelmesh/internal/palette"
)

// WorldMesh is one category's surviving geometry in absolute f32 world
// coordinates, unquantized. Spec 4.I: batched dispatch accumulates these
// across many chunks before flushing, since the accumulated spatial extent
// can exceed the i16 range that chunk-local quantization relies on.
type WorldMesh struct {
	Category  category.Category
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
	Groups    []Group
}

// MergeWorldSpace runs the same cull pass as Merge but emits absolute
// world-space float positions instead of quantized chunk-local ones.
func MergeWorldSpace(pal *palette.Palette, chunk chunkpart.IndexedChunk) (map[category.Category]*WorldMesh, error) {
	kept, err := cullChunk(pal, chunk)
	if err != nil {
		return nil, err
	}

	out := make(map[category.Category]*WorldMesh, len(kept))
	for cat, triangles := range kept {
		w := &WorldMesh{Category: cat}
		for _, tri := range triangles {
			appendWorldTriangle(w, tri)
		}
		out[cat] = w
	}
	return out, nil
}

// appendWorldTriangle reuses a vertex of the previous same-material triangle
// when position, normal and uv are identical, as appendTriangle does.
func appendWorldTriangle(w *WorldMesh, tri keptTriangle) {
	var prev []uint32
	if n := len(w.Indices); n >= 3 && w.Groups[len(w.Groups)-1].MaterialIndex == tri.materialIndex {
		prev = w.Indices[n-3:]
	}
	for v := 0; v < 3; v++ {
		x := float32(tri.blockX) + tri.positions[v][0]
		y := float32(tri.blockY) + tri.positions[v][1]
		z := float32(tri.blockZ) + tri.positions[v][2]

		vertexIndex := uint32(len(w.Positions) / 3)
		reused := false
		for _, pi := range prev {
			b := int(pi)
			if [3]float32{w.Positions[3*b], w.Positions[3*b+1], w.Positions[3*b+2]} == [3]float32{x, y, z} &&
				[3]float32{w.Normals[3*b], w.Normals[3*b+1], w.Normals[3*b+2]} == tri.normals[v] &&
				[2]float32{w.UVs[2*b], w.UVs[2*b+1]} == tri.uvs[v] {
				vertexIndex, reused = pi, true
			}
		}
		if !reused {
			w.Positions = append(w.Positions, x, y, z)
			w.Normals = append(w.Normals, tri.normals[v][0], tri.normals[v][1], tri.normals[v][2])
			w.UVs = append(w.UVs, tri.uvs[v][0], tri.uvs[v][1])
		}
		w.Indices = append(w.Indices, vertexIndex)

		n := len(w.Groups)
		if n > 0 && w.Groups[n-1].MaterialIndex == tri.materialIndex {
			w.Groups[n-1].Count++
			continue
		}
		w.Groups = append(w.Groups, Group{
			Start:         len(w.Indices) - 1,
			Count:         1,
			MaterialIndex: tri.materialIndex,
		})
	}
}

// AppendBatch merges another chunk's WorldMesh into an accumulating one for
// the same category, renumbering indices and merging adjacent groups of the
// same material at the seam. Used by the worker pool's batched dispatch
// mode to build one large buffer per category across many chunks.
func AppendBatch(dst *WorldMesh, src *WorldMesh) {
	base := uint32(len(dst.Positions) / 3)

	dst.Positions = append(dst.Positions, src.Positions...)
	dst.Normals = append(dst.Normals, src.Normals...)
	dst.UVs = append(dst.UVs, src.UVs...)

	indexOffset := len(dst.Indices)
	for _, idx := range src.Indices {
		dst.Indices = append(dst.Indices, idx+base)
	}

	for _, g := range src.Groups {
		g.Start += indexOffset
		n := len(dst.Groups)
		if n > 0 && dst.Groups[n-1].MaterialIndex == g.MaterialIndex && dst.Groups[n-1].Start+dst.Groups[n-1].Count == g.Start {
			dst.Groups[n-1].Count += g.Count
			continue
		}
		dst.Groups = append(dst.Groups, g)
	}
}
