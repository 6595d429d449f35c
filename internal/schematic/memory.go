package schematic

import (
	"sort"

	"github.com/nicolasmd87/voxelmesh/internal/blockkey"
)

// Memory is a sparse, map-backed in-memory Schematic, useful for tests, the demo CLI,
// and any adapter that has already decoded a schematic archive into RAM.
type Memory struct {
	w, h, l int
	blocks  map[[3]int32]blockkey.BlockKey
}

// NewMemory builds an empty schematic of the given bounding box.
func NewMemory(w, h, l int) *Memory {
	return &Memory{w: w, h: h, l: l, blocks: make(map[[3]int32]blockkey.BlockKey)}
}

// Set places a block at absolute world coordinates.
func (m *Memory) Set(x, y, z int32, key blockkey.BlockKey) {
	m.blocks[[3]int32{x, y, z}] = key
}

func (m *Memory) Dimensions() (w, h, l int) {
	return m.w, m.h, m.l
}

func (m *Memory) GetBlock(x, y, z int32) (blockkey.BlockKey, bool) {
	k, ok := m.blocks[[3]int32{x, y, z}]
	return k, ok
}

// IterChunks partitions the populated blocks into chunkSide-cubed chunks,
// lexicographic on chunk coordinate, each chunk's blocks lexicographic on
// world coordinate (spec 4.G).
func (m *Memory) IterChunks(chunkSide int) ChunkCursor {
	byChunk := make(map[[3]int32][]RawBlock)
	for pos, key := range m.blocks {
		cx := floorDiv(pos[0], int32(chunkSide))
		cy := floorDiv(pos[1], int32(chunkSide))
		cz := floorDiv(pos[2], int32(chunkSide))
		ck := [3]int32{cx, cy, cz}
		byChunk[ck] = append(byChunk[ck], RawBlock{X: pos[0], Y: pos[1], Z: pos[2], Key: key})
	}

	chunkCoords := make([][3]int32, 0, len(byChunk))
	for ck := range byChunk {
		chunkCoords = append(chunkCoords, ck)
	}
	sort.Slice(chunkCoords, func(i, j int) bool {
		a, b := chunkCoords[i], chunkCoords[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})

	for _, ck := range chunkCoords {
		blocks := byChunk[ck]
		sort.Slice(blocks, func(i, j int) bool {
			a, b := blocks[i], blocks[j]
			if a.X != b.X {
				return a.X < b.X
			}
			if a.Y != b.Y {
				return a.Y < b.Y
			}
			return a.Z < b.Z
		})
	}

	return &memoryCursor{
		chunkCoords: chunkCoords,
		byChunk:     byChunk,
		chunkSide:   int32(chunkSide),
	}
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

type memoryCursor struct {
	chunkCoords [][3]int32
	byChunk     map[[3]int32][]RawBlock
	chunkSide   int32
	i           int
}

func (c *memoryCursor) Next() (RawChunk, bool) {
	if c.i >= len(c.chunkCoords) {
		return RawChunk{}, false
	}
	ck := c.chunkCoords[c.i]
	c.i++
	return RawChunk{
		Origin: [3]int32{ck[0] * c.chunkSide, ck[1] * c.chunkSide, ck[2] * c.chunkSide},
		Size:   [3]uint32{uint32(c.chunkSide), uint32(c.chunkSide), uint32(c.chunkSide)},
		Blocks: c.byChunk[ck],
	}, true
}
